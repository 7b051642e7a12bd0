package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "askonline_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	routeDetails.AuthRoutes(api, db)
	routeDetails.UserRoutes(api, db)
	routeDetails.QnaRoutes(api, db)
}
