package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	searchController "askonline_backend/internals/features/qna/search/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func SearchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := searchController.NewSearchController(db)

	api.Get("/search", authMiddleware.OptionalAuthMiddleware(), ctrl.Search)
}
