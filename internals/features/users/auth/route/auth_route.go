package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "askonline_backend/internals/features/users/auth/controller"
	"askonline_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
