package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "askonline_backend/internals/features/users/user/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", authMiddleware.AuthMiddleware(), ctrl.GetUsers)
	users.Get("/me", authMiddleware.AuthMiddleware(), ctrl.GetMe)
	users.Get("/:id", authMiddleware.AuthMiddleware(), ctrl.GetUser)
	users.Delete("/:id", authMiddleware.AuthMiddleware(), ctrl.DeleteUser)

	// public listings; the privacy view redacts authors for anonymous callers
	users.Get("/:id/questions", authMiddleware.OptionalAuthMiddleware(), ctrl.GetUserQuestions)
	users.Get("/:id/answers", authMiddleware.OptionalAuthMiddleware(), ctrl.GetUserAnswers)
}
