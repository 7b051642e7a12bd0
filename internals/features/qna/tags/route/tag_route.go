package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagController "askonline_backend/internals/features/qna/tags/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func TagRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tagController.NewTagController(db)

	tags := api.Group("/tags")
	tags.Get("/", ctrl.GetAllTags)
	tags.Get("/:id", ctrl.GetTagByID)
	tags.Post("/", authMiddleware.AuthMiddleware(), ctrl.CreateTag)
	tags.Delete("/:id", authMiddleware.AuthMiddleware(), ctrl.DeleteTag)
}
