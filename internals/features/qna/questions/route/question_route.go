package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "askonline_backend/internals/features/qna/questions/controller"
	tagController "askonline_backend/internals/features/qna/tags/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func QuestionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)
	tagCtrl := tagController.NewTagController(db)

	questions := api.Group("/questions")

	// reads are public; the viewer identity only affects response shaping
	questions.Get("/", authMiddleware.OptionalAuthMiddleware(), ctrl.GetAllQuestions)
	questions.Get("/:id", authMiddleware.OptionalAuthMiddleware(), ctrl.GetQuestionByID)

	questions.Post("/", authMiddleware.AuthMiddleware(), ctrl.CreateQuestion)
	questions.Put("/:id", authMiddleware.AuthMiddleware(), ctrl.UpdateQuestion)
	questions.Delete("/:id", authMiddleware.AuthMiddleware(), ctrl.DeleteQuestion)

	// tag association lives under the question resource
	questions.Post("/:id/tags", authMiddleware.AuthMiddleware(), tagCtrl.AddTagToQuestion)
	questions.Delete("/:id/tags/:tag_id", authMiddleware.AuthMiddleware(), tagCtrl.RemoveTagFromQuestion)
}
