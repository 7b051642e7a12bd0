package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerController "askonline_backend/internals/features/qna/answers/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func AnswerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := answerController.NewAnswerController(db)

	answers := api.Group("/answers")
	answers.Get("/by-question/:question_id", authMiddleware.OptionalAuthMiddleware(), ctrl.GetAnswersForQuestion)
	answers.Post("/", authMiddleware.AuthMiddleware(), ctrl.CreateAnswer)
	answers.Put("/:id", authMiddleware.AuthMiddleware(), ctrl.UpdateAnswer)
	answers.Delete("/:id", authMiddleware.AuthMiddleware(), ctrl.DeleteAnswer)
}
