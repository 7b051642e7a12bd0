package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ratingController "askonline_backend/internals/features/qna/ratings/controller"
	authMiddleware "askonline_backend/internals/middlewares/auth"
)

func RatingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ratingController.NewRatingController(db)

	ratings := api.Group("/ratings")
	ratings.Post("/", authMiddleware.AuthMiddleware(), ctrl.SubmitVote)
	ratings.Delete("/answer/:answer_id", authMiddleware.AuthMiddleware(), ctrl.RemoveVote)
	// score is public; anonymous callers just get no current_user_vote
	ratings.Get("/answer/:answer_id", authMiddleware.OptionalAuthMiddleware(), ctrl.GetAnswerScore)
}
