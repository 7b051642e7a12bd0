package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerRoute "askonline_backend/internals/features/qna/answers/route"
	questionRoute "askonline_backend/internals/features/qna/questions/route"
	ratingRoute "askonline_backend/internals/features/qna/ratings/route"
	searchRoute "askonline_backend/internals/features/qna/search/route"
	tagRoute "askonline_backend/internals/features/qna/tags/route"
)

func QnaRoutes(api fiber.Router, db *gorm.DB) {
	questionRoute.QuestionRoutes(api, db)
	answerRoute.AnswerRoutes(api, db)
	ratingRoute.RatingRoutes(api, db)
	tagRoute.TagRoutes(api, db)
	searchRoute.SearchRoutes(api, db)
}
