package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionDTO "askonline_backend/internals/features/qna/questions/dto"
	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

const searchResultCap = 50

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// GET /api/search?q=
// Matches title, body, or tag name (case-insensitive substring), newest
// first. Authors are shaped through the usual privacy view, so anonymous
// searchers only see redacted users.
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	caller := helpersAuth.FromFiber(c)

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonList(c, "Search results", []questionDTO.QuestionDTO{}, nil)
	}
	pattern := "%" + q + "%"

	var questions []QuestionModel.QuestionModel
	err := ctrl.DB.
		Preload("User").
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("answer_created_at ASC")
		}).
		Preload("Answers.User").
		Preload("Answers.Ratings").
		Preload("QuestionTags.Tag").
		Where(`question_title ILIKE ? OR question_body ILIKE ? OR question_id IN (
			SELECT question_tag_question_id FROM question_tags
			JOIN tags ON tags.tag_id = question_tags.question_tag_tag_id
			WHERE tags.tag_name ILIKE ?
		)`, pattern, pattern, pattern).
		Order("question_created_at DESC").
		Limit(searchResultCap).
		Find(&questions).Error
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonList(c, "Search results", questionDTO.ToQuestionDTOs(questions, caller), nil)
}
