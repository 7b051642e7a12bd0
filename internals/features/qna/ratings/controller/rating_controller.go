package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ratingDTO "askonline_backend/internals/features/qna/ratings/dto"
	ratingService "askonline_backend/internals/features/qna/ratings/service"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

var validateRating = validator.New()

type RatingController struct {
	DB *gorm.DB
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{DB: db}
}

// POST /api/ratings
func (ctrl *RatingController) SubmitVote(c *fiber.Ctx) error {
	var req ratingDTO.SubmitVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRating.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	rating, err := ratingService.SubmitVote(ctrl.DB, req.AnswerID, *req.IsUpvote, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Vote recorded", ratingDTO.ToRatingDTO(*rating))
}

// DELETE /api/ratings/answer/:answer_id
func (ctrl *RatingController) RemoveVote(c *fiber.Ctx) error {
	answerID, err := helper.ParamUUID(c, "answer_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := ratingService.RemoveVote(ctrl.DB, answerID, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}

// GET /api/ratings/answer/:answer_id
func (ctrl *RatingController) GetAnswerScore(c *fiber.Ctx) error {
	answerID, err := helper.ParamUUID(c, "answer_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	score, err := ratingService.GetAnswerScore(ctrl.DB, answerID, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Answer score", score)
}
