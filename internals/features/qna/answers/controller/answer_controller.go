package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerDTO "askonline_backend/internals/features/qna/answers/dto"
	answerService "askonline_backend/internals/features/qna/answers/service"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

var validateAnswer = validator.New()

type AnswerController struct {
	DB *gorm.DB
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{DB: db}
}

// GET /api/answers/by-question/:question_id
func (ctrl *AnswerController) GetAnswersForQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParamUUID(c, "question_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	answers, err := answerService.GetAnswersForQuestion(ctrl.DB, questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Answers", answerDTO.ToAnswerDTOs(answers, caller), nil)
}

// POST /api/answers
func (ctrl *AnswerController) CreateAnswer(c *fiber.Ctx) error {
	var req answerDTO.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateAnswer.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	answer, err := answerService.CreateAnswer(ctrl.DB, req.QuestionID, req.Body, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Answer created", answerDTO.ToAnswerDTO(answer, caller))
}

// PUT /api/answers/:id
func (ctrl *AnswerController) UpdateAnswer(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req answerDTO.UpdateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateAnswer.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	answer, err := answerService.UpdateAnswer(ctrl.DB, id, req.Body, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Answer updated", answerDTO.ToAnswerDTO(answer, caller))
}

// DELETE /api/answers/:id
func (ctrl *AnswerController) DeleteAnswer(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := answerService.DeleteAnswer(ctrl.DB, id, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}
