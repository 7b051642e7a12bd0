package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionDTO "askonline_backend/internals/features/qna/questions/dto"
	questionService "askonline_backend/internals/features/qna/questions/service"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// GET /api/questions?page=&per_page=
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	caller := helpersAuth.FromFiber(c)
	paging := helper.ResolvePaging(c, 20, 100)

	questions, total, err := questionService.GetAllQuestions(ctrl.DB, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Questions",
		questionDTO.ToQuestionDTOs(questions, caller),
		helper.BuildPagination(total, paging))
}

// GET /api/questions/:id
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	question, err := questionService.GetQuestionByID(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Question", questionDTO.ToQuestionDTO(question, caller))
}

// POST /api/questions
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req questionDTO.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	question, err := questionService.CreateQuestion(ctrl.DB, req.Title, req.Body, req.TagNames, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Question created", questionDTO.ToQuestionDTO(question, caller))
}

// PUT /api/questions/:id
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req questionDTO.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	question, err := questionService.UpdateQuestion(ctrl.DB, id, req.Title, req.Body, caller)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Question updated", questionDTO.ToQuestionDTO(question, caller))
}

// DELETE /api/questions/:id
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := questionService.DeleteQuestion(ctrl.DB, id, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}
