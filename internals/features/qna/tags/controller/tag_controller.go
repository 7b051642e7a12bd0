package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagDTO "askonline_backend/internals/features/qna/tags/dto"
	tagService "askonline_backend/internals/features/qna/tags/service"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

var validateTag = validator.New()

type TagController struct {
	DB *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db}
}

// GET /api/tags
func (ctrl *TagController) GetAllTags(c *fiber.Ctx) error {
	tags, err := tagService.GetAllTags(ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Tags", tagDTO.ToTagDTOs(tags), nil)
}

// GET /api/tags/:id
func (ctrl *TagController) GetTagByID(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tag, err := tagService.GetTagByID(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Tag", tagDTO.ToTagDTO(*tag))
}

// POST /api/tags
func (ctrl *TagController) CreateTag(c *fiber.Ctx) error {
	var req tagDTO.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateTag.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tag, err := tagService.CreateTag(ctrl.DB, req.Name)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tag created", tagDTO.ToTagDTO(*tag))
}

// DELETE /api/tags/:id (admin only)
func (ctrl *TagController) DeleteTag(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := tagService.DeleteTag(ctrl.DB, id, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}

// POST /api/questions/:id/tags
func (ctrl *TagController) AddTagToQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tagDTO.AddTagToQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateTag.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	caller := helpersAuth.FromFiber(c)
	tag, err := tagService.AddTagToQuestion(ctrl.DB, questionID, req.Name, caller)
	if err != nil {
		// already-linked is reported, not failed
		if errors.Is(err, tagService.ErrTagAlreadyAssociated) {
			return helper.JsonOK(c, "Tag already associated with question", tagDTO.ToTagDTO(*tag))
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tag added to question", tagDTO.ToTagDTO(*tag))
}

// DELETE /api/questions/:id/tags/:tag_id
func (ctrl *TagController) RemoveTagFromQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tagID, err := helper.ParamUUID(c, "tag_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := tagService.RemoveTagFromQuestion(ctrl.DB, questionID, tagID, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}
