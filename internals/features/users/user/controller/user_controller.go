package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerDTO "askonline_backend/internals/features/qna/answers/dto"
	answerService "askonline_backend/internals/features/qna/answers/service"
	questionDTO "askonline_backend/internals/features/qna/questions/dto"
	questionService "askonline_backend/internals/features/qna/questions/service"
	userDTO "askonline_backend/internals/features/users/user/dto"
	userService "askonline_backend/internals/features/users/user/service"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	caller := helpersAuth.FromFiber(c)

	users, err := userService.GetAllUsers(ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]userDTO.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, userDTO.ToUserDTO(&users[i], caller))
	}
	return helper.JsonList(c, "Users", out, nil)
}

// GET /api/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	caller := helpersAuth.FromFiber(c)
	if !caller.IsAuthenticated() {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	user, err := userService.GetUserByID(ctrl.DB, caller.UserID.String())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Current user", userDTO.ToUserDTO(user, caller))
}

// GET /api/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	user, err := userService.GetUserByID(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "User", userDTO.ToUserDTO(user, caller))
}

// DELETE /api/users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	if err := userService.DeleteUser(ctrl.DB, id, caller); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c)
}

// GET /api/users/:id/questions
func (ctrl *UserController) GetUserQuestions(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	questions, err := questionService.GetQuestionsByUser(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Questions by user", questionDTO.ToQuestionDTOs(questions, caller), nil)
}

// GET /api/users/:id/answers
func (ctrl *UserController) GetUserAnswers(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	caller := helpersAuth.FromFiber(c)

	answers, err := answerService.GetAnswersByUser(ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Answers by user", answerDTO.ToAnswerDTOs(answers, caller), nil)
}
