package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "askonline_backend/internals/features/users/auth/dto"
	authService "askonline_backend/internals/features/users/auth/service"
	userDTO "askonline_backend/internals/features/users/user/dto"
	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authService.Register(ctrl.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// register responds with the subject's own (expanded) view
	self := helpersAuth.AsUser(user.UserID, user.UserName, user.Email, user.Role)
	return helper.JsonCreated(c, "Account created", userDTO.ToUserDTO(user, self))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	token, user, err := authService.Login(ctrl.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	self := helpersAuth.AsUser(user.UserID, user.UserName, user.Email, user.Role)
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        userDTO.ToUserDTO(user, self),
	})
}
