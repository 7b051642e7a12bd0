package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"askonline_backend/internals/configs"
	"askonline_backend/internals/constants"
	authDTO "askonline_backend/internals/features/users/auth/dto"
	UserModel "askonline_backend/internals/features/users/user/model"
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// Register creates an account. A case-insensitive duplicate email is a 409;
// the requested role is clamped to the closed {user,admin} set.
func Register(db *gorm.DB, req authDTO.RegisterRequest) (*UserModel.UserModel, error) {
	var existing UserModel.UserModel
	err := db.Where("LOWER(email) = LOWER(?)", req.Email).First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := UserModel.UserModel{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         constants.ClampRole(req.Role),
	}
	if err := db.Create(&user).Error; err != nil {
		// the LOWER(email) unique index settles concurrent registrations
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues the access token. Unknown email and
// wrong password are indistinguishable to the caller.
func Login(db *gorm.DB, req authDTO.LoginRequest) (string, *UserModel.UserModel, error) {
	var user UserModel.UserModel
	if err := db.Where("LOWER(email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return "", nil, err
	}

	if !VerifyPassword(user.PasswordHash, req.Password) {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := BuildAccessToken(&user, time.Now().UTC(), configs.AccessTokenTTL())
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
