// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"askonline_backend/internals/configs"
	UserModel "askonline_backend/internals/features/users/user/model"
)

// BuildAccessToken issues the signed HS256 bearer token embedding user id,
// username, email, role and an expiry derived from the configured TTL.
func BuildAccessToken(user *UserModel.UserModel, now time.Time, ttl time.Duration) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT secret not configured")
	}

	claims := jwt.MapClaims{
		"sub":       user.UserID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}
