package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the access token from:
// 1) Authorization header "Bearer <token>" (tolerant split, case-insensitive scheme)
// 2) cookie "access_token"
// Empty string means the request is anonymous.
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth != "" {
		fields := strings.Fields(auth)
		if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
		}
		return ""
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
