package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParamUUID parses a path parameter that must be a uuid and returns its
// canonical string form. A malformed value is a 400, not a database error.
func ParamUUID(c *fiber.Ctx, name string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return id.String(), nil
}
