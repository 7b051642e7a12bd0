package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError converts an error bubbled out of a service (usually a
// *fiber.Error carrying the intended status) into the JSON envelope.
// Anything else is an unexpected failure: log it, answer a generic 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
