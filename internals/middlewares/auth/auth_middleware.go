// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "askonline_backend/internals/helpers"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

// AuthMiddleware requires a valid bearer token; everything else is 401.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - no token provided")
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			log.Printf("[WARN] token rejected: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		if err := storeClaimsToLocals(c, claims); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid token claims")
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present
// and treats every verification failure as anonymous. Endpoints behind it
// must work for anonymous callers.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			// unverifiable token == no identity
			return c.Next()
		}
		_ = storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func storeClaimsToLocals(c *fiber.Ctx, claims map[string]interface{}) error {
	userID, err := extractUserID(claims)
	if err != nil {
		return err
	}
	c.Locals(helpersAuth.LocUserID, userID.String())
	c.Locals(helpersAuth.LocUserName, extractString(claims, "user_name"))
	c.Locals(helpersAuth.LocEmail, extractString(claims, "email"))
	c.Locals(helpersAuth.LocRole, extractRole(claims))
	return nil
}
