package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askonline_backend/internals/constants"
)

func TestAnonymousContext(t *testing.T) {
	ctx := Anonymous()
	assert.False(t, ctx.IsAuthenticated())
	assert.False(t, ctx.IsAdmin())
	assert.False(t, ctx.IsOwner(uuid.NewString()))
	assert.False(t, ctx.CanModify(uuid.NewString()))
}

func TestOwnershipRule(t *testing.T) {
	id := uuid.New()
	owner := UserContext{UserID: &id, Role: constants.RoleUser}

	assert.True(t, owner.IsOwner(id.String()))
	assert.True(t, owner.CanModify(id.String()))
	assert.False(t, owner.CanModify(uuid.NewString()))

	adminID := uuid.New()
	admin := UserContext{UserID: &adminID, Role: constants.RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanModify(id.String())) // admin can modify anyone's
}

func TestAsUser(t *testing.T) {
	id := uuid.NewString()
	ctx := AsUser(id, "alice", "alice@example.com", "ADMIN")
	require.True(t, ctx.IsAuthenticated())
	assert.Equal(t, id, ctx.UserID.String())
	assert.Equal(t, constants.RoleAdmin, ctx.Role)

	assert.False(t, AsUser("not-a-uuid", "x", "", "user").IsAuthenticated())
}

func TestFromFiber(t *testing.T) {
	id := uuid.NewString()

	cases := []struct {
		name  string
		setup func(c *fiber.Ctx)
		check func(t *testing.T, ctx UserContext)
	}{
		{
			name:  "no locals means anonymous",
			setup: func(c *fiber.Ctx) {},
			check: func(t *testing.T, ctx UserContext) {
				assert.False(t, ctx.IsAuthenticated())
			},
		},
		{
			name: "full claims",
			setup: func(c *fiber.Ctx) {
				c.Locals(LocUserID, id)
				c.Locals(LocUserName, "bob")
				c.Locals(LocEmail, "bob@example.com")
				c.Locals(LocRole, constants.RoleAdmin)
			},
			check: func(t *testing.T, ctx UserContext) {
				require.True(t, ctx.IsAuthenticated())
				assert.Equal(t, id, ctx.UserID.String())
				assert.Equal(t, "bob", ctx.UserName)
				assert.True(t, ctx.IsAdmin())
			},
		},
		{
			name: "malformed user id means anonymous",
			setup: func(c *fiber.Ctx) {
				c.Locals(LocUserID, "42")
			},
			check: func(t *testing.T, ctx UserContext) {
				assert.False(t, ctx.IsAuthenticated())
			},
		},
		{
			name: "unknown role collapses to user",
			setup: func(c *fiber.Ctx) {
				c.Locals(LocUserID, id)
				c.Locals(LocRole, "superadmin")
			},
			check: func(t *testing.T, ctx UserContext) {
				require.True(t, ctx.IsAuthenticated())
				assert.Equal(t, constants.RoleUser, ctx.Role)
				assert.False(t, ctx.IsAdmin())
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				tc.setup(c)
				tc.check(t, FromFiber(c))
				return c.SendStatus(fiber.StatusOK)
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}
