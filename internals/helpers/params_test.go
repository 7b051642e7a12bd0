package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramVia(t *testing.T, raw string) (string, error) {
	t.Helper()

	app := fiber.New()
	var got string
	var gotErr error
	app.Get("/:id", func(c *fiber.Ctx) error {
		got, gotErr = ParamUUID(c, "id")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/"+raw, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got, gotErr
}

func TestParamUUIDAcceptsValid(t *testing.T) {
	id := uuid.NewString()
	got, err := paramVia(t, id)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParamUUIDCanonicalizes(t *testing.T) {
	got, err := paramVia(t, "A987FBC9-4BED-3078-CF07-9141BA07C9F3")
	require.NoError(t, err)
	assert.Equal(t, "a987fbc9-4bed-3078-cf07-9141ba07c9f3", got)
}

func TestParamUUIDRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"not-a-uuid", "42", "a987fbc9-4bed-3078-cf07"} {
		_, err := paramVia(t, raw)
		require.Error(t, err, raw)

		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}
