package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func TestJsonOKEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "done", fiber.Map{"x": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
}

func TestJsonCreatedEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "created", nil)
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(fiber.StatusCreated), body["code"])
}

func TestJsonDeletedHasNoBody(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonDeleted(c)
	})
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Nil(t, body)
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "duplicate")
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "duplicate", body["message"])
}

func TestFromFiberErrorKeepsStatus(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusForbidden, "not yours"))
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "not yours", body["message"])
}

func TestFromFiberErrorHidesInternalDetail(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, assert.AnError)
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body["message"], assert.AnError.Error())
}
