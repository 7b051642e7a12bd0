package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The controller runs against a nil DB here; a malformed id must be turned
// away before any query is attempted.
func newBadIDApp() *fiber.App {
	ctrl := NewQuestionController(nil)

	app := fiber.New()
	app.Get("/questions/:id", ctrl.GetQuestionByID)
	app.Put("/questions/:id", ctrl.UpdateQuestion)
	app.Delete("/questions/:id", ctrl.DeleteQuestion)
	return app
}

func TestMalformedQuestionIDIsBadRequest(t *testing.T) {
	app := newBadIDApp()

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/questions/not-a-uuid", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "error", body["status"])
		})
	}
}

func TestNumericQuestionIDIsBadRequest(t *testing.T) {
	app := newBadIDApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/questions/12345", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
