package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"grubdash/internal/handlers"
	"grubdash/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(zap.New(core))})

	driverErr := errors.New("no such table: dishes")
	app.Get("/invalid", func(c *fiber.Ctx) error { return validation.Invalid("Dish must include a name") })
	app.Get("/missing", func(c *fiber.Ctx) error { return validation.NotFound("Dish does not exist: %s", "42") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/broken", func(c *fiber.Ctx) error {
		return fmt.Errorf("failed to get dish by ID 42: %w", driverErr)
	})

	tests := []struct {
		path            string
		expectedStatus  int
		expectedMessage string
	}{
		{path: "/invalid", expectedStatus: http.StatusBadRequest, expectedMessage: "Dish must include a name"},
		{path: "/missing", expectedStatus: http.StatusNotFound, expectedMessage: "Dish does not exist: 42"},
		{path: "/fiber", expectedStatus: http.StatusTeapot, expectedMessage: "I'm a teapot"},
		{path: "/broken", expectedStatus: http.StatusInternalServerError, expectedMessage: "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			assert.Equal(t, tc.expectedMessage, body["message"])
			assert.NotContains(t, body["message"], "no such table")
		})
	}

	// Only the unexpected error is logged, with its full text.
	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/broken", entries[0].ContextMap()["path"])
	assert.Contains(t, entries[0].ContextMap()["error"], "no such table: dishes")
}
