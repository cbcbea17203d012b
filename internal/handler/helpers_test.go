package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/middleware"
)

func TestRequestLoggerCarriesCorrelationAndActor(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, "user-7")
		requestLogger(base, c).Info().Msg("handled")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "corr-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	logLine := buf.String()
	require.Contains(t, logLine, `"correlation_id":"corr-42"`)
	require.Contains(t, logLine, `"user_id":"user-7"`)
}

func TestRequestLoggerWithoutPrincipal(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	app := fiber.New()
	app.Get("/ping", func(c *fiber.Ctx) error {
		requestLogger(base, c).Info().Msg("handled")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotContains(t, buf.String(), "user_id")
}
