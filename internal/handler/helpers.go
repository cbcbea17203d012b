package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/middleware"
)

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid payload"
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fieldError.Field())
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

func userIDFromContext(c *fiber.Ctx) string {
	if v := c.Locals(middleware.LocalUserID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		lctx := base.With()
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			lctx = lctx.Str("correlation_id", correlation)
		}
		if actor := userIDFromContext(c); actor != "" {
			lctx = lctx.Str("user_id", actor)
		}
		logger = lctx.Logger()
	}
	return &logger
}
