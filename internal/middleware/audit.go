package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/edunexo/academico-api/internal/service"
)

// Audit records an audit trail entry for every successful mutation. It must
// run after SessionProtected so the actor is known.
func Audit(audit service.AuditService) fiber.Handler {
	actions := map[string]string{
		fiber.MethodPost:   "create",
		fiber.MethodPatch:  "update",
		fiber.MethodDelete: "delete",
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()

		action, mutating := actions[c.Method()]
		if !mutating {
			return err
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return err
		}

		actorID, ok := c.Locals(LocalUserID).(string)
		if !ok || actorID == "" {
			return err
		}

		resource := resourceFromPath(c.Path())
		if resource == "" || resource == "auth" {
			return err
		}

		audit.Record(c.Context(), actorID, action, resource, c.Params("id"), map[string]interface{}{
			"path":   c.Path(),
			"method": c.Method(),
		})

		return err
	}
}

func resourceFromPath(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" {
		return ""
	}
	return parts[1]
}
