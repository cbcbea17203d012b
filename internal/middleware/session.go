package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/session"
	"github.com/edunexo/academico-api/internal/utils"
)

// Locals keys populated by the session middleware.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
	LocalUser     = "user"
)

// SessionProtected resolves the session cookie to a principal and stores it
// in the request locals. Requests without a live session are rejected with 401.
func SessionProtected(store *session.Store, auth service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}

		userID, err := store.Get(c.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return utils.SendError(c, fiber.StatusUnauthorized, "session expired")
			}
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}

		user, err := auth.GetUser(c.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return utils.SendError(c, fiber.StatusUnauthorized, "session expired")
			}
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		c.Locals(LocalUser, user)

		return c.Next()
	}
}

// CurrentUser returns the principal resolved by SessionProtected, if any.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(LocalUser).(models.User)
	return user, ok
}
