package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/middleware"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/session"
	"github.com/edunexo/academico-api/internal/utils"
)

// AuthHandler serves registration, login, logout and the current-user lookup.
type AuthHandler struct {
	service    service.AuthService
	sessions   *session.Store
	cookieName string
	secure     bool
	logger     zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, sessions *session.Store, cookieName string, secure bool, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		sessions:   sessions,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic wires the routes that do not require a session.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
}

// RegisterProtected wires the routes that run behind the session middleware.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Get("/me", h.me)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Register(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrEmailTaken):
			return utils.SendError(c, fiber.StatusBadRequest, "email already registered")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to register user")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to register user")
		}
	}

	if err := h.startSession(c, user); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("user_id", user.ID).Msg("failed to start session after registration")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registration successful", user)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Login(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrInvalidCredentials):
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid email or password")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to log in user")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to log in")
		}
	}

	if err := h.startSession(c, user); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("user_id", user.ID).Msg("failed to start session")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return utils.SendSuccess(c, "login successful", user)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			requestLogger(h.logger, c).Warn().Err(err).Msg("failed to destroy session")
		}
	}

	h.clearCookie(c)
	return utils.SendSuccess(c, "logout successful", nil)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}
	return utils.SendSuccess(c, "current user", user)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, user models.User) error {
	token, err := h.sessions.Create(c.Context(), user.ID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL() / time.Second),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
