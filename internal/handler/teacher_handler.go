package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/utils"
)

// TeacherHandler serves teacher profile management.
type TeacherHandler struct {
	service service.TeacherService
	logger  zerolog.Logger
}

// NewTeacherHandler constructs a teacher handler.
func NewTeacherHandler(service service.TeacherService, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		service: service,
		logger:  logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register wires teacher routes.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	teachers, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list teachers")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list teachers")
	}
	return utils.SendSuccess(c, "teachers retrieved", teachers)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	teacher, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "teacher not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load teacher")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load teacher")
	}
	return utils.SendSuccess(c, "teacher retrieved", teacher)
}

func (h *TeacherHandler) create(c *fiber.Ctx) error {
	var payload dto.TeacherCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	teacher, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrUserNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "user not found")
		case errors.Is(err, service.ErrProfileRoleMismatch):
			return utils.SendError(c, fiber.StatusBadRequest, "user does not have the teacher role")
		case errors.Is(err, service.ErrTeacherProfileExists):
			return utils.SendError(c, fiber.StatusBadRequest, "teacher profile already exists for user")
		case errors.Is(err, service.ErrDepartmentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "department not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create teacher")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create teacher")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "teacher created", teacher)
}

func (h *TeacherHandler) update(c *fiber.Ctx) error {
	var payload dto.TeacherUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	teacher, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrTeacherNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "teacher not found")
		case errors.Is(err, service.ErrDepartmentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "department not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update teacher")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update teacher")
		}
	}

	return utils.SendSuccess(c, "teacher updated", teacher)
}

func (h *TeacherHandler) remove(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "teacher not found")
		case errors.Is(err, service.ErrTeacherHasCourses):
			return utils.SendError(c, fiber.StatusConflict, "teacher has assigned courses and cannot be deleted")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete teacher")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete teacher")
		}
	}
	return utils.SendSuccess(c, "teacher deleted", nil)
}
