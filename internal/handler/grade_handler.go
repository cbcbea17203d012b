package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/utils"
)

// GradeHandler serves grade recording and review.
type GradeHandler struct {
	service service.GradeService
	logger  zerolog.Logger
}

// NewGradeHandler constructs a grade handler.
func NewGradeHandler(service service.GradeService, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		logger:  logger.With().Str("component", "grade_handler").Logger(),
	}
}

// Register wires grade routes.
func (h *GradeHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *GradeHandler) list(c *fiber.Ctx) error {
	if enrollmentID := strings.TrimSpace(c.Query("enrollmentId")); enrollmentID != "" {
		grades, err := h.service.ListByEnrollment(c.Context(), enrollmentID)
		if err != nil {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to list grades")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to list grades")
		}
		return utils.SendSuccess(c, "grades retrieved", grades)
	}

	grades, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list grades")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list grades")
	}
	return utils.SendSuccess(c, "grades retrieved", grades)
}

func (h *GradeHandler) create(c *fiber.Ctx) error {
	var payload dto.GradeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	grade, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "enrollment not found")
		case errors.Is(err, service.ErrGradeOutOfBounds):
			return utils.SendError(c, fiber.StatusBadRequest, "grade exceeds the maximum grade")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create grade")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create grade")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "grade created", grade)
}

func (h *GradeHandler) update(c *fiber.Ctx) error {
	var payload dto.GradeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	grade, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrGradeNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "grade not found")
		case errors.Is(err, service.ErrGradeOutOfBounds):
			return utils.SendError(c, fiber.StatusBadRequest, "grade exceeds the maximum grade")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update grade")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update grade")
		}
	}

	return utils.SendSuccess(c, "grade updated", grade)
}

func (h *GradeHandler) remove(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrGradeNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "grade not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete grade")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete grade")
	}
	return utils.SendSuccess(c, "grade deleted", nil)
}
