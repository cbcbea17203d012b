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

// EnrollmentHandler serves enrollment management. Listings are always
// filtered by student or course.
type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  zerolog.Logger
}

// NewEnrollmentHandler constructs an enrollment handler.
func NewEnrollmentHandler(service service.EnrollmentService, logger zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		logger:  logger.With().Str("component", "enrollment_handler").Logger(),
	}
}

// Register wires enrollment routes.
func (h *EnrollmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
}

func (h *EnrollmentHandler) list(c *fiber.Ctx) error {
	studentID := strings.TrimSpace(c.Query("studentId"))
	courseID := strings.TrimSpace(c.Query("courseId"))

	switch {
	case studentID != "":
		items, err := h.service.ListByStudent(c.Context(), studentID)
		if err != nil {
			return h.listError(c, err)
		}
		return utils.SendSuccess(c, "enrollments retrieved", items)
	case courseID != "":
		items, err := h.service.ListByCourse(c.Context(), courseID)
		if err != nil {
			return h.listError(c, err)
		}
		return utils.SendSuccess(c, "enrollments retrieved", items)
	default:
		return utils.SendError(c, fiber.StatusBadRequest, service.ErrEnrollmentFilter.Error())
	}
}

func (h *EnrollmentHandler) listError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("failed to list enrollments")
	return utils.SendError(c, fiber.StatusInternalServerError, "failed to list enrollments")
}

func (h *EnrollmentHandler) get(c *fiber.Ctx) error {
	enrollment, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "enrollment not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load enrollment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load enrollment")
	}
	return utils.SendSuccess(c, "enrollment retrieved", enrollment)
}

func (h *EnrollmentHandler) create(c *fiber.Ctx) error {
	var payload dto.EnrollmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	enrollment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "student not found")
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "course not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create enrollment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create enrollment")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "enrollment created", enrollment)
}

func (h *EnrollmentHandler) update(c *fiber.Ctx) error {
	var payload dto.EnrollmentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	enrollment, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "enrollment not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update enrollment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update enrollment")
		}
	}

	return utils.SendSuccess(c, "enrollment updated", enrollment)
}
