package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/utils"
)

// CourseHandler serves course management.
type CourseHandler struct {
	service service.CourseService
	logger  zerolog.Logger
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(service service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register wires course routes.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *CourseHandler) list(c *fiber.Ctx) error {
	courses, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list courses")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list courses")
	}
	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *CourseHandler) get(c *fiber.Ctx) error {
	course, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "course not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load course")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load course")
	}
	return utils.SendSuccess(c, "course retrieved", course)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	course, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrDuplicateCourseCode):
			return utils.SendError(c, fiber.StatusBadRequest, "course code already in use")
		case errors.Is(err, service.ErrSubjectNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "subject not found")
		case errors.Is(err, service.ErrTeacherNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "teacher not found")
		case errors.Is(err, service.ErrPeriodNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "academic period not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create course")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create course")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "course created", course)
}

func (h *CourseHandler) update(c *fiber.Ctx) error {
	var payload dto.CourseUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	course, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "course not found")
		case errors.Is(err, service.ErrSubjectNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "subject not found")
		case errors.Is(err, service.ErrTeacherNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "teacher not found")
		case errors.Is(err, service.ErrPeriodNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "academic period not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update course")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update course")
		}
	}

	return utils.SendSuccess(c, "course updated", course)
}

func (h *CourseHandler) remove(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "course not found")
		case errors.Is(err, service.ErrCourseHasDependents):
			return utils.SendError(c, fiber.StatusConflict, "course has dependents and cannot be deleted")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete course")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete course")
		}
	}
	return utils.SendSuccess(c, "course deleted", nil)
}
