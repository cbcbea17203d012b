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

// AttendanceHandler serves per-enrollment attendance records.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs an attendance handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register wires attendance routes.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	enrollmentID := strings.TrimSpace(c.Query("enrollmentId"))
	if enrollmentID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "enrollmentId query parameter is required")
	}

	records, err := h.service.ListByEnrollment(c.Context(), enrollmentID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list attendance")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list attendance")
	}
	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) create(c *fiber.Ctx) error {
	var payload dto.AttendanceCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "enrollment not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to record attendance")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to record attendance")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance recorded", record)
}

// ScheduleHandler serves weekly course schedules.
type ScheduleHandler struct {
	service service.ScheduleService
	logger  zerolog.Logger
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(service service.ScheduleService, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		logger:  logger.With().Str("component", "schedule_handler").Logger(),
	}
}

// Register wires schedule routes.
func (h *ScheduleHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *ScheduleHandler) list(c *fiber.Ctx) error {
	courseID := strings.TrimSpace(c.Query("courseId"))
	if courseID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "courseId query parameter is required")
	}

	schedules, err := h.service.ListByCourse(c.Context(), courseID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list schedules")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list schedules")
	}
	return utils.SendSuccess(c, "schedules retrieved", schedules)
}

func (h *ScheduleHandler) create(c *fiber.Ctx) error {
	var payload dto.ScheduleCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	schedule, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "course not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create schedule")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create schedule")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "schedule created", schedule)
}

// AssignmentHandler serves course assignments.
type AssignmentHandler struct {
	service service.AssignmentService
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs an assignment handler.
func NewAssignmentHandler(service service.AssignmentService, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register wires assignment routes.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	courseID := strings.TrimSpace(c.Query("courseId"))
	if courseID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "courseId query parameter is required")
	}

	assignments, err := h.service.ListByCourse(c.Context(), courseID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list assignments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return utils.SendSuccess(c, "assignments retrieved", assignments)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	assignment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "course not found")
		case errors.Is(err, service.ErrAssignmentDueDate):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid assignment due date")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create assignment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create assignment")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "assignment created", assignment)
}
