package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/utils"
)

// DepartmentHandler serves the department catalog. Update and delete stay
// internal: the HTTP surface only exposes reads and creation.
type DepartmentHandler struct {
	service service.DepartmentService
	logger  zerolog.Logger
}

// NewDepartmentHandler constructs a department handler.
func NewDepartmentHandler(service service.DepartmentService, logger zerolog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
		logger:  logger.With().Str("component", "department_handler").Logger(),
	}
}

// Register wires department routes.
func (h *DepartmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
}

func (h *DepartmentHandler) list(c *fiber.Ctx) error {
	departments, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list departments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list departments")
	}
	return utils.SendSuccess(c, "departments retrieved", departments)
}

func (h *DepartmentHandler) get(c *fiber.Ctx) error {
	department, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "department not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load department")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load department")
	}
	return utils.SendSuccess(c, "department retrieved", department)
}

func (h *DepartmentHandler) create(c *fiber.Ctx) error {
	var payload dto.DepartmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	department, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create department")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create department")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "department created", department)
}

// SubjectHandler serves the subject catalog.
type SubjectHandler struct {
	service service.SubjectService
	logger  zerolog.Logger
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(service service.SubjectService, logger zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{
		service: service,
		logger:  logger.With().Str("component", "subject_handler").Logger(),
	}
}

// Register wires subject routes.
func (h *SubjectHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
}

func (h *SubjectHandler) list(c *fiber.Ctx) error {
	subjects, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list subjects")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list subjects")
	}
	return utils.SendSuccess(c, "subjects retrieved", subjects)
}

func (h *SubjectHandler) get(c *fiber.Ctx) error {
	subject, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "subject not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load subject")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load subject")
	}
	return utils.SendSuccess(c, "subject retrieved", subject)
}

func (h *SubjectHandler) create(c *fiber.Ctx) error {
	var payload dto.SubjectCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	subject, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrDuplicateSubjectCode):
			return utils.SendError(c, fiber.StatusBadRequest, "subject code already in use")
		case errors.Is(err, service.ErrDepartmentNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "department not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create subject")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create subject")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "subject created", subject)
}

// PeriodHandler serves academic period management, including the single
// active period switch.
type PeriodHandler struct {
	service service.PeriodService
	logger  zerolog.Logger
}

// NewPeriodHandler constructs a period handler.
func NewPeriodHandler(service service.PeriodService, logger zerolog.Logger) *PeriodHandler {
	return &PeriodHandler{
		service: service,
		logger:  logger.With().Str("component", "period_handler").Logger(),
	}
}

// Register wires academic period routes.
func (h *PeriodHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/active", h.active)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Post("/:id/activate", h.activate)
}

func (h *PeriodHandler) list(c *fiber.Ctx) error {
	periods, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list academic periods")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list academic periods")
	}
	return utils.SendSuccess(c, "academic periods retrieved", periods)
}

func (h *PeriodHandler) active(c *fiber.Ctx) error {
	period, err := h.service.GetActive(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActivePeriod) {
			return utils.SendError(c, fiber.StatusNotFound, "no active academic period")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load active academic period")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load active academic period")
	}
	return utils.SendSuccess(c, "active academic period", period)
}

func (h *PeriodHandler) get(c *fiber.Ctx) error {
	period, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "academic period not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load academic period")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load academic period")
	}
	return utils.SendSuccess(c, "academic period retrieved", period)
}

func (h *PeriodHandler) create(c *fiber.Ctx) error {
	var payload dto.PeriodCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	period, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrPeriodDatesInvalid):
			return utils.SendError(c, fiber.StatusBadRequest, "end date must be after start date")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create academic period")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create academic period")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "academic period created", period)
}

func (h *PeriodHandler) update(c *fiber.Ctx) error {
	var payload dto.PeriodUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	period, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrPeriodNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "academic period not found")
		case errors.Is(err, service.ErrPeriodDatesInvalid):
			return utils.SendError(c, fiber.StatusBadRequest, "end date must be after start date")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update academic period")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update academic period")
		}
	}

	return utils.SendSuccess(c, "academic period updated", period)
}

func (h *PeriodHandler) activate(c *fiber.Ctx) error {
	period, err := h.service.Activate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "academic period not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to activate academic period")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to activate academic period")
	}
	return utils.SendSuccess(c, "academic period activated", period)
}
