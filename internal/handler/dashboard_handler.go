package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/utils"
)

// DashboardHandler serves aggregate statistics.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register wires dashboard routes.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/statistics", h.statistics)
}

func (h *DashboardHandler) statistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load dashboard statistics")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load dashboard statistics")
	}
	return utils.SendSuccess(c, "dashboard statistics", stats)
}
