package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edunexo/academico-api/internal/config"
	"github.com/edunexo/academico-api/internal/utils"
)

var startedAt = time.Now().UTC()

// HealthResponse is the payload of the liveness endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	UptimeSec   int64     `json:"uptime_seconds"`
}

// HealthCheck reports process liveness and basic deployment identity.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now().UTC()

		return utils.SendSuccess(c, "service healthy", HealthResponse{
			Status:      "ok",
			Timestamp:   now,
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			UptimeSec:   int64(now.Sub(startedAt) / time.Second),
		})
	}
}
