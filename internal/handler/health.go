package handler

import (
	"time"

	"study-helper/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ISO8601 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler reports liveness
type HealthHandler struct {
	environment string
	now         func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		now:         time.Now,
	}
}

// Health godoc
// @Summary Health check
// @Description Returns service status, the current time and the environment name
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Timestamp:   h.now().UTC().Format(timestampLayout),
		Environment: h.environment,
	})
}

// NotFound answers every unmatched route
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Success: false,
		Error:   "Endpoint not found",
	})
}
