package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobtrackd/jobtrackd/internal/config"
	"github.com/jobtrackd/jobtrackd/internal/services"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// GetHealth handles GET /health
// @Summary Health check
// @Description Report whether the service and its database are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
