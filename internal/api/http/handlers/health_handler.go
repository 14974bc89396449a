package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/observability"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. All collaborators are in-process, so
// readiness follows liveness; the counter snapshot rides along for probes
// that scrape it.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	requests, errs := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"status": "ready",
		"metrics": fiber.Map{
			"requests": requests,
			"errors":   errs,
		},
	})
}
