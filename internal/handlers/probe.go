package handlers

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dataset"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	ds *dataset.Dataset
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(ds *dataset.Dataset) *ProbeHandler {
	return &ProbeHandler{ds: ds}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once launch records are loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.ds == nil || h.ds.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset not loaded",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"records": h.ds.Len(),
	})
}
