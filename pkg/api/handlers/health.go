package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry   *device.Registry
	discoverer device.Discoverer
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(registry *device.Registry, discoverer device.Discoverer) *HealthHandler {
	return &HealthHandler{registry: registry, discoverer: discoverer}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health of the service and how many registered devices could be brought up
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	devices := h.registry.List()

	unavailable := 0
	for _, d := range devices {
		if _, ctrl, err := h.registry.Get(d.ID); err == nil {
			if _, null := ctrl.(*device.NullController); null {
				unavailable++
			}
		}
	}

	status := "healthy"
	if unavailable > 0 {
		status = "degraded"
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status:      status,
		Devices:     len(devices),
		Unavailable: unavailable,
		Scanning:    h.discoverer != nil && h.discoverer.Scanning(),
		Timestamp:   time.Now(),
	})
}
