package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

const (
	defaultScanSeconds = 120
	maxScanSeconds     = 600
	maxSearchSeconds   = 60
)

// DiscoveryHandler handles network discovery endpoints
type DiscoveryHandler struct {
	discoverer device.Discoverer
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discoverer device.Discoverer) *DiscoveryHandler {
	return &DiscoveryHandler{discoverer: discoverer}
}

// Discover handles GET /discovery/devices
// @Summary      Discover devices
// @Description  Runs one SSDP scan and returns every device that answered with its device-info. Devices that answer SSDP but not device-info are skipped
// @Tags         discovery
// @Produce      json
// @Param        timeout_seconds  query     int  false  "How long to listen for replies (default 10, max 60)"
// @Success      200              {object}  types.DiscoverResponse
// @Failure      400              {object}  types.ErrorResponse  "Invalid timeout"
// @Failure      500              {object}  types.ErrorResponse  "Network error"
// @Router       /discovery/devices [get]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	var timeout time.Duration
	if raw := c.Query("timeout_seconds"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 || seconds > maxSearchSeconds {
			badRequest(c, "timeout_seconds must be between 1 and 60")
			return
		}
		timeout = time.Duration(seconds) * time.Second
	}

	found, err := h.discoverer.DiscoverAll(c.Request.Context(), timeout)
	if err != nil {
		respondError(c, err)
		return
	}
	if found == nil {
		found = []device.DiscoveredInfo{}
	}

	c.JSON(http.StatusOK, types.DiscoverResponse{
		Devices: found,
		Count:   len(found),
	})
}

// StartDiscovery handles POST /discovery/start
// @Summary      Start background discovery
// @Description  Scans repeatedly for the given duration, publishing device_found events on /discovery/events
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Param        request  body      types.StartDiscoveryRequest  false  "Scan duration (default 120 seconds, max 600)"
// @Success      200      {object}  types.StartDiscoveryResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid duration"
// @Router       /discovery/start [post]
func (h *DiscoveryHandler) StartDiscovery(c *gin.Context) {
	var req types.StartDiscoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Use default duration if not provided
		req.DurationSeconds = defaultScanSeconds
	}

	if req.DurationSeconds <= 0 {
		req.DurationSeconds = defaultScanSeconds
	}

	if req.DurationSeconds > maxScanSeconds {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_duration",
			Message: "Duration cannot exceed 600 seconds",
		})
		return
	}

	expiresAt, err := h.discoverer.Start(time.Duration(req.DurationSeconds) * time.Second)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_duration",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.StartDiscoveryResponse{
		Status:          "scanning",
		ExpiresAt:       expiresAt,
		DurationSeconds: req.DurationSeconds,
	})
}

// StopDiscovery handles POST /discovery/stop
// @Summary      Stop background discovery
// @Description  Ends a running background scan
// @Tags         discovery
// @Produce      json
// @Success      200  {object}  types.StopDiscoveryResponse
// @Router       /discovery/stop [post]
func (h *DiscoveryHandler) StopDiscovery(c *gin.Context) {
	h.discoverer.Stop()

	c.JSON(http.StatusOK, types.StopDiscoveryResponse{
		Status: "stopped",
	})
}

// Events handles GET /discovery/events (SSE stream)
// @Summary      Subscribe to discovery events
// @Description  Server-Sent Events stream of scan_started, device_found, and scan_finished events
// @Tags         discovery
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE event stream"
// @Router       /discovery/events [get]
func (h *DiscoveryHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	eventChan := h.discoverer.Subscribe()
	defer h.discoverer.Unsubscribe(eventChan)

	sendSSEEvent(c.Writer, "connected", map[string]any{
		"timestamp": time.Now(),
		"scanning":  h.discoverer.Scanning(),
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return

		case event, ok := <-eventChan:
			if !ok {
				return
			}
			sendSSEEvent(c.Writer, event.Type, event)
			c.Writer.Flush()

		case <-ticker.C:
			sendSSEEvent(c.Writer, "heartbeat", map[string]any{
				"timestamp": time.Now(),
			})
			c.Writer.Flush()
		}
	}
}

// sendSSEEvent writes an SSE event to the response
func sendSSEEvent(w io.Writer, eventType string, data any) {
	jsonData, _ := json.Marshal(data)
	_, _ = io.WriteString(w, "event: "+eventType+"\n")
	_, _ = io.WriteString(w, "data: "+string(jsonData)+"\n\n")
}
