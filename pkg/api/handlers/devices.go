package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// DevicesHandler handles device CRUD endpoints
type DevicesHandler struct {
	registry *device.Registry
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(registry *device.Registry) *DevicesHandler {
	return &DevicesHandler{registry: registry}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns every registered device ordered by name
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	devices := h.registry.List()

	result := make([]types.DeviceView, 0, len(devices))
	for _, d := range devices {
		_, ctrl, err := h.registry.Get(d.ID)
		if err != nil {
			// Removed concurrently
			continue
		}
		result = append(result, toView(d, ctrl))
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns a device by ID or case-insensitive name
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: toView(d, ctrl),
	})
}

// CreateDevice handles POST /devices
// @Summary      Register a device
// @Description  Registers a device. The config document is validated against the protocol's JSON Schema
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        request  body      types.CreateDeviceRequest  true  "Device to register"
// @Success      201      {object}  types.DeviceResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request or config"
// @Failure      409      {object}  types.ErrorResponse  "Name already taken"
// @Failure      500      {object}  types.ErrorResponse  "Storage error"
// @Router       /devices [post]
func (h *DevicesHandler) CreateDevice(c *gin.Context) {
	var req types.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and config are required")
		return
	}
	if req.Protocol == "" {
		req.Protocol = device.ProtocolRoku
	}

	d, err := h.registry.Add(c.Request.Context(), req.Name, req.Protocol, req.Config)
	if err != nil {
		respondError(c, err)
		return
	}
	_, ctrl, err := h.registry.Get(d.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.DeviceResponse{
		Device: toView(d, ctrl),
	})
}

// RenameDevice handles PATCH /devices/:id
// @Summary      Rename a device
// @Description  Changes the name of a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Device ID or name"
// @Param        request  body      types.RenameDeviceRequest  true  "New name"
// @Success      200      {object}  types.DeviceResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Failure      409      {object}  types.ErrorResponse  "Name already taken"
// @Router       /devices/{id} [patch]
func (h *DevicesHandler) RenameDevice(c *gin.Context) {
	var req types.RenameDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name is required")
		return
	}

	d, err := h.registry.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	_, ctrl, err := h.registry.Get(d.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: toView(d, ctrl),
	})
}

// RemoveDevice handles DELETE /devices/:id
// @Summary      Remove a device
// @Description  Unregisters a device
// @Tags         devices
// @Param        id   path  string  true  "Device ID or name"
// @Success      204  "Device removed successfully"
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [delete]
func (h *DevicesHandler) RemoveDevice(c *gin.Context) {
	if err := h.registry.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
