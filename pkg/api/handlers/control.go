package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// ControlHandler handles remote control endpoints
type ControlHandler struct {
	registry *device.Registry
}

// NewControlHandler creates a new control handler
func NewControlHandler(registry *device.Registry) *ControlHandler {
	return &ControlHandler{registry: registry}
}

// Buttons handles GET /devices/:id/buttons
// @Summary      List buttons
// @Description  Returns the standard button names the device accepts
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.ButtonsResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/buttons [get]
func (h *ControlHandler) Buttons(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, types.ButtonsResponse{
		Device:  d.Name,
		Buttons: ctrl.Buttons(),
	})
}

// PressButton handles POST /devices/:id/buttons/:button
// @Summary      Press a button
// @Description  Sends a single remote control button press
// @Tags         control
// @Produce      json
// @Param        id      path      string  true  "Device ID or name"
// @Param        button  path      string  true  "Button name, e.g. HOME or VOLUME_UP"
// @Success      200     {object}  types.ActionResponse
// @Failure      400     {object}  types.ErrorResponse  "Unknown button"
// @Failure      404     {object}  types.ErrorResponse  "Device not found"
// @Failure      502     {object}  types.ErrorResponse  "Device unreachable"
// @Failure      504     {object}  types.ErrorResponse  "Request timed out"
// @Router       /devices/{id}/buttons/{button} [post]
func (h *ControlHandler) PressButton(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	button := c.Param("button")
	if err := ctrl.PressButton(c.Request.Context(), button); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    d.Name,
		Action:    "button",
		Value:     button,
		Timestamp: time.Now(),
	})
}

// SwitchInput handles POST /devices/:id/input/:input
// @Summary      Switch input
// @Description  Selects a standard input (TUNER, HDMI1-4, AV1)
// @Tags         control
// @Produce      json
// @Param        id     path      string  true  "Device ID or name"
// @Param        input  path      string  true  "Input name"
// @Success      200    {object}  types.ActionResponse
// @Failure      400    {object}  types.ErrorResponse  "Unknown input"
// @Failure      404    {object}  types.ErrorResponse  "Device not found"
// @Failure      502    {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/input/{input} [post]
func (h *ControlHandler) SwitchInput(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	input := c.Param("input")
	if err := ctrl.SwitchInput(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    d.Name,
		Action:    "input",
		Value:     input,
		Timestamp: time.Now(),
	})
}

// SwitchMode handles POST /devices/:id/mode
// @Summary      Switch mode
// @Description  Notifies the device that the hub changed activity mode
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Device ID or name"
// @Param        request  body      types.SwitchModeRequest  true  "Old and new mode"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/mode [post]
func (h *ControlHandler) SwitchMode(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	var req types.SwitchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "new_mode is required")
		return
	}

	if err := ctrl.SwitchMode(c.Request.Context(), req.OldMode, req.NewMode); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    d.Name,
		Action:    "mode",
		Value:     req.NewMode,
		Timestamp: time.Now(),
	})
}

// Power handles GET /devices/:id/power
// @Summary      Get power state
// @Description  Reports ON when the device answers and is not in standby, OFF otherwise
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.PowerResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/power [get]
func (h *ControlHandler) Power(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	state, err := ctrl.PowerState(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.PowerResponse{
		Device: d.Name,
		Power:  state,
	})
}
