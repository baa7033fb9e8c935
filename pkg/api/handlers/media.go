package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// MediaHandler handles device info, playback, and text entry endpoints
type MediaHandler struct {
	registry *device.Registry
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(registry *device.Registry) *MediaHandler {
	return &MediaHandler{registry: registry}
}

// Info handles GET /devices/:id/info
// @Summary      Get device info
// @Description  Returns the device-info document with camelCase keys and typed booleans
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.InfoResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/info [get]
func (h *MediaHandler) Info(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	info, err := ctrl.Info(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.InfoResponse{
		Device: d.Name,
		Info:   info,
	})
}

// Status handles GET /devices/:id/status
// @Summary      Get device status
// @Description  Returns device info, the active app, and the installed apps in one call
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.StatusResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/status [get]
func (h *MediaHandler) Status(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	status, err := ctrl.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		Device: d.Name,
		Status: *status,
	})
}

// MediaPlayer handles GET /devices/:id/media-player
// @Summary      Get media player state
// @Description  Returns playback state, position, and stream format
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.MediaPlayerResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/media-player [get]
func (h *MediaHandler) MediaPlayer(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	player, err := ctrl.MediaPlayer(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MediaPlayerResponse{
		Device: d.Name,
		Player: *player,
	})
}

// Search handles POST /devices/:id/search
// @Summary      Search content
// @Description  Opens the device's search with the given query. Numeric providers are channel IDs
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Device ID or name"
// @Param        request  body      device.SearchQuery  true  "Search query"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid query"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Failure      502      {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/search [post]
func (h *MediaHandler) Search(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	var query device.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := query.Validate(); err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.Search(c.Request.Context(), query); err != nil {
		respondError(c, err)
		return
	}

	value := query.Keyword
	if value == "" {
		value = query.Title
	}
	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    d.Name,
		Action:    "search",
		Value:     value,
		Timestamp: time.Now(),
	})
}

// Text handles POST /devices/:id/text
// @Summary      Type text
// @Description  Enters literal text into the focused field, one character at a time
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Device ID or name"
// @Param        request  body      types.TextRequest  true  "Text to type"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Failure      502      {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/text [post]
func (h *MediaHandler) Text(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	var req types.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "text is required")
		return
	}

	if err := ctrl.TypeText(c.Request.Context(), req.Text); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    d.Name,
		Action:    "text",
		Value:     req.Text,
		Timestamp: time.Now(),
	})
}
