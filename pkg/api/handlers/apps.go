package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// AppsHandler handles installed app endpoints
type AppsHandler struct {
	registry *device.Registry
}

// NewAppsHandler creates a new apps handler
func NewAppsHandler(registry *device.Registry) *AppsHandler {
	return &AppsHandler{registry: registry}
}

// Apps handles GET /devices/:id/apps
// @Summary      List installed apps
// @Description  Fetches the installed app list from the device. The result also replaces the cache used to resolve launches
// @Tags         apps
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.AppsResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/apps [get]
func (h *AppsHandler) Apps(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	apps, err := ctrl.Apps(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AppsResponse{
		Device: d.Name,
		Apps:   apps,
		Count:  len(apps),
	})
}

// ActiveApp handles GET /devices/:id/active
// @Summary      Get the active app
// @Description  Returns the foreground app and screensaver. app is omitted on the home screen
// @Tags         apps
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.ActiveAppResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/active [get]
func (h *AppsHandler) ActiveApp(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	active, err := ctrl.ActiveApp(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActiveAppResponse{
		Device:    d.Name,
		ActiveApp: *active,
	})
}

// Launch handles POST /devices/:id/launch/:app
// @Summary      Launch an app
// @Description  Launches an app by ID or case-insensitive name. The installed app list is refetched once when the app is not cached
// @Tags         apps
// @Accept       json
// @Produce      json
// @Param        id         path      string               true   "Device ID or name"
// @Param        app        path      string               true   "App ID or name"
// @Param        contentId  query     string               false  "Deep-link content ID"
// @Param        mediaType  query     string               false  "Deep-link media type"
// @Param        request    body      types.LaunchRequest  false  "Deep-link arguments"
// @Success      200        {object}  types.LaunchResponse
// @Failure      400        {object}  types.ErrorResponse  "Invalid request"
// @Failure      404        {object}  types.ErrorResponse  "Device or app not found"
// @Failure      500        {object}  types.ErrorResponse  "App name is ambiguous"
// @Failure      502        {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/launch/{app} [post]
func (h *AppsHandler) Launch(c *gin.Context) {
	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return
	}

	var req types.LaunchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}
	if v := c.Query("contentId"); v != "" {
		req.ContentID = v
	}
	if v := c.Query("mediaType"); v != "" {
		req.MediaType = v
	}

	app, err := ctrl.Launch(c.Request.Context(), c.Param("app"), req.Params())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.LaunchResponse{
		Device:    d.Name,
		App:       app,
		Timestamp: time.Now(),
	})
}

// IconInfo handles GET /devices/:id/icon-info
// @Summary      Get app icon info
// @Description  Returns the MIME type and file extension of an app icon
// @Tags         apps
// @Produce      json
// @Param        id     path      string  true  "Device ID or name"
// @Param        appId  query     string  true  "App ID"
// @Success      200    {object}  types.IconInfoResponse
// @Failure      400    {object}  types.ErrorResponse  "Missing appId"
// @Failure      404    {object}  types.ErrorResponse  "Device not found"
// @Failure      502    {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/icon-info [get]
func (h *AppsHandler) IconInfo(c *gin.Context) {
	d, icon, appID, ok := h.icon(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, types.IconInfoResponse{
		Device:   d.Name,
		AppID:    appID,
		IconInfo: icon.Info(),
	})
}

// Icon handles GET /devices/:id/icon
// @Summary      Get app icon
// @Description  Returns the app icon image as served by the device
// @Tags         apps
// @Produce      image/png
// @Produce      image/jpeg
// @Param        id     path      string  true  "Device ID or name"
// @Param        appId  query     string  true  "App ID"
// @Success      200    {file}    binary
// @Failure      400    {object}  types.ErrorResponse  "Missing appId"
// @Failure      404    {object}  types.ErrorResponse  "Device not found"
// @Failure      502    {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/icon [get]
func (h *AppsHandler) Icon(c *gin.Context) {
	_, icon, _, ok := h.icon(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, icon.ContentType, icon.Data)
}

func (h *AppsHandler) icon(c *gin.Context) (device.Device, *device.Icon, string, bool) {
	appID := c.Query("appId")
	if appID == "" {
		badRequest(c, "appId is required")
		return device.Device{}, nil, "", false
	}

	d, ctrl, ok := lookup(c, h.registry)
	if !ok {
		return device.Device{}, nil, "", false
	}

	icon, err := ctrl.Icon(c.Request.Context(), appID)
	if err != nil {
		respondError(c, err)
		return device.Device{}, nil, "", false
	}
	return d, icon, appID, true
}
