package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/api/types"
	"github.com/urmzd/homai-roku/pkg/device"
)

// respondError maps a device error to an HTTP status and error code.
// ErrTimeout is checked before ErrTransport since timeouts match both.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "device_error"

	var ambiguous *device.AmbiguousMatchError
	switch {
	case errors.Is(err, device.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, device.ErrAppNotFound):
		status, code = http.StatusNotFound, "app_not_found"
	case errors.Is(err, device.ErrInvalidButton):
		status, code = http.StatusBadRequest, "invalid_button"
	case errors.Is(err, device.ErrInvalidInput):
		status, code = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, device.ErrValidation):
		status, code = http.StatusBadRequest, "validation_error"
	case errors.Is(err, device.ErrUnsupported):
		status, code = http.StatusBadRequest, "unsupported"
	case errors.Is(err, device.ErrDuplicate):
		status, code = http.StatusConflict, "duplicate"
	case errors.Is(err, device.ErrNotConnected):
		status, code = http.StatusServiceUnavailable, "device_unavailable"
	case errors.Is(err, device.ErrTimeout):
		status, code = http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, device.ErrTransport):
		status, code = http.StatusBadGateway, "device_unreachable"
	case errors.As(err, &ambiguous):
		code = "ambiguous_app"
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Device request failed")
	}
	c.JSON(status, types.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

// badRequest rejects a malformed request body or parameter.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}

// lookup resolves the :id path parameter against the registry, writing a
// 404 when it is unknown.
func lookup(c *gin.Context, registry *device.Registry) (device.Device, device.MediaController, bool) {
	d, ctrl, err := registry.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return device.Device{}, nil, false
	}
	return d, ctrl, true
}

func toView(d device.Device, ctrl device.MediaController) types.DeviceView {
	_, unavailable := ctrl.(*device.NullController)
	return types.DeviceView{
		ID:        d.ID,
		Name:      d.Name,
		Protocol:  d.Protocol,
		Config:    d.Config,
		Available: !unavailable,
		CreatedAt: d.CreatedAt,
	}
}
