package types

import (
	"encoding/json"
	"time"

	"github.com/urmzd/homai-roku/pkg/device"
)

// --- Request DTOs ---

// StartDiscoveryRequest is the request body for POST /discovery/start
type StartDiscoveryRequest struct {
	DurationSeconds int `json:"duration_seconds"`
}

// CreateDeviceRequest is the request body for POST /devices
type CreateDeviceRequest struct {
	Name     string          `json:"name" binding:"required"`
	Protocol string          `json:"protocol"`
	Config   json.RawMessage `json:"config" binding:"required" swaggertype:"object"`
}

// RenameDeviceRequest is the request body for PATCH /devices/:id
type RenameDeviceRequest struct {
	Name string `json:"name" binding:"required"`
}

// SwitchModeRequest is the request body for POST /devices/:id/mode
type SwitchModeRequest struct {
	OldMode string `json:"old_mode"`
	NewMode string `json:"new_mode" binding:"required"`
}

// LaunchRequest is the optional request body for POST /devices/:id/launch/:app
type LaunchRequest struct {
	ContentID string `json:"content_id"`
	MediaType string `json:"media_type"`
}

// Params returns the deep-link arguments passed to the device.
func (r LaunchRequest) Params() map[string]string {
	params := map[string]string{}
	if r.ContentID != "" {
		params["contentId"] = r.ContentID
	}
	if r.MediaType != "" {
		params["mediaType"] = r.MediaType
	}
	return params
}

// TextRequest is the request body for POST /devices/:id/text
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Devices     int       `json:"devices"`
	Unavailable int       `json:"unavailable"`
	Scanning    bool      `json:"scanning"`
	Timestamp   time.Time `json:"timestamp"`
}

// DeviceView is a registered device as shown by the API
type DeviceView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Protocol  string          `json:"protocol"`
	Config    json.RawMessage `json:"config" swaggertype:"object"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceView `json:"devices"`
	Count   int          `json:"count"`
}

// DeviceResponse is returned from GET/POST/PATCH /devices/:id
type DeviceResponse struct {
	Device DeviceView `json:"device"`
}

// ButtonsResponse is returned from GET /devices/:id/buttons
type ButtonsResponse struct {
	Device  string   `json:"device"`
	Buttons []string `json:"buttons"`
}

// ActionResponse acknowledges a command sent to a device
type ActionResponse struct {
	Device    string    `json:"device"`
	Action    string    `json:"action"`
	Value     string    `json:"value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PowerResponse is returned from GET /devices/:id/power
type PowerResponse struct {
	Device string            `json:"device"`
	Power  device.PowerState `json:"power"`
}

// StatusResponse is returned from GET /devices/:id/status
type StatusResponse struct {
	Device string `json:"device"`
	device.Status
}

// InfoResponse is returned from GET /devices/:id/info
type InfoResponse struct {
	Device string      `json:"device"`
	Info   device.Info `json:"info"`
}

// AppsResponse is returned from GET /devices/:id/apps
type AppsResponse struct {
	Device string       `json:"device"`
	Apps   []device.App `json:"apps"`
	Count  int          `json:"count"`
}

// ActiveAppResponse is returned from GET /devices/:id/active
type ActiveAppResponse struct {
	Device string `json:"device"`
	device.ActiveApp
}

// LaunchResponse is returned from POST /devices/:id/launch/:app
type LaunchResponse struct {
	Device    string     `json:"device"`
	App       device.App `json:"app"`
	Timestamp time.Time  `json:"timestamp"`
}

// MediaPlayerResponse is returned from GET /devices/:id/media-player
type MediaPlayerResponse struct {
	Device string             `json:"device"`
	Player device.MediaPlayer `json:"player"`
}

// IconInfoResponse is returned from GET /devices/:id/icon-info
type IconInfoResponse struct {
	Device string `json:"device"`
	AppID  string `json:"app_id"`
	device.IconInfo
}

// DiscoverResponse is returned from GET /discovery/devices
type DiscoverResponse struct {
	Devices []device.DiscoveredInfo `json:"devices"`
	Count   int                     `json:"count"`
}

// StartDiscoveryResponse is returned from POST /discovery/start
type StartDiscoveryResponse struct {
	Status          string    `json:"status"`
	ExpiresAt       time.Time `json:"expires_at"`
	DurationSeconds int       `json:"duration_seconds"`
}

// StopDiscoveryResponse is returned from POST /discovery/stop
type StopDiscoveryResponse struct {
	Status string `json:"status"`
}
