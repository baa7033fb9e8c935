package mcp

import (
	"encoding/json"

	"github.com/urmzd/homai-roku/pkg/device"
)

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status      string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Devices     int    `json:"devices" jsonschema:"description=Number of registered devices"`
	Unavailable int    `json:"unavailable" jsonschema:"description=Registered devices that could not be brought up"`
	Scanning    bool   `json:"scanning" jsonschema:"description=Whether a background discovery scan is running"`
	Timestamp   string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- Device Tools ---

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	ID        string          `json:"id" jsonschema:"description=Unique device identifier"`
	Name      string          `json:"name" jsonschema:"description=User-friendly device name"`
	Protocol  string          `json:"protocol" jsonschema:"description=Control protocol"`
	Config    json.RawMessage `json:"config,omitempty" jsonschema:"description=Protocol-specific configuration"`
	Available bool            `json:"available" jsonschema:"description=Whether the device controller is up"`
	Buttons   []string        `json:"buttons,omitempty" jsonschema:"description=Buttons the device accepts"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Registered devices"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device DeviceInfo `json:"device" jsonschema:"description=Device information"`
}

// RenameDeviceOutput is the output for the rename_device tool
type RenameDeviceOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the rename succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// RemoveDeviceOutput is the output for the remove_device tool
type RemoveDeviceOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the removal succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Control Tools ---

// ActionOutput acknowledges a command sent to a device
type ActionOutput struct {
	Device string `json:"device" jsonschema:"description=Device name"`
	Action string `json:"action" jsonschema:"description=Action performed"`
	Value  string `json:"value,omitempty" jsonschema:"description=Action argument"`
}

// PowerStateOutput is the output for the get_power_state tool
type PowerStateOutput struct {
	Device string            `json:"device" jsonschema:"description=Device name"`
	Power  device.PowerState `json:"power" jsonschema:"description=ON or OFF"`
}

// --- App Tools ---

// ListAppsOutput is the output for the list_apps tool
type ListAppsOutput struct {
	Device string       `json:"device" jsonschema:"description=Device name"`
	Apps   []device.App `json:"apps" jsonschema:"description=Installed apps"`
	Count  int          `json:"count" jsonschema:"description=Number of installed apps"`
}

// ActiveAppOutput is the output for the get_active_app tool
type ActiveAppOutput struct {
	Device string `json:"device" jsonschema:"description=Device name"`
	device.ActiveApp
}

// LaunchAppOutput is the output for the launch_app tool
type LaunchAppOutput struct {
	Device string     `json:"device" jsonschema:"description=Device name"`
	App    device.App `json:"app" jsonschema:"description=The app that was launched"`
}

// --- Info Tools ---

// DeviceInfoOutput is the output for the get_device_info tool
type DeviceInfoOutput struct {
	Device string      `json:"device" jsonschema:"description=Device name"`
	Info   device.Info `json:"info" jsonschema:"description=Normalized device-info document"`
}

// MediaPlayerOutput is the output for the get_media_player tool
type MediaPlayerOutput struct {
	Device string             `json:"device" jsonschema:"description=Device name"`
	Player device.MediaPlayer `json:"player" jsonschema:"description=Media player state"`
}

// --- Discovery Tool ---

// DiscoverDevicesOutput is the output for the discover_devices tool
type DiscoverDevicesOutput struct {
	Devices []device.DiscoveredInfo `json:"devices" jsonschema:"description=Devices that answered the scan"`
	Count   int                     `json:"count" jsonschema:"description=Number of devices found"`
}

// --- Helper conversions ---

// DeviceToInfo converts a registered device and its controller to DeviceInfo
func DeviceToInfo(d device.Device, ctrl device.MediaController) DeviceInfo {
	_, unavailable := ctrl.(*device.NullController)
	info := DeviceInfo{
		ID:        d.ID,
		Name:      d.Name,
		Protocol:  d.Protocol,
		Config:    d.Config,
		Available: !unavailable,
	}
	if !unavailable {
		info.Buttons = ctrl.Buttons()
	}
	return info
}
