package device

import (
	"context"
	"encoding/json"
	"time"
)

// Controller defines the lifecycle the hub drives on every device.
// This abstraction lets the API work with different media protocols
// through a unified interface.
type Controller interface {
	// Buttons returns the standard button names the device supports
	Buttons() []string

	// PressButton sends a single button press
	PressButton(ctx context.Context, button string) error

	// SwitchMode is called when the hub changes activity mode
	SwitchMode(ctx context.Context, oldMode, newMode string) error

	// SwitchInput selects a standard input on the device
	SwitchInput(ctx context.Context, input string) error

	// PowerState reports whether the device is on
	PowerState(ctx context.Context) (PowerState, error)
}

// MediaController is a Controller for streaming devices with installed apps.
type MediaController interface {
	Controller

	// Apps refreshes and returns the installed app list
	Apps(ctx context.Context) ([]App, error)

	// ActiveApp returns the app currently in the foreground
	ActiveApp(ctx context.Context) (*ActiveApp, error)

	// Launch resolves an app by ID or name and launches it
	Launch(ctx context.Context, app string, params map[string]string) (App, error)

	// Info returns the normalized device-info document
	Info(ctx context.Context) (Info, error)

	// MediaPlayer returns the media player state
	MediaPlayer(ctx context.Context) (*MediaPlayer, error)

	// Icon returns the icon image for an app
	Icon(ctx context.Context, appID string) (*Icon, error)

	// Search runs a content search on the device
	Search(ctx context.Context, query SearchQuery) error

	// TypeText enters literal text into the focused field
	TypeText(ctx context.Context, text string) error

	// Status returns info, active app, and installed apps together
	Status(ctx context.Context) (*Status, error)
}

// Factory creates controllers for one protocol.
type Factory interface {
	// Protocol returns the protocol name this factory handles
	Protocol() string

	// ConfigSchema returns the JSON Schema for Device.Config
	ConfigSchema() json.RawMessage

	// CreateController builds a controller for a configured device
	CreateController(d Device) (MediaController, error)
}

// EventSubscriber defines the interface for subscribing to device events
type EventSubscriber interface {
	// Subscribe returns a channel that receives discovery events
	Subscribe() chan DiscoveryEvent

	// Unsubscribe removes a subscription
	Unsubscribe(ch chan DiscoveryEvent)
}

// Discoverer finds devices on the local network.
type Discoverer interface {
	EventSubscriber

	// DiscoverAll runs one scan and returns every device that answered
	DiscoverAll(ctx context.Context, timeout time.Duration) ([]DiscoveredInfo, error)

	// Start scans in the background for duration and returns when it ends
	Start(duration time.Duration) (time.Time, error)

	// Stop ends a background scan
	Stop()

	// Scanning reports whether a background scan is running
	Scanning() bool
}
