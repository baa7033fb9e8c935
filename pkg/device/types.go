package device

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Device represents a configured media device managed by the hub
type Device struct {
	ID        string          `json:"id"`       // Unique identifier assigned at registration
	Name      string          `json:"name"`     // User-friendly name
	Protocol  string          `json:"protocol"` // Protocol (roku)
	Config    json.RawMessage `json:"config"`   // Protocol-specific configuration document
	CreatedAt time.Time       `json:"created_at"`
}

// App is an application installed on a media device.
// Identity is by ID; Name is not guaranteed to be unique.
type App struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Version string `json:"version,omitempty"`
}

// ActiveApp describes what a device is currently showing.
// App is nil when the device is on its home screen.
type ActiveApp struct {
	App         *App `json:"app,omitempty"`
	Screensaver *App `json:"screensaver,omitempty"`
}

// Info is the normalized device-info document reported by a device.
type Info map[string]any

// MediaPlayer is the state of a device's media player.
type MediaPlayer struct {
	State    string       `json:"state"`
	Error    bool         `json:"error"`
	Plugin   *MediaPlugin `json:"plugin,omitempty"`
	Format   *MediaFormat `json:"format,omitempty"`
	Position string       `json:"position,omitempty"`
	Duration string       `json:"duration,omitempty"`
	IsLive   bool         `json:"is_live"`
}

// MediaPlugin identifies the app driving the media player.
type MediaPlugin struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bandwidth string `json:"bandwidth,omitempty"`
}

// MediaFormat describes the stream being played.
type MediaFormat struct {
	Audio    string `json:"audio,omitempty"`
	Video    string `json:"video,omitempty"`
	Captions string `json:"captions,omitempty"`
	DRM      string `json:"drm,omitempty"`
}

// Icon is an application icon image.
type Icon struct {
	ContentType string
	Data        []byte
}

// IconInfo describes an icon without its payload.
type IconInfo struct {
	Type      string `json:"type"`
	Extension string `json:"extension"`
}

// Info describes the icon by MIME type and conventional file extension.
func (i *Icon) Info() IconInfo {
	mediaType, _, _ := strings.Cut(i.ContentType, ";")
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	ext := ""
	switch mediaType {
	case "image/jpeg":
		ext = "jpg"
	case "image/svg+xml":
		ext = "svg"
	default:
		if _, sub, ok := strings.Cut(mediaType, "/"); ok {
			ext = sub
		}
	}
	return IconInfo{Type: mediaType, Extension: ext}
}

// SearchQuery is a content search request.
type SearchQuery struct {
	Keyword         string   `json:"keyword,omitempty"`
	Title           string   `json:"title,omitempty"`
	Type            string   `json:"type,omitempty"`
	TMSID           string   `json:"tmsid,omitempty"`
	Season          int      `json:"season,omitempty"`
	ShowUnavailable bool     `json:"show_unavailable,omitempty"`
	MatchAny        bool     `json:"match_any,omitempty"`
	Launch          bool     `json:"launch,omitempty"`
	Providers       []string `json:"providers,omitempty"`
}

// Validate checks that the query names something to search for and uses a
// known content type.
func (q SearchQuery) Validate() error {
	if q.Keyword == "" && q.Title == "" && q.TMSID == "" {
		return fmt.Errorf("%w: one of keyword, title, or tmsid is required", ErrValidation)
	}
	switch q.Type {
	case "", SearchTypeMovie, SearchTypeTVShow, SearchTypePerson, SearchTypeChannel, SearchTypeGame:
		return nil
	}
	return fmt.Errorf("%w: type must be one of movie, tv-show, person, channel, game", ErrValidation)
}

// Status is a point-in-time snapshot of a device.
type Status struct {
	Info      Info       `json:"info"`
	ActiveApp *ActiveApp `json:"active_app"`
	Apps      []App      `json:"apps"`
}

// PowerState is the power state of a device
type PowerState string

const (
	PowerOn  PowerState = "ON"
	PowerOff PowerState = "OFF"
)

// DiscoveryEvent represents a device discovery event
type DiscoveryEvent struct {
	Type      string          `json:"type"`             // Event type (device_found, scan_started, scan_finished)
	Device    *DiscoveredInfo `json:"device,omitempty"` // Device information if available
	Timestamp time.Time       `json:"timestamp"`        // When the event occurred
}

// DiscoveredInfo is a device found on the network but not necessarily registered.
type DiscoveredInfo struct {
	Protocol string `json:"protocol"`
	URL      string `json:"url"`
	IP       string `json:"ip"`
	Info     Info   `json:"info,omitempty"`
}

// Protocol constants
const (
	ProtocolRoku = "roku"
)

// Discovery event types
const (
	EventDeviceFound  = "device_found"
	EventScanStarted  = "scan_started"
	EventScanFinished = "scan_finished"
)

// Search content types
const (
	SearchTypeMovie   = "movie"
	SearchTypeTVShow  = "tv-show"
	SearchTypePerson  = "person"
	SearchTypeChannel = "channel"
	SearchTypeGame    = "game"
)
