package roku

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Device implements device.MediaController for one Roku.
type Device struct {
	name   string
	client *Client
	apps   *device.AppResolver
}

// NewDevice wraps an ECP client. The app cache starts empty and is filled on
// the first launch or status request.
func NewDevice(name string, client *Client, m *metrics.Metrics) *Device {
	apps := device.NewAppResolver(client)
	if m != nil {
		apps.OnRefresh(m.ObserveAppRefresh)
	}
	return &Device{
		name:   name,
		client: client,
		apps:   apps,
	}
}

func (d *Device) Buttons() []string {
	return buttonNames()
}

func (d *Device) PressButton(ctx context.Context, button string) error {
	key, ok := ButtonKeys[button]
	if !ok {
		return fmt.Errorf("%w: %s", device.ErrInvalidButton, button)
	}
	log.Debug().Str("device", d.name).Str("button", button).Str("key", string(key)).Msg("Key press")
	return d.client.Keypress(ctx, key)
}

// SwitchMode is a no-op: a Roku has no hub-visible modes.
func (d *Device) SwitchMode(ctx context.Context, oldMode, newMode string) error {
	return nil
}

func (d *Device) SwitchInput(ctx context.Context, input string) error {
	key, ok := InputKeys[input]
	if !ok {
		return fmt.Errorf("%w: %s", device.ErrInvalidInput, input)
	}
	log.Debug().Str("device", d.name).Str("input", input).Msg("Switching input")
	return d.client.Keypress(ctx, key)
}

// PowerState is ON when the device answers device-info and is not in
// standby. An unreachable device is reported OFF rather than as an error.
func (d *Device) PowerState(ctx context.Context) (device.PowerState, error) {
	info, err := d.client.Info(ctx)
	if err != nil {
		log.Debug().Err(err).Str("device", d.name).Str("url", d.client.BaseURL()).Msg("Failed to get info")
		return device.PowerOff, nil
	}
	if mode, ok := info["powerMode"].(string); ok && mode != "" && mode != "PowerOn" {
		return device.PowerOff, nil
	}
	return device.PowerOn, nil
}

// Apps refetches the installed app list, refreshing the launch cache.
func (d *Device) Apps(ctx context.Context) ([]device.App, error) {
	return d.apps.Refresh(ctx)
}

func (d *Device) ActiveApp(ctx context.Context) (*device.ActiveApp, error) {
	return d.client.ActiveApp(ctx)
}

// Launch resolves app by ID or name and starts it.
func (d *Device) Launch(ctx context.Context, app string, params map[string]string) (device.App, error) {
	resolved, ok, err := d.apps.Resolve(ctx, app)
	if err != nil {
		return device.App{}, err
	}
	if !ok {
		return device.App{}, fmt.Errorf("%w: %s", device.ErrAppNotFound, app)
	}

	log.Debug().Str("device", d.name).Str("app", app).Str("app_id", resolved.ID).Msg("Launching app")
	if err := d.client.Launch(ctx, resolved.ID, params); err != nil {
		return device.App{}, err
	}
	return resolved, nil
}

func (d *Device) Info(ctx context.Context) (device.Info, error) {
	return d.client.Info(ctx)
}

func (d *Device) MediaPlayer(ctx context.Context) (*device.MediaPlayer, error) {
	return d.client.MediaPlayer(ctx)
}

func (d *Device) Icon(ctx context.Context, appID string) (*device.Icon, error) {
	return d.client.Icon(ctx, appID)
}

func (d *Device) Search(ctx context.Context, query device.SearchQuery) error {
	return d.client.Search(ctx, query)
}

func (d *Device) TypeText(ctx context.Context, text string) error {
	return d.client.Text(ctx, text)
}

// Status fetches info, the active app, and the app list concurrently. The
// app list also replaces the launch cache.
func (d *Device) Status(ctx context.Context) (*device.Status, error) {
	status := &device.Status{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := d.client.Info(ctx)
		status.Info = info
		return err
	})
	g.Go(func() error {
		active, err := d.client.ActiveApp(ctx)
		status.ActiveApp = active
		return err
	})
	g.Go(func() error {
		apps, err := d.apps.Refresh(ctx)
		status.Apps = apps
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return status, nil
}

// Config is the Device.Config document for a Roku.
type Config struct {
	URL               string  `json:"url"`
	KeypressPerSecond float64 `json:"keypress_per_second,omitempty"`
}

var configSchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"url": {"type": "string", "format": "uri", "pattern": "^https?://"},
		"keypress_per_second": {"type": "number", "minimum": 0, "maximum": 50}
	},
	"required": ["url"],
	"additionalProperties": false
}`)

// Factory creates Roku controllers from stored device records.
type Factory struct {
	timeout      time.Duration
	keypressRate float64
	metrics      *metrics.Metrics
}

// NewFactory creates a factory whose clients use the given request timeout.
// keypressRate applies to devices whose config sets no rate of its own.
func NewFactory(timeout time.Duration, keypressRate float64, m *metrics.Metrics) *Factory {
	return &Factory{timeout: timeout, keypressRate: keypressRate, metrics: m}
}

func (f *Factory) Protocol() string {
	return device.ProtocolRoku
}

func (f *Factory) ConfigSchema() json.RawMessage {
	return configSchema
}

func (f *Factory) CreateController(d device.Device) (device.MediaController, error) {
	var cfg Config
	if err := json.Unmarshal(d.Config, &cfg); err != nil {
		return nil, fmt.Errorf("invalid roku config: %w", err)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: url is required", device.ErrValidation)
	}

	rate := cfg.KeypressPerSecond
	if rate == 0 {
		rate = f.keypressRate
	}
	opts := []Option{WithKeypressRate(rate), WithMetrics(f.metrics)}
	if f.timeout > 0 {
		opts = append(opts, WithTimeout(f.timeout))
	}
	client := NewClient(cfg.URL, opts...)
	return NewDevice(d.Name, client, f.metrics), nil
}
