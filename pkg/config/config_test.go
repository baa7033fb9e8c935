package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homai-roku/pkg/device"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", s.Logging.Level)
	assert.False(t, s.Logging.JSON)
	assert.Equal(t, 10*time.Second, s.Roku.RequestTimeout)
	assert.Equal(t, 10*time.Second, s.Roku.DiscoveryTimeout)
	assert.Zero(t, s.Roku.KeypressRate)
	assert.Empty(t, s.Profile)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOMAI_LOG_LEVEL", "debug")
	t.Setenv("HOMAI_LOG_JSON", "true")
	t.Setenv("HOMAI_ROKU_REQUEST_TIMEOUT", "3s")
	t.Setenv("HOMAI_ROKU_DISCOVERY_TIMEOUT", "1m")
	t.Setenv("HOMAI_ROKU_KEYPRESS_RATE", "4.5")
	t.Setenv("HOMAI_PROFILE", "cabin")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, s.Logging.ZerologLevel())
	assert.True(t, s.Logging.JSON)
	assert.Equal(t, 3*time.Second, s.Roku.RequestTimeout)
	assert.Equal(t, time.Minute, s.Roku.DiscoveryTimeout)
	assert.Equal(t, 4.5, s.Roku.KeypressRate)
	assert.Equal(t, "cabin", s.Profile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HOMAI_ROKU_REQUEST_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HOMAI_ROKU_REQUEST_TIMEOUT", "0s")
	_, err = Load()
	assert.ErrorContains(t, err, "HOMAI_ROKU_REQUEST_TIMEOUT")

	t.Setenv("HOMAI_ROKU_REQUEST_TIMEOUT", "1s")
	t.Setenv("HOMAI_ROKU_KEYPRESS_RATE", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "HOMAI_ROKU_KEYPRESS_RATE")
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LogConfig{Level: "WARN"}.ZerologLevel())
	assert.Equal(t, zerolog.InfoLevel, LogConfig{Level: "loud"}.ZerologLevel())
	assert.Equal(t, zerolog.InfoLevel, LogConfig{}.ZerologLevel())
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Usage(&buf))
	assert.Contains(t, buf.String(), "HOMAI_ROKU_KEYPRESS_RATE")
	assert.Contains(t, buf.String(), "HOMAI_LOG_LEVEL")
}

const seedYAML = `
devices:
  - name: Living Room
    url: 192.168.1.20
  - name: Bedroom
    protocol: roku
    config:
      url: http://192.168.1.21:8060
      keypress_per_second: 5
`

func TestParseSeeds(t *testing.T) {
	seeds, err := ParseSeeds([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	cfg, err := seeds[0].ConfigJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"http://192.168.1.20:8060"}`, string(cfg))

	cfg, err = seeds[1].ConfigJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"http://192.168.1.21:8060","keypress_per_second":5}`, string(cfg))
}

func TestParseSeeds_Invalid(t *testing.T) {
	_, err := ParseSeeds([]byte("devices:\n  - protocol: roku\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = ParseSeeds([]byte("devices: [unclosed"))
	assert.Error(t, err)
}

func TestLoadSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	seeds, err := LoadSeeds(path)
	require.NoError(t, err)
	assert.Len(t, seeds, 2)

	_, err = LoadSeeds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

type memStore struct {
	devices []device.Device
}

func (s *memStore) List(context.Context) ([]device.Device, error) { return s.devices, nil }
func (s *memStore) Create(_ context.Context, d *device.Device) error {
	s.devices = append(s.devices, *d)
	return nil
}
func (s *memStore) Rename(context.Context, string, string) error { return nil }
func (s *memStore) Delete(context.Context, string) error         { return nil }

type stubFactory struct{}

func (stubFactory) Protocol() string               { return device.ProtocolRoku }
func (stubFactory) ConfigSchema() json.RawMessage { return json.RawMessage(`{}`) }
func (stubFactory) CreateController(device.Device) (device.MediaController, error) {
	return device.NewNullController(), nil
}

func TestApplySeeds(t *testing.T) {
	store := &memStore{}
	reg := device.NewRegistry(store, nil, stubFactory{})
	ctx := context.Background()

	_, err := reg.Add(ctx, "bedroom", device.ProtocolRoku, json.RawMessage(`{"url":"http://192.168.1.21:8060"}`))
	require.NoError(t, err)

	seeds, err := ParseSeeds([]byte(seedYAML + "  - name: Attic\n    protocol: zigbee\n"))
	require.NoError(t, err)

	added, err := ApplySeeds(ctx, reg, seeds)
	assert.Equal(t, 1, added)
	assert.ErrorIs(t, err, device.ErrUnsupported)
	assert.ErrorContains(t, err, `seed "Attic"`)

	assert.Equal(t, 2, reg.Len())
	_, _, err = reg.Get("Living Room")
	assert.NoError(t, err)
}
