package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prefix is prepended to every environment variable name.
const Prefix = "HOMAI"

// Settings holds process configuration read from the environment.
// Persistent configuration (profiles, devices, listen address) lives in
// the database.
type Settings struct {
	Logging LogConfig  `envconfig:"LOG"`
	Roku    RokuConfig `envconfig:"ROKU"`
	Profile string     `envconfig:"PROFILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
	JSON  bool   `envconfig:"JSON" default:"false"`
}

// RokuConfig holds ECP client and discovery configuration.
type RokuConfig struct {
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	DiscoveryTimeout time.Duration `envconfig:"DISCOVERY_TIMEOUT" default:"10s"`
	KeypressRate     float64       `envconfig:"KEYPRESS_RATE" default:"0"`
}

// Load reads HOMAI_* environment variables, for example HOMAI_LOG_LEVEL and
// HOMAI_ROKU_REQUEST_TIMEOUT.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if s.Roku.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%s_ROKU_REQUEST_TIMEOUT must be positive", Prefix)
	}
	if s.Roku.KeypressRate < 0 {
		return nil, fmt.Errorf("%s_ROKU_KEYPRESS_RATE must not be negative", Prefix)
	}
	return &s, nil
}

// Usage writes the supported environment variables to w.
func Usage(w io.Writer) error {
	return envconfig.Usagef(Prefix, &Settings{}, w, envconfig.DefaultTableFormat)
}

// ZerologLevel parses the configured level, falling back to info.
func (c LogConfig) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// SetupLogging configures the global zerolog logger. Output goes to w,
// which must not be stdout for the MCP server.
func SetupLogging(c LogConfig, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.ZerologLevel())

	if c.JSON {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}
