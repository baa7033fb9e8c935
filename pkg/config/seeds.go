package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/roku"
)

// Seed is a device declared in a seed file.
//
//	devices:
//	  - name: Living Room
//	    url: 192.168.1.20
//	  - name: Bedroom
//	    protocol: roku
//	    config:
//	      url: http://192.168.1.21:8060
//	      keypress_per_second: 5
type Seed struct {
	Name     string         `yaml:"name"`
	Protocol string         `yaml:"protocol"`
	URL      string         `yaml:"url"`
	Config   map[string]any `yaml:"config"`
}

// SeedFile is the top-level document of a seed file.
type SeedFile struct {
	Devices []Seed `yaml:"devices"`
}

// ConfigJSON returns the seed's device config document. A top-level url
// is shorthand for config.url and accepts a bare host.
func (s Seed) ConfigJSON() (json.RawMessage, error) {
	cfg := make(map[string]any, len(s.Config)+1)
	for k, v := range s.Config {
		cfg[k] = v
	}
	if s.URL != "" {
		cfg["url"] = s.URL
	}
	if u, ok := cfg["url"].(string); ok && s.protocol() == device.ProtocolRoku {
		cfg["url"] = roku.NormalizeURL(u)
	}
	return json.Marshal(cfg)
}

func (s Seed) protocol() string {
	if s.Protocol == "" {
		return device.ProtocolRoku
	}
	return s.Protocol
}

// ParseSeeds decodes a seed document.
func ParseSeeds(data []byte) ([]Seed, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	for i, s := range file.Devices {
		if s.Name == "" {
			return nil, fmt.Errorf("seed %d: name is required", i)
		}
	}
	return file.Devices, nil
}

// LoadSeeds reads and decodes a seed file.
func LoadSeeds(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeeds(data)
}

// ApplySeeds registers every seed whose name is not already taken and
// returns how many were added. Seeds that fail validation are reported
// together and do not stop the others.
func ApplySeeds(ctx context.Context, reg *device.Registry, seeds []Seed) (int, error) {
	added := 0
	var errs []error
	for _, s := range seeds {
		if _, _, err := reg.Get(s.Name); err == nil {
			log.Debug().Str("device", s.Name).Msg("Seed already registered")
			continue
		}

		cfg, err := s.ConfigJSON()
		if err != nil {
			errs = append(errs, fmt.Errorf("seed %q: %w", s.Name, err))
			continue
		}
		if _, err := reg.Add(ctx, s.Name, s.protocol(), cfg); err != nil {
			errs = append(errs, fmt.Errorf("seed %q: %w", s.Name, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}
