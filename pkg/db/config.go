package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProfile = errors.New("no active profile found")

// DefaultAPIAddress is used when a profile has no API server row.
const DefaultAPIAddress = "0.0.0.0:8080"

// Config is the runtime configuration of the active profile.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return DefaultAPIAddress
	}
	return c.APIServer.Address()
}

// Devices returns the device store of the configured profile.
func (c *Config) Devices(db *DB) *DeviceStore {
	return db.Devices(c.Profile.ID)
}

// ActiveConfig loads the configuration of the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{Profile: profile}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	return config, nil
}

// UseProfile activates the named profile, creating it when missing, and
// returns its configuration.
func (db *DB) UseProfile(ctx context.Context, name string) (*Config, error) {
	profiles := db.Profiles()

	p, err := profiles.GetByName(ctx, name)
	if errors.Is(err, ErrProfileNotFound) {
		p = &Profile{Name: name}
		err = profiles.Create(ctx, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}

	if !p.IsActive {
		if err := profiles.SetActive(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("failed to activate profile %q: %w", name, err)
		}
	}
	return db.ActiveConfig(ctx)
}
