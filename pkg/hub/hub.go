// Package hub assembles the device registry and its supporting services
// from settings and the on-disk database. Both the HTTP and MCP servers
// start from Open.
package hub

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/config"
	"github.com/urmzd/homai-roku/pkg/db"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/device/schema"
	"github.com/urmzd/homai-roku/pkg/metrics"
	"github.com/urmzd/homai-roku/pkg/roku"
)

// Options selects the database, profile, and seed file.
type Options struct {
	DBPath    string // empty means the default path
	Profile   string // empty means the active profile
	SeedsPath string // empty means no seed file
	Settings  *config.Settings
}

// Hub is a running set of registered devices.
type Hub struct {
	DB         *db.DB
	Config     *db.Config
	Registry   *device.Registry
	Discoverer *roku.Discoverer
	Metrics    *metrics.Metrics
}

// Open opens and migrates the database, selects a profile, and loads its
// devices. Seeds are applied after loading. A seed that fails is logged and
// does not stop startup.
func Open(ctx context.Context, opts Options) (*Hub, error) {
	settings := opts.Settings
	if settings == nil {
		s, err := config.Load()
		if err != nil {
			return nil, err
		}
		settings = s
	}

	database, err := db.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Info().Str("path", database.Path()).Msg("Database opened")

	h := &Hub{DB: database}
	if err := h.init(ctx, opts, settings); err != nil {
		return nil, errors.Join(err, database.Close())
	}
	return h, nil
}

func (h *Hub) init(ctx context.Context, opts Options, settings *config.Settings) error {
	if err := h.DB.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	needsBootstrap, err := h.DB.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap status: %w", err)
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := h.DB.Bootstrap(ctx); err != nil {
			return fmt.Errorf("failed to bootstrap database: %w", err)
		}
	}

	profile := opts.Profile
	if profile == "" {
		profile = settings.Profile
	}
	if profile != "" {
		h.Config, err = h.DB.UseProfile(ctx, profile)
	} else {
		h.Config, err = h.DB.ActiveConfig(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Info().
		Str("profile", h.Config.Profile.Name).
		Str("api_address", h.Config.APIAddress()).
		Msg("Configuration loaded")

	h.Metrics = metrics.New()
	factory := roku.NewFactory(settings.Roku.RequestTimeout, settings.Roku.KeypressRate, h.Metrics)
	h.Registry = device.NewRegistry(h.Config.Devices(h.DB), schema.NewValidator(), factory)
	if err := h.Registry.Load(ctx); err != nil {
		return err
	}

	if opts.SeedsPath != "" {
		seeds, err := config.LoadSeeds(opts.SeedsPath)
		if err != nil {
			return err
		}
		added, err := config.ApplySeeds(ctx, h.Registry, seeds)
		if err != nil {
			log.Warn().Err(err).Msg("Some seed devices were not registered")
		}
		log.Info().Int("added", added).Int("seeds", len(seeds)).Msg("Seed file applied")
	}

	h.Discoverer = roku.NewDiscoverer(settings.Roku.DiscoveryTimeout, h.Metrics)
	return nil
}

// Close stops background discovery and closes the database.
func (h *Hub) Close() error {
	if h.Discoverer != nil {
		h.Discoverer.Stop()
	}
	return h.DB.Close()
}
