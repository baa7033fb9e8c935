package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/api"
	"github.com/urmzd/homai-roku/pkg/config"
	"github.com/urmzd/homai-roku/pkg/hub"

	_ "github.com/urmzd/homai-roku/docs"
)

// @title           Homai Roku API
// @version         1.0
// @description     REST API for controlling Roku media devices over ECP

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	settings, err := config.Load()
	if err != nil {
		config.SetupLogging(config.LogConfig{Level: "info"}, os.Stderr)
		log.Fatal().Err(err).Msg("Invalid settings")
	}
	config.SetupLogging(settings.Logging, os.Stderr)

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/homai-roku/homai-roku.db)")
	seedsPath := flag.String("devices", "", "Path to a YAML file of devices to register on startup")
	profile := flag.String("profile", "", "Profile to activate (default: the active profile, or $HOMAI_PROFILE)")
	flag.Usage = func() {
		flag.PrintDefaults()
		_ = config.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	ctx := context.Background()

	h, err := hub.Open(ctx, hub.Options{
		DBPath:    *dbPath,
		Profile:   *profile,
		SeedsPath: *seedsPath,
		Settings:  settings,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start hub")
	}
	defer func() {
		if err := h.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	router := api.NewRouter(h.Registry, h.Discoverer, h.Metrics)

	addr := h.Config.APIAddress()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down server")
		}
	}()

	log.Info().Str("address", addr).Int("devices", h.Registry.Len()).Msg("Starting API server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Server failed")
	}
}
