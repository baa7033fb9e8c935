package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/config"
	"github.com/urmzd/homai-roku/pkg/hub"
	homaimcp "github.com/urmzd/homai-roku/pkg/mcp"
)

const version = "1.0.0"

func main() {
	// Logging must go to stderr, stdout is the MCP transport
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
	flag.Parse()

	h, err := hub.Open(context.Background(), hub.Options{
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

	mcpServer := homaimcp.NewServer(h.Registry, h.Discoverer, version)

	log.Info().Int("devices", h.Registry.Len()).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Error().Err(err).Msg("MCP server failed")
	}
}
