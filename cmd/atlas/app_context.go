package main

import (
	"os"

	"atlas/internal/config"
	"atlas/internal/countries"
	"atlas/internal/logger"
	"atlas/internal/theme"
)

// app bundles the shared dependencies every command needs.
type app struct {
	settings config.Settings
	log      *logger.Logger
	themes   *theme.Store
	client   *countries.Client
}

// newApp resolves configuration and wires the logger, theme store and
// country client.
func newApp(flags *rootFlags) (*app, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		cfgPath = ""
	}
	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	if flags != nil && flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Pretty: true, Writer: os.Stderr})
	if err != nil {
		return nil, err
	}

	// Theme persistence is best-effort; without a config dir the store
	// simply keeps the preference in memory.
	themePath, err := theme.DefaultPath()
	if err != nil {
		themePath = ""
	}

	return &app{
		settings: settings,
		log:      log,
		themes:   theme.NewStore(themePath),
		client:   countries.NewClient(settings.APIBaseURL),
	}, nil
}
