package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/landsim/internal/config"
	"github.com/vovakirdan/landsim/internal/landgen"
	"github.com/vovakirdan/landsim/internal/registry"
	"github.com/vovakirdan/landsim/internal/templates"
	"github.com/vovakirdan/landsim/internal/world"
)

// loadConfig reads the engine config and applies flag overrides.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return cfg, fmt.Errorf("invalid --log-level %q", flagLogLevel)
		}
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

func newLogger(cfg config.EngineConfig) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "landsim",
		Level:           cfg.LogLevel(),
	})
}

// newWorld creates a seeded world.
func newWorld(cfg config.EngineConfig, logger *log.Logger, opts ...world.Option) *world.World {
	base := []world.Option{
		world.WithConfig(cfg),
		world.WithLogger(logger),
	}
	w := world.New(append(base, opts...)...)
	w.SetSeed([]byte(flagSeed))
	return w
}

// registerExtraTemplates loads --templates into the registry. Templates
// whose ID is already taken are skipped with a warning.
func registerExtraTemplates(logger *log.Logger) error {
	if flagTemplatesDir == "" {
		return nil
	}
	list, err := templates.NewLoader(flagTemplatesDir).LoadAll()
	if err != nil {
		return err
	}
	for _, t := range list {
		if registry.Exists(t.ID) {
			logger.Warn("template already registered, skipping", "id", t.ID, "file", t.FilePath)
			continue
		}
		templates.Register(t)
	}
	return nil
}

// resolveTemplate returns the template registered under id. Built-in
// templates are registered by importing the templates package.
func resolveTemplate(id string, logger *log.Logger) (landgen.OutlineTemplate, error) {
	if err := registerExtraTemplates(logger); err != nil {
		return landgen.OutlineTemplate{}, err
	}
	if !registry.Exists(id) {
		return landgen.OutlineTemplate{}, fmt.Errorf("unknown template %q (run 'landsim templates' to list them)", id)
	}
	return registry.Create(id)
}

// footerRows stay free below a printed map: its summary line and the
// shell prompt.
const footerRows = 2

// mapSize returns the character area a printed map may fill, falling back
// to fallbackW x fallbackH when stdout is not a terminal.
func mapSize(fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if cols, rows, ok := fitTerminal(w, h); ok {
			return cols, rows
		}
	}
	return fallbackW, fallbackH
}

// fitTerminal sizes a map to a w x h terminal, leaving footerRows free.
// ok is false when nothing fits.
func fitTerminal(w, h int) (cols, rows int, ok bool) {
	if w <= 0 || h <= footerRows {
		return 0, 0, false
	}
	return w, h - footerRows, true
}
