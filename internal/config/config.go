// Package config provides YAML-based engine configuration loading.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EngineConfig contains all configuration for the simulation engine.
//
// Nothing here changes generated terrain or gear trajectories: roughness
// and physics constants are fixed so that a seed, template and step count
// always reproduce the same digests.
type EngineConfig struct {
	ThemeDir string         `yaml:"theme_dir"`
	Renderer RendererConfig `yaml:"renderer"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
}

// RendererConfig sets the render target size in cells.
type RendererConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig selects the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig locates the run journal. A leading ~ is expanded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks that every field holds a usable value.
func (c EngineConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.ThemeDir) == "":
		return fmt.Errorf("%w: theme_dir is empty", ErrInvalidConfig)
	case c.Renderer.Width <= 0 || c.Renderer.Height <= 0:
		return fmt.Errorf("%w: renderer size %dx%d", ErrInvalidConfig, c.Renderer.Width, c.Renderer.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c EngineConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
