package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the engine config file name in every search location.
const FileName = "engine.yaml"

// Load loads the engine configuration.
// Search order: customPath -> ~/.landsim/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when unusable.
func Load(customPath string) (EngineConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EngineConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EngineConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultEngineYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (EngineConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".landsim", "configs", filename)
}
