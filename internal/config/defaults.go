package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hardcoded engine configuration. It matches
// defaults/engine.yaml.
func Default() EngineConfig {
	return EngineConfig{
		ThemeDir: "assets/themes/cheese",
		Renderer: RendererConfig{
			Width:  512,
			Height: 512,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.landsim/runs.db",
		},
	}
}
