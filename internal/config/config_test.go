package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultEngineYAML)
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Renderer.Width != 512 || cfg.Renderer.Height != 512 {
		t.Errorf("renderer = %+v, expected 512x512", cfg.Renderer)
	}
	if cfg.Storage.DBPath != "~/.landsim/runs.db" {
		t.Errorf("db_path = %q", cfg.Storage.DBPath)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".landsim", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
	if cfg.ThemeDir != Default().ThemeDir {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "theme_dir: /tmp/themes/x\nrenderer:\n  width: 80\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ThemeDir != "/tmp/themes/x" || cfg.Renderer.Width != 80 || cfg.Renderer.Height != 512 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom config: expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("renderer:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config: expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"empty theme dir", func(c *EngineConfig) { c.ThemeDir = " " }},
		{"zero width", func(c *EngineConfig) { c.Renderer.Width = 0 }},
		{"negative height", func(c *EngineConfig) { c.Renderer.Height = -1 }},
		{"unknown log level", func(c *EngineConfig) { c.Log.Level = "loud" }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestSimulationKeysAreIgnored(t *testing.T) {
	body := "generation:\n  distance_divisor: 1\nphysics:\n  gravity_permille: 9000\n"
	cfg, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("simulation keys changed the config: %+v", cfg)
	}

	out, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	var keys map[string]any
	if err := yaml.Unmarshal(out, &keys); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"generation", "physics"} {
		if _, ok := keys[k]; ok {
			t.Errorf("config exposes %q", k)
		}
	}
}
