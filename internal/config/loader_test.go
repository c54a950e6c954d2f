package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duck.yaml")
	data := "input:\n  key_release_ticks: 20\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Input.KeyReleaseTicks != 20 {
		t.Errorf("KeyReleaseTicks = %d, expected 20", cfg.Input.KeyReleaseTicks)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	// Missing fields keep defaults
	if cfg.Storage.Path != DefaultConfig().Storage.Path {
		t.Errorf("Storage.Path = %q, expected default", cfg.Storage.Path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("input: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("Load() of invalid YAML = %v, expected a config: error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero release ticks", func(c *Config) { c.Input.KeyReleaseTicks = 0 }, true},
		{"initial window shorter than repeat window", func(c *Config) { c.Input.InitialReleaseTicks = 5 }, true},
		{"equal windows", func(c *Config) { c.Input.InitialReleaseTicks = c.Input.KeyReleaseTicks }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"warn level", func(c *Config) { c.Log.Level = "warn" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/.duck/scores.db"); got != filepath.Join(home, ".duck", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome(/tmp/x.db) = %q, expected unchanged", got)
	}
}
