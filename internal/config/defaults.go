package config

import (
	_ "embed"
)

//go:embed defaults/duck.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			KeyReleaseTicks:     12,
			InitialReleaseTicks: 42,
		},
		Storage: StorageConfig{
			Path: "~/.duck/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			Path:  "~/.duck/duck.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
