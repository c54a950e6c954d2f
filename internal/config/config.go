// Package config provides YAML-based platform configuration: input
// handling, score storage location and logging.
package config

// Config is the top-level platform configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig controls how terminal key presses become held keys.
type InputConfig struct {
	KeyReleaseTicks     int `yaml:"key_release_ticks"`     // Once the key repeats
	InitialReleaseTicks int `yaml:"initial_release_ticks"` // Before the first repeat
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`  // Log file used while the TUI owns the terminal
}
