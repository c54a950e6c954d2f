// duck is a terminal platformer: run, jump, stomp hostiles and collect coins.
//
// Usage:
//
//	duck play              - Play Duck Mario in the terminal
//	duck list              - List available games
//	duck scores [game]     - Show high scores and stats
//	duck board             - Interactive scoreboard
//	duck sim --script f    - Replay a key script headlessly and print the final state
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.duck/config.yaml, then ./configs/duck.yaml)
//	--db <path>         - Database path (default from config: ~/.duck/scores.db)
//	--log-level <level> - debug, info, warn or error (default from config)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/duck-arcade/internal/games/duck"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duck",
	Short: "Duck Mario - a platformer in your terminal",
	Long: `Duck Mario is a single-screen platformer that runs in your terminal.
Run and jump across ledges, stomp hostiles from above and collect coins.

Available commands:
  play     - Play the game
  list     - Show all available games
  scores   - View high scores
  board    - Interactive scoreboard
  sim      - Replay a key script without a terminal

Examples:
  duck play
  duck scores
  duck sim --script configs/scripts/run-and-jump.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// gameArg returns the optional game argument, or "" for the default game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "duck",
		Level:           level,
	})
	return logger, nil
}

// newFileLogger opens the configured log file for commands that own the
// terminal. Falls back to discarding output when the file cannot be opened.
func newFileLogger(cfg config.LogConfig) (*log.Logger, func()) {
	path := config.ExpandHome(cfg.Path)
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger, err := newLogger(w, cfg)
	if err != nil {
		// Level was validated with the config
		logger = log.New(w)
	}
	return logger, closeFn
}
