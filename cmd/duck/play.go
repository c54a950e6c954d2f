package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duck-arcade/internal/core"
	"github.com/vovakirdan/duck-arcade/internal/platform/tui"
	"github.com/vovakirdan/duck-arcade/internal/registry"
	"github.com/vovakirdan/duck-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to Duck Mario.

Controls:
  Enter/Space       - Start
  Left/Right, A/D   - Move
  Up/W/Space        - Jump
  R                 - Restart
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Terminals report key presses but not releases, so a key counts as held
until input.initial_release_ticks ticks pass without its first repeat,
then until input.key_release_ticks ticks pass between repeats.

Examples:
  duck play
  duck play --log-level debug
  duck play --config ./my-duck.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := registry.Resolve(gameArg(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'duck list' to see available games.")
		os.Exit(1)
	}

	cfg := mustLoadConfig()
	logger, closeLog := newFileLogger(cfg.Log)
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, tui.Options{
		Store:               store,
		Logger:              logger,
		Config:              rc,
		KeyReleaseTicks:     cfg.Input.KeyReleaseTicks,
		InitialReleaseTicks: cfg.Input.InitialReleaseTicks,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
