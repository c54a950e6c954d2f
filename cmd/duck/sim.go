package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duck-arcade/internal/games/duck"
	"github.com/vovakirdan/duck-arcade/internal/script"
)

var (
	flagScript string
	flagTicks  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a key script without a terminal",
	Long: `Run Duck Mario headlessly from a YAML key timeline and print the
final snapshot as YAML. The simulation has no randomness, so the same
script always produces the same snapshot.

Script format:
  ticks: 600
  events:
    - tick: 0
      down: ArrowRight
    - tick: 30
      up: ArrowRight

Keys: ArrowLeft, KeyA, ArrowRight, KeyD, ArrowUp, KeyW, Space

Examples:
  duck sim --script configs/scripts/run-and-jump.yaml
  duck sim --script walk.yaml --ticks 120`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to key script YAML (required)")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Override the script's tick count")
	//nolint:errcheck // Flag is defined above
	simCmd.MarkFlagRequired("script")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := script.Load(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("ticks") {
		if flagTicks < 0 {
			fmt.Fprintln(os.Stderr, "Error: --ticks must not be negative")
			os.Exit(1)
		}
		s.Ticks = flagTicks
	}

	logger.Debug("running script", "path", flagScript, "ticks", s.Ticks, "events", len(s.Events))
	snap := script.Play(duck.NewWorld(), s)
	logger.Info("simulation finished", "tick", snap.Tick, "phase", snap.Phase, "score", snap.Score, "lives", snap.Lives)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Flushes to stdout
	enc.Close()
}
