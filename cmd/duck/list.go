package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-arcade/internal/registry"
	"github.com/vovakirdan/duck-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games with their best scores",
	Long: `Shows every registered game, its best stored score and which one
'duck play' starts when no game is named.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	best := func(string) string { return "-" }
	if store, err := storage.Open(cfg.Storage.Path); err == nil {
		defer store.Close()
		best = func(id string) string {
			score, err := store.HighScore(id)
			if err != nil || score == 0 {
				return "-"
			}
			return strconv.Itoa(score)
		}
	}

	writeGameList(os.Stdout, registry.List(), registry.Default(), best)
}

// writeGameList prints one row per game; the default game is starred.
func writeGameList(w io.Writer, games []registry.GameInfo, def string, best func(id string) string) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(w, "    %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best")
	for _, g := range games {
		mark := " "
		if g.ID == def {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %-*s  %-*s  %s\n", mark, idW, g.ID, titleW, g.Title, best(g.ID))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "* starts with plain 'duck play'.")
}
