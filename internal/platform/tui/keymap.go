package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duck-arcade/internal/core"
)

// GameKeyMap defines the key bindings shown while playing.
type GameKeyMap struct {
	Move       key.Binding
	Jump       key.Binding
	Start      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Start, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Jump},
		{k.Start, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "a", "d"),
			key.WithHelp("←/→ a/d", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w/space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyCodes maps Bubble Tea key names to the physical keys the game understands.
var keyCodes = map[string]core.KeyCode{
	"left":  core.KeyArrowLeft,
	"a":     core.KeyA,
	"right": core.KeyArrowRight,
	"d":     core.KeyD,
	"up":    core.KeyArrowUp,
	"w":     core.KeyW,
	" ":     core.KeySpace,
}

// KeyCodeFor translates a key message to a physical key code.
// Returns false for keys the game does not use.
func KeyCodeFor(msg tea.KeyMsg) (core.KeyCode, bool) {
	code, ok := keyCodes[msg.String()]
	return code, ok
}
