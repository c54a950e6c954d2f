// Package duck implements a single-screen platformer: a duck runs and jumps
// across fixed ledges, stomps patrolling hostiles and picks up coins.
// The simulation advances in fixed 60 Hz ticks and has no randomness.
package duck

import (
	"github.com/vovakirdan/duck-arcade/internal/core"
	"github.com/vovakirdan/duck-arcade/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "duck"

// Game adapts a World to the platform's registry.Game interface.
type Game struct {
	world *World
}

// New creates a new game instance in the not-started phase.
func New() *Game {
	return &Game{world: NewWorld()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Duck Mario"
}

// Start begins a fresh session. Also used for restart.
func (g *Game) Start() {
	g.world.Start()
}

// OnKeyDown forwards a key-down to the world.
func (g *Game) OnKeyDown(code core.KeyCode) bool {
	return g.world.OnKeyDown(code)
}

// OnKeyUp forwards a key-up to the world.
func (g *Game) OnKeyUp(code core.KeyCode) {
	g.world.OnKeyUp(code)
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	return g.world.Step()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Snapshot returns a read-only view of the world.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Ticks returns the number of ticks simulated in the current session.
func (g *Game) Ticks() uint64 {
	return g.world.Tick()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
