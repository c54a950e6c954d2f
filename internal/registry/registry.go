// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/duck-arcade/internal/core"
)

// Game is the interface the platform drives. Games contain pure logic with
// no external dependencies (especially no Bubble Tea); the platform handles
// key delivery, timing and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "duck").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Start begins a fresh session, discarding any previous one.
	// Also used to restart after game over.
	Start()

	// OnKeyDown forwards a raw key press. Returns true if the host should
	// suppress the key's default action.
	OnKeyDown(code core.KeyCode) bool

	// OnKeyUp forwards a raw key release.
	OnKeyUp(code core.KeyCode)

	// Step advances the simulation by one fixed tick.
	Step() core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, lives, level, phase).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	first   string // ID of the first registered game, played when none is named
)

// Register adds a game factory to the registry.
// Panics if the ID is empty or taken, or if the factory builds a game
// reporting a different ID; scores are stored under Game.ID().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: game registered as %q reports id %q", id, g.ID()))
	}

	entries[id] = entry{info: GameInfo{ID: id, Title: g.Title()}, factory: f}
	if first == "" {
		first = id
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Default returns the ID of the game played when none is named,
// or "" if nothing is registered.
func Default() string {
	mu.RLock()
	defer mu.RUnlock()
	return first
}

// Resolve maps a command line game argument to a registered ID.
// An empty argument selects the default game.
func Resolve(id string) (string, error) {
	if id == "" {
		id = Default()
		if id == "" {
			return "", fmt.Errorf("registry: no games registered")
		}
	}

	mu.RLock()
	defer mu.RUnlock()

	if _, ok := entries[id]; !ok {
		ids := make([]string, 0, len(entries))
		for known := range entries {
			ids = append(ids, known)
		}
		slices.Sort(ids)
		return "", fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return id, nil
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
