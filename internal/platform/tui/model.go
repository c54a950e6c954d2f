package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duck-arcade/internal/core"
	"github.com/vovakirdan/duck-arcade/internal/registry"
	"github.com/vovakirdan/duck-arcade/internal/storage"
)

// Release windows used when Options leaves them unset. Terminals wait
// 250-660 ms before auto-repeat starts and then repeat every few ticks.
const (
	DefaultKeyReleaseTicks     = 12
	DefaultInitialReleaseTicks = 42
)

// Options configures a game Model.
type Options struct {
	Store               *storage.Store // Optional; results are not saved when nil
	Logger              *log.Logger    // Optional; discards output when nil
	Config              core.RuntimeConfig
	KeyReleaseTicks     int    // Ticks without a repeat before a repeating key is released
	InitialReleaseTicks int    // Same, before the key's first repeat arrives
	ScreenshotDir       string // Defaults to ~/.duck/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     GameKeyMap
	help     help.Model
	config   core.RuntimeConfig
	release  int
	initial  int
	shotDir  string
	held     map[core.KeyCode]heldKey
	ticks    int // Ticks simulated in the current session
	gen      int // Current tick loop generation
	state    core.GameState
	quitting bool
	saved    bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// The game stays on its title screen until the player starts it.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	release := opts.KeyReleaseTicks
	if release < 1 {
		release = DefaultKeyReleaseTicks
	}
	initial := opts.InitialReleaseTicks
	if initial < 1 {
		initial = DefaultInitialReleaseTicks
	}
	initial = max(initial, release)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".duck", "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:   opts.Store,
		logger:  logger,
		keys:    DefaultGameKeyMap(),
		help:    h,
		config:  cfg,
		release: release,
		initial: initial,
		shotDir: shotDir,
		held:    make(map[core.KeyCode]heldKey),
		state:   game.State(),
	}
}

// Init initializes the model. No tick loop runs before the session starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Start) && m.state.Phase == core.PhaseNotStarted:
		return m.startSession()

	case key.Matches(msg, m.keys.Restart) && m.state.Phase != core.PhaseNotStarted:
		return m.startSession()
	}

	code, ok := KeyCodeFor(msg)
	if !ok {
		return m, nil
	}

	// Space also starts from the title screen
	if code == core.KeySpace && m.state.Phase == core.PhaseNotStarted {
		return m.startSession()
	}

	m.game.OnKeyDown(code)
	if m.state.Phase == core.PhaseRunning {
		_, repeat := m.held[code]
		m.held[code] = heldKey{seen: m.ticks, repeated: repeat}
	}
	return m, nil
}

// startSession starts or restarts the game and begins a new tick loop.
// Bumping the generation drops ticks still in flight from the previous loop.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	restart := m.state.Phase != core.PhaseNotStarted

	m.game.Start()
	m.state = m.game.State()
	m.gen++
	m.ticks = 0
	m.saved = false
	clear(m.held)

	if restart {
		m.logger.Info("session restarted", "game", m.game.ID())
	} else {
		m.logger.Info("session started", "game", m.game.ID())
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleResize processes window resize events.
// The game scales to the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state.Phase != core.PhaseRunning {
		return m, nil
	}

	m.ticks++
	m.releaseStaleKeys()

	result := m.game.Step()
	m.state = result.State
	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver {
			m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "ticks", m.ticks)
			continue
		}
		m.logger.Debug("event", "kind", ev.Kind, "entity", ev.EntityID, "tick", m.ticks)
	}

	if m.state.GameOver() {
		m.releaseAll()
		m.saveResult()
		// No next tick: the loop ends with the session
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// heldKey tracks a key the terminal reported as pressed.
type heldKey struct {
	seen     int  // Session tick of the last press or repeat
	repeated bool // Whether auto-repeat has started
}

// releaseStaleKeys synthesizes key-ups for keys that have not repeated
// within their release window. Terminals report presses only, and the
// first repeat comes much later than the ones after it.
func (m Model) releaseStaleKeys() {
	for code, k := range m.held {
		window := m.initial
		if k.repeated {
			window = m.release
		}
		if m.ticks-k.seen >= window {
			m.game.OnKeyUp(code)
			delete(m.held, code)
		}
	}
}

// releaseAll releases every held key.
func (m Model) releaseAll() {
	for code := range m.held {
		m.game.OnKeyUp(code)
		delete(m.held, code)
	}
}

// saveResult stores the finished session once. Failures are logged and
// do not interrupt the game.
func (m *Model) saveResult() {
	if m.saved || m.state.Score <= 0 {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Level:  m.state.Level,
		Ticks:  m.ticks,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// gameHeight reserves the bottom row for the help line.
func gameHeight(screenH int) int {
	return max(screenH-1, 1)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
