package core

// RuntimeConfig contains configuration passed from the platform to the game loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultTickRate is the nominal simulation rate.
const DefaultTickRate = 60

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots serialize the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// GameState summarizes the session counters for the platform.
type GameState struct {
	Score int
	Lives int
	Level int
	Phase Phase
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// EventKind classifies a state transition produced during a tick.
type EventKind int

const (
	EventKill EventKind = iota + 1
	EventDamage
	EventCollect
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventKill:
		return "kill"
	case EventDamage:
		return "damage"
	case EventCollect:
		return "collect"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is one state transition. EntityID refers to the hostile or
// collectible involved; it is zero for EventGameOver.
type Event struct {
	Kind     EventKind
	EntityID int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events applied during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
