package duck

import "github.com/vovakirdan/duck-arcade/internal/core"

// Session holds the counters and lifecycle phase of one play-through.
type Session struct {
	Phase core.Phase
	Score int
	Lives int
	Level int
}

// World is the simulation context for one play session. The caller owns it
// and drives it one tick at a time; all state lives here.
type World struct {
	Actor        Actor
	Hostiles     []Hostile
	Collectibles []Collectible
	Input        core.InputState
	Session      Session

	platforms []Platform
	tick      uint64
}

// NewWorld creates a world in the not-started phase.
// Call Start to begin a session.
func NewWorld() *World {
	w := &World{platforms: Platforms()}
	w.reset()
	w.Session.Phase = core.PhaseNotStarted
	return w
}

// Start re-initializes every piece of session state and enters Running.
// Nothing carries over from a previous session.
func (w *World) Start() {
	w.reset()
	w.Session.Phase = core.PhaseRunning
}

// Restart is the same operation as Start. It is valid from any phase.
func (w *World) Restart() {
	w.Start()
}

func (w *World) reset() {
	w.Actor = spawnActor()
	w.Hostiles = initialHostiles()
	w.Collectibles = initialCollectibles()
	w.Input = core.InputState{}
	w.Session = Session{
		Score: 0,
		Lives: StartLives,
		Level: StartLevel,
	}
	w.tick = 0
}

// Phase returns the current session phase.
func (w *World) Phase() core.Phase {
	return w.Session.Phase
}

// Tick returns the number of ticks simulated in this session.
func (w *World) Tick() uint64 {
	return w.tick
}

// OnKeyDown forwards a raw key-down. It is ignored unless the session is
// running. The return value reports whether the host should suppress the
// key's default action.
func (w *World) OnKeyDown(code core.KeyCode) bool {
	if w.Session.Phase != core.PhaseRunning {
		return false
	}
	_, preventDefault := w.Input.KeyDown(code)
	return preventDefault
}

// OnKeyUp forwards a raw key-up. Key-ups are always processed so that no
// flag stays stuck across a phase change.
func (w *World) OnKeyUp(code core.KeyCode) {
	w.Input.KeyUp(code)
}

// Step runs one fixed tick. Outside the running phase it does nothing.
//
// Collisions are resolved against hostile positions from before this
// tick's patrol move, so hostiles lag the actor by one tick.
func (w *World) Step() core.StepResult {
	if w.Session.Phase != core.PhaseRunning {
		return core.StepResult{State: w.State()}
	}

	w.tick++
	StepActor(&w.Actor, w.Input, w.platforms)
	events := w.apply(ResolveCollisions(w.Actor, w.Hostiles, w.Collectibles))
	PatrolHostiles(w.Hostiles)

	return core.StepResult{State: w.State(), Events: events}
}

// apply performs the pending transitions in order and returns them,
// followed by a game-over event if lives ran out.
func (w *World) apply(events []core.Event) []core.Event {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventKill:
			if h := w.hostile(ev.EntityID); h != nil && h.Alive {
				h.Alive = false
				w.Session.Score += KillPoints
			}

		case core.EventCollect:
			if c := w.collectible(ev.EntityID); c != nil && !c.Collected {
				c.Collected = true
				w.Session.Score += CollectPoints
			}

		case core.EventDamage:
			w.Session.Lives = max(0, w.Session.Lives-1)
			w.Actor.X = SpawnX
			w.Actor.Y = SpawnY
			w.Actor.VY = 0
		}
	}

	if w.Session.Phase == core.PhaseRunning && w.Session.Lives <= 0 {
		w.Session.Phase = core.PhaseOver
		events = append(events, core.Event{Kind: core.EventGameOver})
	}
	return events
}

func (w *World) hostile(id int) *Hostile {
	for i := range w.Hostiles {
		if w.Hostiles[i].ID == id {
			return &w.Hostiles[i]
		}
	}
	return nil
}

func (w *World) collectible(id int) *Collectible {
	for i := range w.Collectibles {
		if w.Collectibles[i].ID == id {
			return &w.Collectibles[i]
		}
	}
	return nil
}

// State returns the session counters.
func (w *World) State() core.GameState {
	return core.GameState{
		Score: w.Session.Score,
		Lives: w.Session.Lives,
		Level: w.Session.Level,
		Phase: w.Session.Phase,
	}
}
