package duck

import "github.com/vovakirdan/duck-arcade/internal/core"

// Snapshot is a read-only copy of everything the presentation layer needs
// to draw one frame. Mutating it has no effect on the world.
type Snapshot struct {
	Tick         uint64            `yaml:"tick"`
	Actor        ActorView         `yaml:"actor"`
	Facing       core.Facing       `yaml:"facing"`
	Hostiles     []HostileView     `yaml:"hostiles"`
	Collectibles []CollectibleView `yaml:"collectibles"`
	Score        int               `yaml:"score"`
	Lives        int               `yaml:"lives"`
	Level        int               `yaml:"level"`
	Phase        core.Phase        `yaml:"phase"`
}

// ActorView is the actor part of a snapshot.
type ActorView struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VY       float64 `yaml:"vy"`
	Grounded bool    `yaml:"grounded"`
}

// HostileView is one hostile in a snapshot.
type HostileView struct {
	ID    int     `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Dir   int     `yaml:"dir"`
	Alive bool    `yaml:"alive"`
}

// CollectibleView is one collectible in a snapshot.
type CollectibleView struct {
	ID        int     `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Collected bool    `yaml:"collected"`
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: w.tick,
		Actor: ActorView{
			X:        w.Actor.X,
			Y:        w.Actor.Y,
			VY:       w.Actor.VY,
			Grounded: w.Actor.Grounded,
		},
		Facing:       w.Input.Facing,
		Hostiles:     make([]HostileView, len(w.Hostiles)),
		Collectibles: make([]CollectibleView, len(w.Collectibles)),
		Score:        w.Session.Score,
		Lives:        w.Session.Lives,
		Level:        w.Session.Level,
		Phase:        w.Session.Phase,
	}
	for i, h := range w.Hostiles {
		snap.Hostiles[i] = HostileView{ID: h.ID, X: h.X, Y: h.Y, Dir: h.Dir, Alive: h.Alive}
	}
	for i, c := range w.Collectibles {
		snap.Collectibles[i] = CollectibleView{ID: c.ID, X: c.X, Y: c.Y, Collected: c.Collected}
	}
	return snap
}
