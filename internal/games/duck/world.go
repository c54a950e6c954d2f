package duck

import "github.com/vovakirdan/duck-arcade/internal/core"

// Arena and entity dimensions, in arena units.
const (
	ArenaWidth      = 800.0
	ArenaHeight     = 600.0
	ActorSize       = 40.0
	HostileSize     = 30.0
	CollectibleSize = 20.0
)

// Physics constants, per tick at 60 ticks per second.
const (
	Gravity      = 0.8   // Added to vertical velocity every tick
	JumpImpulse  = -15.0 // Vertical velocity set on jump (negative = up)
	MoveSpeed    = 5.0   // Horizontal actor step
	HostileSpeed = 2.0   // Horizontal hostile step
)

// Scoring and session constants.
const (
	SpawnX        = 100.0
	SpawnY        = 400.0
	StartLives    = 3
	StartLevel    = 1
	KillPoints    = 100
	CollectPoints = 50
)

// Actor is the player-controlled entity.
type Actor struct {
	X, Y     float64
	VY       float64 // Vertical velocity, positive = falling
	Grounded bool
}

// Box returns the actor's collision box.
func (a Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, ActorSize, ActorSize)
}

// Hostile is a patrolling enemy. Dead hostiles stay in the roster.
type Hostile struct {
	ID    int
	X, Y  float64
	Dir   int // +1 moving right, -1 moving left
	Alive bool
}

// Box returns the hostile's collision box.
func (h Hostile) Box() core.Box {
	return core.NewBox(h.X, h.Y, HostileSize, HostileSize)
}

// Collectible is a static pickup. Collected never reverts within a session.
type Collectible struct {
	ID        int
	X, Y      float64
	Collected bool
}

// Box returns the collectible's collision box.
func (c Collectible) Box() core.Box {
	return core.NewBox(c.X, c.Y, CollectibleSize, CollectibleSize)
}

// Platform is a static one-way landing surface.
type Platform = core.Box

// layout is the immutable level geometry. The first platform is the ground.
var layout = []Platform{
	core.NewBox(0, 500, 800, 100),
	core.NewBox(250, 400, 150, 20),
	core.NewBox(450, 300, 150, 20),
	core.NewBox(150, 350, 100, 20),
	core.NewBox(650, 350, 120, 20),
}

// Platforms returns a copy of the level layout.
func Platforms() []Platform {
	out := make([]Platform, len(layout))
	copy(out, layout)
	return out
}

// initialHostiles returns a fresh hostile roster.
func initialHostiles() []Hostile {
	return []Hostile{
		{ID: 1, X: 300, Y: 450, Dir: 1, Alive: true},
		{ID: 2, X: 500, Y: 350, Dir: -1, Alive: true},
		{ID: 3, X: 650, Y: 450, Dir: 1, Alive: true},
	}
}

// initialCollectibles returns a fresh collectible roster.
func initialCollectibles() []Collectible {
	return []Collectible{
		{ID: 1, X: 200, Y: 400},
		{ID: 2, X: 400, Y: 300},
		{ID: 3, X: 600, Y: 350},
		{ID: 4, X: 750, Y: 400},
	}
}

// spawnActor returns the actor at the spawn point, resting.
func spawnActor() Actor {
	return Actor{X: SpawnX, Y: SpawnY, Grounded: true}
}
