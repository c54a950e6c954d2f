package duck

import "github.com/vovakirdan/duck-arcade/internal/core"

// StepActor advances the actor by one tick: horizontal move, jump, gravity,
// one-way platform landing and floor clamp, in that order.
func StepActor(a *Actor, in core.InputState, platforms []Platform) {
	wasGrounded := a.Grounded

	// Left and right are applied independently; holding both cancels out.
	if in.Left && a.X > 0 {
		a.X -= MoveSpeed
	}
	if in.Right && a.X < ArenaWidth-ActorSize {
		a.X += MoveSpeed
	}
	a.X = core.ClampF(a.X, 0, ArenaWidth-ActorSize)

	if in.Jump && wasGrounded {
		a.VY = JumpImpulse
	}

	// Gravity also applies on the jump tick.
	a.VY += Gravity
	a.Y += a.VY

	onPlatform := false
	if p, ok := platformBelow(a.X, a.Y, platforms); ok {
		onPlatform = true
		if a.VY > 0 {
			a.Y = p.Y - ActorSize
			a.VY = 0
		}
	}

	floor := ArenaHeight - ActorSize
	if a.Y > floor {
		a.Y = floor
		a.VY = 0
	}
	clamped := a.Y >= floor
	if a.Y < 0 {
		a.Y = 0
		if a.VY < 0 {
			a.VY = 0
		}
	}

	a.Grounded = onPlatform || clamped
}

// platformBelow checks a 1-unit strip directly under an actor footprint at
// (x, y) and returns the first platform it touches.
func platformBelow(x, y float64, platforms []Platform) (Platform, bool) {
	feet := core.NewBox(x, y+ActorSize, ActorSize, 1)
	if i := core.FirstOverlap(feet, platforms); i >= 0 {
		return platforms[i], true
	}
	return Platform{}, false
}
