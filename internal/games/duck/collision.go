package duck

import "github.com/vovakirdan/duck-arcade/internal/core"

// ResolveCollisions tests the actor against every live hostile and every
// uncollected collectible and returns the resulting events. It does not
// mutate anything; World.apply performs the transitions.
//
// Events are ordered by roster: hostiles first, then collectibles. Each
// hostile yields at most one event, either a kill or a damage.
func ResolveCollisions(a Actor, hs []Hostile, cs []Collectible) []core.Event {
	var events []core.Event
	actorBox := a.Box()

	for _, h := range hs {
		if !h.Alive || !actorBox.Overlaps(h.Box()) {
			continue
		}
		if isStomp(a, h) {
			events = append(events, core.Event{Kind: core.EventKill, EntityID: h.ID})
		} else {
			events = append(events, core.Event{Kind: core.EventDamage, EntityID: h.ID})
		}
	}

	for _, c := range cs {
		if c.Collected || !actorBox.Overlaps(c.Box()) {
			continue
		}
		events = append(events, core.Event{Kind: core.EventCollect, EntityID: c.ID})
	}

	return events
}

// isStomp reports whether the actor is falling onto h from above:
// moving down with its top edge higher than the hostile's top edge.
func isStomp(a Actor, h Hostile) bool {
	return a.VY > 0 && a.Y < h.Y
}
