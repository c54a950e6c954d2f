package duck

// PatrolHostiles moves every alive hostile one step along its direction.
// A hostile whose next position would reach an arena edge turns around
// instead and keeps its position for this tick. Dead hostiles are frozen.
//
// Hostiles only turn at the arena edges, not at platform ends.
func PatrolHostiles(hs []Hostile) {
	for i := range hs {
		h := &hs[i]
		if !h.Alive {
			continue
		}

		nx := h.X + float64(h.Dir)*HostileSpeed
		if nx <= 0 || nx >= ArenaWidth-HostileSize {
			h.Dir = -h.Dir
			continue
		}
		h.X = nx
	}
}
