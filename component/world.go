package component

// World is the mutable entity set of one round. Platforms own their obstacles,
// Air holds obstacles that belong to no platform
type World struct {
	Character *Character
	Platforms []*Platform
	Air       []*Obstacle

	// SpawnX is the generator cursor; it scrolls with the terrain
	SpawnX float64
}

// Shift scrolls all terrain and the spawn cursor horizontally
func (w *World) Shift(dx float64) {
	for _, p := range w.Platforms {
		p.Shift(dx)
	}
	for _, o := range w.Air {
		o.Shift(dx)
	}
	w.SpawnX += dx
}

// Compact drops invisible entities in place, preserving order
func (w *World) Compact() {
	n := 0
	for _, p := range w.Platforms {
		if p.Visible {
			w.Platforms[n] = p
			n++
		}
	}
	clear(w.Platforms[n:])
	w.Platforms = w.Platforms[:n]

	m := 0
	for _, o := range w.Air {
		if o.Visible {
			w.Air[m] = o
			m++
		}
	}
	clear(w.Air[m:])
	w.Air = w.Air[:m]
}

// GroundObstacles counts ground obstacles currently owned by platforms
func (w *World) GroundObstacles() int {
	n := 0
	for _, p := range w.Platforms {
		n += len(p.Obstacles)
	}
	return n
}
