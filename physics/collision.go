package physics

import (
	"github.com/lixenwraith/shoutwalk/component"
)

// resolveLanding snaps the character onto any platform whose surface it crossed
// downward this step. Platforms never overlap horizontally, so last match wins
func resolveLanding(w *component.World, prevBottom float64) bool {
	c := w.Character
	c.Grounded = false
	box := c.Bounds()

	for _, pl := range w.Platforms {
		if !pl.Visible || !box.OverlapsX(pl.Bounds()) {
			continue
		}
		if prevBottom <= pl.Y && c.Bottom() >= pl.Y {
			c.Y = pl.Y - c.H
			c.VY = 0
			c.Grounded = true
		}
	}
	return c.Grounded
}

// firstHazard returns the first visible obstacle overlapping the character:
// platform-owned obstacles in platform order, then free-floating ones
func firstHazard(w *component.World) *component.Obstacle {
	box := w.Character.Bounds()
	var hit *component.Obstacle

	for _, pl := range w.Platforms {
		if !pl.Visible {
			continue
		}
		pl.Hazards(func(o *component.Obstacle) bool {
			if box.Overlaps(o.Box) {
				hit = o
				return false
			}
			return true
		})
		if hit != nil {
			return hit
		}
	}

	for _, o := range w.Air {
		if o.Visible && box.Overlaps(o.Box) {
			return o
		}
	}
	return nil
}
