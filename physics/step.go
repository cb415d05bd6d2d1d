package physics

import (
	"github.com/lixenwraith/shoutwalk/component"
)

// Outcome is the fatal result of a step, if any
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSplashed
	OutcomeHitSpikes
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSplashed:
		return "splashed"
	case OutcomeHitSpikes:
		return "hit spikes"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the round
func (o Outcome) Fatal() bool { return o != OutcomeNone }

// Result summarizes one step for the round state machine
type Result struct {
	Outcome  Outcome
	Scrolled float64 // world distance moved left this step
	Landed   bool
	Ceiling  bool
	Hit      *component.Obstacle
}

// Step advances the world by dt seconds under the given loudness.
// Order is fixed: integrate, clamp to ceiling, scroll, resolve landings,
// check splash, check obstacles, cull off-screen terrain
func Step(w *component.World, dt, loudness float64, p Profile) Result {
	var res Result
	c := w.Character

	// Semi-implicit Euler: velocity first, then position with the new velocity
	c.VY += p.Acceleration(loudness) * dt
	prevBottom := c.Bottom()
	c.Y += c.VY * dt

	if c.Y < p.CeilingY {
		c.Y = p.CeilingY
		if c.VY < 0 {
			c.VY = 0
		}
		res.Ceiling = true
	}

	if p.Scrolling(loudness) {
		dx := p.WalkSpeed * dt
		w.Shift(-dx)
		res.Scrolled = dx
	}

	res.Landed = resolveLanding(w, prevBottom)

	if c.Bottom() > p.OceanY+p.SplashTolerance {
		c.Submerged = true
		res.Outcome = OutcomeSplashed
	} else if hit := firstHazard(w); hit != nil {
		res.Outcome = OutcomeHitSpikes
		res.Hit = hit
	}

	cull(w)
	return res
}

// cull marks terrain whose right edge has left the screen
func cull(w *component.World) {
	for _, pl := range w.Platforms {
		if pl.Visible && pl.Right() < 0 {
			pl.Visible = false
		}
	}
	for _, o := range w.Air {
		if o.Visible && o.Box.Right() < 0 {
			o.Visible = false
		}
	}
}
