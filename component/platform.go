package component

import "github.com/lixenwraith/shoutwalk/vmath"

// Platform is a floating island. Y is the top surface; the span is [X, X+W)
type Platform struct {
	X, Y    float64
	W, H    float64
	Variant string
	Visible bool
	Scored  bool

	Obstacles []*Obstacle // ground spikes on the surface
	Aerials   []*Obstacle // spikes hovering above the surface
}

func NewPlatform(x, y, w, h float64, variant string) *Platform {
	return &Platform{
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Variant: variant,
		Visible: true,
	}
}

func (p *Platform) Right() float64 { return p.X + p.W }

func (p *Platform) Bounds() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Shift moves the platform and everything it owns
func (p *Platform) Shift(dx float64) {
	p.X += dx
	for _, o := range p.Obstacles {
		o.Shift(dx)
	}
	for _, o := range p.Aerials {
		o.Shift(dx)
	}
}

// Hazards calls fn for every visible obstacle the platform owns, ground first
func (p *Platform) Hazards(fn func(*Obstacle) bool) {
	for _, o := range p.Obstacles {
		if o.Visible && !fn(o) {
			return
		}
	}
	for _, o := range p.Aerials {
		if o.Visible && !fn(o) {
			return
		}
	}
}
