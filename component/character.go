package component

import "github.com/lixenwraith/shoutwalk/vmath"

// Character is the auto-walking player. X is fixed for the whole round
type Character struct {
	X, Y      float64
	W, H      float64
	VY        float64 // positive is downward
	Grounded  bool
	Submerged bool
}

// NewCharacter places a character standing on surfaceY
func NewCharacter(x, w, h, surfaceY float64) *Character {
	return &Character{
		X:        x,
		Y:        surfaceY - h,
		W:        w,
		H:        h,
		Grounded: true,
	}
}

func (c *Character) Bounds() vmath.Rect {
	return vmath.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

func (c *Character) Bottom() float64 { return c.Y + c.H }
