package component

import "github.com/lixenwraith/shoutwalk/vmath"

// ObstacleKind distinguishes spike placement for rendering and stats
type ObstacleKind uint8

const (
	ObstacleGround ObstacleKind = iota // sits on a platform
	ObstacleAerial                     // floats above a platform
	ObstacleAir                        // floats in a gap, owned by the round
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleGround:
		return "ground"
	case ObstacleAerial:
		return "aerial"
	case ObstacleAir:
		return "air"
	default:
		return "unknown"
	}
}

// Obstacle is a fatal box. Ground and aerial obstacles live inside their platform,
// air obstacles live in the round's free-floating collection
type Obstacle struct {
	Kind    ObstacleKind
	Box     vmath.Rect
	Visible bool
}

func NewObstacle(kind ObstacleKind, x, y, w, h float64) *Obstacle {
	return &Obstacle{
		Kind:    kind,
		Box:     vmath.Rect{X: x, Y: y, W: w, H: h},
		Visible: true,
	}
}

// Shift moves the obstacle horizontally
func (o *Obstacle) Shift(dx float64) {
	o.Box.X += dx
}
