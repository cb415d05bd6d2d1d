package level

import (
	"github.com/lixenwraith/shoutwalk/component"
	"github.com/lixenwraith/shoutwalk/vmath"
)

// GroundCapacity is the most ground obstacles a platform of width w may carry
func (g *Generator) GroundCapacity(w float64) int {
	l := &g.cfg.Level
	n := 1
	switch {
	case w >= l.ObstacleThreeWidth:
		n = 3
	case w >= l.ObstacleTwoWidth:
		n = 2
	}

	// Never more than fit side by side inside the margins
	fit := int((w - 2*l.ObstacleMargin) / l.ObstacleWidth)
	if n > fit {
		n = fit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// placeGround puts 1..capacity spikes on p, one per equal slot of the inner span
func (g *Generator) placeGround(p *component.Platform) int {
	l := &g.cfg.Level
	count := 1 + g.rng.Intn(g.GroundCapacity(p.W))

	span := p.W - 2*l.ObstacleMargin
	slot := span / float64(count)
	for i := 0; i < count; i++ {
		lo := p.X + l.ObstacleMargin + float64(i)*slot
		x := g.rangeF(lo, lo+slot-l.ObstacleWidth)
		o := component.NewObstacle(component.ObstacleGround, x, p.Y-l.ObstacleHeight, l.ObstacleWidth, l.ObstacleHeight)
		p.Obstacles = append(p.Obstacles, o)
	}
	return count
}

// placeAerial hangs one spike above a wide platform, kept fully on-screen
func (g *Generator) placeAerial(p *component.Platform) int {
	l := &g.cfg.Level
	if p.W < l.AerialMinWidth || !g.chance(l.AerialChance) {
		return 0
	}

	lo := p.X + l.ObstacleMargin
	x := g.rangeF(lo, p.Right()-l.ObstacleMargin-l.AerialWidth)
	clearance := g.rangeF(l.AerialMinClearance, l.AerialMaxClearance)
	y := p.Y - clearance - l.AerialHeight
	y = vmath.Clamp(y, g.cfg.Physics.CeilingY, g.cfg.Physics.ViewHeight-l.AerialHeight)

	p.Aerials = append(p.Aerials, component.NewObstacle(component.ObstacleAerial, x, y, l.AerialWidth, l.AerialHeight))
	return 1
}

// placeAir returns a free-floating spike near the middle of a wide gap, or nil
func (g *Generator) placeAir(gapStart, gap float64) *component.Obstacle {
	l := &g.cfg.Level
	if gap < l.AirGapMin || !g.chance(l.AirChance) {
		return nil
	}

	jitter := g.rangeF(-l.AirJitter*gap, l.AirJitter*gap)
	x := gapStart + gap/2 - l.AirWidth/2 + jitter
	x = vmath.Clamp(x, gapStart, gapStart+gap-l.AirWidth)
	y := g.rangeF(l.AirMinY, l.AirMaxY-l.AirHeight)

	return component.NewObstacle(component.ObstacleAir, x, y, l.AirWidth, l.AirHeight)
}
