// Package level generates platform and obstacle terrain ahead of the character
package level

import (
	"math"

	"github.com/lixenwraith/shoutwalk/component"
	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/vmath"
)

// Random is the injected source; vmath.FastRand satisfies it
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Progress is the round state the generator reads when biasing obstacle placement
type Progress struct {
	Elapsed   float64 // seconds into the round
	Score     int
	Obstacles int // ground obstacles spawned so far this round
}

// FillResult counts what one Fill call added
type FillResult struct {
	Platforms int
	Obstacles int // ground
	Aerials   int
	Air       int
}

// Generator produces terrain. It never removes or moves placed platforms
type Generator struct {
	cfg *config.Config
	rng Random

	avgPitch  float64
	lastY     float64
	generated int // platforms placed this round, start platform excluded
}

// NewGenerator creates a generator. cfg must have passed Validate
func NewGenerator(cfg *config.Config, rng Random) *Generator {
	g := &Generator{
		cfg: cfg,
		rng: rng,
	}
	g.avgPitch = averagePitch(cfg.Level.Variants)
	g.lastY = cfg.Level.StartY
	return g
}

// averagePitch is the expected platform width plus gap under the variant weights
func averagePitch(variants []config.Variant) float64 {
	pitch := 0.0
	for _, v := range variants {
		pitch += v.Weight * ((v.WidthMin+v.WidthMax)/2 + (v.GapMin+v.GapMax)/2)
	}
	if pitch <= 0 {
		pitch = 1
	}
	return pitch
}

// Begin resets per-round state and lays the start platform under the character
func (g *Generator) Begin(w *component.World) *component.Platform {
	l := &g.cfg.Level
	ch := &g.cfg.Character

	start := StartPlatform(g.cfg)
	w.Platforms = append(w.Platforms, start)

	minGap := math.Inf(1)
	for _, v := range l.Variants {
		minGap = math.Min(minGap, v.GapMin)
	}
	w.SpawnX = start.Right() + minGap

	w.Character = component.NewCharacter(ch.X, ch.Width, ch.Height, start.Y)

	g.lastY = start.Y
	g.generated = 0
	return start
}

// StartPlatform builds the obstacle-free island the character spawns on
func StartPlatform(cfg *config.Config) *component.Platform {
	l := &cfg.Level
	return component.NewPlatform(cfg.Character.X-l.StartLead, l.StartY, l.StartWidth, l.PlatformHeight, "start")
}

// Horizon is the x the spawn cursor must reach before Fill returns
func (g *Generator) Horizon() float64 {
	return g.cfg.Physics.ViewWidth * g.cfg.Level.LookAheadScreens
}

// Fill appends platforms until the spawn cursor passes the horizon
func (g *Generator) Fill(w *component.World, pr Progress) FillResult {
	var res FillResult
	horizon := g.Horizon()
	obstacles := pr.Obstacles

	for w.SpawnX < horizon {
		v := g.pickVariant()
		width := g.rangeF(v.WidthMin, v.WidthMax)
		gap := g.rangeF(v.GapMin, v.GapMax)

		p := component.NewPlatform(w.SpawnX, g.nextY(), width, g.cfg.Level.PlatformHeight, v.Name)
		w.SpawnX += width + gap
		g.generated++

		if g.generated > g.cfg.Level.GracePlatforms {
			if g.chance(g.ObstacleChance(w, pr.Elapsed, obstacles)) {
				n := g.placeGround(p)
				obstacles += n
				res.Obstacles += n
			}
			if pr.Score > g.cfg.Level.AerialScoreThreshold {
				res.Aerials += g.placeAerial(p)
			}
			if o := g.placeAir(p.Right(), gap); o != nil {
				w.Air = append(w.Air, o)
				res.Air++
			}
		}

		w.Platforms = append(w.Platforms, p)
		res.Platforms++
	}
	return res
}

// ObstacleChance is the forcing probability for the next platform:
// max(base, needed/remaining) capped below 1
func (g *Generator) ObstacleChance(w *component.World, elapsed float64, obstacles int) float64 {
	l := &g.cfg.Level
	needed := g.cfg.Round.MinObstacles - obstacles
	if needed <= 0 {
		return l.ObstacleBaseChance
	}

	remaining := g.EstimatedRemaining(w, elapsed)
	p := math.Max(l.ObstacleBaseChance, float64(needed)/float64(remaining))
	return math.Min(p, l.ObstacleForceCap)
}

// EstimatedRemaining guesses how many more platforms this round will generate.
// Terrain already laid ahead of the character is subtracted; never below 1
func (g *Generator) EstimatedRemaining(w *component.World, elapsed float64) int {
	remainingTime := math.Max(0, g.cfg.RoundSeconds()-elapsed)
	ahead := w.SpawnX - g.cfg.Character.X
	distance := remainingTime*g.cfg.Physics.WalkSpeed - ahead

	n := int(math.Floor(distance / g.avgPitch))
	if n < 1 {
		n = 1
	}
	return n
}

// pickVariant samples a size class by cumulative weight
func (g *Generator) pickVariant() config.Variant {
	variants := g.cfg.Level.Variants
	u := g.rng.Float64()
	acc := 0.0
	for _, v := range variants {
		acc += v.Weight
		if u < acc {
			return v
		}
	}
	// Float rounding can leave u just above the final sum
	return variants[len(variants)-1]
}

// nextY walks the surface height within the allowed band
func (g *Generator) nextY() float64 {
	l := &g.cfg.Level
	y := g.lastY + g.rangeF(-l.PlatformMaxStep, l.PlatformMaxStep)
	y = vmath.Clamp(y, l.PlatformMinY, l.PlatformMaxY)
	g.lastY = y
	return y
}

func (g *Generator) rangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return g.rng.Float64() < p
}
