package physics

import "github.com/lixenwraith/shoutwalk/config"

// Profile holds the flight and world constants used by Step, resolved once per round
type Profile struct {
	Gravity         float64
	LiftPerPoint    float64
	Threshold       float64
	WalkSpeed       float64
	CeilingY        float64
	OceanY          float64
	SplashTolerance float64
}

// NewProfile extracts the physics section of cfg
func NewProfile(cfg *config.Config) Profile {
	p := cfg.Physics
	return Profile{
		Gravity:         p.Gravity,
		LiftPerPoint:    p.LiftPerPoint,
		Threshold:       p.Threshold,
		WalkSpeed:       p.WalkSpeed,
		CeilingY:        p.CeilingY,
		OceanY:          p.OceanY,
		SplashTolerance: p.SplashTolerance,
	}
}

// Lift is the upward acceleration for a loudness score.
// Zero at and below threshold: exactly-at-threshold scrolls without lifting
func (p Profile) Lift(loudness float64) float64 {
	excess := loudness - p.Threshold
	if excess <= 0 {
		return 0
	}
	return excess * p.LiftPerPoint
}

// Scrolling reports whether loudness drives the world; inclusive at threshold
func (p Profile) Scrolling(loudness float64) bool {
	return loudness >= p.Threshold
}

// Acceleration is net vertical acceleration, positive downward
func (p Profile) Acceleration(loudness float64) float64 {
	return p.Gravity - p.Lift(loudness)
}
