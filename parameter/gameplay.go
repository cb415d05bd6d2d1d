package parameter

import "time"

// Round
const (
	// RoundDuration is the survival time needed to win a round
	RoundDuration = 60 * time.Second

	// MinObstacles is the ground obstacle quota the generator must meet per round
	MinObstacles = 15

	// ScoreBonusCap caps the per-platform bonus for carried ground obstacles
	ScoreBonusCap = 3

	// MaxFrameDelta bounds the physics step after a stall
	MaxFrameDelta = time.Second / 30
)

// Character, fixed horizontal position; the world scrolls under it
const (
	CharacterX      = 160.0
	CharacterWidth  = 30.0
	CharacterHeight = 40.0
)

// Start platform, literal geometry so the idle scenario stays pinned
const (
	StartPlatformLead  = 100.0 // distance from platform left edge to character left edge
	StartPlatformWidth = 600.0
	StartPlatformY     = 360.0
)
