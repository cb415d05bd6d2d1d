package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/shoutwalk/component"
)

// Round is the single owned context of one play-through, mutated only by Game.Tick
type Round struct {
	ID uuid.UUID

	Elapsed float64 // seconds
	Score   int

	World component.World

	// Obstacles counts ground obstacles spawned this round, toward the minimum quota
	Obstacles int

	PlatformsPassed int
	Distance        float64 // world units scrolled

	// Loud is set when the last tick's loudness reached the threshold
	Loud bool

	EndReason EndReason
	persisted bool
}

func newRound() *Round {
	return &Round{ID: uuid.New()}
}
