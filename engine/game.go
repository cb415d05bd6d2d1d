// Package engine runs the round state machine: it drives physics and the level
// generator each tick, keeps score, and persists the best score on round end
package engine

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/audio"
	"github.com/lixenwraith/shoutwalk/component"
	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/level"
	"github.com/lixenwraith/shoutwalk/persistence"
	"github.com/lixenwraith/shoutwalk/physics"
	"github.com/lixenwraith/shoutwalk/vmath"
)

// ErrInputUnavailable is returned by Start when no loudness source is attached
var ErrInputUnavailable = audio.ErrInputUnavailable

// elapsedEpsilon absorbs float accumulation of 1/60 steps at the duration boundary
const elapsedEpsilon = 1e-9

// Sounds receives game events for effect playback
type Sounds interface {
	PlaySplash()
	PlaySpikes()
	PlayScore()
	PlayWin()
}

// NopSounds discards all events
type NopSounds struct{}

func (NopSounds) PlaySplash() {}
func (NopSounds) PlaySpikes() {}
func (NopSounds) PlayScore()  {}
func (NopSounds) PlayWin()    {}

// InputStatus reports whether a loudness source is attached; audio.Sampler satisfies it
type InputStatus interface {
	Ready() bool
}

// Options carries the collaborators of a Game. Nil fields get inert defaults
type Options struct {
	Rand   level.Random
	Store  persistence.Store
	Input  InputStatus
	Sounds Sounds
	Log    zerolog.Logger
}

// Game owns the current round and the lifecycle phase
type Game struct {
	cfg     *config.Config
	gen     *level.Generator
	profile physics.Profile

	store  persistence.Store
	input  InputStatus
	sounds Sounds
	log    zerolog.Logger

	phase Phase
	round *Round
	best  int

	loudness float64
	muted    bool
}

// NewGame creates a game in PhaseNotStarted with a preview world and loads the best score once
func NewGame(cfg *config.Config, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	store := opts.Store
	if store == nil {
		store = persistence.NewMemoryStore(0)
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = NopSounds{}
	}

	g := &Game{
		cfg:     cfg,
		gen:     level.NewGenerator(cfg, rng),
		profile: physics.NewProfile(cfg),
		store:   store,
		input:   opts.Input,
		sounds:  sounds,
		log:     opts.Log.With().Str("component", "engine").Logger(),
	}

	best, err := store.Load()
	if err != nil {
		g.log.Warn().Err(err).Msg("best score unreadable, starting from 0")
		best = 0
	}
	g.best = best

	g.round = g.buildRound()
	return g
}

// buildRound lays the start platform and the initial look-ahead terrain
func (g *Game) buildRound() *Round {
	r := newRound()
	g.gen.Begin(&r.World)
	fill := g.gen.Fill(&r.World, level.Progress{})
	r.Obstacles = fill.Obstacles
	return r
}

// Start begins a fresh round. It refuses while no input source is ready
func (g *Game) Start() error {
	if g.input == nil || !g.input.Ready() {
		return ErrInputUnavailable
	}

	g.round = g.buildRound()
	g.phase = PhaseRunning
	g.log.Info().Str("round", g.round.ID.String()).Int("best", g.best).Msg("round started")
	return nil
}

// Reset abandons the current round and starts another; same contract as Start
func (g *Game) Reset() error {
	return g.Start()
}

// Tick advances the running round by dt seconds under loudness and returns the phase after it.
// Outside PhaseRunning only the displayed loudness is updated
func (g *Game) Tick(dt, loudness float64) Phase {
	g.loudness = loudness
	if g.phase != PhaseRunning {
		return g.phase
	}

	r := g.round
	dt = vmath.Clamp(dt, 0, g.cfg.MaxDeltaSeconds())
	r.Elapsed += dt
	r.Loud = g.profile.Scrolling(loudness)

	res := physics.Step(&r.World, dt, loudness, g.profile)
	r.Distance += res.Scrolled

	fill := g.gen.Fill(&r.World, level.Progress{
		Elapsed:   r.Elapsed,
		Score:     r.Score,
		Obstacles: r.Obstacles,
	})
	r.Obstacles += fill.Obstacles
	if fill.Platforms > 0 {
		g.log.Debug().
			Int("platforms", fill.Platforms).
			Int("obstacles", fill.Obstacles).
			Int("aerials", fill.Aerials).
			Int("air", fill.Air).
			Msg("terrain generated")
	}

	g.scorePassed()
	r.World.Compact()

	switch {
	case res.Outcome.Fatal():
		g.finish(PhaseLost, endReasonFor(res.Outcome))
	case r.Elapsed >= g.cfg.RoundSeconds()-elapsedEpsilon:
		g.finish(PhaseWon, EndTimeUp)
	}
	return g.phase
}

// scorePassed awards every platform whose right edge has passed the character's left edge
func (g *Game) scorePassed() {
	r := g.round
	left := r.World.Character.X
	for _, p := range r.World.Platforms {
		if p.Scored || p.Right() >= left {
			continue
		}
		p.Scored = true
		r.Score += 1 + min(len(p.Obstacles), g.cfg.Round.BonusCap)
		r.PlatformsPassed++
		g.sounds.PlayScore()
	}
}

// finish enters a terminal phase and persists the best score once
func (g *Game) finish(phase Phase, reason EndReason) {
	r := g.round
	g.phase = phase
	r.EndReason = reason

	switch reason {
	case EndSplashed:
		g.sounds.PlaySplash()
	case EndHitSpikes:
		g.sounds.PlaySpikes()
	case EndTimeUp:
		g.sounds.PlayWin()
	}

	if r.persisted {
		return
	}
	r.persisted = true

	if r.Score > g.best {
		g.best = r.Score
	}
	if err := g.store.Save(g.best); err != nil {
		g.log.Warn().Err(err).Int("best", g.best).Msg("best score not saved")
	}

	g.log.Info().
		Str("round", r.ID.String()).
		Str("phase", phase.String()).
		Str("reason", reason.String()).
		Int("score", r.Score).
		Int("best", g.best).
		Int("obstacles", r.Obstacles).
		Int("passed", r.PlatformsPassed).
		Float64("distance", r.Distance).
		Float64("elapsed", r.Elapsed).
		Msg("round ended")
}

func (g *Game) Phase() Phase { return g.phase }

// Round exposes the current round for inspection; callers must not mutate it
func (g *Game) Round() *Round { return g.round }

func (g *Game) Best() int { return g.best }

func (g *Game) Config() *config.Config { return g.cfg }

// SetInput attaches the source status consulted by Start
func (g *Game) SetInput(in InputStatus) { g.input = in }

// InputReady reports whether Start would be accepted
func (g *Game) InputReady() bool { return g.input != nil && g.input.Ready() }

// SetMuted records the mute flag shown on the HUD
func (g *Game) SetMuted(m bool) { g.muted = m }

// View is the read-only scene for the renderer
type View struct {
	Character *component.Character
	Platforms []*component.Platform
	Air       []*component.Obstacle
	CeilingY  float64
	OceanY    float64
	Width     float64
	Height    float64
}

// View returns the visible scene; before the first round it shows the preview world
func (g *Game) View() View {
	w := &g.round.World
	return View{
		Character: w.Character,
		Platforms: w.Platforms,
		Air:       w.Air,
		CeilingY:  g.cfg.Physics.CeilingY,
		OceanY:    g.cfg.Physics.OceanY,
		Width:     g.cfg.Physics.ViewWidth,
		Height:    g.cfg.Physics.ViewHeight,
	}
}

// HUD is the status line data
type HUD struct {
	Remaining  int // whole seconds, rounded up
	Score      int
	Best       int
	Loudness   float64
	Threshold  float64
	Muted      bool
	Phase      Phase
	EndReason  EndReason
	RoundID    string
	Distance   float64
	InputReady bool
}

func (g *Game) HUD() HUD {
	r := g.round
	remaining := g.cfg.RoundSeconds()
	if g.phase != PhaseNotStarted {
		remaining -= r.Elapsed
	}

	h := HUD{
		Remaining:  max(0, int(math.Ceil(remaining-elapsedEpsilon))),
		Best:       g.best,
		Loudness:   g.loudness,
		Threshold:  g.profile.Threshold,
		Muted:      g.muted,
		Phase:      g.phase,
		InputReady: g.InputReady(),
	}
	if g.phase != PhaseNotStarted {
		h.Score = r.Score
		h.EndReason = r.EndReason
		h.RoundID = r.ID.String()
		h.Distance = r.Distance
	}
	return h
}
