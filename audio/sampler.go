// Package audio turns captured amplitude into the loudness score that drives the game,
// and builds the procedural sound effects played on game events
package audio

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/parameter"
)

// Loudness maps a buffer to a 0-100 score: RMS, dBFS, shifted by dbOffset, clamped.
// eps keeps silence finite
func Loudness(samples []float32, dbOffset, eps float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSquare float64
	for _, s := range samples {
		f := float64(s)
		sumSquare += f * f
	}
	rms := math.Sqrt(sumSquare / float64(len(samples)))

	db := 20 * math.Log10(rms+eps)
	score := db + dbOffset
	if score < 0 {
		return 0
	}
	if score > parameter.LoudnessMax {
		return parameter.LoudnessMax
	}
	return score
}

// Sampler reads its source once per sampling tick and keeps the latest score for the HUD
type Sampler struct {
	src      Source
	buf      []float32
	dbOffset float64
	eps      float64

	muted bool
	last  float64
	fails int

	log zerolog.Logger
}

// NewSampler creates a sampler. src may be nil until an input device is attached
func NewSampler(src Source, cfg config.AudioConfig, log zerolog.Logger) *Sampler {
	return &Sampler{
		src:      src,
		buf:      make([]float32, cfg.BufferSize),
		dbOffset: cfg.DBOffset,
		eps:      cfg.Epsilon,
		log:      log.With().Str("component", "sampler").Logger(),
	}
}

// Sample reads the source and returns the loudness score; 0 when muted or detached
func (s *Sampler) Sample() float64 {
	if s.muted || s.src == nil {
		s.last = 0
		return 0
	}

	n, err := s.src.Read(s.buf)
	if err != nil {
		s.fails++
		// Log the first failure and then sparsely, the tick runs every frame
		if s.fails == 1 || s.fails%600 == 0 {
			s.log.Warn().Err(err).Int("failures", s.fails).Msg("input read failed")
		}
		s.last = 0
		return 0
	}
	if n > len(s.buf) {
		n = len(s.buf)
	}

	s.last = Loudness(s.buf[:n], s.dbOffset, s.eps)
	return s.last
}

// Last returns the score from the most recent Sample call
func (s *Sampler) Last() float64 { return s.last }

// Ready reports whether an input source is attached
func (s *Sampler) Ready() bool { return s.src != nil }

func (s *Sampler) SetSource(src Source) { s.src = src }

func (s *Sampler) Muted() bool { return s.muted }

func (s *Sampler) SetMuted(m bool) {
	s.muted = m
	if m {
		s.last = 0
	}
}

// ToggleMute flips the mute flag and returns the new state
func (s *Sampler) ToggleMute() bool {
	s.SetMuted(!s.muted)
	return s.muted
}
