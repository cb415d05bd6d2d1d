// Package sfx plays game event effects through the system speaker
package sfx

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/audio"
	"github.com/lixenwraith/shoutwalk/parameter"
)

const sampleRate = beep.SampleRate(parameter.EffectSampleRate)

// SoundManager mixes one-shot effects onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds
func NewSoundManager(volume float64, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    log.With().Str("component", "sfx").Logger(),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.EffectBufferLatency)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued effects and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences new effects; effects already queued finish
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the effect for t; a no-op when muted or not initialized
func (sm *SoundManager) Play(t audio.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	s := audio.GetSoundEffect(t, sampleRate, sm.volume)
	if s == nil {
		sm.log.Debug().Int("sound", int(t)).Msg("unknown sound")
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

func (sm *SoundManager) PlaySplash() { sm.Play(audio.SoundSplash) }
func (sm *SoundManager) PlaySpikes() { sm.Play(audio.SoundSpikes) }
func (sm *SoundManager) PlayScore()  { sm.Play(audio.SoundScore) }
func (sm *SoundManager) PlayWin()    { sm.Play(audio.SoundWin) }
