package parameter

import "time"

// Loudness sampling
const (
	// SampleBufferSize is frames read per sampling tick
	SampleBufferSize = 1024

	// SampleRate for capture and replay
	SampleRate = 44100

	// LoudnessDBOffset shifts dBFS into the 0-100 score range
	LoudnessDBOffset = 100.0

	// LoudnessEpsilon keeps log10 finite on silence
	LoudnessEpsilon = 1e-8

	LoudnessMax = 100.0
)

// Effect playback
const (
	EffectSampleRate    = 48000
	EffectBufferLatency = 100 * time.Millisecond
	SplashSoundDuration = 600 * time.Millisecond
	SpikeSoundDuration  = 150 * time.Millisecond
	ScoreSoundDuration  = 80 * time.Millisecond
	WinSoundDuration    = 900 * time.Millisecond
)
