package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/shoutwalk/parameter"
	"github.com/lixenwraith/shoutwalk/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + uint64(duration)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales by a linear factor; math.Log2(0) is -Inf so 0 is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SoundType names the game events that have an effect
type SoundType int

const (
	SoundSplash SoundType = iota
	SoundSpikes
	SoundScore
	SoundWin
)

// CreateSplashSound is a falling noise burst over a low thump for ocean falls
func CreateSplashSound(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.SplashSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, 5*time.Millisecond, d*2/3, rate)

	thump := NewOscillator(70.0, d/3, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, d/3, 2*time.Millisecond, d/4, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(thumpShaped, 0.4),
	)
	return newVolume(mixed, volume)
}

// CreateSpikeSound is a short harsh buzz for obstacle hits
func CreateSpikeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.SpikeSoundDuration
	osc := NewOscillator(110.0, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, volume)
}

// CreateScoreSound is a two-note chime for each passed platform
func CreateScoreSound(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.ScoreSoundDuration

	// B5 then E6
	n1 := NewEnvelope(NewOscillator(987.77, d, WaveSquare, rate), d, 2*time.Millisecond, d/2, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, d*2, WaveSquare, rate), d*2, 2*time.Millisecond, d*3/2, rate)

	return newVolume(beep.Seq(n1, n2), volume*0.5)
}

// CreateWinSound is an ascending major arpeggio
func CreateWinSound(rate beep.SampleRate, volume float64) beep.Streamer {
	note := parameter.WinSoundDuration / 3
	freqs := []float64{523.25, 659.25, 783.99} // C5 E5 G5

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		osc := NewOscillator(f, note, WaveSine, rate)
		notes[i] = NewEnvelope(osc, note, 10*time.Millisecond, note/2, rate)
	}
	return newVolume(beep.Seq(notes...), volume)
}

// GetSoundEffect returns the effect streamer for t, or nil
func GetSoundEffect(t SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch t {
	case SoundSplash:
		return CreateSplashSound(rate, volume)
	case SoundSpikes:
		return CreateSpikeSound(rate, volume)
	case SoundScore:
		return CreateScoreSound(rate, volume)
	case SoundWin:
		return CreateWinSound(rate, volume)
	default:
		return nil
	}
}
