package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the frame count and peak
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite sample at %d", total+j)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorSquareValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("expected 50 samples, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("sample %d: expected ±1, got %f", i, v)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("expected %d frames, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1 {
		t.Errorf("sine peak %f above 1", peak)
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewOscillator(0, 20*time.Millisecond, WaveNoise, rate).Stream(a)
	NewOscillator(0, 20*time.Millisecond, WaveNoise, rate).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise differs at %d", i)
		}
	}
}

func TestEnvelopeFadesIn(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack must start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain must be full scale, got %f", samples[50][0])
	}
	if math.Abs(samples[99][0]) > 0.11 {
		t.Errorf("release must end near silence, got %f", samples[99][0])
	}
}

func TestSoundEffectsBounded(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, st := range []SoundType{SoundSplash, SoundSpikes, SoundScore, SoundWin} {
		s := GetSoundEffect(st, rate, 0.8)
		if s == nil {
			t.Fatalf("sound %d: nil streamer", st)
		}
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("sound %d: empty", st)
		}
		if peak > 1.0+1e-9 {
			t.Errorf("sound %d: peak %f clips", st, peak)
		}
	}

	if GetSoundEffect(SoundType(99), rate, 1) != nil {
		t.Error("unknown sound must be nil")
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := CreateSpikeSound(rate, 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("zero volume must be silent, peak %f", peak)
	}
}
