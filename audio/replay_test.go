package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// writeSquareWAV encodes a square wave of the given peak amplitude
func writeSquareWAV(t *testing.T, amplitude float64, d time.Duration) string {
	t.Helper()
	rate := beep.SampleRate(8000)
	path := filepath.Join(t.TempDir(), "input.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	osc := newVolume(NewOscillator(200, d, WaveSquare, rate), amplitude)
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, osc, format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestReplayLoudness(t *testing.T) {
	cfg := testAudioConfig()
	path := writeSquareWAV(t, 0.5, 500*time.Millisecond)

	src, err := OpenReplay(path, 60)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	if src.SampleRate() != 8000 {
		t.Errorf("expected sample rate 8000, got %d", src.SampleRate())
	}
	if src.Len() != 4000 {
		t.Errorf("expected 4000 frames, got %d", src.Len())
	}

	want := 20*math.Log10(0.5) + cfg.DBOffset
	buf := make([]float32, 400)
	for i := 0; i < 5; i++ {
		n, err := src.Read(buf)
		if err != nil || n != len(buf) {
			t.Fatalf("Read: n=%d err=%v", n, err)
		}
		got := Loudness(buf, cfg.DBOffset, cfg.Epsilon)
		if math.Abs(got-want) > 0.1 {
			t.Errorf("read %d: expected ~%.2f, got %.2f", i, want, got)
		}
	}
}

func TestReplayLoops(t *testing.T) {
	path := writeSquareWAV(t, 0.25, 50*time.Millisecond)

	src, err := OpenReplay(path, 60)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}

	// Far more ticks than the file holds must keep producing full buffers
	buf := make([]float32, 128)
	for i := 0; i < 200; i++ {
		if n, err := src.Read(buf); err != nil || n != len(buf) {
			t.Fatalf("tick %d: n=%d err=%v", i, n, err)
		}
	}
}

func TestReplayMissingFile(t *testing.T) {
	if _, err := OpenReplay(filepath.Join(t.TempDir(), "nope.wav"), 60); err == nil {
		t.Error("expected error for missing file")
	}
}
