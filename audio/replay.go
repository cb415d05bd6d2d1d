package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/wav"
)

// ReplaySource plays a decoded WAV file back as if it were live input.
// Each Read returns the window at the cursor and advances one tick of audio; it loops at the end
type ReplaySource struct {
	samples    []float32
	pos        int
	step       int
	sampleRate int
}

// OpenReplay decodes path and paces reads at ticksPerSecond
func OpenReplay(path string, ticksPerSecond int) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	defer f.Close()

	return NewReplay(f, ticksPerSecond)
}

// NewReplay decodes a WAV stream fully into memory as mono samples
func NewReplay(r io.Reader, ticksPerSecond int) (*ReplaySource, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var samples []float32
	chunk := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(chunk)
		for i := 0; i < n; i++ {
			// Downmix to mono
			samples = append(samples, float32((chunk[i][0]+chunk[i][1])/2))
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("stream wav: %w", err)
	}
	if len(samples) == 0 {
		return nil, errors.New("replay file has no samples")
	}

	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	step := int(format.SampleRate) / ticksPerSecond
	if step < 1 {
		step = 1
	}

	return &ReplaySource{
		samples:    samples,
		step:       step,
		sampleRate: int(format.SampleRate),
	}, nil
}

func (r *ReplaySource) Read(buf []float32) (int, error) {
	n := len(r.samples)
	for i := range buf {
		buf[i] = r.samples[(r.pos+i)%n]
	}
	r.pos = (r.pos + r.step) % n
	return len(buf), nil
}

// Len is the number of decoded mono frames
func (r *ReplaySource) Len() int { return len(r.samples) }

func (r *ReplaySource) SampleRate() int { return r.sampleRate }
