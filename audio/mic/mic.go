// Package mic captures the default input device with PortAudio
package mic

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/audio"
)

// Mic keeps the most recent capture buffer for the sampler to read
type Mic struct {
	mu     sync.Mutex
	latest []float32
	filled int

	stream    *portaudio.Stream
	closeOnce sync.Once
	log       zerolog.Logger
}

func newMic(bufferSize int, log zerolog.Logger) *Mic {
	return &Mic{
		latest: make([]float32, bufferSize),
		log:    log.With().Str("component", "mic").Logger(),
	}
}

// Open starts capture on the default input device.
// Every failure wraps audio.ErrInputUnavailable
func Open(bufferSize int, sampleRate float64, log zerolog.Logger) (*Mic, error) {
	m := newMic(bufferSize, log)

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: portaudio init: %v", audio.ErrInputUnavailable, err)
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, bufferSize, m.capture)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: open input: %v", audio.ErrInputUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: start input: %v", audio.ErrInputUnavailable, err)
	}

	m.stream = stream
	m.log.Info().Int("buffer", bufferSize).Float64("rate", sampleRate).Msg("capture started")
	return m, nil
}

// capture runs on the PortAudio thread
func (m *Mic) capture(in []float32) {
	m.mu.Lock()
	m.filled = copy(m.latest, in)
	m.mu.Unlock()
}

// Read copies the latest capture buffer into buf
func (m *Mic) Read(buf []float32) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copy(buf, m.latest[:m.filled]), nil
}

// Run blocks until ctx ends and then stops capture
func (m *Mic) Run(ctx context.Context) error {
	<-ctx.Done()
	return m.Close()
}

// Close stops the stream and releases PortAudio; safe to call more than once
func (m *Mic) Close() error {
	var err error
	m.closeOnce.Do(func() {
		if m.stream == nil {
			return
		}
		if e := m.stream.Stop(); e != nil {
			err = fmt.Errorf("stop input: %w", e)
		}
		if e := m.stream.Close(); e != nil && err == nil {
			err = fmt.Errorf("close input: %w", e)
		}
		portaudio.Terminate()
		m.log.Info().Msg("capture stopped")
	})
	return err
}
