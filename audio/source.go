package audio

import (
	"errors"
	"math"
)

// ErrInputUnavailable means no capture device could be opened or permission was denied
var ErrInputUnavailable = errors.New("audio input unavailable")

// Source fills buf with the newest mono samples in [-1, 1] and returns how many it wrote.
// A source is read once per sampling tick
type Source interface {
	Read(buf []float32) (int, error)
}

// ConstantSource produces an alternating ±Amplitude signal whose RMS equals Amplitude
type ConstantSource struct {
	Amplitude float32
}

func (s *ConstantSource) Read(buf []float32) (int, error) {
	for i := range buf {
		if i%2 == 0 {
			buf[i] = s.Amplitude
		} else {
			buf[i] = -s.Amplitude
		}
	}
	return len(buf), nil
}

// AmplitudeForScore inverts the loudness mapping, ignoring epsilon and clamping
func AmplitudeForScore(score, dbOffset float64) float32 {
	if score <= 0 {
		return 0
	}
	return float32(math.Pow(10, (score-dbOffset)/20))
}
