package audioqc

import (
	"math"

	"subcue/internal/services"
)

// Waveform holds decoded PCM audio. Samples are interleaved when Channels > 1
// and are expected in the [-1, 1] range.
type Waveform struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// DurationMS reports the waveform duration in milliseconds.
func (w Waveform) DurationMS() int64 {
	if w.SampleRate <= 0 || w.Channels <= 0 {
		return 0
	}
	frames := len(w.Samples) / w.Channels
	return int64(float64(frames) / float64(w.SampleRate) * 1000.0)
}

// mono mixes interleaved samples down to a single channel by averaging.
// NaN samples are dropped so a few corrupt values do not poison the metrics.
func (w Waveform) mono() ([]float64, error) {
	if len(w.Samples) == 0 {
		return nil, services.Wrap(services.ErrQuality, "audioqc", "mixdown", "waveform has no samples", nil)
	}
	channels := w.Channels
	if channels < 1 {
		channels = 1
	}
	frames := len(w.Samples) / channels
	out := make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		valid := 0
		for c := 0; c < channels; c++ {
			s := w.Samples[i*channels+c]
			if math.IsNaN(s) || math.IsInf(s, 0) {
				continue
			}
			sum += s
			valid++
		}
		if valid == 0 {
			continue
		}
		out = append(out, sum/float64(valid))
	}
	if len(out) == 0 {
		return nil, services.Wrap(services.ErrQuality, "audioqc", "mixdown", "waveform contains no finite samples", nil)
	}
	return out, nil
}
