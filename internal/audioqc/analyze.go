package audioqc

import (
	"math"

	"subcue/internal/config"
	"subcue/internal/services"
)

// Metrics summarizes the acoustic quality of a waveform.
type Metrics struct {
	RMS              float64 `json:"rms"`
	ZeroCrossingRate float64 `json:"zero_crossing_rate"`
	SilencePct       float64 `json:"silence_pct"`
	Score            float64 `json:"score"`
}

// Analyzer computes frame-level audio metrics and a 0-10 quality score.
type Analyzer struct {
	frameMS          int
	silenceThreshold float64
	energyWeight     float64
	zcrLow           float64
	zcrHigh          float64
}

// NewAnalyzer builds an Analyzer from the quality configuration section.
func NewAnalyzer(cfg config.Quality) *Analyzer {
	return &Analyzer{
		frameMS:          cfg.FrameMS,
		silenceThreshold: cfg.SilenceRMSThreshold,
		energyWeight:     cfg.EnergyWeight,
		zcrLow:           cfg.ZCRLow,
		zcrHigh:          cfg.ZCRHigh,
	}
}

// Analyze mixes the waveform down to mono, slices it into fixed frames, and
// aggregates per-frame RMS and zero-crossing rate into Metrics. An empty
// waveform or one with no finite samples fails with a quality error; callers
// are expected to absorb it and mark the quality as unknown.
func (a *Analyzer) Analyze(w Waveform) (Metrics, error) {
	if w.SampleRate <= 0 {
		return Metrics{}, services.Wrap(services.ErrQuality, "audioqc", "analyze", "waveform has no sample rate", nil)
	}
	samples, err := w.mono()
	if err != nil {
		return Metrics{}, err
	}

	frameLen := w.SampleRate * a.frameMS / 1000
	if frameLen < 1 {
		frameLen = 1
	}

	var (
		sumSquares  float64
		zcrSum      float64
		frameCount  int
		silentCount int
	)
	for offset := 0; offset < len(samples); offset += frameLen {
		end := offset + frameLen
		if end > len(samples) {
			end = len(samples)
		}
		frame := samples[offset:end]
		rms := frameRMS(frame)
		sumSquares += rms * rms * float64(len(frame))
		zcrSum += frameZCR(frame)
		frameCount++
		if rms < a.silenceThreshold {
			silentCount++
		}
	}

	m := Metrics{
		RMS:              math.Sqrt(sumSquares / float64(len(samples))),
		ZeroCrossingRate: zcrSum / float64(frameCount),
		SilencePct:       float64(silentCount) / float64(frameCount) * 100.0,
	}
	m.Score = a.score(m)
	return m, nil
}

// score combines energy, silence, and spectral plausibility into a 0-10
// value. Energy contributes up to 5 points, low silence up to 5 points, and
// a zero-crossing rate outside the natural speech band costs 2 points.
func (a *Analyzer) score(m Metrics) float64 {
	energy := math.Min(m.RMS*a.energyWeight, 5.0)
	quiet := math.Max(5.0-m.SilencePct/20.0, 0.0)
	penalty := 0.0
	if m.ZeroCrossingRate < a.zcrLow || m.ZeroCrossingRate > a.zcrHigh {
		penalty = 2.0
	}
	score := energy + quiet - penalty
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func frameRMS(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}

func frameZCR(frame []float64) float64 {
	if len(frame) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0) != (frame[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame)-1)
}
