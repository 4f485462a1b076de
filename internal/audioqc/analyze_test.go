package audioqc

import (
	"errors"
	"math"
	"testing"

	"subcue/internal/config"
	"subcue/internal/services"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(config.Default().Quality)
}

// sine produces a mono sine wave with the given amplitude and frequency.
func sine(amplitude, freqHz float64, sampleRate int, durationMS int) Waveform {
	count := sampleRate * durationMS / 1000
	samples := make([]float64, count)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate))
	}
	return Waveform{Samples: samples, SampleRate: sampleRate, Channels: 1}
}

func TestAnalyzeSilentWaveform(t *testing.T) {
	w := Waveform{Samples: make([]float64, 16000), SampleRate: 16000, Channels: 1}
	m, err := newTestAnalyzer().Analyze(w)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if m.SilencePct != 100 {
		t.Fatalf("expected 100%% silence, got %.2f", m.SilencePct)
	}
	if m.Score != 0 {
		t.Fatalf("expected score 0 for silent audio, got %.2f", m.Score)
	}
}

func TestAnalyzeSpeechBandSignal(t *testing.T) {
	// A 200 Hz tone at 16 kHz crosses zero at roughly 0.025 per sample,
	// inside the natural speech band, so no penalty applies.
	w := sine(0.5, 200, 16000, 1000)
	m, err := newTestAnalyzer().Analyze(w)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if m.SilencePct != 0 {
		t.Fatalf("expected no silent frames, got %.2f%%", m.SilencePct)
	}
	if m.Score < 8 {
		t.Fatalf("expected high score for loud in-band signal, got %.2f", m.Score)
	}
	if m.Score > 10 {
		t.Fatalf("score exceeds clamp: %.2f", m.Score)
	}
}

func TestAnalyzeHighZCRPenalty(t *testing.T) {
	// 4 kHz at a 16 kHz rate crosses zero every other sample, well above the
	// speech band, so the 2-point penalty applies.
	noisy := sine(0.5, 4000, 16000, 1000)
	clean := sine(0.5, 200, 16000, 1000)
	analyzer := newTestAnalyzer()
	noisyM, err := analyzer.Analyze(noisy)
	if err != nil {
		t.Fatalf("analyze noisy: %v", err)
	}
	cleanM, err := analyzer.Analyze(clean)
	if err != nil {
		t.Fatalf("analyze clean: %v", err)
	}
	if noisyM.ZeroCrossingRate <= 0.35 {
		t.Fatalf("expected ZCR above speech band, got %.3f", noisyM.ZeroCrossingRate)
	}
	if diff := cleanM.Score - noisyM.Score; math.Abs(diff-2.0) > 0.05 {
		t.Fatalf("expected 2-point ZCR penalty, got difference %.2f", diff)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	w := sine(0.3, 150, 16000, 500)
	analyzer := newTestAnalyzer()
	first, err := analyzer.Analyze(w)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, err := analyzer.Analyze(w)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if first != second {
		t.Fatalf("metrics differ across runs: %+v vs %+v", first, second)
	}
}

func TestAnalyzeEmptyWaveform(t *testing.T) {
	_, err := newTestAnalyzer().Analyze(Waveform{SampleRate: 16000, Channels: 1})
	if !errors.Is(err, services.ErrQuality) {
		t.Fatalf("expected quality error, got %v", err)
	}
	if !services.Recoverable(err) {
		t.Fatalf("quality errors must be recoverable")
	}
}

func TestAnalyzeAllNaNWaveform(t *testing.T) {
	samples := make([]float64, 1600)
	for i := range samples {
		samples[i] = math.NaN()
	}
	_, err := newTestAnalyzer().Analyze(Waveform{Samples: samples, SampleRate: 16000, Channels: 1})
	if !errors.Is(err, services.ErrQuality) {
		t.Fatalf("expected quality error, got %v", err)
	}
}

func TestMonoMixdownAverages(t *testing.T) {
	w := Waveform{
		Samples:    []float64{1, -1, 0.5, 0.5, 0, 1},
		SampleRate: 16000,
		Channels:   2,
	}
	samples, err := w.mono()
	if err != nil {
		t.Fatalf("mono: %v", err)
	}
	want := []float64{0, 0.5, 0.5}
	if len(samples) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(samples))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("frame %d: got %v want %v", i, samples[i], want[i])
		}
	}
}

func TestWaveformDurationMS(t *testing.T) {
	w := Waveform{Samples: make([]float64, 32000), SampleRate: 16000, Channels: 2}
	if got := w.DurationMS(); got != 1000 {
		t.Fatalf("expected 1000ms, got %d", got)
	}
}
