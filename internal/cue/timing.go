package cue

import (
	"math"

	"subcue/internal/config"
)

// Adjuster finalizes cue timestamps: punctuation-aware padding, duration
// bounds, and overlap-safe caps against the following cue.
type Adjuster struct {
	PunctuationPadMS int64
	MinCueGapMS      int64
	MinCueDurationMS int64
	MaxCueDurationMS int64

	tighter *Segmenter
}

// NewAdjuster builds an adjuster from timing configuration. The segment
// configuration seeds the tighter-budget segmenter used to split cues whose
// natural span exceeds the maximum duration.
func NewAdjuster(timing config.Timing, segment config.Segment) *Adjuster {
	tightWidth := segment.MaxLineWidth / 2
	if tightWidth < 10 {
		tightWidth = 10
	}
	return &Adjuster{
		PunctuationPadMS: int64(timing.PunctuationPadMS),
		MinCueGapMS:      int64(timing.MinCueGapMS),
		MinCueDurationMS: int64(timing.MinCueDurationMS),
		MaxCueDurationMS: int64(timing.MaxCueDurationMS),
		tighter: &Segmenter{
			PauseThresholdMS: int64(segment.PauseThresholdMS),
			MaxLineWidth:     tightWidth,
			MaxLines:         segment.MaxLines,
		},
	}
}

// Adjust applies the timing rules in order: over-long cues are re-segmented
// under a tighter character budget, then ends are padded after strong
// terminators and stretched to the minimum display duration, always capped
// so the next cue's start minus the minimum gap is never crossed. The
// result keeps timestamps strictly increasing and non-overlapping.
func (a *Adjuster) Adjust(cues []Cue) []Cue {
	adjusted := a.splitOverlong(cues)

	for i := range adjusted {
		c := &adjusted[i]
		var limit int64 = math.MaxInt64
		if i+1 < len(adjusted) {
			limit = adjusted[i+1].StartMS - a.MinCueGapMS
		}
		if EndsWithStrongTerminator(c.Text()) {
			c.EndMS = extendCapped(c.EndMS, c.EndMS+a.PunctuationPadMS, limit)
		}
		if c.DurationMS() < a.MinCueDurationMS {
			c.EndMS = extendCapped(c.EndMS, c.StartMS+a.MinCueDurationMS, limit)
		}
	}

	for i := range adjusted {
		adjusted[i].Index = i + 1
	}
	return adjusted
}

// splitOverlong sends cues whose natural span exceeds the maximum duration
// back through segmentation with a halved character budget. A cue that
// cannot be split (single short utterance, or no utterance backing) keeps
// its natural span rather than being truncated.
func (a *Adjuster) splitOverlong(cues []Cue) []Cue {
	expanded := make([]Cue, 0, len(cues))
	for _, c := range cues {
		if c.DurationMS() <= a.MaxCueDurationMS || len(c.utterances) == 0 {
			expanded = append(expanded, c)
			continue
		}
		sub := a.tighter.Segment(c.utterances)
		if len(sub) <= 1 {
			expanded = append(expanded, c)
			continue
		}
		expanded = append(expanded, sub...)
	}
	return expanded
}

func extendCapped(current, desired, limit int64) int64 {
	if desired > limit {
		desired = limit
	}
	if desired < current {
		return current
	}
	return desired
}
