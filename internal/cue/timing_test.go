package cue

import (
	"testing"

	"subcue/internal/config"
	"subcue/internal/transcript"
)

func defaultAdjuster() *Adjuster {
	cfg := config.Default()
	return NewAdjuster(cfg.Timing, cfg.Segment)
}

func TestAdjustPadsAfterStrongTerminator(t *testing.T) {
	cues := []Cue{
		New(1, 0, 1500, []string{"C'est fini !"}),
		New(2, 4000, 5500, []string{"On continue"}),
	}
	adjusted := defaultAdjuster().Adjust(cues)
	if adjusted[0].EndMS != 1800 {
		t.Fatalf("expected 300ms punctuation pad, got end %d", adjusted[0].EndMS)
	}
}

func TestAdjustPadIsCappedByNextCue(t *testing.T) {
	cues := []Cue{
		New(1, 0, 1500, []string{"C'est fini !"}),
		New(2, 1600, 3000, []string{"On continue"}),
	}
	adjusted := defaultAdjuster().Adjust(cues)
	// Full pad would reach 1800; the next cue starts at 1600 so the cap is
	// 1600 - 80 = 1520.
	if adjusted[0].EndMS != 1520 {
		t.Fatalf("expected capped end 1520, got %d", adjusted[0].EndMS)
	}
	if adjusted[0].EndMS > adjusted[1].StartMS {
		t.Fatalf("cues overlap after adjustment: %+v", adjusted)
	}
}

func TestAdjustNeverShrinksBelowRawEnd(t *testing.T) {
	// Raw gap is already below the minimum inter-cue gap; the cap must not
	// pull the end backwards.
	cues := []Cue{
		New(1, 0, 1550, []string{"Très serré !"}),
		New(2, 1600, 3000, []string{"suite"}),
	}
	adjusted := defaultAdjuster().Adjust(cues)
	if adjusted[0].EndMS != 1550 {
		t.Fatalf("expected raw end kept, got %d", adjusted[0].EndMS)
	}
}

func TestAdjustEnforcesMinimumDuration(t *testing.T) {
	cues := []Cue{
		New(1, 0, 400, []string{"court"}),
		New(2, 5000, 6500, []string{"suite"}),
	}
	adjusted := defaultAdjuster().Adjust(cues)
	if adjusted[0].DurationMS() != 1000 {
		t.Fatalf("expected minimum duration 1000ms, got %d", adjusted[0].DurationMS())
	}
}

func TestAdjustMinimumDurationCapped(t *testing.T) {
	cues := []Cue{
		New(1, 0, 400, []string{"court"}),
		New(2, 700, 2500, []string{"suite"}),
	}
	adjusted := defaultAdjuster().Adjust(cues)
	if adjusted[0].EndMS != 620 {
		t.Fatalf("expected end capped at 620 (700-80), got %d", adjusted[0].EndMS)
	}
}

func TestAdjustLastCueUncapped(t *testing.T) {
	cues := []Cue{New(1, 0, 300, []string{"Fin."})}
	adjusted := defaultAdjuster().Adjust(cues)
	// Pad to 600, then stretched to the 1000ms minimum.
	if adjusted[0].EndMS != 1000 {
		t.Fatalf("expected end 1000, got %d", adjusted[0].EndMS)
	}
}

func TestAdjustResegmentsOverlongCue(t *testing.T) {
	// Four contiguous utterances fit the normal character budget but span
	// 8s, beyond the 7s maximum; the tighter budget splits them.
	utterances := []transcript.Utterance{
		{Text: "aaaaa bbbbb", StartMS: 0, EndMS: 2000},
		{Text: "aaaaa bbbbb", StartMS: 2000, EndMS: 4000},
		{Text: "aaaaa bbbbb", StartMS: 4000, EndMS: 6000},
		{Text: "aaaaa bbbbb", StartMS: 6000, EndMS: 8000},
	}
	cues := defaultSegmenter().Segment(utterances)
	if len(cues) != 1 {
		t.Fatalf("setup: expected a single over-long cue, got %d", len(cues))
	}
	adjusted := defaultAdjuster().Adjust(cues)
	if len(adjusted) < 2 {
		t.Fatalf("expected over-long cue to split, got %+v", adjusted)
	}
	for i, c := range adjusted {
		if c.Index != i+1 {
			t.Fatalf("expected sequential renumbering, got %+v", adjusted)
		}
		if i > 0 && c.StartMS < adjusted[i-1].EndMS {
			t.Fatalf("cues overlap: %+v", adjusted)
		}
		if c.StartMS >= c.EndMS {
			t.Fatalf("cue %d has invalid span: %+v", i, c)
		}
	}
}

func TestAdjustKeepsUnsplittableOverlongCue(t *testing.T) {
	// A single short word spanning a long time cannot be split by budget;
	// the natural span is kept rather than truncated.
	utterances := []transcript.Utterance{{Text: "silence", StartMS: 0, EndMS: 9000}}
	cues := defaultSegmenter().Segment(utterances)
	adjusted := defaultAdjuster().Adjust(cues)
	if len(adjusted) != 1 || adjusted[0].EndMS != 9000 {
		t.Fatalf("expected natural span kept, got %+v", adjusted)
	}
}
