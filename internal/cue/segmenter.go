package cue

import (
	"subcue/internal/config"
	"subcue/internal/transcript"
)

// Segmenter groups utterances into subtitle cues using pause-duration and
// character-budget rules.
type Segmenter struct {
	PauseThresholdMS int64
	MaxLineWidth     int
	MaxLines         int
}

// NewSegmenter builds a segmenter from segment configuration.
func NewSegmenter(cfg config.Segment) *Segmenter {
	return &Segmenter{
		PauseThresholdMS: int64(cfg.PauseThresholdMS),
		MaxLineWidth:     cfg.MaxLineWidth,
		MaxLines:         cfg.MaxLines,
	}
}

// Segment walks the utterance sequence and produces ordered cues with raw
// timestamps taken from the first and last utterance of each group. A new
// cue starts when the silence gap reaches the pause threshold or when
// appending an utterance would overflow the line budget. Text that overflows
// the budget within a single group spills into a follow-on cue instead of
// being truncated.
func (s *Segmenter) Segment(utterances []transcript.Utterance) []Cue {
	if len(utterances) == 0 {
		return nil
	}

	var cues []Cue
	var buffer []transcript.Utterance

	for _, u := range utterances {
		if len(buffer) > 0 {
			gap := u.StartMS - buffer[len(buffer)-1].EndMS
			merged := transcript.JoinText(buffer) + " " + u.Text
			if gap >= s.PauseThresholdMS || !fitsBudget(merged, s.MaxLineWidth, s.MaxLines) {
				cues = s.flush(cues, buffer)
				buffer = nil
			}
		}
		buffer = append(buffer, u)
	}
	cues = s.flush(cues, buffer)

	for i := range cues {
		cues[i].Index = i + 1
	}
	return cues
}

// flush closes the buffered group into one or more cues. Appends are
// budget-checked, so overflow can only come from a single utterance whose
// text alone exceeds the budget; its surplus spills into follow-on cues
// with proportionally interpolated timing.
func (s *Segmenter) flush(cues []Cue, buffer []transcript.Utterance) []Cue {
	for len(buffer) > 0 {
		text := transcript.JoinText(buffer)
		lines, rest := packLines(text, s.MaxLineWidth, s.MaxLines)
		start := buffer[0].StartMS
		end := buffer[len(buffer)-1].EndMS

		if rest == "" {
			cues = append(cues, Cue{StartMS: start, EndMS: end, Lines: lines, utterances: buffer})
			return cues
		}

		spillStart := interpolateSplit(start, end, text, rest)
		if end <= spillStart {
			// A group narrower than 2ms has no interior split point; widen
			// the tail by a millisecond so both cues keep positive spans.
			end = spillStart + 1
		}
		consumed := transcript.Utterance{
			Text:       joinLines(lines),
			StartMS:    start,
			EndMS:      spillStart,
			Confidence: transcript.ConfidenceUnknown,
		}
		cues = append(cues, Cue{
			StartMS:    start,
			EndMS:      spillStart,
			Lines:      lines,
			utterances: []transcript.Utterance{consumed},
		})
		buffer = []transcript.Utterance{{
			Text:       rest,
			StartMS:    spillStart,
			EndMS:      end,
			Confidence: transcript.ConfidenceUnknown,
		}}
	}
	return cues
}

// interpolateSplit places the split point in time proportionally to the
// share of text consumed before it. The result always lands strictly after
// start and, for any span of at least 2ms, strictly before end.
func interpolateSplit(start, end int64, full, rest string) int64 {
	if end-start < 2 {
		return start + 1
	}
	total := displayWidth(full)
	remaining := displayWidth(rest)
	if total <= 0 || remaining >= total {
		return start + (end-start)/2
	}
	consumed := float64(total-remaining) / float64(total)
	split := start + int64(float64(end-start)*consumed)
	if split <= start {
		split = start + 1
	}
	if split >= end {
		split = end - 1
	}
	return split
}

func joinLines(lines []string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	default:
		joined := lines[0]
		for _, line := range lines[1:] {
			joined += " " + line
		}
		return joined
	}
}
