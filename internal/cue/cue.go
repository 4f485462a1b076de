package cue

import (
	"strings"

	"subcue/internal/transcript"
)

// Cue is one subtitle display cue: a 1-based index, a time span, and at most
// two display lines. Cues in a sequence are strictly time-ordered and
// non-overlapping.
type Cue struct {
	Index   int
	StartMS int64
	EndMS   int64
	Lines   []string

	// utterances backing this cue, kept for timing re-segmentation.
	// Parsed cues have none.
	utterances []transcript.Utterance
}

// Text returns the cue's display text as a single line.
func (c Cue) Text() string {
	return strings.Join(c.Lines, " ")
}

// DurationMS returns the cue's display duration.
func (c Cue) DurationMS() int64 {
	return c.EndMS - c.StartMS
}

// Equal compares the renderable parts of two cues: index, timestamps, and
// lines. Backing utterances are ignored so parsed cues compare equal to the
// cues they were rendered from.
func (c Cue) Equal(other Cue) bool {
	if c.Index != other.Index || c.StartMS != other.StartMS || c.EndMS != other.EndMS {
		return false
	}
	if len(c.Lines) != len(other.Lines) {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i] != other.Lines[i] {
			return false
		}
	}
	return true
}

// New constructs a cue from renderable parts. Used by parsers and tests;
// the segmenter builds cues with utterance backing instead.
func New(index int, startMS, endMS int64, lines []string) Cue {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Cue{Index: index, StartMS: startMS, EndMS: endMS, Lines: copied}
}
