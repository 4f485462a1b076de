package transcript

import "strings"

// ConfidenceUnknown marks a fragment whose recognizer did not report a
// confidence value.
const ConfidenceUnknown = -1.0

// Fragment is a raw timed text fragment as delivered by a speech recognizer.
type Fragment struct {
	Text       string  `json:"text"`
	StartMS    int64   `json:"start_ms"`
	EndMS      int64   `json:"end_ms"`
	Confidence float64 `json:"confidence"`
}

// Utterance is a validated fragment of recognized speech. Utterances are
// immutable once produced by Normalize.
type Utterance struct {
	Text       string
	StartMS    int64
	EndMS      int64
	Confidence float64
}

// DurationMS returns the utterance's span in milliseconds.
func (u Utterance) DurationMS() int64 {
	return u.EndMS - u.StartMS
}

// WordCount returns the number of whitespace-separated words.
func (u Utterance) WordCount() int {
	return len(strings.Fields(u.Text))
}

// TotalDurationMS returns the span from the first utterance's start to the
// last utterance's end.
func TotalDurationMS(utterances []Utterance) int64 {
	if len(utterances) == 0 {
		return 0
	}
	return utterances[len(utterances)-1].EndMS - utterances[0].StartMS
}

// TotalWordCount sums the word counts of all utterances.
func TotalWordCount(utterances []Utterance) int {
	total := 0
	for _, u := range utterances {
		total += u.WordCount()
	}
	return total
}

// JoinText concatenates utterance text with single spaces, preserving order.
func JoinText(utterances []Utterance) string {
	parts := make([]string, 0, len(utterances))
	for _, u := range utterances {
		if u.Text != "" {
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}
