package transcript

import (
	"fmt"
	"sort"
	"strings"

	"subcue/internal/services"
)

// Normalize validates raw recognizer fragments and returns an ordered
// utterance sequence with monotonic timing. It is a pure transform.
//
// Fragments with empty text are dropped. Timestamps out of order are sorted
// by start time; if any overlap remains after sorting the transcript is
// unrecoverable and Normalize fails naming the offending range.
func Normalize(fragments []Fragment) ([]Utterance, error) {
	utterances := make([]Utterance, 0, len(fragments))
	for i, f := range fragments {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		if f.StartMS < 0 || f.EndMS <= f.StartMS {
			return nil, services.Wrap(services.ErrSegmentation, "transcript", "validate",
				fmt.Sprintf("fragment %d has invalid timing %d-%dms", i, f.StartMS, f.EndMS), nil)
		}
		confidence := f.Confidence
		if confidence < 0 || confidence > 1 {
			confidence = ConfidenceUnknown
		}
		utterances = append(utterances, Utterance{
			Text:       text,
			StartMS:    f.StartMS,
			EndMS:      f.EndMS,
			Confidence: confidence,
		})
	}

	if len(utterances) == 0 {
		return nil, services.Wrap(services.ErrInput, "transcript", "normalize", "empty transcript", nil)
	}

	if !sort.SliceIsSorted(utterances, func(i, j int) bool {
		return utterances[i].StartMS < utterances[j].StartMS
	}) {
		sort.SliceStable(utterances, func(i, j int) bool {
			return utterances[i].StartMS < utterances[j].StartMS
		})
	}

	for i := 1; i < len(utterances); i++ {
		prev, cur := utterances[i-1], utterances[i]
		if cur.StartMS < prev.EndMS {
			return nil, services.Wrap(services.ErrSegmentation, "transcript", "validate",
				fmt.Sprintf("fragments %d-%d overlap after sorting: %dms starts before %dms ends",
					i-1, i, cur.StartMS, prev.EndMS), nil)
		}
	}

	return utterances, nil
}
