package recognizer

import (
	"context"

	"subcue/internal/audioqc"
)

// Mock is a canned Recognizer for tests and dry runs.
type Mock struct {
	Result Result
	Err    error
	Calls  int
}

// Recognize returns the canned result or error.
func (m *Mock) Recognize(ctx context.Context, _ audioqc.Waveform) (Result, error) {
	m.Calls++
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if m.Err != nil {
		return Result{}, m.Err
	}
	return m.Result, nil
}
