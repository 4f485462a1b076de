package recognizer

import (
	"context"

	"subcue/internal/audioqc"
	"subcue/internal/transcript"
)

// Result is what a recognition engine hands back: raw fragments plus the
// detected language.
type Result struct {
	Fragments    []transcript.Fragment
	LanguageCode string
}

// Recognizer models the external speech-recognition engine. Transcription
// itself happens outside this system; implementations only surface its
// output.
type Recognizer interface {
	Recognize(ctx context.Context, waveform audioqc.Waveform) (Result, error)
}
