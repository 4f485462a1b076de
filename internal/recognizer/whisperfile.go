package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"subcue/internal/audioqc"
	"subcue/internal/services"
	"subcue/internal/transcript"
)

// whisperSegment mirrors one entry of a whisper-style JSON transcript.
// Timestamps are in seconds; confidence is optional.
type whisperSegment struct {
	Text       string   `json:"text"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence"`
}

type whisperPayload struct {
	Language string           `json:"language"`
	Segments []whisperSegment `json:"segments"`
}

// FileAdapter reads a whisper-style JSON transcript that the recognition
// engine wrote next to the audio. It satisfies Recognizer without running
// any engine itself.
type FileAdapter struct {
	Path string
}

// NewFileAdapter returns an adapter reading the given JSON transcript file.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{Path: path}
}

// Recognize loads the transcript file and converts its segments to
// fragments. The waveform is unused; the engine already consumed the audio.
func (f *FileAdapter) Recognize(ctx context.Context, _ audioqc.Waveform) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrInput, "recognizer", "load transcript",
			fmt.Sprintf("read transcript file %s", f.Path), err)
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{}, services.Wrap(services.ErrFormat, "recognizer", "load transcript",
			fmt.Sprintf("parse transcript file %s", f.Path), err)
	}

	fragments := make([]transcript.Fragment, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		fragment := transcript.Fragment{
			Text:       strings.TrimSpace(seg.Text),
			StartMS:    int64(seg.Start * 1000),
			EndMS:      int64(seg.End * 1000),
			Confidence: transcript.ConfidenceUnknown,
		}
		if seg.Confidence != nil {
			fragment.Confidence = *seg.Confidence
		}
		fragments = append(fragments, fragment)
	}
	return Result{Fragments: fragments, LanguageCode: strings.TrimSpace(payload.Language)}, nil
}
