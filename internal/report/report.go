package report

import (
	"unicode/utf8"

	"subcue/internal/audioqc"
	"subcue/internal/cue"
	"subcue/internal/tone"
	"subcue/internal/transcript"
)

// Report is the per-file summary delivered to the caller. It is built once
// per processed input and never persisted.
type Report struct {
	DurationMS       int64           `json:"duration_ms"`
	WordCount        int             `json:"word_count"`
	CharCount        int             `json:"char_count"`
	CueCount         int             `json:"cue_count"`
	AvgCueDurationMS int64           `json:"avg_cue_duration_ms"`
	LanguageCode     string          `json:"language_code"`
	LanguageName     string          `json:"language_name"`
	Tone             tone.Profile    `json:"tone"`
	Quality          audioqc.Metrics `json:"quality"`
	QualityKnown     bool            `json:"quality_known"`
	ToneMarkers      []string        `json:"tone_markers,omitempty"`
}

// Input carries everything Build needs. Build reads it without mutation.
type Input struct {
	LanguageCode string
	Utterances   []transcript.Utterance
	Cues         []cue.Cue
	Tone         tone.Profile
	Quality      audioqc.Metrics
	QualityKnown bool
}

// Build combines pipeline outputs into a Report. Pure; performs no I/O.
func Build(in Input) Report {
	r := Report{
		DurationMS:   transcript.TotalDurationMS(in.Utterances),
		WordCount:    transcript.TotalWordCount(in.Utterances),
		CueCount:     len(in.Cues),
		LanguageCode: in.LanguageCode,
		LanguageName: DisplayName(in.LanguageCode),
		Tone:         in.Tone,
		Quality:      in.Quality,
		QualityKnown: in.QualityKnown,
		ToneMarkers:  tone.Markers(in.Tone),
	}
	for _, u := range in.Utterances {
		r.CharCount += utf8.RuneCountInString(u.Text)
	}
	if len(in.Cues) > 0 {
		var total int64
		for _, c := range in.Cues {
			total += c.DurationMS()
		}
		r.AvgCueDurationMS = total / int64(len(in.Cues))
	}
	return r
}
