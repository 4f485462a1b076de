package main

import (
	"fmt"
	"strings"
	"time"

	"subcue/internal/report"
)

// reportRows flattens a report into label/value pairs for display.
func reportRows(r report.Report) [][]string {
	quality := "unknown"
	if r.QualityKnown {
		quality = fmt.Sprintf("%.1f / 10 (%.0f%% silence)", r.Quality.Score, r.Quality.SilencePct)
	}
	language := r.LanguageName
	if r.LanguageCode != "" {
		language = fmt.Sprintf("%s (%s)", r.LanguageName, r.LanguageCode)
	}

	rows := [][]string{
		{"Duration", formatDuration(r.DurationMS)},
		{"Words", fmt.Sprintf("%d", r.WordCount)},
		{"Cues", fmt.Sprintf("%d (avg %s)", r.CueCount, formatDuration(r.AvgCueDurationMS))},
		{"Language", language},
		{"Speech rate", fmt.Sprintf("%s (%.0f wpm)", r.Tone.SpeechRateClass, r.Tone.SpeechRateWPM)},
		{"Emotion", r.Tone.Emotion},
		{"Formality", r.Tone.Formality},
		{"Audio quality", quality},
	}
	if len(r.ToneMarkers) > 0 {
		rows = append(rows, []string{"Tone markers", strings.Join(r.ToneMarkers, " ")})
	}
	return rows
}

func renderReport(r report.Report, table bool) string {
	rows := reportRows(r)
	if table {
		return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDuration(ms int64) string {
	return time.Duration(ms * int64(time.Millisecond)).Truncate(time.Millisecond).String()
}
