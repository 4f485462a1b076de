package tone

// emotionMarkers maps a dominant emotion to its bracketed subtitle marker.
var emotionMarkers = map[string]string{
	EmotionJoy:      "[ton enjoué]",
	EmotionAnger:    "[ton irrité]",
	EmotionSadness:  "[ton mélancolique]",
	EmotionSurprise: "[ton surpris]",
	EmotionFear:     "[ton angoissé]",
}

// Markers derives the bracketed tone markers surfaced alongside reports:
// one for the dominant emotion when it is not neutral, one per detected
// speech pattern, and one for informal register.
func Markers(p Profile) []string {
	var markers []string
	if marker, ok := emotionMarkers[p.Emotion]; ok {
		markers = append(markers, marker)
	}
	if p.HasPattern(PatternQuestion) {
		markers = append(markers, "[interrogatif]")
	}
	if p.HasPattern(PatternExclamation) {
		markers = append(markers, "[exclamatif]")
	}
	if p.HasPattern(PatternHesitation) {
		markers = append(markers, "[hésitant]")
	}
	if p.Formality == FormalityInformal {
		markers = append(markers, "[informel]")
	}
	return markers
}
