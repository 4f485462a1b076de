package tone

import (
	"strings"

	"subcue/internal/config"
	"subcue/internal/transcript"
)

// Emotion labels recognized by the analyzer.
const (
	EmotionNeutral  = "neutral"
	EmotionJoy      = "joy"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
)

// Speech-rate classes in increasing order of pace.
const (
	RateSlow     = "slow"
	RateModerate = "moderate"
	RateFast     = "fast"
	RateVeryFast = "very_fast"
)

// Formality levels.
const (
	FormalityFormal   = "formal"
	FormalityInformal = "informal"
)

// Speech-pattern flags.
const (
	PatternQuestion    = "question"
	PatternExclamation = "exclamation"
	PatternHesitation  = "hesitation"
)

// Profile is the result of tone analysis over a full transcript.
type Profile struct {
	Emotion         string   `json:"emotion"`
	SpeechRateWPM   float64  `json:"speech_rate_wpm"`
	SpeechRateClass string   `json:"speech_rate_class"`
	Formality       string   `json:"formality"`
	Patterns        []string `json:"patterns,omitempty"`
	AvgPauseMS      float64  `json:"avg_pause_ms"`
	MaxPauseMS      int64    `json:"max_pause_ms"`
	PauseFrequency  float64  `json:"pause_frequency"`
}

// HasPattern reports whether the profile carries the given pattern flag.
func (p Profile) HasPattern(name string) bool {
	for _, pattern := range p.Patterns {
		if pattern == name {
			return true
		}
	}
	return false
}

// Analyzer derives a tone Profile from normalized utterances. Analysis is
// pure keyword and timing arithmetic, so identical input always yields an
// identical Profile.
type Analyzer struct {
	lexicon              Lexicon
	hesitationMinFillers int
	rateSlowWPM          float64
	rateModerateWPM      float64
	rateFastWPM          float64
}

// NewAnalyzer builds an Analyzer from the tone configuration section and a
// lexicon (see LoadLexicon).
func NewAnalyzer(cfg config.Tone, lexicon Lexicon) *Analyzer {
	return &Analyzer{
		lexicon:              lexicon,
		hesitationMinFillers: cfg.HesitationMinFillers,
		rateSlowWPM:          cfg.RateSlowWPM,
		rateModerateWPM:      cfg.RateModerateWPM,
		rateFastWPM:          cfg.RateFastWPM,
	}
}

// Analyze produces the tone profile for the utterance sequence. Empty input
// yields a neutral profile with zeroed metrics.
func (a *Analyzer) Analyze(utterances []transcript.Utterance) Profile {
	text := transcript.JoinText(utterances)
	tokens := tokenize(text)

	profile := Profile{
		Emotion:         a.classifyEmotion(tokens),
		Formality:       a.classifyFormality(tokens),
		SpeechRateClass: RateSlow,
	}

	words := transcript.TotalWordCount(utterances)
	if duration := transcript.TotalDurationMS(utterances); duration > 0 {
		profile.SpeechRateWPM = float64(words) / (float64(duration) / 60000.0)
	}
	profile.SpeechRateClass = a.classifyRate(profile.SpeechRateWPM)
	profile.Patterns = a.detectPatterns(text, tokens)

	pauses := interUtterancePauses(utterances)
	if len(pauses) > 0 {
		var sum int64
		for _, p := range pauses {
			sum += p
			if p > profile.MaxPauseMS {
				profile.MaxPauseMS = p
			}
		}
		profile.AvgPauseMS = float64(sum) / float64(len(pauses))
	}
	if len(utterances) > 0 {
		profile.PauseFrequency = float64(len(pauses)) / float64(len(utterances))
	}
	return profile
}

func (a *Analyzer) classifyEmotion(tokens []string) string {
	counts := make(map[string]int, len(a.lexicon.Emotions))
	for emotion, words := range a.lexicon.Emotions {
		counts[emotion] = countMatches(tokens, words)
	}
	best := EmotionNeutral
	bestCount := 0
	for emotion, count := range counts {
		if count == 0 {
			continue
		}
		if count > bestCount || (count == bestCount && emotionPriority[emotion] > emotionPriority[best]) {
			best = emotion
			bestCount = count
		}
	}
	return best
}

func (a *Analyzer) classifyFormality(tokens []string) string {
	formal := countMatches(tokens, a.lexicon.Formal)
	informal := countMatches(tokens, a.lexicon.Informal)
	if formal-informal >= 0 {
		return FormalityFormal
	}
	return FormalityInformal
}

func (a *Analyzer) classifyRate(wpm float64) string {
	switch {
	case wpm < a.rateSlowWPM:
		return RateSlow
	case wpm < a.rateModerateWPM:
		return RateModerate
	case wpm < a.rateFastWPM:
		return RateFast
	default:
		return RateVeryFast
	}
}

func (a *Analyzer) detectPatterns(text string, tokens []string) []string {
	var patterns []string
	if strings.Contains(text, "?") {
		patterns = append(patterns, PatternQuestion)
	}
	if strings.Contains(text, "!") {
		patterns = append(patterns, PatternExclamation)
	}
	if countMatches(tokens, a.lexicon.Fillers) >= a.hesitationMinFillers {
		patterns = append(patterns, PatternHesitation)
	}
	return patterns
}

func interUtterancePauses(utterances []transcript.Utterance) []int64 {
	var pauses []int64
	for i := 1; i < len(utterances); i++ {
		if gap := utterances[i].StartMS - utterances[i-1].EndMS; gap > 0 {
			pauses = append(pauses, gap)
		}
	}
	return pauses
}

func countMatches(tokens []string, words []string) int {
	if len(words) == 0 || len(tokens) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	count := 0
	for _, token := range tokens {
		if _, ok := set[token]; ok {
			count++
		}
	}
	return count
}

// tokenize lowercases the text and strips surrounding punctuation from each
// whitespace-separated token. Apostrophes inside a token survive so that
// contractions stay matchable.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,!?;:…\"«»()-")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
