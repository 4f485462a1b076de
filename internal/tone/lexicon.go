package tone

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"subcue/internal/services"
)

// Lexicon holds the keyword lists driving tone analysis. All matching is
// case-insensitive on whole tokens.
type Lexicon struct {
	Emotions map[string][]string `yaml:"emotions"`
	Formal   []string            `yaml:"formal"`
	Informal []string            `yaml:"informal"`
	Fillers  []string            `yaml:"fillers"`
}

// emotionPriority breaks ties between emotions with equal keyword counts.
// Higher values win; neutral never wins a tie against a matched emotion.
var emotionPriority = map[string]int{
	EmotionJoy:      5,
	EmotionSadness:  4,
	EmotionAnger:    3,
	EmotionFear:     2,
	EmotionSurprise: 1,
	EmotionNeutral:  0,
}

// DefaultLexicon returns the built-in French lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Emotions: map[string][]string{
			EmotionJoy: {
				"heureux", "heureuse", "content", "contente", "joie",
				"super", "génial", "formidable", "merveilleux", "rire",
			},
			EmotionSadness: {
				"triste", "tristesse", "malheureux", "malheureuse",
				"pleurer", "chagrin", "peine", "déprimé",
			},
			EmotionAnger: {
				"colère", "furieux", "furieuse", "énervé", "énervée",
				"rage", "agacé", "insupportable",
			},
			EmotionFear: {
				"peur", "effrayé", "effrayée", "angoissé", "angoissée",
				"terrifié", "inquiet", "inquiète", "crainte",
			},
			EmotionSurprise: {
				"surprise", "surpris", "étonné", "étonnée", "incroyable",
				"stupéfait", "inattendu", "choqué",
			},
		},
		Formal:   []string{"vous", "monsieur", "madame", "cher", "chère"},
		Informal: []string{"tu", "ton", "ta", "tes", "mec", "meuf", "fréro", "t'as", "t'es", "y'a", "j'suis"},
		Fillers:  []string{"euh", "hum", "ben", "donc", "alors", "voilà", "enfin"},
	}
}

// LoadLexicon reads a YAML lexicon file and merges it over the built-in
// defaults. Lists present in the file replace the corresponding default list;
// absent lists keep their defaults. An empty path returns the defaults.
func LoadLexicon(path string) (Lexicon, error) {
	base := DefaultLexicon()
	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, services.Wrap(services.ErrConfiguration, "tone", "load lexicon",
			fmt.Sprintf("read lexicon file %s", path), err)
	}
	var overlay Lexicon
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Lexicon{}, services.Wrap(services.ErrConfiguration, "tone", "load lexicon",
			fmt.Sprintf("parse lexicon file %s", path), err)
	}
	return base.merge(overlay), nil
}

func (l Lexicon) merge(overlay Lexicon) Lexicon {
	out := l
	if len(overlay.Emotions) > 0 {
		merged := make(map[string][]string, len(l.Emotions))
		for emotion, words := range l.Emotions {
			merged[emotion] = words
		}
		for emotion, words := range overlay.Emotions {
			if _, known := emotionPriority[emotion]; !known {
				continue
			}
			merged[emotion] = words
		}
		out.Emotions = merged
	}
	if len(overlay.Formal) > 0 {
		out.Formal = overlay.Formal
	}
	if len(overlay.Informal) > 0 {
		out.Informal = overlay.Informal
	}
	if len(overlay.Fillers) > 0 {
		out.Fillers = overlay.Fillers
	}
	return out
}
