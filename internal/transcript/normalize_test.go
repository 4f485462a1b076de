package transcript

import (
	"errors"
	"strings"
	"testing"

	"subcue/internal/services"
)

func TestNormalizeKeepsOrderedFragments(t *testing.T) {
	fragments := []Fragment{
		{Text: "Bonjour tout le monde", StartMS: 0, EndMS: 1200, Confidence: 0.9},
		{Text: "comment allez vous", StartMS: 1200, EndMS: 2500, Confidence: 0.8},
	}
	utterances, err := Normalize(fragments)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(utterances))
	}
	if utterances[0].Text != "Bonjour tout le monde" || utterances[1].StartMS != 1200 {
		t.Fatalf("unexpected utterances: %+v", utterances)
	}
}

func TestNormalizeSortsOutOfOrderFragments(t *testing.T) {
	fragments := []Fragment{
		{Text: "second", StartMS: 2000, EndMS: 3000},
		{Text: "first", StartMS: 0, EndMS: 1000},
	}
	utterances, err := Normalize(fragments)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if utterances[0].Text != "first" || utterances[1].Text != "second" {
		t.Fatalf("expected sorted order, got %+v", utterances)
	}
}

func TestNormalizeRejectsResidualOverlap(t *testing.T) {
	fragments := []Fragment{
		{Text: "a", StartMS: 0, EndMS: 2000},
		{Text: "b", StartMS: 1000, EndMS: 3000},
	}
	_, err := Normalize(fragments)
	if !errors.Is(err, services.ErrSegmentation) {
		t.Fatalf("expected ErrSegmentation, got %v", err)
	}
	if !strings.Contains(err.Error(), "0-1") {
		t.Fatalf("expected offending index range in message, got %q", err.Error())
	}
}

func TestNormalizeRejectsInvalidFragmentTiming(t *testing.T) {
	_, err := Normalize([]Fragment{{Text: "x", StartMS: 500, EndMS: 500}})
	if !errors.Is(err, services.ErrSegmentation) {
		t.Fatalf("expected ErrSegmentation for zero-length fragment, got %v", err)
	}
}

func TestNormalizeRejectsEmptyTranscript(t *testing.T) {
	for _, fragments := range [][]Fragment{nil, {{Text: "   ", StartMS: 0, EndMS: 100}}} {
		_, err := Normalize(fragments)
		if !errors.Is(err, services.ErrInput) {
			t.Fatalf("expected ErrInput, got %v", err)
		}
	}
}

func TestNormalizeClampsConfidence(t *testing.T) {
	utterances, err := Normalize([]Fragment{{Text: "x", StartMS: 0, EndMS: 100, Confidence: 1.5}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if utterances[0].Confidence != ConfidenceUnknown {
		t.Fatalf("expected out-of-range confidence to become unknown, got %f", utterances[0].Confidence)
	}
}

func TestAggregateHelpers(t *testing.T) {
	utterances := []Utterance{
		{Text: "un deux", StartMS: 100, EndMS: 1000},
		{Text: "trois", StartMS: 1500, EndMS: 2100},
	}
	if got := TotalDurationMS(utterances); got != 2000 {
		t.Fatalf("expected total duration 2000, got %d", got)
	}
	if got := TotalWordCount(utterances); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := JoinText(utterances); got != "un deux trois" {
		t.Fatalf("unexpected joined text %q", got)
	}
}
