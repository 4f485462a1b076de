package cue

import (
	"strings"
	"testing"
)

func TestPackLinesSingleLineFits(t *testing.T) {
	lines, rest := packLines("Bonjour tout le monde", 42, 2)
	if rest != "" {
		t.Fatalf("expected no rest, got %q", rest)
	}
	if len(lines) != 1 || lines[0] != "Bonjour tout le monde" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestPackLinesBreaksAtWordBoundary(t *testing.T) {
	text := "ceci est une phrase qui doit se couper proprement entre les mots"
	lines, rest := packLines(text, 42, 2)
	if rest != "" {
		t.Fatalf("expected text to fit two lines, rest %q", rest)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	for _, line := range lines {
		if displayWidth(line) > 42 {
			t.Fatalf("line %q exceeds 42 runes", line)
		}
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Fatalf("line %q has stray spaces", line)
		}
	}
}

func TestPackLinesPrefersPunctuationBreak(t *testing.T) {
	lines, _ := packLines("Bonjour, comment allez vous aujourd'hui mes amis", 20, 2)
	if lines[0] != "Bonjour," {
		t.Fatalf("expected break after comma, got %q", lines[0])
	}
}

func TestPackLinesKeepsOversizedWordWhole(t *testing.T) {
	word := strings.Repeat("a", 50)
	lines, rest := packLines(word+" suite", 42, 2)
	if len(lines) != 2 || lines[0] != word || lines[1] != "suite" {
		t.Fatalf("unexpected lines %v", lines)
	}
	if rest != "" {
		t.Fatalf("unexpected rest %q", rest)
	}
}

func TestPackLinesSpillsBeyondBudget(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("mot ", 40))
	lines, rest := packLines(text, 42, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if rest == "" {
		t.Fatal("expected overflow text in rest")
	}
	joined := strings.Join(lines, " ") + " " + rest
	if joined != text {
		t.Fatalf("no text may be lost: got %q want %q", joined, text)
	}
}

func TestPackLinesNormalizesWhitespace(t *testing.T) {
	lines, _ := packLines("  un   deux\tdeux  ", 42, 2)
	if len(lines) != 1 || lines[0] != "un deux deux" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestEndsWithStrongTerminator(t *testing.T) {
	cases := map[string]bool{
		"Fini.":       true,
		"Vraiment !":  true,
		"Pourquoi ?":  true,
		"pas encore,": false,
		"":            false,
	}
	for text, want := range cases {
		if got := EndsWithStrongTerminator(text); got != want {
			t.Fatalf("EndsWithStrongTerminator(%q) = %v, want %v", text, got, want)
		}
	}
}
