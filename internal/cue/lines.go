package cue

import (
	"strings"
	"unicode/utf8"
)

// strongTerminators are the sentence-final marks that earn a cue extra
// display time.
var strongTerminators = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
}

// breakPunctuation marks runes that make good line-break points when they
// end a word.
var breakPunctuation = map[rune]struct{}{
	'.': {}, '!': {}, '?': {}, ',': {}, ';': {}, ':': {}, '…': {},
}

// EndsWithStrongTerminator reports whether text ends with `.`, `!`, or `?`.
func EndsWithStrongTerminator(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	_, ok := strongTerminators[r]
	return ok
}

func isBreakPunctuation(r rune) bool {
	_, ok := breakPunctuation[r]
	return ok
}

// findSplitPosition finds the best rune index to split text at or before
// maxLen. It scans backwards preferring a position just after punctuation,
// then any space. Returns len(runes) when the text already fits, and 0 when
// the leading word alone exceeds maxLen (callers keep such a word whole).
func findSplitPosition(text string, maxLen int) int {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return len(runes)
	}

	searchEnd := maxLen + 1
	if searchEnd > len(runes) {
		searchEnd = len(runes)
	}

	spacePos := -1
	for i := searchEnd - 1; i > 0; i-- {
		r := runes[i]
		if r == ' ' {
			if spacePos < 0 {
				spacePos = i
			}
			// A space right after punctuation is the preferred break.
			if isBreakPunctuation(runes[i-1]) {
				return i
			}
		}
	}
	if spacePos > 0 {
		return spacePos
	}
	return 0
}

// packLines packs text into at most maxLines lines of at most width runes,
// breaking at word boundaries and preferring punctuation. A single word
// longer than width is placed alone on a line, never split. Text that does
// not fit the line budget is returned as rest for the caller to carry into
// the next cue.
func packLines(text string, width, maxLines int) (lines []string, rest string) {
	remaining := strings.Join(strings.Fields(text), " ")
	for remaining != "" && len(lines) < maxLines {
		runes := []rune(remaining)
		if len(runes) <= width {
			lines = append(lines, remaining)
			remaining = ""
			break
		}

		splitPos := findSplitPosition(remaining, width)
		if splitPos == 0 {
			// Oversized leading word: keep it whole on its own line.
			if idx := strings.IndexByte(remaining, ' '); idx >= 0 {
				lines = append(lines, remaining[:idx])
				remaining = strings.TrimSpace(remaining[idx+1:])
			} else {
				lines = append(lines, remaining)
				remaining = ""
			}
			continue
		}

		lines = append(lines, strings.TrimSpace(string(runes[:splitPos])))
		remaining = strings.TrimSpace(string(runes[splitPos:]))
	}
	return lines, remaining
}

// fitsBudget reports whether text packs completely into the line budget.
func fitsBudget(text string, width, maxLines int) bool {
	_, rest := packLines(text, width, maxLines)
	return rest == ""
}

// displayWidth counts displayed characters in runes.
func displayWidth(text string) int {
	return utf8.RuneCountInString(text)
}
