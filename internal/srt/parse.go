package srt

import (
	"fmt"
	"strconv"
	"strings"

	"subcue/internal/cue"
	"subcue/internal/services"
)

// Parse reconstructs an ordered cue sequence from SRT subtitle text. It is
// the inverse of Render: parsing rendered output yields an equal cue
// sequence. Malformed blocks fail with a format error naming the 1-based
// block index.
func Parse(content string) ([]cue.Cue, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return nil, nil
	}

	blocks := strings.Split(trimmed, "\n\n")
	cues := make([]cue.Cue, 0, len(blocks))
	for i, block := range blocks {
		parsed, err := parseBlock(i+1, block)
		if err != nil {
			return nil, err
		}
		if len(cues) > 0 && parsed.StartMS < cues[len(cues)-1].EndMS {
			return nil, services.Wrap(services.ErrFormat, "srt", "parse",
				fmt.Sprintf("block %d starts at %dms before previous block ends at %dms",
					i+1, parsed.StartMS, cues[len(cues)-1].EndMS), nil)
		}
		cues = append(cues, parsed)
	}
	return cues, nil
}

func parseBlock(blockIndex int, block string) (cue.Cue, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return cue.Cue{}, services.Wrap(services.ErrFormat, "srt", "parse",
			fmt.Sprintf("block %d has %d lines, need index, timing, and text", blockIndex, len(lines)), nil)
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || index < 1 {
		return cue.Cue{}, services.Wrap(services.ErrFormat, "srt", "parse",
			fmt.Sprintf("block %d has invalid index line %q", blockIndex, lines[0]), err)
	}

	startMS, endMS, err := parseTimingLine(lines[1])
	if err != nil {
		return cue.Cue{}, services.Wrap(services.ErrFormat, "srt", "parse",
			fmt.Sprintf("block %d", blockIndex), err)
	}
	if endMS <= startMS {
		return cue.Cue{}, services.Wrap(services.ErrFormat, "srt", "parse",
			fmt.Sprintf("block %d has non-positive duration %d-%dms", blockIndex, startMS, endMS), nil)
	}

	textLines := make([]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		textLines = append(textLines, strings.TrimRight(line, " \t"))
	}

	return cue.New(index, startMS, endMS, textLines), nil
}

func parseTimingLine(line string) (int64, int64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	startMS, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	endMS, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return startMS, endMS, nil
}
