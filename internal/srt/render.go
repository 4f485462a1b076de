package srt

import (
	"fmt"
	"strings"

	"subcue/internal/cue"
)

// Render serializes ordered cues into SRT subtitle text. Cues are renumbered
// sequentially from 1 regardless of their input indices. Blocks are
// separated by one blank line and the output ends with a trailing blank
// line.
func Render(cues []cue.Cue) string {
	if len(cues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, c := range cues {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n", i+1, FormatTimestamp(c.StartMS), FormatTimestamp(c.EndMS))
		for _, line := range c.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
