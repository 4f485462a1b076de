package srt

import (
	"errors"
	"strings"
	"testing"

	"subcue/internal/cue"
	"subcue/internal/services"
)

func sampleCues() []cue.Cue {
	return []cue.Cue{
		cue.New(1, 0, 2500, []string{"Bonjour tout le monde", "comment allez vous"}),
		cue.New(2, 3200, 5800, []string{"Très bien, merci !"}),
		cue.New(3, 7000, 9000, []string{"Au revoir."}),
	}
}

func TestRenderFormat(t *testing.T) {
	out := Render(sampleCues())
	want := "1\n" +
		"00:00:00,000 --> 00:00:02,500\n" +
		"Bonjour tout le monde\n" +
		"comment allez vous\n" +
		"\n" +
		"2\n" +
		"00:00:03,200 --> 00:00:05,800\n" +
		"Très bien, merci !\n" +
		"\n" +
		"3\n" +
		"00:00:07,000 --> 00:00:09,000\n" +
		"Au revoir.\n" +
		"\n"
	if out != want {
		t.Fatalf("unexpected render output:\n%q\nwant:\n%q", out, want)
	}
}

func TestRenderRenumbersSequentially(t *testing.T) {
	cues := []cue.Cue{
		cue.New(7, 0, 1000, []string{"un"}),
		cue.New(9, 2000, 3000, []string{"deux"}),
	}
	out := Render(cues)
	if !strings.HasPrefix(out, "1\n") || !strings.Contains(out, "\n2\n") {
		t.Fatalf("expected sequential numbering, got:\n%s", out)
	}
}

func TestRoundTrip(t *testing.T) {
	cues := sampleCues()
	parsed, err := Parse(Render(cues))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed) != len(cues) {
		t.Fatalf("expected %d cues, got %d", len(cues), len(parsed))
	}
	for i := range cues {
		if !cues[i].Equal(parsed[i]) {
			t.Fatalf("cue %d mismatch:\n got %+v\nwant %+v", i, parsed[i], cues[i])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	cues, err := Parse("")
	if err != nil || cues != nil {
		t.Fatalf("expected empty parse, got %v / %v", cues, err)
	}
}

func TestParseHoursBeyond24(t *testing.T) {
	content := "1\n25:00:01,250 --> 25:00:03,000\ntard\n\n"
	cues, err := Parse(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cues[0].StartMS != 25*3_600_000+1250 {
		t.Fatalf("unexpected start %d", cues[0].StartMS)
	}
}

func TestParseMalformedTimestamp(t *testing.T) {
	content := "1\n00:00:00,000 -> 00:00:02,000\noups\n\n"
	_, err := Parse(content)
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "block 1") {
		t.Fatalf("expected block index in error, got %q", err.Error())
	}
}

func TestParseMissingSeparatorNamesBlock(t *testing.T) {
	// Without the blank separator the second cue's lines fold into the
	// first block; the stray timing line is rejected as malformed.
	content := "1\n00:00:00,000 --> 00:00:02,000\nligne\n2\n00:00:03,000 --> 00:00:04,000\nsuite\n\n"
	cues, err := Parse(content)
	if err == nil {
		// All folded lines become text of block 1; the parse is structurally
		// valid SRT but must not invent a second cue.
		if len(cues) != 1 {
			t.Fatalf("expected single folded block, got %d", len(cues))
		}
		return
	}
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestParseRejectsOverlappingBlocks(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:05,000\nun\n\n2\n00:00:04,000 --> 00:00:06,000\ndeux\n\n"
	_, err := Parse(content)
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected ErrFormat for overlap, got %v", err)
	}
}

func TestParseRejectsShortBlock(t *testing.T) {
	_, err := Parse("1\n00:00:00,000 --> 00:00:01,000\n\n")
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected ErrFormat for missing text line, got %v", err)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 999, 1000, 61_000, 3_599_999, 90_000_000} {
		formatted := FormatTimestamp(ms)
		parsed, err := ParseTimestamp(formatted)
		if err != nil {
			t.Fatalf("parse %q: %v", formatted, err)
		}
		if parsed != ms {
			t.Fatalf("round trip %d -> %q -> %d", ms, formatted, parsed)
		}
	}
}

func TestParseTimestampAcceptsPeriodSeparator(t *testing.T) {
	ms, err := ParseTimestamp("00:00:01.500")
	if err != nil || ms != 1500 {
		t.Fatalf("expected 1500, got %d (%v)", ms, err)
	}
}
