package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"subcue/internal/services"
)

func TestPrettyHandlerIncludesComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	NewComponentLogger(logger, "segmenter").Info("cue closed", Int("cues", 3))

	out := buf.String()
	if !strings.Contains(out, "segmenter: cue closed") {
		t.Fatalf("expected component prefix, got %q", out)
	}
	if !strings.Contains(out, "cues=3") {
		t.Fatalf("expected attr output, got %q", out)
	}
}

func TestPrettyHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	logger.Info("msg", String("path", "my file.srt"))
	if !strings.Contains(buf.String(), `path="my file.srt"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestWithContextAddsTaskFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	ctx := services.WithTaskID(context.Background(), "abc123")
	ctx = services.WithStage(ctx, "render")
	WithContext(ctx, logger).Info("done")

	out := buf.String()
	if !strings.Contains(out, "task_id=abc123") || !strings.Contains(out, "stage=render") {
		t.Fatalf("expected context fields, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
