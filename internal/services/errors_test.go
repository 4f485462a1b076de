package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrSegmentation, "normalizer", "validate", "fragments 3-5 overlap", nil)
	if !errors.Is(err, ErrSegmentation) {
		t.Fatalf("expected ErrSegmentation, got %v", err)
	}
	if !strings.Contains(err.Error(), "fragments 3-5 overlap") {
		t.Fatalf("expected detail in message, got %q", err.Error())
	}
}

func TestWrapChainsCause(t *testing.T) {
	cause := fmt.Errorf("bad block")
	err := Wrap(ErrFormat, "srt", "parse", "block 2", cause)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad block") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}

func TestWrapNilMarkerDefaults(t *testing.T) {
	err := Wrap(nil, "pipeline", "", "", nil)
	if !errors.Is(err, ErrInput) {
		t.Fatalf("expected nil marker to default to ErrInput, got %v", err)
	}
}

func TestRecoverable(t *testing.T) {
	if !Recoverable(Wrap(ErrQuality, "audioqc", "analyze", "empty waveform", nil)) {
		t.Fatal("quality errors should be recoverable")
	}
	if Recoverable(Wrap(ErrTimeout, "pipeline", "process", "", nil)) {
		t.Fatal("timeouts should not be recoverable")
	}
	if Recoverable(nil) {
		t.Fatal("nil error should not be recoverable")
	}
}
