package services

import (
	"context"
	"testing"
)

func TestTaskIDRoundTrip(t *testing.T) {
	ctx := WithTaskID(context.Background(), "task-1")
	id, ok := TaskIDFromContext(ctx)
	if !ok || id != "task-1" {
		t.Fatalf("expected task-1, got %q (ok=%v)", id, ok)
	}
}

func TestEmptyValuesNotStored(t *testing.T) {
	ctx := WithStage(context.Background(), "")
	if _, ok := StageFromContext(ctx); ok {
		t.Fatal("empty stage should not be stored")
	}
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Fatal("missing request id should report false")
	}
}
