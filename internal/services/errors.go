package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks an empty transcript or empty waveform; nothing to recover.
	ErrInput = errors.New("input error")
	// ErrSegmentation marks unrecoverable timestamp disorder after sorting.
	ErrSegmentation = errors.New("segmentation error")
	// ErrFormat marks malformed subtitle text encountered during parsing.
	ErrFormat = errors.New("format error")
	// ErrQuality marks a malformed waveform during quality analysis. It is
	// recoverable: the pipeline degrades the report instead of failing.
	ErrQuality = errors.New("quality compute error")
	// ErrTimeout marks a task that exceeded its processing deadline.
	ErrTimeout = errors.New("timeout")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrInput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether the pipeline may absorb the error and continue
// with a degraded report instead of failing the task.
func Recoverable(err error) bool {
	return errors.Is(err, ErrQuality)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
