package testsupport

import (
	"path/filepath"
	"testing"

	"subcue/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.WorkDir = filepath.Join(base, "work")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	cfg := &cfgVal
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLexiconPath points the config at a custom tone lexicon file.
func WithLexiconPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.LexiconPath = path
	}
}

// WithPauseThreshold overrides the segmentation pause threshold.
func WithPauseThreshold(ms int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Segment.PauseThresholdMS = ms
	}
}

// WithTaskTimeout overrides the per-task deadline in seconds.
func WithTaskTimeout(seconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.TaskTimeoutSeconds = seconds
	}
}
