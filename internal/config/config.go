package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir   string `toml:"output_dir"`
	WorkDir     string `toml:"work_dir"`
	LogDir      string `toml:"log_dir"`
	LexiconPath string `toml:"lexicon_path"`
}

// Segment contains cue segmentation parameters.
type Segment struct {
	PauseThresholdMS int `toml:"pause_threshold_ms"`
	MaxLineWidth     int `toml:"max_line_width"`
	MaxLines         int `toml:"max_lines"`
}

// Timing contains cue timing adjustment parameters.
type Timing struct {
	PunctuationPadMS int `toml:"punctuation_pad_ms"`
	MinCueGapMS      int `toml:"min_cue_gap_ms"`
	MinCueDurationMS int `toml:"min_cue_duration_ms"`
	MaxCueDurationMS int `toml:"max_cue_duration_ms"`
}

// Quality contains audio quality analysis parameters.
type Quality struct {
	FrameMS             int     `toml:"frame_ms"`
	SilenceRMSThreshold float64 `toml:"silence_rms_threshold"`
	EnergyWeight        float64 `toml:"energy_weight"`
	ZCRLow              float64 `toml:"zcr_low"`
	ZCRHigh             float64 `toml:"zcr_high"`
}

// Tone contains tone analysis parameters.
type Tone struct {
	HesitationMinFillers int     `toml:"hesitation_min_fillers"`
	RateSlowWPM          float64 `toml:"rate_slow_wpm"`
	RateModerateWPM      float64 `toml:"rate_moderate_wpm"`
	RateFastWPM          float64 `toml:"rate_fast_wpm"`
}

// Pipeline contains task scheduling parameters.
type Pipeline struct {
	TaskTimeoutSeconds int `toml:"task_timeout_seconds"`
	MaxInputMegabytes  int `toml:"max_input_megabytes"`
}

// TaskTimeout returns the per-task deadline as a duration. Zero disables it.
func (p Pipeline) TaskTimeout() time.Duration {
	if p.TaskTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(p.TaskTimeoutSeconds) * time.Second
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subcue.
//
// Configuration sections by subsystem:
//   - Paths: output, scratch, and log directories plus the lexicon file
//   - Segment: pause threshold and line budget for cue building
//   - Timing: punctuation padding and duration bounds for cue timing
//   - Quality: frame size, silence threshold, and score weighting
//   - Tone: speech-rate thresholds and hesitation sensitivity
//   - Pipeline: per-task deadline and input size ceiling
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Segment  Segment  `toml:"segment"`
	Timing   Timing   `toml:"timing"`
	Quality  Quality  `toml:"quality"`
	Tone     Tone     `toml:"tone"`
	Pipeline Pipeline `toml:"pipeline"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subcue/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error: defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// EnsureDirectories creates the configured output, work, and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.WorkDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPath, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return defaultPath, true, nil
}

// WriteSample writes the embedded sample configuration to the given path.
// It refuses to overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file %s already exists", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", trimmed, err)
	}
	return abs, nil
}
