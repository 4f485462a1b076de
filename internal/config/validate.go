package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegment(); err != nil {
		return err
	}
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateQuality(); err != nil {
		return err
	}
	if err := c.validateTone(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSegment() error {
	if c.Segment.MaxLines > 2 {
		return errors.New("segment.max_lines must not exceed 2")
	}
	if c.Segment.MaxLineWidth > 120 {
		return errors.New("segment.max_line_width must not exceed 120")
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.MinCueDurationMS >= c.Timing.MaxCueDurationMS {
		return fmt.Errorf("timing.min_cue_duration_ms (%d) must be below timing.max_cue_duration_ms (%d)",
			c.Timing.MinCueDurationMS, c.Timing.MaxCueDurationMS)
	}
	return nil
}

func (c *Config) validateQuality() error {
	if c.Quality.ZCRLow >= c.Quality.ZCRHigh {
		return fmt.Errorf("quality.zcr_low (%.3f) must be below quality.zcr_high (%.3f)",
			c.Quality.ZCRLow, c.Quality.ZCRHigh)
	}
	if c.Quality.SilenceRMSThreshold >= 1 {
		return errors.New("quality.silence_rms_threshold must be below 1")
	}
	return nil
}

func (c *Config) validateTone() error {
	if !(c.Tone.RateSlowWPM < c.Tone.RateModerateWPM && c.Tone.RateModerateWPM < c.Tone.RateFastWPM) {
		return errors.New("tone speech-rate thresholds must be strictly increasing (slow < moderate < fast)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
