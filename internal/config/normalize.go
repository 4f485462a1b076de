package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSegment()
	c.normalizeTiming()
	c.normalizeQuality()
	c.normalizeTone()
	c.normalizePipeline()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LexiconPath) != "" {
		if c.Paths.LexiconPath, err = expandPath(c.Paths.LexiconPath); err != nil {
			return fmt.Errorf("paths.lexicon_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeSegment() {
	if c.Segment.PauseThresholdMS <= 0 {
		c.Segment.PauseThresholdMS = defaultPauseThresholdMS
	}
	if c.Segment.MaxLineWidth <= 0 {
		c.Segment.MaxLineWidth = defaultMaxLineWidth
	}
	if c.Segment.MaxLines <= 0 {
		c.Segment.MaxLines = defaultMaxLines
	}
}

func (c *Config) normalizeTiming() {
	if c.Timing.PunctuationPadMS < 0 {
		c.Timing.PunctuationPadMS = defaultPunctuationPadMS
	}
	if c.Timing.MinCueGapMS <= 0 {
		c.Timing.MinCueGapMS = defaultMinCueGapMS
	}
	if c.Timing.MinCueDurationMS <= 0 {
		c.Timing.MinCueDurationMS = defaultMinCueDurationMS
	}
	if c.Timing.MaxCueDurationMS <= 0 {
		c.Timing.MaxCueDurationMS = defaultMaxCueDurationMS
	}
}

func (c *Config) normalizeQuality() {
	if c.Quality.FrameMS <= 0 {
		c.Quality.FrameMS = defaultFrameMS
	}
	if c.Quality.SilenceRMSThreshold <= 0 {
		c.Quality.SilenceRMSThreshold = defaultSilenceRMSThreshold
	}
	if c.Quality.EnergyWeight <= 0 {
		c.Quality.EnergyWeight = defaultEnergyWeight
	}
	if c.Quality.ZCRLow <= 0 {
		c.Quality.ZCRLow = defaultZCRLow
	}
	if c.Quality.ZCRHigh <= 0 {
		c.Quality.ZCRHigh = defaultZCRHigh
	}
}

func (c *Config) normalizeTone() {
	if c.Tone.HesitationMinFillers <= 0 {
		c.Tone.HesitationMinFillers = defaultHesitationMinFillers
	}
	if c.Tone.RateSlowWPM <= 0 {
		c.Tone.RateSlowWPM = defaultRateSlowWPM
	}
	if c.Tone.RateModerateWPM <= 0 {
		c.Tone.RateModerateWPM = defaultRateModerateWPM
	}
	if c.Tone.RateFastWPM <= 0 {
		c.Tone.RateFastWPM = defaultRateFastWPM
	}
}

func (c *Config) normalizePipeline() {
	if c.Pipeline.TaskTimeoutSeconds <= 0 {
		c.Pipeline.TaskTimeoutSeconds = defaultTaskTimeoutSeconds
	}
	if c.Pipeline.MaxInputMegabytes <= 0 {
		c.Pipeline.MaxInputMegabytes = defaultMaxInputMegabytes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
