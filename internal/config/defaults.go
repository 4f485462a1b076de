package config

const (
	defaultOutputDir  = "~/subcue/output"
	defaultWorkDir    = "~/.local/share/subcue/work"
	defaultLogDir     = "~/.local/share/subcue/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	defaultPauseThresholdMS = 700
	defaultMaxLineWidth     = 42
	defaultMaxLines         = 2

	defaultPunctuationPadMS = 300
	defaultMinCueGapMS      = 80
	defaultMinCueDurationMS = 1000
	defaultMaxCueDurationMS = 7000

	defaultFrameMS             = 20
	defaultSilenceRMSThreshold = 0.01
	defaultEnergyWeight        = 10.0
	defaultZCRLow              = 0.02
	defaultZCRHigh             = 0.35

	defaultHesitationMinFillers = 3
	defaultRateSlowWPM          = 110.0
	defaultRateModerateWPM      = 160.0
	defaultRateFastWPM          = 250.0

	defaultTaskTimeoutSeconds = 600
	defaultMaxInputMegabytes  = 50
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			WorkDir:   defaultWorkDir,
			LogDir:    defaultLogDir,
		},
		Segment: Segment{
			PauseThresholdMS: defaultPauseThresholdMS,
			MaxLineWidth:     defaultMaxLineWidth,
			MaxLines:         defaultMaxLines,
		},
		Timing: Timing{
			PunctuationPadMS: defaultPunctuationPadMS,
			MinCueGapMS:      defaultMinCueGapMS,
			MinCueDurationMS: defaultMinCueDurationMS,
			MaxCueDurationMS: defaultMaxCueDurationMS,
		},
		Quality: Quality{
			FrameMS:             defaultFrameMS,
			SilenceRMSThreshold: defaultSilenceRMSThreshold,
			EnergyWeight:        defaultEnergyWeight,
			ZCRLow:              defaultZCRLow,
			ZCRHigh:             defaultZCRHigh,
		},
		Tone: Tone{
			HesitationMinFillers: defaultHesitationMinFillers,
			RateSlowWPM:          defaultRateSlowWPM,
			RateModerateWPM:      defaultRateModerateWPM,
			RateFastWPM:          defaultRateFastWPM,
		},
		Pipeline: Pipeline{
			TaskTimeoutSeconds: defaultTaskTimeoutSeconds,
			MaxInputMegabytes:  defaultMaxInputMegabytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
