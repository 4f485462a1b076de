package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"subcue/internal/logging"
	"subcue/internal/pipeline"
	"subcue/internal/recognizer"
	"subcue/internal/textutil"
	"subcue/internal/wavio"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var transcriptPath string
	var languageFlag string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "process <audio.wav>",
		Short: "Process one audio file into an SRT track plus a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			audioPath := strings.TrimSpace(args[0])
			transcript := strings.TrimSpace(transcriptPath)
			if transcript == "" {
				transcript = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".json"
			}

			// Serialize invocations sharing a work directory: concurrent
			// runs over the same config would race on the log file and on
			// output paths derived from the same audio name.
			lock := flock.New(filepath.Join(cfg.Paths.WorkDir, "subcue.lock"))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire work-dir lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another subcue instance is using %s", cfg.Paths.WorkDir)
			}
			defer lock.Unlock()

			logger, err := logging.New(logging.Options{
				Level:            cfg.Logging.Level,
				Format:           cfg.Logging.Format,
				OutputPaths:      []string{filepath.Join(cfg.Paths.LogDir, "subcue.log")},
				ErrorOutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}

			waveform, err := wavio.DecodeFile(audioPath, cfg.Pipeline.MaxInputMegabytes)
			if err != nil {
				return err
			}

			adapter := recognizer.NewFileAdapter(transcript)
			recognized, err := adapter.Recognize(cmd.Context(), waveform)
			if err != nil {
				return err
			}
			language := strings.TrimSpace(languageFlag)
			if language == "" {
				language = recognized.LanguageCode
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			out, err := p.Process(cmd.Context(), pipeline.Input{
				Fragments:    recognized.Fragments,
				Waveform:     waveform,
				LanguageCode: language,
			})
			if err != nil {
				return err
			}

			destDir := strings.TrimSpace(outputDir)
			if destDir == "" {
				destDir = cfg.Paths.OutputDir
			}
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return fmt.Errorf("create output directory %s: %w", destDir, err)
			}
			srtPath := filepath.Join(destDir, outputName(audioPath, language))
			if err := os.WriteFile(srtPath, []byte(out.SRT), 0o644); err != nil {
				return fmt.Errorf("write subtitle file: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote %d cues to %s\n", len(out.Cues), srtPath)
			fmt.Fprintln(w, renderReport(out.Report, useTableStyle()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Recognizer JSON transcript (defaults to the audio path with a .json extension)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Override the detected language code")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to paths.output_dir)")
	return cmd
}

// outputName derives the subtitle file name from the audio file and language,
// e.g. "interview.wav" + "fr" -> "interview.fr.srt".
func outputName(audioPath, language string) string {
	base := filepath.Base(audioPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = textutil.SanitizeFileName(base)
	if base == "" {
		base = "output"
	}
	return base + "." + textutil.SanitizeToken(language) + ".srt"
}
