package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"subcue/internal/audioqc"
	"subcue/internal/config"
	"subcue/internal/cue"
	"subcue/internal/logging"
	"subcue/internal/report"
	"subcue/internal/services"
	"subcue/internal/srt"
	"subcue/internal/tone"
	"subcue/internal/transcript"
)

// Input is everything one task needs: recognizer fragments, the decoded
// waveform, and the detected language.
type Input struct {
	Fragments    []transcript.Fragment
	Waveform     audioqc.Waveform
	LanguageCode string
}

// Output is the result of one processed input.
type Output struct {
	TaskID     string
	Utterances []transcript.Utterance
	Cues       []cue.Cue
	SRT        string
	Report     report.Report
}

// Result pairs an Output with its error for async delivery.
type Result struct {
	Output Output
	Err    error
}

// Pipeline runs the post-processing stages for one input file at a time.
// Tasks share nothing but the immutable configuration, so a single Pipeline
// is safe for concurrent Process calls.
type Pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	segmenter *cue.Segmenter
	adjuster  *cue.Adjuster
	quality   *audioqc.Analyzer
	tones     *tone.Analyzer

	// releaseHook, when set, observes every scratch release. Used by tests
	// to verify cleanup on all exit paths.
	releaseHook func()
}

// New builds a Pipeline from the configuration. The tone lexicon is loaded
// once here; a broken lexicon file fails construction rather than every task.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	lexicon, err := tone.LoadLexicon(cfg.Paths.LexiconPath)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		logger:    logger.With(logging.String(logging.FieldComponent, "pipeline")),
		segmenter: cue.NewSegmenter(cfg.Segment),
		adjuster:  cue.NewAdjuster(cfg.Timing, cfg.Segment),
		quality:   audioqc.NewAnalyzer(cfg.Quality),
		tones:     tone.NewAnalyzer(cfg.Tone, lexicon),
	}, nil
}

// SetReleaseHook installs an observer called whenever a task releases its
// scratch state. Intended for tests.
func (p *Pipeline) SetReleaseHook(hook func()) {
	p.releaseHook = hook
}

// Process runs one task synchronously under the configured deadline. On a
// deadline or cancellation no partial SRT is returned. Quality analysis
// failures are absorbed: the report's quality is marked unknown and the task
// still succeeds.
func (p *Pipeline) Process(ctx context.Context, in Input) (Output, error) {
	taskID := uuid.NewString()
	ctx = services.WithTaskID(ctx, taskID)
	if timeout := p.cfg.Pipeline.TaskTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	scratch := newTaskScratch(taskID, p.releaseHook)
	defer scratch.release()

	logger := logging.WithContext(ctx, p.logger)
	start := time.Now()
	logger.Info("task started",
		logging.Int("fragments", len(in.Fragments)),
		logging.Int64("waveform_ms", in.Waveform.DurationMS()),
		logging.String("language", in.LanguageCode))

	out, err := p.run(ctx, in, scratch)
	if err != nil {
		err = deadlineError(ctx, err)
		logger.Error("task failed", logging.Error(err))
		return Output{}, err
	}
	out.TaskID = taskID
	logger.Info("task finished",
		logging.Int("cues", len(out.Cues)),
		logging.Bool("quality_known", out.Report.QualityKnown),
		logging.Duration("elapsed", time.Since(start)))
	return out, nil
}

// Submit runs Process in its own goroutine and returns a channel delivering
// the single result. The channel is buffered, so the caller may abandon it.
func (p *Pipeline) Submit(ctx context.Context, in Input) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		out, err := p.Process(ctx, in)
		results <- Result{Output: out, Err: err}
		close(results)
	}()
	return results
}

func (p *Pipeline) run(ctx context.Context, in Input, scratch *taskScratch) (Output, error) {
	ctx = services.WithStage(ctx, "normalize")
	if err := checkDeadline(ctx, "normalize"); err != nil {
		return Output{}, err
	}
	utterances, err := transcript.Normalize(in.Fragments)
	if err != nil {
		return Output{}, err
	}
	scratch.utterances = utterances

	// Quality and tone only need the normalizer output and the waveform,
	// so they run concurrently while feeding the same report.
	var (
		wg           sync.WaitGroup
		metrics      audioqc.Metrics
		qualityErr   error
		profile      tone.Profile
		qualityKnown bool
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		metrics, qualityErr = p.quality.Analyze(in.Waveform)
	}()
	go func() {
		defer wg.Done()
		profile = p.tones.Analyze(utterances)
	}()
	wg.Wait()

	switch {
	case qualityErr == nil:
		qualityKnown = true
	case services.Recoverable(qualityErr):
		logging.WithContext(services.WithStage(ctx, "quality"), p.logger).
			Warn("quality analysis failed, marking unknown", logging.Error(qualityErr))
	default:
		return Output{}, qualityErr
	}

	ctx = services.WithStage(ctx, "segment")
	if err := checkDeadline(ctx, "segment"); err != nil {
		return Output{}, err
	}
	cues := p.segmenter.Segment(utterances)
	scratch.cues = cues

	ctx = services.WithStage(ctx, "adjust")
	if err := checkDeadline(ctx, "adjust"); err != nil {
		return Output{}, err
	}
	cues = p.adjuster.Adjust(cues)
	scratch.cues = cues

	ctx = services.WithStage(ctx, "render")
	if err := checkDeadline(ctx, "render"); err != nil {
		return Output{}, err
	}
	rendered := srt.Render(cues)

	return Output{
		Utterances: utterances,
		Cues:       cues,
		SRT:        rendered,
		Report: report.Build(report.Input{
			LanguageCode: in.LanguageCode,
			Utterances:   utterances,
			Cues:         cues,
			Tone:         profile,
			Quality:      metrics,
			QualityKnown: qualityKnown,
		}),
	}, nil
}

// checkDeadline gates each stage so a task never keeps burning work after
// its deadline passed.
func checkDeadline(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return services.Wrap(services.ErrTimeout, "pipeline", stage, "task deadline exceeded", err)
		}
		return err
	}
	return nil
}

// deadlineError maps a context deadline surfacing through a stage error to
// the timeout marker. Plain cancellation passes through untouched.
func deadlineError(ctx context.Context, err error) error {
	if errors.Is(err, services.ErrTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "pipeline", "run", "task deadline exceeded", err)
	}
	return err
}

// taskScratch holds a task's intermediate buffers so one defer releases
// everything regardless of which stage bailed.
type taskScratch struct {
	taskID     string
	utterances []transcript.Utterance
	cues       []cue.Cue
	hook       func()
	released   bool
}

func newTaskScratch(taskID string, hook func()) *taskScratch {
	return &taskScratch{taskID: taskID, hook: hook}
}

func (s *taskScratch) release() {
	if s.released {
		return
	}
	s.released = true
	s.utterances = nil
	s.cues = nil
	if s.hook != nil {
		s.hook()
	}
}
