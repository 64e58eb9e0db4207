package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/puzzle"
)

// Job is one part of one day.
type Job struct {
	Day  int
	Part puzzle.Part
}

func (j Job) String() string {
	return fmt.Sprintf("day %d %s", j.Day, j.Part)
}

// Expectations supplies input locations and expected answers.
type Expectations interface {
	InputPath(day int) string
	Expected(day, part int) (string, bool)
}

// Recorder persists finished runs.
type Recorder interface {
	Record(run *models.Run) error
}

// Runner solves jobs through the registered solvers.
type Runner struct {
	registry *puzzle.Registry
	recorder Recorder
	answers  Expectations
	config   *Config
	logger   *zap.Logger

	mu        sync.Mutex
	active    int
	completed int
}

// New creates a runner. A nil recorder skips persistence and a nil logger
// discards logs.
func New(reg *puzzle.Registry, rec Recorder, answers Expectations, cfg *Config, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		registry: reg,
		recorder: rec,
		answers:  answers,
		config:   cfg,
		logger:   logger,
	}
}

// Jobs builds jobs for days (every registered day when empty) and parts
// (both when part is zero).
func (r *Runner) Jobs(days []int, part puzzle.Part) ([]Job, error) {
	if len(days) == 0 {
		days = r.registry.Days()
	}
	parts := puzzle.Parts
	if part != 0 {
		if err := part.Validate(); err != nil {
			return nil, err
		}
		parts = []puzzle.Part{part}
	}

	jobs := make([]Job, 0, len(days)*len(parts))
	for _, day := range days {
		if _, err := r.registry.Get(day); err != nil {
			return nil, err
		}
		for _, p := range parts {
			jobs = append(jobs, Job{Day: day, Part: p})
		}
	}
	return jobs, nil
}

// Run solves every job and returns the run records in job order. A failing
// solve becomes an error record; a cancelled context or a failed write to
// the recorder aborts the batch.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]models.Run, error) {
	runs := make([]models.Run, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.workerLimit())

	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run := r.runJob(gctx, job)
			if err := gctx.Err(); err != nil {
				return err
			}
			if r.recorder != nil {
				if err := r.recorder.Record(&run); err != nil {
					return fmt.Errorf("record %s: %w", job, err)
				}
			}
			runs[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// runJob solves a single job and classifies the answer.
func (r *Runner) runJob(ctx context.Context, job Job) models.Run {
	r.mu.Lock()
	r.active++
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.active--
		r.completed++
		r.mu.Unlock()
	}()

	path := r.answers.InputPath(job.Day)
	run := models.Run{
		ID:        uuid.New().String(),
		Day:       job.Day,
		Part:      int(job.Part),
		InputPath: path,
		StartedAt: time.Now().UTC(),
	}
	log := r.logger.With(zap.Int("day", job.Day), zap.Int("part", int(job.Part)), zap.String("run_id", run.ID))
	log.Debug("Solving", zap.String("input", path))

	answer, err := r.solve(ctx, job, path)
	run.DurationMs = time.Since(run.StartedAt).Milliseconds()
	if err != nil {
		run.Status = models.RunStatusError
		run.Error = err.Error()
		log.Warn("Solve failed", zap.Error(err))
		return run
	}

	run.Answer = answer
	expected, ok := r.answers.Expected(job.Day, int(job.Part))
	switch {
	case !ok:
		run.Status = models.RunStatusUnchecked
	case expected == answer:
		run.Expected = expected
		run.Status = models.RunStatusPass
	default:
		run.Expected = expected
		run.Status = models.RunStatusFail
	}
	log.Info("Solved",
		zap.String("answer", answer),
		zap.String("status", string(run.Status)),
		zap.Int64("duration_ms", run.DurationMs))
	return run
}

func (r *Runner) solve(ctx context.Context, job Job, path string) (string, error) {
	s, err := r.registry.Get(job.Day)
	if err != nil {
		return "", err
	}
	return s.Solve(ctx, job.Part, path)
}

// Stats reports runner activity.
type Stats struct {
	ActiveWorkers int `json:"active_workers"`
	Completed     int `json:"completed"`
	Workers       int `json:"workers"`
}

// GetStats returns current runner statistics.
func (r *Runner) GetStats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		ActiveWorkers: r.active,
		Completed:     r.completed,
		Workers:       r.config.workerLimit(),
	}
}

// Summary counts runs by status.
type Summary struct {
	Pass      int `json:"pass"`
	Fail      int `json:"fail"`
	Unchecked int `json:"unchecked"`
	Error     int `json:"error"`
}

// Summarize tallies runs by status.
func Summarize(runs []models.Run) Summary {
	var s Summary
	for _, run := range runs {
		switch run.Status {
		case models.RunStatusPass:
			s.Pass++
		case models.RunStatusFail:
			s.Fail++
		case models.RunStatusUnchecked:
			s.Unchecked++
		case models.RunStatusError:
			s.Error++
		}
	}
	return s
}

// OK reports whether no run failed or errored.
func (s Summary) OK() bool {
	return s.Fail == 0 && s.Error == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pass, %d fail, %d unchecked, %d error", s.Pass, s.Fail, s.Unchecked, s.Error)
}
