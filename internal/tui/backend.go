package tui

import (
	"context"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/puzzle"
	"github.com/fentz26/advent/internal/runner"
	"github.com/fentz26/advent/internal/store"
)

// DayInfo names a registered day.
type DayInfo struct {
	Day   int
	Title string
}

// Backend is what the browser needs from the runner and the run history.
type Backend interface {
	Days() []DayInfo
	LatestRuns() ([]models.Run, error)
	History(day, limit int) ([]models.Run, error)
	RunDay(ctx context.Context, day int) ([]models.Run, error)
}

// LocalBackend serves the browser from in-process components.
type LocalBackend struct {
	registry *puzzle.Registry
	runner   *runner.Runner
	store    *store.Store
}

// NewLocalBackend creates a backend over a registry, runner and store.
func NewLocalBackend(reg *puzzle.Registry, r *runner.Runner, s *store.Store) *LocalBackend {
	return &LocalBackend{registry: reg, runner: r, store: s}
}

// Days lists registered days in order.
func (b *LocalBackend) Days() []DayInfo {
	solvers := b.registry.List()
	days := make([]DayInfo, len(solvers))
	for i, s := range solvers {
		days[i] = DayInfo{Day: s.Day(), Title: s.Title()}
	}
	return days
}

// LatestRuns returns the newest run per day and part.
func (b *LocalBackend) LatestRuns() ([]models.Run, error) {
	return b.store.LatestRuns()
}

// History returns recent runs of one day, newest first.
func (b *LocalBackend) History(day, limit int) ([]models.Run, error) {
	return b.store.ListRuns(models.RunFilter{Day: day, Limit: limit})
}

// RunDay solves both parts of day.
func (b *LocalBackend) RunDay(ctx context.Context, day int) ([]models.Run, error) {
	jobs, err := b.runner.Jobs([]int{day}, 0)
	if err != nil {
		return nil, err
	}
	return b.runner.Run(ctx, jobs)
}
