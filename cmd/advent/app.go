package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fentz26/advent/internal/audit"
	"github.com/fentz26/advent/internal/config"
	"github.com/fentz26/advent/internal/days/day01"
	"github.com/fentz26/advent/internal/days/day02"
	"github.com/fentz26/advent/internal/days/day03"
	"github.com/fentz26/advent/internal/days/day04"
	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
	"github.com/fentz26/advent/internal/runner"
	"github.com/fentz26/advent/internal/store"
)

// app bundles the components a command works with.
type app struct {
	registry *puzzle.Registry
	store    *store.Store
	runner   *runner.Runner
}

// newRegistry registers every solver, sharing one input cache.
func newRegistry(c *config.Config) (*puzzle.Registry, error) {
	mode, err := day03.ParseFindMode(c.Claims.FindMode)
	if err != nil {
		return nil, err
	}
	loader, err := input.NewLoader(c.CacheSize)
	if err != nil {
		return nil, err
	}

	reg := puzzle.NewRegistry()
	for _, s := range []puzzle.Solver{
		day01.New(loader),
		day02.New(loader),
		day03.New(loader, mode),
		day04.New(loader),
	} {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// newApp opens the run history and builds the runner.
func newApp(c *config.Config, log *zap.Logger) (*app, error) {
	reg, err := newRegistry(c)
	if err != nil {
		return nil, err
	}

	s, err := store.New(c.ResolvedDBPath())
	if err != nil {
		return nil, fmt.Errorf("opening run history: %w", err)
	}

	r := runner.New(reg, audit.NewRecorder(s), c, &runner.Config{Workers: c.Workers}, log)
	return &app{registry: reg, store: s, runner: r}, nil
}

// Close releases the store.
func (a *app) Close() error {
	return a.store.Close()
}
