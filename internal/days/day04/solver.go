package day04

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
)

// Solver answers day 4.
type Solver struct {
	loader *input.Loader
	parser *Parser
}

// New creates a day 4 solver reading through loader.
func New(loader *input.Loader) *Solver {
	return &Solver{loader: loader, parser: NewParser()}
}

func (s *Solver) Day() int      { return 4 }
func (s *Solver) Title() string { return "Repose Record" }

// Ledger loads, sorts and replays the log at path.
func (s *Solver) Ledger(path string) (*Ledger, error) {
	events, err := input.LoadWith(s.loader, path, s.parser.Parse)
	if err != nil {
		return nil, err
	}
	// The log is written out of order; Replay needs it chronological.
	SortEvents(events)
	return Replay(events)
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, part puzzle.Part, path string) (string, error) {
	if err := part.Validate(); err != nil {
		return "", err
	}
	ledger, err := s.Ledger(path)
	if err != nil {
		return "", fmt.Errorf("day 4: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if part == puzzle.PartOne {
		g, err := ledger.SleepiestGuard()
		if err != nil {
			return "", fmt.Errorf("day 4: %w", err)
		}
		minute, _ := g.SleepiestMinute()
		return strconv.Itoa(g.ID * minute), nil
	}

	guard, minute, _, ok := ledger.MostFrequentGuardMinute()
	if !ok {
		return "", fmt.Errorf("day 4: %w", ErrNoSleep)
	}
	return strconv.Itoa(guard * minute), nil
}
