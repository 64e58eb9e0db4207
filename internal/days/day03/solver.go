package day03

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
)

var ErrNoIsolatedClaim = errors.New("every claim overlaps another")

// Solver answers day 3.
type Solver struct {
	loader *input.Loader
	parser *Parser
	mode   FindMode
}

// New creates a day 3 solver. mode controls the part 2 search.
func New(loader *input.Loader, mode FindMode) *Solver {
	return &Solver{
		loader: loader,
		parser: NewParser(),
		mode:   mode,
	}
}

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "No Matter How You Slice It" }

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, part puzzle.Part, path string) (string, error) {
	if err := part.Validate(); err != nil {
		return "", err
	}
	claims, err := input.LoadWith(s.loader, path, s.parser.Parse)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	grid := Build(claims)
	if part == puzzle.PartOne {
		return strconv.Itoa(grid.CountConflicts()), nil
	}

	isolated := grid.FindNonOverlapping(s.mode)
	if len(isolated) == 0 {
		return "", fmt.Errorf("day 3: %w", ErrNoIsolatedClaim)
	}
	return strconv.Itoa(isolated[0].ID), nil
}
