// Package day01 tracks a drifting frequency through a list of signed changes.
package day01

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
)

var (
	ErrEmptyInput = errors.New("no frequency changes")
	ErrNoRepeat   = errors.New("no frequency is ever reached twice")
)

// ParseChange parses a signed change such as "+7" or "-3".
func ParseChange(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line))
}

// Sum returns the frequency after applying every change once, starting from zero.
func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}
	return total
}

// FirstRepeat applies changes cyclically from zero and returns the first
// frequency reached twice. Zero itself counts as reached.
func FirstRepeat(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrEmptyInput
	}

	seen := map[int]struct{}{0: {}}
	freq, lo, hi := 0, 0, 0
	for _, c := range changes {
		freq += c
		if _, ok := seen[freq]; ok {
			return freq, nil
		}
		seen[freq] = struct{}{}
		lo, hi = min(lo, freq), max(hi, freq)
	}

	drift := freq
	if drift == 0 {
		// Unreachable: a zero drift always returns to the start within one pass.
		return 0, ErrNoRepeat
	}
	if drift < 0 {
		drift = -drift
	}
	// Every later pass shifts the first pass by drift; after spread/drift
	// passes no shifted total can land on a seen one.
	passes := (hi-lo)/drift + 1
	for p := 0; p < passes; p++ {
		for _, c := range changes {
			freq += c
			if _, ok := seen[freq]; ok {
				return freq, nil
			}
			seen[freq] = struct{}{}
		}
	}
	return 0, ErrNoRepeat
}

// Solver answers day 1.
type Solver struct {
	loader *input.Loader
}

// New creates a day 1 solver reading through loader.
func New(loader *input.Loader) *Solver {
	return &Solver{loader: loader}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Chronal Calibration" }

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, part puzzle.Part, path string) (string, error) {
	if err := part.Validate(); err != nil {
		return "", err
	}
	changes, err := input.LoadWith(s.loader, path, ParseChange)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if part == puzzle.PartOne {
		return strconv.Itoa(Sum(changes)), nil
	}
	freq, err := FirstRepeat(changes)
	if err != nil {
		return "", fmt.Errorf("day 1: %w", err)
	}
	return strconv.Itoa(freq), nil
}
