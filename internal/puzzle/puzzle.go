// Package puzzle defines the solver contract shared by every day.
package puzzle

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for puzzle lookup.
var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownPart = errors.New("unknown part")
)

// Part selects one of the two questions asked about a day's input.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

// ParsePart converts 1 or 2 into a Part.
func ParsePart(n int) (Part, error) {
	p := Part(n)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate reports whether p is a known part.
func (p Part) Validate() error {
	if p != PartOne && p != PartTwo {
		return fmt.Errorf("%w: %d", ErrUnknownPart, int(p))
	}
	return nil
}

func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Solver answers both parts of one day from an input file.
type Solver interface {
	// Day returns the puzzle day number.
	Day() int

	// Title returns a short human-readable name.
	Title() string

	// Solve computes the answer to part for the input at path.
	Solve(ctx context.Context, part Part, path string) (string, error)
}
