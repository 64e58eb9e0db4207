// Package day02 checksums box IDs and finds the pair of near-identical IDs.
package day02

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
)

var ErrNoNearMatch = errors.New("no two IDs differ in exactly one position")

// Repeats records whether an ID holds some letter exactly twice or exactly three times.
type Repeats struct {
	Two   bool
	Three bool
}

// ParseID accepts a non-empty box ID.
func ParseID(line string) (string, error) {
	id := strings.TrimSpace(line)
	if id == "" {
		return "", fmt.Errorf("empty box ID")
	}
	return id, nil
}

// CountRepeats inspects the letter counts of id.
func CountRepeats(id string) Repeats {
	counts := make(map[rune]int)
	for _, c := range id {
		counts[c]++
	}
	var r Repeats
	for _, n := range counts {
		switch n {
		case 2:
			r.Two = true
		case 3:
			r.Three = true
		}
	}
	return r
}

// Checksum multiplies the number of IDs with a doubled letter by the number
// with a tripled letter.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		r := CountRepeats(id)
		if r.Two {
			twos++
		}
		if r.Three {
			threes++
		}
	}
	return twos * threes
}

// diffPosition returns the single index at which a and b differ, or -1 when
// they differ in zero or several places or have different lengths.
func diffPosition(a, b string) int {
	if len(a) != len(b) {
		return -1
	}
	pos := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if pos >= 0 {
			return -1
		}
		pos = i
	}
	return pos
}

// CommonLetters finds the first pair of IDs, in input order, differing at
// exactly one position and returns their shared letters.
func CommonLetters(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if pos := diffPosition(a, b); pos >= 0 {
				return a[:pos] + a[pos+1:], nil
			}
		}
	}
	return "", ErrNoNearMatch
}

// Solver answers day 2.
type Solver struct {
	loader *input.Loader
}

// New creates a day 2 solver reading through loader.
func New(loader *input.Loader) *Solver {
	return &Solver{loader: loader}
}

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Inventory Management System" }

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, part puzzle.Part, path string) (string, error) {
	if err := part.Validate(); err != nil {
		return "", err
	}
	ids, err := input.LoadWith(s.loader, path, ParseID)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if part == puzzle.PartOne {
		return strconv.Itoa(Checksum(ids)), nil
	}
	common, err := CommonLetters(ids)
	if err != nil {
		return "", fmt.Errorf("day 2: %w", err)
	}
	return common, nil
}
