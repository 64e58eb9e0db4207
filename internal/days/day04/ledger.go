package day04

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrAlreadyAsleep    = errors.New("guard falls asleep while already asleep")
	ErrNotAsleep        = errors.New("guard wakes up without falling asleep")
	ErrEmptyInterval    = errors.New("guard wakes up before falling asleep")
	ErrShiftWhileAsleep = errors.New("shift begins while a guard is asleep")
	ErrNoSleep          = errors.New("no guard ever slept")
)

// Interval is a half-open sleep span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes is the length of the interval in whole minutes.
func (iv Interval) Minutes() int {
	return int(iv.End.Sub(iv.Start) / time.Minute)
}

// Guard is the accumulated sleep history of one guard across all shifts.
type Guard struct {
	ID        int
	Intervals []Interval
}

// TotalMinutesAsleep sums the lengths of every interval.
func (g *Guard) TotalMinutesAsleep() int {
	total := 0
	for _, iv := range g.Intervals {
		total += iv.Minutes()
	}
	return total
}

// MinuteCounts returns, per minute of the hour, how many intervals cover it.
func (g *Guard) MinuteCounts() [60]int {
	var counts [60]int
	for _, iv := range g.Intervals {
		for t := iv.Start; t.Before(iv.End); t = t.Add(time.Minute) {
			counts[t.Minute()]++
		}
	}
	return counts
}

// SleepiestMinute returns the minute of the hour covered by the most
// intervals and that count. Ties go to the lowest minute. A guard that
// never slept reports (0, 0).
func (g *Guard) SleepiestMinute() (minute, count int) {
	counts := g.MinuteCounts()
	for m, n := range counts {
		if n > count {
			minute, count = m, n
		}
	}
	return minute, count
}

// Ledger maps guard IDs to their sleep records.
type Ledger struct {
	guards map[int]*Guard
}

// Replay rebuilds per-guard sleep records from events.
//
// Events must already be sorted by timestamp (see SortEvents); Replay does
// not reorder them. A wake-up with no guard on shift is ignored. Any other
// out-of-order sleep transition is reported as an error.
func Replay(events []Event) (*Ledger, error) {
	l := &Ledger{guards: make(map[int]*Guard)}

	var (
		current    *Guard
		sleepStart *time.Time
	)
	flush := func() {
		if current == nil {
			return
		}
		if g, ok := l.guards[current.ID]; ok {
			g.Intervals = append(g.Intervals, current.Intervals...)
		} else {
			l.guards[current.ID] = current
		}
	}

	for i, e := range events {
		switch e.Kind {
		case ShiftBegins:
			if sleepStart != nil {
				return nil, fmt.Errorf("event %d (%s): %w", i, e, ErrShiftWhileAsleep)
			}
			flush()
			current = &Guard{ID: e.Guard}

		case FallsAsleep:
			if sleepStart != nil {
				return nil, fmt.Errorf("event %d (%s): %w", i, e, ErrAlreadyAsleep)
			}
			ts := e.Time
			sleepStart = &ts

		case WakesUp:
			if current == nil {
				sleepStart = nil
				continue
			}
			if sleepStart == nil {
				return nil, fmt.Errorf("event %d (%s): %w", i, e, ErrNotAsleep)
			}
			if !e.Time.After(*sleepStart) {
				return nil, fmt.Errorf("event %d (%s): %w", i, e, ErrEmptyInterval)
			}
			current.Intervals = append(current.Intervals, Interval{Start: *sleepStart, End: e.Time})
			sleepStart = nil

		default:
			return nil, fmt.Errorf("event %d: unknown kind %v", i, e.Kind)
		}
	}
	flush()
	return l, nil
}

// Guard returns the record for id.
func (l *Ledger) Guard(id int) (*Guard, bool) {
	g, ok := l.guards[id]
	return g, ok
}

// Guards returns every guard record sorted by ID.
func (l *Ledger) Guards() []*Guard {
	guards := make([]*Guard, 0, len(l.guards))
	for _, g := range l.guards {
		guards = append(guards, g)
	}
	sort.Slice(guards, func(i, j int) bool { return guards[i].ID < guards[j].ID })
	return guards
}

// SleepiestGuard returns the guard with the most total minutes asleep,
// lowest ID first on ties.
func (l *Ledger) SleepiestGuard() (*Guard, error) {
	var best *Guard
	bestTotal := 0
	for _, g := range l.Guards() {
		if total := g.TotalMinutesAsleep(); total > bestTotal {
			best, bestTotal = g, total
		}
	}
	if best == nil {
		return nil, ErrNoSleep
	}
	return best, nil
}

// MostFrequentGuardMinute finds the (guard, minute) pair asleep in the most
// intervals. Ties go to the lowest guard ID, then the lowest minute. ok is
// false when no guard ever slept.
func (l *Ledger) MostFrequentGuardMinute() (guard, minute, count int, ok bool) {
	for _, g := range l.Guards() {
		m, n := g.SleepiestMinute()
		if n > count {
			guard, minute, count, ok = g.ID, m, n, true
		}
	}
	return guard, minute, count, ok
}
