// Package day04 reconstructs guard sleep records from a shift log.
package day04

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// TimeLayout is the timestamp layout inside the log's brackets.
const TimeLayout = "2006-01-02 15:04"

// Kind is the type of a log event.
type Kind int

const (
	ShiftBegins Kind = iota
	FallsAsleep
	WakesUp
)

func (k Kind) String() string {
	switch k {
	case ShiftBegins:
		return "begins shift"
	case FallsAsleep:
		return "falls asleep"
	case WakesUp:
		return "wakes up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one timestamped log entry. Guard is set only for ShiftBegins.
type Event struct {
	Time  time.Time
	Kind  Kind
	Guard int
}

func (e Event) String() string {
	if e.Kind == ShiftBegins {
		return fmt.Sprintf("[%s] Guard #%d begins shift", e.Time.Format(TimeLayout), e.Guard)
	}
	return fmt.Sprintf("[%s] %s", e.Time.Format(TimeLayout), e.Kind)
}

// Parser reads lines of the form "[YYYY-MM-DD HH:MM] <event text>".
type Parser struct {
	line  *regexp.Regexp
	shift *regexp.Regexp
}

// NewParser compiles the log patterns.
func NewParser() *Parser {
	return &Parser{
		line:  regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2})\] (.*)$`),
		shift: regexp.MustCompile(`^Guard #(\d+) begins shift$`),
	}
}

// Parse parses one log line.
func (p *Parser) Parse(line string) (Event, error) {
	m := p.line.FindStringSubmatch(line)
	if m == nil {
		return Event{}, fmt.Errorf("not a log entry")
	}
	ts, err := time.Parse(TimeLayout, m[1])
	if err != nil {
		return Event{}, fmt.Errorf("timestamp: %w", err)
	}

	switch text := m[2]; text {
	case "falls asleep":
		return Event{Time: ts, Kind: FallsAsleep}, nil
	case "wakes up":
		return Event{Time: ts, Kind: WakesUp}, nil
	default:
		sm := p.shift.FindStringSubmatch(text)
		if sm == nil {
			return Event{}, fmt.Errorf("unknown event %q", text)
		}
		id, err := strconv.Atoi(sm[1])
		if err != nil {
			return Event{}, fmt.Errorf("guard id: %w", err)
		}
		return Event{Time: ts, Kind: ShiftBegins, Guard: id}, nil
	}
}

// SortEvents orders events by timestamp, keeping the input order of equal timestamps.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
}
