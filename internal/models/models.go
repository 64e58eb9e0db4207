// Package models defines the core record types for advent.
package models

import "time"

// RunStatus represents the outcome of solving one part of one day.
type RunStatus string

const (
	RunStatusPass      RunStatus = "pass"
	RunStatusFail      RunStatus = "fail"
	RunStatusUnchecked RunStatus = "unchecked"
	RunStatusError     RunStatus = "error"
)

// Run is one recorded execution of one part of one day.
type Run struct {
	ID         string    `json:"id"`
	Day        int       `json:"day"`
	Part       int       `json:"part"`
	Answer     string    `json:"answer,omitempty"`
	Expected   string    `json:"expected,omitempty"`
	Status     RunStatus `json:"status"`
	InputPath  string    `json:"input_path"`
	InputHash  string    `json:"input_hash,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
}

// OK reports whether the run produced an acceptable answer.
func (r Run) OK() bool {
	return r.Status == RunStatusPass || r.Status == RunStatusUnchecked
}

// RunFilter narrows a run listing. Zero values mean no restriction.
type RunFilter struct {
	Day   int
	Part  int
	Limit int
}
