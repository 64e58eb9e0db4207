package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fentz26/advent/internal/models"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordAndGetRun(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	run := &models.Run{
		Day:        3,
		Part:       1,
		Answer:     "4",
		Expected:   "4",
		Status:     models.RunStatusPass,
		InputPath:  "input/day_3.txt",
		InputHash:  "abc123",
		DurationMs: 12,
	}
	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if run.ID == "" {
		t.Error("Run ID should not be empty")
	}
	if run.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}

	got, err := s.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected run, got nil")
	}
	if got.Answer != "4" || got.Status != models.RunStatusPass || got.InputHash != "abc123" {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.Day != 3 || got.Part != 1 || got.DurationMs != 12 {
		t.Errorf("Unexpected day/part/duration: %+v", got)
	}

	missing, err := s.GetRun("does-not-exist")
	if err != nil {
		t.Fatalf("GetRun for missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", missing)
	}
}

func TestRecordRun_ErrorFields(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	run := &models.Run{
		Day:       4,
		Part:      2,
		Status:    models.RunStatusError,
		InputPath: "input/day_4.txt",
		Error:     "input file not accessible",
	}
	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	got, _ := s.GetRun(run.ID)
	if got.Error != "input file not accessible" {
		t.Errorf("Expected error message to round-trip, got %q", got.Error)
	}
	if got.Answer != "" {
		t.Errorf("Expected empty answer, got %q", got.Answer)
	}
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	base := time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC)
	for i, dp := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {1, 1}} {
		run := &models.Run{
			Day:       dp[0],
			Part:      dp[1],
			Status:    models.RunStatusUnchecked,
			InputPath: "x",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	all, err := s.ListRuns(models.RunFilter{})
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(all))
	}
	if !all[0].StartedAt.After(all[len(all)-1].StartedAt) {
		t.Error("Expected newest run first")
	}

	day1, _ := s.ListRuns(models.RunFilter{Day: 1})
	if len(day1) != 3 {
		t.Errorf("Expected 3 day-1 runs, got %d", len(day1))
	}

	day1part1, _ := s.ListRuns(models.RunFilter{Day: 1, Part: 1})
	if len(day1part1) != 2 {
		t.Errorf("Expected 2 day-1 part-1 runs, got %d", len(day1part1))
	}

	limited, _ := s.ListRuns(models.RunFilter{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestLatestRuns(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	base := time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC)
	record := func(day, part int, answer string, offset time.Duration) {
		t.Helper()
		run := &models.Run{
			Day: day, Part: part, Answer: answer,
			Status: models.RunStatusUnchecked, InputPath: "x",
			StartedAt: base.Add(offset),
		}
		if err := s.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}
	record(2, 1, "old", 0)
	record(2, 1, "new", time.Hour)
	record(1, 2, "only", time.Minute)

	latest, err := s.LatestRuns()
	if err != nil {
		t.Fatalf("LatestRuns failed: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("Expected 2 latest runs, got %d", len(latest))
	}
	if latest[0].Day != 1 || latest[0].Answer != "only" {
		t.Errorf("Unexpected first latest run: %+v", latest[0])
	}
	if latest[1].Day != 2 || latest[1].Answer != "new" {
		t.Errorf("Expected newest day-2 run, got %+v", latest[1])
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.Ping(ctx)
	if err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func newTestStore(t *testing.T) *Store {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}
