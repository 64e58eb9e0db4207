package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/store"
)

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}

	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashFile(path); got != want {
		t.Errorf("HashFile = %s, want %s", got, want)
	}

	if got := HashFile(filepath.Join(t.TempDir(), "missing")); got != "hash_error" {
		t.Errorf("Expected hash_error for missing file, got %s", got)
	}
}

func TestRecord(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	path := filepath.Join(dir, "day_1.txt")
	if err := os.WriteFile(path, []byte("+1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	run := &models.Run{Day: 1, Part: 1, Answer: "1", Status: models.RunStatusUnchecked, InputPath: path}
	if err := NewRecorder(s).Record(run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := s.GetRun(run.ID)
	if err != nil || got == nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.InputHash != HashFile(path) || got.InputHash == "hash_error" {
		t.Errorf("Unexpected input hash %q", got.InputHash)
	}
}
