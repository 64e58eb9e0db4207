// Package audit records puzzle runs together with a digest of their input.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/store"
)

// Recorder writes run records for reproducibility checks.
type Recorder struct {
	store *store.Store
}

// NewRecorder creates a new run recorder.
func NewRecorder(s *store.Store) *Recorder {
	return &Recorder{store: s}
}

// Record stamps run with the digest of its input file and stores it.
func (r *Recorder) Record(run *models.Run) error {
	run.InputHash = HashFile(run.InputPath)
	return r.store.RecordRun(run)
}

// HashFile returns the hex SHA-256 of the file at path, or "hash_error" if
// it cannot be read.
func HashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "hash_error"
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "hash_error"
	}
	return hex.EncodeToString(h.Sum(nil))
}
