// Package store provides SQLite-backed run history for advent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fentz26/advent/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store provides access to the advent SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		answer TEXT,
		expected TEXT,
		status TEXT NOT NULL,
		input_path TEXT NOT NULL,
		input_hash TEXT,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		error TEXT,
		started_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

const runColumns = `id, day, part, answer, expected, status, input_path, input_hash, duration_ms, error, started_at`

// RecordRun inserts a run. An empty ID is replaced with a fresh UUID and a
// zero StartedAt with the current time.
func (s *Store) RecordRun(run *models.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	// Stored as text; ordering relies on a single zone.
	run.StartedAt = run.StartedAt.UTC()

	_, err := s.db.Exec(
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Day, run.Part, run.Answer, run.Expected, run.Status,
		run.InputPath, run.InputHash, run.DurationMs, run.Error, run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID. A missing run yields (nil, nil).
func (s *Store) GetRun(id string) (*models.Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	return run, nil
}

// ListRuns returns runs newest first, optionally filtered by day and part.
func (s *Store) ListRuns(filter models.RunFilter) ([]models.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	var (
		where []string
		args  []interface{}
	)
	if filter.Day > 0 {
		where = append(where, `day = ?`)
		args = append(args, filter.Day)
	}
	if filter.Part > 0 {
		where = append(where, `part = ?`)
		args = append(args, filter.Part)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY started_at DESC, rowid DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	return s.queryRuns(query, args...)
}

// LatestRuns returns the newest run of every recorded (day, part), ordered by day and part.
func (s *Store) LatestRuns() ([]models.Run, error) {
	return s.queryRuns(`
		SELECT ` + runColumns + ` FROM runs r
		WHERE r.rowid = (
			SELECT r2.rowid FROM runs r2
			WHERE r2.day = r.day AND r2.part = r.part
			ORDER BY r2.started_at DESC, r2.rowid DESC
			LIMIT 1
		)
		ORDER BY day, part`)
}

func (s *Store) queryRuns(query string, args ...interface{}) ([]models.Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(sc scanner) (*models.Run, error) {
	var (
		run                     models.Run
		answer, expected        sql.NullString
		inputHash, errorMessage sql.NullString
	)
	err := sc.Scan(&run.ID, &run.Day, &run.Part, &answer, &expected, &run.Status,
		&run.InputPath, &inputHash, &run.DurationMs, &errorMessage, &run.StartedAt)
	if err != nil {
		return nil, err
	}
	run.Answer = answer.String
	run.Expected = expected.String
	run.InputHash = inputHash.String
	run.Error = errorMessage.String
	return &run, nil
}
