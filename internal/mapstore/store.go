// Package mapstore persists the title-to-filename mapping of an export
// run as a SQLite manifest. The manifest is a write-only artifact: the
// in-memory filename manager stays the sole arbiter of uniqueness during
// the run, and nothing is read back into the naming pipeline.
package mapstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages manifest persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Mapping is one manifest row.
type Mapping struct {
	RunID    string
	Original string
	Filename string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const schema = `
CREATE TABLE IF NOT EXISTS mappings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	original TEXT NOT NULL,
	filename TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mappings_run ON mappings(run_id);
`

// Open initializes or connects to the manifest database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure manifest directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init manifest schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the manifest database location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun appends all mappings of one run in a single transaction.
func (s *Store) RecordRun(ctx context.Context, mappings []Mapping) error {
	if len(mappings) == 0 {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339)

	return s.withRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() {
			_ = tx.Rollback()
		}()

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO mappings (run_id, original, filename, created_at) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, m := range mappings {
			if _, err := stmt.ExecContext(ctx, m.RunID, m.Original, m.Filename, now); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

// RunMappings returns the rows recorded for a run, in insertion order.
func (s *Store) RunMappings(ctx context.Context, runID string) ([]Mapping, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, original, filename FROM mappings WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("query manifest: %w", err)
	}
	defer rows.Close()

	var out []Mapping
	for rows.Next() {
		var m Mapping
		if err := rows.Scan(&m.RunID, &m.Original, &m.Filename); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func (s *Store) withRetry(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
