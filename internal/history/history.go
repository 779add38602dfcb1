// Package history journals resolution runs and applied changes to a local
// SQLite database, so past fixes can be reviewed and audited.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mediatools/shottime/internal/timeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	root          TEXT NOT NULL,
	dry_run       INTEGER NOT NULL,
	started_at    TIMESTAMP NOT NULL,
	finished_at   TIMESTAMP,
	total         INTEGER NOT NULL DEFAULT 0,
	anchors       INTEGER NOT NULL DEFAULT 0,
	filled        INTEGER NOT NULL DEFAULT 0,
	skipped       INTEGER NOT NULL DEFAULT 0,
	exif_written  INTEGER NOT NULL DEFAULT 0,
	times_synced  INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS files (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    INTEGER NOT NULL REFERENCES runs(id),
	path      TEXT NOT NULL,
	old_mtime TIMESTAMP NOT NULL,
	target    TIMESTAMP NOT NULL,
	reason    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_files_run ON files(run_id);
`

// Run is one journaled resolution run.
type Run struct {
	ID         int64
	Root       string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt *time.Time
	Total      int
	Anchors    int
	Filled     int
	Skipped    int
	ExifWrites int
	TimeSyncs  int
}

// Store journals runs over a database/sql handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing handle. The caller owns schema creation.
// Used by tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun inserts a new run row and returns its ID.
func (s *Store) BeginRun(ctx context.Context, root string, dryRun bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (root, dry_run, started_at) VALUES (?, ?, ?)`,
		root, dryRun, time.Now())
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("begin run id: %w", err)
	}
	return id, nil
}

// RecordFile journals one applied file change.
func (s *Store) RecordFile(ctx context.Context, runID int64, path string, oldMtime, target time.Time, reason string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files (run_id, path, old_mtime, target, reason) VALUES (?, ?, ?, ?, ?)`,
		runID, path, oldMtime, target, reason)
	if err != nil {
		return fmt.Errorf("record file %s: %w", path, err)
	}
	return nil
}

// FinishRun closes out a run row with its final counters.
func (s *Store) FinishRun(ctx context.Context, runID int64, stats timeline.Stats, exifWrites, timeSyncs int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, total = ?, anchors = ?, filled = ?, skipped = ?,
			exif_written = ?, times_synced = ? WHERE id = ?`,
		time.Now(), stats.Total, stats.Anchors, stats.Filled, stats.Skipped,
		exifWrites, timeSyncs, runID)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, dry_run, started_at, finished_at, total, anchors, filled, skipped,
			exif_written, times_synced
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.Root, &r.DryRun, &r.StartedAt, &finished,
			&r.Total, &r.Anchors, &r.Filled, &r.Skipped, &r.ExifWrites, &r.TimeSyncs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
