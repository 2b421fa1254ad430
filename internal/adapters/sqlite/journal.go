package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tsreorg/internal/domain"
	"tsreorg/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Journal implements ports.Journal using SQLite. Runs are recorded after the
// batch completes; an aborted run leaves no row.
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Ensure Journal implements ports.Journal
var _ ports.Journal = (*Journal)(nil)

// NewJournal creates a new SQLite journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal for the given source root
func (j *Journal) Open(rootPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(rootPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		rootPath = filepath.Join(home, rootPath[1:])
	}

	j.dbPath = filepath.Join(rootPath, ".tsreorg", "journal.db")

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(j.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", j.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	j.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			root TEXT NOT NULL,
			moved INTEGER NOT NULL,
			updated INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			moved INTEGER NOT NULL,
			PRIMARY KEY (run_id, origin)
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup journal: %w", err)
	}

	return nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// RecordRun stores a completed run and its per-file records in one transaction
func (j *Journal) RecordRun(run domain.RunRecord, updates []domain.FileUpdate) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO runs (started_at, root, moved, updated) VALUES (?, ?, ?, ?)`,
		run.StartedAt.Unix(), run.Root, run.Moved, run.Updated,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, u := range updates {
		moved := 0
		if u.Moved {
			moved = 1
		}
		_, err := tx.Exec(
			`INSERT INTO run_files (run_id, origin, destination, moved) VALUES (?, ?, ?, ?)`,
			runID, u.Origin, u.Destination, moved,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert run file %s: %w", u.Origin, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first
func (j *Journal) ListRuns(limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT id, started_at, root, moved, updated FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var run domain.RunRecord
		var startedAt int64
		if err := rows.Scan(&run.ID, &startedAt, &run.Root, &run.Moved, &run.Updated); err != nil {
			return nil, err
		}
		run.StartedAt = time.Unix(startedAt, 0)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
