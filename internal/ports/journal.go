package ports

import "tsreorg/internal/domain"

// Journal records completed reorganization runs.
type Journal interface {
	// Lifecycle
	Open(rootPath string) error
	Close() error

	// RecordRun stores a completed run and its per-file records.
	RecordRun(run domain.RunRecord, updates []domain.FileUpdate) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]domain.RunRecord, error)
}
