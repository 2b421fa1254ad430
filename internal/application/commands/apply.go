package commands

import (
	"context"
	"fmt"
	"time"

	"tsreorg/internal/application"
	"tsreorg/internal/domain"
	"tsreorg/internal/ports"
)

// MoveRecord describes one physical move performed by an apply run
type MoveRecord struct {
	Origin      string
	Destination string
}

// ApplyResult contains the outcome of a reorganization run
type ApplyResult struct {
	Moves   []MoveRecord
	Updated []domain.FileUpdate
	Message string
}

// ApplyCommand executes the four-phase batch: discover the source files,
// compute the rewritten imports, perform the history-preserving moves, and
// flush updated contents at their destinations.
//
// The first error aborts the run; moves and writes already applied stay
// applied. The tool is meant to run against a clean version-controlled tree
// where a failed run is reverted wholesale.
type ApplyCommand struct {
	repo    ports.SourceRepository
	mover   ports.Mover
	journal ports.Journal // nil disables run recording
	Plan    domain.MovePlan
}

// NewApplyCommand creates a new ApplyCommand
func NewApplyCommand(repo ports.SourceRepository, mover ports.Mover, journal ports.Journal, plan domain.MovePlan) *ApplyCommand {
	return &ApplyCommand{
		repo:    repo,
		mover:   mover,
		journal: journal,
		Plan:    plan,
	}
}

// Validate checks the plan before any side effect
func (c *ApplyCommand) Validate() error {
	return application.ValidatePlan(c.Plan)
}

// Execute runs the reorganization
func (c *ApplyCommand) Execute(ctx context.Context) (*ApplyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()

	files, err := c.repo.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to read source tree: %w", err)
	}

	updates, err := domain.ComputeUpdates(files, c.Plan)
	if err != nil {
		return nil, err
	}

	// Physical moves first, sorted by origin for stable log output. The
	// moves are independent of each other; rewritten contents land after.
	var moves []MoveRecord
	for _, origin := range c.Plan.Origins() {
		dest := c.Plan[origin]
		if err := c.mover.Move(origin, dest); err != nil {
			return nil, &application.MoveError{Origin: origin, Destination: dest, Err: err}
		}
		moves = append(moves, MoveRecord{Origin: origin, Destination: dest})
	}

	// Flush rewritten contents at their destination paths.
	for _, u := range updates {
		if err := c.repo.WriteFile(u.Destination, u.Content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", u.Destination, err)
		}
	}

	if c.journal != nil {
		run := domain.RunRecord{
			StartedAt: started,
			Root:      c.repo.Root(),
			Moved:     len(moves),
			Updated:   len(updates),
		}
		if err := c.journal.RecordRun(run, updates); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}

	return &ApplyResult{
		Moves:   moves,
		Updated: updates,
		Message: fmt.Sprintf("Moved %d files, updated imports in %d files.", len(moves), len(updates)),
	}, nil
}
