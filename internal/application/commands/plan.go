package commands

import (
	"context"
	"fmt"

	"tsreorg/internal/application"
	"tsreorg/internal/domain"
	"tsreorg/internal/ports"
)

// PlanResult contains the computed batch for a dry run
type PlanResult struct {
	Updates []domain.FileUpdate
	Moved   int
	Updated int
	Message string
}

// PlanCommand computes which files would move and which imports would be
// rewritten, without touching the tree
type PlanCommand struct {
	repo ports.SourceRepository
	Plan domain.MovePlan
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(repo ports.SourceRepository, plan domain.MovePlan) *PlanCommand {
	return &PlanCommand{
		repo: repo,
		Plan: plan,
	}
}

// Validate checks the plan before computing anything
func (c *PlanCommand) Validate() error {
	return application.ValidatePlan(c.Plan)
}

// Execute runs the dry-run computation
func (c *PlanCommand) Execute(ctx context.Context) (*PlanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	files, err := c.repo.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to read source tree: %w", err)
	}

	updates, err := domain.ComputeUpdates(files, c.Plan)
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		Updates: updates,
		Moved:   len(c.Plan),
		Updated: len(updates),
		Message: fmt.Sprintf("Would move %d files and update imports in %d files.", len(c.Plan), len(updates)),
	}, nil
}
