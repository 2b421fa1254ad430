package commands

import (
	"context"
	"errors"
	"testing"

	"tsreorg/internal/application"
	"tsreorg/internal/domain"
)

func TestPlanCommand_Execute(t *testing.T) {
	repo := newFakeRepo(
		domain.SourceFile{Path: "a.ts", Content: `import { b } from "./b.js";`},
		domain.SourceFile{Path: "b.ts", Content: `import { a } from "./a.js";`},
	)
	plan := domain.MovePlan{"a.ts": "sub/a.ts"}

	cmd := NewPlanCommand(repo, plan)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Moved != 1 || result.Updated != 2 {
		t.Errorf("expected 1 move and 2 updates, got %d and %d", result.Moved, result.Updated)
	}

	// A dry run must not write anything.
	if len(repo.written) != 0 {
		t.Errorf("plan wrote files: %v", repo.written)
	}
}

func TestPlanCommand_EmptyPlan(t *testing.T) {
	repo := newFakeRepo(
		domain.SourceFile{Path: "a.ts", Content: `import { b } from "./b.js";`},
	)

	cmd := NewPlanCommand(repo, domain.MovePlan{})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Updated != 0 {
		t.Errorf("expected no updates for an empty plan, got %d", result.Updated)
	}
}

func TestPlanCommand_ListFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("permission denied")

	cmd := NewPlanCommand(repo, domain.MovePlan{"a.ts": "sub/a.ts"})
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPlanCommand_InvalidPlan(t *testing.T) {
	repo := newFakeRepo()

	cmd := NewPlanCommand(repo, domain.MovePlan{"/abs.ts": "sub/a.ts"})
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidPlan) {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
}
