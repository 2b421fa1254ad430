package mcp

import (
	"strings"
	"testing"
	"time"

	"tsreorg/internal/application/commands"
	"tsreorg/internal/domain"
)

func TestFormatPlan(t *testing.T) {
	result := &commands.PlanResult{
		Updates: []domain.FileUpdate{
			{Origin: "a.ts", Destination: "sub/a.ts", Moved: true, ContentChanged: true},
			{Origin: "b.ts", Destination: "b.ts", ContentChanged: true},
		},
		Moved:   1,
		Updated: 2,
		Message: "Would move 1 files and update imports in 2 files.",
	}

	got := formatPlan(result)

	for _, want := range []string{
		"move a.ts -> sub/a.ts",
		"update imports in b.ts",
		"Would move 1 files and update imports in 2 files.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestFormatPlan_Empty(t *testing.T) {
	result := &commands.PlanResult{Message: "Would move 0 files and update imports in 0 files."}

	if got := formatPlan(result); got != "Nothing to do." {
		t.Errorf("expected \"Nothing to do.\", got %q", got)
	}
}

func TestFormatRun(t *testing.T) {
	run := domain.RunRecord{
		StartedAt: time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC),
		Root:      "src",
		Moved:     3,
		Updated:   5,
	}

	got := formatRun(run)
	if !strings.Contains(got, "src") || !strings.Contains(got, "moved 3, updated 5") {
		t.Errorf("unexpected format: %q", got)
	}
}
