package sqlite

import (
	"testing"
	"time"

	"tsreorg/internal/domain"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()

	j := NewJournal()
	if err := j.Open(t.TempDir()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	return j
}

func TestRecordRunAndListRuns(t *testing.T) {
	j := openTestJournal(t)

	run := domain.RunRecord{
		StartedAt: time.Unix(1700000000, 0),
		Root:      "src",
		Moved:     1,
		Updated:   2,
	}
	updates := []domain.FileUpdate{
		{Origin: "a.ts", Destination: "sub/a.ts", Moved: true},
		{Origin: "b.ts", Destination: "b.ts", ContentChanged: true},
	}

	if err := j.RecordRun(run, updates); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := j.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.Root != "src" || got.Moved != 1 || got.Updated != 2 {
		t.Errorf("unexpected run record: %+v", got)
	}
	if !got.StartedAt.Equal(run.StartedAt) {
		t.Errorf("expected start %v, got %v", run.StartedAt, got.StartedAt)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 3; i++ {
		run := domain.RunRecord{
			StartedAt: time.Unix(int64(1700000000+i), 0),
			Root:      "src",
			Moved:     i,
		}
		if err := j.RecordRun(run, nil); err != nil {
			t.Fatalf("RecordRun %d failed: %v", i, err)
		}
	}

	runs, err := j.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Moved != 2 || runs[1].Moved != 1 {
		t.Errorf("expected newest first, got %+v", runs)
	}
}

func TestListRuns_Empty(t *testing.T) {
	j := openTestJournal(t)

	runs, err := j.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
