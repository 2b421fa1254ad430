package views

import "testing"

func TestPaginator_CursorMovement(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	if p.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", p.Cursor())
	}
	if p.CursorUp() {
		t.Error("cursor should not move above 0")
	}

	for i := 0; i < 11; i++ {
		if !p.CursorDown() {
			t.Fatalf("cursor stuck at %d", p.Cursor())
		}
	}
	if p.Cursor() != 11 {
		t.Errorf("expected cursor 11, got %d", p.Cursor())
	}
	if p.CursorDown() {
		t.Error("cursor should not move past the last item")
	}
}

func TestPaginator_PageFollowsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	for i := 0; i < 7; i++ {
		p.CursorDown()
	}

	start, end := p.VisibleRange()
	if start != 5 || end != 10 {
		t.Errorf("expected range [5,10), got [%d,%d)", start, end)
	}
	if p.CurrentPage() != 2 {
		t.Errorf("expected page 2, got %d", p.CurrentPage())
	}
	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}
}

func TestPaginator_ShrinkingTotalClampsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)
	for i := 0; i < 11; i++ {
		p.CursorDown()
	}

	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("expected cursor clamped to 2, got %d", p.Cursor())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor 0 for empty list, got %d", p.Cursor())
	}
	if p.TotalPages() != 1 {
		t.Errorf("expected 1 page for empty list, got %d", p.TotalPages())
	}
}
