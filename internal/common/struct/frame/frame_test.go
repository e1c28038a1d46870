package frame

import "testing"

func TestSlots(t *testing.T) {
	f := New(3, []any{"outer"})

	if f.Size() != 3 {
		t.Fatalf("expected 3 slots, got %d", f.Size())
	}

	if f.Get(2) != nil {
		t.Fatal("expected a fresh slot to be nil")
	}

	f.Set(2, int64(7))

	if f.Get(2) != int64(7) {
		t.Fatalf("expected 7, got %v", f.Get(2))
	}

	if f.Capture(0) != "outer" {
		t.Fatalf("expected captured value, got %v", f.Capture(0))
	}
}
