package generation

import (
	"reflect"
	"testing"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory[int](3)
	for i := 1; i <= 5; i++ {
		h.Push(i)
	}

	if h.Len() != 3 || h.Cap() != 3 {
		t.Fatalf("expected len 3 cap 3, got %d %d", h.Len(), h.Cap())
	}
	if got := h.Items(); !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if h.At(0) != 3 {
		t.Errorf("At(0) = %d, want 3", h.At(0))
	}
	if last, ok := h.Last(); !ok || last != 5 {
		t.Errorf("Last() = %d %v, want 5 true", last, ok)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory[string](2)
	if _, ok := h.Last(); ok {
		t.Fatalf("empty history should have no last entry")
	}
	if len(h.Items()) != 0 {
		t.Fatalf("empty history should have no items")
	}
}

func TestHistoryRetain(t *testing.T) {
	h := NewHistory[int](4)
	for i := 1; i <= 6; i++ {
		h.Push(i)
	}

	removed := h.Retain(func(v int) bool { return v%2 == 0 })
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if got := h.Items(); !reflect.DeepEqual(got, []int{4, 6}) {
		t.Fatalf("expected [4 6], got %v", got)
	}

	h.Push(7)
	h.Push(8)
	h.Push(9)
	if got := h.Items(); !reflect.DeepEqual(got, []int{6, 7, 8, 9}) {
		t.Fatalf("expected ring to keep working after retain, got %v", got)
	}
}
