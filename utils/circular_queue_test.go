package utils

import "testing"

func TestCircularQueueDropsOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("expected 3 of 3 items, got %d of %d", q.Len(), q.Cap())
	}
	got := q.Slice()
	if got[0] != 3 || got[1] != 4 || got[2] != 5 {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if v, ok := q.Get(0); !ok || v != 3 {
		t.Fatalf("expected the oldest item to be 3, got %v", v)
	}
	if _, ok := q.Get(3); ok {
		t.Fatalf("expected an out of range index to fail")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	if err := q.Append(1); err == nil {
		t.Fatalf("expected appending to a zero-capacity queue to fail")
	}
	if len(q.Slice()) != 0 {
		t.Fatalf("expected no items")
	}
}
