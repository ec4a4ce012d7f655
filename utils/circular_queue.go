package utils

import (
	"iter"

	"github.com/oomph-ac/pawn/oerror"
)

// CircularQueue holds the most recent items appended to it, up to a fixed capacity. Appending to a
// full queue drops the oldest item.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularQueue returns an empty queue holding up to capacity items.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, max(capacity, 0))}
}

// Append appends an item or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circular queue: append on zero-capacity queue")
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	return nil
}

// Get returns the item at logical position index, 0 being the oldest.
func (q *CircularQueue[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, false
	}
	return q.items[(q.head+index)%len(q.items)], true
}

// Iter yields the items from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Slice returns a copy of the items from oldest to newest.
func (q *CircularQueue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for item := range q.Iter() {
		out = append(out, item)
	}
	return out
}

// Len returns the amount of items held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum amount of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}
