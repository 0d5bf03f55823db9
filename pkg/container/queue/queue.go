// Package queue provides a FIFO queue as a thin facade over
// deque. No mechanism beyond delegation exists here.
//
// Iteration via Drain is destructive, matching the stack and
// priority queue facades.
package queue

import (
	"github.com/graph-guard/collections/pkg/container/deque"
)

// Queue is a FIFO queue.
type Queue[T any] struct {
	d *deque.Deque[T]
}

// New creates a new instance of Queue with at least the
// given capacity.
func New[T any](capacity int, values ...T) *Queue[T] {
	return &Queue[T]{d: deque.New(capacity, values...)}
}

// Len returns the number of stored values.
func (q *Queue[T]) Len() int { return q.d.Len() }

// Capacity returns the allocated ring buffer size.
func (q *Queue[T]) Capacity() int { return q.d.Capacity() }

// Reset removes all values retaining the allocated buffer.
func (q *Queue[T]) Reset() { q.d.Reset() }

// Allocate raises the capacity to hold at least n values.
// It never decreases the capacity.
func (q *Queue[T]) Allocate(n int) { q.d.Allocate(n) }

// Push appends values to the back of the queue.
func (q *Queue[T]) Push(values ...T) { q.d.Push(values...) }

// Pop returns and removes the front value.
// Returns container.ErrUnderflow if the queue is empty.
func (q *Queue[T]) Pop() (T, error) { return q.d.Shift() }

// Peek returns the front value without removing it.
// Returns container.ErrUnderflow if the queue is empty.
func (q *Queue[T]) Peek() (T, error) { return q.d.First() }

// Drain pops values until fn returns true or the queue is empty.
// Draining is destructive: values visited by fn are gone.
func (q *Queue[T]) Drain(fn func(value T) (stop bool)) {
	for q.d.Len() > 0 {
		value, _ := q.d.Shift()
		if fn(value) {
			break
		}
	}
}

// Copy returns a structural copy sharing the values by handle.
func (q *Queue[T]) Copy() *Queue[T] {
	return &Queue[T]{d: q.d.Copy()}
}

// ToSlice returns the values in pop order as a new slice.
func (q *Queue[T]) ToSlice() []T {
	return q.d.ToSlice()
}
