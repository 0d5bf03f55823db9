// Package pqueue provides an array-backed binary max-heap priority
// queue. Values of equal priority dequeue in insertion order, which
// a monotonic insertion stamp guarantees deterministically.
//
// Iteration via Drain is destructive: every step pops the
// next-highest-priority value and iterating to completion empties
// the queue. Use ToSlice for a non-destructive snapshot in
// drain order.
package pqueue

import (
	"github.com/graph-guard/collections/pkg/capacity"
	"github.com/graph-guard/collections/pkg/container"
)

type node[T any] struct {
	value    T
	priority int
	stamp    uint64
}

// Queue is a binary max-heap ordered by (priority, stamp).
type Queue[T any] struct {
	b     []node[T] // 0-indexed heap, len(b) is a power of two
	size  int
	stamp uint64
}

// New creates a new instance of Queue with at least the
// given capacity.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	q.Allocate(capacity)
	return q
}

// Len returns the number of stored values.
func (q *Queue[T]) Len() int { return q.size }

// Capacity returns the allocated heap buffer size.
// Always >= Len() and >= the structure minimum.
func (q *Queue[T]) Capacity() int { return len(q.b) }

// Reset removes all values retaining the allocated buffer.
// The insertion stamp counter restarts at zero.
func (q *Queue[T]) Reset() {
	var zero node[T]
	for i := 0; i < q.size; i++ {
		q.b[i] = zero
	}
	q.size, q.stamp = 0, 0
}

// Allocate raises the capacity to hold at least n values.
// It never decreases the capacity.
func (q *Queue[T]) Allocate(n int) {
	if c := capacity.GrowPow2(n, capacity.MinPow2); c > len(q.b) {
		b := make([]node[T], c)
		copy(b, q.b[:q.size])
		q.b = b
	}
}

// Push enqueues value with the given priority.
// Higher priorities dequeue first, equal priorities dequeue
// in insertion order.
func (q *Queue[T]) Push(value T, priority int) {
	if q.size+1 > len(q.b) {
		b := make(
			[]node[T], capacity.GrowPow2(q.size+1, capacity.MinPow2),
		)
		copy(b, q.b[:q.size])
		q.b = b
	}
	q.b[q.size] = node[T]{value: value, priority: priority, stamp: q.stamp}
	q.stamp++
	q.size++
	q.siftUp(q.size - 1)
}

// Pop returns and removes the highest-priority value.
// Returns container.ErrUnderflow if the queue is empty.
func (q *Queue[T]) Pop() (value T, err error) {
	if q.size < 1 {
		return value, container.ErrUnderflow
	}
	value = q.b[0].value
	q.size--
	q.b[0] = q.b[q.size]
	var zero node[T]
	q.b[q.size] = zero
	q.siftDown(0)
	q.shrink()
	return value, nil
}

// Peek returns the highest-priority value without removing it.
// Returns container.ErrUnderflow if the queue is empty.
func (q *Queue[T]) Peek() (value T, err error) {
	if q.size < 1 {
		return value, container.ErrUnderflow
	}
	return q.b[0].value, nil
}

// Drain pops values until fn returns true or the queue is empty.
// Draining is destructive: values visited by fn are gone.
func (q *Queue[T]) Drain(fn func(value T, priority int) (stop bool)) {
	for q.size > 0 {
		priority := q.b[0].priority
		value, _ := q.Pop()
		if fn(value, priority) {
			break
		}
	}
}

// Copy returns a structural copy. The heap buffer is duplicated
// while the contained values are shared by handle.
func (q *Queue[T]) Copy() *Queue[T] {
	c := &Queue[T]{
		b:     make([]node[T], len(q.b)),
		size:  q.size,
		stamp: q.stamp,
	}
	copy(c.b, q.b[:q.size])
	return c
}

// ToSlice returns the values in drain order as a new slice.
// The receiver is left untouched: the drain runs on a copy.
func (q *Queue[T]) ToSlice() []T {
	c := q.Copy()
	s := make([]T, 0, c.size)
	c.Drain(func(value T, _ int) (stop bool) {
		s = append(s, value)
		return false
	})
	return s
}

// compare ranks two heap nodes: priority descending, then
// insertion stamp ascending (the earlier stamp outranks).
func compare[T any](a, b node[T]) int {
	if a.priority != b.priority {
		if a.priority > b.priority {
			return 1
		}
		return -1
	}
	if b.stamp != a.stamp {
		if b.stamp > a.stamp {
			return 1
		}
		return -1
	}
	return 0
}

// siftUp restores the heap invariant upwards from i.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if compare(q.b[i], q.b[parent]) <= 0 {
			break
		}
		q.b[i], q.b[parent] = q.b[parent], q.b[i]
		i = parent
	}
}

// siftDown restores the heap invariant downwards from i.
// The right child wins over the left only if strictly greater.
func (q *Queue[T]) siftDown(i int) {
	for {
		c := 2*i + 1
		if c >= q.size {
			return
		}
		if r := c + 1; r < q.size && compare(q.b[r], q.b[c]) > 0 {
			c = r
		}
		if compare(q.b[c], q.b[i]) <= 0 {
			return
		}
		q.b[i], q.b[c] = q.b[c], q.b[i]
		i = c
	}
}

func (q *Queue[T]) shrink() {
	c := capacity.Shrink(q.size, len(q.b), capacity.MinPow2)
	if c == len(q.b) {
		return
	}
	b := make([]node[T], c)
	copy(b, q.b[:q.size])
	q.b = b
}
