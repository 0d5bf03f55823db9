// Package stack provides a LIFO stack as a thin facade over
// vector. No mechanism beyond delegation exists here.
//
// Iteration via Drain is destructive, matching the queue and
// priority queue facades.
package stack

import (
	"github.com/graph-guard/collections/pkg/container/vector"
)

// Stack is a LIFO stack.
type Stack[T any] struct {
	v *vector.Vector[T]
}

// New creates a new instance of Stack with at least the
// given capacity.
func New[T any](capacity int, values ...T) *Stack[T] {
	return &Stack[T]{v: vector.New(capacity, values...)}
}

// Len returns the number of stored values.
func (s *Stack[T]) Len() int { return s.v.Len() }

// Capacity returns the allocated buffer size.
func (s *Stack[T]) Capacity() int { return s.v.Capacity() }

// Reset removes all values retaining the allocated buffer.
func (s *Stack[T]) Reset() { s.v.Reset() }

// Allocate raises the capacity to hold at least n values.
// It never decreases the capacity.
func (s *Stack[T]) Allocate(n int) { s.v.Allocate(n) }

// Push adds values on top of the stack.
func (s *Stack[T]) Push(values ...T) { s.v.Push(values...) }

// Pop returns and removes the top value.
// Returns container.ErrUnderflow if the stack is empty.
func (s *Stack[T]) Pop() (T, error) { return s.v.Pop() }

// Peek returns the top value without removing it.
// Returns container.ErrUnderflow if the stack is empty.
func (s *Stack[T]) Peek() (T, error) { return s.v.Last() }

// Drain pops values until fn returns true or the stack is empty.
// Draining is destructive: values visited by fn are gone.
func (s *Stack[T]) Drain(fn func(value T) (stop bool)) {
	for s.v.Len() > 0 {
		value, _ := s.v.Pop()
		if fn(value) {
			break
		}
	}
}

// Copy returns a structural copy sharing the values by handle.
func (s *Stack[T]) Copy() *Stack[T] {
	return &Stack[T]{v: s.v.Copy()}
}

// ToSlice returns the values in pop order as a new slice.
func (s *Stack[T]) ToSlice() []T {
	return s.v.Reversed().ToSlice()
}
