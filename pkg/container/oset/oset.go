// Package oset provides an insertion-ordered set as a thin
// projection of the omap key sequence. All lookup, ordering and
// capacity behavior delegates to omap.
package oset

import (
	"encoding/json"
	"fmt"

	"github.com/graph-guard/collections/pkg/container/omap"
)

// Set is an insertion-ordered set of unique values.
type Set[T comparable] struct {
	m *omap.Map[T, struct{}]
}

// New creates a new instance of Set with at least the given bucket
// capacity. If hasher is nil a default hasher is selected for T
// following the omap rules.
func New[T comparable](capacity int, hasher omap.Hasher[T], values ...T) *Set[T] {
	s := &Set[T]{m: omap.New[T, struct{}](capacity, hasher)}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of stored values.
func (s *Set[T]) Len() int { return s.m.Len() }

// Capacity returns the allocated bucket array size.
func (s *Set[T]) Capacity() int { return s.m.Capacity() }

// Reset removes all values shrinking the bucket array
// to the minimum.
func (s *Set[T]) Reset() { s.m.Reset() }

// Allocate raises the bucket capacity to hold at least n values.
// It never decreases the capacity.
func (s *Set[T]) Allocate(n int) { s.m.Allocate(n) }

// Add adds value to the set. Re-adding a present value
// keeps its position.
func (s *Set[T]) Add(value T) { s.m.Put(value, struct{}{}) }

// Has returns true if value is present.
func (s *Set[T]) Has(value T) bool { return s.m.Has(value) }

// Remove removes value. The remaining iteration order is left
// intact. Returns container.ErrKeyNotFound if the value is absent.
func (s *Set[T]) Remove(value T) error {
	_, err := s.m.Remove(value)
	return err
}

// First returns the least recently added value.
// Returns container.ErrUnderflow if the set is empty.
func (s *Set[T]) First() (T, error) {
	p, err := s.m.First()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Key, nil
}

// Last returns the most recently added value.
// Returns container.ErrUnderflow if the set is empty.
func (s *Set[T]) Last() (T, error) {
	p, err := s.m.Last()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Key, nil
}

// Skip returns the value at the given position in iteration order.
// Returns container.ErrUnderflow if the set is empty and
// container.ErrIndexOutOfRange if position is out of bounds.
func (s *Set[T]) Skip(position int) (T, error) {
	p, err := s.m.Skip(position)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Key, nil
}

// Visit calls fn for every stored value in iteration order.
// Returns immediately if fn returns true.
func (s *Set[T]) Visit(fn func(value T) (stop bool)) {
	s.m.Visit(func(key T, _ struct{}) bool {
		return fn(key)
	})
}

// ToSlice returns the values as a new slice in iteration order.
func (s *Set[T]) ToSlice() []T { return s.m.Keys() }

// Copy returns a structural copy sharing the values by handle.
func (s *Set[T]) Copy() *Set[T] {
	return &Set[T]{m: s.m.Copy()}
}

// Merge returns a new set holding the receiver's values in the
// receiver's order followed by the other set's novel values in the
// other's order. Alias of Union for sets.
func (s *Set[T]) Merge(other *Set[T]) *Set[T] {
	return s.Union(other)
}

// Union returns a new set holding the receiver's values in the
// receiver's order followed by the other set's novel values in the
// other's order.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	return &Set[T]{m: s.m.Union(other.m)}
}

// Intersect returns a new set holding the receiver's values also
// present in other, in the receiver's order.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	return &Set[T]{m: s.m.Intersect(other.m)}
}

// Diff returns a new set holding the receiver's values absent in
// other, in the receiver's order.
func (s *Set[T]) Diff(other *Set[T]) *Set[T] {
	return &Set[T]{m: s.m.Diff(other.m)}
}

// Xor returns a new set holding the values present in exactly one
// of both sets: the receiver's in the receiver's order followed by
// the other's in the other's order.
func (s *Set[T]) Xor(other *Set[T]) *Set[T] {
	return &Set[T]{m: s.m.Xor(other.m)}
}

// Sort reorders the values in place using cmp, which must return
// a negative, zero or positive number for less, equal and greater.
// The new order becomes the iteration order.
func (s *Set[T]) Sort(cmp func(a, b T) int) {
	s.m.KSort(cmp)
}

// Sorted returns a sorted copy leaving the receiver untouched.
func (s *Set[T]) Sorted(cmp func(a, b T) int) *Set[T] {
	c := s.Copy()
	c.Sort(cmp)
	return c
}

// MarshalJSON encodes the set as a JSON array in iteration order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// UnmarshalJSON decodes a JSON array adding its values to the set
// in document order.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decoding array: %w", err)
	}
	for _, v := range values {
		s.Add(v)
	}
	return nil
}
