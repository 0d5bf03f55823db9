// Package vector provides a growable, index-addressable sequence
// backed by a contiguous buffer. The buffer grows by a factor of 1.5
// and halves once the logical size falls below a quarter of the
// allocated capacity (10 minimum).
package vector

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/collections/pkg/capacity"
	"github.com/graph-guard/collections/pkg/container"
	"github.com/graph-guard/collections/pkg/math"
	"golang.org/x/exp/constraints"
)

// Vector is a contiguous, 0-indexed, duplicates-allowed sequence.
type Vector[T any] struct {
	b    []T
	size int
}

// New creates a new instance of Vector with at least the
// given capacity.
func New[T any](capacity int, values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.Allocate(capacity)
	v.Push(values...)
	return v
}

// Len returns the number of stored values.
func (v *Vector[T]) Len() int { return v.size }

// Capacity returns the allocated buffer size.
// Always >= Len() and >= the structure minimum.
func (v *Vector[T]) Capacity() int { return len(v.b) }

// Reset removes all values retaining the allocated buffer.
func (v *Vector[T]) Reset() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.b[i] = zero
	}
	v.size = 0
}

// Allocate raises the capacity to hold at least n values
// (the structure minimum at least). It never decreases the capacity.
func (v *Vector[T]) Allocate(n int) {
	if n <= len(v.b) && len(v.b) >= capacity.MinVector {
		return
	}
	b := make([]T, capacity.GrowFactor(
		n, len(v.b), capacity.VectorFactor, capacity.MinVector,
	))
	copy(b, v.b[:v.size])
	v.b = b
}

// Get returns the value at index.
// Returns container.ErrIndexOutOfRange if index is out of bounds.
func (v *Vector[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= v.size {
		return value, fmt.Errorf(
			"index %d of [0,%d): %w",
			index, v.size, container.ErrIndexOutOfRange,
		)
	}
	return v.b[index], nil
}

// Set overwrites the value at index.
// Returns container.ErrIndexOutOfRange if index is out of bounds.
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= v.size {
		return fmt.Errorf(
			"index %d of [0,%d): %w",
			index, v.size, container.ErrIndexOutOfRange,
		)
	}
	v.b[index] = value
	return nil
}

// First returns the value at index 0.
// Returns container.ErrUnderflow if the vector is empty.
func (v *Vector[T]) First() (value T, err error) {
	if v.size < 1 {
		return value, container.ErrUnderflow
	}
	return v.b[0], nil
}

// Last returns the value at the highest index.
// Returns container.ErrUnderflow if the vector is empty.
func (v *Vector[T]) Last() (value T, err error) {
	if v.size < 1 {
		return value, container.ErrUnderflow
	}
	return v.b[v.size-1], nil
}

// Push appends values to the tail.
func (v *Vector[T]) Push(values ...T) {
	v.grow(v.size + len(values))
	copy(v.b[v.size:], values)
	v.size += len(values)
}

// Pop returns and removes the tail value.
// Returns container.ErrUnderflow if the vector is empty.
func (v *Vector[T]) Pop() (value T, err error) {
	if v.size < 1 {
		return value, container.ErrUnderflow
	}
	v.size--
	value = v.b[v.size]
	var zero T
	v.b[v.size] = zero
	v.shrink()
	return value, nil
}

// Unshift prepends values to the head keeping their order.
func (v *Vector[T]) Unshift(values ...T) {
	v.grow(v.size + len(values))
	copy(v.b[len(values):], v.b[:v.size])
	copy(v.b, values)
	v.size += len(values)
}

// Shift returns and removes the head value.
// Returns container.ErrUnderflow if the vector is empty.
func (v *Vector[T]) Shift() (value T, err error) {
	if v.size < 1 {
		return value, container.ErrUnderflow
	}
	value = v.b[0]
	copy(v.b, v.b[1:v.size])
	v.size--
	var zero T
	v.b[v.size] = zero
	v.shrink()
	return value, nil
}

// Insert inserts values at index shifting trailing values right.
// index == Len() appends. Returns container.ErrIndexOutOfRange
// if index is outside [0,Len()].
func (v *Vector[T]) Insert(index int, values ...T) error {
	if index < 0 || index > v.size {
		return fmt.Errorf(
			"index %d of [0,%d]: %w",
			index, v.size, container.ErrIndexOutOfRange,
		)
	}
	v.grow(v.size + len(values))
	copy(v.b[index+len(values):], v.b[index:v.size])
	copy(v.b[index:], values)
	v.size += len(values)
	return nil
}

// Remove returns and removes the value at index shifting
// trailing values left. Returns container.ErrIndexOutOfRange
// if index is out of bounds.
func (v *Vector[T]) Remove(index int) (value T, err error) {
	if index < 0 || index >= v.size {
		return value, fmt.Errorf(
			"index %d of [0,%d): %w",
			index, v.size, container.ErrIndexOutOfRange,
		)
	}
	value = v.b[index]
	copy(v.b[index:], v.b[index+1:v.size])
	v.size--
	var zero T
	v.b[v.size] = zero
	v.shrink()
	return value, nil
}

// Rotate rotates the sequence left by n positions
// (negative n rotates right). Rotation by Len() is a no-op.
func (v *Vector[T]) Rotate(n int) {
	if v.size < 2 {
		return
	}
	r := normRotation(n, v.size)
	if r == 0 {
		return
	}
	reverse(v.b[:r])
	reverse(v.b[r:v.size])
	reverse(v.b[:v.size])
}

// Sort reorders the values in place using cmp, which must return
// a negative, zero or positive number for less, equal and greater.
// The sort is stable.
func (v *Vector[T]) Sort(cmp func(a, b T) int) {
	sort.SliceStable(v.b[:v.size], func(i, j int) bool {
		return cmp(v.b[i], v.b[j]) < 0
	})
}

// Sorted returns a sorted copy leaving the receiver untouched.
func (v *Vector[T]) Sorted(cmp func(a, b T) int) *Vector[T] {
	c := v.Copy()
	c.Sort(cmp)
	return c
}

// Reverse reverses the sequence in place.
func (v *Vector[T]) Reverse() { reverse(v.b[:v.size]) }

// Reversed returns a reversed copy leaving the receiver untouched.
func (v *Vector[T]) Reversed() *Vector[T] {
	c := v.Copy()
	c.Reverse()
	return c
}

// Apply replaces every value with the result of fn.
func (v *Vector[T]) Apply(fn func(value T) T) {
	for i := 0; i < v.size; i++ {
		v.b[i] = fn(v.b[i])
	}
}

// Find returns the index of the first value satisfying fn
// or -1 if no value satisfies it.
func (v *Vector[T]) Find(fn func(value T) bool) int {
	for i := 0; i < v.size; i++ {
		if fn(v.b[i]) {
			return i
		}
	}
	return -1
}

// Contains returns true if every given value is present.
// Values compare the way Equal compares them.
func (v *Vector[T]) Contains(values ...T) bool {
	for _, value := range values {
		if v.Find(func(held T) bool {
			return cmp.Equal(held, value)
		}) < 0 {
			return false
		}
	}
	return true
}

// Slice returns a new independent vector holding a sub-sequence.
// A negative offset addresses from the end. If length is omitted the
// slice extends to the end; a negative length stops that many values
// short of the end.
func (v *Vector[T]) Slice(offset int, length ...int) *Vector[T] {
	start, end := sliceBounds(v.size, offset, length...)
	s := New[T](end - start)
	s.Push(v.b[start:end]...)
	return s
}

// Copy returns a structural copy. The buffer is duplicated while
// the contained values are shared by handle.
func (v *Vector[T]) Copy() *Vector[T] {
	c := &Vector[T]{
		b:    make([]T, len(v.b)),
		size: v.size,
	}
	copy(c.b, v.b[:v.size])
	return c
}

// ToSlice returns the values as a new slice in index order.
func (v *Vector[T]) ToSlice() []T {
	s := make([]T, v.size)
	copy(s, v.b[:v.size])
	return s
}

// Visit calls fn for every stored value in index order.
// Returns immediately if fn returns true.
func (v *Vector[T]) Visit(fn func(value T) (stop bool)) {
	for i := 0; i < v.size; i++ {
		if fn(v.b[i]) {
			break
		}
	}
}

// Equal returns true if both vectors hold equal values
// in equal order.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return cmp.Equal(v.ToSlice(), other.ToSlice())
}

// MarshalJSON encodes the vector as a JSON array in index order.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToSlice())
}

// UnmarshalJSON decodes a JSON array appending its
// values to the vector.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding array: %w", err)
	}
	v.Push(s...)
	return nil
}

func (v *Vector[T]) grow(required int) {
	if required <= len(v.b) {
		return
	}
	b := make([]T, capacity.GrowFactor(
		required, len(v.b), capacity.VectorFactor, capacity.MinVector,
	))
	copy(b, v.b[:v.size])
	v.b = b
}

func (v *Vector[T]) shrink() {
	c := capacity.Shrink(v.size, len(v.b), capacity.MinVector)
	if c == len(v.b) {
		return
	}
	b := make([]T, c)
	copy(b, v.b[:v.size])
	v.b = b
}

// SortOrdered sorts a vector of naturally ordered values ascending.
func SortOrdered[T constraints.Ordered](v *Vector[T]) {
	v.Sort(Natural[T]())
}

// Natural returns a comparator following the natural
// ordering of T.
func Natural[T constraints.Ordered]() func(a, b T) int {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// normRotation maps any rotation amount into [0,size).
func normRotation(n, size int) int {
	if n >= 0 {
		return n % size
	}
	r := math.Abs(n) % size
	if r == 0 {
		return 0
	}
	return size - r
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// sliceBounds resolves offset/length following the slice contract
// into absolute [start,end) clamped to [0,size).
func sliceBounds(size, offset int, length ...int) (start, end int) {
	start = offset
	if start < 0 {
		start += size
	}
	if start < 0 {
		start = 0
	}
	if start > size {
		start = size
	}
	end = size
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = size + l
		} else {
			end = start + l
		}
	}
	if end > size {
		end = size
	}
	if end < start {
		end = start
	}
	return start, end
}
