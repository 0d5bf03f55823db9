// Package deque provides a double-ended sequence over a ring buffer.
// The buffer capacity is always a power of two (8 minimum), values
// wrap around modulo capacity, which makes pushes and pops at both
// ends O(1) amortized. Full rotations move the head offset only and
// never relocate values.
package deque

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/collections/pkg/capacity"
	"github.com/graph-guard/collections/pkg/container"
	"golang.org/x/exp/constraints"
)

// Deque is a 0-indexed, duplicates-allowed double-ended sequence.
type Deque[T any] struct {
	b    []T // len(b) is always a power of two
	head int
	size int
}

// New creates a new instance of Deque with at least the
// given capacity.
func New[T any](capacity int, values ...T) *Deque[T] {
	d := &Deque[T]{}
	d.Allocate(capacity)
	d.Push(values...)
	return d
}

// Len returns the number of stored values.
func (d *Deque[T]) Len() int { return d.size }

// Capacity returns the allocated ring buffer size.
// Always >= Len() and >= the structure minimum.
func (d *Deque[T]) Capacity() int { return len(d.b) }

// Reset removes all values retaining the allocated buffer.
func (d *Deque[T]) Reset() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.b[d.at(i)] = zero
	}
	d.head, d.size = 0, 0
}

// Allocate raises the capacity to hold at least n values.
// It never decreases the capacity.
func (d *Deque[T]) Allocate(n int) {
	if c := capacity.GrowPow2(n, capacity.MinPow2); c > len(d.b) {
		d.realloc(c)
	}
}

// Get returns the value at index.
// Returns container.ErrIndexOutOfRange if index is out of bounds.
func (d *Deque[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= d.size {
		return value, fmt.Errorf(
			"index %d of [0,%d): %w",
			index, d.size, container.ErrIndexOutOfRange,
		)
	}
	return d.b[d.at(index)], nil
}

// Set overwrites the value at index.
// Returns container.ErrIndexOutOfRange if index is out of bounds.
func (d *Deque[T]) Set(index int, value T) error {
	if index < 0 || index >= d.size {
		return fmt.Errorf(
			"index %d of [0,%d): %w",
			index, d.size, container.ErrIndexOutOfRange,
		)
	}
	d.b[d.at(index)] = value
	return nil
}

// First returns the value at the head.
// Returns container.ErrUnderflow if the deque is empty.
func (d *Deque[T]) First() (value T, err error) {
	if d.size < 1 {
		return value, container.ErrUnderflow
	}
	return d.b[d.head], nil
}

// Last returns the value at the tail.
// Returns container.ErrUnderflow if the deque is empty.
func (d *Deque[T]) Last() (value T, err error) {
	if d.size < 1 {
		return value, container.ErrUnderflow
	}
	return d.b[d.at(d.size-1)], nil
}

// Push appends values to the tail.
func (d *Deque[T]) Push(values ...T) {
	d.grow(d.size + len(values))
	for _, value := range values {
		d.b[d.at(d.size)] = value
		d.size++
	}
}

// Pop returns and removes the tail value.
// Returns container.ErrUnderflow if the deque is empty.
func (d *Deque[T]) Pop() (value T, err error) {
	if d.size < 1 {
		return value, container.ErrUnderflow
	}
	d.size--
	i := d.at(d.size)
	value = d.b[i]
	var zero T
	d.b[i] = zero
	d.shrink()
	return value, nil
}

// Unshift prepends values to the head keeping their order.
func (d *Deque[T]) Unshift(values ...T) {
	d.grow(d.size + len(values))
	for i := len(values) - 1; i >= 0; i-- {
		d.head = (d.head - 1) & (len(d.b) - 1)
		d.b[d.head] = values[i]
		d.size++
	}
}

// Shift returns and removes the head value.
// Returns container.ErrUnderflow if the deque is empty.
func (d *Deque[T]) Shift() (value T, err error) {
	if d.size < 1 {
		return value, container.ErrUnderflow
	}
	value = d.b[d.head]
	var zero T
	d.b[d.head] = zero
	d.head = (d.head + 1) & (len(d.b) - 1)
	d.size--
	d.shrink()
	return value, nil
}

// Insert inserts values at index shifting trailing values towards
// the tail. index == Len() appends. Returns
// container.ErrIndexOutOfRange if index is outside [0,Len()].
func (d *Deque[T]) Insert(index int, values ...T) error {
	if index < 0 || index > d.size {
		return fmt.Errorf(
			"index %d of [0,%d]: %w",
			index, d.size, container.ErrIndexOutOfRange,
		)
	}
	d.grow(d.size + len(values))
	d.size += len(values)
	for i := d.size - 1; i >= index+len(values); i-- {
		d.b[d.at(i)] = d.b[d.at(i-len(values))]
	}
	for i, value := range values {
		d.b[d.at(index+i)] = value
	}
	return nil
}

// Remove returns and removes the value at index shifting trailing
// values towards the head. Returns container.ErrIndexOutOfRange
// if index is out of bounds.
func (d *Deque[T]) Remove(index int) (value T, err error) {
	if index < 0 || index >= d.size {
		return value, fmt.Errorf(
			"index %d of [0,%d): %w",
			index, d.size, container.ErrIndexOutOfRange,
		)
	}
	value = d.b[d.at(index)]
	for i := index; i < d.size-1; i++ {
		d.b[d.at(i)] = d.b[d.at(i+1)]
	}
	d.size--
	var zero T
	d.b[d.at(d.size)] = zero
	d.shrink()
	return value, nil
}

// Rotate rotates the sequence left by n positions
// (negative n rotates right). Rotation by Len() is a no-op.
// When the ring is full only the head offset moves.
func (d *Deque[T]) Rotate(n int) {
	if d.size < 2 {
		return
	}
	r := n % d.size
	if r < 0 {
		r += d.size
	}
	if r == 0 {
		return
	}
	if d.size == len(d.b) {
		// Full ring: rotation is a head shift.
		d.head = d.at(r)
		return
	}
	for i := 0; i < r; i++ {
		v := d.b[d.head]
		var zero T
		d.b[d.head] = zero
		d.head = (d.head + 1) & (len(d.b) - 1)
		d.b[d.at(d.size-1)] = v
	}
}

// Sort reorders the values in place using cmp, which must return
// a negative, zero or positive number for less, equal and greater.
// The sort is stable.
func (d *Deque[T]) Sort(cmp func(a, b T) int) {
	d.linearize()
	sort.SliceStable(d.b[:d.size], func(i, j int) bool {
		return cmp(d.b[i], d.b[j]) < 0
	})
}

// Sorted returns a sorted copy leaving the receiver untouched.
func (d *Deque[T]) Sorted(cmp func(a, b T) int) *Deque[T] {
	c := d.Copy()
	c.Sort(cmp)
	return c
}

// Reverse reverses the sequence in place.
func (d *Deque[T]) Reverse() {
	for i, j := 0, d.size-1; i < j; i, j = i+1, j-1 {
		ii, jj := d.at(i), d.at(j)
		d.b[ii], d.b[jj] = d.b[jj], d.b[ii]
	}
}

// Reversed returns a reversed copy leaving the receiver untouched.
func (d *Deque[T]) Reversed() *Deque[T] {
	c := d.Copy()
	c.Reverse()
	return c
}

// Apply replaces every value with the result of fn.
func (d *Deque[T]) Apply(fn func(value T) T) {
	for i := 0; i < d.size; i++ {
		d.b[d.at(i)] = fn(d.b[d.at(i)])
	}
}

// Find returns the index of the first value satisfying fn
// or -1 if no value satisfies it.
func (d *Deque[T]) Find(fn func(value T) bool) int {
	for i := 0; i < d.size; i++ {
		if fn(d.b[d.at(i)]) {
			return i
		}
	}
	return -1
}

// Contains returns true if every given value is present.
// Values compare the way Equal compares them.
func (d *Deque[T]) Contains(values ...T) bool {
	for _, value := range values {
		if d.Find(func(held T) bool {
			return cmp.Equal(held, value)
		}) < 0 {
			return false
		}
	}
	return true
}

// Slice returns a new independent deque holding a sub-sequence.
// A negative offset addresses from the end. If length is omitted the
// slice extends to the end; a negative length stops that many values
// short of the end.
func (d *Deque[T]) Slice(offset int, length ...int) *Deque[T] {
	start, end := sliceBounds(d.size, offset, length...)
	s := New[T](end - start)
	for i := start; i < end; i++ {
		s.Push(d.b[d.at(i)])
	}
	return s
}

// Copy returns a structural copy. The ring buffer is duplicated
// while the contained values are shared by handle.
func (d *Deque[T]) Copy() *Deque[T] {
	c := &Deque[T]{
		b:    make([]T, len(d.b)),
		head: d.head,
		size: d.size,
	}
	copy(c.b, d.b)
	return c
}

// ToSlice returns the values as a new slice in index order.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		s[i] = d.b[d.at(i)]
	}
	return s
}

// Visit calls fn for every stored value in index order.
// Returns immediately if fn returns true.
func (d *Deque[T]) Visit(fn func(value T) (stop bool)) {
	for i := 0; i < d.size; i++ {
		if fn(d.b[d.at(i)]) {
			break
		}
	}
}

// Equal returns true if both deques hold equal values
// in equal order.
func (d *Deque[T]) Equal(other *Deque[T]) bool {
	return cmp.Equal(d.ToSlice(), other.ToSlice())
}

// MarshalJSON encodes the deque as a JSON array in index order.
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToSlice())
}

// UnmarshalJSON decodes a JSON array appending its
// values to the deque.
func (d *Deque[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding array: %w", err)
	}
	d.Push(s...)
	return nil
}

// at maps a logical index onto the ring buffer.
func (d *Deque[T]) at(i int) int {
	return (d.head + i) & (len(d.b) - 1)
}

func (d *Deque[T]) grow(required int) {
	if required <= len(d.b) {
		return
	}
	d.realloc(capacity.GrowPow2(required, capacity.MinPow2))
}

func (d *Deque[T]) shrink() {
	c := capacity.Shrink(d.size, len(d.b), capacity.MinPow2)
	if c == len(d.b) {
		return
	}
	d.realloc(c)
}

// realloc moves the values into a new buffer of capacity c
// linearizing them at head 0.
func (d *Deque[T]) realloc(c int) {
	b := make([]T, c)
	for i := 0; i < d.size; i++ {
		b[i] = d.b[d.at(i)]
	}
	d.b, d.head = b, 0
}

// linearize moves the head to offset 0 making the
// value range contiguous.
func (d *Deque[T]) linearize() {
	if d.head == 0 {
		return
	}
	d.realloc(len(d.b))
}

// SortOrdered sorts a deque of naturally ordered values ascending.
func SortOrdered[T constraints.Ordered](d *Deque[T]) {
	d.Sort(Natural[T]())
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
