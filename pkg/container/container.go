// Package container defines the error taxonomy and the common
// interfaces implemented by the capacity-managed containers.
package container

import "errors"

// ErrUnderflow is returned when a read or removal is attempted
// on an empty container.
var ErrUnderflow = errors.New("underflow: container is empty")

// ErrIndexOutOfRange is returned on positional access outside
// the valid index range.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrKeyNotFound is returned when a key is absent and
// no default value was supplied.
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidArgument is returned on malformed input
// to a bulk operation.
var ErrInvalidArgument = errors.New("invalid argument")

// Container is implemented by every collection type.
type Container interface {
	Len() int
	Capacity() int
	Reset()
}

// Sequence is the contract of ordered, 0-indexed,
// duplicates-allowed collections.
type Sequence[T any] interface {
	Container
	Get(index int) (T, error)
	Set(index int, value T) error
	Push(values ...T)
	Pop() (T, error)
	Unshift(values ...T)
	Shift() (T, error)
	ToSlice() []T
}

// Mapper is the contract of keyed collections.
type Mapper[K comparable, V any] interface {
	Container
	Put(K, V)
	Get(K) (V, error)
	Has(K) bool
	Remove(K) (V, error)
	Visit(func(K, V) (stop bool))
}
