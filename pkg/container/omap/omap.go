// Package omap provides an insertion-ordered hash map. Lookups go
// through a separate-chaining hash table whose bucket array obeys the
// power-of-two capacity policy (8 minimum), iteration follows an
// intrusive doubly-linked list in insertion order. Re-putting an
// existing key updates its value in place without moving its
// position; removal is stable and leaves the remaining order intact.
package omap

import (
	"fmt"

	"github.com/graph-guard/collections/pkg/capacity"
	"github.com/graph-guard/collections/pkg/container"
)

// Pair is a key-value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type entry[K comparable, V any] struct {
	key   K
	value V
	hash  uint64

	// Insertion order list.
	prev, next *entry[K, V]

	// Chain within the hash bucket.
	chain *entry[K, V]
}

// Map is an insertion-ordered hash map.
// Every live entry is linked exactly once on the order list and
// exactly once in its bucket chain; mutations keep both in sync
// or fail before any state change.
type Map[K comparable, V any] struct {
	buckets    []*entry[K, V] // len is always a power of two
	head, tail *entry[K, V]
	size       int
	hasher     Hasher[K]
}

// New creates a new instance of Map with at least the given bucket
// capacity. If hasher is nil a default hasher is selected for K;
// key types without a default must either implement Hashable or
// provide an explicit hasher, otherwise New panics.
func New[K comparable, V any](capacity int, hasher Hasher[K]) *Map[K, V] {
	if hasher == nil {
		if hasher = defaultHasher[K](); hasher == nil {
			var zero K
			panic(fmt.Sprintf(
				"omap: no default hasher for key type %T", zero,
			))
		}
	}
	m := &Map[K, V]{hasher: hasher}
	m.Reset()
	m.Allocate(capacity)
	return m
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the allocated bucket array size.
// Always >= the structure minimum.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Reset removes all pairs shrinking the bucket array
// to the minimum.
func (m *Map[K, V]) Reset() {
	m.buckets = make([]*entry[K, V], capacity.MinPow2)
	m.head, m.tail, m.size = nil, nil, 0
}

// Allocate raises the bucket capacity to hold at least n pairs.
// It never decreases the capacity.
func (m *Map[K, V]) Allocate(n int) {
	if c := capacity.GrowPow2(n, capacity.MinPow2); c > len(m.buckets) {
		m.rehash(c)
	}
}

// Put associates key with value. An existing key is updated in
// place keeping its position in iteration order, a new key is
// appended at the tail.
func (m *Map[K, V]) Put(key K, value V) {
	hash := m.hasher.Hash(key)
	if e := m.lookup(hash, key); e != nil {
		e.value = value
		return
	}
	if m.size+1 > len(m.buckets) {
		m.rehash(capacity.GrowPow2(m.size+1, capacity.MinPow2))
	}
	e := &entry[K, V]{key: key, value: value, hash: hash}
	if m.tail == nil {
		m.head, m.tail = e, e
	} else {
		e.prev, m.tail.next, m.tail = m.tail, e, e
	}
	i := hash & uint64(len(m.buckets)-1)
	e.chain, m.buckets[i] = m.buckets[i], e
	m.size++
}

// Get returns the value associated with key.
// Returns container.ErrKeyNotFound if the key is absent.
func (m *Map[K, V]) Get(key K) (value V, err error) {
	e := m.lookup(m.hasher.Hash(key), key)
	if e == nil {
		return value, fmt.Errorf(
			"key %v: %w", key, container.ErrKeyNotFound,
		)
	}
	return e.value, nil
}

// GetOr returns the value associated with key or def if the key
// is absent. A zero-valued def is a legitimate default.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if e := m.lookup(m.hasher.Hash(key), key); e != nil {
		return e.value
	}
	return def
}

// GetFn calls fn with a pointer to the value associated with key
// and returns true, or returns false without calling fn if the
// key is absent. The pointer must not be retained.
func (m *Map[K, V]) GetFn(key K, fn func(*V)) bool {
	if e := m.lookup(m.hasher.Hash(key), key); e != nil {
		fn(&e.value)
		return true
	}
	return false
}

// Has returns true if key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.lookup(m.hasher.Hash(key), key) != nil
}

// Remove removes the pair associated with key and returns its
// value. The remaining iteration order is left intact.
// Returns container.ErrKeyNotFound if the key is absent.
func (m *Map[K, V]) Remove(key K) (value V, err error) {
	hash := m.hasher.Hash(key)
	e := m.unlink(hash, key)
	if e == nil {
		return value, fmt.Errorf(
			"key %v: %w", key, container.ErrKeyNotFound,
		)
	}
	return e.value, nil
}

// RemoveOr removes the pair associated with key and returns its
// value, or returns def leaving the map untouched if the key is
// absent.
func (m *Map[K, V]) RemoveOr(key K, def V) V {
	if e := m.unlink(m.hasher.Hash(key), key); e != nil {
		return e.value
	}
	return def
}

// First returns the least recently inserted pair.
// Returns container.ErrUnderflow if the map is empty.
func (m *Map[K, V]) First() (Pair[K, V], error) {
	if m.head == nil {
		return Pair[K, V]{}, container.ErrUnderflow
	}
	return Pair[K, V]{m.head.key, m.head.value}, nil
}

// Last returns the most recently inserted pair.
// Returns container.ErrUnderflow if the map is empty.
func (m *Map[K, V]) Last() (Pair[K, V], error) {
	if m.tail == nil {
		return Pair[K, V]{}, container.ErrUnderflow
	}
	return Pair[K, V]{m.tail.key, m.tail.value}, nil
}

// Skip returns the pair at the given position in iteration order.
// Returns container.ErrUnderflow if the map is empty and
// container.ErrIndexOutOfRange if position is out of bounds.
func (m *Map[K, V]) Skip(position int) (Pair[K, V], error) {
	if m.size < 1 {
		return Pair[K, V]{}, container.ErrUnderflow
	}
	if position < 0 || position >= m.size {
		return Pair[K, V]{}, fmt.Errorf(
			"position %d of [0,%d): %w",
			position, m.size, container.ErrIndexOutOfRange,
		)
	}
	var e *entry[K, V]
	if position <= m.size/2 {
		e = m.head
		for i := 0; i < position; i++ {
			e = e.next
		}
	} else {
		e = m.tail
		for i := m.size - 1; i > position; i-- {
			e = e.prev
		}
	}
	return Pair[K, V]{e.key, e.value}, nil
}

// Apply replaces every value with the result of fn
// keeping the iteration order.
func (m *Map[K, V]) Apply(fn func(key K, value V) V) {
	for e := m.head; e != nil; e = e.next {
		e.value = fn(e.key, e.value)
	}
}

// Visit calls fn for every stored pair in iteration order.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for e := m.head; e != nil; e = e.next {
		if fn(e.key, e.value) {
			break
		}
	}
}

// VisitAll calls fn for every stored pair in iteration order.
func (m *Map[K, V]) VisitAll(fn func(key K, value V)) {
	for e := m.head; e != nil; e = e.next {
		fn(e.key, e.value)
	}
}

// Keys returns all keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for e := m.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns all values in iteration order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for e := m.head; e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Pairs returns copies of all pairs in iteration order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.size)
	for e := m.head; e != nil; e = e.next {
		pairs = append(pairs, Pair[K, V]{e.key, e.value})
	}
	return pairs
}

// Copy returns a structural copy. The order list and buckets are
// duplicated while keys and values are shared by handle.
func (m *Map[K, V]) Copy() *Map[K, V] {
	c := New[K, V](len(m.buckets), m.hasher)
	for e := m.head; e != nil; e = e.next {
		c.Put(e.key, e.value)
	}
	return c
}

// lookup returns the entry of key or nil. The key hash is computed
// once by the caller and passed down.
func (m *Map[K, V]) lookup(hash uint64, key K) *entry[K, V] {
	i := hash & uint64(len(m.buckets)-1)
	for e := m.buckets[i]; e != nil; e = e.chain {
		if e.hash == hash && keysEqual(e.key, key) {
			return e
		}
	}
	return nil
}

// unlink detaches the entry of key from both the bucket chain and
// the order list, then re-evaluates the shrink policy.
// Returns nil if the key is absent.
func (m *Map[K, V]) unlink(hash uint64, key K) *entry[K, V] {
	i := hash & uint64(len(m.buckets)-1)
	var prev *entry[K, V]
	for e := m.buckets[i]; e != nil; prev, e = e, e.chain {
		if e.hash != hash || !keysEqual(e.key, key) {
			continue
		}
		if prev == nil {
			m.buckets[i] = e.chain
		} else {
			prev.chain = e.chain
		}
		if e.prev == nil {
			m.head = e.next
		} else {
			e.prev.next = e.next
		}
		if e.next == nil {
			m.tail = e.prev
		} else {
			e.next.prev = e.prev
		}
		m.size--
		if c := capacity.Shrink(
			m.size, len(m.buckets), capacity.MinPow2,
		); c != len(m.buckets) {
			m.rehash(c)
		}
		return e
	}
	return nil
}

// rehash redistributes all entries over a new bucket array of
// capacity c. The order list is untouched.
func (m *Map[K, V]) rehash(c int) {
	buckets := make([]*entry[K, V], c)
	for e := m.head; e != nil; e = e.next {
		i := e.hash & uint64(c-1)
		e.chain, buckets[i] = buckets[i], e
	}
	m.buckets = buckets
}

// keysEqual compares two keys. Keys implementing the Equaler
// capability delegate to it, all others compare primitively.
func keysEqual[K comparable](a, b K) bool {
	if eq, ok := any(a).(Equaler[K]); ok {
		return eq.Equal(b)
	}
	return a == b
}
