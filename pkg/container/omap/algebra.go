package omap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Merge returns a new map holding the receiver's pairs in the
// receiver's order followed by the other map's novel pairs in the
// other's order. Values of duplicate keys are taken from other.
func (m *Map[K, V]) Merge(other *Map[K, V]) *Map[K, V] {
	r := m.Copy()
	other.VisitAll(func(key K, value V) {
		r.Put(key, value)
	})
	return r
}

// Union returns a new map holding the receiver's pairs in the
// receiver's order followed by the other map's novel pairs in the
// other's order. Values of duplicate keys are taken from the
// receiver.
func (m *Map[K, V]) Union(other *Map[K, V]) *Map[K, V] {
	r := m.Copy()
	other.VisitAll(func(key K, value V) {
		if !r.Has(key) {
			r.Put(key, value)
		}
	})
	return r
}

// Intersect returns a new map holding the receiver's pairs whose
// keys are also present in other, in the receiver's order.
func (m *Map[K, V]) Intersect(other *Map[K, V]) *Map[K, V] {
	r := New[K, V](0, m.hasher)
	m.VisitAll(func(key K, value V) {
		if other.Has(key) {
			r.Put(key, value)
		}
	})
	return r
}

// Diff returns a new map holding the receiver's pairs whose keys
// are absent in other, in the receiver's order.
func (m *Map[K, V]) Diff(other *Map[K, V]) *Map[K, V] {
	r := New[K, V](0, m.hasher)
	m.VisitAll(func(key K, value V) {
		if !other.Has(key) {
			r.Put(key, value)
		}
	})
	return r
}

// Xor returns a new map holding the pairs whose keys are present
// in exactly one of both maps: the receiver's in the receiver's
// order followed by the other's in the other's order.
func (m *Map[K, V]) Xor(other *Map[K, V]) *Map[K, V] {
	r := m.Diff(other)
	other.VisitAll(func(key K, value V) {
		if !m.Has(key) {
			r.Put(key, value)
		}
	})
	return r
}

// Sort reorders the pairs in place by value using cmp, which must
// return a negative, zero or positive number for less, equal and
// greater. The new order becomes the iteration order. The sort is
// stable.
func (m *Map[K, V]) Sort(cmp func(a, b V) int) {
	m.reorder(func(a, b *entry[K, V]) bool {
		return cmp(a.value, b.value) < 0
	})
}

// Sorted returns a copy sorted by value leaving the
// receiver untouched.
func (m *Map[K, V]) Sorted(cmp func(a, b V) int) *Map[K, V] {
	c := m.Copy()
	c.Sort(cmp)
	return c
}

// KSort reorders the pairs in place by key using cmp, which must
// return a negative, zero or positive number for less, equal and
// greater. The new order becomes the iteration order. The sort is
// stable.
func (m *Map[K, V]) KSort(cmp func(a, b K) int) {
	m.reorder(func(a, b *entry[K, V]) bool {
		return cmp(a.key, b.key) < 0
	})
}

// KSorted returns a copy sorted by key leaving the
// receiver untouched.
func (m *Map[K, V]) KSorted(cmp func(a, b K) int) *Map[K, V] {
	c := m.Copy()
	c.KSort(cmp)
	return c
}

// reorder rebuilds the order list following less.
// The hash buckets are untouched.
func (m *Map[K, V]) reorder(less func(a, b *entry[K, V]) bool) {
	if m.size < 2 {
		return
	}
	entries := make([]*entry[K, V], 0, m.size)
	for e := m.head; e != nil; e = e.next {
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
	m.head, m.tail = entries[0], entries[len(entries)-1]
	for i, e := range entries {
		if i == 0 {
			e.prev = nil
		} else {
			e.prev = entries[i-1]
		}
		if i == len(entries)-1 {
			e.next = nil
		} else {
			e.next = entries[i+1]
		}
	}
}

// SortOrdered sorts a map by the natural ordering of its values.
func SortOrdered[K comparable, V constraints.Ordered](m *Map[K, V]) {
	m.Sort(Natural[V]())
}

// KSortOrdered sorts a map by the natural ordering of its keys.
func KSortOrdered[K constraints.Ordered, V any](m *Map[K, V]) {
	m.KSort(Natural[K]())
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
