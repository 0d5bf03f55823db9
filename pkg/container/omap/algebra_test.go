package omap_test

import (
	"testing"

	"github.com/graph-guard/collections/pkg/container/omap"
	"github.com/stretchr/testify/require"
)

func newMap(pairs ...omap.Pair[string, int]) *omap.Map[string, int] {
	m := omap.New[string, int](0, nil)
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

func pair(k string, v int) omap.Pair[string, int] {
	return omap.Pair[string, int]{Key: k, Value: v}
}

func TestMerge(t *testing.T) {
	a := newMap(pair("a", 1), pair("b", 2))
	b := newMap(pair("b", 20), pair("c", 30))

	r := a.Merge(b)
	Expect(t, r, []string{"a", "b", "c"}, []int{1, 20, 30})

	// Receivers stay untouched.
	Expect(t, a, []string{"a", "b"}, []int{1, 2})
	Expect(t, b, []string{"b", "c"}, []int{20, 30})
}

func TestUnion(t *testing.T) {
	a := newMap(pair("a", 1), pair("b", 2))
	b := newMap(pair("b", 20), pair("c", 30))

	r := a.Union(b)
	Expect(t, r, []string{"a", "b", "c"}, []int{1, 2, 30})
}

func TestIntersect(t *testing.T) {
	a := newMap(pair("a", 1), pair("b", 2), pair("c", 3))
	b := newMap(pair("c", 30), pair("a", 10))

	r := a.Intersect(b)
	Expect(t, r, []string{"a", "c"}, []int{1, 3})
}

func TestDiff(t *testing.T) {
	a := newMap(pair("a", 1), pair("b", 2), pair("c", 3))
	b := newMap(pair("b", 0))

	r := a.Diff(b)
	Expect(t, r, []string{"a", "c"}, []int{1, 3})
}

func TestXor(t *testing.T) {
	a := newMap(pair("a", 1), pair("b", 2), pair("c", 3))
	b := newMap(pair("d", 40), pair("b", 20), pair("e", 50))

	r := a.Xor(b)
	Expect(t, r,
		[]string{"a", "c", "d", "e"},
		[]int{1, 3, 40, 50},
	)
}

func TestSortByValue(t *testing.T) {
	m := newMap(pair("a", 3), pair("b", 1), pair("c", 2))
	omap.SortOrdered(m)
	Expect(t, m, []string{"b", "c", "a"}, []int{1, 2, 3})

	// Lookups survive reordering.
	v, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 3, v)

	m.Sort(func(a, b int) int { return b - a })
	Expect(t, m, []string{"a", "c", "b"}, []int{3, 2, 1})
}

func TestKSort(t *testing.T) {
	m := newMap(pair("c", 3), pair("a", 1), pair("b", 2))
	omap.KSortOrdered(m)
	Expect(t, m, []string{"a", "b", "c"}, []int{1, 2, 3})
}

func TestSortedKSorted(t *testing.T) {
	m := newMap(pair("c", 3), pair("a", 1), pair("b", 2))

	s := m.Sorted(omap.Natural[int]())
	Expect(t, m, []string{"c", "a", "b"}, []int{3, 1, 2})
	Expect(t, s, []string{"a", "b", "c"}, []int{1, 2, 3})

	k := m.KSorted(omap.Natural[string]())
	Expect(t, m, []string{"c", "a", "b"}, []int{3, 1, 2})
	Expect(t, k, []string{"a", "b", "c"}, []int{1, 2, 3})
}

func TestSortStability(t *testing.T) {
	m := newMap(
		pair("a", 1), pair("b", 0), pair("c", 1), pair("d", 0),
	)
	omap.SortOrdered(m)
	Expect(t, m, []string{"b", "d", "a", "c"}, []int{0, 0, 1, 1})
}

func TestSortedMutationsAfterRemoval(t *testing.T) {
	m := newMap(pair("c", 3), pair("a", 1), pair("b", 2))
	omap.KSortOrdered(m)

	_, err := m.Remove("b")
	require.NoError(t, err)
	Expect(t, m, []string{"a", "c"}, []int{1, 3})

	m.Put("d", 4)
	Expect(t, m, []string{"a", "c", "d"}, []int{1, 3, 4})
}
