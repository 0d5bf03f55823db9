package deque_test

import (
	"encoding/json"
	"testing"

	"github.com/graph-guard/collections/pkg/container"
	"github.com/graph-guard/collections/pkg/container/deque"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	d := deque.New[int](0)
	require.Zero(t, d.Len())
	require.Equal(t, 8, d.Capacity())

	d.Push(1, 2, 3)
	Expect(t, d, []int{1, 2, 3})

	x, err := d.Pop()
	require.NoError(t, err)
	require.Equal(t, 3, x)
	Expect(t, d, []int{1, 2})

	d.Pop()
	d.Pop()
	_, err = d.Pop()
	require.ErrorIs(t, err, container.ErrUnderflow)
}

func TestUnshiftShift(t *testing.T) {
	d := deque.New(0, "c")
	d.Unshift("a", "b")
	Expect(t, d, []string{"a", "b", "c"})

	x, err := d.Shift()
	require.NoError(t, err)
	require.Equal(t, "a", x)
	Expect(t, d, []string{"b", "c"})

	d.Shift()
	d.Shift()
	_, err = d.Shift()
	require.ErrorIs(t, err, container.ErrUnderflow)
}

func TestWrapAround(t *testing.T) {
	d := deque.New[int](0)
	// Drive the head around the ring several times.
	for i := 0; i < 100; i++ {
		d.Push(i)
		d.Push(i + 1000)
		x, err := d.Shift()
		require.NoError(t, err)
		_ = x
	}
	require.Equal(t, 100, d.Len())
	require.GreaterOrEqual(t, d.Capacity(), d.Len())
}

func TestDequeSymmetry(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	before := d.ToSlice()
	d.Unshift(42)
	x, err := d.Shift()
	require.NoError(t, err)
	require.Equal(t, 42, x)
	require.Equal(t, before, d.ToSlice())
}

func TestGetSet(t *testing.T) {
	d := deque.New(0, 10, 20, 30)
	// Force a non-zero head offset.
	d.Unshift(5)
	Expect(t, d, []int{5, 10, 20, 30})

	x, err := d.Get(2)
	require.NoError(t, err)
	require.Equal(t, 20, x)

	_, err = d.Get(4)
	require.ErrorIs(t, err, container.ErrIndexOutOfRange)

	require.NoError(t, d.Set(0, 6))
	Expect(t, d, []int{6, 10, 20, 30})
	require.ErrorIs(t, d.Set(-1, 0), container.ErrIndexOutOfRange)
}

func TestFirstLast(t *testing.T) {
	d := deque.New[int](0)
	_, err := d.First()
	require.ErrorIs(t, err, container.ErrUnderflow)
	_, err = d.Last()
	require.ErrorIs(t, err, container.ErrUnderflow)

	d.Push(1, 2, 3)
	f, err := d.First()
	require.NoError(t, err)
	require.Equal(t, 1, f)
	l, err := d.Last()
	require.NoError(t, err)
	require.Equal(t, 3, l)
}

func TestInsertRemove(t *testing.T) {
	d := deque.New(0, 1, 4)
	require.NoError(t, d.Insert(1, 2, 3))
	Expect(t, d, []int{1, 2, 3, 4})

	require.NoError(t, d.Insert(4, 5))
	Expect(t, d, []int{1, 2, 3, 4, 5})

	require.ErrorIs(t, d.Insert(6, 0), container.ErrIndexOutOfRange)

	x, err := d.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 2, x)
	Expect(t, d, []int{1, 3, 4, 5})

	_, err = d.Remove(4)
	require.ErrorIs(t, err, container.ErrIndexOutOfRange)
}

func TestRotate(t *testing.T) {
	d := deque.New(0, 1, 2, 3, 4, 5)

	d.Rotate(2)
	Expect(t, d, []int{3, 4, 5, 1, 2})

	d.Rotate(-2)
	Expect(t, d, []int{1, 2, 3, 4, 5})

	d.Rotate(5)
	Expect(t, d, []int{1, 2, 3, 4, 5})
}

func TestRotateFullRing(t *testing.T) {
	d := deque.New[int](0)
	for i := 1; i <= 8; i++ {
		d.Push(i)
	}
	require.Equal(t, d.Len(), d.Capacity())

	d.Rotate(3)
	Expect(t, d, []int{4, 5, 6, 7, 8, 1, 2, 3})
	d.Rotate(-3)
	Expect(t, d, []int{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestRotateRoundTrip(t *testing.T) {
	for r := -13; r <= 13; r++ {
		d := deque.New(0, 1, 2, 3, 4, 5, 6, 7)
		d.Rotate(r)
		d.Rotate(-r)
		Expect(t, d, []int{1, 2, 3, 4, 5, 6, 7})
	}
}

func TestSort(t *testing.T) {
	d := deque.New(0, 3, 1, 2)
	d.Unshift(5) // non-zero head
	deque.SortOrdered(d)
	Expect(t, d, []int{1, 2, 3, 5})

	d.Sort(func(a, b int) int { return b - a })
	Expect(t, d, []int{5, 3, 2, 1})

	s := d.Sorted(deque.Natural[int]())
	Expect(t, d, []int{5, 3, 2, 1})
	Expect(t, s, []int{1, 2, 3, 5})
}

func TestReverse(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	d.Reverse()
	Expect(t, d, []int{3, 2, 1})

	r := d.Reversed()
	Expect(t, d, []int{3, 2, 1})
	Expect(t, r, []int{1, 2, 3})
}

func TestSlice(t *testing.T) {
	d := deque.New(0, 1, 2, 3, 4, 5)

	Expect(t, d.Slice(2), []int{3, 4, 5})
	Expect(t, d.Slice(1, 2), []int{2, 3})
	Expect(t, d.Slice(-2), []int{4, 5})
	Expect(t, d.Slice(1, -2), []int{2, 3})

	s := d.Slice(0)
	s.Set(0, 42)
	Expect(t, d, []int{1, 2, 3, 4, 5})
}

func TestApplyFind(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	d.Apply(func(x int) int { return x * 10 })
	Expect(t, d, []int{10, 20, 30})

	require.Equal(t, 2, d.Find(func(x int) bool { return x == 30 }))
	require.Equal(t, -1, d.Find(func(x int) bool { return x == 42 }))
}

func TestContains(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	require.True(t, d.Contains())
	require.True(t, d.Contains(2))
	require.True(t, d.Contains(3, 1))
	require.False(t, d.Contains(42))
	require.False(t, d.Contains(1, 42))

	// Values on a wrapped ring.
	_, err := d.Shift()
	require.NoError(t, err)
	d.Push(4, 5, 6, 7, 8, 9)
	require.True(t, d.Contains(9, 2))
	require.False(t, d.Contains(1))
}

func TestCopy(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	c := d.Copy()
	require.True(t, d.Equal(c))

	c.Push(4)
	Expect(t, d, []int{1, 2, 3})
	Expect(t, c, []int{1, 2, 3, 4})
	require.False(t, d.Equal(c))
}

func TestCapacity(t *testing.T) {
	d := deque.New[int](0)
	require.Equal(t, 8, d.Capacity())

	for i := 0; i < 100; i++ {
		d.Push(i)
		require.GreaterOrEqual(t, d.Capacity(), d.Len())
	}
	require.Equal(t, 128, d.Capacity())

	for i := 0; i < 100; i++ {
		_, err := d.Shift()
		require.NoError(t, err)
		require.GreaterOrEqual(t, d.Capacity(), d.Len())
		require.GreaterOrEqual(t, d.Capacity(), 8)
	}
	require.Equal(t, 8, d.Capacity())
}

func TestAllocate(t *testing.T) {
	d := deque.New[int](0)
	d.Allocate(100)
	require.Equal(t, 128, d.Capacity())
	d.Allocate(1)
	require.Equal(t, 128, d.Capacity())
}

func TestReset(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	d.Reset()
	require.Zero(t, d.Len())
	Expect(t, d, []int{})
}

func TestJSON(t *testing.T) {
	d := deque.New(0, 1, 2, 3)
	j, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `[1,2,3]`, string(j))

	u := deque.New[int](0)
	require.NoError(t, json.Unmarshal(j, u))
	Expect(t, u, []int{1, 2, 3})
}

func Expect[T any](t *testing.T, d *deque.Deque[T], values []T) {
	t.Helper()
	require.Equal(t, len(values), d.Len())
	var actual []T
	d.Visit(func(value T) (stop bool) {
		actual = append(actual, value)
		return false
	})
	if len(values) == 0 {
		require.Empty(t, actual)
		return
	}
	require.Equal(t, values, actual)
}
