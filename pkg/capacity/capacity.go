// Package capacity implements the buffer sizing policy shared by all
// capacity-managed containers. Two growth families exist: power-of-two
// growth used by the hash-indexed and ring-buffer structures, and
// factor growth used by Vector. Both families shrink by halving once
// the logical size falls below a quarter of the allocated capacity,
// which keeps wasted memory bounded at 4x without oscillating when
// pushes and pops alternate near a boundary.
package capacity

import (
	"github.com/graph-guard/collections/pkg/math"
)

const (
	// MinPow2 is the minimum capacity of pow2-grown structures
	// (Map, Set, Deque, PriorityQueue).
	MinPow2 = 8

	// MinVector is the minimum capacity of factor-grown structures.
	MinVector = 10

	// VectorFactor is the growth factor of factor-grown structures.
	VectorFactor = 1.5
)

// Pow2Ceil returns the smallest power of two greater than or equal to n.
// Returns 1 for n < 1.
func Pow2Ceil(n int) int {
	if n < 1 {
		return 1
	}
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}

// GrowPow2 returns the capacity a pow2-grown structure must allocate to
// hold required elements: the smallest power of two >= required,
// floored at min.
func GrowPow2(required, min int) int {
	return math.Max(Pow2Ceil(required), min)
}

// GrowFactor returns the capacity a factor-grown structure must
// allocate to hold required elements given its current capacity:
// max(required, floor(current*factor)), floored at min.
func GrowFactor(required, current int, factor float64, min int) int {
	next := int(float64(current) * factor)
	return math.Max(math.Max(required, next), min)
}

// Shrink returns the capacity a structure should keep after a removal:
// current halved while size < current/4, floored at min. Returns
// current unchanged when no shrinking is due.
func Shrink(size, current, min int) int {
	c := current
	for c > min && size < c/4 {
		c /= 2
	}
	return math.Max(c, min)
}
