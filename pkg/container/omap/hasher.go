package omap

import (
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

// Hasher computes bucket placement hashes for keys.
// Equal keys must hash identically.
type Hasher[K comparable] interface {
	Hash(K) uint64
}

// Hashable is the structural key capability. Key types
// implementing it hash through their own Hash method
// instead of a built-in hasher.
type Hashable interface {
	Hash() uint64
}

// Equaler is the structural equality capability. Key types
// implementing it compare through their own Equal method
// instead of primitive identity.
type Equaler[K any] interface {
	Equal(K) bool
}

// HasherFn adapts a plain function to the Hasher interface.
type HasherFn[K comparable] func(K) uint64

// Hash calls the adapted function.
func (f HasherFn[K]) Hash(k K) uint64 { return f(k) }

// HasherXXH3 hashes string keys with XXH3.
// Can be used to provide custom seeds during initialization.
type HasherXXH3[K ~string] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH3[K]) Hash(k K) uint64 {
	return xxh3.HashStringSeed(string(k), h.Seed)
}

// HasherXXH64 hashes string keys with XXH64.
// An alternative to XXH3 producing a stable, portable hash.
type HasherXXH64[K ~string] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *HasherXXH64[K]) Hash(k K) uint64 {
	return xxHash64.Checksum([]byte(k), h.Seed)
}

// defaultHasher selects the built-in hasher for K.
// Structural keys take precedence over primitive ones.
// Returns nil for key types without a built-in hasher.
func defaultHasher[K comparable]() Hasher[K] {
	var zero K
	if _, ok := any(zero).(Hashable); ok {
		return HasherFn[K](func(k K) uint64 {
			return any(k).(Hashable).Hash()
		})
	}
	switch any(zero).(type) {
	case string:
		return HasherFn[K](func(k K) uint64 {
			return xxh3.HashString(any(k).(string))
		})
	case int:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(int)))
		})
	case int8:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(int8)))
		})
	case int16:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(int16)))
		})
	case int32:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(int32)))
		})
	case int64:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(int64)))
		})
	case uint:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(uint)))
		})
	case uint8:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(uint8)))
		})
	case uint16:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(uint16)))
		})
	case uint32:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(uint32)))
		})
	case uint64:
		return HasherFn[K](func(k K) uint64 {
			return mix64(any(k).(uint64))
		})
	case uintptr:
		return HasherFn[K](func(k K) uint64 {
			return mix64(uint64(any(k).(uintptr)))
		})
	case bool:
		return HasherFn[K](func(k K) uint64 {
			if any(k).(bool) {
				return mix64(1)
			}
			return mix64(0)
		})
	}
	return nil
}

// mix64 is the splitmix64 finalizer spreading integer keys
// over the full 64-bit range.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
