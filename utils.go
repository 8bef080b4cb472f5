package hashtables

import (
	"math/bits"
	"unsafe"
)

// MinCapacity is the slot count of a freshly created or reset table.
const MinCapacity = 16

// Largest capacity an int32 link can address.
const maxCapacity = 1 << 30

// Returns the next power of 2 for the given value `v`.
// NextPowerOf2(0) and NextPowerOf2(1) are both 1.
func NextPowerOf2(v int) int {
	if v <= 1 {
		return 1
	}

	return 1 << min(bits.Len64(uint64(v-1)), 62)
}

// Normalizes a requested capacity: at least n and the live count, at least
// MinCapacity, rounded up to a power of 2.
func targetCapacity(n, size int) int {
	c := NextPowerOf2(max(n, size, MinCapacity))
	if c > maxCapacity {
		panic("hashtables: capacity overflow")
	}

	return c
}

// Reserve size for open-addressing engines: room for n entries below the
// 2/3 load factor.
func reserveCapacity(n int) int {
	return NextPowerOf2((3*n + 1) / 2)
}

// Whether inserting one more entry into a table of `capacity` slots holding
// `size` entries would push the load factor over 2/3.
//
//go:inline
func overLoad(size, capacity int) bool {
	return 3*(size+1) > 2*capacity
}

// Size in bytes of a slice's backing array.
func sliceBytes[T any](s []T) uintptr {
	var zero T
	return uintptr(cap(s)) * unsafe.Sizeof(zero)
}
