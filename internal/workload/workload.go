// Package workload generates the deterministic key and value sequences the
// conformance checks and timings run on.
package workload

import (
	"math/rand/v2"
	"unsafe"
)

// Seeds used by the conformance driver and by the timings.
const (
	TestSeed   uint32 = 0xbeeff00d
	TimingSeed uint32 = 0xf002beef
	LookupSeed uint32 = 0xfaf4f00d
	RemoveSeed uint32 = 0xba28beef
)

// XorShift is Marsaglia's 32-bit xorshift generator (13, 17, 5).
// It must not be seeded with 0.
type XorShift struct {
	state uint32
}

var _ rand.Source = (*XorShift)(nil)

func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		panic("workload: xorshift seed must be non-zero")
	}

	return &XorShift{state: seed}
}

func (x *XorShift) Uint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s

	return s
}

// Uint64 joins two consecutive outputs, which makes XorShift usable as a
// math/rand/v2 source.
func (x *XorShift) Uint64() uint64 {
	hi := uint64(x.Uint32())
	return hi<<32 | uint64(x.Uint32())
}

// ShuffledKeys returns 0..n-1 in an order determined by seed. The keys are
// unique by construction.
func ShuffledKeys(n int, seed uint32) []uint32 {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(i)
	}

	r := rand.New(NewXorShift(seed))
	r.Shuffle(n, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// MissingKeys returns n keys guaranteed absent from ShuffledKeys(n, ...).
func MissingKeys(n int) []uint32 {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(n + i)
	}

	return keys
}

// SampleKeys draws count keys from offset..offset+n-1, with repeats. With
// offset 0 every key hits a table filled from ShuffledKeys(n, ...); with
// offset n every key misses.
func SampleKeys(count, n, offset int, seed uint32) []uint32 {
	rng := NewXorShift(seed)
	keys := make([]uint32, count)
	for i := range keys {
		keys[i] = uint32(offset) + rng.Uint32()%uint32(n)
	}

	return keys
}

// RandomValues draws n values from rng.
func RandomValues(n int, rng *XorShift) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		values[i] = rng.Uint32()
	}

	return values
}

// Payload types pad an 8-byte key to a nominal entry size: a uint64 key with
// a Payload32 value weighs 32 bytes, and so on.
type (
	Payload32  [32/8 - 1]uint64
	Payload128 [128/8 - 1]uint64
	Payload1K  [1024/8 - 1]uint64
	Payload4K  [4096/8 - 1]uint64
)

// EntrySize reports the in-memory size of a key plus a value.
func EntrySize[K, V any]() int {
	var (
		k K
		v V
	)

	return int(unsafe.Sizeof(k) + unsafe.Sizeof(v))
}
