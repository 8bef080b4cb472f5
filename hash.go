package hashtables

import "hash/maphash"

// HashFunc maps a key to a 64-bit digest. Every engine uses the full digest:
// the low bits pick the start slot, the rest are cached to reject mismatches
// without comparing keys.
type HashFunc[K comparable] func(K) uint64

// Returns a hash function over the key's value, seeded with seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
