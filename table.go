// Package hashtables is a set of hash table engines sharing one contract,
// each making a different trade-off between memory layout, collision
// resolution and growth policy.
//
// Chaining engines (IndexChained, Chained, InlineChained) hang colliding
// entries off a bucket in a linked list carved from an element arena and grow
// when the arena runs dry. Open-addressing engines (Linear, StateLinear,
// Quadratic, SplitLinear, ColumnLinear) keep entries in the slot array itself,
// mark removals with tombstones and grow before the load factor would pass 2/3.
//
// None of the engines deduplicate: Insert always adds a new entry, so
// inserting an existing key leaves both copies in the table. None of them are
// safe for concurrent use.
package hashtables

import "hash/maphash"

// Table is the contract every engine implements.
type Table[K comparable, V any] interface {
	// Insert adds a new entry for key, growing the table first if needed.
	// It never looks for an existing entry with the same key.
	Insert(key K, value V)

	// Lookup returns a pointer to the value stored for key, or nil.
	// The pointer is only valid until the next Insert, Rehash, Reserve or Reset.
	Lookup(key K) *V

	// Remove deletes the first entry for key found by the engine's scan.
	Remove(key K) bool

	// Reserve grows the table so that n entries fit without further growth.
	Reserve(n int)

	// Reset drops every entry and shrinks back to MinCapacity.
	Reset()

	// Rehash grows the table to at least minCapacity slots and re-places
	// every live entry. It never shrinks.
	Rehash(minCapacity int)

	Len() int
	Cap() int
	Stats() Stats
}

// State of an open-addressing slot.
type State uint8

const (
	// Ends a probe scan: the key can't be further along.
	Empty State = iota
	Filled
	// Tombstone: free for insertion, but scans continue past it.
	Removed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Removed:
		return "removed"
	}

	return "unknown"
}

type config[K comparable] struct {
	hashFunc HashFunc[K]
	seed     *maphash.Seed
}

type Option[K comparable] func(c *config[K])

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(c *config[K]) {
		c.hashFunc = f
	}
}

// Seed the default hash function, making placement reproducible across tables
// that share the seed.
func WithSeed[K comparable](seed maphash.Seed) Option[K] {
	return func(c *config[K]) {
		c.seed = &seed
	}
}

func buildHashFunc[K comparable](opts []Option[K]) HashFunc[K] {
	var c config[K]
	for _, opt := range opts {
		opt(&c)
	}

	if c.hashFunc != nil {
		return c.hashFunc
	}

	if c.seed != nil {
		return MakeDefaultHashFunc[K](*c.seed)
	}

	return MakeDefaultHashFunc[K](maphash.MakeSeed())
}
