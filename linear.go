package hashtables

type linearBucket[K comparable, V any] struct {
	hash  uint64
	state State

	key   K
	value V
}

// Linear is an open-addressing table with linear probing. Each bucket holds
// the cached hash, the slot state, the key and the value side by side.
type Linear[K comparable, V any] struct {
	buckets []linearBucket[K, V]

	size       int
	tombstones int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*Linear[int, int])(nil)

// Returns a new empty linear-probing table.
func NewLinear[K comparable, V any](opts ...Option[K]) *Linear[K, V] {
	var t Linear[K, V]
	t.init(opts...)

	return &t
}

func (t *Linear[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

// Finds the first non-filled bucket starting at the hash's home slot,
// wrapping around once.
func linearFree[K comparable, V any](buckets []linearBucket[K, V], h uint64) *linearBucket[K, V] {
	end := len(buckets)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		if buckets[i].state != Filled {
			return &buckets[i]
		}
	}

	for i := 0; i < start; i++ {
		if buckets[i].state != Filled {
			return &buckets[i]
		}
	}

	panic("hashtables: no free bucket")
}

func (t *Linear[K, V]) Insert(key K, value V) {
	if overLoad(t.size, len(t.buckets)) {
		t.Rehash(2 * len(t.buckets))
	}

	h := t.hashFunc(key)
	b := linearFree(t.buckets, h)
	if b.state == Removed {
		t.tombstones--
	}

	*b = linearBucket[K, V]{hash: h, state: Filled, key: key, value: value}
	t.size++
}

// Returns the index of the bucket holding key, or -1.
func (t *Linear[K, V]) find(key K) int {
	h := t.hashFunc(key)
	end := len(t.buckets)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		b := &t.buckets[i]
		switch b.state {
		case Empty:
			return -1
		case Filled:
			if b.hash == h && b.key == key {
				return i
			}
		}
	}

	for i := 0; i < start; i++ {
		b := &t.buckets[i]
		switch b.state {
		case Empty:
			return -1
		case Filled:
			if b.hash == h && b.key == key {
				return i
			}
		}
	}

	return -1
}

func (t *Linear[K, V]) Lookup(key K) *V {
	if i := t.find(key); i >= 0 {
		return &t.buckets[i].value
	}

	return nil
}

func (t *Linear[K, V]) Remove(key K) bool {
	i := t.find(key)
	if i < 0 {
		return false
	}

	t.buckets[i] = linearBucket[K, V]{state: Removed}
	t.size--
	t.tombstones++

	return true
}

func (t *Linear[K, V]) Reserve(n int) {
	t.Rehash(reserveCapacity(n))
}

func (t *Linear[K, V]) Reset() {
	t.buckets = make([]linearBucket[K, V], MinCapacity)
	t.size = 0
	t.tombstones = 0
}

func (t *Linear[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.buckets) {
		return
	}

	buckets := make([]linearBucket[K, V], capacity)
	for i := range t.buckets {
		if b := &t.buckets[i]; b.state == Filled {
			*linearFree(buckets, b.hash) = *b
		}
	}

	t.buckets = buckets
	t.tombstones = 0
}

func (t *Linear[K, V]) Len() int {
	return t.size
}

func (t *Linear[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *Linear[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.buckets))
	s.Tombstones = t.tombstones
	s.TombstonesCapacityRatio = float32(t.tombstones) / float32(len(t.buckets))
	s.Bytes = sliceBytes(t.buckets)

	return s
}
