package hashtables

// Hash and state of a slot, kept apart from the payload so probing only
// touches this small array.
type slotMeta struct {
	hash  uint64
	state State
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// SplitLinear is a linear-probing table with a data-oriented layout: hashes
// and slot states live in one array, keys and values in a second array
// indexed the same way. The payload is only read once the cached hash matches.
type SplitLinear[K comparable, V any] struct {
	meta []slotMeta
	kvs  []keyValue[K, V]

	size       int
	tombstones int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*SplitLinear[int, int])(nil)

// Returns a new empty split-layout linear-probing table.
func NewSplitLinear[K comparable, V any](opts ...Option[K]) *SplitLinear[K, V] {
	var t SplitLinear[K, V]
	t.init(opts...)

	return &t
}

func (t *SplitLinear[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

// Index of the first non-filled slot from the hash's home slot, wrapping
// around once.
func metaFree(meta []slotMeta, h uint64) int {
	end := len(meta)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		if meta[i].state != Filled {
			return i
		}
	}

	for i := 0; i < start; i++ {
		if meta[i].state != Filled {
			return i
		}
	}

	panic("hashtables: no free slot")
}

func (t *SplitLinear[K, V]) Insert(key K, value V) {
	if overLoad(t.size, len(t.meta)) {
		t.Rehash(2 * len(t.meta))
	}

	h := t.hashFunc(key)
	i := metaFree(t.meta, h)
	if t.meta[i].state == Removed {
		t.tombstones--
	}

	t.meta[i] = slotMeta{hash: h, state: Filled}
	t.kvs[i] = keyValue[K, V]{key: key, value: value}
	t.size++
}

func (t *SplitLinear[K, V]) find(key K) int {
	h := t.hashFunc(key)
	end := len(t.meta)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		switch m := t.meta[i]; m.state {
		case Empty:
			return -1
		case Filled:
			if m.hash == h && t.kvs[i].key == key {
				return i
			}
		}
	}

	for i := 0; i < start; i++ {
		switch m := t.meta[i]; m.state {
		case Empty:
			return -1
		case Filled:
			if m.hash == h && t.kvs[i].key == key {
				return i
			}
		}
	}

	return -1
}

func (t *SplitLinear[K, V]) Lookup(key K) *V {
	if i := t.find(key); i >= 0 {
		return &t.kvs[i].value
	}

	return nil
}

func (t *SplitLinear[K, V]) Remove(key K) bool {
	i := t.find(key)
	if i < 0 {
		return false
	}

	t.meta[i] = slotMeta{state: Removed}
	t.kvs[i] = keyValue[K, V]{}
	t.size--
	t.tombstones++

	return true
}

func (t *SplitLinear[K, V]) Reserve(n int) {
	t.Rehash(reserveCapacity(n))
}

func (t *SplitLinear[K, V]) Reset() {
	t.meta = make([]slotMeta, MinCapacity)
	t.kvs = make([]keyValue[K, V], MinCapacity)
	t.size = 0
	t.tombstones = 0
}

func (t *SplitLinear[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.meta) {
		return
	}

	meta := make([]slotMeta, capacity)
	kvs := make([]keyValue[K, V], capacity)

	for i, m := range t.meta {
		if m.state != Filled {
			continue
		}

		j := metaFree(meta, m.hash)
		meta[j] = m
		kvs[j] = t.kvs[i]
	}

	t.meta = meta
	t.kvs = kvs
	t.tombstones = 0
}

func (t *SplitLinear[K, V]) Len() int {
	return t.size
}

func (t *SplitLinear[K, V]) Cap() int {
	return len(t.meta)
}

func (t *SplitLinear[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.meta))
	s.Tombstones = t.tombstones
	s.TombstonesCapacityRatio = float32(t.tombstones) / float32(len(t.meta))
	s.Bytes = sliceBytes(t.meta) + sliceBytes(t.kvs)

	return s
}
