package hashtables

// ColumnLinear is a linear-probing table stored as a structure of arrays:
// slot metadata, keys and values are three independent arrays sharing one
// index. A lookup touches the key column only on a hash match and the value
// column only on a hit.
type ColumnLinear[K comparable, V any] struct {
	meta   []slotMeta
	keys   []K
	values []V

	size       int
	tombstones int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*ColumnLinear[int, int])(nil)

// Returns a new empty column-layout linear-probing table.
func NewColumnLinear[K comparable, V any](opts ...Option[K]) *ColumnLinear[K, V] {
	var t ColumnLinear[K, V]
	t.init(opts...)

	return &t
}

func (t *ColumnLinear[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

func (t *ColumnLinear[K, V]) Insert(key K, value V) {
	if overLoad(t.size, len(t.meta)) {
		t.Rehash(2 * len(t.meta))
	}

	h := t.hashFunc(key)
	i := metaFree(t.meta, h)
	if t.meta[i].state == Removed {
		t.tombstones--
	}

	t.meta[i] = slotMeta{hash: h, state: Filled}
	t.keys[i] = key
	t.values[i] = value
	t.size++
}

func (t *ColumnLinear[K, V]) find(key K) int {
	h := t.hashFunc(key)
	end := len(t.meta)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		switch m := t.meta[i]; m.state {
		case Empty:
			return -1
		case Filled:
			if m.hash == h && t.keys[i] == key {
				return i
			}
		}
	}

	for i := 0; i < start; i++ {
		switch m := t.meta[i]; m.state {
		case Empty:
			return -1
		case Filled:
			if m.hash == h && t.keys[i] == key {
				return i
			}
		}
	}

	return -1
}

func (t *ColumnLinear[K, V]) Lookup(key K) *V {
	if i := t.find(key); i >= 0 {
		return &t.values[i]
	}

	return nil
}

func (t *ColumnLinear[K, V]) Remove(key K) bool {
	i := t.find(key)
	if i < 0 {
		return false
	}

	var (
		zeroK K
		zeroV V
	)
	t.meta[i] = slotMeta{state: Removed}
	t.keys[i] = zeroK
	t.values[i] = zeroV
	t.size--
	t.tombstones++

	return true
}

func (t *ColumnLinear[K, V]) Reserve(n int) {
	t.Rehash(reserveCapacity(n))
}

func (t *ColumnLinear[K, V]) Reset() {
	t.meta = make([]slotMeta, MinCapacity)
	t.keys = make([]K, MinCapacity)
	t.values = make([]V, MinCapacity)
	t.size = 0
	t.tombstones = 0
}

func (t *ColumnLinear[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.meta) {
		return
	}

	meta := make([]slotMeta, capacity)
	keys := make([]K, capacity)
	values := make([]V, capacity)

	for i, m := range t.meta {
		if m.state != Filled {
			continue
		}

		j := metaFree(meta, m.hash)
		meta[j] = m
		keys[j] = t.keys[i]
		values[j] = t.values[i]
	}

	t.meta = meta
	t.keys = keys
	t.values = values
	t.tombstones = 0
}

func (t *ColumnLinear[K, V]) Len() int {
	return t.size
}

func (t *ColumnLinear[K, V]) Cap() int {
	return len(t.meta)
}

func (t *ColumnLinear[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.meta))
	s.Tombstones = t.tombstones
	s.TombstonesCapacityRatio = float32(t.tombstones) / float32(len(t.meta))
	s.Bytes = sliceBytes(t.meta) + sliceBytes(t.keys) + sliceBytes(t.values)

	return s
}
