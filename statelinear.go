package hashtables

type keyState[K comparable] struct {
	state State
	key   K
}

// StateLinear is a linear-probing table driven purely by slot states: it
// caches no hashes, so every filled slot on a probe path costs a key
// comparison and a rehash calls the hash function again for every entry.
// Keys and states share one array, values sit in a parallel one.
type StateLinear[K comparable, V any] struct {
	keys   []keyState[K]
	values []V

	size       int
	tombstones int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*StateLinear[int, int])(nil)

// Returns a new empty state-driven linear-probing table.
func NewStateLinear[K comparable, V any](opts ...Option[K]) *StateLinear[K, V] {
	var t StateLinear[K, V]
	t.init(opts...)

	return &t
}

func (t *StateLinear[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

func stateFree[K comparable](keys []keyState[K], h uint64) int {
	end := len(keys)
	start := int(h & uint64(end-1))

	for i := start; i < end; i++ {
		if keys[i].state != Filled {
			return i
		}
	}

	for i := 0; i < start; i++ {
		if keys[i].state != Filled {
			return i
		}
	}

	panic("hashtables: no free slot")
}

func (t *StateLinear[K, V]) Insert(key K, value V) {
	if overLoad(t.size, len(t.keys)) {
		t.Rehash(2 * len(t.keys))
	}

	i := stateFree(t.keys, t.hashFunc(key))
	if t.keys[i].state == Removed {
		t.tombstones--
	}

	t.keys[i] = keyState[K]{state: Filled, key: key}
	t.values[i] = value
	t.size++
}

func (t *StateLinear[K, V]) find(key K) int {
	end := len(t.keys)
	start := int(t.hashFunc(key) & uint64(end-1))

	for i := start; i < end; i++ {
		switch ks := &t.keys[i]; ks.state {
		case Empty:
			return -1
		case Filled:
			if ks.key == key {
				return i
			}
		}
	}

	for i := 0; i < start; i++ {
		switch ks := &t.keys[i]; ks.state {
		case Empty:
			return -1
		case Filled:
			if ks.key == key {
				return i
			}
		}
	}

	return -1
}

func (t *StateLinear[K, V]) Lookup(key K) *V {
	if i := t.find(key); i >= 0 {
		return &t.values[i]
	}

	return nil
}

func (t *StateLinear[K, V]) Remove(key K) bool {
	i := t.find(key)
	if i < 0 {
		return false
	}

	var zero V
	t.keys[i] = keyState[K]{state: Removed}
	t.values[i] = zero
	t.size--
	t.tombstones++

	return true
}

func (t *StateLinear[K, V]) Reserve(n int) {
	t.Rehash(reserveCapacity(n))
}

func (t *StateLinear[K, V]) Reset() {
	t.keys = make([]keyState[K], MinCapacity)
	t.values = make([]V, MinCapacity)
	t.size = 0
	t.tombstones = 0
}

func (t *StateLinear[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.keys) {
		return
	}

	keys := make([]keyState[K], capacity)
	values := make([]V, capacity)

	for i := range t.keys {
		ks := &t.keys[i]
		if ks.state != Filled {
			continue
		}

		j := stateFree(keys, t.hashFunc(ks.key))
		keys[j] = *ks
		values[j] = t.values[i]
	}

	t.keys = keys
	t.values = values
	t.tombstones = 0
}

func (t *StateLinear[K, V]) Len() int {
	return t.size
}

func (t *StateLinear[K, V]) Cap() int {
	return len(t.keys)
}

func (t *StateLinear[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.keys))
	s.Tombstones = t.tombstones
	s.TombstonesCapacityRatio = float32(t.tombstones) / float32(len(t.keys))
	s.Bytes = sliceBytes(t.keys) + sliceBytes(t.values)

	return s
}
