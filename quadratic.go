package hashtables

// Quadratic is an open-addressing table probing by triangular numbers:
// the i-th probe from start is start + i*(i+1)/2. For a power-of-two
// capacity this visits every slot exactly once in the first Cap() probes,
// so a scan over Cap() probes is a full pass just like linear probing.
type Quadratic[K comparable, V any] struct {
	buckets []linearBucket[K, V]

	size       int
	tombstones int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*Quadratic[int, int])(nil)

// Returns a new empty quadratic-probing table.
func NewQuadratic[K comparable, V any](opts ...Option[K]) *Quadratic[K, V] {
	var t Quadratic[K, V]
	t.init(opts...)

	return &t
}

func (t *Quadratic[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

// QuadraticProbe returns the slot of the i-th probe from start in a table
// whose capacity is mask+1, a power of two.
//
//go:inline
func QuadraticProbe(start, i, mask int) int {
	return (start + (i+i*i)/2) & mask
}

func quadraticFree[K comparable, V any](buckets []linearBucket[K, V], h uint64) *linearBucket[K, V] {
	mask := len(buckets) - 1
	start := int(h & uint64(mask))

	for i := range len(buckets) {
		b := &buckets[QuadraticProbe(start, i, mask)]
		if b.state != Filled {
			return b
		}
	}

	panic("hashtables: no free bucket")
}

func (t *Quadratic[K, V]) Insert(key K, value V) {
	if overLoad(t.size, len(t.buckets)) {
		t.Rehash(2 * len(t.buckets))
	}

	h := t.hashFunc(key)
	b := quadraticFree(t.buckets, h)
	if b.state == Removed {
		t.tombstones--
	}

	*b = linearBucket[K, V]{hash: h, state: Filled, key: key, value: value}
	t.size++
}

func (t *Quadratic[K, V]) find(key K) *linearBucket[K, V] {
	h := t.hashFunc(key)
	mask := len(t.buckets) - 1
	start := int(h & uint64(mask))

	// Probe offsets grow by i each step: start, +1, +2, +3, ...
	for i, offset := 0, start; i <= mask; i++ {
		b := &t.buckets[offset]

		switch b.state {
		case Empty:
			return nil
		case Filled:
			if b.hash == h && b.key == key {
				return b
			}
		}

		offset = (offset + i + 1) & mask
	}

	return nil
}

func (t *Quadratic[K, V]) Lookup(key K) *V {
	if b := t.find(key); b != nil {
		return &b.value
	}

	return nil
}

func (t *Quadratic[K, V]) Remove(key K) bool {
	b := t.find(key)
	if b == nil {
		return false
	}

	// Mark as Removed to preserve the probe chain
	*b = linearBucket[K, V]{state: Removed}
	t.size--
	t.tombstones++

	return true
}

func (t *Quadratic[K, V]) Reserve(n int) {
	t.Rehash(reserveCapacity(n))
}

func (t *Quadratic[K, V]) Reset() {
	t.buckets = make([]linearBucket[K, V], MinCapacity)
	t.size = 0
	t.tombstones = 0
}

func (t *Quadratic[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.buckets) {
		return
	}

	buckets := make([]linearBucket[K, V], capacity)
	for i := range t.buckets {
		if b := &t.buckets[i]; b.state == Filled {
			*quadraticFree(buckets, b.hash) = *b
		}
	}

	t.buckets = buckets
	t.tombstones = 0
}

func (t *Quadratic[K, V]) Len() int {
	return t.size
}

func (t *Quadratic[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *Quadratic[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.buckets))
	s.Tombstones = t.tombstones
	s.TombstonesCapacityRatio = float32(t.tombstones) / float32(len(t.buckets))
	s.Bytes = sliceBytes(t.buckets)

	return s
}
