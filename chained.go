package hashtables

type chainNode[K comparable, V any] struct {
	next int32
	hash uint64

	key   K
	value V
}

// Chained is a separate-chaining table without inline storage: every bucket
// is just the head of a chain of nodes drawn from a node pool. Nodes cache
// their hash, so lookups reject most mismatches without comparing keys and
// rehashing never calls the hash function.
//
// The pool has as many nodes as there are buckets and the table only grows
// once the pool runs out, so chains may get arbitrarily long.
type Chained[K comparable, V any] struct {
	buckets []int32
	pool    []chainNode[K, V]

	freeHead int32
	size     int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*Chained[int, int])(nil)

// Returns a new empty chained table.
func NewChained[K comparable, V any](opts ...Option[K]) *Chained[K, V] {
	var t Chained[K, V]
	t.init(opts...)

	return &t
}

func (t *Chained[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

func (t *Chained[K, V]) Insert(key K, value V) {
	// Out of nodes
	if t.freeHead == nilLink {
		t.Rehash(2 * len(t.buckets))
	}

	idx := t.freeHead
	n := &t.pool[idx]
	t.freeHead = n.next

	h := t.hashFunc(key)
	head := &t.buckets[h&uint64(len(t.buckets)-1)]

	n.next = *head
	n.hash = h
	n.key = key
	n.value = value
	*head = idx

	t.size++
}

func (t *Chained[K, V]) Lookup(key K) *V {
	h := t.hashFunc(key)

	for idx := t.buckets[h&uint64(len(t.buckets)-1)]; idx != nilLink; {
		n := &t.pool[idx]
		if n.hash == h && n.key == key {
			return &n.value
		}

		idx = n.next
	}

	return nil
}

func (t *Chained[K, V]) Remove(key K) bool {
	h := t.hashFunc(key)
	link := &t.buckets[h&uint64(len(t.buckets)-1)]

	for *link != nilLink {
		idx := *link
		n := &t.pool[idx]

		if n.hash != h || n.key != key {
			link = &n.next
			continue
		}

		*link = n.next
		*n = chainNode[K, V]{next: t.freeHead}
		t.freeHead = idx
		t.size--

		return true
	}

	return false
}

func (t *Chained[K, V]) Reserve(n int) {
	t.Rehash(NextPowerOf2(n))
}

func (t *Chained[K, V]) Reset() {
	t.buckets = make([]int32, MinCapacity)
	for i := range t.buckets {
		t.buckets[i] = nilLink
	}

	t.pool = make([]chainNode[K, V], MinCapacity)
	t.freeHead = threadPool(t.pool, 0)
	t.size = 0
}

// Links pool[from:] into a free list and returns its head.
func threadPool[K comparable, V any](pool []chainNode[K, V], from int) int32 {
	if from >= len(pool) {
		return nilLink
	}

	last := len(pool) - 1
	for i := from; i < last; i++ {
		pool[i].next = int32(i + 1)
	}
	pool[last].next = nilLink

	return int32(from)
}

func (t *Chained[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.buckets) {
		return
	}

	buckets := make([]int32, capacity)
	for i := range buckets {
		buckets[i] = nilLink
	}

	pool := make([]chainNode[K, V], capacity)
	mask := uint64(capacity - 1)

	// Live nodes are packed into the front of the new pool, so whatever is
	// left over forms the free list.
	used := 0
	for _, idx := range t.buckets {
		for idx != nilLink {
			n := &t.pool[idx]
			head := &buckets[n.hash&mask]

			pool[used] = chainNode[K, V]{
				next:  *head,
				hash:  n.hash,
				key:   n.key,
				value: n.value,
			}
			*head = int32(used)
			used++

			idx = n.next
		}
	}

	t.buckets = buckets
	t.pool = pool
	t.freeHead = threadPool(pool, used)
}

func (t *Chained[K, V]) Len() int {
	return t.size
}

func (t *Chained[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *Chained[K, V]) freeCount() int {
	n := 0
	for idx := t.freeHead; idx != nilLink; idx = t.pool[idx].next {
		n++
	}

	return n
}

func (t *Chained[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.buckets))
	s.PoolSize = len(t.pool)
	s.FreeNodes = t.freeCount()
	s.Bytes = sliceBytes(t.buckets) + sliceBytes(t.pool)

	return s
}
