package hashtables

type inlineBucket[K comparable, V any] struct {
	// Overflow chain; only non-empty while the bucket itself is filled.
	head   int32
	filled bool
	hash   uint64

	key   K
	value V
}

// InlineChained is a separate-chaining table that stores the first entry of
// each bucket inside the bucket, so a bucket with at most one entry costs no
// extra indirection. Further entries go to an overflow chain drawn from a
// node pool half the size of the bucket array.
//
// Lookups see the inline entry first: when a key is inserted twice, the
// older copy shadows the newer one until it is removed.
type InlineChained[K comparable, V any] struct {
	buckets []inlineBucket[K, V]
	pool    []chainNode[K, V]

	freeHead int32
	size     int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*InlineChained[int, int])(nil)

// Returns a new empty inline-chained table.
func NewInlineChained[K comparable, V any](opts ...Option[K]) *InlineChained[K, V] {
	var t InlineChained[K, V]
	t.init(opts...)

	return &t
}

func (t *InlineChained[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

func (t *InlineChained[K, V]) Insert(key K, value V) {
	h := t.hashFunc(key)
	b := &t.buckets[h&uint64(len(t.buckets)-1)]

	// The pool is only needed once the bucket is taken. Growing may move the
	// key to an empty bucket, in which case it goes inline after all.
	for b.filled && t.freeHead == nilLink {
		t.Rehash(2 * len(t.buckets))
		b = &t.buckets[h&uint64(len(t.buckets)-1)]
	}

	if !b.filled {
		b.filled = true
		b.hash = h
		b.key = key
		b.value = value
		t.size++

		return
	}

	idx := t.freeHead
	n := &t.pool[idx]
	t.freeHead = n.next

	n.next = b.head
	n.hash = h
	n.key = key
	n.value = value
	b.head = idx

	t.size++
}

func (t *InlineChained[K, V]) Lookup(key K) *V {
	h := t.hashFunc(key)
	b := &t.buckets[h&uint64(len(t.buckets)-1)]

	if !b.filled {
		return nil
	}

	if b.hash == h && b.key == key {
		return &b.value
	}

	for idx := b.head; idx != nilLink; {
		n := &t.pool[idx]
		if n.hash == h && n.key == key {
			return &n.value
		}

		idx = n.next
	}

	return nil
}

func (t *InlineChained[K, V]) Remove(key K) bool {
	h := t.hashFunc(key)
	b := &t.buckets[h&uint64(len(t.buckets)-1)]

	if !b.filled {
		return false
	}

	if b.hash == h && b.key == key {
		if b.head == nilLink {
			*b = inlineBucket[K, V]{head: nilLink}
		} else {
			// Promote the chain head so the bucket stays filled.
			idx := b.head
			n := &t.pool[idx]

			b.head = n.next
			b.hash = n.hash
			b.key = n.key
			b.value = n.value

			t.release(idx)
		}

		t.size--
		return true
	}

	for link := &b.head; *link != nilLink; {
		idx := *link
		n := &t.pool[idx]

		if n.hash == h && n.key == key {
			*link = n.next
			t.release(idx)
			t.size--

			return true
		}

		link = &n.next
	}

	return false
}

// Returns a pool node to the free list.
func (t *InlineChained[K, V]) release(idx int32) {
	t.pool[idx] = chainNode[K, V]{next: t.freeHead}
	t.freeHead = idx
}

func (t *InlineChained[K, V]) Reserve(n int) {
	t.Rehash(NextPowerOf2(n))
}

func (t *InlineChained[K, V]) Reset() {
	t.buckets = newInlineBuckets[K, V](MinCapacity)
	t.pool = make([]chainNode[K, V], MinCapacity/2)
	t.freeHead = threadPool(t.pool, 0)
	t.size = 0
}

func newInlineBuckets[K comparable, V any](capacity int) []inlineBucket[K, V] {
	buckets := make([]inlineBucket[K, V], capacity)
	for i := range buckets {
		buckets[i].head = nilLink
	}

	return buckets
}

func (t *InlineChained[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= len(t.buckets) {
		return
	}

	// Entries that collide in the new layout spill into a pool of only
	// capacity/2 nodes. If it overflows, start over twice as large; the old
	// storage is left untouched until a layout fits.
	for {
		if t.rebuild(capacity) {
			return
		}

		capacity *= 2
		if capacity > maxCapacity {
			panic("hashtables: capacity overflow")
		}
	}
}

func (t *InlineChained[K, V]) rebuild(capacity int) bool {
	var (
		buckets = newInlineBuckets[K, V](capacity)
		pool    = make([]chainNode[K, V], capacity/2)
		mask    = uint64(capacity - 1)
		used    = 0
	)

	place := func(h uint64, key K, value V) bool {
		nb := &buckets[h&mask]
		if !nb.filled {
			nb.filled = true
			nb.hash = h
			nb.key = key
			nb.value = value

			return true
		}

		if used == len(pool) {
			return false
		}

		pool[used] = chainNode[K, V]{next: nb.head, hash: h, key: key, value: value}
		nb.head = int32(used)
		used++

		return true
	}

	for i := range t.buckets {
		b := &t.buckets[i]
		if !b.filled {
			continue
		}

		if !place(b.hash, b.key, b.value) {
			return false
		}

		for idx := b.head; idx != nilLink; idx = t.pool[idx].next {
			n := &t.pool[idx]
			if !place(n.hash, n.key, n.value) {
				return false
			}
		}
	}

	t.buckets = buckets
	t.pool = pool
	t.freeHead = threadPool(pool, used)

	return true
}

func (t *InlineChained[K, V]) Len() int {
	return t.size
}

func (t *InlineChained[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *InlineChained[K, V]) freeCount() int {
	n := 0
	for idx := t.freeHead; idx != nilLink; idx = t.pool[idx].next {
		n++
	}

	return n
}

func (t *InlineChained[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.buckets))
	s.PoolSize = len(t.pool)
	s.FreeNodes = t.freeCount()
	s.Bytes = sliceBytes(t.buckets) + sliceBytes(t.pool)

	return s
}
