package hashtables

// Terminates a chain or the free list.
const nilLink int32 = -1

type keyLink[K comparable] struct {
	key  K
	next int32
}

// IndexChained is a separate-chaining table where links are indices into an
// arena rather than pointers. Keys and their links live in one arena, values
// in a parallel one; free arena entries are threaded through the same links.
//
// The arena always has as many entries as there are buckets. It grows in
// place: live entries keep their index across a rehash, only the bucket heads
// and the links are rebuilt.
type IndexChained[K comparable, V any] struct {
	buckets []int32
	links   []keyLink[K]
	values  []V

	nextFree int32
	size     int

	hashFunc HashFunc[K]
}

var _ Table[int, int] = (*IndexChained[int, int])(nil)

// Returns a new empty index-chained table.
func NewIndexChained[K comparable, V any](opts ...Option[K]) *IndexChained[K, V] {
	var t IndexChained[K, V]
	t.init(opts...)

	return &t
}

func (t *IndexChained[K, V]) init(opts ...Option[K]) {
	t.hashFunc = buildHashFunc(opts)
	t.Reset()
}

func (t *IndexChained[K, V]) bucketOf(key K, buckets []int32) *int32 {
	return &buckets[t.hashFunc(key)&uint64(len(buckets)-1)]
}

func (t *IndexChained[K, V]) Insert(key K, value V) {
	if t.nextFree == nilLink {
		t.Rehash(2 * len(t.buckets))
	}

	idx := t.nextFree
	kl := &t.links[idx]
	t.nextFree = kl.next

	head := t.bucketOf(key, t.buckets)
	kl.key = key
	kl.next = *head
	*head = idx

	t.values[idx] = value
	t.size++
}

func (t *IndexChained[K, V]) Lookup(key K) *V {
	for idx := *t.bucketOf(key, t.buckets); idx != nilLink; idx = t.links[idx].next {
		if t.links[idx].key == key {
			return &t.values[idx]
		}
	}

	return nil
}

func (t *IndexChained[K, V]) Remove(key K) bool {
	// link points at whichever index refers to the current entry: the bucket
	// head or the previous entry's next.
	for link := t.bucketOf(key, t.buckets); *link != nilLink; link = &t.links[*link].next {
		idx := *link
		kl := &t.links[idx]
		if kl.key != key {
			continue
		}

		*link = kl.next

		var (
			zeroK K
			zeroV V
		)
		kl.key = zeroK
		t.values[idx] = zeroV

		kl.next = t.nextFree
		t.nextFree = idx
		t.size--

		return true
	}

	return false
}

func (t *IndexChained[K, V]) Reserve(n int) {
	t.Rehash(NextPowerOf2(n))
}

func (t *IndexChained[K, V]) Reset() {
	t.buckets = make([]int32, MinCapacity)
	for i := range t.buckets {
		t.buckets[i] = nilLink
	}

	t.links = make([]keyLink[K], MinCapacity)
	t.values = make([]V, MinCapacity)
	t.threadFree(0, nilLink)
	t.size = 0
}

// Links arena entries [from:] into the free list, ahead of tail.
func (t *IndexChained[K, V]) threadFree(from int, tail int32) {
	last := len(t.links) - 1
	for i := from; i < last; i++ {
		t.links[i].next = int32(i + 1)
	}

	t.links[last].next = tail
	t.nextFree = int32(from)
}

func (t *IndexChained[K, V]) Rehash(minCapacity int) {
	oldCapacity := len(t.buckets)
	capacity := targetCapacity(minCapacity, t.size)
	if capacity <= oldCapacity {
		return
	}

	links := make([]keyLink[K], capacity)
	copy(links, t.links)
	values := make([]V, capacity)
	copy(values, t.values)
	t.links, t.values = links, values

	buckets := make([]int32, capacity)
	for i := range buckets {
		buckets[i] = nilLink
	}

	for _, idx := range t.buckets {
		for idx != nilLink {
			kl := &t.links[idx]
			next := kl.next

			head := t.bucketOf(kl.key, buckets)
			kl.next = *head
			*head = idx

			idx = next
		}
	}

	t.buckets = buckets
	t.threadFree(oldCapacity, t.nextFree)
}

func (t *IndexChained[K, V]) Len() int {
	return t.size
}

func (t *IndexChained[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *IndexChained[K, V]) freeCount() int {
	n := 0
	for idx := t.nextFree; idx != nilLink; idx = t.links[idx].next {
		n++
	}

	return n
}

func (t *IndexChained[K, V]) Stats() Stats {
	s := makeStats(t.size, len(t.buckets))
	s.PoolSize = len(t.links)
	s.FreeNodes = t.freeCount()
	s.Bytes = sliceBytes(t.buckets) + sliceBytes(t.links) + sliceBytes(t.values)

	return s
}
