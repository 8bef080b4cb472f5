package hashtables

// Builtin adapts Go's map to the Table contract. It is the timing baseline
// for the other engines, not an engine of its own: placement, hashing and
// growth are the runtime's, so hash options are ignored and Cap reports the
// last size hint rather than a real slot count.
//
// Values are boxed so Lookup can hand out a stable pointer. Unlike the other
// engines, inserting an existing key is a no-op: the first value is kept.
type Builtin[K comparable, V any] struct {
	m    map[K]*V
	hint int
}

var _ Table[int, int] = (*Builtin[int, int])(nil)

func NewBuiltin[K comparable, V any](_ ...Option[K]) *Builtin[K, V] {
	var t Builtin[K, V]
	t.Reset()

	return &t
}

func (t *Builtin[K, V]) Insert(key K, value V) {
	if _, ok := t.m[key]; ok {
		return
	}

	t.m[key] = &value
}

func (t *Builtin[K, V]) Lookup(key K) *V {
	return t.m[key]
}

func (t *Builtin[K, V]) Remove(key K) bool {
	if _, ok := t.m[key]; !ok {
		return false
	}

	delete(t.m, key)
	return true
}

func (t *Builtin[K, V]) Reserve(n int) {
	t.Rehash(n)
}

func (t *Builtin[K, V]) Reset() {
	t.m = make(map[K]*V, MinCapacity)
	t.hint = MinCapacity
}

// Rehash rebuilds the map with a larger size hint.
func (t *Builtin[K, V]) Rehash(minCapacity int) {
	capacity := targetCapacity(minCapacity, len(t.m))
	if capacity <= t.hint {
		return
	}

	m := make(map[K]*V, capacity)
	for k, v := range t.m {
		m[k] = v
	}

	t.m = m
	t.hint = capacity
}

func (t *Builtin[K, V]) Len() int {
	return len(t.m)
}

func (t *Builtin[K, V]) Cap() int {
	return max(t.hint, len(t.m))
}

func (t *Builtin[K, V]) Stats() Stats {
	return makeStats(len(t.m), t.Cap())
}
