package ordmap

import "github.com/google/btree"

// btreeDegree is the branching factor of the backing B-tree. The keyed
// collections in this module are small (tens of entries), so a modest
// degree keeps nodes compact.
const btreeDegree = 8

// entry is one key/value pair plus its ordering coordinates.
type entry[K, V any] struct {
	hash uint64 // canonical key hash: primary order
	seq  uint64 // insertion sequence: tie-break order
	key  K
	val  V
}

// Map is a deterministic ordered map. Entries iterate in ascending
// (hash, insertion-sequence) order. The zero value is not usable; call New.
type Map[K, V any] struct {
	hash func(K) uint64
	eq   func(K, K) bool
	tree *btree.BTreeG[entry[K, V]]
	seq  uint64
}

// New returns an empty Map ordered by the given canonical hash, with hash
// collisions resolved by eq and insertion order.
func New[K, V any](hash func(K) uint64, eq func(K, K) bool) *Map[K, V] {
	less := func(a, b entry[K, V]) bool {
		if a.hash != b.hash {
			return a.hash < b.hash
		}
		return a.seq < b.seq
	}
	return &Map[K, V]{
		hash: hash,
		eq:   eq,
		tree: btree.NewG(btreeDegree, less),
	}
}

// find locates the live entry for key k, if any.
func (m *Map[K, V]) find(k K) (entry[K, V], bool) {
	h := m.hash(k)
	var found entry[K, V]
	var ok bool
	m.tree.AscendGreaterOrEqual(entry[K, V]{hash: h}, func(e entry[K, V]) bool {
		if e.hash != h {
			return false
		}
		if m.eq(e.key, k) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.find(k)
	return ok
}

// Put stores v under k. An existing key keeps its iteration position; a
// new key is appended after all same-hash entries inserted earlier.
func (m *Map[K, V]) Put(k K, v V) {
	if e, ok := m.find(k); ok {
		e.val = v
		m.tree.ReplaceOrInsert(e)
		return
	}
	m.seq++
	m.tree.ReplaceOrInsert(entry[K, V]{hash: m.hash(k), seq: m.seq, key: k, val: v})
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	e, ok := m.find(k)
	if !ok {
		return false
	}
	m.tree.Delete(e)
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// First returns the entry that Ascend would visit first.
func (m *Map[K, V]) First() (K, V, bool) {
	e, ok := m.tree.Min()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return e.key, e.val, true
}

// Ascend visits every entry in (hash, insertion) order until fn returns
// false. fn must not mutate the map.
func (m *Map[K, V]) Ascend(fn func(k K, v V) bool) {
	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

// Keys returns all keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.Ascend(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Clone returns a copy sharing structure with m until either side is
// mutated (copy-on-write). Values are copied by assignment; callers that
// store pointer or slice values must replace them wholesale instead of
// mutating them in place, or the copies will alias.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		hash: m.hash,
		eq:   m.eq,
		tree: m.tree.Clone(),
		seq:  m.seq,
	}
}
