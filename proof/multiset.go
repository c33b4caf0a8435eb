package proof

import (
	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/ordmap"
)

// Multiset counts occurrences of keys. Counts are always positive: Dec
// deletes the key when its count reaches zero. Iteration is deterministic
// (canonical key-hash order, insertion tie-breaks).
type Multiset[K any] struct {
	m *ordmap.Map[K, int]
}

// NewMultiset returns an empty multiset over the given key identity.
func NewMultiset[K any](hash func(K) uint64, eq func(K, K) bool) *Multiset[K] {
	return &Multiset[K]{m: ordmap.New[K, int](hash, eq)}
}

// NewAttrsMultiset returns an empty multiset of attribute sets (Z).
func NewAttrsMultiset() *Multiset[attrset.AttrSet] {
	return NewMultiset(attrsHash, attrsEqual)
}

// NewMonoMultiset returns an empty multiset of monotonicities (D, M).
func NewMonoMultiset() *Multiset[Monotonicity] {
	return NewMultiset(monoHash, monoEqual)
}

// NewSubMultiset returns an empty multiset of submodularities (S).
func NewSubMultiset() *Multiset[Submodularity] {
	return NewMultiset(subHash, subEqual)
}

// Inc adds one occurrence of k.
func (ms *Multiset[K]) Inc(k K) {
	n, _ := ms.m.Get(k)
	ms.m.Put(k, n+1)
}

// Dec removes one occurrence of k, deleting the key at zero. Decrementing
// an absent key returns ErrCountUnderflow.
func (ms *Multiset[K]) Dec(k K) error {
	n, ok := ms.m.Get(k)
	if !ok {
		return ErrCountUnderflow
	}
	if n == 1 {
		ms.m.Delete(k)
		return nil
	}
	ms.m.Put(k, n-1)
	return nil
}

// Count returns the multiplicity of k (0 if absent).
func (ms *Multiset[K]) Count(k K) int {
	n, _ := ms.m.Get(k)
	return n
}

// Has reports whether k occurs at least once.
func (ms *Multiset[K]) Has(k K) bool { return ms.m.Has(k) }

// Len returns the number of distinct keys.
func (ms *Multiset[K]) Len() int { return ms.m.Len() }

// Total returns the sum of all multiplicities.
func (ms *Multiset[K]) Total() int {
	total := 0
	ms.m.Ascend(func(_ K, n int) bool {
		total += n
		return true
	})
	return total
}

// Each visits (key, count) pairs in deterministic order until fn returns
// false.
func (ms *Multiset[K]) Each(fn func(k K, count int) bool) {
	ms.m.Ascend(fn)
}

// Keys returns the distinct keys in deterministic order.
func (ms *Multiset[K]) Keys() []K { return ms.m.Keys() }

// Clone returns an independent copy-on-write copy.
func (ms *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{m: ms.m.Clone()}
}

// Diff returns the signed count difference o minus ms per key, for
// structural-diff assertions in tests: keys absent from the result are
// unchanged.
func (ms *Multiset[K]) Diff(o *Multiset[K]) map[string]int {
	out := make(map[string]int)
	ms.Each(func(k K, n int) bool {
		if d := o.Count(k) - n; d != 0 {
			out[keyString(k)] = d
		}
		return true
	})
	o.Each(func(k K, n int) bool {
		if !ms.Has(k) {
			out[keyString(k)] = n
		}
		return true
	})
	return out
}

// keyString renders a multiset key for diff reporting.
func keyString(k any) string {
	type stringer interface{ String() string }
	if s, ok := k.(stringer); ok {
		return s.String()
	}
	return "?"
}
