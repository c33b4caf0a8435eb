package attrset

import (
	"math/bits"
	"strconv"
	"strings"
)

// Width is the fixed capacity of an AttrSet: the maximum number of
// attributes a global schema may carry. Wider schemas must be rejected at
// the loading boundary before any AttrSet is built.
const Width = 64

// AttrSet is a set of global-schema attribute positions, encoded as a
// bitmask. The zero value is the empty set. AttrSet is a plain value type:
// it is comparable with ==, usable as a map key, and every operation
// returns a new value.
type AttrSet uint64

// Single returns the set containing only attribute i.
// i must be in [0, Width); out-of-range positions yield the empty set.
func Single(i int) AttrSet {
	if i < 0 || i >= Width {
		return 0
	}
	return AttrSet(1) << uint(i)
}

// FromBits returns the set containing every listed attribute position.
// Out-of-range positions are ignored.
func FromBits(positions ...int) AttrSet {
	var a AttrSet
	for _, i := range positions {
		a |= Single(i)
	}
	return a
}

// Union returns a ∪ b.
func (a AttrSet) Union(b AttrSet) AttrSet { return a | b }

// Intersect returns a ∩ b.
func (a AttrSet) Intersect(b AttrSet) AttrSet { return a & b }

// SymDiff returns a ⊕ b, the symmetric difference. For disjoint operands
// this is the disjoint union, which is how the rewriting procedure uses it.
func (a AttrSet) SymDiff(b AttrSet) AttrSet { return a ^ b }

// Without returns a \ b.
func (a AttrSet) Without(b AttrSet) AttrSet { return a &^ b }

// Contains reports whether attribute position i belongs to a.
func (a AttrSet) Contains(i int) bool { return a&Single(i) != 0 }

// ContainsAll reports whether b ⊆ a.
func (a AttrSet) ContainsAll(b AttrSet) bool { return a&b == b }

// Disjoint reports whether a ∩ b = ∅.
func (a AttrSet) Disjoint(b AttrSet) bool { return a&b == 0 }

// IsEmpty reports whether a is the empty set.
func (a AttrSet) IsEmpty() bool { return a == 0 }

// Equal reports whether a and b contain exactly the same attributes.
func (a AttrSet) Equal(b AttrSet) bool { return a == b }

// Count returns |a|, the number of attributes in the set.
func (a AttrSet) Count() int { return bits.OnesCount64(uint64(a)) }

// Bits returns the attribute positions of a in ascending order.
func (a AttrSet) Bits() []int {
	out := make([]int, 0, a.Count())
	for v := uint64(a); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// Hash returns the canonical 64-bit identity of the set. The bitmask is
// already a perfect, stable encoding, so the value itself serves as hash.
func (a AttrSet) Hash() uint64 { return uint64(a) }

// String renders the set as the ascending list of its positions, e.g.
// "{0,2,5}". The empty set renders as "{}".
func (a AttrSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range a.Bits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	sb.WriteByte('}')
	return sb.String()
}
