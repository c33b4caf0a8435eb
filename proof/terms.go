package proof

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/vakumar1/panda/attrset"
)

// Monotonicity is the term (Y | X): the Shannon inequality
// h(X⊕Y) ≤ h(X) + h(Y|X) with h(Y|X) ≥ 0, over disjoint masks.
// The zero value is the degenerate (∅ | ∅). Comparable with ==.
type Monotonicity struct {
	Y, X attrset.AttrSet
}

// Mono builds the term (y | x).
func Mono(y, x attrset.AttrSet) Monotonicity { return Monotonicity{Y: y, X: x} }

// Unconditional builds the term (y | ∅), the demand to materialize a
// relation over y.
func Unconditional(y attrset.AttrSet) Monotonicity { return Monotonicity{Y: y} }

// IsUnconditional reports whether the condition mask is empty.
func (m Monotonicity) IsUnconditional() bool { return m.X.IsEmpty() }

// Hash returns the canonical digest of the term.
func (m Monotonicity) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], m.Y.Hash())
	binary.LittleEndian.PutUint64(buf[8:], m.X.Hash())
	return xxhash.Sum64(buf[:])
}

// String renders the term as "Y | X" in mask notation.
func (m Monotonicity) String() string {
	return fmt.Sprintf("%s | %s", m.Y, m.X)
}

// Submodularity is the term (Y ; Z | X): the inequality
// h(X⊕Y) + h(X⊕Z) ≥ h(X) + h(X⊕Y⊕Z), over pairwise-disjoint masks with
// Y and Z non-empty. Comparable with ==.
type Submodularity struct {
	Y, Z, X attrset.AttrSet
}

// Sub builds the term (y ; z | x).
func Sub(y, z, x attrset.AttrSet) Submodularity { return Submodularity{Y: y, Z: z, X: x} }

// Hash returns the canonical digest of the term.
func (s Submodularity) Hash() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[:8], s.Y.Hash())
	binary.LittleEndian.PutUint64(buf[8:16], s.Z.Hash())
	binary.LittleEndian.PutUint64(buf[16:], s.X.Hash())
	return xxhash.Sum64(buf[:])
}

// String renders the term as "Y ; Z | X" in mask notation.
func (s Submodularity) String() string {
	return fmt.Sprintf("%s ; %s | %s", s.Y, s.Z, s.X)
}

// hash/equality adapters for the ordered containers.

func monoHash(m Monotonicity) uint64   { return m.Hash() }
func monoEqual(a, b Monotonicity) bool { return a == b }
func subHash(s Submodularity) uint64   { return s.Hash() }
func subEqual(a, b Submodularity) bool { return a == b }
func attrsHash(a attrset.AttrSet) uint64  { return a.Hash() }
func attrsEqual(a, b attrset.AttrSet) bool { return a == b }
