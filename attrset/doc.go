// Package attrset provides fixed-width attribute sets over a global schema.
//
// An AttrSet is a bitmask of schema positions: bit i is set iff attribute i
// of the global schema belongs to the set. The width is fixed at Width (64);
// schemas wider than that must be rejected at the loading boundary.
//
// Overview:
//
//   - Construction: Single, FromBits, the zero value (the empty set).
//   - Algebra: Union, Intersect, SymDiff, Without.
//   - Predicates: Contains, ContainsAll, Disjoint, IsEmpty, Equal.
//   - Inspection: Count, Bits, String.
//
// All operations are pure value operations on a uint64: no allocations
// except Bits and String, no locks, and iteration (Bits) ascends from bit 0, so every
// derived ordering is reproducible across runs.
//
// Complexity:
//
//   - Every algebraic operation and predicate: O(1).
//   - Count: O(1) (hardware popcount).
//   - Bits / String: O(Width).
package attrset
