// Package relation implements the relational values and operators of the
// degree-feasible witness engine: partial rows over a global schema,
// tables (sets of rows), key→rows dictionaries, and the five operators
// the proof-driven rewriting procedure applies to them.
//
// Overview:
//
//   - Value is a typed cell: integer, float or string.
//   - Row is an immutable partial tuple over the schema; position i
//     carries a value iff attribute i is present. Equality compares
//     presence and typed value per position; the hash is memoized at
//     construction and stable across runs (xxhash).
//   - Table is a set of rows sharing one attribute mask.
//   - Dictionary maps X-rows to sets of Y-rows; ExtendedDictionary adds a
//     Z mask and aliases the parent's backing map (Extension never copies).
//     Both satisfy the two-arm Dict sum.
//
// Operators:
//
//   - Project(T, A):        mask every row to A; duplicates collapse.
//   - Construction(T, X, Y): build the X-row → {Y-rows} dictionary.
//   - Extension(Δ, Z):      annotate Δ with a disjoint Z mask, sharing
//     the backing map.
//   - Join(T, Δ):           merge every row of T with the Y-rows its key
//     maps to.
//   - Partition(T, X):      dyadic degree partition: group rows by their
//     X-projection, bucket groups by ⌈log₂ degree⌉, halve each bucket by
//     parity. At most 2·(2⌈log₂|T|⌉+1) non-empty pieces.
//   - Degree(Δ):            largest value-set size over keys.
//
// Determinism: tables and dictionaries iterate in canonical row-hash
// order with insertion-order tie-breaks (see package ordmap), so operator
// output and partition piece order are reproducible across runs.
//
// Errors (sentinel):
//
//   - ErrRowShape        — a row's present attributes do not match the table mask.
//   - ErrWidthMismatch   — rows of different schema widths were combined.
//   - ErrAttrsOverlap    — attribute sets required to be disjoint overlap.
//   - ErrAttrsNotSubset  — a projection/partition mask is not contained in
//     the table mask.
//   - ErrAttrsMismatch   — operand attribute sets do not align (join key,
//     construction cover, union).
//
// All of these are operator precondition failures; the engine treats them
// as fatal algebra violations.
package relation
