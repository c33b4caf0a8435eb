// Package proof holds the bookkeeping state of the proof-driven rewriting
// procedure: monotonicity and submodularity terms, counted multisets of
// them, per-term stacks of materialized tables and dictionaries, and the
// immutable Subproblem tying them together with the global bound.
//
// Overview:
//
//   - Monotonicity (Y | X) and Submodularity (Y ; Z | X) are small value
//     types over attribute masks with canonical hashes and printable
//     forms. A monotonicity with X = ∅ is "unconditional".
//   - Multiset[K] counts keys; Inc adds one, Dec removes one and deletes
//     the key at zero. Iteration is deterministic (canonical hash order).
//   - TableStacks and DictStacks map a monotonicity to its stack of
//     (relation, degree) entries. Push appends; Pop removes the most
//     recently pushed entry (back-pop) and deletes the key when the stack
//     empties. First returns the oldest entry, which witness assembly
//     reads at the leaves.
//   - Subproblem is the immutable tuple (Z, D, T_tables, T_dicts, M, S, B).
//     Rewriters obtain a mutable copy-on-write view via Parts, edit it,
//     and Seal it back into a validated Subproblem; the original is never
//     touched, so sibling branches share nothing mutable.
//
// Invariants enforced by Seal/NewSubproblem:
//
//   - B > 0.
//   - For every unconditional m ∈ D, the table stack at m holds exactly
//     D[m] entries whose masks equal m.Y; for every conditional m ∈ D,
//     the dictionary stack at m holds exactly D[m] entries with key mask
//     m.X and value mask m.Y.
//   - Stacks carry no keys outside D; counts in Z, M, S are positive.
//
// Errors (sentinel):
//
//   - ErrBadBound, ErrCountMismatch, ErrShapeMismatch, ErrStackEmpty,
//     ErrCountUnderflow — structural violations; the engine treats them
//     as fatal.
package proof
