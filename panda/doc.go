// Package panda implements the proof-driven rewriting procedure that
// produces a degree-feasible witness for a conjunctive query under
// information-theoretic degree constraints.
//
// Overview:
//
// Run explores a tree of subproblems breadth-first. At each node it picks
// an unconditional demand (W | ∅) from D and applies the first matching
// case rewrite:
//
//   - condition: a demand (Y | W) ∈ D conditions on W. The table at W and
//     the dictionary at (Y | W) are consumed; if the joined size
//     N_W · N_{Y|W} stays within the global bound the join is
//     materialized at (Y⊕W | ∅), otherwise the reset lemma eliminates
//     the new demand without materializing.
//   - split: a witness (Y | X) ∈ M with Y⊕X = W splits the demand; the
//     table at W is projected to X and re-stacked at (X | ∅).
//   - partition: a witness (Y ; Z | X) ∈ S with Y⊕X = W partitions the
//     table at W by X into dyadic degree pieces; each piece becomes one
//     child carrying its X-projection and its (Y | X⊕Z) dictionary.
//
// The reset lemma rewrites the bookkeeping to discharge an unconditional
// demand that must not be materialized: it consumes a matching output
// group from Z (base), or a conditioning demand from D, a split witness
// from M, or a partition witness from S (inductive), recursing until the
// base case.
//
// A node whose D holds an unconditional demand matching an output group
// of the original problem is a leaf; the witness tables of all leaves are
// unioned per output group into the result.
//
// Determinism: all multisets and stacks iterate in canonical hash order
// with insertion tie-breaks, so given the same input the driver visits
// the same nodes, applies the same cases and returns the same witnesses.
//
// Options:
//
//   - WithMaxSteps(n):      driver step ceiling (default 1<<20).
//   - WithMaxResetDepth(n): reset recursion ceiling (default derived from
//     the initial |D|+|M|+|S|).
//   - WithLogger(l):        hclog tracing of dequeues, cases and resets.
//
// Errors (sentinel):
//
//   - ErrNoApplicableMonotonicity — a non-leaf node has no unconditional
//     demand.
//   - ErrNoApplicableCase — no case matches any unconditional demand.
//   - ErrResetDeadEnd — the reset lemma found no witness to consume.
//   - ErrAlgebraViolation — an operator precondition or a bookkeeping
//     invariant failed.
//   - ErrDiverged — a step or depth ceiling was exceeded.
//
// None of these are recovered internally: every error aborts the
// invocation carrying the error kind and the offending node's top-level
// shape.
package panda
