// Package ordmap provides a deterministic, hash-ordered map.
//
// The rewriting procedure must pick "the first match in deterministic
// iteration order" from several keyed collections, and its partitioning
// operator must visit dictionary keys in a canonical order. Go's built-in
// map randomizes iteration, so every keyed collection in this module is
// backed by Map: a B-tree (github.com/google/btree) whose entries are
// ordered by the caller-supplied canonical key hash, with ties broken by
// insertion sequence.
//
// Overview:
//
//   - New constructs a Map from a hash function and an equality function.
//     The hash must be stable across process runs for reproducibility.
//   - Get / Put / Delete behave like ordinary map operations; Put of an
//     existing key replaces the value in place, keeping its position.
//   - Ascend visits entries in (hash, insertion) order and is the only
//     iteration primitive, so every traversal is reproducible.
//   - Clone produces a lazy copy-on-write copy (btree.Clone), which keeps
//     per-rewrite subproblem copies cheap.
//
// Complexity:
//
//   - Get / Put / Delete: O(log n) plus a scan of same-hash entries
//     (expected O(1) with a 64-bit hash).
//   - Ascend: O(n).
//   - Clone: O(1) amortized; mutations after a clone copy shared nodes.
//
// Concurrency: a Map is not safe for concurrent mutation. The engine is
// specified single-threaded, and clones are only ever mutated by the
// branch that created them.
package ordmap
