// Package panda (module github.com/vakumar1/panda) produces
// degree-feasible witnesses for conjunctive database queries under
// information-theoretic degree constraints.
//
// Given a query specification — a global attribute schema, output
// attribute groups, input tables with cardinality constraints, and the
// monotonicity/submodularity multiplicities of a Shannon-inequality
// proof — the engine rewrites a tree of subproblems until every branch
// discharges an output group, and returns one concrete relation per
// group whose size respects the proven bound.
//
// The module is organized leaves-first:
//
//	attrset/  — fixed-width bitmask attribute sets and their algebra
//	ordmap/   — deterministic hash-ordered maps (reproducible iteration)
//	relation/ — rows, tables, dictionaries and the five operators
//	            (project, construction, extension, join, partition)
//	proof/    — monotonicity/submodularity terms, counted multisets,
//	            table/dictionary stacks, the immutable Subproblem
//	panda/    — case matchers, case rewriters, the reset lemma and the
//	            breadth-first driver
//	spec/     — the YAML + CSV boundary producing the initial Subproblem
//	cmd/panda — the command-line entry point
//
// Everything in the core is deterministic and single-threaded: identical
// inputs yield identical witnesses, row for row.
package panda
