package proof

import "errors"

// Sentinel errors for structural violations of the subproblem invariants.
var (
	// ErrBadBound indicates a non-positive global bound.
	ErrBadBound = errors.New("proof: global bound must be positive")

	// ErrCountMismatch indicates a demand whose multiplicity in D does not
	// equal the length of its table or dictionary stack, or a stack keyed
	// by a term absent from D.
	ErrCountMismatch = errors.New("proof: demand count does not match stack length")

	// ErrShapeMismatch indicates a stored table or dictionary whose
	// attribute masks do not match the monotonicity that keys it.
	ErrShapeMismatch = errors.New("proof: stored relation does not match its term")

	// ErrStackEmpty indicates a Pop or First against a term with no stack.
	ErrStackEmpty = errors.New("proof: no entries stacked for term")

	// ErrCountUnderflow indicates a Dec of a key that is not present.
	ErrCountUnderflow = errors.New("proof: count decrement of absent key")
)
