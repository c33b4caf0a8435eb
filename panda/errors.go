package panda

import (
	"errors"
	"fmt"
)

// Sentinel errors: the fatal failure classes of one engine invocation.
// Returned errors wrap one of these plus a context string describing the
// offending subproblem's top-level shape; match with errors.Is.
var (
	// ErrNoApplicableMonotonicity indicates a non-leaf subproblem whose D
	// holds no unconditional demand to rewrite.
	ErrNoApplicableMonotonicity = errors.New("panda: no unconditional monotonicity in demand set")

	// ErrNoApplicableCase indicates that no condition, split or partition
	// case matched any unconditional demand of a subproblem.
	ErrNoApplicableCase = errors.New("panda: no case matched subproblem")

	// ErrResetDeadEnd indicates the reset lemma exhausted Z, D, M and S
	// without discharging its target demand.
	ErrResetDeadEnd = errors.New("panda: reset lemma found no applicable case")

	// ErrAlgebraViolation indicates an operator precondition or a
	// bookkeeping invariant failure while rewriting.
	ErrAlgebraViolation = errors.New("panda: algebra violation")

	// ErrDiverged indicates the step or reset-depth ceiling was exceeded.
	ErrDiverged = errors.New("panda: step or depth ceiling exceeded")

	// ErrBadMaxSteps signals a non-positive step ceiling passed to
	// WithMaxSteps (panics at option construction).
	ErrBadMaxSteps = errors.New("panda: MaxSteps must be positive")

	// ErrBadResetDepth signals a negative reset ceiling passed to
	// WithMaxResetDepth (panics at option construction).
	ErrBadResetDepth = errors.New("panda: MaxResetDepth must be non-negative")
)

// algebraErr classifies err as an algebra violation, keeping the inner
// sentinel matchable.
func algebraErr(context string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrAlgebraViolation, context, err)
}
