package relation

import "errors"

// Sentinel errors for operator precondition failures. Algorithms return
// these (possibly wrapped with context via fmt.Errorf("...: %w", err));
// callers match with errors.Is.
var (
	// ErrRowShape indicates a row whose present positions do not equal the
	// attribute mask of the table or dictionary side it was inserted into.
	ErrRowShape = errors.New("relation: row attributes do not match mask")

	// ErrWidthMismatch indicates rows or masks built against different
	// global schema widths were combined.
	ErrWidthMismatch = errors.New("relation: schema widths differ")

	// ErrAttrsOverlap indicates attribute sets required to be disjoint
	// (merge sides, construction X/Y, extension Z) overlap.
	ErrAttrsOverlap = errors.New("relation: attribute sets overlap")

	// ErrAttrsNotSubset indicates a projection or partition mask that is
	// not contained in the table's attribute mask.
	ErrAttrsNotSubset = errors.New("relation: attribute set not a subset of table attributes")

	// ErrAttrsMismatch indicates operand attribute sets that must align
	// but do not (join key vs dictionary X, construction cover, union).
	ErrAttrsMismatch = errors.New("relation: attribute sets do not align")
)
