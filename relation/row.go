package relation

import (
	"strings"

	"github.com/vakumar1/panda/attrset"
)

// Row is an immutable partial tuple over the global schema: a fixed-width
// array of optional cells. Position i carries a value iff attribute i is
// present. The hash is computed once at construction and memoized, so a
// Row is cheap to use as a set member or dictionary key.
type Row struct {
	cells []Value
	hash  uint64
}

// NewRow builds a row from the given cells (one slot per schema position;
// the zero Value marks absence). The slice is copied, so the caller may
// reuse it.
func NewRow(cells []Value) Row {
	own := make([]Value, len(cells))
	copy(own, cells)
	return Row{cells: own, hash: hashCells(own)}
}

// hashCells folds the per-position cell digests into one seed, mixing in
// the same avalanche constant per position so that permutations of equal
// cells still hash apart.
func hashCells(cells []Value) uint64 {
	seed := uint64(len(cells))
	for _, c := range cells {
		seed ^= c.hash() + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
	}
	return seed
}

// Width returns the schema width the row was built against.
func (r Row) Width() int { return len(r.cells) }

// Has reports whether position i carries a value.
func (r Row) Has(i int) bool {
	return i >= 0 && i < len(r.cells) && r.cells[i].IsSet()
}

// Cell returns the value at position i; the zero Value if absent.
func (r Row) Cell(i int) Value {
	if i < 0 || i >= len(r.cells) {
		return Value{}
	}
	return r.cells[i]
}

// Attrs returns the set of positions that carry a value.
func (r Row) Attrs() attrset.AttrSet {
	var a attrset.AttrSet
	for i, c := range r.cells {
		if c.IsSet() {
			a = a.Union(attrset.Single(i))
		}
	}
	return a
}

// Hash returns the memoized row digest.
func (r Row) Hash() uint64 { return r.hash }

// Equal compares presence and typed value per position.
func (r Row) Equal(o Row) bool {
	if len(r.cells) != len(o.cells) {
		return false
	}
	if r.hash != o.hash {
		return false
	}
	for i := range r.cells {
		if !r.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Mask returns a new row agreeing with r on the positions in attrs and
// absent elsewhere.
func Mask(attrs attrset.AttrSet, r Row) Row {
	cells := make([]Value, len(r.cells))
	for i := range r.cells {
		if attrs.Contains(i) {
			cells[i] = r.cells[i]
		}
	}
	return Row{cells: cells, hash: hashCells(cells)}
}

// Merge combines two rows over disjoint attribute sets: the result carries
// rx's cells on attrsX, ry's cells on attrsY, and is absent elsewhere.
func Merge(rx, ry Row, attrsX, attrsY attrset.AttrSet) (Row, error) {
	if len(rx.cells) != len(ry.cells) {
		return Row{}, ErrWidthMismatch
	}
	if !attrsX.Disjoint(attrsY) {
		return Row{}, ErrAttrsOverlap
	}
	cells := make([]Value, len(rx.cells))
	for i := range cells {
		switch {
		case attrsX.Contains(i):
			cells[i] = rx.cells[i]
		case attrsY.Contains(i):
			cells[i] = ry.cells[i]
		}
	}
	return Row{cells: cells, hash: hashCells(cells)}, nil
}

// String renders the row's cells space-separated, absent cells as "null".
func (r Row) String() string {
	parts := make([]string, len(r.cells))
	for i, c := range r.cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
