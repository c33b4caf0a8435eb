package relation

import (
	"fmt"
	"strings"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/ordmap"
)

// rowHash and rowEqual adapt Row to the ordmap contract.
func rowHash(r Row) uint64     { return r.Hash() }
func rowEqual(a, b Row) bool   { return a.Equal(b) }
func newRowSet() *ordmap.Map[Row, struct{}] {
	return ordmap.New[Row, struct{}](rowHash, rowEqual)
}

// Table is a set of rows sharing one attribute mask. Invariant: every
// stored row carries values exactly on Attrs. Rows iterate in canonical
// hash order with insertion tie-breaks, so traversals are reproducible.
type Table struct {
	attrs attrset.AttrSet
	data  *ordmap.Map[Row, struct{}]
}

// NewTable returns an empty table over the given attribute mask.
func NewTable(attrs attrset.AttrSet) *Table {
	return &Table{attrs: attrs, data: newRowSet()}
}

// Attrs returns the table's attribute mask.
func (t *Table) Attrs() attrset.AttrSet { return t.attrs }

// Len returns |T|.
func (t *Table) Len() int { return t.data.Len() }

// Insert adds a row; duplicates collapse. The row's present positions
// must equal the table mask.
func (t *Table) Insert(r Row) error {
	if r.Attrs() != t.attrs {
		return fmt.Errorf("%w: row %s vs table %s", ErrRowShape, r.Attrs(), t.attrs)
	}
	t.data.Put(r, struct{}{})
	return nil
}

// Has reports whether r is a member.
func (t *Table) Has(r Row) bool { return t.data.Has(r) }

// Each visits rows in canonical order until fn returns false.
func (t *Table) Each(fn func(Row) bool) {
	t.data.Ascend(func(r Row, _ struct{}) bool { return fn(r) })
}

// Rows returns all rows in canonical order.
func (t *Table) Rows() []Row { return t.data.Keys() }

// Equal reports whether o holds exactly the same rows over the same mask.
func (t *Table) Equal(o *Table) bool {
	if t.attrs != o.attrs || t.Len() != o.Len() {
		return false
	}
	same := true
	t.Each(func(r Row) bool {
		if !o.Has(r) {
			same = false
			return false
		}
		return true
	})
	return same
}

// Clone returns an independent copy-on-write copy of the table.
func (t *Table) Clone() *Table {
	return &Table{attrs: t.attrs, data: t.data.Clone()}
}

// Absorb unions o's rows into t in place. The masks must match.
func (t *Table) Absorb(o *Table) error {
	if t.attrs != o.attrs {
		return fmt.Errorf("%w: union of %s and %s", ErrAttrsMismatch, t.attrs, o.attrs)
	}
	o.Each(func(r Row) bool {
		t.data.Put(r, struct{}{})
		return true
	})
	return nil
}

// String renders the mask followed by one row per line.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(t.attrs.String())
	t.Each(func(r Row) bool {
		sb.WriteByte('\n')
		sb.WriteString(r.String())
		return true
	})
	return sb.String()
}
