package relation

import (
	"strings"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/ordmap"
)

// Dict is the two-arm sum over plain and extended dictionaries. The
// rewriting bookkeeping stores either form; Join reads the represented
// key mask (AttrsX) and resolves lookups through the base mapping.
type Dict interface {
	// Base returns the underlying plain dictionary. For an
	// ExtendedDictionary this is the parent whose map it aliases.
	Base() *Dictionary
	// AttrsX returns the represented condition mask: the key mask for a
	// plain dictionary, X⊕Z for an extended one.
	AttrsX() attrset.AttrSet
	// AttrsY returns the value mask.
	AttrsY() attrset.AttrSet
	// Ext returns the extension mask and whether the dictionary carries one.
	Ext() (attrset.AttrSet, bool)
}

// Dictionary maps X-rows to sets of Y-rows. Keys carry values exactly on
// AttrsX; every value set holds rows exactly on AttrsY. Keys iterate in
// canonical hash order. Once a dictionary has been handed to a
// subproblem its backing map is read-only.
type Dictionary struct {
	attrsX, attrsY attrset.AttrSet
	entries        *ordmap.Map[Row, *Table]
}

// NewDictionary returns an empty dictionary with the given disjoint key
// and value masks.
func NewDictionary(attrsX, attrsY attrset.AttrSet) (*Dictionary, error) {
	if !attrsX.Disjoint(attrsY) {
		return nil, ErrAttrsOverlap
	}
	return &Dictionary{
		attrsX:  attrsX,
		attrsY:  attrsY,
		entries: ordmap.New[Row, *Table](rowHash, rowEqual),
	}, nil
}

// Base returns the dictionary itself.
func (d *Dictionary) Base() *Dictionary { return d }

// AttrsX returns the key mask.
func (d *Dictionary) AttrsX() attrset.AttrSet { return d.attrsX }

// AttrsY returns the value mask.
func (d *Dictionary) AttrsY() attrset.AttrSet { return d.attrsY }

// Ext reports no extension mask on a plain dictionary.
func (d *Dictionary) Ext() (attrset.AttrSet, bool) { return 0, false }

// Len returns the number of keys.
func (d *Dictionary) Len() int { return d.entries.Len() }

// Lookup returns the value set stored under the key row, if any.
func (d *Dictionary) Lookup(key Row) (*Table, bool) {
	return d.entries.Get(key)
}

// add inserts y under key, creating the value set on first use. Shape
// checks are the caller's (Construction validates once per table).
func (d *Dictionary) add(key, y Row) {
	set, ok := d.entries.Get(key)
	if !ok {
		set = NewTable(d.attrsY)
		d.entries.Put(key, set)
	}
	set.data.Put(y, struct{}{})
}

// Each visits key/value-set pairs in canonical key order until fn
// returns false.
func (d *Dictionary) Each(fn func(key Row, values *Table) bool) {
	d.entries.Ascend(fn)
}

// String renders each key followed by its indented value rows.
func (d *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteString(d.attrsX.String())
	sb.WriteString(" -> ")
	sb.WriteString(d.attrsY.String())
	d.Each(func(key Row, values *Table) bool {
		sb.WriteByte('\n')
		sb.WriteString(key.String())
		values.Each(func(y Row) bool {
			sb.WriteString("\n    ")
			sb.WriteString(y.String())
			return true
		})
		return true
	})
	return sb.String()
}

// ExtendedDictionary augments a dictionary with a third mask disjoint
// from X⊕Y. It carries no Z-rows; it represents a conditional dependency
// of Y on X⊕Z, so its key side reports X⊕Z while lookups still resolve
// through the parent's X-keyed map (the Z part of a probe row is free).
// The parent's backing map is aliased, never copied.
type ExtendedDictionary struct {
	*Dictionary
	attrsZ attrset.AttrSet
}

// AttrsX returns the represented condition mask X⊕Z.
func (e ExtendedDictionary) AttrsX() attrset.AttrSet {
	return e.Dictionary.attrsX.SymDiff(e.attrsZ)
}

// Ext returns the extension mask.
func (e ExtendedDictionary) Ext() (attrset.AttrSet, bool) { return e.attrsZ, true }
