package relation

import (
	"fmt"

	"github.com/vakumar1/panda/attrset"
)

// Project returns the table whose mask is attrs and whose rows are the
// attrs-masked rows of t; duplicates collapse. Requires attrs ⊆ t.Attrs.
func Project(t *Table, attrs attrset.AttrSet) (*Table, error) {
	if !t.attrs.ContainsAll(attrs) {
		return nil, fmt.Errorf("%w: project %s from %s", ErrAttrsNotSubset, attrs, t.attrs)
	}
	out := NewTable(attrs)
	t.Each(func(r Row) bool {
		out.data.Put(Mask(attrs, r), struct{}{})
		return true
	})
	return out, nil
}

// Construction builds the dictionary mapping each X-masked row of t to
// the set of Y-masked rows it co-occurs with. Requires X ∩ Y = ∅ and
// X ⊕ Y = t.Attrs.
func Construction(t *Table, attrsX, attrsY attrset.AttrSet) (*Dictionary, error) {
	if !attrsX.Disjoint(attrsY) {
		return nil, fmt.Errorf("%w: construction X=%s Y=%s", ErrAttrsOverlap, attrsX, attrsY)
	}
	if attrsX.SymDiff(attrsY) != t.attrs {
		return nil, fmt.Errorf("%w: construction X⊕Y=%s vs table %s",
			ErrAttrsMismatch, attrsX.SymDiff(attrsY), t.attrs)
	}
	dict, err := NewDictionary(attrsX, attrsY)
	if err != nil {
		return nil, err
	}
	t.Each(func(r Row) bool {
		dict.add(Mask(attrsX, r), Mask(attrsY, r))
		return true
	})
	return dict, nil
}

// Extension annotates d with the extension mask attrsZ, which must be
// disjoint from X ∪ Y. The backing map is shared, not copied; both values
// alias it and must treat it as read-only.
func Extension(d *Dictionary, attrsZ attrset.AttrSet) (ExtendedDictionary, error) {
	if !attrsZ.Disjoint(d.attrsX.Union(d.attrsY)) {
		return ExtendedDictionary{}, fmt.Errorf("%w: extension Z=%s over X=%s Y=%s",
			ErrAttrsOverlap, attrsZ, d.attrsX, d.attrsY)
	}
	return ExtendedDictionary{Dictionary: d, attrsZ: attrsZ}, nil
}

// Join merges every row of t with each Y-row its key maps to in d. Rows
// absent from the dictionary contribute nothing. Requires t.Attrs = Δ.X
// (the represented condition mask: X⊕Z for an extended dictionary, whose
// lookups resolve through the base X-keyed map with the Z cells carried
// along from the probe row). The result's mask is Δ.X ⊕ Δ.Y.
func Join(t *Table, d Dict) (*Table, error) {
	base := d.Base()
	keyAttrs := d.AttrsX()
	if t.attrs != keyAttrs {
		return nil, fmt.Errorf("%w: join table %s vs dictionary key %s",
			ErrAttrsMismatch, t.attrs, keyAttrs)
	}
	out := NewTable(keyAttrs.SymDiff(base.attrsY))
	probeNeedsMask := keyAttrs != base.attrsX
	var mergeErr error
	t.Each(func(rx Row) bool {
		probe := rx
		if probeNeedsMask {
			probe = Mask(base.attrsX, rx)
		}
		values, ok := base.Lookup(probe)
		if !ok {
			return true
		}
		values.Each(func(ry Row) bool {
			merged, err := Merge(rx, ry, keyAttrs, base.attrsY)
			if err != nil {
				mergeErr = err
				return false
			}
			out.data.Put(merged, struct{}{})
			return true
		})
		return mergeErr == nil
	})
	if mergeErr != nil {
		return nil, mergeErr
	}
	return out, nil
}

// Degree returns the largest value-set size over d's keys; 0 if empty.
func Degree(d Dict) int {
	max := 0
	d.Base().Each(func(_ Row, values *Table) bool {
		if n := values.Len(); n > max {
			max = n
		}
		return true
	})
	return max
}
