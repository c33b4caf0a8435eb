package relation

import (
	"fmt"
	"math/bits"

	"github.com/vakumar1/panda/attrset"
)

// ceilLog2 returns ⌈log₂ n⌉ for n ≥ 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Partition performs the dyadic degree partition of t by the mask attrsX.
//
// Rows are grouped by their X-projection; a group of degree d lands in
// bucket ⌈log₂ d⌉ of 2⌈log₂|T|⌉+1 buckets, and each bucket is halved by
// position parity. Every non-empty half becomes one output table over
// t's mask. Restricted to any key, an output holds rows of one degree
// class split in two, so its per-key degree is bounded within a factor
// of 2 and the submodularity inequality holds termwise on each piece.
//
// Determinism: groups are visited in canonical key-hash order with
// insertion-order tie-breaks, and rows within a group in canonical row
// order, so the bucket layout and piece order are reproducible.
//
// Requires attrsX ⊆ t.Attrs. An empty table partitions into no pieces.
func Partition(t *Table, attrsX attrset.AttrSet) ([]*Table, error) {
	if !t.attrs.ContainsAll(attrsX) {
		return nil, fmt.Errorf("%w: partition by %s of %s", ErrAttrsNotSubset, attrsX, t.attrs)
	}
	if t.Len() == 0 {
		return nil, nil
	}

	// 1) Group rows by their X-projection.
	groups, err := Construction(t, attrsX, t.attrs.Without(attrsX))
	if err != nil {
		return nil, err
	}

	// 2) Scatter each group into its dyadic degree bucket.
	bucketCount := 2*ceilLog2(t.Len()) + 1
	buckets := make([][]Row, bucketCount)
	var scatterErr error
	groups.Each(func(key Row, values *Table) bool {
		b := ceilLog2(values.Len())
		if b >= bucketCount {
			// A single group can never exceed |T| rows; guarded anyway.
			scatterErr = fmt.Errorf("%w: degree bucket %d of %d", ErrAttrsMismatch, b, bucketCount)
			return false
		}
		values.Each(func(y Row) bool {
			full, err := Merge(key, y, attrsX, t.attrs.Without(attrsX))
			if err != nil {
				scatterErr = err
				return false
			}
			buckets[b] = append(buckets[b], full)
			return true
		})
		return scatterErr == nil
	})
	if scatterErr != nil {
		return nil, scatterErr
	}

	// 3) Halve each bucket by position parity; keep non-empty halves.
	pieces := make([]*Table, 0, 2*bucketCount)
	for _, bucket := range buckets {
		even, odd := NewTable(t.attrs), NewTable(t.attrs)
		for j, r := range bucket {
			if j%2 == 0 {
				even.data.Put(r, struct{}{})
			} else {
				odd.data.Put(r, struct{}{})
			}
		}
		if even.Len() > 0 {
			pieces = append(pieces, even)
		}
		if odd.Len() > 0 {
			pieces = append(pieces, odd)
		}
	}
	return pieces, nil
}
