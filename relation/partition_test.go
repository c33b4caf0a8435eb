package relation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/relation"
)

// skewedTable builds a table over {0,1} whose key 1 has high degree and
// key 2 degree one, forcing distinct dyadic buckets.
func skewedTable(t *testing.T, degree int) *relation.Table {
	t.Helper()
	pairs := make([][2]int64, 0, degree+1)
	for i := 0; i < degree; i++ {
		pairs = append(pairs, [2]int64{1, int64(10 + i)})
	}
	pairs = append(pairs, [2]int64{2, 99})
	return pairTable(t, pairs)
}

// TestPartitionPartitions: pieces are pairwise disjoint, union back to T,
// and any key appears in at most two pieces.
func TestPartitionPartitions(t *testing.T) {
	tab := skewedTable(t, 5)
	x := attrset.FromBits(0)

	pieces, err := relation.Partition(tab, x)
	require.NoError(t, err)
	require.NotEmpty(t, pieces)

	union := relation.NewTable(tab.Attrs())
	total := 0
	for _, p := range pieces {
		require.Equal(t, tab.Attrs(), p.Attrs())
		total += p.Len()
		require.NoError(t, union.Absorb(p))
	}
	// disjoint pieces: the union has as many rows as the pieces combined
	require.Equal(t, tab.Len(), total)
	require.True(t, union.Equal(tab))

	// at most two pieces hold rows of any one key
	for _, key := range []int64{1, 2} {
		holders := 0
		for _, p := range pieces {
			found := false
			p.Each(func(r relation.Row) bool {
				if r.Cell(0).Equal(relation.Int(key)) {
					found = true
					return false
				}
				return true
			})
			if found {
				holders++
			}
		}
		require.LessOrEqual(t, holders, 2, "key %d", key)
	}
}

// TestPartitionBucketBound: at most 2(2⌈log₂|T|⌉+1) non-empty pieces.
func TestPartitionBucketBound(t *testing.T) {
	tab := skewedTable(t, 7)
	pieces, err := relation.Partition(tab, attrset.FromBits(0))
	require.NoError(t, err)

	bound := 2 * (2*int(math.Ceil(math.Log2(float64(tab.Len())))) + 1)
	require.LessOrEqual(t, len(pieces), bound)
}

// TestPartitionSeparatesDegrees: degree-1 and degree-4 keys land in
// different pieces (distinct dyadic buckets).
func TestPartitionSeparatesDegrees(t *testing.T) {
	tab := skewedTable(t, 4)
	pieces, err := relation.Partition(tab, attrset.FromBits(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pieces), 2)

	for _, p := range pieces {
		hasHigh, hasLow := false, false
		p.Each(func(r relation.Row) bool {
			switch r.Cell(0).AsInt() {
			case 1:
				hasHigh = true
			case 2:
				hasLow = true
			}
			return true
		})
		require.False(t, hasHigh && hasLow, "degree classes mixed in one piece")
	}
}

// TestPartitionDeterminism: identical inputs produce identical piece
// sequences.
func TestPartitionDeterminism(t *testing.T) {
	mk := func() *relation.Table { return skewedTable(t, 5) }

	a, err := relation.Partition(mk(), attrset.FromBits(0))
	require.NoError(t, err)
	b, err := relation.Partition(mk(), attrset.FromBits(0))
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		require.True(t, a[i].Equal(b[i]), "piece %d differs", i)
	}
}

// TestPartitionEdges covers the empty table and the non-subset mask.
func TestPartitionEdges(t *testing.T) {
	empty := relation.NewTable(attrset.FromBits(0, 1))
	pieces, err := relation.Partition(empty, attrset.FromBits(0))
	require.NoError(t, err)
	require.Empty(t, pieces)

	tab := pairTable(t, [][2]int64{{1, 10}})
	_, err = relation.Partition(tab, attrset.FromBits(2))
	require.ErrorIs(t, err, relation.ErrAttrsNotSubset)
}
