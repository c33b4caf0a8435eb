package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/relation"
)

// pairTable builds a table over positions {0,1} of a width-2 schema from
// (a, b) integer pairs.
func pairTable(t *testing.T, pairs [][2]int64) *relation.Table {
	t.Helper()
	tab := relation.NewTable(attrset.FromBits(0, 1))
	for _, p := range pairs {
		require.NoError(t, tab.Insert(intRow(2, map[int]int64{0: p[0], 1: p[1]})))
	}
	return tab
}

// TestProjectIdempotence: project(project(T,A),A) = project(T,A).
func TestProjectIdempotence(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}, {2, 10}, {3, 30}})
	a := attrset.FromBits(1)

	once, err := relation.Project(tab, a)
	require.NoError(t, err)
	twice, err := relation.Project(once, a)
	require.NoError(t, err)
	require.True(t, once.Equal(twice))
}

// TestProjectNarrowing: |project(T,A)| ≤ |T|, equal iff masking is
// injective on the data.
func TestProjectNarrowing(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}, {2, 10}, {3, 30}})

	collapsed, err := relation.Project(tab, attrset.FromBits(1))
	require.NoError(t, err)
	require.Equal(t, 2, collapsed.Len()) // 10 collapses

	injective, err := relation.Project(tab, attrset.FromBits(0))
	require.NoError(t, err)
	require.Equal(t, tab.Len(), injective.Len())

	_, err = relation.Project(tab, attrset.FromBits(2))
	require.ErrorIs(t, err, relation.ErrAttrsNotSubset)
}

// TestConstructionRoundTrip: join(project(T,X), construction(T,X,Y))
// recovers exactly the rows of T.
func TestConstructionRoundTrip(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}, {1, 11}, {2, 20}})
	x, y := attrset.FromBits(0), attrset.FromBits(1)

	keys, err := relation.Project(tab, x)
	require.NoError(t, err)
	dict, err := relation.Construction(tab, x, y)
	require.NoError(t, err)
	back, err := relation.Join(keys, dict)
	require.NoError(t, err)
	require.True(t, tab.Equal(back))
}

// TestConstructionPreconditions covers overlap and cover violations.
func TestConstructionPreconditions(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}})

	_, err := relation.Construction(tab, attrset.FromBits(0, 1), attrset.FromBits(1))
	require.ErrorIs(t, err, relation.ErrAttrsOverlap)

	_, err = relation.Construction(tab, attrset.FromBits(0), attrset.AttrSet(0))
	require.ErrorIs(t, err, relation.ErrAttrsMismatch)
}

// TestConstructionGroups checks the key→values grouping itself.
func TestConstructionGroups(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}, {1, 11}, {2, 20}})
	dict, err := relation.Construction(tab, attrset.FromBits(0), attrset.FromBits(1))
	require.NoError(t, err)

	require.Equal(t, 2, dict.Len())
	values, ok := dict.Lookup(intRow(2, map[int]int64{0: 1}))
	require.True(t, ok)
	require.Equal(t, 2, values.Len())
	require.Equal(t, 2, relation.Degree(dict))
}

// TestExtensionAliasesMap: extension shares the parent's backing map and
// only annotates the Z mask.
func TestExtensionAliasesMap(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}})
	dict, err := relation.Construction(tab, attrset.FromBits(0), attrset.FromBits(1))
	require.NoError(t, err)

	ext, err := relation.Extension(dict, attrset.FromBits(3))
	require.NoError(t, err)
	require.Same(t, dict, ext.Base())

	z, ok := ext.Ext()
	require.True(t, ok)
	require.Equal(t, attrset.FromBits(3), z)
	_, ok = dict.Ext()
	require.False(t, ok)

	_, err = relation.Extension(dict, attrset.FromBits(1, 3))
	require.ErrorIs(t, err, relation.ErrAttrsOverlap)
}

// TestJoin checks merging against both plain and extended dictionaries,
// missing keys, and the key-mask precondition.
func TestJoin(t *testing.T) {
	tab := pairTable(t, [][2]int64{{1, 10}, {1, 11}, {2, 20}})
	dict, err := relation.Construction(tab, attrset.FromBits(0), attrset.FromBits(1))
	require.NoError(t, err)

	keys := relation.NewTable(attrset.FromBits(0))
	require.NoError(t, keys.Insert(intRow(2, map[int]int64{0: 1})))
	require.NoError(t, keys.Insert(intRow(2, map[int]int64{0: 9}))) // no such key

	joined, err := relation.Join(keys, dict)
	require.NoError(t, err)
	require.Equal(t, attrset.FromBits(0, 1), joined.Attrs())
	require.Equal(t, 2, joined.Len())
	require.True(t, joined.Has(intRow(2, map[int]int64{0: 1, 1: 10})))
	require.True(t, joined.Has(intRow(2, map[int]int64{0: 1, 1: 11})))

	bad := relation.NewTable(attrset.FromBits(1))
	_, err = relation.Join(bad, dict)
	require.ErrorIs(t, err, relation.ErrAttrsMismatch)
}

// TestJoinExtended checks that an extended dictionary joins against X⊕Z
// probes: the X part drives the lookup and the Z cells ride along from
// the probe row.
func TestJoinExtended(t *testing.T) {
	tab := relation.NewTable(attrset.FromBits(0, 1))
	require.NoError(t, tab.Insert(intRow(4, map[int]int64{0: 1, 1: 10})))
	require.NoError(t, tab.Insert(intRow(4, map[int]int64{0: 1, 1: 11})))
	require.NoError(t, tab.Insert(intRow(4, map[int]int64{0: 2, 1: 20})))

	dict, err := relation.Construction(tab, attrset.FromBits(0), attrset.FromBits(1))
	require.NoError(t, err)
	ext, err := relation.Extension(dict, attrset.FromBits(3))
	require.NoError(t, err)
	require.Equal(t, attrset.FromBits(0, 3), ext.AttrsX())

	probes := relation.NewTable(attrset.FromBits(0, 3))
	require.NoError(t, probes.Insert(intRow(4, map[int]int64{0: 1, 3: 7})))
	require.NoError(t, probes.Insert(intRow(4, map[int]int64{0: 9, 3: 8}))) // no such key

	joined, err := relation.Join(probes, ext)
	require.NoError(t, err)
	require.Equal(t, attrset.FromBits(0, 1, 3), joined.Attrs())
	require.Equal(t, 2, joined.Len())
	require.True(t, joined.Has(intRow(4, map[int]int64{0: 1, 1: 10, 3: 7})))
	require.True(t, joined.Has(intRow(4, map[int]int64{0: 1, 1: 11, 3: 7})))

	// the probe must cover X⊕Z, not just X
	short := relation.NewTable(attrset.FromBits(0))
	require.NoError(t, short.Insert(intRow(4, map[int]int64{0: 1})))
	_, err = relation.Join(short, ext)
	require.ErrorIs(t, err, relation.ErrAttrsMismatch)
}
