package panda

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
)

// TestResetBase: the target demand is an owed output group; Z and D each
// lose one occurrence and nothing else changes.
func TestResetBase(t *testing.T) {
	w := attrset.FromBits(0, 1)
	target := proof.Unconditional(w)

	parts := emptyParts(10)
	parts.Z.Inc(w)
	parts.D.Inc(target)

	cfg := DefaultOptions()
	require.NoError(t, resetLemma(&parts, target, &cfg, 8))
	require.False(t, parts.Z.Has(w))
	require.False(t, parts.D.Has(target))
}

// TestResetCondition: a demand (Y | W) conditions on the target; its
// newest dictionary is popped and the chain recurses on (Y⊕W | ∅) into
// the base case.
func TestResetCondition(t *testing.T) {
	w := attrset.FromBits(0)
	y := attrset.FromBits(1)
	target := proof.Unconditional(w)
	cond := proof.Mono(y, w)

	full := tableOf(t, w.Union(y),
		row(map[int]relation.Value{0: cell(1), 1: cell(10)}),
	)
	dict, err := relation.Construction(full, w, y)
	require.NoError(t, err)

	parts := emptyParts(10)
	parts.D.Inc(target)
	parts.D.Inc(cond)
	parts.Dicts.Push(cond, proof.DictEntry{Dict: dict, Degree: 1})
	parts.Z.Inc(w.Union(y))

	cfg := DefaultOptions()
	require.NoError(t, resetLemma(&parts, target, &cfg, 8))

	require.False(t, parts.D.Has(target))
	require.False(t, parts.D.Has(cond))
	require.Equal(t, 0, parts.Dicts.Count(cond))
	require.False(t, parts.Z.Has(w.Union(y)))
	require.False(t, parts.D.Has(proof.Unconditional(w.Union(y))))
}

// TestResetPartition: a submodularity witness covers the target; it is
// spent, (Z|X) joins M, and the chain recurses on (X⊕Y⊕Z | ∅).
func TestResetPartition(t *testing.T) {
	x := attrset.FromBits(0)
	y := attrset.FromBits(1)
	z := attrset.FromBits(2)
	target := proof.Unconditional(x.Union(y))
	witness := proof.Sub(y, z, x)
	xyz := x.Union(y).Union(z)

	parts := emptyParts(10)
	parts.D.Inc(target)
	parts.S.Inc(witness)
	parts.Z.Inc(xyz)

	cfg := DefaultOptions()
	require.NoError(t, resetLemma(&parts, target, &cfg, 8))

	require.False(t, parts.D.Has(target))
	require.False(t, parts.S.Has(witness))
	require.Equal(t, 1, parts.M.Count(proof.Mono(z, x)))
	require.False(t, parts.Z.Has(xyz))
}

// TestResetDeadEnd: no witness in Z, D, M or S covers the target.
func TestResetDeadEnd(t *testing.T) {
	target := proof.Unconditional(attrset.FromBits(0))
	parts := emptyParts(10)
	parts.D.Inc(target)

	cfg := DefaultOptions()
	err := resetLemma(&parts, target, &cfg, 8)
	require.ErrorIs(t, err, ErrResetDeadEnd)
}

// TestResetBudgetExhausted: a zero budget diverges instead of recursing.
func TestResetBudgetExhausted(t *testing.T) {
	target := proof.Unconditional(attrset.FromBits(0))
	parts := emptyParts(10)
	parts.D.Inc(target)
	parts.Z.Inc(attrset.FromBits(0))

	cfg := DefaultOptions()
	err := resetLemma(&parts, target, &cfg, 0)
	require.ErrorIs(t, err, ErrDiverged)
}
