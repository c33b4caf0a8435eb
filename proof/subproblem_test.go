package proof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
)

// emptyParts returns a consistent empty working view with bound b.
func emptyParts(b float64) proof.Parts {
	return proof.Parts{
		Z:      proof.NewAttrsMultiset(),
		D:      proof.NewMonoMultiset(),
		Tables: proof.NewTableStacks(),
		Dicts:  proof.NewDictStacks(),
		M:      proof.NewMonoMultiset(),
		S:      proof.NewSubMultiset(),
		Bound:  b,
	}
}

// TestSealValidBookkeeping builds a consistent node and checks accessors.
func TestSealValidBookkeeping(t *testing.T) {
	w := attrset.FromBits(0)
	mW := proof.Unconditional(w)

	p := emptyParts(10)
	p.Z.Inc(w)
	p.D.Inc(mW)
	p.Tables.Push(mW, proof.TableEntry{Table: singletonTable(t, 1), Degree: 1})

	sp, err := p.Seal()
	require.NoError(t, err)
	require.Equal(t, 10.0, sp.Bound())
	require.Equal(t, 1, sp.D().Count(mW))
	require.Equal(t, 1, sp.Tables().Count(mW))
	require.Contains(t, sp.Summary(), "|D|=1")
}

// TestSealRejectsBadBound checks the bound invariant.
func TestSealRejectsBadBound(t *testing.T) {
	_, err := emptyParts(0).Seal()
	require.ErrorIs(t, err, proof.ErrBadBound)
	_, err = emptyParts(-1).Seal()
	require.ErrorIs(t, err, proof.ErrBadBound)
}

// TestSealRejectsCountMismatch covers demand counts that disagree with
// stack lengths, and orphan stacks.
func TestSealRejectsCountMismatch(t *testing.T) {
	w := attrset.FromBits(0)
	mW := proof.Unconditional(w)

	// unconditional demand with no table
	p := emptyParts(10)
	p.D.Inc(mW)
	_, err := p.Seal()
	require.ErrorIs(t, err, proof.ErrCountMismatch)

	// conditional demand with no dictionary
	p = emptyParts(10)
	p.D.Inc(proof.Mono(attrset.FromBits(1), w))
	_, err = p.Seal()
	require.ErrorIs(t, err, proof.ErrCountMismatch)

	// orphan table stack with no demand
	p = emptyParts(10)
	p.Tables.Push(mW, proof.TableEntry{Table: singletonTable(t, 1), Degree: 1})
	_, err = p.Seal()
	require.ErrorIs(t, err, proof.ErrCountMismatch)
}

// TestSealRejectsShapeMismatch covers stored relations whose masks do not
// match their keying term.
func TestSealRejectsShapeMismatch(t *testing.T) {
	mWide := proof.Unconditional(attrset.FromBits(0, 1))
	p := emptyParts(10)
	p.D.Inc(mWide)
	p.Tables.Push(mWide, proof.TableEntry{Table: singletonTable(t, 1), Degree: 1})
	_, err := p.Seal()
	require.ErrorIs(t, err, proof.ErrShapeMismatch)

	cond := proof.Mono(attrset.FromBits(1), attrset.FromBits(0))
	dict, derr := relation.NewDictionary(attrset.FromBits(0), attrset.FromBits(2))
	require.NoError(t, derr)
	p = emptyParts(10)
	p.D.Inc(cond)
	p.Dicts.Push(cond, proof.DictEntry{Dict: dict, Degree: 1})
	_, err = p.Seal()
	require.ErrorIs(t, err, proof.ErrShapeMismatch)
}

// TestPartsIsolation checks that editing a working view never reaches the
// sealed source node.
func TestPartsIsolation(t *testing.T) {
	w := attrset.FromBits(0)
	mW := proof.Unconditional(w)

	p := emptyParts(10)
	p.Z.Inc(w)
	p.D.Inc(mW)
	p.Tables.Push(mW, proof.TableEntry{Table: singletonTable(t, 1), Degree: 1})
	sp, err := p.Seal()
	require.NoError(t, err)

	work := sp.Parts()
	require.NoError(t, work.D.Dec(mW))
	_, err = work.Tables.Pop(mW)
	require.NoError(t, err)
	require.NoError(t, work.Z.Dec(w))

	require.Equal(t, 1, sp.D().Count(mW))
	require.Equal(t, 1, sp.Tables().Count(mW))
	require.Equal(t, 1, sp.Z().Count(w))

	// sibling views are independent of each other too
	a, b := sp.Parts(), sp.Parts()
	a.M.Inc(mW)
	require.False(t, b.M.Has(mW))
}

// TestKeyTracksStructure checks that the structural digest distinguishes
// different bookkeeping and matches identical bookkeeping.
func TestKeyTracksStructure(t *testing.T) {
	build := func(zBit int) *proof.Subproblem {
		p := emptyParts(10)
		p.Z.Inc(attrset.FromBits(zBit))
		sp, err := p.Seal()
		require.NoError(t, err)
		return sp
	}
	require.Equal(t, build(1).Key(), build(1).Key())
	require.NotEqual(t, build(1).Key(), build(2).Key())
}
