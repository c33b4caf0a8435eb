package panda

import (
	"fmt"

	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
)

// findCondition returns a demand (Y | W) ∈ D conditioning on the target's
// mask W, taking the first match in deterministic order.
func findCondition(sp *proof.Subproblem, target proof.Monotonicity) (proof.Monotonicity, bool) {
	var found proof.Monotonicity
	ok := false
	sp.D().Each(func(m proof.Monotonicity, _ int) bool {
		if m.X == target.Y {
			found, ok = m, true
			return false
		}
		return true
	})
	return found, ok
}

// findSplit returns a witness (Y | X) ∈ M with Y, X non-empty and
// Y ⊕ X = W, taking the first match in deterministic order.
func findSplit(sp *proof.Subproblem, target proof.Monotonicity) (proof.Monotonicity, bool) {
	var found proof.Monotonicity
	ok := false
	sp.M().Each(func(m proof.Monotonicity, _ int) bool {
		if !m.Y.IsEmpty() && !m.X.IsEmpty() && m.Y.SymDiff(m.X) == target.Y {
			found, ok = m, true
			return false
		}
		return true
	})
	return found, ok
}

// findPartition returns a witness (Y ; Z | X) ∈ S with Y, X non-empty and
// Y ⊕ X = W, taking the first match in deterministic order.
func findPartition(sp *proof.Subproblem, target proof.Monotonicity) (proof.Submodularity, bool) {
	var found proof.Submodularity
	ok := false
	sp.S().Each(func(s proof.Submodularity, _ int) bool {
		if !s.Y.IsEmpty() && !s.X.IsEmpty() && s.Y.SymDiff(s.X) == target.Y {
			found, ok = s, true
			return false
		}
		return true
	})
	return found, ok
}

// conditionChildren applies the condition rewrite for target (W | ∅) and
// witness (Y | W).
//
// Both branches consume the newest table at W and the newest dictionary
// at (Y | W), replace both demands with (Y⊕W | ∅), and compute the joined
// degree N_{YW} = N_W · N_{Y|W}. Within the bound the join is
// materialized and stacked at (Y⊕W | ∅); beyond it the join is never
// computed and the reset lemma eliminates the demand instead.
func conditionChildren(sp *proof.Subproblem, target, witness proof.Monotonicity, o *Options, resetBudget int) ([]*proof.Subproblem, error) {
	parts := sp.Parts()

	tW, err := parts.Tables.Pop(target)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("condition on %s", target), err)
	}
	dYW, err := parts.Dicts.Pop(witness)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("condition witness %s", witness), err)
	}
	if err = parts.D.Dec(target); err != nil {
		return nil, algebraErr(fmt.Sprintf("condition on %s", target), err)
	}
	if err = parts.D.Dec(witness); err != nil {
		return nil, algebraErr(fmt.Sprintf("condition witness %s", witness), err)
	}

	joined := proof.Unconditional(witness.Y.SymDiff(witness.X))
	parts.D.Inc(joined)
	degree := tW.Degree * dYW.Degree

	if degree <= parts.Bound {
		// Case 1.1: within bound, materialize the join.
		tab, jerr := relation.Join(tW.Table, dYW.Dict)
		if jerr != nil {
			return nil, algebraErr(fmt.Sprintf("join %s against %s", target, witness), jerr)
		}
		parts.Tables.Push(joined, proof.TableEntry{Table: tab, Degree: degree})
		o.Logger.Debug("condition within bound", "target", target.String(),
			"witness", witness.String(), "degree", degree)
	} else {
		// Case 1.2: the join would exceed B; discharge the demand instead.
		o.Logger.Debug("condition exceeds bound, resetting", "target", target.String(),
			"witness", witness.String(), "degree", degree, "bound", parts.Bound)
		if rerr := resetLemma(&parts, joined, o, resetBudget); rerr != nil {
			return nil, rerr
		}
	}

	child, err := parts.Seal()
	if err != nil {
		return nil, algebraErr("sealing condition child", err)
	}
	return []*proof.Subproblem{child}, nil
}

// splitChild applies the split rewrite for target (X⊕Y | ∅) and witness
// (Y | X) ∈ M: the newest table at the target is consumed, its
// X-projection is stacked at (X | ∅) with the inherited degree, and the
// witness is spent.
func splitChild(sp *proof.Subproblem, target, witness proof.Monotonicity, o *Options) ([]*proof.Subproblem, error) {
	parts := sp.Parts()

	tXY, err := parts.Tables.Pop(target)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("split of %s", target), err)
	}
	if err = parts.D.Dec(target); err != nil {
		return nil, algebraErr(fmt.Sprintf("split of %s", target), err)
	}
	if err = parts.M.Dec(witness); err != nil {
		return nil, algebraErr(fmt.Sprintf("split witness %s", witness), err)
	}

	mX := proof.Unconditional(witness.X)
	parts.D.Inc(mX)
	proj, err := relation.Project(tXY.Table, witness.X)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("project %s to %s", target, witness.X), err)
	}
	parts.Tables.Push(mX, proof.TableEntry{Table: proj, Degree: tXY.Degree})
	o.Logger.Debug("split", "target", target.String(), "witness", witness.String())

	child, err := parts.Seal()
	if err != nil {
		return nil, algebraErr("sealing split child", err)
	}
	return []*proof.Subproblem{child}, nil
}

// partitionChildren applies the partition rewrite for target (X⊕Y | ∅)
// and witness (Y ; Z | X) ∈ S: the newest table at the target is
// dyadically partitioned by X, and every non-empty piece becomes one
// child carrying the piece's X-projection at (X | ∅) and the extension
// of its (X → Y) construction by Z at (Y | X⊕Z). The witness is spent
// once, across all children.
func partitionChildren(sp *proof.Subproblem, target proof.Monotonicity, witness proof.Submodularity, o *Options) ([]*proof.Subproblem, error) {
	base := sp.Parts()

	tXY, err := base.Tables.Pop(target)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("partition of %s", target), err)
	}
	if err = base.D.Dec(target); err != nil {
		return nil, algebraErr(fmt.Sprintf("partition of %s", target), err)
	}
	if err = base.S.Dec(witness); err != nil {
		return nil, algebraErr(fmt.Sprintf("partition witness %s", witness), err)
	}

	mX := proof.Unconditional(witness.X)
	mYXZ := proof.Mono(witness.Y, witness.X.SymDiff(witness.Z))
	base.D.Inc(mX)
	base.D.Inc(mYXZ)

	pieces, err := relation.Partition(tXY.Table, witness.X)
	if err != nil {
		return nil, algebraErr(fmt.Sprintf("partition %s by %s", target, witness.X), err)
	}
	o.Logger.Debug("partition", "target", target.String(), "witness", witness.String(),
		"pieces", len(pieces))

	children := make([]*proof.Subproblem, 0, len(pieces))
	for i, piece := range pieces {
		parts := base.Clone()

		proj, perr := relation.Project(piece, witness.X)
		if perr != nil {
			return nil, algebraErr(fmt.Sprintf("project piece %d to %s", i, witness.X), perr)
		}
		parts.Tables.Push(mX, proof.TableEntry{Table: proj, Degree: float64(proj.Len())})

		dict, cerr := relation.Construction(piece, witness.X, witness.Y)
		if cerr != nil {
			return nil, algebraErr(fmt.Sprintf("construct piece %d by %s", i, witness.X), cerr)
		}
		ext, eerr := relation.Extension(dict, witness.Z)
		if eerr != nil {
			return nil, algebraErr(fmt.Sprintf("extend piece %d by %s", i, witness.Z), eerr)
		}
		parts.Dicts.Push(mYXZ, proof.DictEntry{Dict: ext, Degree: float64(relation.Degree(ext))})

		child, serr := parts.Seal()
		if serr != nil {
			return nil, algebraErr("sealing partition child", serr)
		}
		children = append(children, child)
	}
	return children, nil
}
