package panda

import (
	"fmt"

	"github.com/vakumar1/panda/proof"
)

// resetLemma eliminates the unconditional demand target from the working
// view without materializing a relation for it, preserving the underlying
// Shannon inequality. It consumes, in order of preference:
//
//   - R0: a matching output group from Z (base case);
//   - R1: a demand (Y | target) from D, popping its newest dictionary and
//     recursing on (Y ⊕ target | ∅);
//   - R2: a witness (Y | X) from M with Y ⊕ X = target, recursing on
//     (X | ∅);
//   - R3: a witness (Y ; Z | X) from S with Y ⊕ X = target, gaining the
//     split witness (Z | X) in M and recursing on (X⊕Y⊕Z | ∅).
//
// Each recursion spends a witness or shortens a dictionary stack, so the
// chain is finite on well-posed inputs; budget caps it regardless and
// returns ErrDiverged when exhausted. No matching case is ErrResetDeadEnd.
func resetLemma(parts *proof.Parts, target proof.Monotonicity, o *Options, budget int) error {
	if budget <= 0 {
		return fmt.Errorf("%w: reset depth exhausted at %s", ErrDiverged, target)
	}
	if err := parts.D.Dec(target); err != nil {
		return algebraErr(fmt.Sprintf("reset of %s", target), err)
	}

	// R0: the demand is an owed output group.
	if target.IsUnconditional() && parts.Z.Has(target.Y) {
		if err := parts.Z.Dec(target.Y); err != nil {
			return algebraErr(fmt.Sprintf("reset base %s", target), err)
		}
		o.Logger.Debug("reset base", "target", target.String())
		return nil
	}

	// R1: a demand conditions on the target.
	var cond proof.Monotonicity
	found := false
	parts.D.Each(func(m proof.Monotonicity, _ int) bool {
		if m.X == target.Y {
			cond, found = m, true
			return false
		}
		return true
	})
	if found {
		if err := parts.D.Dec(cond); err != nil {
			return algebraErr(fmt.Sprintf("reset condition %s", cond), err)
		}
		if _, err := parts.Dicts.Pop(cond); err != nil {
			return algebraErr(fmt.Sprintf("reset condition %s", cond), err)
		}
		next := proof.Unconditional(cond.Y.SymDiff(cond.X))
		parts.D.Inc(next)
		o.Logger.Debug("reset condition", "target", target.String(), "witness", cond.String())
		return resetLemma(parts, next, o, budget-1)
	}

	// R2: a split witness covers the target.
	parts.M.Each(func(m proof.Monotonicity, _ int) bool {
		if m.Y.SymDiff(m.X) == target.Y {
			cond, found = m, true
			return false
		}
		return true
	})
	if found {
		if err := parts.M.Dec(cond); err != nil {
			return algebraErr(fmt.Sprintf("reset split %s", cond), err)
		}
		next := proof.Unconditional(cond.X)
		parts.D.Inc(next)
		o.Logger.Debug("reset split", "target", target.String(), "witness", cond.String())
		return resetLemma(parts, next, o, budget-1)
	}

	// R3: a partition witness covers the target.
	var sub proof.Submodularity
	parts.S.Each(func(s proof.Submodularity, _ int) bool {
		if s.Y.SymDiff(s.X) == target.Y {
			sub, found = s, true
			return false
		}
		return true
	})
	if found {
		if err := parts.S.Dec(sub); err != nil {
			return algebraErr(fmt.Sprintf("reset partition %s", sub), err)
		}
		next := proof.Unconditional(sub.X.SymDiff(sub.Y).SymDiff(sub.Z))
		parts.D.Inc(next)
		parts.M.Inc(proof.Mono(sub.Z, sub.X))
		o.Logger.Debug("reset partition", "target", target.String(), "witness", sub.String())
		return resetLemma(parts, next, o, budget-1)
	}

	return fmt.Errorf("%w: target %s, |Z|=%d |D|=%d |M|=%d |S|=%d",
		ErrResetDeadEnd, target, parts.Z.Total(), parts.D.Total(), parts.M.Total(), parts.S.Total())
}
