package panda

import (
	"fmt"

	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
)

// Witness maps each satisfied output demand (W | ∅) to its materialized
// relation over W. Every key's Y matches an output group of the original
// subproblem.
type Witness map[proof.Monotonicity]*relation.Table

// leaf pairs a finished subproblem with the output demand that closed it.
type leaf struct {
	sp  *proof.Subproblem
	out proof.Monotonicity
}

// node tracks a pending subproblem and its depth in the rewriting tree.
type node struct {
	sp    *proof.Subproblem
	level int
}

// Run explores the rewriting tree rooted at initial breadth-first until
// every branch reaches a leaf, then unions the leaf tables per output
// group into the returned witness.
//
// Preconditions and validation (in order):
//  1. initial must be non-nil.
//  2. Options are applied over DefaultOptions; invalid values panic in
//     their constructors.
//
// Complexity: each step pops one node and applies exactly one case
// rewrite; partition fans out O(log |T|) children. The step ceiling
// bounds total work.
func Run(initial *proof.Subproblem, opts ...Option) (Witness, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if initial == nil {
		return nil, algebraErr("run", fmt.Errorf("nil initial subproblem"))
	}

	// The reset chain spends one witness or dictionary entry per hop, so
	// the initial proof size (plus headroom for stacked dictionaries)
	// bounds any well-posed recursion.
	resetBudget := cfg.MaxResetDepth
	if resetBudget == 0 {
		resetBudget = initial.D().Total() + initial.M().Total() + initial.S().Total() + 64
	}

	queue := []node{{sp: initial, level: 0}}
	var leaves []leaf
	steps := uint64(0)

	for len(queue) > 0 {
		if steps >= cfg.MaxSteps {
			return nil, fmt.Errorf("%w: %d steps, %d pending", ErrDiverged, steps, len(queue))
		}
		steps++

		cur := queue[0]
		queue = queue[1:]
		cfg.Logger.Debug("dequeue", "level", cur.level, "pending", len(queue))

		if out, ok := leafCheck(initial, cur.sp); ok {
			cfg.Logger.Debug("leaf", "level", cur.level, "output", out.String())
			leaves = append(leaves, leaf{sp: cur.sp, out: out})
			continue
		}

		children, err := expand(cur.sp, &cfg, resetBudget)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			queue = append(queue, node{sp: child, level: cur.level + 1})
		}
	}

	cfg.Logger.Info("rewriting finished", "steps", steps, "leaves", len(leaves))
	return assemble(leaves)
}

// leafCheck scans cur's demands for an unconditional monotonicity whose
// mask is an owed output group of the original subproblem.
func leafCheck(original, cur *proof.Subproblem) (proof.Monotonicity, bool) {
	var out proof.Monotonicity
	ok := false
	cur.D().Each(func(m proof.Monotonicity, _ int) bool {
		if m.IsUnconditional() && original.Z().Has(m.Y) {
			out, ok = m, true
			return false
		}
		return true
	})
	return out, ok
}

// expand applies the first matching case rewrite across cur's
// unconditional demands, trying condition, split, then partition for
// each in deterministic order.
func expand(cur *proof.Subproblem, cfg *Options, resetBudget int) ([]*proof.Subproblem, error) {
	var targets []proof.Monotonicity
	cur.D().Each(func(m proof.Monotonicity, _ int) bool {
		if m.IsUnconditional() {
			targets = append(targets, m)
		}
		return true
	})
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoApplicableMonotonicity, cur.Summary())
	}

	for _, target := range targets {
		if witness, ok := findCondition(cur, target); ok {
			cfg.Logger.Debug("case condition", "target", target.String(), "witness", witness.String())
			return conditionChildren(cur, target, witness, cfg, resetBudget)
		}
		if witness, ok := findSplit(cur, target); ok {
			cfg.Logger.Debug("case split", "target", target.String(), "witness", witness.String())
			return splitChild(cur, target, witness, cfg)
		}
		if witness, ok := findPartition(cur, target); ok {
			cfg.Logger.Debug("case partition", "target", target.String(), "witness", witness.String())
			return partitionChildren(cur, target, witness, cfg)
		}
	}
	return nil, fmt.Errorf("%w: %d unconditional demands, %s",
		ErrNoApplicableCase, len(targets), cur.Summary())
}

// assemble unions the front table of each leaf's satisfied demand into
// the per-output witness.
func assemble(leaves []leaf) (Witness, error) {
	out := make(Witness, len(leaves))
	for _, lf := range leaves {
		entry, err := lf.sp.Tables().First(lf.out)
		if err != nil {
			return nil, algebraErr(fmt.Sprintf("witness at %s", lf.out), err)
		}
		if acc, ok := out[lf.out]; ok {
			if err := acc.Absorb(entry.Table); err != nil {
				return nil, algebraErr(fmt.Sprintf("witness union at %s", lf.out), err)
			}
		} else {
			out[lf.out] = entry.Table.Clone()
		}
	}
	return out, nil
}
