package proof

import (
	"fmt"
	"strings"

	"github.com/vakumar1/panda/attrset"
)

// Subproblem is one node of the rewriting tree: the immutable tuple
// (Z, D, T_tables, T_dicts, M, S) plus the global bound B.
//
//   - Z: output attribute groups still owed (counted).
//   - D: monotonicity demands, conditional and unconditional (counted).
//   - T_tables: per unconditional demand, its stack of (table, degree).
//   - T_dicts: per conditional demand, its stack of (dictionary, degree).
//   - M: monotonicity witnesses for split/reset rewrites (counted).
//   - S: submodularity witnesses for partition/reset rewrites (counted).
//
// A Subproblem is never mutated after construction. Rewriters call Parts
// for a copy-on-write working view and Seal the result into a fresh,
// validated node.
type Subproblem struct {
	z      *Multiset[attrset.AttrSet]
	d      *Multiset[Monotonicity]
	tables *TableStacks
	dicts  *DictStacks
	m      *Multiset[Monotonicity]
	s      *Multiset[Submodularity]
	bound  float64
}

// Parts is a mutable working copy of a subproblem's components. Every
// component is a copy-on-write clone, so edits never reach the source
// node or any sibling branch.
type Parts struct {
	Z      *Multiset[attrset.AttrSet]
	D      *Multiset[Monotonicity]
	Tables *TableStacks
	Dicts  *DictStacks
	M      *Multiset[Monotonicity]
	S      *Multiset[Submodularity]
	Bound  float64
}

// NewSubproblem validates and assembles a subproblem from its parts.
func NewSubproblem(p Parts) (*Subproblem, error) {
	sp := &Subproblem{
		z:      p.Z,
		d:      p.D,
		tables: p.Tables,
		dicts:  p.Dicts,
		m:      p.M,
		s:      p.S,
		bound:  p.Bound,
	}
	if err := sp.validate(); err != nil {
		return nil, err
	}
	return sp, nil
}

// Z returns the output-group multiset. Read-only by contract.
func (sp *Subproblem) Z() *Multiset[attrset.AttrSet] { return sp.z }

// D returns the demand multiset. Read-only by contract.
func (sp *Subproblem) D() *Multiset[Monotonicity] { return sp.d }

// Tables returns the table stacks. Read-only by contract.
func (sp *Subproblem) Tables() *TableStacks { return sp.tables }

// Dicts returns the dictionary stacks. Read-only by contract.
func (sp *Subproblem) Dicts() *DictStacks { return sp.dicts }

// M returns the split-witness multiset. Read-only by contract.
func (sp *Subproblem) M() *Multiset[Monotonicity] { return sp.m }

// S returns the partition-witness multiset. Read-only by contract.
func (sp *Subproblem) S() *Multiset[Submodularity] { return sp.s }

// Bound returns the global size bound B.
func (sp *Subproblem) Bound() float64 { return sp.bound }

// Parts returns a mutable copy-on-write view of the subproblem.
func (sp *Subproblem) Parts() Parts {
	return Parts{
		Z:      sp.z.Clone(),
		D:      sp.d.Clone(),
		Tables: sp.tables.Clone(),
		Dicts:  sp.dicts.Clone(),
		M:      sp.m.Clone(),
		S:      sp.s.Clone(),
		Bound:  sp.bound,
	}
}

// Clone returns an independent copy of the working view, for rewrites
// that emit one child per partition piece from a shared base.
func (p Parts) Clone() Parts {
	return Parts{
		Z:      p.Z.Clone(),
		D:      p.D.Clone(),
		Tables: p.Tables.Clone(),
		Dicts:  p.Dicts.Clone(),
		M:      p.M.Clone(),
		S:      p.S.Clone(),
		Bound:  p.Bound,
	}
}

// Seal validates the working view and freezes it into a subproblem.
func (p Parts) Seal() (*Subproblem, error) { return NewSubproblem(p) }

// validate enforces the structural invariants listed in the package
// documentation.
func (sp *Subproblem) validate() error {
	if !(sp.bound > 0) {
		return fmt.Errorf("%w: %v", ErrBadBound, sp.bound)
	}

	var err error
	sp.d.Each(func(m Monotonicity, count int) bool {
		if m.IsUnconditional() {
			if got := sp.tables.Count(m); got != count {
				err = fmt.Errorf("%w: %s has %d tables for count %d", ErrCountMismatch, m, got, count)
				return false
			}
		} else {
			if got := sp.dicts.Count(m); got != count {
				err = fmt.Errorf("%w: %s has %d dictionaries for count %d", ErrCountMismatch, m, got, count)
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	sp.tables.Each(func(m Monotonicity, stack []TableEntry) bool {
		if !sp.d.Has(m) {
			err = fmt.Errorf("%w: tables stacked at %s absent from D", ErrCountMismatch, m)
			return false
		}
		for _, e := range stack {
			if e.Table.Attrs() != m.Y {
				err = fmt.Errorf("%w: table %s stored at %s", ErrShapeMismatch, e.Table.Attrs(), m)
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	sp.dicts.Each(func(m Monotonicity, stack []DictEntry) bool {
		if !sp.d.Has(m) {
			err = fmt.Errorf("%w: dictionaries stacked at %s absent from D", ErrCountMismatch, m)
			return false
		}
		for _, e := range stack {
			if e.Dict.AttrsX() != m.X || e.Dict.AttrsY() != m.Y {
				err = fmt.Errorf("%w: dictionary %s->%s stored at %s",
					ErrShapeMismatch, e.Dict.AttrsX(), e.Dict.AttrsY(), m)
				return false
			}
		}
		return true
	})
	return err
}

// Key returns a structural digest over the bookkeeping components,
// suitable for detecting identical nodes in tests. Tables and
// dictionaries contribute their stack lengths, not their contents.
func (sp *Subproblem) Key() uint64 {
	seed := uint64(0)
	mix := func(h uint64) {
		seed ^= h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
	}
	sp.z.Each(func(a attrset.AttrSet, n int) bool {
		mix(a.Hash())
		mix(uint64(n))
		return true
	})
	sp.d.Each(func(m Monotonicity, n int) bool {
		mix(m.Hash())
		mix(uint64(n))
		return true
	})
	sp.m.Each(func(m Monotonicity, n int) bool {
		mix(m.Hash())
		mix(uint64(n))
		return true
	})
	sp.s.Each(func(s Submodularity, n int) bool {
		mix(s.Hash())
		mix(uint64(n))
		return true
	})
	sp.tables.Each(func(m Monotonicity, stack []TableEntry) bool {
		mix(m.Hash())
		mix(uint64(len(stack)))
		return true
	})
	sp.dicts.Each(func(m Monotonicity, stack []DictEntry) bool {
		mix(m.Hash())
		mix(uint64(len(stack)))
		return true
	})
	return seed
}

// Summary returns the node's top-level shape for error context.
func (sp *Subproblem) Summary() string {
	return fmt.Sprintf("|Z|=%d |D|=%d |M|=%d |S|=%d tables=%d dicts=%d",
		sp.z.Total(), sp.d.Total(), sp.m.Total(), sp.s.Total(),
		sp.tables.Total(), sp.dicts.Total())
}

// String renders the full bookkeeping of the node, one section per
// component.
func (sp *Subproblem) String() string {
	var sb strings.Builder
	sb.WriteString("Subproblem:\n")
	sb.WriteString("  Z\n")
	sp.z.Each(func(a attrset.AttrSet, n int) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", a, n)
		return true
	})
	sb.WriteString("  D\n")
	sp.d.Each(func(m Monotonicity, n int) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", m, n)
		return true
	})
	sb.WriteString("  tables\n")
	sp.tables.Each(func(m Monotonicity, stack []TableEntry) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", m, len(stack))
		return true
	})
	sb.WriteString("  dicts\n")
	sp.dicts.Each(func(m Monotonicity, stack []DictEntry) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", m, len(stack))
		return true
	})
	sb.WriteString("  M\n")
	sp.m.Each(func(m Monotonicity, n int) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", m, n)
		return true
	})
	sb.WriteString("  S\n")
	sp.s.Each(func(s Submodularity, n int) bool {
		fmt.Fprintf(&sb, "    %s\t%d\n", s, n)
		return true
	})
	fmt.Fprintf(&sb, "  B = %g", sp.bound)
	return sb.String()
}
