package panda_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/panda"
	"github.com/vakumar1/panda/proof"
	"github.com/vakumar1/panda/relation"
)

// ExampleRun discharges a two-table path query: the output group BCD is
// materialized by partitioning T3(C,D) on C and conditioning T2(B,C)
// against the resulting (D | B⊕C) dictionaries.
func ExampleRun() {
	mkRow := func(cells map[int]relation.Value) relation.Row {
		all := make([]relation.Value, 4)
		for i, v := range cells {
			all[i] = v
		}
		return relation.NewRow(all)
	}

	b, c, d := attrset.FromBits(1), attrset.FromBits(2), attrset.FromBits(3)

	t2 := relation.NewTable(b.Union(c))
	t3 := relation.NewTable(c.Union(d))
	for i, label := range []string{"x", "y", "z"} {
		_ = t2.Insert(mkRow(map[int]relation.Value{1: relation.Float(float64(2 * i)), 2: relation.Str(label)}))
		_ = t3.Insert(mkRow(map[int]relation.Value{2: relation.Str(label), 3: relation.Int(int64(10 * (i + 1)))}))
	}

	parts := proof.Parts{
		Z:      proof.NewAttrsMultiset(),
		D:      proof.NewMonoMultiset(),
		Tables: proof.NewTableStacks(),
		Dicts:  proof.NewDictStacks(),
		M:      proof.NewMonoMultiset(),
		S:      proof.NewSubMultiset(),
		Bound:  math.Pow(3, 1.5),
	}
	parts.Z.Inc(b.Union(c).Union(d))
	parts.S.Inc(proof.Sub(d, b, c))
	for _, tab := range []*relation.Table{t2, t3} {
		m := proof.Unconditional(tab.Attrs())
		parts.D.Inc(m)
		parts.Tables.Push(m, proof.TableEntry{Table: tab, Degree: 3})
	}
	initial, err := parts.Seal()
	if err != nil {
		fmt.Println("seal:", err)
		return
	}

	witness, err := panda.Run(initial)
	if err != nil {
		fmt.Println("run:", err)
		return
	}

	for m, tab := range witness {
		lines := make([]string, 0, tab.Len())
		tab.Each(func(r relation.Row) bool {
			lines = append(lines, r.String())
			return true
		})
		sort.Strings(lines)
		fmt.Println(m)
		for _, line := range lines {
			fmt.Println(line)
		}
	}
	// Output:
	// {1,2,3} | {}
	// null 0 x 10
	// null 2 y 20
	// null 4 z 30
}
