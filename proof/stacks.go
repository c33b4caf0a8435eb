package proof

import (
	"fmt"

	"github.com/vakumar1/panda/ordmap"
	"github.com/vakumar1/panda/relation"
)

// TableEntry is one materialized table with the degree bound the proof
// associates with it.
type TableEntry struct {
	Table  *relation.Table
	Degree float64
}

// DictEntry is one materialized dictionary (plain or extended) with its
// degree bound.
type DictEntry struct {
	Dict   relation.Dict
	Degree float64
}

// TableStacks maps an unconditional monotonicity to its stack of table
// entries. Push appends; Pop removes the newest entry (back-pop) and
// deletes the key when the stack empties. Slices are replaced wholesale
// on every mutation so copy-on-write clones never alias backing arrays.
type TableStacks struct {
	m *ordmap.Map[Monotonicity, []TableEntry]
}

// NewTableStacks returns an empty collection.
func NewTableStacks() *TableStacks {
	return &TableStacks{m: ordmap.New[Monotonicity, []TableEntry](monoHash, monoEqual)}
}

// Push appends e to the stack at key.
func (ts *TableStacks) Push(key Monotonicity, e TableEntry) {
	cur, _ := ts.m.Get(key)
	next := make([]TableEntry, len(cur), len(cur)+1)
	copy(next, cur)
	ts.m.Put(key, append(next, e))
}

// Pop removes and returns the newest entry at key.
func (ts *TableStacks) Pop(key Monotonicity) (TableEntry, error) {
	cur, ok := ts.m.Get(key)
	if !ok || len(cur) == 0 {
		return TableEntry{}, fmt.Errorf("%w: tables at %s", ErrStackEmpty, key)
	}
	last := cur[len(cur)-1]
	if len(cur) == 1 {
		ts.m.Delete(key)
		return last, nil
	}
	next := make([]TableEntry, len(cur)-1)
	copy(next, cur[:len(cur)-1])
	ts.m.Put(key, next)
	return last, nil
}

// First returns the oldest entry at key (the front of the stack), which
// witness assembly reads at the leaves.
func (ts *TableStacks) First(key Monotonicity) (TableEntry, error) {
	cur, ok := ts.m.Get(key)
	if !ok || len(cur) == 0 {
		return TableEntry{}, fmt.Errorf("%w: tables at %s", ErrStackEmpty, key)
	}
	return cur[0], nil
}

// Count returns the stack length at key (0 if absent).
func (ts *TableStacks) Count(key Monotonicity) int {
	cur, _ := ts.m.Get(key)
	return len(cur)
}

// Len returns the number of keyed stacks.
func (ts *TableStacks) Len() int { return ts.m.Len() }

// Total returns the number of entries across all stacks.
func (ts *TableStacks) Total() int {
	total := 0
	ts.m.Ascend(func(_ Monotonicity, s []TableEntry) bool {
		total += len(s)
		return true
	})
	return total
}

// Each visits (key, stack) pairs in deterministic order until fn returns
// false. The stack slice is shared; callers must not mutate it.
func (ts *TableStacks) Each(fn func(key Monotonicity, stack []TableEntry) bool) {
	ts.m.Ascend(fn)
}

// Clone returns an independent copy-on-write copy.
func (ts *TableStacks) Clone() *TableStacks {
	return &TableStacks{m: ts.m.Clone()}
}

// DictStacks maps a conditional monotonicity to its stack of dictionary
// entries, with the same stack discipline as TableStacks.
type DictStacks struct {
	m *ordmap.Map[Monotonicity, []DictEntry]
}

// NewDictStacks returns an empty collection.
func NewDictStacks() *DictStacks {
	return &DictStacks{m: ordmap.New[Monotonicity, []DictEntry](monoHash, monoEqual)}
}

// Push appends e to the stack at key.
func (ds *DictStacks) Push(key Monotonicity, e DictEntry) {
	cur, _ := ds.m.Get(key)
	next := make([]DictEntry, len(cur), len(cur)+1)
	copy(next, cur)
	ds.m.Put(key, append(next, e))
}

// Pop removes and returns the newest entry at key.
func (ds *DictStacks) Pop(key Monotonicity) (DictEntry, error) {
	cur, ok := ds.m.Get(key)
	if !ok || len(cur) == 0 {
		return DictEntry{}, fmt.Errorf("%w: dictionaries at %s", ErrStackEmpty, key)
	}
	last := cur[len(cur)-1]
	if len(cur) == 1 {
		ds.m.Delete(key)
		return last, nil
	}
	next := make([]DictEntry, len(cur)-1)
	copy(next, cur[:len(cur)-1])
	ds.m.Put(key, next)
	return last, nil
}

// First returns the oldest entry at key (the front of the stack).
func (ds *DictStacks) First(key Monotonicity) (DictEntry, error) {
	cur, ok := ds.m.Get(key)
	if !ok || len(cur) == 0 {
		return DictEntry{}, fmt.Errorf("%w: dictionaries at %s", ErrStackEmpty, key)
	}
	return cur[0], nil
}

// Count returns the stack length at key (0 if absent).
func (ds *DictStacks) Count(key Monotonicity) int {
	cur, _ := ds.m.Get(key)
	return len(cur)
}

// Len returns the number of keyed stacks.
func (ds *DictStacks) Len() int { return ds.m.Len() }

// Total returns the number of entries across all stacks.
func (ds *DictStacks) Total() int {
	total := 0
	ds.m.Ascend(func(_ Monotonicity, s []DictEntry) bool {
		total += len(s)
		return true
	})
	return total
}

// Each visits (key, stack) pairs in deterministic order until fn returns
// false. The stack slice is shared; callers must not mutate it.
func (ds *DictStacks) Each(fn func(key Monotonicity, stack []DictEntry) bool) {
	ds.m.Ascend(fn)
}

// Clone returns an independent copy-on-write copy.
func (ds *DictStacks) Clone() *DictStacks {
	return &DictStacks{m: ds.m.Clone()}
}
