package spec

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vakumar1/panda/proof"
)

// File mirrors the YAML specification document.
type File struct {
	GlobalSchema     []string    `yaml:"GlobalSchema"`
	OutputAttributes [][]string  `yaml:"OutputAttributes"`
	Tables           []TableSpec `yaml:"Tables"`
	M                []MonoSpec  `yaml:"M"`
	S                []SubSpec   `yaml:"S"`
}

// TableSpec is one Tables entry: [filename, constraint, weight].
type TableSpec struct {
	File       string
	Constraint float64
	Weight     float64
}

// UnmarshalYAML decodes the three-element sequence form.
func (t *TableSpec) UnmarshalYAML(value *yaml.Node) error {
	var raw []string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("table entry needs [file, constraint, weight], got %d elements", len(raw))
	}
	t.File = raw[0]
	if _, err := fmt.Sscanf(raw[1], "%g", &t.Constraint); err != nil {
		return fmt.Errorf("table %q: constraint %q is not a number", t.File, raw[1])
	}
	if _, err := fmt.Sscanf(raw[2], "%g", &t.Weight); err != nil {
		return fmt.Errorf("table %q: weight %q is not a number", t.File, raw[2])
	}
	return nil
}

// MonoSpec is one M entry: [Y columns, X columns, count].
type MonoSpec struct {
	Y     []string
	X     []string
	Count int
}

// UnmarshalYAML decodes the three-element sequence form.
func (m *MonoSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 3 {
		return fmt.Errorf("monotonicity entry needs [Y, X, count]")
	}
	if err := value.Content[0].Decode(&m.Y); err != nil {
		return err
	}
	if err := value.Content[1].Decode(&m.X); err != nil {
		return err
	}
	return value.Content[2].Decode(&m.Count)
}

// SubSpec is one S entry: [Y columns, Z columns, X columns, count].
type SubSpec struct {
	Y     []string
	Z     []string
	X     []string
	Count int
}

// UnmarshalYAML decodes the four-element sequence form.
func (s *SubSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 4 {
		return fmt.Errorf("submodularity entry needs [Y, Z, X, count]")
	}
	if err := value.Content[0].Decode(&s.Y); err != nil {
		return err
	}
	if err := value.Content[1].Decode(&s.Z); err != nil {
		return err
	}
	if err := value.Content[2].Decode(&s.X); err != nil {
		return err
	}
	return value.Content[3].Decode(&s.Count)
}

// Result is the loader's output: the resolved schema and the initial
// subproblem.
type Result struct {
	Schema  *Schema
	Problem *proof.Subproblem
}

// Load reads the YAML spec file under specDir, loads every referenced
// CSV table under tablesDir, and assembles the initial subproblem: Z
// from the output groups, T_tables and D from the tables, M and S from
// the witness declarations, and the bound Π constraintᵢ^weightᵢ.
//
// Structural defects are aggregated; the returned error wraps
// ErrSpecInvalid and lists all of them. A defect in the global schema is
// returned alone, since nothing else is checked without a schema.
func Load(specDir, specFile, tablesDir string) (*Result, error) {
	raw, err := os.ReadFile(filepath.Join(specDir, specFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecInvalid, err)
	}
	var doc File
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecInvalid, err)
	}
	return Build(&doc, tablesDir)
}

// Build assembles the initial subproblem from an already-decoded spec
// document.
func Build(doc *File, tablesDir string) (*Result, error) {
	schema, err := parseSchema(doc.GlobalSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecInvalid, err)
	}

	var merr *multierror.Error
	parts := proof.Parts{
		Z:      proof.NewAttrsMultiset(),
		D:      proof.NewMonoMultiset(),
		Tables: proof.NewTableStacks(),
		Dicts:  proof.NewDictStacks(),
		M:      proof.NewMonoMultiset(),
		S:      proof.NewSubMultiset(),
		Bound:  1,
	}

	// 1) Tables: load each CSV, stack it under its demand, grow the bound.
	for _, ts := range doc.Tables {
		tab, lerr := loadTable(schema, filepath.Join(tablesDir, ts.File))
		if lerr != nil {
			merr = multierror.Append(merr, lerr)
			continue
		}
		if !(ts.Constraint > 0) {
			merr = multierror.Append(merr, fmt.Errorf("table %q: constraint must be positive", ts.File))
			continue
		}
		m := proof.Unconditional(tab.Attrs())
		parts.D.Inc(m)
		parts.Tables.Push(m, proof.TableEntry{Table: tab, Degree: ts.Constraint})
		parts.Bound *= math.Pow(ts.Constraint, ts.Weight)
	}

	// 2) Output groups: duplicates accumulate as counts.
	for i, cols := range doc.OutputAttributes {
		group, rerr := schema.Resolve(cols)
		if rerr != nil {
			merr = multierror.Append(merr, fmt.Errorf("output group %d: %w", i, rerr))
			continue
		}
		if group.IsEmpty() {
			merr = multierror.Append(merr, fmt.Errorf("output group %d is empty", i))
			continue
		}
		parts.Z.Inc(group)
	}

	// 3) Monotonicity witnesses.
	for i, ms := range doc.M {
		y, yerr := schema.Resolve(ms.Y)
		x, xerr := schema.Resolve(ms.X)
		if yerr != nil || xerr != nil {
			merr = multierror.Append(merr, fmt.Errorf("monotonicity %d: %w", i, firstErr(yerr, xerr)))
			continue
		}
		if !y.Disjoint(x) {
			merr = multierror.Append(merr, fmt.Errorf("monotonicity %d: Y %s overlaps X %s", i, y, x))
			continue
		}
		if ms.Count < 1 {
			merr = multierror.Append(merr, fmt.Errorf("monotonicity %d: count must be positive", i))
			continue
		}
		for n := 0; n < ms.Count; n++ {
			parts.M.Inc(proof.Mono(y, x))
		}
	}

	// 4) Submodularity witnesses.
	for i, ss := range doc.S {
		y, yerr := schema.Resolve(ss.Y)
		z, zerr := schema.Resolve(ss.Z)
		x, xerr := schema.Resolve(ss.X)
		if yerr != nil || zerr != nil || xerr != nil {
			merr = multierror.Append(merr, fmt.Errorf("submodularity %d: %w", i, firstErr(yerr, zerr, xerr)))
			continue
		}
		if y.IsEmpty() || z.IsEmpty() {
			merr = multierror.Append(merr, fmt.Errorf("submodularity %d: Y and Z must be non-empty", i))
			continue
		}
		if !y.Disjoint(z) || !y.Disjoint(x) || !z.Disjoint(x) {
			merr = multierror.Append(merr, fmt.Errorf("submodularity %d: masks %s %s %s overlap", i, y, z, x))
			continue
		}
		if ss.Count < 1 {
			merr = multierror.Append(merr, fmt.Errorf("submodularity %d: count must be positive", i))
			continue
		}
		for n := 0; n < ss.Count; n++ {
			parts.S.Inc(proof.Sub(y, z, x))
		}
	}

	if err = merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecInvalid, err)
	}

	problem, err := parts.Seal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpecInvalid, err)
	}
	return &Result{Schema: schema, Problem: problem}, nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
