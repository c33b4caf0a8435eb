package spec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vakumar1/panda/attrset"
	"github.com/vakumar1/panda/relation"
)

// Schema is the resolved global schema: attribute names in bit order
// with their cell parsers.
type Schema struct {
	names []string
	kinds []relation.Kind
	index map[string]int
}

// parseSchema resolves GlobalSchema entries of the form "name" or
// "name:type" into a Schema. Names must be unique and the width must fit
// the attribute mask.
func parseSchema(entries []string) (*Schema, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("global schema is empty")
	}
	if len(entries) > attrset.Width {
		return nil, fmt.Errorf("global schema has %d attributes, limit is %d", len(entries), attrset.Width)
	}
	s := &Schema{
		names: make([]string, 0, len(entries)),
		kinds: make([]relation.Kind, 0, len(entries)),
		index: make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		name, typeName, hasType := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("schema entry %d has no name", i)
		}
		kind := relation.KindString
		if hasType {
			switch strings.TrimSpace(typeName) {
			case "int":
				kind = relation.KindInt
			case "double":
				kind = relation.KindFloat
			case "string":
				kind = relation.KindString
			default:
				return nil, fmt.Errorf("schema entry %q has unknown type %q", name, typeName)
			}
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("schema attribute %q declared twice", name)
		}
		s.index[name] = i
		s.names = append(s.names, name)
		s.kinds = append(s.kinds, kind)
	}
	return s, nil
}

// Width returns the number of attributes.
func (s *Schema) Width() int { return len(s.names) }

// Names returns the attribute names in bit order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Kind returns the declared cell type of attribute position i.
func (s *Schema) Kind(i int) relation.Kind { return s.kinds[i] }

// Position returns the bit position of the named attribute.
func (s *Schema) Position(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Resolve maps a list of column names to their attribute mask.
func (s *Schema) Resolve(cols []string) (attrset.AttrSet, error) {
	var a attrset.AttrSet
	for _, col := range cols {
		i, ok := s.index[col]
		if !ok {
			return 0, fmt.Errorf("column %q not in global schema", col)
		}
		a = a.Union(attrset.Single(i))
	}
	return a, nil
}

// ParseCell parses a raw CSV cell for attribute position i.
func (s *Schema) ParseCell(i int, raw string) (relation.Value, error) {
	switch s.kinds[i] {
	case relation.KindInt:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return relation.Value{}, fmt.Errorf("column %q: %q is not an int", s.names[i], raw)
		}
		return relation.Int(v), nil
	case relation.KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return relation.Value{}, fmt.Errorf("column %q: %q is not a double", s.names[i], raw)
		}
		return relation.Float(v), nil
	default:
		return relation.Str(raw), nil
	}
}
