package spec

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/vakumar1/panda/relation"
)

// loadTable reads one CSV file into a relation table. The header row is
// matched against the global schema to derive the attribute mask; every
// data row is parsed cell by cell with the schema's typed parsers.
// Duplicate data rows collapse.
func loadTable(schema *Schema, path string) (*relation.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %q is empty", path)
	}

	// header → attribute mask plus csv-column → schema-position mapping
	header := records[0]
	positions := make([]int, len(header))
	for j, col := range header {
		i, ok := schema.Position(col)
		if !ok {
			return nil, fmt.Errorf("table %q: column %q not in global schema", path, col)
		}
		positions[j] = i
	}
	mask, err := schema.Resolve(header)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", path, err)
	}
	if mask.Count() != len(header) {
		return nil, fmt.Errorf("table %q: duplicate header columns", path)
	}

	tab := relation.NewTable(mask)
	for rowNum, record := range records[1:] {
		cells := make([]relation.Value, schema.Width())
		for j, raw := range record {
			v, perr := schema.ParseCell(positions[j], raw)
			if perr != nil {
				return nil, fmt.Errorf("table %q row %d: %w", path, rowNum+1, perr)
			}
			cells[positions[j]] = v
		}
		if err = tab.Insert(relation.NewRow(cells)); err != nil {
			return nil, fmt.Errorf("table %q row %d: %w", path, rowNum+1, err)
		}
	}
	return tab, nil
}
