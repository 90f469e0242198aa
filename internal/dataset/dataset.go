// Package dataset loads an accumulated CSV file back into a typed tabular
// structure for the upload phase.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Kind classifies a cell value.
type Kind int

const (
	// Empty marks a cell with no value; distinct from zero and from "".
	Empty Kind = iota
	// Number marks a cell parsed as a decimal.
	Number
	// Text marks any other cell.
	Text
)

// Cell is one typed CSV cell.
type Cell struct {
	Kind   Kind
	Number float64
	Text   string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Number: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Text: s}
}

// Dataset is a header plus typed rows, in file order.
type Dataset struct {
	Columns []string
	Rows    [][]Cell
}

// Load reads a CSV file written by the store: first row is the header,
// empty cells become Empty, cells that parse as decimals become Number and
// everything else stays Text.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}

	ds := &Dataset{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for i, cell := range rec {
			row[i] = typeCell(cell)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func typeCell(s string) Cell {
	if s == "" {
		return Cell{Kind: Empty}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(v)
	}
	return TextCell(s)
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of column i across all rows.
func (d *Dataset) Column(i int) []Cell {
	cells := make([]Cell, 0, len(d.Rows))
	for _, row := range d.Rows {
		if i < len(row) {
			cells = append(cells, row[i])
		}
	}
	return cells
}
