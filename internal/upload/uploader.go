package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/philipp/grocery-harvester/internal/dataset"
	"github.com/philipp/grocery-harvester/internal/sqlgen"
)

// Uploader loads a dataset into one database table: CREATE (optionally
// DROP first), then one INSERT per row. Per-statement failures are
// recovered by the Executor; only malformed statement construction aborts.
type Uploader struct {
	Database string
	Table    string
	Exec     *Executor
}

// DropTable drops the target table if it exists.
func (u *Uploader) DropTable(ctx context.Context) error {
	stmt := sqlgen.DropTable{Database: u.Database, Table: u.Table, IfExists: true}.Build()
	return u.Exec.Execute(ctx, stmt)
}

// CreateTable creates the target table for the dataset's columns.
func (u *Uploader) CreateTable(ctx context.Context, ds *dataset.Dataset, types sqlgen.TypeMap) error {
	stmt, err := sqlgen.CreateTable{
		Database:    u.Database,
		Tables:      []string{u.Table},
		Columns:     ds.Columns,
		Types:       types,
		IfNotExists: true,
	}.Build()
	if err != nil {
		return fmt.Errorf("failed to build CREATE statement: %w", err)
	}
	return u.Exec.Execute(ctx, stmt)
}

// InsertDataset inserts every dataset row. Columns named in jsonArrayCols
// are uploaded as JSON array literals built from their pipe-joined CSV
// value. A row whose statement fails is recorded and skipped; the
// remaining rows are still attempted.
func (u *Uploader) InsertDataset(ctx context.Context, ds *dataset.Dataset, jsonArrayCols []string) error {
	jsonCols := make(map[string]bool, len(jsonArrayCols))
	for _, c := range jsonArrayCols {
		jsonCols[c] = true
	}

	for _, row := range ds.Rows {
		values := make([]sqlgen.Literal, len(row))
		for i, cell := range row {
			values[i] = literalFor(cell, jsonCols[ds.Columns[i]])
		}

		stmt, err := sqlgen.InsertRow{
			Database: u.Database,
			Table:    u.Table,
			Columns:  ds.Columns,
			Values:   values,
		}.Build()
		if err != nil {
			return fmt.Errorf("failed to build INSERT statement: %w", err)
		}

		// Execution failures are on the failed list; keep going.
		_ = u.Exec.Execute(ctx, stmt)
	}
	return nil
}

// literalFor picks the literal variant for one cell.
func literalFor(cell dataset.Cell, jsonArray bool) sqlgen.Literal {
	switch cell.Kind {
	case dataset.Number:
		return sqlgen.Number(cell.Number)
	case dataset.Text:
		if jsonArray {
			return sqlgen.JSONArrayRaw(quoteList(cell.Text))
		}
		return sqlgen.Text(cell.Text)
	default:
		return sqlgen.Null()
	}
}

// quoteList re-renders a pipe-joined trail ("a|b|c") as a comma-joined list
// of single-quoted literals ("'a','b','c'") for JSON array wrapping.
func quoteList(s string) string {
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = "'" + parts[i] + "'"
	}
	return strings.Join(parts, ",")
}
