// Package csvstore persists product records as CSV rows and tracks per-run
// statistics. The store is owned by exactly one run; concurrent writers are
// not supported.
package csvstore

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipp/grocery-harvester/internal/product"
	"github.com/philipp/grocery-harvester/internal/textutil"
)

// Store appends product records to a single destination CSV file. The file
// is opened and closed on every append; the header row is written exactly
// once, when the file is still empty.
type Store struct {
	path string
}

// New returns a store without a destination. SetDestination must be called
// before the first Append.
func New() *Store {
	return &Store{}
}

// Path returns the current destination file path.
func (s *Store) Path() string {
	return s.path
}

// SetDestination creates the destination file fresh, truncating any
// pre-existing file at that path.
func (s *Store) SetDestination(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv destination %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close csv destination %s: %w", path, err)
	}
	s.path = path
	return nil
}

// Append writes one record as a CSV row, preceded by the header row when the
// file is empty. Numeric fields are written unquoted; text fields are
// double-quoted after numeric coercion. A non-nil error means the row was
// not written; the caller records the failure, no retry happens here.
func (s *Store) Append(rec *product.Record) error {
	if s.path == "" {
		return fmt.Errorf("csv destination not set")
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(strings.Join(product.Columns(), ","))
		b.WriteByte('\n')
	}
	b.WriteString(formatRow(rec))

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.path, err)
	}
	return nil
}

// formatRow renders one record in column order.
func formatRow(rec *product.Record) string {
	cells := []string{
		textCell(rec.ProductName),
		textCell(rec.Category),
		textCell(rec.Image),
		numberCell(rec.Price),
		textCell(rec.ProductNote),
		optionalCell(rec.PriceNote),
		textCell(rec.PriceNoteDim),
		textCell(rec.Feature),
		optionalCell(rec.CalorificValueKJ),
		optionalCell(rec.CalorificValueKcal),
		optionalCell(rec.Fat),
		optionalCell(rec.SaturatedFat),
		optionalCell(rec.Carbohydrates),
		optionalCell(rec.Sugar),
		optionalCell(rec.Protein),
		optionalCell(rec.Salt),
		optionalCell(rec.PackageSize),
		textCell(rec.PackageSizeDim),
		optionalCell(rec.ServingSize),
		textCell(rec.ServingSizeDim),
		`"` + rec.Timestamp.Format(product.TimestampLayout) + `"`,
	}
	return strings.Join(cells, ",") + "\n"
}

// textCell coerces a text field to a number where possible; otherwise the
// field is written double-quoted with quote characters stripped.
func textCell(s string) string {
	if v, ok := textutil.CoerceNumeric(s); ok {
		return numberCell(v)
	}
	return `"` + textutil.StripQuotes(s) + `"`
}

func numberCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optionalCell renders an absent numeric value as an empty cell; empty is
// distinct from zero.
func optionalCell(v *float64) string {
	if v == nil {
		return ""
	}
	return numberCell(*v)
}
