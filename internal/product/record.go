// Package product defines the canonical product record extracted from one
// detail page and the builder that normalizes raw HTML text fragments into it.
package product

import "time"

// TimestampLayout is the wire format for the record creation instant.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one fully normalized product row. Optional numeric fields are
// pointers; nil means the page did not carry the value ("unknown" is
// distinct from zero). Optional text fields default to "".
type Record struct {
	ProductName  string
	Category     string // breadcrumb trail joined with "|"
	Image        string
	Price        float64
	ProductNote  string
	PriceNote    *float64
	PriceNoteDim string
	Feature      string

	CalorificValueKJ   *float64
	CalorificValueKcal *float64
	Fat                *float64
	SaturatedFat       *float64
	Carbohydrates      *float64
	Sugar              *float64
	Protein            *float64
	Salt               *float64

	PackageSize    *float64
	PackageSizeDim string
	ServingSize    *float64
	ServingSizeDim string

	Timestamp time.Time
}

// recordColumns is the CSV header and table column order. The kJ column
// keeps its historic capitalization.
var recordColumns = []string{
	"product_name",
	"category",
	"image",
	"price",
	"product_note",
	"price_note",
	"price_note_dim",
	"feature",
	"calorific_value_in_kJ",
	"calorific_value_in_kcal",
	"fat_in_g",
	"hereof_saturated_fatty_acids_in_g",
	"carbohydrates_in_g",
	"hereof_sugar_in_g",
	"protein_in_g",
	"salt_in_g",
	"package_size",
	"package_size_dim",
	"serving_size",
	"serving_size_dim",
	"timestamp",
}

// Columns returns the record's column names in persistence order.
func Columns() []string {
	cols := make([]string, len(recordColumns))
	copy(cols, recordColumns)
	return cols
}
