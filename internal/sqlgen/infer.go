package sqlgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/philipp/grocery-harvester/internal/dataset"
)

// InferOptions configures column type inference. The margins are safety
// buffers added to inferred widths so unseen future data does not truncate.
type InferOptions struct {
	UseText           bool // emit TEXT instead of a sized VARCHAR
	UseBigInt         bool // force BIGINT for integral columns
	RoundDecimals     int  // round numbers to this many places before sizing; negative disables
	VarCharMargin     int
	DecimalIntMargin  int
	DecimalFracMargin int
	IntMargin         int
}

// DefaultInferOptions mirrors the margins used for the product table upload.
func DefaultInferOptions() InferOptions {
	return InferOptions{
		UseText:           true,
		RoundDecimals:     3,
		DecimalIntMargin:  3,
		DecimalFracMargin: 1,
	}
}

// dateLayouts are the accepted date-only formats, US and German styles.
var dateLayouts = []string{
	"01/02/2006",
	"01/02/06",
	"2006-01-02",
	"06-01-02",
	"2006/01/02",
	"06/01/02",
	"02.01.2006",
	"02.01.06",
}

// IsDate reports whether s parses as a date in any accepted layout.
func IsDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// InferColumnTypes scans every column's sample values and picks a type:
// DATE when any value parses as a date, otherwise a text type when any
// non-date string appears, otherwise DECIMAL when any value carries a
// fraction, otherwise the narrowest integer type whose range covers twice
// the observed maximum absolute value plus the margin (the doubling leaves
// headroom for sign and growth). Each column is independent; evaluation
// order never changes the result.
func InferColumnTypes(ds *dataset.Dataset, opts InferOptions) TypeMap {
	types := make(TypeMap, len(ds.Columns))
	for i, col := range ds.Columns {
		types[col] = inferColumn(ds.Column(i), opts)
	}
	return types
}

func inferColumn(cells []dataset.Cell, opts InferOptions) string {
	var (
		hasDate, hasText, hasFraction, hasNumber bool

		maxLen        int
		maxIntDigits  int
		maxFracDigits int
		maxRange      float64
	)

	for _, c := range cells {
		switch c.Kind {
		case dataset.Text:
			if IsDate(c.Text) {
				hasDate = true
			}
			hasText = true
			if len(c.Text) > maxLen {
				maxLen = len(c.Text)
			}
		case dataset.Number:
			n := c.Number
			if math.IsNaN(n) {
				continue
			}
			if opts.RoundDecimals >= 0 {
				n = roundTo(n, opts.RoundDecimals)
			}
			hasNumber = true

			if d := intDigits(n); d > maxIntDigits {
				maxIntDigits = d
			}
			if frac := fracDigits(n); frac > 0 {
				hasFraction = true
				if frac > maxFracDigits {
					maxFracDigits = frac
				}
			} else if r := (math.Abs(n) + float64(opts.IntMargin)) * 2; r > maxRange {
				maxRange = r
			}
		}
	}

	// Text evidence outranks numeric evidence: a column mixing strings and
	// numbers stays a text type, never DECIMAL.
	switch {
	case hasDate:
		return "DATE"
	case hasText:
		if opts.UseText {
			return "TEXT"
		}
		return fmt.Sprintf("VARCHAR(%d)", maxLen+opts.VarCharMargin)
	case hasFraction:
		return fmt.Sprintf("DECIMAL(%d,%d)",
			maxIntDigits+maxFracDigits+opts.DecimalIntMargin,
			maxFracDigits+opts.DecimalFracMargin)
	case hasNumber:
		if opts.UseBigInt {
			return "BIGINT"
		}
		return narrowestInt(maxRange)
	default:
		return defaultColumnType
	}
}

func narrowestInt(maxRange float64) string {
	switch {
	case maxRange < 1<<8:
		return "TINYINT"
	case maxRange < 1<<16:
		return "SMALLINT"
	case maxRange < 1<<24:
		return "MEDIUMINT"
	case maxRange < 1<<32:
		return "INT"
	case maxRange < math.Pow(2, 64):
		return "BIGINT"
	default:
		return defaultColumnType
	}
}

func roundTo(n float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(n*p) / p
}

// intDigits counts the digits of the integer part of n.
func intDigits(n float64) int {
	return len(strconv.FormatFloat(math.Trunc(math.Abs(n)), 'f', -1, 64))
}

// fracDigits counts the decimal places of n's shortest representation.
func fracDigits(n float64) int {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
