// Package sqlgen synthesizes MySQL/MariaDB statement text: CREATE/DROP DDL,
// per-row INSERT DML with tagged value literals, and column type inference
// over sampled data.
package sqlgen

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type literalKind int

const (
	kindNull literalKind = iota
	kindJSONArray
	kindDate
	kindNumber
	kindText
	kindDateTime
)

// Literal is a tagged value to be rendered into a VALUES clause. The caller
// decides the variant once at construction time; every variant renders to
// something, so no value can be silently dropped from a statement. The zero
// value renders as NULL.
type Literal struct {
	kind   literalKind
	number float64
	text   string
	ts     time.Time
}

// Null returns the SQL NULL literal.
func Null() Literal {
	return Literal{kind: kindNull}
}

// JSONArrayRaw wraps a raw comma-joined list of literals in a JSON_ARRAY
// constructor. The value is spliced in without escaping; single quotes are
// rewritten to double quotes so single-quoted element lists become valid
// JSON strings.
func JSONArrayRaw(raw string) Literal {
	return Literal{kind: kindJSONArray, text: raw}
}

// Date returns a date-only literal, rendered "YYYY-MM-DD".
func Date(t time.Time) Literal {
	return Literal{kind: kindDate, ts: t}
}

// DateTime returns a full timestamp literal, rendered "YYYY-MM-DD HH:MM:SS".
func DateTime(t time.Time) Literal {
	return Literal{kind: kindDateTime, ts: t}
}

// Number returns a numeric literal. NaN renders as NULL; integral values
// render without a fraction.
func Number(v float64) Literal {
	return Literal{kind: kindNumber, number: v}
}

// Text returns a quoted string literal.
func Text(s string) Literal {
	return Literal{kind: kindText, text: s}
}

// Render produces the literal's statement text.
func (l Literal) Render() string {
	switch l.kind {
	case kindJSONArray:
		return "JSON_ARRAY(" + strings.ReplaceAll(l.text, "'", `"`) + ")"
	case kindDate:
		return `"` + l.ts.Format("2006-01-02") + `"`
	case kindNumber:
		if math.IsNaN(l.number) {
			return "NULL"
		}
		return strconv.FormatFloat(l.number, 'f', -1, 64)
	case kindText:
		return `"` + escapeText(l.text) + `"`
	case kindDateTime:
		return `"` + l.ts.Format("2006-01-02 15:04:05") + `"`
	default:
		return "NULL"
	}
}

// escapeText escapes backslashes and double quotes. No characters are
// dropped; single quotes are safe inside a double-quoted MySQL literal.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
