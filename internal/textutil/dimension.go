// Package textutil provides the string-processing primitives used to turn
// raw storefront text fragments into typed fields: dimension splitting,
// ordered find/replace normalization, and letter/digit run tokenization.
package textutil

import (
	"strings"
	"unicode"
)

// dimensionRunes are the non-ASCII characters that may start a unit or
// currency suffix. ASCII letters are handled separately.
const dimensionRunes = "äöüÄÖÜß€$£%"

// isDimensionRune reports whether r can start the dimension part of a token.
func isDimensionRune(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	return strings.ContainsRune(dimensionRunes, r)
}

// SplitDimension separates a leading numeric quantity from a trailing unit
// or currency suffix, e.g. "400g" -> ("400", "g") and "2.99€" -> ("2.99", "€").
// Tokens that are empty or do not start with a decimal digit are treated as
// non-quantitative: the quantity is empty and the token is returned whole as
// the dimension. Both parts are whitespace-trimmed.
func SplitDimension(token string) (quantity, dimension string) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", token
	}

	runes := []rune(trimmed)
	if !unicode.IsDigit(runes[0]) {
		return "", token
	}

	for i, r := range runes {
		if isDimensionRune(r) {
			return strings.TrimSpace(string(runes[:i])), strings.TrimSpace(string(runes[i:]))
		}
	}

	// No dimension character found: the whole token is the quantity.
	return trimmed, ""
}
