package textutil

import (
	"strconv"
	"strings"
	"unicode"
)

// Rule is one find/replace pair of a normalization chain.
type Rule struct {
	Pattern     string
	Replacement string
}

// PriceRules cleans a raw price fragment such as "2,99 €" into "2.99".
// The thousands-separator dot must be removed before the decimal comma is
// rewritten, so order matters.
var PriceRules = []Rule{
	{" €", ""},
	{"€", ""},
	{".", ""},
	{",", "."},
}

// NutrientRules cleans a nutrition-table cell such as "< 12,5 g" into "12.5".
var NutrientRules = []Rule{
	{"<", ""},
	{"g", ""},
	{".", ""},
	{",", "."},
}

// ServingRules strips the German descriptive prefixes from a serving-size
// annotation such as "je 100 g (unzubereitet)". "unzubereitet" must run
// before "zubereitet" because the latter is a substring of the former.
var ServingRules = []Rule{
	{"unzubereitet", ""},
	{"zubereitet", ""},
	{"je", ""},
	{"pro", ""},
	{"(", ""},
	{")", ""},
}

// ApplyRules applies each rule of the chain in order and returns the result.
func ApplyRules(text string, rules []Rule) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
	}
	return text
}

// TokenizeAlternating partitions text into maximal runs of letters and runs
// of digits. A class transition starts a new run; every non-alphanumeric
// character is emitted as its own single-character token. "Müsli 6x25g"
// becomes ["Müsli", " ", "6", "x", "25", "g"].
func TokenizeAlternating(text string) []string {
	const (
		classNone = iota
		classLetter
		classDigit
	)

	var tokens []string
	var run []rune
	current := classNone

	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, string(run))
			run = run[:0]
		}
	}

	for _, r := range text {
		var class int
		switch {
		case unicode.IsLetter(r):
			class = classLetter
		case unicode.IsDigit(r):
			class = classDigit
		default:
			class = classNone
		}

		if class == classNone {
			flush()
			current = classNone
			tokens = append(tokens, string(r))
			continue
		}
		if class != current {
			flush()
		}
		run = append(run, r)
		current = class
	}
	flush()

	return tokens
}

// numericNoise removes the unit and quoting noise that may surround a number
// in a free-text field: decimal comma, gram suffix, kilo prefix, quote
// characters, angle brackets, "=" and "_".
var numericNoise = strings.NewReplacer(
	",", ".",
	"g", "",
	"k", "",
	"'", "",
	`"`, "",
	">", "",
	"<", "",
	"=", "",
	"_", "",
)

// CoerceNumeric tries to read s as a number after stripping unit and
// currency noise and collapsing internal whitespace. It returns the parsed
// value and whether the coercion succeeded.
func CoerceNumeric(s string) (float64, bool) {
	cleaned := numericNoise.Replace(s)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// StripQuotes removes single and double quote characters from s. Fields that
// fail numeric coercion are persisted with their quotes stripped so the CSV
// quoting stays unambiguous.
func StripQuotes(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, `"`, "")
}
