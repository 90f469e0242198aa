package product

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/philipp/grocery-harvester/internal/textutil"
)

// NutrientCellCount is the fixed number of nutrition-table cells a complete
// table carries, in column order: kJ, kcal, fat, saturated fat,
// carbohydrates, sugar, protein, salt.
const NutrientCellCount = 8

// RawFieldSet holds the raw text fragments the HTML extraction collaborator
// pulled from one page. All fields except IsProductPage are optional.
type RawFieldSet struct {
	IsProductPage bool
	Title         string
	Breadcrumbs   []string
	Image         string
	PriceText     string
	PriceNoteText string
	ProductNote   string
	Feature       string
	NutrientCells []string
	ServingText   string
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// Build normalizes a raw field set into a Record. It returns (nil, nil) for
// pages without the product-detail marker and a *BuildError when a required
// field cannot be parsed.
func Build(f *RawFieldSet) (*Record, error) {
	if f == nil || !f.IsProductPage {
		return nil, nil
	}

	rec := &Record{
		ProductName: cleanLine(f.Title),
		Category:    joinBreadcrumbs(f.Breadcrumbs),
		Image:       strings.TrimSpace(f.Image),
		ProductNote: cleanLine(f.ProductNote),
		Feature:     cleanLine(f.Feature),
		Timestamp:   timeNow(),
	}

	price, err := parsePrice(f.PriceText)
	if err != nil {
		return nil, err
	}
	rec.Price = price

	rec.PriceNote, rec.PriceNoteDim = splitQuantity(f.PriceNoteText)

	// A short table means the cells no longer align with the fixed column
	// order, so none of them can be trusted; all eight fields stay empty.
	cells := f.NutrientCells
	if len(cells) < NutrientCellCount {
		cells = make([]string, NutrientCellCount)
	}
	nutrients := make([]*float64, NutrientCellCount)
	for i := 0; i < NutrientCellCount; i++ {
		nutrients[i] = parseNutrient(cells[i])
	}
	rec.CalorificValueKJ = nutrients[0]
	rec.CalorificValueKcal = nutrients[1]
	rec.Fat = nutrients[2]
	rec.SaturatedFat = nutrients[3]
	rec.Carbohydrates = nutrients[4]
	rec.Sugar = nutrients[5]
	rec.Protein = nutrients[6]
	rec.Salt = nutrients[7]

	rec.PackageSize, rec.PackageSizeDim = splitQuantity(packageSizeText(rec.ProductName))

	if serving := strings.TrimSpace(f.ServingText); serving != "" {
		serving = textutil.ApplyRules(serving, textutil.ServingRules)
		rec.ServingSize, rec.ServingSizeDim = splitQuantity(serving)
	}

	return rec, nil
}

// cleanLine trims the fragment and removes embedded newlines.
func cleanLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
}

// joinBreadcrumbs flattens the breadcrumb trail into the category field:
// entries joined with "|", a leading home entry dropped, stray quote
// characters removed. When cleaning empties the result the unmodified trail
// is kept instead, so a record with a trail never has an empty category.
func joinBreadcrumbs(crumbs []string) string {
	entries := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		entries = append(entries, textutil.StripQuotes(cleanLine(c)))
	}
	if len(entries) > 0 && entries[0] == "Startseite" {
		entries = entries[1:]
	}
	if joined := strings.Join(entries, "|"); joined != "" {
		return joined
	}
	return strings.Join(crumbs, "|")
}

// parsePrice normalizes and parses the price fragment. The price is the one
// required field; failure here fails the whole record.
func parsePrice(text string) (float64, error) {
	cleaned := textutil.ApplyRules(cleanLine(text), textutil.PriceRules)
	cleaned = strings.TrimSpace(cleaned)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &BuildError{Field: "price", Message: "cannot parse " + strconv.Quote(text), Cause: err}
	}
	return price, nil
}

// parseNutrient normalizes one nutrition-table cell. Cells that are absent
// or do not yield a number stay nil.
func parseNutrient(cell string) *float64 {
	cleaned := strings.TrimSpace(textutil.ApplyRules(cleanLine(cell), textutil.NutrientRules))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// splitQuantity dimension-splits a token and parses the quantity as a
// decimal, substituting a decimal comma. An empty quantity yields a nil
// value with the whole token preserved as the dimension.
func splitQuantity(token string) (*float64, string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ""
	}
	quantity, dim := textutil.SplitDimension(token)
	if quantity == "" {
		return nil, dim
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(quantity, ",", "."), 64)
	if err != nil {
		return nil, dim
	}
	return &v, dim
}

// packageSizeUnits are the trailing unit tokens accepted as a package size.
var packageSizeUnits = map[string]bool{
	"g":     true,
	"kg":    true,
	"mg":    true,
	"l":     true,
	"ml":    true,
	"cl":    true,
	"stück": true,
	"stk":   true,
}

// packageSizeText pulls an embedded package-size token out of a product
// title. The trailing tokens (whitespace dropped, window of five) are
// matched against three shapes:
//
//	"400" "g"            -> "400g"
//	"0" "," "75" "l"     -> "0.75l"  (comma decimal)
//	"6" "x" "25" "g"     -> "150g"   (multiplied out)
//
// Anything else yields an empty string.
func packageSizeText(title string) string {
	tokens := textutil.TokenizeAlternating(title)

	// Trailing window without whitespace tokens.
	var tail []string
	for i := len(tokens) - 1; i >= 0 && len(tail) < 5; i-- {
		if strings.TrimSpace(tokens[i]) == "" {
			continue
		}
		tail = append([]string{tokens[i]}, tail...)
	}
	n := len(tail)

	isNumber := func(s string) bool {
		r := []rune(s)
		return len(r) > 0 && unicode.IsDigit(r[0])
	}
	isUnit := func(s string) bool {
		return packageSizeUnits[strings.ToLower(s)]
	}

	if n >= 4 && isNumber(tail[n-4]) && strings.EqualFold(tail[n-3], "x") && isNumber(tail[n-2]) && isUnit(tail[n-1]) {
		count, err1 := strconv.ParseFloat(tail[n-4], 64)
		size, err2 := strconv.ParseFloat(tail[n-2], 64)
		if err1 == nil && err2 == nil {
			return strconv.FormatFloat(count*size, 'f', -1, 64) + tail[n-1]
		}
	}
	if n >= 4 && isNumber(tail[n-4]) && tail[n-3] == "," && isNumber(tail[n-2]) && isUnit(tail[n-1]) {
		return tail[n-4] + "." + tail[n-2] + tail[n-1]
	}
	if n >= 2 && isNumber(tail[n-2]) && isUnit(tail[n-1]) {
		return tail[n-2] + tail[n-1]
	}
	return ""
}
