// Package extract pulls the raw named text fragments out of an archived
// product detail page. It does no normalization; that is the record
// builder's job.
package extract

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/philipp/grocery-harvester/internal/product"
)

// Selectors for the storefront markup.
const (
	detailSelector        = "div.detail-description"
	breadcrumbSelector    = "div.breadcrumb li a"
	imageSelector         = "img.img-responsive.jq-img-zoom"
	priceSelector         = "div.price"
	priceNoteSelector     = "p.price-note"
	productNoteSelector   = "p.product-note"
	featureSelector       = "ul.characteristics.clearfix"
	nutrientTableSelector = "table.table-striped"
)

// ProductPage reads one archived HTML file and extracts the raw field set.
// A page without the detail-description marker comes back with
// IsProductPage false and every other field empty.
func ProductPage(path string) (*product.RawFieldSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return FromDocument(doc, path), nil
}

// FromDocument extracts the raw field set from a parsed document. htmlPath
// anchors relative image paths; it may be empty.
func FromDocument(doc *goquery.Document, htmlPath string) *product.RawFieldSet {
	fields := &product.RawFieldSet{}

	detail := doc.Find(detailSelector).First()
	if detail.Length() == 0 {
		return fields
	}
	fields.IsProductPage = true
	fields.Title = detail.Find("h1").First().Text()

	doc.Find(breadcrumbSelector).Each(func(_ int, s *goquery.Selection) {
		fields.Breadcrumbs = append(fields.Breadcrumbs, s.Text())
	})

	if src, ok := doc.Find(imageSelector).First().Attr("src"); ok {
		fields.Image = resolveImagePath(htmlPath, src)
	}

	fields.PriceText = doc.Find(priceSelector).First().Text()
	fields.PriceNoteText = strings.TrimSpace(doc.Find(priceNoteSelector).First().Text())
	fields.ProductNote = doc.Find(productNoteSelector).First().Text()
	fields.Feature = doc.Find(featureSelector).First().Text()

	if table := doc.Find(nutrientTableSelector).First(); table.Length() > 0 {
		table.Find("td").Each(func(_ int, s *goquery.Selection) {
			fields.NutrientCells = append(fields.NutrientCells, s.Text())
		})
		fields.ServingText = table.Find("th").First().Text()
	}

	return fields
}

// resolveImagePath resolves a relative image src against the directory of
// the archived HTML file. Absolute paths and full URLs pass through.
func resolveImagePath(htmlPath, src string) string {
	if src == "" || htmlPath == "" {
		return src
	}
	if u, err := url.Parse(src); err == nil && u.Scheme != "" {
		return src
	}
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Clean(filepath.Join(filepath.Dir(htmlPath), src))
}
