package crawl

import (
	"log"

	"github.com/philipp/grocery-harvester/internal/csvstore"
	"github.com/philipp/grocery-harvester/internal/extract"
	"github.com/philipp/grocery-harvester/internal/observability"
	"github.com/philipp/grocery-harvester/internal/product"
)

// Runner holds the per-run state every pipeline stage shares: the CSV
// store, the statistics, and optional metrics. It is constructed by the run
// driver and passed explicitly; there is no global state.
type Runner struct {
	Store   *csvstore.Store
	Stats   *csvstore.RunStats
	Metrics *observability.CrawlMetrics // optional
}

// Run processes every product page under root sequentially: one page is
// fully handled before the next begins.
func (r *Runner) Run(root string) error {
	return WalkHTML(root, r.ProcessFile)
}

// ProcessFile runs extract, build and append for one page. Pages without
// the detail-description marker are skipped silently and do not count as
// attempts. Build failures land on the exception list, write failures on
// the failure list; neither aborts the run.
func (r *Runner) ProcessFile(path string) {
	fields, err := extract.ProductPage(path)
	if err != nil {
		r.recordException(path, err)
		return
	}

	rec, err := product.Build(fields)
	if err != nil {
		r.recordException(path, err)
		return
	}
	if rec == nil {
		// Not a product page.
		return
	}

	r.Stats.IncrementAttempts()
	if r.Metrics != nil {
		r.Metrics.PagesAttempted.Inc()
	}

	if err := r.Store.Append(rec); err != nil {
		log.Printf("csv write failed for %s: %v", path, err)
		r.Stats.RecordFailure(path)
		if r.Metrics != nil {
			r.Metrics.WriteFailures.Inc()
		}
		return
	}

	r.Stats.IncrementSuccesses()
	if r.Metrics != nil {
		r.Metrics.RecordsWritten.Inc()
	}
}

func (r *Runner) recordException(path string, err error) {
	log.Printf("record build failed for %s: %v", path, err)
	r.Stats.IncrementAttempts()
	r.Stats.RecordException(path)
	if r.Metrics != nil {
		r.Metrics.PagesAttempted.Inc()
		r.Metrics.BuildExceptions.Inc()
	}
}
