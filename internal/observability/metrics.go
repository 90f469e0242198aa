// Package observability exposes prometheus counters for a crawl run and an
// optional /metrics listener for long-running batches.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CrawlMetrics mirrors the run statistics as prometheus counters.
type CrawlMetrics struct {
	PagesAttempted  prometheus.Counter
	RecordsWritten  prometheus.Counter
	WriteFailures   prometheus.Counter
	BuildExceptions prometheus.Counter
}

// NewCrawlMetrics registers the crawl counters with reg.
func NewCrawlMetrics(reg prometheus.Registerer) *CrawlMetrics {
	m := &CrawlMetrics{
		PagesAttempted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawl_pages_attempted_total",
			Help: "Product pages processed",
		}),
		RecordsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawl_records_written_total",
			Help: "Records appended to the CSV store",
		}),
		WriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawl_write_failures_total",
			Help: "CSV rows that could not be written",
		}),
		BuildExceptions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawl_build_exceptions_total",
			Help: "Pages whose record could not be built",
		}),
	}
	reg.MustRegister(m.PagesAttempted, m.RecordsWritten, m.WriteFailures, m.BuildExceptions)
	return m
}

// Serve starts the /metrics endpoint in the background.
func Serve(port string) {
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
