package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCrawlMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCrawlMetrics(reg)

	m.PagesAttempted.Inc()
	m.PagesAttempted.Inc()
	m.RecordsWritten.Inc()
	m.BuildExceptions.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PagesAttempted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsWritten))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.WriteFailures))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BuildExceptions))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"crawl_pages_attempted_total",
		"crawl_records_written_total",
		"crawl_write_failures_total",
		"crawl_build_exceptions_total",
	}, names)
}

func TestNewCrawlMetricsDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCrawlMetrics(reg)
	assert.Panics(t, func() { NewCrawlMetrics(reg) })
}
