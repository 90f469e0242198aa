package csvstore

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunStats(t *testing.T) {
	stats := NewRunStats()

	_, err := uuid.Parse(stats.RunID)
	require.NoError(t, err)
	assert.Zero(t, stats.Attempts)
	assert.Zero(t, stats.Successes)
	assert.Empty(t, stats.FailedPaths)
	assert.Empty(t, stats.ExceptionPaths)

	assert.NotEqual(t, stats.RunID, NewRunStats().RunID)
}

func TestRunStatsCounters(t *testing.T) {
	stats := NewRunStats()

	stats.IncrementAttempts()
	stats.IncrementAttempts()
	stats.IncrementSuccesses()
	stats.RecordFailure("data/a.html")
	stats.RecordException("data/b.html")
	stats.RecordException("data/c.html")

	assert.Equal(t, 2, stats.Attempts)
	assert.Equal(t, 1, stats.Successes)
	assert.Equal(t, []string{"data/a.html"}, stats.FailedPaths)
	assert.Equal(t, []string{"data/b.html", "data/c.html"}, stats.ExceptionPaths)
}

func TestRunStatsReport(t *testing.T) {
	stats := &RunStats{
		RunID:          "run-1",
		Attempts:       3,
		Successes:      1,
		FailedPaths:    []string{"data/a.html"},
		ExceptionPaths: []string{"data/b.html"},
	}

	var b strings.Builder
	stats.Report(&b)
	out := b.String()

	assert.Contains(t, out, "Crawl run run-1")
	assert.Contains(t, out, "Attempted:       3")
	assert.Contains(t, out, "Succeeded:       1")
	assert.Contains(t, out, "Write failures:  1")
	assert.Contains(t, out, "Exceptions:      1")
	assert.Contains(t, out, "Failed to write:\n  data/a.html")
	assert.Contains(t, out, "Raised exceptions:\n  data/b.html")
}

func TestRunStatsReportOmitsEmptyLists(t *testing.T) {
	var b strings.Builder
	(&RunStats{RunID: "run-2"}).Report(&b)

	assert.NotContains(t, b.String(), "Failed to write")
	assert.NotContains(t, b.String(), "Raised exceptions")
}
