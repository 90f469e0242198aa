package csvstore

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// RunStats holds the per-run counters and the literal lists of problem
// paths. It is created once per crawl run, mutated only by the run driver,
// and read for the end-of-run summary; nothing is persisted across runs.
type RunStats struct {
	RunID          string
	Attempts       int
	Successes      int
	FailedPaths    []string
	ExceptionPaths []string
}

// NewRunStats returns zeroed statistics tagged with a fresh run identifier.
func NewRunStats() *RunStats {
	return &RunStats{RunID: uuid.NewString()}
}

// IncrementAttempts counts one processed product page.
func (s *RunStats) IncrementAttempts() {
	s.Attempts++
}

// IncrementSuccesses counts one record written to the CSV.
func (s *RunStats) IncrementSuccesses() {
	s.Successes++
}

// RecordFailure records a page whose CSV row could not be written.
func (s *RunStats) RecordFailure(path string) {
	s.FailedPaths = append(s.FailedPaths, path)
}

// RecordException records a page whose record could not be built.
func (s *RunStats) RecordException(path string) {
	s.ExceptionPaths = append(s.ExceptionPaths, path)
}

// Report renders the end-of-run summary: all four counters plus the literal
// lists of failing and excepting file paths.
func (s *RunStats) Report(w io.Writer) {
	fmt.Fprintf(w, "Crawl run %s\n", s.RunID)
	fmt.Fprintf(w, "  Attempted:       %d\n", s.Attempts)
	fmt.Fprintf(w, "  Succeeded:       %d\n", s.Successes)
	fmt.Fprintf(w, "  Write failures:  %d\n", len(s.FailedPaths))
	fmt.Fprintf(w, "  Exceptions:      %d\n", len(s.ExceptionPaths))

	if len(s.FailedPaths) > 0 {
		fmt.Fprintln(w, "Failed to write:")
		for _, p := range s.FailedPaths {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	if len(s.ExceptionPaths) > 0 {
		fmt.Fprintln(w, "Raised exceptions:")
		for _, p := range s.ExceptionPaths {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
}
