package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// WriteFailedLog appends the failed statements to a dated log file in dir
// ("YYYY-MM-DD_failed_statements.log"): a count header naming the table and
// database, then one statement-plus-error block per failure. It returns the
// log path, or "" when there was nothing to write.
func WriteFailedLog(dir, table, database string, failed []FailedStatement) (string, error) {
	if len(failed) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, timeNow().Format("2006-01-02")+"_failed_statements.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Number of failed statements: %d\n", len(failed))
	fmt.Fprintf(f, "Data table:                  %s\n", table)
	fmt.Fprintf(f, "Database:                    %s\n", database)
	for _, fs := range failed {
		fmt.Fprintf(f, "%s\nERROR: %s\n\n", fs.Statement, fs.Err)
	}

	return path, nil
}
