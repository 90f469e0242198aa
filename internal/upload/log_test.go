package upload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogTime(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = prev })
}

func TestWriteFailedLog(t *testing.T) {
	fixedLogTime(t)
	dir := t.TempDir()

	failed := []FailedStatement{
		{Statement: "INSERT INTO grocery.edeka24 (`a`)\nVALUES (1);", Err: "table does not exist"},
		{Statement: "INSERT INTO grocery.edeka24 (`a`)\nVALUES (2);", Err: "duplicate entry"},
	}

	path, err := WriteFailedLog(dir, "edeka24", "grocery", failed)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026-03-14_failed_statements.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Number of failed statements: 2")
	assert.Contains(t, out, "Data table:                  edeka24")
	assert.Contains(t, out, "Database:                    grocery")
	assert.Contains(t, out, "VALUES (1);\nERROR: table does not exist\n\n")
	assert.Contains(t, out, "VALUES (2);\nERROR: duplicate entry\n\n")
}

func TestWriteFailedLogAppendsWithinDay(t *testing.T) {
	fixedLogTime(t)
	dir := t.TempDir()

	first, err := WriteFailedLog(dir, "edeka24", "grocery", []FailedStatement{{Statement: "A;", Err: "x"}})
	require.NoError(t, err)
	second, err := WriteFailedLog(dir, "edeka24", "grocery", []FailedStatement{{Statement: "B;", Err: "y"}})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "A;")
	assert.Contains(t, string(data), "B;")
}

func TestWriteFailedLogNothingToWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFailedLog(dir, "edeka24", "grocery", nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no log file is created for a clean run")
}
