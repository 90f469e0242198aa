package crawl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))
}

func TestWalkHTML(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.html"))
	touch(t, filepath.Join(root, "index.html"))
	touch(t, filepath.Join(root, "style.css"))
	touch(t, filepath.Join(root, "sub", "b.html"))
	touch(t, filepath.Join(root, "sub", "index.html"))
	touch(t, filepath.Join(root, "sub", "deep", "c.html"))

	var visited []string
	err := WalkHTML(root, func(path string) {
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		visited = append(visited, rel)
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"a.html",
		filepath.Join("sub", "b.html"),
		filepath.Join("sub", "deep", "c.html"),
	}, visited)
}

func TestWalkHTMLEmptyTree(t *testing.T) {
	count := 0
	require.NoError(t, WalkHTML(t.TempDir(), func(string) { count++ }))
	assert.Zero(t, count)
}

func TestWalkHTMLMissingRoot(t *testing.T) {
	err := WalkHTML(filepath.Join(t.TempDir(), "absent"), func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}

func TestWalkHTMLVisitsEachPathOnce(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.html"))

	counts := make(map[string]int)
	require.NoError(t, WalkHTML(root, func(path string) { counts[path]++ }))
	for path, n := range counts {
		assert.Equal(t, 1, n, path)
	}
}
