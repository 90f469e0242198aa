// Package crawl drives a batch run over an archived webpage tree: traverse,
// extract, build, append, count.
package crawl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WalkHTML enumerates the .html files under root recursively, in directory
// order, calling visit for each. Listing pages (index.html) are skipped and
// every path is visited at most once.
func WalkHTML(root string, visit func(path string)) error {
	seen := make(map[string]bool)
	return walkDir(root, seen, visit)
}

func walkDir(dir string, seen map[string]bool, visit func(path string)) error {
	if seen[dir] {
		return nil
	}
	seen[dir] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if err := walkDir(path, seen, visit); err != nil {
				return err
			}
			continue
		}
		if !strings.HasSuffix(e.Name(), ".html") || e.Name() == "index.html" {
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		visit(path)
	}
	return nil
}
