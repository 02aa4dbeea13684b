// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discover walks project root paths and streams back the
// files a run should analyze, honoring glob excludes. It plays the
// role the teacher's internal/o2o/loader.Loader interface plays for Go
// packages (batch a list of targets, stream results back on a
// channel), adapted from "load compiled Go packages" to "read source
// files off disk".
package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the file suffixes considered source files. Callers
// that analyze a different file extension can override it.
var Extensions = []string{".php"}

// File is one discovered source file, already read into memory.
type File struct {
	Path   string
	Source string
}

// Result is the outcome of reading a single discovered file. Err is
// non-nil and Source is empty when the file could not be read — spec.md
// §7's "source read failure" per-file fatal case, left for the caller
// to turn into a synthetic issue rather than aborting the run.
type Result struct {
	Path   string
	Source string
	Err    error
}

// Find walks each root in paths, returning every file whose suffix is
// in Extensions and that does not match any pattern in excludes.
// Patterns are matched with filepath.Match against both the path
// relative to its root and the file's base name, so both
// "vendor/*" and "*_generated.php" style excludes work without a
// recursive-glob dependency the example corpus never actually imports
// outside of an unrelated transitive vendor entry.
func Find(paths []string, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var found []string
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !hasExtension(path) {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			if excluded(excludes, rel, filepath.Base(path)) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover: walking %s: %w", root, err)
		}
	}
	sort.Strings(found)
	return found, nil
}

func hasExtension(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func excluded(excludes []string, rel, base string) bool {
	for _, pattern := range excludes {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if strings.Contains(rel, strings.TrimSuffix(pattern, "/*")) && strings.HasSuffix(pattern, "/*") {
			return true
		}
	}
	return false
}

// Read reads every path, streaming one Result per file to results as
// it completes. It closes results when done. Read never returns an
// error itself: per-file failures are reported through Result.Err, in
// keeping with spec.md §7's per-file-fatal-but-run-continues policy.
func Read(ctx context.Context, paths []string, results chan<- Result) {
	defer close(results)
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return
		default:
		}
		data, err := os.ReadFile(p)
		if err != nil {
			results <- Result{Path: p, Err: fmt.Errorf("discover: reading %s: %w", p, err)}
			continue
		}
		results <- Result{Path: p, Source: string(data)}
	}
}
