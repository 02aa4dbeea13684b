// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestFindCollectsMatchingExtensionsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.php"), "<?php")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")
	writeFile(t, filepath.Join(dir, "sub", "b.php"), "<?php")

	found, err := Find([]string{dir}, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(found), found)
	}
}

func TestFindAppliesExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vendor", "lib.php"), "<?php")
	writeFile(t, filepath.Join(dir, "src", "app.php"), "<?php")

	found, err := Find([]string{dir}, []string{"vendor/*"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d files, want 1 (vendor excluded): %v", len(found), found)
	}
}

func TestReadStreamsResultsAndReportsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.php")
	writeFile(t, ok, "<?php echo 1;")
	missing := filepath.Join(dir, "missing.php")

	results := make(chan Result)
	go Read(context.Background(), []string{ok, missing}, results)

	var got []Result
	for r := range results {
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Err != nil || got[0].Source != "<?php echo 1;" {
		t.Errorf("first result = %+v", got[0])
	}
	if got[1].Err == nil {
		t.Error("expected an error for the missing file")
	}
}

func TestReadRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := make(chan Result)
	go Read(ctx, []string{"anything.php"}, results)
	count := 0
	for range results {
		count++
	}
	if count != 0 {
		t.Errorf("got %d results after cancellation, want 0", count)
	}
}
