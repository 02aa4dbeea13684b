// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import (
	"path/filepath"
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

func TestGenerateBaselineGroupsDuplicates(t *testing.T) {
	issues := issue.New()
	issues.Add(issue.Issue{
		Identifier: "function.notFound",
		Message:    "Call to undefined function foo().",
		File:       "file.php",
		Line:       10,
	})
	issues.Add(issue.Issue{
		Identifier: "function.notFound",
		Message:    "Call to undefined function foo().",
		File:       "file.php",
		Line:       20,
	})

	baseline := Generate(issues)
	if baseline.Len() != 1 {
		t.Fatalf("got %d entries, want 1", baseline.Len())
	}
	if baseline.Entries[0].Count != 2 {
		t.Errorf("got count %d, want 2", baseline.Entries[0].Count)
	}
	if baseline.Entries[0].Message != "#^Call to undefined function foo\\(\\)\\.$#" {
		t.Errorf("got message %q", baseline.Entries[0].Message)
	}
}

func TestGenerateBaselineSortsByPathThenMessage(t *testing.T) {
	issues := issue.New()
	issues.Add(issue.Issue{File: "b.php", Message: "B issue"})
	issues.Add(issue.Issue{File: "a.php", Message: "second"})
	issues.Add(issue.Issue{File: "a.php", Message: "first"})

	baseline := Generate(issues)
	if baseline.Len() != 3 {
		t.Fatalf("got %d entries, want 3", baseline.Len())
	}
	if baseline.Entries[0].Path != "a.php" || baseline.Entries[1].Path != "a.php" {
		t.Fatalf("entries not sorted by path: %+v", baseline.Entries)
	}
	if baseline.Entries[0].Message != formatRegexMessage("first") {
		t.Errorf("first entry message = %q", baseline.Entries[0].Message)
	}
}

func TestBaselineFilterUsesGeneratedEntries(t *testing.T) {
	issues := issue.New()
	issues.Add(issue.Issue{File: "file.php", Message: "Error 1", Line: 10})
	issues.Add(issue.Issue{File: "file.php", Message: "Error 2", Line: 20})

	baseline := Generate(issues)

	nextRun := issue.New()
	nextRun.Add(issue.Issue{File: "file.php", Message: "Error 1", Line: 11})
	nextRun.Add(issue.Issue{File: "file.php", Message: "Error 3", Line: 30})

	filtered := baseline.Filter(nextRun)
	if filtered.Len() != 1 {
		t.Fatalf("got %d issues, want 1", filtered.Len())
	}
	if filtered.All()[0].Message != "Error 3" {
		t.Errorf("got %q, want Error 3 (new issue not in baseline)", filtered.All()[0].Message)
	}
}

func TestBaselineSaveAndLoadRoundTrip(t *testing.T) {
	issues := issue.New()
	issues.Add(issue.Issue{
		File:       "src/test.php",
		Message:    "Call to undefined function foo().",
		Identifier: "function.notFound",
	})
	original := Generate(issues)

	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.yaml")
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != original.Len() {
		t.Fatalf("got %d entries, want %d", loaded.Len(), original.Len())
	}
	if loaded.Entries[0].Message != original.Entries[0].Message {
		t.Errorf("message mismatch: got %q, want %q", loaded.Entries[0].Message, original.Entries[0].Message)
	}
	if loaded.Entries[0].Identifier != "function.notFound" {
		t.Errorf("identifier mismatch: got %q", loaded.Entries[0].Identifier)
	}

	replay := issue.New()
	replay.Add(issue.Issue{
		File:       "src/test.php",
		Message:    "Call to undefined function foo().",
		Identifier: "function.notFound",
	})
	if loaded.Filter(replay).Len() != 0 {
		t.Error("a loaded baseline must still suppress the issue it was generated from")
	}
}

func TestBaselineUnmatchedReportsEntryThatDisappeared(t *testing.T) {
	// spec.md end-to-end scenario 6: a project produces 3 issues, a
	// baseline is generated, then one source line is removed so one
	// issue disappears — the baseline should report exactly one
	// unmatched entry.
	issues := issue.New()
	issues.Add(issue.Issue{File: "file.php", Message: "Error 1", Line: 10})
	issues.Add(issue.Issue{File: "file.php", Message: "Error 2", Line: 20})
	issues.Add(issue.Issue{File: "file.php", Message: "Error 3", Line: 30})
	baseline := Generate(issues)

	nextRun := issue.New()
	nextRun.Add(issue.Issue{File: "file.php", Message: "Error 1", Line: 10})
	nextRun.Add(issue.Issue{File: "file.php", Message: "Error 2", Line: 20})
	// Error 3's line was removed; it no longer reappears this run.

	filtered := baseline.Filter(nextRun)
	if filtered.Len() != 0 {
		t.Fatalf("got %d issues, want 0", filtered.Len())
	}
	unmatched := baseline.Unmatched()
	if len(unmatched) != 1 {
		t.Fatalf("got %d unmatched entries, want 1: %+v", len(unmatched), unmatched)
	}
	if unmatched[0].Message != formatRegexMessage("Error 3") {
		t.Errorf("got unmatched entry %q, want Error 3's pattern", unmatched[0].Message)
	}
}

func TestNilBaselineUnmatchedIsSafe(t *testing.T) {
	var b *Baseline
	if got := b.Unmatched(); got != nil {
		t.Errorf("got %+v, want nil for a nil *Baseline", got)
	}
}

func TestLoadGroupsDuplicateEntriesAndSumsCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.yaml")
	contents := `parameters:
  ignoreErrors:
    - message: "#^dup$#"
      count: 1
      path: a.php
    - message: "#^dup$#"
      count: 2
      path: a.php
`
	if err := writeFile(t, path, contents); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	baseline, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if baseline.Len() != 1 {
		t.Fatalf("got %d entries, want 1 (grouped)", baseline.Len())
	}
	if baseline.Entries[0].Count != 3 {
		t.Errorf("got count %d, want 3 (summed)", baseline.Entries[0].Count)
	}
}
