// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

func TestListFilterRemovesMatchedIssue(t *testing.T) {
	l := NewList([]Entry{{Message: "#^Error 1$#", Count: 1, Path: "file.php"}})

	issues := issue.New()
	issues.Add(issue.Issue{File: "file.php", Message: "Error 1", Line: 10})
	issues.Add(issue.Issue{File: "file.php", Message: "Error 2", Line: 20})

	filtered := l.Filter(issues)
	if filtered.Len() != 1 {
		t.Fatalf("got %d issues, want 1", filtered.Len())
	}
	if filtered.All()[0].Message != "Error 2" {
		t.Errorf("got %q, want Error 2", filtered.All()[0].Message)
	}
}

func TestListFilterDepletesCount(t *testing.T) {
	l := NewList([]Entry{{Message: "repeated", Count: 2, Path: "file.php"}})

	issues := issue.New()
	issues.Add(issue.Issue{File: "file.php", Message: "repeated", Line: 1})
	issues.Add(issue.Issue{File: "file.php", Message: "repeated", Line: 2})
	issues.Add(issue.Issue{File: "file.php", Message: "repeated", Line: 3})

	filtered := l.Filter(issues)
	if filtered.Len() != 1 {
		t.Fatalf("got %d issues, want 1 (third occurrence survives)", filtered.Len())
	}
	if filtered.All()[0].Line != 3 {
		t.Errorf("got line %d, want 3", filtered.All()[0].Line)
	}
}

func TestListFilterRequiresIdentifierAndPathMatch(t *testing.T) {
	l := NewList([]Entry{{Message: "oops", Count: 1, Path: "a.php", Identifier: "type.mismatch"}})

	issues := issue.New()
	issues.Add(issue.Issue{File: "b.php", Message: "oops", Identifier: "type.mismatch"})
	issues.Add(issue.Issue{File: "a.php", Message: "oops", Identifier: "other"})
	issues.Add(issue.Issue{File: "a.php", Message: "oops", Identifier: "type.mismatch"})

	filtered := l.Filter(issues)
	if filtered.Len() != 2 {
		t.Fatalf("got %d issues, want 2 suppressed only the matching one", filtered.Len())
	}
}

func TestListFilterEmptyListIsNoOp(t *testing.T) {
	l := NewList(nil)
	issues := issue.New()
	issues.Add(issue.Issue{File: "a.php", Message: "x"})
	if l.Filter(issues).Len() != 1 {
		t.Error("an empty list must not filter anything")
	}
}

func TestListUnmatchedReportsEntriesThatNeverFullyMatched(t *testing.T) {
	l := NewList([]Entry{
		{Message: "gone", Count: 1, Path: "a.php"},
		{Message: "repeated", Count: 3, Path: "a.php"},
	})

	issues := issue.New()
	issues.Add(issue.Issue{File: "a.php", Message: "repeated", Line: 1})

	l.Filter(issues)
	unmatched := l.Unmatched()
	if len(unmatched) != 2 {
		t.Fatalf("got %d unmatched entries, want 2: %+v", len(unmatched), unmatched)
	}
	if unmatched[0].Message != "gone" || unmatched[1].Message != "repeated" {
		t.Errorf("got %+v, want [gone, repeated]", unmatched)
	}
}

func TestListUnmatchedEmptyWhenEveryEntryFullyMatched(t *testing.T) {
	l := NewList([]Entry{{Message: "matched", Count: 1, Path: "a.php"}})
	issues := issue.New()
	issues.Add(issue.Issue{File: "a.php", Message: "matched"})

	l.Filter(issues)
	if got := l.Unmatched(); len(got) != 0 {
		t.Errorf("got %+v, want none unmatched", got)
	}
}

func TestListUnmatchedNilBeforeFilterRuns(t *testing.T) {
	l := NewList([]Entry{{Message: "x", Count: 1}})
	if got := l.Unmatched(); got != nil {
		t.Errorf("got %+v, want nil before Filter runs", got)
	}
}

func TestNilListUnmatchedIsSafe(t *testing.T) {
	var l *List
	if got := l.Unmatched(); got != nil {
		t.Errorf("got %+v, want nil for a nil *List", got)
	}
}
