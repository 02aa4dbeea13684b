// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import "github.com/borisyanez/rustor-sub001/internal/issue"

// List is a set of ignore or baseline entries and the matching engine
// shared by both layers: each entry depletes its remaining count as it
// matches and stops matching once exhausted.
type List struct {
	entries []compiled

	// lastRemaining holds the per-entry remaining count from the most
	// recent Filter call, read back by Unmatched.
	lastRemaining []int
}

// NewList compiles entries into a List ready for Filter.
func NewList(entries []Entry) *List {
	l := &List{entries: make([]compiled, len(entries))}
	for i, e := range entries {
		l.entries[i] = compile(e)
	}
	return l
}

// Len reports how many entries the list holds.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Filter returns a new Collection holding the issues in issues that do
// not match any entry, in the same relative order. Matching scans
// entries in a fixed order, tracks a remaining count per entry
// starting from Entry.Count, and stops matching an entry once
// exhausted — so this is deterministic given a fixed iteration order
// of issues, independent of anything else.
func (l *List) Filter(issues *issue.Collection) *issue.Collection {
	if l.Len() == 0 {
		return issues
	}
	remaining := make([]int, len(l.entries))
	for i, e := range l.entries {
		remaining[i] = e.Count
	}
	out := issues.Filter(func(iss issue.Issue) bool {
		for i, e := range l.entries {
			if remaining[i] == 0 {
				continue
			}
			if !e.matchesPath(iss.File) || !e.matchesIdentifier(iss.Identifier) || !e.matchesMessage(iss.Message) {
				continue
			}
			remaining[i]--
			return false
		}
		return true
	})
	l.lastRemaining = remaining
	return out
}

// Unmatched returns the entries from the most recent Filter call whose
// count never reached zero — ignore/baseline rules that matched fewer
// issues than they declared, or not at all. Returns nil until Filter
// has run at least once.
func (l *List) Unmatched() []Entry {
	if l == nil || l.lastRemaining == nil {
		return nil
	}
	var out []Entry
	for i, e := range l.entries {
		if l.lastRemaining[i] > 0 {
			out = append(out, e.Entry)
		}
	}
	return out
}
