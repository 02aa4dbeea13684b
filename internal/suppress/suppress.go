// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import "github.com/borisyanez/rustor-sub001/internal/issue"

// Filters bundles the three layers spec.md §4.9 applies, in order:
// inline comments, config-file ignores, then the baseline. A nil
// Baseline or an empty Ignores list is a no-op for that layer.
type Filters struct {
	Ignores  *List
	Baseline *Baseline
}

// NewIgnoreList compiles config-file ignore entries into a List.
func NewIgnoreList(entries []Entry) *List {
	return NewList(entries)
}

// Apply runs all three layers over issues in spec order: inline
// comments first (sources supplies each file's full text), then
// config ignores, then the baseline.
func (f Filters) Apply(issues *issue.Collection, sources map[string]string) *issue.Collection {
	out := FilterInline(issues, sources)
	if f.Ignores != nil {
		out = f.Ignores.Filter(out)
	}
	if f.Baseline != nil {
		out = f.Baseline.Filter(out)
	}
	return out
}

// UnmatchedEntries returns every config ignore or baseline entry that
// did not fully match during the Apply call that just ran, combining
// both layers — spec.md §6's reportUnmatchedIgnoredErrors covers
// ignoreErrors entries and baseline entries alike. Call after Apply;
// an Apply that never ran (or a Filters with neither layer set)
// reports nothing.
func (f Filters) UnmatchedEntries() []Entry {
	var out []Entry
	out = append(out, f.Ignores.Unmatched()...)
	out = append(out, f.Baseline.Unmatched()...)
	return out
}
