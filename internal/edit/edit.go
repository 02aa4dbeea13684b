// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edit implements the edit algebra: a small, pure algorithm for
// merging the text replacements that rewriter rules produce and splicing
// them into source text. It has no knowledge of the AST, of rules, or of
// files beyond the span.Set they're anchored to; Merge and Apply are
// deterministic functions of their inputs.
package edit

import (
	"fmt"
	"sort"

	"github.com/borisyanez/rustor-sub001/internal/span"
)

// Edit replaces the text covered by Span with Replacement. An Edit whose
// Span is empty (Start == End) is a pure insertion at that point.
type Edit struct {
	Span        span.Span
	Replacement string
	Message     string // human-readable description, surfaced in --dry-run diffs
}

// OverlappingEdits is returned by Merge when two edits claim overlapping
// byte ranges in the same file and neither is a zero-width insert.
type OverlappingEdits struct {
	First, Second Edit
}

func (e *OverlappingEdits) Error() string {
	return fmt.Sprintf("overlapping edits in file %d: %s (%q) conflicts with %s (%q)",
		e.First.Span.File, e.First.Span, e.First.Message, e.Second.Span, e.Second.Message)
}

// Merge sorts edits by (Start, End) ascending and checks for conflicts.
// Two edits conflict when the next edit's Start is less than the running
// cursor (the End of the furthest edit seen so far) — i.e. their spans
// overlap by at least one byte. Equal, zero-width spans at the same point
// never conflict: they are inserts, and are emitted in the stable-sort
// order they arrived in, so callers control concatenation order by the
// order they pass edits in.
//
// On success it returns edits in application order (ascending Start, ties
// broken by original order). On conflict it returns a non-nil
// *OverlappingEdits error and the edits generated up to (but not
// including) the one that conflicts, a partial merge callers may use for
// the greedy-longest-span fallback described in spec.md §4.1.
func Merge(edits []Edit) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start != sorted[j].Span.Start {
			return sorted[i].Span.Start < sorted[j].Span.Start
		}
		return sorted[i].Span.End < sorted[j].Span.End
	})

	out := make([]Edit, 0, len(sorted))
	cursor := sorted[0].Span.Start
	for i, e := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			sameInsertionPoint := e.Span.Empty() && prev.Span.Empty() && e.Span.Start == prev.Span.Start
			if !sameInsertionPoint && e.Span.Start < cursor {
				return out, &OverlappingEdits{First: prev, Second: e}
			}
		}
		out = append(out, e)
		if e.Span.End > cursor {
			cursor = e.Span.End
		}
	}
	return out, nil
}

// ResolveConflicts greedily selects the largest conflict-free subset of
// edits, breaking ties by descending span length as spec.md §4.1
// prescribes for the orchestrator's fallback path: when Merge fails,
// pick edits starting from the longest span and skip any edit that
// overlaps an already-accepted one. Zero-width inserts never conflict
// with one another and are always kept.
func ResolveConflicts(edits []Edit) (kept []Edit, dropped []Edit) {
	if len(edits) == 0 {
		return nil, nil
	}
	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		li, lj := ordered[i].Span.Len(), ordered[j].Span.Len()
		if li != lj {
			return li > lj
		}
		return ordered[i].Span.Start < ordered[j].Span.Start
	})

	var accepted []Edit
	for _, e := range ordered {
		conflict := false
		for _, a := range accepted {
			if e.Span.Empty() && a.Span.Empty() {
				continue
			}
			if e.Span.Overlaps(a.Span) {
				conflict = true
				break
			}
		}
		if conflict {
			dropped = append(dropped, e)
			continue
		}
		accepted = append(accepted, e)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].Span.Start != accepted[j].Span.Start {
			return accepted[i].Span.Start < accepted[j].Span.Start
		}
		return accepted[i].Span.End < accepted[j].Span.End
	})
	return accepted, dropped
}

// Apply splices merged, conflict-free edits into source. edits must be in
// the order Merge returns: ascending by Start, with any zero-width
// inserts at a shared point in emission order. Apply does not itself sort
// or validate; passing unmerged edits produces undefined output.
func Apply(source string, edits []Edit) string {
	if len(edits) == 0 {
		return source
	}
	var out []byte
	cursor := 0
	for _, e := range edits {
		out = append(out, source[cursor:e.Span.Start]...)
		out = append(out, e.Replacement...)
		cursor = e.Span.End
	}
	out = append(out, source[cursor:]...)
	return string(out)
}
