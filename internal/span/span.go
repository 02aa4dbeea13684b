// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package span represents byte-accurate source locations that diagnostics
// and edits are anchored to.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into a specific file. File
// identifies the source file via a Set; Start and End are byte offsets into
// that file's original, unmodified source text.
type Span struct {
	File  int
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span is an insertion point (Start == End).
func (s Span) Empty() bool { return s.Start == s.End }

// Overlaps reports whether s and o cover any common byte in the same file.
// Two spans that merely touch (s.End == o.Start) do not overlap.
func (s Span) Overlaps(o Span) bool {
	if s.File != o.File {
		return false
	}
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.File, s.Start, s.End)
}

// File records a single source file's path and original text.
type File struct {
	Path   string
	Source string
}

// Set is a registry of files, each identified by a small integer id. It
// plays the role the teacher's go/token.FileSet plays for Go source, except
// indices are arbitrary byte offsets rather than Go-specific positions,
// since the language under analysis is not Go.
type Set struct {
	files []File
}

// NewSet returns an empty file set.
func NewSet() *Set {
	return &Set{}
}

// Add registers a file and returns its id. Calling Add twice for the same
// path registers two distinct files; callers that want idempotent
// registration should track ids themselves (as the orchestrator does).
func (s *Set) Add(path, source string) int {
	id := len(s.files)
	s.files = append(s.files, File{Path: path, Source: source})
	return id
}

// File returns the file registered under id. It panics if id is out of
// range, since span.Span values are only ever constructed from valid ids
// produced by this Set.
func (s *Set) File(id int) File {
	return s.files[id]
}

// Text returns the substring of file id's source covered by sp. sp must
// belong to file id.
func (s *Set) Text(sp Span) string {
	return s.files[sp.File].Source[sp.Start:sp.End]
}

// Len returns the number of registered files.
func (s *Set) Len() int { return len(s.files) }

// Position returns the 1-based line and column of sp's start offset within
// its file, the way go/token.FileSet.Position resolves a go/token.Pos for
// diagnostics. Column counts bytes, not runes, matching the teacher's
// reporting granularity.
func (s *Set) Position(sp Span) (line, col int) {
	src := s.files[sp.File].Source
	line, col = 1, 1
	for i := 0; i < sp.Start && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Path returns the path of the file sp belongs to.
func (s *Set) Path(sp Span) string {
	return s.files[sp.File].Path
}
