// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

// newTestContext registers source under file id 0 and returns a
// CheckContext ready for a rule's Check, plus that file id for building
// span.Span literals in the test's hand-constructed AST.
func newTestContext(source string) (*visitor.CheckContext, int) {
	files := span.NewSet()
	id := files.Add("test.php", source)
	return &visitor.CheckContext{FilePath: "test.php", Source: source, Files: files}, id
}

// sp is a terse span.Span constructor for file 0, the common case.
func sp(start, end int) span.Span { return span.Span{File: 0, Start: start, End: end} }

func applyEdits(t *testing.T, source string, edits []edit.Edit) string {
	t.Helper()
	merged, err := edit.Merge(edits)
	if err != nil {
		t.Fatalf("edit.Merge: %v", err)
	}
	return edit.Apply(source, merged)
}
