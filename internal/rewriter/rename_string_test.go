// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
)

func TestRenameStringRewritesMappedLiteralPreservingQuoteStyle(t *testing.T) {
	source := `$mode = 'legacy';`
	ctx, _ := newTestContext(source)
	ctx.Config = map[string]any{"mappings": map[string]string{"legacy": "modern"}}

	lit := &ast.LiteralString{Value: "legacy"}
	lit.Sp = sp(8, 16)
	assign := &ast.Assign{Op: "=", Target: &ast.Variable{Name: "mode"}, Value: lit}
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: assign}}}

	edits := renameStringRule{}.Check(program, ctx)
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1: %v", len(edits), edits)
	}
	got := applyEdits(t, source, edits)
	want := `$mode = 'modern';`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenameStringIgnoresUnmappedValue(t *testing.T) {
	ctx, _ := newTestContext(`$mode = "other";`)
	ctx.Config = map[string]any{"mappings": map[string]string{"legacy": "modern"}}
	lit := &ast.LiteralString{Value: "other"}
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: &ast.Assign{Op: "=", Target: &ast.Variable{Name: "mode"}, Value: lit}}}}

	edits := renameStringRule{}.Check(program, ctx)
	if len(edits) != 0 {
		t.Fatalf("got %d edits, want 0: %v", len(edits), edits)
	}
}
