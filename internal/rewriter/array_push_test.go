// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
)

func TestArrayPushRewritesTwoArgForm(t *testing.T) {
	source := `array_push($items, $value);`
	ctx, _ := newTestContext(source)

	items := &ast.Variable{Name: "items"}
	items.Sp = sp(11, 17)
	value := &ast.Variable{Name: "value"}
	value.Sp = sp(19, 25)
	call := &ast.FuncCall{Name: "array_push", Args: []ast.Arg{{Value: items}, {Value: value}}}
	call.Sp = sp(0, 26)
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: call}}}

	edits := arrayPushRule{}.Check(program, ctx)
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	got := applyEdits(t, source, edits)
	want := "$items[] = $value;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArrayPushIgnoresThreeArgForm(t *testing.T) {
	source := `array_push($items, $a, $b);`
	ctx, _ := newTestContext(source)

	items := &ast.Variable{Name: "items"}
	items.Sp = sp(11, 17)
	a := &ast.Variable{Name: "a"}
	a.Sp = sp(19, 21)
	b := &ast.Variable{Name: "b"}
	b.Sp = sp(23, 25)
	call := &ast.FuncCall{Name: "array_push", Args: []ast.Arg{{Value: items}, {Value: a}, {Value: b}}}
	call.Sp = sp(0, 27)
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: call}}}

	edits := arrayPushRule{}.Check(program, ctx)
	if len(edits) != 0 {
		t.Fatalf("got %d edits, want 0", len(edits))
	}
}
