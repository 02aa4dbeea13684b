// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func applyEdits(t *testing.T, source string, edits []edit.Edit) string {
	t.Helper()
	merged, err := edit.Merge(edits)
	if err != nil {
		t.Fatalf("edit.Merge: %v", err)
	}
	return edit.Apply(source, merged)
}

func TestCompiledRuleRewritesMatchedCall(t *testing.T) {
	spec, err := Load(writeTempRule(t, ruleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rule := Compile(spec)

	source := `strpos($a, $b) !== false`
	files := span.NewSet()
	files.Add("test.php", source)

	a := &ast.Variable{Name: "a"}
	a.Sp = sp(7, 9)
	b := &ast.Variable{Name: "b"}
	b.Sp = sp(11, 13)
	call := &ast.FuncCall{Name: "strpos", Args: []ast.Arg{{Value: a}, {Value: b}}}
	call.Sp = sp(0, 14)
	bin := &ast.BinaryOp{Op: "!==", Left: call, Right: &ast.LiteralBool{Value: false}}
	bin.Sp = sp(0, len(source))
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: bin}}}

	ctx := &visitor.CheckContext{FilePath: "test.php", Source: source, Files: files}
	edits := rule.Check(program, ctx)
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1: %v", len(edits), edits)
	}
	got := applyEdits(t, source, edits)
	want := `str_contains($a, $b)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompiledRuleNameCategoryAndMinimumVersion(t *testing.T) {
	spec, err := Load(writeTempRule(t, ruleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rule := Compile(spec)
	if rule.Name() != "strpos-to-str-contains" {
		t.Errorf("Name() = %q", rule.Name())
	}
	min := rule.MinimumLanguageVersion()
	want := version.Must(version.NewVersion("8.0"))
	if min == nil || min.Compare(want) != 0 {
		t.Errorf("MinimumLanguageVersion() = %v, want %v", min, want)
	}
}

func TestCompiledRuleDoesNotMatchUnrelatedNodes(t *testing.T) {
	spec, err := Load(writeTempRule(t, ruleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rule := Compile(spec)

	source := `$a == $b`
	files := span.NewSet()
	files.Add("test.php", source)
	bin := &ast.BinaryOp{Op: "==", Left: &ast.Variable{Name: "a"}, Right: &ast.Variable{Name: "b"}}
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{X: bin}}}

	ctx := &visitor.CheckContext{FilePath: "test.php", Source: source, Files: files}
	edits := rule.Check(program, ctx)
	if len(edits) != 0 {
		t.Fatalf("got %d edits, want 0: %v", len(edits), edits)
	}
}
