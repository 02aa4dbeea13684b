// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import "github.com/borisyanez/rustor-sub001/internal/ast"

// blockStmts unwraps a single statement into its list form: a *ast.Block
// yields its Stmts, anything else yields a one-element slice, and nil
// yields an empty slice. Shared by the two foreach-to-array_* rules,
// which both need to pattern-match a loop/if body regardless of
// whether the parser wrapped it in a block.
func blockStmts(s ast.Stmt) []ast.Stmt {
	if s == nil {
		return nil
	}
	if b, ok := s.(*ast.Block); ok {
		return b.Stmts
	}
	return []ast.Stmt{s}
}

// singleIf returns the lone *ast.If in s if s is (or unwraps to) exactly
// one if statement, and ok=false otherwise.
func singleIf(s ast.Stmt) (*ast.If, bool) {
	stmts := blockStmts(s)
	if len(stmts) != 1 {
		return nil, false
	}
	ifStmt, ok := stmts[0].(*ast.If)
	return ifStmt, ok
}

func isBoolLiteral(e ast.Expr, want bool) bool {
	b, ok := e.(*ast.LiteralBool)
	return ok && b.Value == want
}

func simpleVariableName(e ast.Expr) (string, bool) {
	v, ok := e.(*ast.Variable)
	if !ok {
		return "", false
	}
	return v.Name, true
}

// foreachValueVar returns the plain "$name" text of a foreach's value
// variable, or "" if the value isn't a simple variable (e.g. a
// list/array destructure), which these rules don't rewrite.
func foreachValueVar(f *ast.Foreach) (string, bool) {
	name, ok := simpleVariableName(f.ValueVar)
	if !ok {
		return "", false
	}
	return "$" + name, true
}

// breakIsUnconditional reports whether a *ast.Break has no level or an
// explicit level of 1, i.e. breaks exactly the enclosing loop.
func breakIsUnconditional(b *ast.Break) bool {
	return b.Level == 0 || b.Level == 1
}

// isThis reports whether e is the $this variable.
func isThis(e ast.Expr) bool {
	v, ok := e.(*ast.Variable)
	return ok && v.Name == "this"
}
