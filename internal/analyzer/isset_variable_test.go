// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func TestIssetVariableFlagsAlreadyAssignedVariable(t *testing.T) {
	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Assign{Op: "=", Target: &ast.Variable{Name: "x"}, Value: &ast.LiteralInt{Value: 1}}},
			&ast.ExprStmt{X: &ast.Isset{Vars: []ast.Expr{&ast.Variable{Name: "x"}}}},
		},
	}
	issues := issetVariableRule{}.Check(program, &visitor.CheckContext{})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Identifier != "isset.variable" {
		t.Errorf("Identifier = %q, want isset.variable", issues[0].Identifier)
	}
}

func TestIssetVariableIgnoresUnassignedAndArrayKeys(t *testing.T) {
	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Isset{Vars: []ast.Expr{&ast.Variable{Name: "y"}}}},
			&ast.ExprStmt{X: &ast.Isset{Vars: []ast.Expr{&ast.ArrayAccess{Array: &ast.Variable{Name: "arr"}, Index: &ast.LiteralString{Value: "key"}}}}},
		},
	}
	issues := issetVariableRule{}.Check(program, &visitor.CheckContext{})
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestIssetVariableDoesNotLeakAcrossFunctionScopes(t *testing.T) {
	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Assign{Op: "=", Target: &ast.Variable{Name: "x"}, Value: &ast.LiteralInt{Value: 1}}},
			&ast.FunctionDecl{
				Name: "f",
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.Isset{Vars: []ast.Expr{&ast.Variable{Name: "x"}}}},
				}},
			},
		},
	}
	issues := issetVariableRule{}.Check(program, &visitor.CheckContext{})
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0 (scope should not leak): %v", len(issues), issues)
	}
}
