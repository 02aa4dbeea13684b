// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/symbols"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func TestArgumentTypeFlagsMismatchedLiteralArgument(t *testing.T) {
	table := symbols.New()
	table.RegisterFunction(symbols.FunctionInfo{
		FullName: "takesInt",
		Params:   []ast.Param{{Name: "n", Type: "int"}},
	})

	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.FuncCall{
				Name: "takesInt",
				Args: []ast.Arg{{Value: &ast.LiteralString{Value: "oops"}}},
			}},
		},
	}
	issues := argumentTypeRule{}.Check(program, &visitor.CheckContext{Symbols: table})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Identifier != "argument.type" {
		t.Errorf("Identifier = %q, want argument.type", issues[0].Identifier)
	}
}

func TestArgumentTypeIgnoresMatchingArgumentAndUnknownCallee(t *testing.T) {
	table := symbols.New()
	table.RegisterFunction(symbols.FunctionInfo{
		FullName: "takesInt",
		Params:   []ast.Param{{Name: "n", Type: "int"}},
	})

	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.FuncCall{
				Name: "takesInt",
				Args: []ast.Arg{{Value: &ast.LiteralInt{Value: 1}}},
			}},
			&ast.ExprStmt{X: &ast.FuncCall{
				Name: "unknownFunction",
				Args: []ast.Arg{{Value: &ast.LiteralString{Value: "anything"}}},
			}},
		},
	}
	issues := argumentTypeRule{}.Check(program, &visitor.CheckContext{Symbols: table})
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestArgumentTypeResolvesVariableHeldClassForMethodCall(t *testing.T) {
	table := symbols.New()
	info := symbols.NewClassInfo("Logger")
	info.AddMethod(symbols.MethodInfo{
		Name:   "log",
		Params: []ast.Param{{Name: "message", Type: "string"}},
	})
	table.RegisterClass(info)

	program := &ast.Program{
		Statements: []ast.Stmt{
			&ast.FunctionDecl{
				Name: "run",
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.Assign{
						Op:     "=",
						Target: &ast.Variable{Name: "l"},
						Value:  &ast.New{Class: "Logger"},
					}},
					&ast.ExprStmt{X: &ast.MethodCall{
						Target: &ast.Variable{Name: "l"},
						Name:   "log",
						Args:   []ast.Arg{{Value: &ast.ArrayExpr{}}},
					}},
				}},
			},
		},
	}
	issues := argumentTypeRule{}.Check(program, &visitor.CheckContext{Symbols: table})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
}
