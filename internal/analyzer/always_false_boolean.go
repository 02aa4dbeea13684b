// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(alwaysFalseBooleanRule{}) }

// alwaysFalseBooleanRule flags `!expr` where expr's static shape proves it
// is always truthy, making the negation always false.
type alwaysFalseBooleanRule struct{}

func (alwaysFalseBooleanRule) ID() string          { return "booleanNot.alwaysFalse" }
func (alwaysFalseBooleanRule) Description() string { return "Detects boolean negation of always-true expressions" }
func (alwaysFalseBooleanRule) Level() int          { return 4 }

func (r alwaysFalseBooleanRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		u, ok := n.(*ast.UnaryOp)
		if !ok || u.Op != "!" || !u.Prefix {
			return true
		}
		if !isAlwaysTruthy(u.Operand, ctx) {
			return true
		}
		line, col := 0, 0
		text := ""
		if ctx.Files != nil {
			line, col = ctx.Files.Position(u.Span())
			text = ctx.Files.Text(u.Span())
		}
		issues = append(issues, newIssue(r.ID(), r.Level(),
			"Negated boolean expression is always false: "+text, ctx.FilePath, line, col))
		return true
	})

	return issues
}

// isAlwaysTruthy reports whether e's static shape guarantees a truthy
// value: a literal true, a non-zero numeric literal, a non-empty string
// literal, or an == / === comparison of two identical literals. The
// source language has no parenthesized-expression AST node: parens are
// discarded during parsing, so no explicit unwrap case is needed here.
func isAlwaysTruthy(e ast.Expr, ctx *visitor.CheckContext) bool {
	switch v := e.(type) {
	case *ast.LiteralBool:
		return v.Value
	case *ast.LiteralInt:
		return v.Value != 0
	case *ast.LiteralFloat:
		return v.Value != 0
	case *ast.LiteralString:
		return v.Value != ""
	case *ast.BinaryOp:
		return (v.Op == "==" || v.Op == "===") && sameLiteral(v.Left, v.Right)
	default:
		return false
	}
}

// sameLiteral reports whether lhs and rhs are identical literals of the
// same kind, meaning an == / === between them is a tautology.
func sameLiteral(lhs, rhs ast.Expr) bool {
	switch l := lhs.(type) {
	case *ast.LiteralInt:
		r, ok := rhs.(*ast.LiteralInt)
		return ok && l.Value == r.Value
	case *ast.LiteralFloat:
		r, ok := rhs.(*ast.LiteralFloat)
		return ok && l.Value == r.Value
	case *ast.LiteralString:
		r, ok := rhs.(*ast.LiteralString)
		return ok && l.Value == r.Value
	case *ast.LiteralBool:
		r, ok := rhs.(*ast.LiteralBool)
		return ok && l.Value == r.Value
	default:
		return false
	}
}
