// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(foreachToArrayAnyRule{}) }

// foreachToArrayAnyRule recognizes two shapes and rewrites both to a
// call to array_any():
//
//  1. `$found = false; foreach ($arr as $v) { if (P) { $found = true; break; } }`
//     -> `$found = array_any($arr, fn($v) => P)`
//  2. `foreach ($arr as $v) { if (P) { return true; } } return false;`
//     -> `return array_any($arr, fn($v) => P)`
//
// Any extra statement inside the loop or the if body disables the
// rewrite; the predicate and array expressions are copied verbatim by
// span rather than re-synthesized.
type foreachToArrayAnyRule struct{}

func (foreachToArrayAnyRule) Name() string       { return "foreach-to-array-any" }
func (foreachToArrayAnyRule) Category() Category { return Modernization }
func (foreachToArrayAnyRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("8.4"))
}
func (foreachToArrayAnyRule) ConfigOptions() []ConfigOption { return nil }

func (r foreachToArrayAnyRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		stmts := stmtSequenceOf(n)
		if stmts == nil {
			return true
		}
		for i, s := range stmts {
			if i > 0 {
				if e, ok := r.checkBooleanAssignment(stmts[i-1], s, ctx); ok {
					edits = append(edits, e)
					continue
				}
			}
			if i+1 < len(stmts) {
				if e, ok := r.checkEarlyReturn(s, stmts[i+1], ctx); ok {
					edits = append(edits, e)
				}
			}
		}
		return true
	})
	return edits
}

// stmtSequenceOf returns the ordered statement list a node directly
// contains, for nodes whose children form the kind of adjacent-statement
// sequence this rule matches across. Returns nil for anything else.
func stmtSequenceOf(n ast.Node) []ast.Stmt {
	switch v := n.(type) {
	case *ast.Program:
		return v.Statements
	case *ast.Block:
		return v.Stmts
	default:
		return nil
	}
}

func (r foreachToArrayAnyRule) checkBooleanAssignment(prev, cur ast.Stmt, ctx *visitor.CheckContext) (edit.Edit, bool) {
	prevExpr, ok := prev.(*ast.ExprStmt)
	if !ok {
		return edit.Edit{}, false
	}
	assign, ok := prevExpr.X.(*ast.Assign)
	if !ok || assign.Op != "=" || !isBoolLiteral(assign.Value, false) {
		return edit.Edit{}, false
	}
	varName, ok := simpleVariableName(assign.Target)
	if !ok {
		return edit.Edit{}, false
	}
	foreach, ok := cur.(*ast.Foreach)
	if !ok {
		return edit.Edit{}, false
	}
	ifStmt, ok := singleIf(foreach.Body)
	if !ok || ifStmt.ElseIfs != nil || ifStmt.Else != nil {
		return edit.Edit{}, false
	}
	body := blockStmts(ifStmt.Then)
	if len(body) != 2 {
		return edit.Edit{}, false
	}
	innerExpr, ok := body[0].(*ast.ExprStmt)
	if !ok {
		return edit.Edit{}, false
	}
	innerAssign, ok := innerExpr.X.(*ast.Assign)
	if !ok || innerAssign.Op != "=" || !isBoolLiteral(innerAssign.Value, true) {
		return edit.Edit{}, false
	}
	if name, ok := simpleVariableName(innerAssign.Target); !ok || name != varName {
		return edit.Edit{}, false
	}
	brk, ok := body[1].(*ast.Break)
	if !ok || !breakIsUnconditional(brk) {
		return edit.Edit{}, false
	}
	valueVar, ok := foreachValueVar(foreach)
	if !ok {
		return edit.Edit{}, false
	}

	condition := ctx.Files.Text(ifStmt.Cond.Span())
	array := ctx.Files.Text(foreach.Expr.Span())
	replacement := "$" + varName + " = array_any(" + array + ", fn(" + valueVar + ") => " + condition + ")"

	return edit.Edit{
		Span:        span.Span{File: prev.Span().File, Start: prev.Span().Start, End: foreach.Span().End},
		Replacement: replacement,
		Message:     "Convert foreach to array_any() (PHP 8.4+)",
	}, true
}

func (r foreachToArrayAnyRule) checkEarlyReturn(cur, next ast.Stmt, ctx *visitor.CheckContext) (edit.Edit, bool) {
	foreach, ok := cur.(*ast.Foreach)
	if !ok {
		return edit.Edit{}, false
	}
	ret, ok := next.(*ast.Return)
	if !ok || ret.Value == nil || !isBoolLiteral(ret.Value, false) {
		return edit.Edit{}, false
	}
	ifStmt, ok := singleIf(foreach.Body)
	if !ok || ifStmt.ElseIfs != nil || ifStmt.Else != nil {
		return edit.Edit{}, false
	}
	body := blockStmts(ifStmt.Then)
	if len(body) != 1 {
		return edit.Edit{}, false
	}
	innerRet, ok := body[0].(*ast.Return)
	if !ok || innerRet.Value == nil || !isBoolLiteral(innerRet.Value, true) {
		return edit.Edit{}, false
	}
	valueVar, ok := foreachValueVar(foreach)
	if !ok {
		return edit.Edit{}, false
	}

	condition := ctx.Files.Text(ifStmt.Cond.Span())
	array := ctx.Files.Text(foreach.Expr.Span())
	replacement := "return array_any(" + array + ", fn(" + valueVar + ") => " + condition + ")"

	return edit.Edit{
		Span:        span.Span{File: cur.Span().File, Start: foreach.Span().Start, End: next.Span().End},
		Replacement: replacement,
		Message:     "Convert foreach to array_any() (PHP 8.4+)",
	}, true
}
