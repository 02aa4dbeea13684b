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

func init() { Register(foreachToArrayAllRule{}) }

// foreachToArrayAllRule is the array_any() dual: it negates the
// predicate and swaps the truth values.
//
//  1. `$ok = true; foreach ($arr as $v) { if (!P) { $ok = false; break; } }`
//     -> `$ok = array_all($arr, fn($v) => P)`
//  2. `foreach ($arr as $v) { if (!P) { return false; } } return true;`
//     -> `return array_all($arr, fn($v) => P)`
type foreachToArrayAllRule struct{}

func (foreachToArrayAllRule) Name() string       { return "foreach-to-array-all" }
func (foreachToArrayAllRule) Category() Category { return Modernization }
func (foreachToArrayAllRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("8.4"))
}
func (foreachToArrayAllRule) ConfigOptions() []ConfigOption { return nil }

func (r foreachToArrayAllRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
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

// negateCondition returns P when given !P (stripping the negation), or
// !(P) when given a non-negated condition, so the rewritten array_all
// predicate reads as the positive condition the loop required for every
// element.
func negateCondition(cond ast.Expr, ctx *visitor.CheckContext) string {
	if u, ok := cond.(*ast.UnaryOp); ok && u.Op == "!" && u.Prefix {
		return ctx.Files.Text(u.Operand.Span())
	}
	return "!(" + ctx.Files.Text(cond.Span()) + ")"
}

func (r foreachToArrayAllRule) checkBooleanAssignment(prev, cur ast.Stmt, ctx *visitor.CheckContext) (edit.Edit, bool) {
	prevExpr, ok := prev.(*ast.ExprStmt)
	if !ok {
		return edit.Edit{}, false
	}
	assign, ok := prevExpr.X.(*ast.Assign)
	if !ok || assign.Op != "=" || !isBoolLiteral(assign.Value, true) {
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
	if !ok || innerAssign.Op != "=" || !isBoolLiteral(innerAssign.Value, false) {
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

	condition := negateCondition(ifStmt.Cond, ctx)
	array := ctx.Files.Text(foreach.Expr.Span())
	replacement := "$" + varName + " = array_all(" + array + ", fn(" + valueVar + ") => " + condition + ")"

	return edit.Edit{
		Span:        span.Span{File: prev.Span().File, Start: prev.Span().Start, End: foreach.Span().End},
		Replacement: replacement,
		Message:     "Convert foreach to array_all() (PHP 8.4+)",
	}, true
}

func (r foreachToArrayAllRule) checkEarlyReturn(cur, next ast.Stmt, ctx *visitor.CheckContext) (edit.Edit, bool) {
	foreach, ok := cur.(*ast.Foreach)
	if !ok {
		return edit.Edit{}, false
	}
	ret, ok := next.(*ast.Return)
	if !ok || ret.Value == nil || !isBoolLiteral(ret.Value, true) {
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
	if !ok || innerRet.Value == nil || !isBoolLiteral(innerRet.Value, false) {
		return edit.Edit{}, false
	}
	valueVar, ok := foreachValueVar(foreach)
	if !ok {
		return edit.Edit{}, false
	}

	condition := negateCondition(ifStmt.Cond, ctx)
	array := ctx.Files.Text(foreach.Expr.Span())
	replacement := "return array_all(" + array + ", fn(" + valueVar + ") => " + condition + ")"

	return edit.Edit{
		Span:        span.Span{File: cur.Span().File, Start: foreach.Span().Start, End: next.Span().End},
		Replacement: replacement,
		Message:     "Convert foreach to array_all() (PHP 8.4+)",
	}, true
}
