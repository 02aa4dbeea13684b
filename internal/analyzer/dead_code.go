// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(deadCodeRule{}) }

// deadCodeRule flags two unreachability shapes: a statement following one
// that always terminates its block (return/throw/break/continue/exit/die),
// and an `instanceof` check against a class where the left operand's
// declared parameter type is a scalar, which can never be an object.
type deadCodeRule struct{}

func (deadCodeRule) ID() string          { return "deadCode.unreachable" }
func (deadCodeRule) Description() string { return "Detects unreachable code and always-false instanceof checks" }
func (deadCodeRule) Level() int          { return 4 }

var deadCodeScalarTypes = map[string]bool{
	"string": true, "int": true, "float": true, "bool": true, "array": true, "null": true,
}

func (r deadCodeRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	checkStmts := func(stmts []ast.Stmt) {
		terminated := false
		for _, s := range stmts {
			if terminated {
				line, col := 0, 0
				if ctx.Files != nil {
					line, col = ctx.Files.Position(s.Span())
				}
				issues = append(issues, newIssue(r.ID(), r.Level(),
					"Unreachable statement - code above always terminates.", ctx.FilePath, line, col))
				break // only the first unreachable statement is reported
			}
			if isTerminator(s) {
				terminated = true
			}
		}
	}

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.Block:
			checkStmts(v.Stmts)
		case *ast.Try:
			checkStmts(v.Body)
			for _, cat := range v.Catches {
				checkStmts(cat.Body)
			}
			if v.Finally != nil {
				checkStmts(v.Finally)
			}
		case *ast.Switch:
			for _, cs := range v.Cases {
				checkStmts(cs.Body)
			}
		}
		return true
	})

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.FunctionDecl:
			scanInstanceof(v.Body, ctx, scopeParamTypes(v.Params), r, &issues)
			return false
		case *ast.MethodDecl:
			scanInstanceof(v.Body, ctx, scopeParamTypes(v.Params), r, &issues)
			return false
		}
		return true
	})

	return issues
}

func scopeParamTypes(params []ast.Param) map[string]string {
	out := map[string]string{}
	for _, p := range params {
		if p.Type != "" {
			out[p.Name] = strings.TrimPrefix(p.Type, "?")
		}
	}
	return out
}

func scanInstanceof(body *ast.Block, ctx *visitor.CheckContext, paramTypes map[string]string, r deadCodeRule, issues *[]issue.Issue) {
	if body == nil {
		return
	}
	visitor.Walk(body, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		inst, ok := n.(*ast.Instanceof)
		if !ok {
			return true
		}
		v, ok := inst.Expr.(*ast.Variable)
		if !ok {
			return true
		}
		varType, ok := paramTypes[v.Name]
		if !ok || !deadCodeScalarTypes[strings.ToLower(varType)] {
			return true
		}
		line, col := 0, 0
		if ctx.Files != nil {
			line, col = ctx.Files.Position(inst.Span())
		}
		*issues = append(*issues, newIssue("instanceof.alwaysFalse", r.Level(),
			"Instanceof between "+varType+" and "+inst.Class+" will always evaluate to false.",
			ctx.FilePath, line, col))
		return true
	})
}

// isTerminator reports whether s unconditionally ends control flow:
// return, throw, break, continue, or a call to exit()/die().
func isTerminator(s ast.Stmt) bool {
	switch v := s.(type) {
	case *ast.Return, *ast.Throw, *ast.Break, *ast.Continue, *ast.Exit:
		return true
	case *ast.ExprStmt:
		call, ok := v.X.(*ast.FuncCall)
		if !ok {
			return false
		}
		name := strings.ToLower(call.Name)
		return name == "exit" || name == "die"
	default:
		return false
	}
}
