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

func init() { Register(alreadyNarrowedTypeRule{}) }

// alreadyNarrowedTypeRule flags a type-narrowing check (instanceof,
// is_string(), method_exists(), ...) on a variable that an enclosing if
// already narrowed the same way, making the inner check always true.
type alreadyNarrowedTypeRule struct{}

func (alreadyNarrowedTypeRule) ID() string          { return "function.alreadyNarrowedType" }
func (alreadyNarrowedTypeRule) Description() string { return "Detects redundant type checks after type narrowing" }
func (alreadyNarrowedTypeRule) Level() int          { return 6 }

// narrowCheck is one recognized narrowing condition. Kind names the test
// ("instanceof", "is_string", ..., "method_exists"); Extra carries the
// class name for instanceof or the method name for method_exists.
type narrowCheck struct {
	Kind, Var, Extra string
}

func (c narrowCheck) description() string {
	v := "$" + c.Var
	switch c.Kind {
	case "instanceof":
		return v + " instanceof " + c.Extra
	case "method_exists":
		return "method_exists(" + v + ", '" + c.Extra + "')"
	default:
		return c.Kind + "(" + v + ")"
	}
}

func (r alreadyNarrowedTypeRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	a := &narrowAnalyzer{ctx: ctx, rule: r}
	for _, s := range program.Statements {
		a.analyzeStmt(s)
	}
	return a.issues
}

type narrowAnalyzer struct {
	ctx    *visitor.CheckContext
	rule   alreadyNarrowedTypeRule
	stack  []narrowCheck
	issues []issue.Issue
}

func (a *narrowAnalyzer) analyzeStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.If:
		if check, ok := parseNarrowCheck(v.Cond); ok {
			a.checkRedundant(check, v.Cond)
			a.stack = append(a.stack, check)
			a.analyzeStmt(v.Then)
			for _, ei := range v.ElseIfs {
				a.analyzeStmt(ei.Then)
			}
			if v.Else != nil {
				a.analyzeStmt(v.Else)
			}
			a.stack = a.stack[:len(a.stack)-1]
		} else {
			a.analyzeStmt(v.Then)
			for _, ei := range v.ElseIfs {
				a.analyzeStmt(ei.Then)
			}
			if v.Else != nil {
				a.analyzeStmt(v.Else)
			}
		}
	case *ast.While:
		a.analyzeStmt(v.Body)
	case *ast.For:
		a.analyzeStmt(v.Body)
	case *ast.Foreach:
		a.analyzeStmt(v.Body)
	case *ast.Block:
		for _, inner := range v.Stmts {
			a.analyzeStmt(inner)
		}
	case *ast.FunctionDecl:
		a.withFreshScope(func() {
			if v.Body != nil {
				a.analyzeStmt(v.Body)
			}
		})
	case *ast.ClassLike:
		for _, member := range v.Members {
			if m, ok := member.(*ast.MethodDecl); ok && m.Body != nil {
				a.withFreshScope(func() { a.analyzeStmt(m.Body) })
			}
		}
	}
}

// withFreshScope runs fn with an empty narrowing stack, restoring the
// caller's stack afterward, matching a function/method body starting
// with no active narrowing from its enclosing scope.
func (a *narrowAnalyzer) withFreshScope(fn func()) {
	saved := a.stack
	a.stack = nil
	fn()
	a.stack = saved
}

func (a *narrowAnalyzer) checkRedundant(check narrowCheck, cond ast.Expr) {
	for _, existing := range a.stack {
		if existing == check {
			line, col := 0, 0
			if a.ctx.Files != nil {
				line, col = a.ctx.Files.Position(cond.Span())
			}
			a.issues = append(a.issues, newIssue(a.rule.ID(), a.rule.Level(),
				"Call to "+check.description()+" is already checked on line above, this condition is always true.",
				a.ctx.FilePath, line, col))
			return
		}
	}
}

var narrowingFuncs = map[string]string{
	"is_string":  "is_string",
	"is_int":     "is_int",
	"is_integer": "is_int",
	"is_long":    "is_int",
	"is_float":   "is_float",
	"is_double":  "is_float",
	"is_real":    "is_float",
	"is_bool":    "is_bool",
	"is_array":   "is_array",
	"is_object":  "is_object",
	"is_null":    "is_null",
}

// parseNarrowCheck recognizes `$v instanceof Class`, `is_*($v)`, and
// `method_exists($v, 'name')` shapes.
func parseNarrowCheck(e ast.Expr) (narrowCheck, bool) {
	switch v := e.(type) {
	case *ast.Instanceof:
		variable, ok := v.Expr.(*ast.Variable)
		if !ok {
			return narrowCheck{}, false
		}
		return narrowCheck{Kind: "instanceof", Var: variable.Name, Extra: v.Class}, true

	case *ast.FuncCall:
		name := strings.ToLower(v.Name)
		if len(v.Args) == 0 {
			return narrowCheck{}, false
		}
		variable, ok := v.Args[0].Value.(*ast.Variable)
		if !ok {
			return narrowCheck{}, false
		}
		if kind, ok := narrowingFuncs[name]; ok {
			return narrowCheck{Kind: kind, Var: variable.Name}, true
		}
		if name == "method_exists" && len(v.Args) >= 2 {
			if method, ok := v.Args[1].Value.(*ast.LiteralString); ok {
				return narrowCheck{Kind: "method_exists", Var: variable.Name, Extra: method.Value}, true
			}
		}
		return narrowCheck{}, false

	default:
		return narrowCheck{}, false
	}
}
