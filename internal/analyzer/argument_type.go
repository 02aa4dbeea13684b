// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"strconv"
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/types"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(argumentTypeRule{}) }

// argumentTypeRule flags a call-site argument whose inferred static type
// can never satisfy the callee's declared parameter type, using the
// cross-file symbol table for the callee's signature rather than a
// same-file-only collection pass.
type argumentTypeRule struct{}

func (argumentTypeRule) ID() string          { return "argument.type" }
func (argumentTypeRule) Description() string { return "Checks that arguments passed to functions/methods match expected types" }
func (argumentTypeRule) Level() int          { return 5 }

func (r argumentTypeRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	if ctx.Symbols == nil {
		return nil
	}
	a := &argumentTypeAnalyzer{rule: r, ctx: ctx}

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.FunctionDecl:
			a.analyzeBody(v.Body, "", scopeParamTypes(v.Params))
			return false
		case *ast.ClassLike:
			for _, member := range v.Members {
				if m, ok := member.(*ast.MethodDecl); ok {
					a.analyzeBody(m.Body, v.Name, scopeParamTypes(m.Params))
				}
			}
			return false
		case *ast.FuncCall:
			a.checkFuncCall(v, nil, nil)
		}
		return true
	})

	return a.issues
}

type argumentTypeAnalyzer struct {
	rule   argumentTypeRule
	ctx    *visitor.CheckContext
	issues []issue.Issue
}

func (a *argumentTypeAnalyzer) analyzeBody(body *ast.Block, currentClass string, paramTypes map[string]string) {
	if body == nil {
		return
	}
	varClasses := map[string]string{}

	visitor.Walk(body, a.ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		if assign, ok := n.(*ast.Assign); ok && assign.Op == "=" {
			if target, ok := assign.Target.(*ast.Variable); ok {
				if newExpr, ok := assign.Value.(*ast.New); ok {
					varClasses[target.Name] = newExpr.Class
				} else {
					delete(varClasses, target.Name)
				}
			}
		}

		switch call := n.(type) {
		case *ast.FuncCall:
			a.checkFuncCall(call, paramTypes, varClasses)
		case *ast.MethodCall:
			a.checkMethodCall(call, currentClass, paramTypes, varClasses)
		}
		return true
	})
}

func (a *argumentTypeAnalyzer) checkFuncCall(call *ast.FuncCall, paramTypes, varClasses map[string]string) {
	if call.Name == "" || strings.Contains(call.Name, `\`) {
		return // dynamic or namespaced call: can't resolve without an autoloader
	}
	info, ok := a.ctx.Symbols.Function(call.Name)
	if !ok || len(info.Params) == 0 {
		return // unknown or a signature-less builtin
	}
	a.checkArguments(info.FullName, info.Params, call.Args, paramTypes, varClasses)
}

func (a *argumentTypeAnalyzer) checkMethodCall(call *ast.MethodCall, currentClass string, paramTypes, varClasses map[string]string) {
	var className string
	if v, ok := call.Target.(*ast.Variable); ok {
		if v.Name == "this" {
			className = currentClass
		} else {
			className = varClasses[v.Name]
		}
	}
	if className == "" {
		return
	}
	resolved := a.ctx.Symbols.ResolveClassName(className, a.ctx.FilePath, a.ctx.Namespace)
	info, ok := a.ctx.Symbols.Class(resolved)
	if !ok {
		return
	}
	method, ok := info.Method(call.Name)
	if !ok || len(method.Params) == 0 {
		return
	}
	a.checkArguments(info.FullName+"::"+method.Name, method.Params, call.Args, paramTypes, varClasses)
}

func (a *argumentTypeAnalyzer) checkArguments(calleeName string, params []ast.Param, args []ast.Arg, paramTypes, varClasses map[string]string) {
	for i, arg := range args {
		if i >= len(params) || params[i].Type == "" {
			continue
		}
		expected := types.ParseTypeString(params[i].Type)
		actual := inferArgumentType(arg.Value, paramTypes, varClasses)
		if actual == nil {
			continue
		}
		if types.Accepts(expected, actual, false) != types.No {
			continue
		}
		line, col := 0, 0
		if a.ctx.Files != nil {
			line, col = a.ctx.Files.Position(arg.Value.Span())
		}
		a.issues = append(a.issues, newIssue(a.rule.ID(), a.rule.Level(),
			"Parameter #"+strconv.Itoa(i+1)+" "+params[i].Name+" of "+calleeName+" expects "+
				expected.String()+", "+actual.String()+" given.", a.ctx.FilePath, line, col))
	}
}

// inferArgumentType infers a call argument's static type from locally
// visible information: literals, arrays, `new`, scoped parameter/variable
// types, and closures.
func inferArgumentType(e ast.Expr, paramTypes, varClasses map[string]string) types.Type {
	switch v := e.(type) {
	case *ast.Variable:
		if t, ok := paramTypes[v.Name]; ok {
			return types.ParseTypeString(t)
		}
		if class, ok := varClasses[v.Name]; ok {
			return types.Object{Class: class}
		}
		return nil
	case *ast.Closure, *ast.ArrowFunction:
		return types.Closure
	default:
		return inferLiteralType(e)
	}
}
