// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitor

import (
	"reflect"

	"github.com/borisyanez/rustor-sub001/internal/ast"
)

// VisitFunc is called once per node in pre-order. Returning false tells
// Walk to skip that node's children (but sibling traversal continues
// unaffected) — the "continue/skip" traversal contract every rule relies
// on to prune subtrees it has already fully handled (e.g. a rule that
// rewrites a whole match arm has no reason to also visit its children).
type VisitFunc func(node ast.Node, ctx *CheckContext) bool

// Walk performs a structural, pre-order traversal of node, calling visit
// on every statement and expression reached (Param and ArrayItem values
// are not Nodes themselves, but their Expr fields are still visited).
// ctx is threaded through unchanged; Walk updates ctx.Namespace as it
// descends into a NamespaceDecl so nested rules see the right enclosing
// namespace, restoring the previous value on the way back out.
func Walk(node ast.Node, ctx *CheckContext, visit VisitFunc) {
	if node == nil || isNilNode(node) {
		return
	}
	if !visit(node, ctx) {
		return
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, s := range n.Statements {
			Walk(s, ctx, visit)
		}

	case *ast.ExprStmt:
		Walk(n.X, ctx, visit)

	case *ast.Block:
		for _, s := range n.Stmts {
			Walk(s, ctx, visit)
		}

	case *ast.If:
		Walk(n.Cond, ctx, visit)
		Walk(n.Then, ctx, visit)
		for _, ei := range n.ElseIfs {
			Walk(ei.Cond, ctx, visit)
			Walk(ei.Then, ctx, visit)
		}
		Walk(n.Else, ctx, visit)

	case *ast.While:
		Walk(n.Cond, ctx, visit)
		Walk(n.Body, ctx, visit)

	case *ast.DoWhile:
		Walk(n.Body, ctx, visit)
		Walk(n.Cond, ctx, visit)

	case *ast.For:
		for _, e := range n.Init {
			Walk(e, ctx, visit)
		}
		for _, e := range n.Cond {
			Walk(e, ctx, visit)
		}
		for _, e := range n.Loop {
			Walk(e, ctx, visit)
		}
		Walk(n.Body, ctx, visit)

	case *ast.Foreach:
		Walk(n.Expr, ctx, visit)
		Walk(n.KeyVar, ctx, visit)
		Walk(n.ValueVar, ctx, visit)
		Walk(n.Body, ctx, visit)

	case *ast.Switch:
		Walk(n.Cond, ctx, visit)
		for _, c := range n.Cases {
			Walk(c.Cond, ctx, visit)
			for _, s := range c.Body {
				Walk(s, ctx, visit)
			}
		}

	case *ast.Try:
		for _, s := range n.Body {
			Walk(s, ctx, visit)
		}
		for _, c := range n.Catches {
			for _, s := range c.Body {
				Walk(s, ctx, visit)
			}
		}
		for _, s := range n.Finally {
			Walk(s, ctx, visit)
		}

	case *ast.Return:
		Walk(n.Value, ctx, visit)

	case *ast.Throw:
		Walk(n.Value, ctx, visit)

	case *ast.Echo:
		for _, v := range n.Values {
			Walk(v, ctx, visit)
		}

	case *ast.Exit:
		Walk(n.Value, ctx, visit)

	case *ast.FunctionDecl:
		walkParams(n.Params, ctx, visit)
		if n.Body != nil {
			Walk(n.Body, ctx, visit)
		}

	case *ast.ClassLike:
		for _, m := range n.Members {
			Walk(m, ctx, visit)
		}

	case *ast.MethodDecl:
		walkParams(n.Params, ctx, visit)
		if n.Body != nil {
			Walk(n.Body, ctx, visit)
		}

	case *ast.PropertyDecl:
		Walk(n.Default, ctx, visit)

	case *ast.ClassConstDecl:
		Walk(n.Value, ctx, visit)

	case *ast.NamespaceDecl:
		prev := ctx.Namespace
		ctx.Namespace = n.Name
		for _, s := range n.Body {
			Walk(s, ctx, visit)
		}
		ctx.Namespace = prev

	case *ast.ConstDeclStmt:
		Walk(n.Value, ctx, visit)

	case *ast.ArrayExpr:
		for _, item := range n.Items {
			Walk(item.Key, ctx, visit)
			Walk(item.Value, ctx, visit)
		}

	case *ast.ArrayAccess:
		Walk(n.Expr, ctx, visit)
		Walk(n.Index, ctx, visit)

	case *ast.BinaryOp:
		Walk(n.Left, ctx, visit)
		Walk(n.Right, ctx, visit)

	case *ast.UnaryOp:
		Walk(n.Operand, ctx, visit)

	case *ast.Assign:
		Walk(n.Target, ctx, visit)
		Walk(n.Value, ctx, visit)

	case *ast.Ternary:
		Walk(n.Cond, ctx, visit)
		Walk(n.Then, ctx, visit)
		Walk(n.Else, ctx, visit)

	case *ast.NullCoalesce:
		Walk(n.Left, ctx, visit)
		Walk(n.Right, ctx, visit)

	case *ast.FuncCall:
		Walk(n.Callee, ctx, visit)
		walkArgs(n.Args, ctx, visit)

	case *ast.MethodCall:
		Walk(n.Target, ctx, visit)
		walkArgs(n.Args, ctx, visit)

	case *ast.StaticCall:
		walkArgs(n.Args, ctx, visit)

	case *ast.PropertyFetch:
		Walk(n.Target, ctx, visit)

	case *ast.New:
		walkArgs(n.Args, ctx, visit)

	case *ast.Closure:
		walkParams(n.Params, ctx, visit)
		if n.Body != nil {
			Walk(n.Body, ctx, visit)
		}

	case *ast.ArrowFunction:
		walkParams(n.Params, ctx, visit)
		Walk(n.Body, ctx, visit)

	case *ast.Instanceof:
		Walk(n.Expr, ctx, visit)

	case *ast.Isset:
		for _, v := range n.Vars {
			Walk(v, ctx, visit)
		}

	case *ast.Empty:
		Walk(n.Expr, ctx, visit)

	case *ast.Cast:
		Walk(n.Expr, ctx, visit)

	case *ast.BooleanNot:
		Walk(n.Expr, ctx, visit)

	// Leaf nodes with no children to descend into: Break, Continue,
	// Ident, Variable, LiteralInt, LiteralFloat, LiteralString,
	// LiteralBool, LiteralNull, StaticPropertyFetch, ClassConstFetch,
	// UseDecl, UseTraitDecl.
	}
}

func walkParams(params []ast.Param, ctx *CheckContext, visit VisitFunc) {
	for _, p := range params {
		Walk(p.Default, ctx, visit)
	}
}

func walkArgs(args []ast.Arg, ctx *CheckContext, visit VisitFunc) {
	for _, a := range args {
		Walk(a.Value, ctx, visit)
	}
}

// isNilNode guards against the classic Go trap of a typed nil interface
// (e.g. an *ast.If with a nil Else *ast.Block stored in the Stmt
// interface) comparing unequal to the untyped nil literal.
func isNilNode(node ast.Node) bool {
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
