// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(invalidBinaryOpRule{}) }

// invalidBinaryOpRule flags arithmetic and bitwise operators whose
// operand types, inferred from simple literal/array/new/binary shapes,
// can never satisfy the operator (e.g. "foo" - 1, or a string bit-shift).
type invalidBinaryOpRule struct{}

func (invalidBinaryOpRule) ID() string          { return "binaryOp.invalid" }
func (invalidBinaryOpRule) Description() string { return "Detects binary operations with incompatible operand types" }
func (invalidBinaryOpRule) Level() int          { return 4 }

type exprKind int

const (
	exprUnknown exprKind = iota
	exprInt
	exprFloat
	exprString
	exprArray
	exprObject
	exprBool
	exprNull
)

func (r invalidBinaryOpRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		bin, ok := n.(*ast.BinaryOp)
		if !ok {
			return true
		}
		lhs, rhs := inferExprKind(bin.Left), inferExprKind(bin.Right)
		if lhs == exprUnknown || rhs == exprUnknown {
			return true // can't infer either operand: stay silent
		}

		msg, bad := checkBinaryOpKinds(bin.Op, lhs, rhs)
		if !bad {
			return true
		}
		line, col := 0, 0
		if ctx.Files != nil {
			line, col = ctx.Files.Position(bin.Span())
		}
		issues = append(issues, newIssue(r.ID(), r.Level(), msg, ctx.FilePath, line, col))
		return true
	})

	return issues
}

func isNumericKind(k exprKind) bool { return k == exprInt || k == exprFloat }

func checkBinaryOpKinds(op string, lhs, rhs exprKind) (string, bool) {
	switch op {
	case "+":
		if lhs == exprArray && rhs == exprArray {
			return "", false
		}
		if !isNumericKind(lhs) || !isNumericKind(rhs) {
			return "Binary operation \"+\" between " + kindName(lhs) + " and " + kindName(rhs) + " results in an error.", true
		}
	case "-", "*", "/", "%", "**":
		if !isNumericKind(lhs) || !isNumericKind(rhs) {
			return "Binary operation \"" + op + "\" between " + kindName(lhs) + " and " + kindName(rhs) + " results in an error.", true
		}
	case "&", "|", "^", "<<", ">>":
		if lhs != exprInt || rhs != exprInt {
			return "Binary operation \"" + op + "\" between " + kindName(lhs) + " and " + kindName(rhs) + " results in an error.", true
		}
	}
	return "", false
}

func kindName(k exprKind) string {
	switch k {
	case exprInt:
		return "Int"
	case exprFloat:
		return "Float"
	case exprString:
		return "String"
	case exprArray:
		return "Array"
	case exprObject:
		return "Object"
	case exprBool:
		return "Bool"
	case exprNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// inferExprKind infers a coarse static type for arithmetic/bitwise
// validity checks. Variables, calls, and anything else whose runtime
// type isn't locally visible infer as exprUnknown, which suppresses the
// check rather than risk a false positive.
func inferExprKind(e ast.Expr) exprKind {
	switch v := e.(type) {
	case *ast.LiteralInt:
		return exprInt
	case *ast.LiteralFloat:
		return exprFloat
	case *ast.LiteralString:
		return exprString
	case *ast.LiteralBool:
		return exprBool
	case *ast.LiteralNull:
		return exprNull
	case *ast.ArrayExpr:
		return exprArray
	case *ast.New:
		return exprObject
	case *ast.BinaryOp:
		return inferBinaryResultKind(v)
	default:
		return exprUnknown
	}
}

func inferBinaryResultKind(bin *ast.BinaryOp) exprKind {
	switch bin.Op {
	case "+", "-", "*", "/", "%", "**":
		lhs, rhs := inferExprKind(bin.Left), inferExprKind(bin.Right)
		if lhs == exprFloat || rhs == exprFloat {
			return exprFloat
		}
		return exprInt
	case ".":
		return exprString
	case "==", "!=", "===", "!==", "<", "<=", ">", ">=", "&&", "||", "and", "or":
		return exprBool
	default:
		return exprUnknown
	}
}
