// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(stringContainsRule{}) }

// stringContainsRule converts strpos($h, $n) !== false (and the
// operand-swapped, === and, when configured, loose-comparison forms)
// to str_contains($h, $n) or its negation (PHP 8.0+).
type stringContainsRule struct{}

func (stringContainsRule) Name() string                             { return "string-contains" }
func (stringContainsRule) Category() Category                       { return Modernization }
func (stringContainsRule) MinimumLanguageVersion() *version.Version { return version.Must(version.NewVersion("8.0")) }
func (stringContainsRule) ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Name: "strict_comparison", Description: "Only convert === and !== comparisons; when false, also convert == and !=", Default: true},
	}
}

func (r stringContainsRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	strict := ctx.BoolOption("strict_comparison", true)
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		bin, ok := n.(*ast.BinaryOp)
		if !ok {
			return true
		}
		var negated bool
		switch bin.Op {
		case "!==":
			negated = true
		case "===":
			negated = false
		case "!=":
			if strict {
				return true
			}
			negated = true
		case "==":
			if strict {
				return true
			}
			negated = false
		default:
			return true
		}

		if haystack, needle, ok := extractStrposCall(bin.Left, ctx); ok && isFalseLiteral(bin.Right) {
			edits = append(edits, strContainsEdit(bin, haystack, needle, negated))
			return true
		}
		if haystack, needle, ok := extractStrposCall(bin.Right, ctx); ok && isFalseLiteral(bin.Left) {
			edits = append(edits, strContainsEdit(bin, haystack, needle, negated))
		}
		return true
	})
	return edits
}

func extractStrposCall(e ast.Expr, ctx *visitor.CheckContext) (haystack, needle string, ok bool) {
	call, isCall := e.(*ast.FuncCall)
	if !isCall || !strings.EqualFold(call.Name, "strpos") || len(call.Args) != 2 {
		return "", "", false
	}
	if call.Args[0].Spread || call.Args[1].Spread {
		return "", "", false
	}
	return ctx.Files.Text(call.Args[0].Value.Span()), ctx.Files.Text(call.Args[1].Value.Span()), true
}

func isFalseLiteral(e ast.Expr) bool {
	b, ok := e.(*ast.LiteralBool)
	return ok && !b.Value
}

func strContainsEdit(bin *ast.BinaryOp, haystack, needle string, negated bool) edit.Edit {
	replacement := "str_contains(" + haystack + ", " + needle + ")"
	if !negated {
		replacement = "!" + replacement
	}
	return edit.Edit{
		Span:        bin.Span(),
		Replacement: replacement,
		Message:     "Convert strpos() to str_contains() (PHP 8.0+)",
	}
}
