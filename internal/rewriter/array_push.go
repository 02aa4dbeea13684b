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

func init() { Register(arrayPushRule{}) }

// arrayPushRule rewrites array_push($arr, $val), used as a statement
// with exactly two positional, non-spread arguments, to $arr[] = $val.
// Three-or-more-argument forms and any use whose return value is
// consumed are left untouched.
type arrayPushRule struct{}

func (arrayPushRule) Name() string                             { return "array-push-to-append" }
func (arrayPushRule) Category() Category                        { return Performance }
func (arrayPushRule) MinimumLanguageVersion() *version.Version { return nil }
func (arrayPushRule) ConfigOptions() []ConfigOption            { return nil }

func (r arrayPushRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		exprStmt, ok := n.(*ast.ExprStmt)
		if !ok {
			return true
		}
		call, ok := exprStmt.X.(*ast.FuncCall)
		if !ok || !strings.EqualFold(call.Name, "array_push") || len(call.Args) != 2 {
			return true
		}
		if call.Args[0].Spread || call.Args[1].Spread || call.Args[0].Name != "" || call.Args[1].Name != "" {
			return true // named/variadic forms aren't the plain two-positional shape
		}
		arrText := ctx.Files.Text(call.Args[0].Value.Span())
		valText := ctx.Files.Text(call.Args[1].Value.Span())
		edits = append(edits, edit.Edit{
			Span:        call.Span(),
			Replacement: arrText + "[] = " + valText,
			Message:     "Replace array_push() with short syntax for better performance",
		})
		return true
	})
	return edits
}
