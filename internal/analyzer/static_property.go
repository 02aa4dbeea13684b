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

func init() { Register(staticPropertyRule{}) }

// staticPropertyRule flags Class::$property access where Class is a
// known class (locally declared or in the symbol table) that does not
// declare that static property, directly or through its hierarchy.
type staticPropertyRule struct{}

func (staticPropertyRule) ID() string          { return "staticProperty.notFound" }
func (staticPropertyRule) Description() string { return "Detects access to undefined static properties" }
func (staticPropertyRule) Level() int          { return 0 }

func (r staticPropertyRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		sp, ok := n.(*ast.StaticPropertyFetch)
		if !ok {
			return true
		}
		if classNameKeywords[strings.ToLower(sp.Class)] {
			return true
		}
		if ctx.Symbols == nil {
			return true
		}
		resolved := ctx.Symbols.ResolveClassName(sp.Class, ctx.FilePath, ctx.Namespace)
		info, found := ctx.Symbols.Class(resolved)
		if !found {
			return true // unknown class: can't verify, stay silent
		}
		if ctx.Symbols.HasPropertyInHierarchy(info.FullName, sp.Name) {
			return true
		}
		line, col := 0, 0
		if ctx.Files != nil {
			line, col = ctx.Files.Position(sp.Span())
		}
		issues = append(issues, newIssue(r.ID(), r.Level(),
			"Access to an undefined static property "+info.FullName+"::$"+sp.Name+".",
			ctx.FilePath, line, col))
		return true
	})

	return issues
}
