// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(readonlyPropertiesRule{}) }

// readonlyPropertiesRule inserts `readonly ` after the visibility
// modifier of a typed instance property that has no default and no
// existing readonly/static modifier, when the only assignments to it
// anywhere in the class are inside the constructor.
type readonlyPropertiesRule struct{}

func (readonlyPropertiesRule) Name() string       { return "readonly-properties" }
func (readonlyPropertiesRule) Category() Category { return Modernization }
func (readonlyPropertiesRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("8.1"))
}
func (readonlyPropertiesRule) ConfigOptions() []ConfigOption { return nil }

func (r readonlyPropertiesRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		cl, ok := n.(*ast.ClassLike)
		if !ok {
			return true
		}

		candidates := map[string]*ast.PropertyDecl{}
		for _, member := range cl.Members {
			p, ok := member.(*ast.PropertyDecl)
			if !ok || p.Type == "" || p.Readonly || p.Static || p.HasDefault {
				continue
			}
			candidates[p.Name] = p
		}
		if len(candidates) == 0 {
			return true
		}

		constructorAssigned := map[string]bool{}
		otherAssigned := map[string]bool{}
		for _, member := range cl.Members {
			m, ok := member.(*ast.MethodDecl)
			if !ok || m.Body == nil {
				continue
			}
			dest := otherAssigned
			if strings.EqualFold(m.Name, "__construct") {
				dest = constructorAssigned
			}
			collectPropertyAssignments(m.Body, ctx, dest)
		}

		for name, prop := range candidates {
			if !constructorAssigned[name] || otherAssigned[name] {
				continue
			}
			insertAt, ok := readonlyInsertPoint(prop, ctx)
			if !ok {
				continue
			}
			edits = append(edits, edit.Edit{
				Span:        span.Span{File: prop.Span().File, Start: insertAt, End: insertAt},
				Replacement: "readonly ",
				Message:     "Add readonly to property $" + name,
			})
		}
		return true
	})
	return edits
}

func collectPropertyAssignments(body *ast.Block, ctx *visitor.CheckContext, into map[string]bool) {
	visitor.Walk(body, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		assign, ok := n.(*ast.Assign)
		if !ok {
			return true
		}
		fetch, ok := assign.Target.(*ast.PropertyFetch)
		if !ok || !isThis(fetch.Target) {
			return true
		}
		into[fetch.Name] = true
		return true
	})
}

// readonlyInsertPoint locates the byte offset right after the
// visibility keyword in a property declaration's source text, or the
// start of the declaration if it has no explicit visibility.
func readonlyInsertPoint(p *ast.PropertyDecl, ctx *visitor.CheckContext) (int, bool) {
	if ctx.Files == nil {
		return 0, false
	}
	sp := p.Span()
	if p.Visibility == "" {
		return sp.Start, true
	}
	text := ctx.Files.Text(sp)
	idx := strings.Index(text, p.Visibility)
	if idx < 0 {
		return sp.Start, true
	}
	return sp.Start + idx + len(p.Visibility) + 1, true
}
