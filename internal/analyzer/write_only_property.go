// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(writeOnlyPropertyRule{}) }

// writeOnlyPropertyRule flags a $this->prop that is assigned somewhere in
// the class but never read anywhere in it — a likely sign the property
// (or the code meant to consume it) was never finished.
type writeOnlyPropertyRule struct{}

func (writeOnlyPropertyRule) ID() string          { return "property.onlyWritten" }
func (writeOnlyPropertyRule) Description() string { return "Detects properties that are written but never read" }
func (writeOnlyPropertyRule) Level() int          { return 4 }

type propertyUsage struct {
	firstWriteLine int
	reads          int
}

func (r writeOnlyPropertyRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		cl, ok := n.(*ast.ClassLike)
		if !ok {
			return true
		}
		usage := map[string]*propertyUsage{}

		visitor.Walk(cl, ctx, func(inner ast.Node, _ *visitor.CheckContext) bool {
			assign, isAssign := inner.(*ast.Assign)
			if isAssign && assign.Op == "=" {
				if fetch, ok := assign.Target.(*ast.PropertyFetch); ok && isThis(fetch.Target) {
					recordWrite(usage, fetch, ctx)
					// The RHS may itself read other $this properties; only
					// the LHS target is exempt from counting as a read.
					visitor.Walk(assign.Value, ctx, func(rhsNode ast.Node, _ *visitor.CheckContext) bool {
						if rf, ok := rhsNode.(*ast.PropertyFetch); ok && isThis(rf.Target) {
							recordRead(usage, rf)
						}
						return true
					})
					return false
				}
			}
			if fetch, ok := inner.(*ast.PropertyFetch); ok && isThis(fetch.Target) {
				recordRead(usage, fetch)
			}
			return true
		})

		for prop, u := range usage {
			if u.reads > 0 {
				continue
			}
			issues = append(issues, newIssue(r.ID(), r.Level(),
				"Property "+prop+" is never read, only written.", ctx.FilePath, u.firstWriteLine, 1))
		}
		return false // nested Walk above already covers cl's subtree
	})

	return issues
}

func isThis(e ast.Expr) bool {
	v, ok := e.(*ast.Variable)
	return ok && v.Name == "this"
}

func recordWrite(usage map[string]*propertyUsage, fetch *ast.PropertyFetch, ctx *visitor.CheckContext) {
	u := usage[fetch.Name]
	if u == nil {
		u = &propertyUsage{}
		usage[fetch.Name] = u
	}
	if u.firstWriteLine == 0 {
		line := 0
		if ctx.Files != nil {
			line, _ = ctx.Files.Position(fetch.Span())
		}
		u.firstWriteLine = line
	}
}

func recordRead(usage map[string]*propertyUsage, fetch *ast.PropertyFetch) {
	u := usage[fetch.Name]
	if u == nil {
		u = &propertyUsage{}
		usage[fetch.Name] = u
	}
	u.reads++
}
