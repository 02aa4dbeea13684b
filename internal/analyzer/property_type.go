// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/types"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(propertyTypeRule{}) }

// propertyTypeRule flags `$this->prop = value` where prop has a
// declared type hint and value's inferred static type can never
// satisfy it — e.g. assigning a string literal to an `int` property.
type propertyTypeRule struct{}

func (propertyTypeRule) ID() string          { return "property.typeMismatch" }
func (propertyTypeRule) Description() string { return "Validates that values assigned to typed properties match their types" }
func (propertyTypeRule) Level() int          { return 3 }

func (r propertyTypeRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		cl, ok := n.(*ast.ClassLike)
		if !ok {
			return true
		}
		properties := collectPropertyTypes(cl)

		visitor.Walk(cl, ctx, func(inner ast.Node, _ *visitor.CheckContext) bool {
			assign, ok := inner.(*ast.Assign)
			if !ok || assign.Op != "=" {
				return true
			}
			fetch, ok := assign.Target.(*ast.PropertyFetch)
			if !ok {
				return true
			}
			target, ok := fetch.Target.(*ast.Variable)
			if !ok || target.Name != "this" {
				return true
			}
			declared, ok := properties[fetch.Name]
			if !ok || declared == nil {
				return true
			}

			actual := inferLiteralType(assign.Value)
			if actual == nil {
				return true // can't infer anything useful: stay silent
			}
			if types.Accepts(declared, actual, false) != types.No {
				return true
			}

			line, col := 0, 0
			if ctx.Files != nil {
				line, col = ctx.Files.Position(fetch.Span())
			}
			issues = append(issues, newIssue(r.ID(), r.Level(),
				"Property $"+fetch.Name+" ("+declared.String()+") cannot be assigned "+actual.String()+" value.",
				ctx.FilePath, line, col))
			return true
		})
		return false // the nested Walk above already covers cl's subtree
	})

	return issues
}

// collectPropertyTypes maps a class's declared (non-promoted and
// promoted-constructor) property names to their parsed type, including
// the leading '?' nullable marker. nil means declared but untyped.
func collectPropertyTypes(cl *ast.ClassLike) map[string]types.Type {
	out := make(map[string]types.Type)
	for _, member := range cl.Members {
		switch m := member.(type) {
		case *ast.PropertyDecl:
			if m.Type != "" {
				out[m.Name] = parseTypeHint(m.Type)
			} else {
				out[m.Name] = nil
			}
		case *ast.MethodDecl:
			if !strings.EqualFold(m.Name, "__construct") {
				continue
			}
			for _, p := range m.Params {
				if p.Promoted && p.Type != "" {
					out[p.Name] = parseTypeHint(p.Type)
				}
			}
		}
	}
	return out
}

// parseTypeHint turns a raw `?Foo`/`int`/`Foo|Bar` type-hint string into
// a Type via the same phpdoc grammar annotations use, since a language
// type hint and a phpdoc type use identical syntax for these purposes.
func parseTypeHint(hint string) types.Type {
	return types.ParseTypeString(hint)
}

// inferLiteralType infers the static type of a simple expression shape;
// it returns nil (meaning "unknown, don't check") for anything whose
// type depends on runtime information the rule has no way to see.
func inferLiteralType(e ast.Expr) types.Type {
	switch v := e.(type) {
	case *ast.LiteralInt:
		return types.Int
	case *ast.LiteralFloat:
		return types.Float
	case *ast.LiteralString:
		return types.String
	case *ast.LiteralBool:
		return types.Bool
	case *ast.LiteralNull:
		return types.Null
	case *ast.ArrayExpr:
		return types.Array{Key: types.Mixed, Value: types.Mixed}
	case *ast.New:
		return types.Object{Class: v.Class}
	case *ast.Closure, *ast.ArrowFunction:
		return types.Closure
	default:
		return nil
	}
}
