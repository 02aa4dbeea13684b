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

func init() { Register(explicitNullableParamRule{}) }

// explicitNullableParamRule rewrites a parameter with a type hint T (not
// already ?T, not a union already containing null) and a `= null`
// default to ?T, the explicit-nullability form PHP 8.4 deprecates the
// implicit form of.
type explicitNullableParamRule struct{}

func (explicitNullableParamRule) Name() string      { return "explicit-nullable-param" }
func (explicitNullableParamRule) Category() Category { return Compatibility }
func (explicitNullableParamRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("8.4"))
}
func (explicitNullableParamRule) ConfigOptions() []ConfigOption { return nil }

func (r explicitNullableParamRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		params := paramsOf(n)
		for _, p := range params {
			if e, ok := r.checkParam(p, ctx); ok {
				edits = append(edits, e)
			}
		}
		return true
	})
	return edits
}

func paramsOf(n ast.Node) []ast.Param {
	switch v := n.(type) {
	case *ast.FunctionDecl:
		return v.Params
	case *ast.MethodDecl:
		return v.Params
	case *ast.Closure:
		return v.Params
	case *ast.ArrowFunction:
		return v.Params
	default:
		return nil
	}
}

func (explicitNullableParamRule) checkParam(p ast.Param, ctx *visitor.CheckContext) (edit.Edit, bool) {
	if _, ok := p.Default.(*ast.LiteralNull); !ok {
		return edit.Edit{}, false
	}
	if p.Type == "" || strings.HasPrefix(p.Type, "?") {
		return edit.Edit{}, false
	}
	if unionContainsNull(p.Type) {
		return edit.Edit{}, false
	}

	paramText := ctx.Files.Text(p.Sp)
	idx := strings.Index(paramText, p.Type)
	if idx < 0 {
		return edit.Edit{}, false
	}
	insertAt := p.Sp.Start + idx
	return edit.Edit{
		Span:        span.Span{File: p.Sp.File, Start: insertAt, End: insertAt},
		Replacement: "?",
		Message:     "Make implicit nullable parameter explicit (PHP 8.4+)",
	}, true
}

// unionContainsNull reports whether a raw type-hint string already
// spells out null as one of its union members (e.g. "string|null").
func unionContainsNull(hint string) bool {
	if !strings.Contains(hint, "|") {
		return false
	}
	for _, part := range strings.Split(hint, "|") {
		if strings.EqualFold(strings.TrimSpace(part), "null") {
			return true
		}
	}
	return false
}
