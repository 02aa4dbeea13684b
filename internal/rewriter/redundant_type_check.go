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

func init() { Register(redundantTypeCheckRule{}) }

// typeCheckFuncs maps an is_*() function name to the declared
// parameter-type spellings it is redundant against; type declarations
// already guarantee the type at runtime, so the call can only ever
// return true.
var typeCheckFuncs = map[string][]string{
	"is_int": {"int", "integer"}, "is_integer": {"int", "integer"}, "is_long": {"int", "integer"},
	"is_string": {"string"},
	"is_array":  {"array"},
	"is_float":  {"float", "double", "real"}, "is_double": {"float", "double", "real"}, "is_real": {"float", "double", "real"},
	"is_bool":     {"bool", "boolean"},
	"is_object":   {"object"},
	"is_callable": {"callable"},
	"is_iterable": {"iterable"},
}

// redundantTypeCheckRule replaces is_int($x)-style calls with `true`
// when $x is a parameter already typed as that same type; a simplified,
// same-file-only type-aware rule that tracks only function/method/
// closure parameter type hints, not the full symbol table.
type redundantTypeCheckRule struct{}

func (redundantTypeCheckRule) Name() string       { return "redundant-type-check" }
func (redundantTypeCheckRule) Category() Category { return Simplification }
func (redundantTypeCheckRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("7.0"))
}
func (redundantTypeCheckRule) ConfigOptions() []ConfigOption { return nil }

func (r redundantTypeCheckRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	a := &redundantTypeCheckAnalyzer{ctx: ctx}
	a.scan(program, map[string]string{}, &edits)
	return edits
}

type redundantTypeCheckAnalyzer struct {
	ctx *visitor.CheckContext
}

func (a *redundantTypeCheckAnalyzer) scan(node ast.Node, typed map[string]string, edits *[]edit.Edit) {
	visitor.Walk(node, a.ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.FunctionDecl:
			a.scan(v.Body, mergeTypedParams(typed, v.Params), edits)
			return false
		case *ast.MethodDecl:
			a.scan(v.Body, mergeTypedParams(typed, v.Params), edits)
			return false
		case *ast.Closure:
			a.scan(v.Body, mergeTypedParams(typed, v.Params), edits)
			return false
		case *ast.ArrowFunction:
			a.scan(v.Body, mergeTypedParams(typed, v.Params), edits)
			return false

		case *ast.FuncCall:
			matching, ok := typeCheckFuncs[strings.ToLower(v.Name)]
			if !ok || len(v.Args) != 1 || v.Args[0].Name != "" || v.Args[0].Spread {
				return true
			}
			variable, ok := v.Args[0].Value.(*ast.Variable)
			if !ok {
				return true
			}
			paramType, ok := typed[variable.Name]
			if !ok {
				return true
			}
			if !containsFold(matching, paramType) {
				return true
			}
			*edits = append(*edits, edit.Edit{
				Span:        v.Span(),
				Replacement: "true",
				Message:     "Redundant " + v.Name + "() - $" + variable.Name + " is already typed as " + paramType,
			})
		}
		return true
	})
}

func mergeTypedParams(parent map[string]string, params []ast.Param) map[string]string {
	out := make(map[string]string, len(parent)+len(params))
	for k, v := range parent {
		out[k] = v
	}
	for _, p := range params {
		if p.Type == "" || strings.HasPrefix(p.Type, "?") {
			// An untyped or nullable parameter does not guarantee the
			// type, and hides any outer parameter of the same name.
			delete(out, p.Name)
			continue
		}
		out[p.Name] = strings.ToLower(p.Type)
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
