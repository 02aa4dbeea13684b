// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/rewriter"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

// CompiledRule adapts one loaded RuleSpec to rewriter.Rule, so a YAML
// rule file and a hand-written Go rule are indistinguishable to the
// orchestrator's registry — C8's whole point per spec.md §4.8.
type CompiledRule struct {
	spec  *RuleSpec
	match MatchFunc
}

// Compile lowers spec's match tree into a MatchFunc closure,
// func(ast.Node, *span.Set) (*Bindings, bool). Compile does not
// re-validate spec; call Validate first (Load already does).
func Compile(spec *RuleSpec) *CompiledRule {
	return &CompiledRule{spec: spec, match: compile(spec.Match)}
}

func (r *CompiledRule) Name() string { return r.spec.Name }

func (r *CompiledRule) Category() rewriter.Category {
	switch strings.ToLower(r.spec.Category) {
	case "simplification":
		return rewriter.Simplification
	case "compatibility":
		return rewriter.Compatibility
	case "performance":
		return rewriter.Performance
	default:
		return rewriter.Modernization
	}
}

func (r *CompiledRule) MinimumLanguageVersion() *version.Version {
	if r.spec.MinimumVersion == "" {
		return nil
	}
	v, err := version.NewVersion(r.spec.MinimumVersion)
	if err != nil {
		return nil
	}
	return v
}

func (r *CompiledRule) ConfigOptions() []rewriter.ConfigOption { return nil }

// Check runs the compiled matcher against every node of program, in
// pre-order, producing one Edit per match. The children of a matched
// node are still visited, so a match nested inside another match yields
// a second Edit that overlaps the first; edits are only spliced by the
// caller after every rule has run, and the orchestrator's conflict
// resolution decides which overlapping edit is kept.
func (r *CompiledRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		bindings, ok := r.match(n, c.Files)
		if !ok {
			return true
		}
		replacement, apply := Apply(r.spec.Replace, bindings)
		if !apply {
			replacement = ""
		}
		edits = append(edits, edit.Edit{
			Span:        n.Span(),
			Replacement: replacement,
			Message:     r.spec.Description,
		})
		return true
	})
	return edits
}
