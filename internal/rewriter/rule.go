// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewriter implements the pluggable rewriter rules: each Rule
// inspects one file's AST and produces edit.Edit values describing a
// source-to-source transform. Rewriters must refuse to act on an
// ambiguous match — correctness beats coverage, the same failure
// policy internal/analyzer follows for diagnostics.
package rewriter

import (
	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

// Category classifies the intent of a rewrite, surfaced to operators
// choosing which categories to enable.
type Category int

const (
	Modernization Category = iota
	Simplification
	Compatibility
	Performance
)

func (c Category) String() string {
	switch c {
	case Modernization:
		return "Modernization"
	case Simplification:
		return "Simplification"
	case Compatibility:
		return "Compatibility"
	case Performance:
		return "Performance"
	default:
		return "Unknown"
	}
}

// ConfigOption documents one configuration knob a rewrite rule reads
// from CheckContext.Config, so a project config file and its validator
// can describe every option a rule set accepts without reading the rule
// bodies themselves.
type ConfigOption struct {
	Name        string
	Description string
	Default     any
}

// Rule is one rewriter transform.
type Rule interface {
	Name() string
	Category() Category
	// MinimumLanguageVersion returns the earliest language version this
	// rewrite's output is valid for, or nil if it has no such floor.
	MinimumLanguageVersion() *version.Version
	ConfigOptions() []ConfigOption
	Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit
}

// rules is the package-level registry every rule file's init registers
// itself into, mirroring internal/analyzer's registry (itself grounded
// on the teacher's internal/fix/rules.go idiom).
var rules []Rule

// Register adds a rule to the default set returned by All. Called from
// each rule file's init().
func Register(r Rule) {
	rules = append(rules, r)
}

// All returns every registered rule.
func All() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Applicable returns every registered rule whose MinimumLanguageVersion
// is unset or at or below targetVersion, the filter the orchestrator
// applies for a project's configured minimum language version.
func Applicable(targetVersion *version.Version) []Rule {
	var out []Rule
	for _, r := range rules {
		min := r.MinimumLanguageVersion()
		if min == nil || targetVersion == nil || min.Compare(targetVersion) <= 0 {
			out = append(out, r)
		}
	}
	return out
}
