// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern implements the declarative rewrite DSL: a RuleSpec
// loaded from a YAML file compiles into a matcher closure over the AST
// plus a data-only replacement template, so new rewrites can be added
// without a Go code change and a rebuild.
package pattern

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleSpec is one rule YAML file's top-level document.
type RuleSpec struct {
	Name           string      `yaml:"name"`
	Description    string      `yaml:"description,omitempty"`
	Category       string      `yaml:"category,omitempty"`
	MinimumVersion string      `yaml:"minimum_version,omitempty"`
	Match          Pattern     `yaml:"match"`
	Replace        Replacement `yaml:"replace"`
	Tests          []RuleTest  `yaml:"tests,omitempty"`
}

// RuleTest is one input/output pair a rule's YAML file asserts, run by
// internal/pattern/loadertest-style golden checks at load time or by CI.
type RuleTest struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Pattern is one node of a match tree. Every field is optional; which
// fields a given node honors depends on Node (see matcher.go), mirroring
// the loose, per-kind field set spec.md §4.8 describes rather than a
// strict schema per node kind.
type Pattern struct {
	Node      string    `yaml:"node,omitempty"`
	Name      string    `yaml:"name,omitempty"`
	Args      []Pattern `yaml:"args,omitempty"`
	Left      *Pattern  `yaml:"left,omitempty"`
	Right     *Pattern  `yaml:"right,omitempty"`
	Operator  string    `yaml:"operator,omitempty"`
	Condition *Pattern  `yaml:"condition,omitempty"`
	Then      *Pattern  `yaml:"then,omitempty"`
	Else      *Pattern  `yaml:"else,omitempty"`
	Capture   string    `yaml:"capture,omitempty"`
	SameAs    string    `yaml:"same_as,omitempty"`
	Any       []Pattern `yaml:"any,omitempty"`
	NoMore    bool      `yaml:"no_more,omitempty"`
}

// ReplacementNode is the structured "build form" of a replacement: a
// node kind plus the subtemplates (themselves $capture-bearing strings,
// not nested Patterns) needed to render it.
type ReplacementNode struct {
	Node     string   `yaml:"node"`
	Name     string   `yaml:"name,omitempty"`
	Args     []string `yaml:"args,omitempty"`
	Operator string   `yaml:"operator,omitempty"`
	Left     string   `yaml:"left,omitempty"`
	Right    string   `yaml:"right,omitempty"`
	Expr     string   `yaml:"expr,omitempty"`
}

// Conditional chooses between two replacements by evaluating a simple
// predicate string over the bindings a match produced.
type Conditional struct {
	Condition   string      `yaml:"condition"`
	ThenReplace Replacement `yaml:"then_replace"`
	ElseReplace Replacement `yaml:"else_replace"`
}

type replaceKind int

const (
	replaceTemplate replaceKind = iota
	replaceNode
	replaceConditional
	replaceMultiple
	replaceRemove
)

// Replacement is a tagged union over the five replacement shapes
// spec.md §4.8 lists: a plain template string, a structured node, a
// conditional choice between two replacements, a join of several
// templates, or a deletion marker. YAML has no native tagged unions, so
// UnmarshalYAML inspects the node's shape (scalar vs. which mapping key
// is present) to pick a variant, the same discriminate-on-shape idiom
// other_examples' policy.Match type uses for its own match alternatives.
type Replacement struct {
	kind        replaceKind
	template    string
	node        *ReplacementNode
	conditional *Conditional
	multiple    []string
}

func (r *Replacement) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s == "remove" {
			*r = Replacement{kind: replaceRemove}
			return nil
		}
		*r = Replacement{kind: replaceTemplate, template: s}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("pattern: replace must be a string or a mapping, got kind %v", value.Kind)
	}

	keys := make(map[string]bool)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keys[value.Content[i].Value] = true
	}

	switch {
	case keys["multiple"]:
		var m struct {
			Multiple []string `yaml:"multiple"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*r = Replacement{kind: replaceMultiple, multiple: m.Multiple}
	case keys["condition"]:
		var c Conditional
		if err := value.Decode(&c); err != nil {
			return err
		}
		*r = Replacement{kind: replaceConditional, conditional: &c}
	case keys["node"]:
		var n ReplacementNode
		if err := value.Decode(&n); err != nil {
			return err
		}
		*r = Replacement{kind: replaceNode, node: &n}
	default:
		return fmt.Errorf("pattern: replace mapping has none of multiple/condition/node keys")
	}
	return nil
}
