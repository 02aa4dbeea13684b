// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"gopkg.in/yaml.v3"
)

// knownNodeKinds is every Kind() string a Pattern's "node:" field may
// legally name, kept in lockstep with internal/ast's Kind() methods (see
// that package's doc comment on why renaming a Kind string is breaking).
var knownNodeKinds = set.From([]string{
	"FuncCall", "MethodCall", "StaticCall", "New", "Array", "ArrayAccess",
	"Isset", "Empty", "BinaryOp", "UnaryOp", "NullCoalesce", "Ternary",
	"Instanceof", "Variable", "Identifier", "LiteralInt", "LiteralFloat",
	"LiteralString", "LiteralTrue", "LiteralFalse", "LiteralNull", "Cast",
	"BooleanNot", "ClassConstFetch", "PropertyFetch", "StaticPropertyFetch",
	"Closure", "ArrowFunction", "Assign",
})

// Load reads and validates one rule YAML file.
func Load(path string) (*RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: reading %s: %w", path, err)
	}
	var spec RuleSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("pattern: parsing %s: %w", path, err)
	}
	if err := Validate(&spec); err != nil {
		return nil, fmt.Errorf("pattern: %s: %w", path, err)
	}
	return &spec, nil
}

// LoadDir loads every *.yaml/*.yml file directly under dir (no
// recursion, matching the teacher's flat rule-directory convention),
// returning one RuleSpec per file sorted by filename for deterministic
// ordering.
func LoadDir(dir string) ([]*RuleSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pattern: reading directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	specs := make([]*RuleSpec, 0, len(names))
	for _, name := range names {
		spec, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Validate rejects a RuleSpec at load time rather than letting it fail
// silently (or panic) at match time: unknown node kinds and same_as
// references to a capture that is never bound anywhere in the match
// tree are both load-time errors, per spec.md §4.8's failure-mode split
// between load-time validation and run-time non-matches.
func Validate(spec *RuleSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("rule has no name")
	}

	captures := set.New[string](8)
	var sameAsRefs []string
	var firstErr error

	var walk func(p *Pattern)
	walk = func(p *Pattern) {
		if p == nil || firstErr != nil {
			return
		}
		if p.Node != "" && !knownNodeKinds.Contains(p.Node) {
			firstErr = fmt.Errorf("unknown node kind %q", p.Node)
			return
		}
		if p.Capture != "" {
			captures.Insert(captureName(p.Capture))
		}
		if p.SameAs != "" {
			sameAsRefs = append(sameAsRefs, captureName(p.SameAs))
		}
		for i := range p.Args {
			walk(&p.Args[i])
		}
		walk(p.Left)
		walk(p.Right)
		walk(p.Condition)
		walk(p.Then)
		walk(p.Else)
		for i := range p.Any {
			walk(&p.Any[i])
		}
	}
	walk(&spec.Match)
	if firstErr != nil {
		return firstErr
	}

	for _, ref := range sameAsRefs {
		if !captures.Contains(ref) {
			return fmt.Errorf("same_as references undefined capture %q", ref)
		}
	}
	return nil
}

func captureName(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, "$"), "...")
}
