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

func init() { Register(overrideAttributeRule{}) }

// interfaceMethods lists well-known interface method names this rule
// treats as overrides without cross-file analysis: a class implementing
// one of them is presumed to be satisfying Countable, Iterator,
// ArrayAccess, Stringable, JsonSerializable, IteratorAggregate, or the
// deprecated Serializable interface.
var interfaceMethods = map[string]bool{
	"count": true,
	"current": true, "key": true, "next": true, "rewind": true, "valid": true,
	"offsetExists": true, "offsetGet": true, "offsetSet": true, "offsetUnset": true,
	"__toString":    true,
	"jsonSerialize": true,
	"getIterator":   true,
	"serialize":     true, "unserialize": true,
}

// overrideAttributeRule adds #[Override] to methods in a class that
// extends or implements when the method (a) calls
// parent::sameName(...), (b) matches a well-known interface method
// name, or (c) is __construct calling parent::__construct — unless the
// method already carries the attribute, or is private, static, or
// abstract.
type overrideAttributeRule struct{}

func (overrideAttributeRule) Name() string                             { return "override-attribute" }
func (overrideAttributeRule) Category() Category                       { return Modernization }
func (overrideAttributeRule) MinimumLanguageVersion() *version.Version { return version.Must(version.NewVersion("8.3")) }
func (overrideAttributeRule) ConfigOptions() []ConfigOption            { return nil }

func (r overrideAttributeRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		cl, ok := n.(*ast.ClassLike)
		if !ok {
			return true
		}
		hasSuper := cl.Parent != "" || len(cl.Interfaces) > 0
		if !hasSuper {
			return true
		}
		for _, member := range cl.Members {
			m, ok := member.(*ast.MethodDecl)
			if !ok || m.Body == nil {
				continue
			}
			if m.Static || m.Abstract || m.Visibility == "private" {
				continue
			}
			if hasOverrideAttribute(m) {
				continue
			}
			if !r.shouldAddOverride(m, cl) {
				continue
			}
			insertAt := m.Span().Start
			edits = append(edits, edit.Edit{
				Span:        span.Span{File: m.Span().File, Start: insertAt, End: insertAt},
				Replacement: "#[Override]\n",
				Message:     "Add #[Override] attribute (PHP 8.3+)",
			})
		}
		return true
	})
	return edits
}

func hasOverrideAttribute(m *ast.MethodDecl) bool {
	for _, a := range m.Attributes {
		if strings.EqualFold(a, "Override") {
			return true
		}
	}
	return false
}

func (overrideAttributeRule) shouldAddOverride(m *ast.MethodDecl, cl *ast.ClassLike) bool {
	if strings.EqualFold(m.Name, "__construct") {
		return cl.Parent != "" && callsParent(m.Body, "__construct")
	}
	if interfaceMethods[m.Name] {
		return true
	}
	return cl.Parent != "" && callsParent(m.Body, m.Name)
}

func callsParent(body *ast.Block, methodName string) bool {
	if body == nil {
		return false
	}
	found := false
	visitor.Walk(body, &visitor.CheckContext{}, func(n ast.Node, c *visitor.CheckContext) bool {
		if found {
			return false
		}
		call, ok := n.(*ast.StaticCall)
		if ok && strings.EqualFold(call.Class, "parent") && call.Name == methodName {
			found = true
			return false
		}
		return true
	})
	return found
}
