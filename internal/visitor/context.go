// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visitor implements the generic AST traversal every analyzer
// and rewriter rule is built on: a single Walk function that threads an
// immutable CheckContext by reference through the recursion, the way
// the teacher threads its cursor struct through every dstutil.Apply
// callback.
package visitor

import (
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/symbols"
)

// CheckContext is the read-only environment a rule's Check method
// receives: which file it's looking at, that file's original source
// text, the fully-populated cross-file symbol table, and the rule-set's
// resolved configuration options. Rules never mutate it; the
// orchestrator constructs one CheckContext per file per run.
type CheckContext struct {
	FilePath string
	Source   string
	Files    *span.Set
	Symbols  *symbols.Table
	Config   map[string]any

	// Namespace is refreshed by Walk as it descends through NamespaceDecl
	// nodes, so a rule inspecting a node deep in the tree can resolve
	// short class names (import aliases come from the symbol table) via
	// Symbols.ResolveClassName(name, ctx.FilePath, ctx.Namespace).
	Namespace string
}

// BoolOption reads a boolean config option, defaulting to def when absent or
// of the wrong type.
func (c *CheckContext) BoolOption(name string, def bool) bool {
	if c == nil || c.Config == nil {
		return def
	}
	if v, ok := c.Config[name].(bool); ok {
		return v
	}
	return def
}

// StringOption reads a string config option, defaulting to def when
// absent or of the wrong type.
func (c *CheckContext) StringOption(name, def string) string {
	if c == nil || c.Config == nil {
		return def
	}
	if v, ok := c.Config[name].(string); ok {
		return v
	}
	return def
}

// MapOption reads a string-to-string config option (a rename mapping
// loaded from YAML project config), defaulting to def when absent or of
// the wrong type.
func (c *CheckContext) MapOption(name string, def map[string]string) map[string]string {
	if c == nil || c.Config == nil {
		return def
	}
	switch v := c.Config[name].(type) {
	case map[string]string:
		return v
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return def
	}
}
