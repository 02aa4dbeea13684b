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

func init() { Register(renameStaticMethodRule{}) }

// StaticMethodMapping renames Class::OldMethod(...) calls to
// (NewClass or Class)::NewMethod(...), matching the class name exactly
// or by its unqualified (namespace-stripped) suffix, case-insensitively.
type StaticMethodMapping struct {
	Class     string
	OldMethod string
	NewClass  string // "" keeps the original class name
	NewMethod string
}

// renameStaticMethodRule renames static method calls according to a
// configured list of class/method mappings (e.g.
// DateTime::createFromFormat -> DateTimeImmutable::createFromFormat).
type renameStaticMethodRule struct{}

func (renameStaticMethodRule) Name() string                             { return "rename-static-method" }
func (renameStaticMethodRule) Category() Category                       { return Compatibility }
func (renameStaticMethodRule) MinimumLanguageVersion() *version.Version { return nil }
func (renameStaticMethodRule) ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Name: "mappings", Description: "List of class/old-method -> new-class/new-method renames", Default: []StaticMethodMapping{}},
	}
}

func (r renameStaticMethodRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	mappings, _ := ctx.Config["mappings"].([]StaticMethodMapping)
	if len(mappings) == 0 {
		return nil
	}
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		call, ok := n.(*ast.StaticCall)
		if !ok || call.Class == "" {
			return true
		}
		for _, m := range mappings {
			if !matchesClass(m.Class, call.Class) || !strings.EqualFold(m.OldMethod, call.Name) {
				continue
			}
			newClass := m.NewClass
			if newClass == "" {
				newClass = call.Class
			}
			argsText := renderArgs(call.Args, ctx)
			edits = append(edits, edit.Edit{
				Span:        call.Span(),
				Replacement: newClass + "::" + m.NewMethod + argsText,
				Message:     "Rename static method " + call.Class + "::" + call.Name,
			})
			break
		}
		return true
	})
	return edits
}

// matchesClass reports whether actual equals pattern outright or
// matches pattern's unqualified suffix after the last backslash,
// case-insensitively.
func matchesClass(pattern, actual string) bool {
	if strings.EqualFold(pattern, actual) {
		return true
	}
	if idx := strings.LastIndex(pattern, `\`); idx >= 0 {
		return strings.EqualFold(pattern[idx+1:], actual)
	}
	return false
}

// renderArgs reconstructs a call's parenthesized argument list from its
// argument expressions' source text, since the AST keeps no separate
// span for the argument-list parentheses.
func renderArgs(args []ast.Arg, ctx *visitor.CheckContext) string {
	parts := make([]string, len(args))
	for i, a := range args {
		text := ctx.Files.Text(a.Value.Span())
		switch {
		case a.Spread:
			text = "..." + text
		case a.Name != "":
			text = a.Name + ": " + text
		}
		parts[i] = text
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
