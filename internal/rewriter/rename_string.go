// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(renameStringRule{}) }

// renameStringRule renames single- or double-quoted string literals
// according to a configured old-value -> new-value mapping. Heredoc and
// nowdoc literals, whose source text has no leading quote character,
// are left untouched.
type renameStringRule struct{}

func (renameStringRule) Name() string                             { return "rename-string" }
func (renameStringRule) Category() Category                       { return Compatibility }
func (renameStringRule) MinimumLanguageVersion() *version.Version { return nil }
func (renameStringRule) ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Name: "mappings", Description: "Map of old string literal value to new string literal value", Default: map[string]string{}},
	}
}

func (r renameStringRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	mappings := ctx.MapOption("mappings", nil)
	if len(mappings) == 0 {
		return nil
	}
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		lit, ok := n.(*ast.LiteralString)
		if !ok {
			return true
		}
		newValue, ok := mappings[lit.Value]
		if !ok {
			return true
		}
		full := ctx.Files.Text(lit.Span())
		if len(full) == 0 {
			return true
		}
		quote := full[0]
		if quote != '\'' && quote != '"' {
			return true // heredoc/nowdoc, skip
		}
		edits = append(edits, edit.Edit{
			Span:        lit.Span(),
			Replacement: string(quote) + newValue + string(quote),
			Message:     "Rename string '" + lit.Value + "' to '" + newValue + "'",
		})
		return true
	})
	return edits
}
