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

func init() { Register(renameConstantRule{}) }

// renameConstantRule renames bare global constant references according
// to a configured old-name -> new-name mapping (e.g. MYSQL_ASSOC ->
// MYSQLI_ASSOC). With no mappings configured, it never fires.
type renameConstantRule struct{}

func (renameConstantRule) Name() string                             { return "rename-constant" }
func (renameConstantRule) Category() Category                       { return Compatibility }
func (renameConstantRule) MinimumLanguageVersion() *version.Version { return nil }
func (renameConstantRule) ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Name: "mappings", Description: "Map of old constant name to new constant name", Default: map[string]string{}},
	}
}

func (r renameConstantRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	mappings := ctx.MapOption("mappings", nil)
	if len(mappings) == 0 {
		return nil
	}
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		lower := strings.ToLower(id.Name)
		if lower == "true" || lower == "false" || lower == "null" {
			return true
		}
		newName, ok := mappings[id.Name]
		if !ok {
			return true
		}
		edits = append(edits, edit.Edit{
			Span:        id.Span(),
			Replacement: newName,
			Message:     "Rename constant " + id.Name + " to " + newName,
		})
		return true
	})
	return edits
}
