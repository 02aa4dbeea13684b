// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(undefinedConstantRule{}) }

// undefinedConstantKeywords are bare identifiers that read like constant
// fetches but are language keywords, never flagged.
var undefinedConstantKeywords = map[string]bool{"true": true, "false": true, "null": true}

// undefinedConstantRule flags a bare identifier used as an expression
// (a global constant fetch) that names neither a define()'d constant,
// a `const` declaration, a built-in, nor anything in the symbol table.
// It does not check class constants (Foo::BAR) — see static_property.go
// and class_name_case.go for those forms.
type undefinedConstantRule struct{}

func (undefinedConstantRule) ID() string          { return "constant.notFound" }
func (undefinedConstantRule) Description() string { return "Detects usage of undefined global constants" }
func (undefinedConstantRule) Level() int          { return 0 }

func (r undefinedConstantRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	// A define('NAME', ...) call defines NAME for the rest of the file,
	// regardless of where in the tree it's reached from, so collect
	// these in a first pass exactly like the table of declared classes
	// in class_name_case.go.
	localConsts := make(map[string]bool)
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		call, ok := n.(*ast.FuncCall)
		if !ok || !strings.EqualFold(call.Name, "define") || len(call.Args) == 0 {
			return true
		}
		if lit, ok := call.Args[0].Value.(*ast.LiteralString); ok {
			localConsts[lit.Value] = true
		}
		return true
	})
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		if decl, ok := n.(*ast.ConstDeclStmt); ok {
			localConsts[decl.Name] = true
		}
		if decl, ok := n.(*ast.ClassConstDecl); ok {
			localConsts[decl.Name] = true
		}
		return true
	})

	var issues []issue.Issue
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		if undefinedConstantKeywords[strings.ToLower(id.Name)] {
			return true
		}
		if localConsts[id.Name] {
			return true
		}
		if ctx.Symbols != nil && ctx.Symbols.ConstantExists(id.Name) {
			return true
		}
		line, col := 0, 0
		if ctx.Files != nil {
			line, col = ctx.Files.Position(id.Span())
		}
		issues = append(issues, newIssue(r.ID(), r.Level(),
			"Constant "+id.Name+" not found.", ctx.FilePath, line, col))
		return true
	})

	return issues
}
