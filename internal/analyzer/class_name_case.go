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

func init() { Register(classNameCaseRule{}) }

var classNameKeywords = map[string]bool{
	"self": true, "parent": true, "static": true,
	"true": true, "false": true, "null": true,
	"int": true, "float": true, "string": true, "bool": true,
	"array": true, "object": true, "mixed": true, "void": true, "callable": true,
}

// classNameCaseRule flags class/interface/trait/enum references whose
// case doesn't match the declaration, the same mismatch PHP itself
// tolerates but which breaks case-sensitive filesystems and autoloaders.
type classNameCaseRule struct{}

func (classNameCaseRule) ID() string          { return "class.nameCase" }
func (classNameCaseRule) Description() string { return "Detects class name references with incorrect casing" }
func (classNameCaseRule) Level() int          { return 0 }

func (r classNameCaseRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	declared := make(map[string]string) // lowercase -> correct case
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		if cl, ok := n.(*ast.ClassLike); ok {
			declared[strings.ToLower(cl.Name)] = cl.Name
		}
		return true
	})

	var issues []issue.Issue

	report := func(used string, node ast.Node) {
		lower := strings.ToLower(used)
		if classNameKeywords[lower] {
			return
		}
		var correct string
		if c, ok := declared[lower]; ok {
			correct = c
		} else if ctx.Symbols != nil {
			if info, ok := ctx.Symbols.Class(used); ok {
				correct = info.FullName
			}
		}
		if correct == "" || correct == used {
			return
		}
		line, col := 0, 0
		if ctx.Files != nil {
			line, col = ctx.Files.Position(node.Span())
		}
		issues = append(issues, newIssue(r.ID(), r.Level(),
			"Class name "+used+" is referenced with incorrect case, should be "+correct+".",
			ctx.FilePath, line, col))
	}

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		switch v := n.(type) {
		case *ast.New:
			report(v.Class, v)
		case *ast.StaticCall:
			report(v.Class, v)
		case *ast.StaticPropertyFetch:
			report(v.Class, v)
		case *ast.ClassConstFetch:
			report(v.Class, v)
		case *ast.Instanceof:
			report(v.Class, v)
		}
		return true
	})

	return issues
}
