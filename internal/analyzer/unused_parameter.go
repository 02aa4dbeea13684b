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

func init() { Register(unusedParameterRule{}) }

// unusedParameterRule flags a constructor parameter that is never
// referenced anywhere in the constructor body. Promoted properties are
// exempt since declaring them already uses the parameter.
type unusedParameterRule struct{}

func (unusedParameterRule) ID() string          { return "constructor.unusedParameter" }
func (unusedParameterRule) Description() string { return "Detects unused constructor parameters" }
func (unusedParameterRule) Level() int          { return 1 }

func (r unusedParameterRule) Check(program *ast.Program, ctx *visitor.CheckContext) []issue.Issue {
	var issues []issue.Issue

	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		cl, ok := n.(*ast.ClassLike)
		if !ok {
			return true
		}
		for _, member := range cl.Members {
			method, ok := member.(*ast.MethodDecl)
			if !ok || !strings.EqualFold(method.Name, "__construct") || method.Body == nil {
				continue
			}

			var candidates []ast.Param
			for _, p := range method.Params {
				if !p.Promoted {
					candidates = append(candidates, p)
				}
			}
			if len(candidates) == 0 {
				continue
			}

			used := map[string]bool{}
			visitor.Walk(method.Body, ctx, func(inner ast.Node, _ *visitor.CheckContext) bool {
				switch v := inner.(type) {
				case *ast.Variable:
					used[v.Name] = true
				case *ast.Closure:
					for _, u := range v.Uses {
						used[u.Name] = true
					}
				}
				return true
			})

			for _, p := range candidates {
				if used[p.Name] {
					continue
				}
				line, col := 0, 0
				if ctx.Files != nil {
					line, col = ctx.Files.Position(p.Sp)
				}
				issues = append(issues, newIssue(r.ID(), r.Level(),
					"Constructor of class "+cl.Name+" has an unused parameter $"+p.Name+".",
					ctx.FilePath, line, col))
			}
		}
		return true
	})

	return issues
}
