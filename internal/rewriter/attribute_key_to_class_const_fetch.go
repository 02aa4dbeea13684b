// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewriter

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

func init() { Register(attributeKeyToClassConstFetchRule{}) }

// AttributeKeyMapping rewrites one named argument of a matched
// attribute from a string literal to a class-constant fetch, e.g.
// #[Column(type: "string")] -> #[Column(type: Types::STRING)].
type AttributeKeyMapping struct {
	AttributeClass string // attribute name, short or fully qualified
	ArgumentKey    string
	TargetClass    string
	ValueToConst   map[string]string
}

// attributeKeyToClassConstFetchRule replaces a configured attribute
// argument's string literal values with class constant fetches on the
// members (currently properties) a parsed program exposes attributes
// for.
type attributeKeyToClassConstFetchRule struct{}

func (attributeKeyToClassConstFetchRule) Name() string       { return "attribute-key-to-class-const-fetch" }
func (attributeKeyToClassConstFetchRule) Category() Category { return Modernization }
func (attributeKeyToClassConstFetchRule) MinimumLanguageVersion() *version.Version {
	return version.Must(version.NewVersion("8.0"))
}
func (attributeKeyToClassConstFetchRule) ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Name: "mappings", Description: "List of attribute/argument-key -> target-class/constant renames", Default: []AttributeKeyMapping{}},
	}
}

var attributeCallPattern = regexp.MustCompile(`^([A-Za-z_\\][A-Za-z0-9_\\]*)\s*\((.*)\)$`)
var namedStringArgPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*:\s*(['"])((?:[^'"\\]|\\.)*)(['"])`)

func (r attributeKeyToClassConstFetchRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	mappings, _ := ctx.Config["mappings"].([]AttributeKeyMapping)
	if len(mappings) == 0 {
		return nil
	}
	var edits []edit.Edit
	visitor.Walk(program, ctx, func(n ast.Node, c *visitor.CheckContext) bool {
		prop, ok := n.(*ast.PropertyDecl)
		if !ok {
			return true
		}
		declText := ctx.Files.Text(prop.Span())
		for _, raw := range prop.Attributes {
			m := attributeCallPattern.FindStringSubmatch(raw)
			if m == nil {
				continue
			}
			attrName, argsText := m[1], m[2]
			shortName := attrName
			if idx := strings.LastIndex(attrName, `\`); idx >= 0 {
				shortName = attrName[idx+1:]
			}
			for _, mapping := range mappings {
				if !strings.EqualFold(shortName, mapping.AttributeClass) && !strings.EqualFold(attrName, mapping.AttributeClass) {
					continue
				}
				for _, am := range namedStringArgPattern.FindAllStringSubmatch(argsText, -1) {
					key, quote, value := am[1], am[2], am[3]
					if key != mapping.ArgumentKey {
						continue
					}
					constName, ok := mapping.ValueToConst[value]
					if !ok {
						continue
					}
					literal := quote + value + quote
					idx := strings.Index(declText, literal)
					if idx < 0 {
						continue
					}
					start := prop.Span().Start + idx
					edits = append(edits, edit.Edit{
						Span:        span.Span{File: prop.Span().File, Start: start, End: start + len(literal)},
						Replacement: mapping.TargetClass + "::" + constName,
						Message:     "Replace \"" + value + "\" with " + mapping.TargetClass + "::" + constName,
					})
				}
			}
		}
		return true
	})
	return edits
}
