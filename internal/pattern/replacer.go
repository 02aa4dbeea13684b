// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

var varPattern = regexp.MustCompile(`\$\{?([a-zA-Z_][a-zA-Z0-9_]*)\}?`)

// substituteTemplate replaces every $name or ${name} reference in
// template with the matching binding's text, leaving the reference
// untouched when no such binding exists — mirroring
// yaml_rules::replacer::Replacer::substitute_template.
func substituteTemplate(template string, b *Bindings) string {
	return varPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := varPattern.FindStringSubmatch(m)[1]
		if v, ok := b.GetText(name); ok {
			return v
		}
		return m
	})
}

// Apply renders a replacement against a successful match's bindings. It
// returns ("", false) for the Remove variant, signalling deletion rather
// than substitution.
func Apply(r Replacement, b *Bindings) (string, bool) {
	switch r.kind {
	case replaceTemplate:
		return substituteTemplate(r.template, b), true
	case replaceNode:
		s, ok := buildNode(r.node, b)
		return s, ok
	case replaceConditional:
		if evaluateCondition(r.conditional.Condition, b) {
			return Apply(r.conditional.ThenReplace, b)
		}
		return Apply(r.conditional.ElseReplace, b)
	case replaceMultiple:
		parts := make([]string, len(r.multiple))
		for i, t := range r.multiple {
			parts[i] = substituteTemplate(t, b)
		}
		return strings.Join(parts, "\n"), true
	case replaceRemove:
		return "", false
	default:
		return "", false
	}
}

// buildNode renders a structured replacement node, mirroring
// yaml_rules::replacer::Replacer::build_node's per-kind dispatch.
func buildNode(n *ReplacementNode, b *Bindings) (string, bool) {
	sub := func(s string) string { return substituteTemplate(s, b) }
	args := func() []string {
		out := make([]string, len(n.Args))
		for i, a := range n.Args {
			out[i] = sub(a)
		}
		return out
	}
	switch n.Node {
	case "FuncCall":
		if n.Name == "" {
			return "", false
		}
		return sub(n.Name) + "(" + strings.Join(args(), ", ") + ")", true
	case "MethodCall":
		if n.Expr == "" || n.Name == "" {
			return "", false
		}
		return sub(n.Expr) + "->" + sub(n.Name) + "(" + strings.Join(args(), ", ") + ")", true
	case "StaticCall":
		if n.Name == "" || n.Expr == "" {
			return "", false
		}
		return sub(n.Name) + "::" + sub(n.Expr) + "(" + strings.Join(args(), ", ") + ")", true
	case "BinaryOp":
		if n.Left == "" || n.Right == "" || n.Operator == "" {
			return "", false
		}
		return sub(n.Left) + " " + n.Operator + " " + sub(n.Right), true
	case "Null":
		return "null", true
	case "True", "LiteralTrue":
		return "true", true
	case "False", "LiteralFalse":
		return "false", true
	case "BooleanNot":
		if n.Expr == "" {
			return "", false
		}
		return "!" + sub(n.Expr), true
	case "NullCoalesce":
		if n.Left == "" || n.Right == "" {
			return "", false
		}
		return sub(n.Left) + " ?? " + sub(n.Right), true
	case "Ternary":
		if n.Expr == "" || n.Left == "" || n.Right == "" {
			return "", false
		}
		return sub(n.Expr) + " ? " + sub(n.Left) + " : " + sub(n.Right), true
	case "Elvis":
		if n.Left == "" || n.Right == "" {
			return "", false
		}
		return sub(n.Left) + " ?: " + sub(n.Right), true
	case "Cast":
		if n.Name == "" || n.Expr == "" {
			return "", false
		}
		return "(" + sub(n.Name) + ")" + sub(n.Expr), true
	case "Array":
		return "[" + strings.Join(args(), ", ") + "]", true
	case "ArrayPush":
		if n.Left == "" || n.Right == "" {
			return "", false
		}
		return sub(n.Left) + "[] = " + sub(n.Right), true
	case "Instanceof":
		if n.Left == "" || n.Right == "" {
			return "", false
		}
		return sub(n.Left) + " instanceof " + sub(n.Right), true
	case "ClassConstFetch":
		if n.Name == "" {
			return "", false
		}
		return sub(n.Name) + "::class", true
	default:
		if n.Expr != "" {
			return sub(n.Expr), true
		}
		return "", false
	}
}

// evaluateCondition evaluates the small predicate language conditional
// replacements use: ".exists", ".value <op> N", and ".value: matches(/re/)".
// Unrecognized conditions default to true rather than erroring, matching
// the original's permissive fallback — a malformed condition should not
// silently disable an otherwise-working rewrite.
func evaluateCondition(condition string, b *Bindings) bool {
	condition = strings.TrimSpace(condition)

	if rest, ok := strings.CutSuffix(condition, ".exists"); ok {
		name := strings.TrimPrefix(rest, "$")
		return b.Contains(name)
	}

	if strings.Contains(condition, ".value") {
		if m := valueComparePattern.FindStringSubmatch(condition); m != nil {
			name, op, expected := m[1], m[2], strings.TrimSpace(m[3])
			value, ok := b.GetText(name)
			if !ok {
				return false
			}
			if nv, err1 := strconv.ParseInt(value, 10, 64); err1 == nil {
				if ne, err2 := strconv.ParseInt(expected, 10, 64); err2 == nil {
					return compareInt(nv, op, ne)
				}
			}
			switch op {
			case "==":
				return value == expected
			case "!=":
				return value != expected
			}
			return false
		}
	}

	if strings.Contains(condition, ".type") {
		// Type-aware conditions need the symbol table's inferred types,
		// which a bare Bindings value doesn't carry; default to true so
		// an unsupported condition doesn't block the rewrite outright.
		return true
	}

	if m := matchesPattern.FindStringSubmatch(condition); m != nil {
		name, pat := m[1], m[2]
		value, ok := b.GetText(name)
		if !ok {
			return false
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return false
		}
		return re.MatchString(value)
	}

	return true
}

var (
	valueComparePattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)\.value\s*(==|!=|>=|<=|>|<)\s*(.+)`)
	matchesPattern      = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)\.value:\s*matches\(/(.+)/\)`)
)

func compareInt(a int64, op string, b int64) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case ">":
		return a > b
	case "<":
		return a < b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	default:
		return false
	}
}
