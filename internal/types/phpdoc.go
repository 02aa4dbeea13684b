// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"
	"strings"
)

// PropertyAccess is the access mode declared by @property/@property-read/
// @property-write annotations.
type PropertyAccess int

const (
	ReadWrite PropertyAccess = iota
	ReadOnly
	WriteOnly
)

// NamedType pairs a parameter or property name with its parsed type.
type NamedType struct {
	Name string
	Type Type
}

// Property is a @property-family annotation entry.
type Property struct {
	Name   string
	Type   Type
	Access PropertyAccess
}

// MethodSignature is one @method annotation.
type MethodSignature struct {
	Name       string
	ReturnType Type
	Params     []NamedType
	Static     bool
}

// Doc is the parsed contents of one PHPDoc comment block.
type Doc struct {
	Params     []NamedType
	ReturnType Type // nil if absent
	VarType    Type // nil if absent
	Properties []Property
	Methods    []MethodSignature
	Templates  []string
	Throws     []Type
}

// ParseDoc parses a full PHPDoc comment block (including its /** */ and *
// line decoration), extracting @param, @return, @var, @throws, @template
// and @property[-read|-write] annotations. Unrecognized or malformed
// lines are skipped rather than treated as errors: PHPDoc in the wild is
// frequently inconsistent, and a partial read is far more useful than a
// rule that refuses to run.
func ParseDoc(comment string) Doc {
	var doc Doc
	for _, rawLine := range strings.Split(comment, "\n") {
		line := strings.Trim(rawLine, " \t")
		line = strings.TrimLeft(line, "/* ")
		line = strings.TrimRight(line, "/* ")

		switch {
		case strings.HasPrefix(line, "@param"):
			rest := strings.TrimSpace(line[len("@param"):])
			if typeStr, name, ok := parseParamLine(rest); ok {
				if ty := ParseTypeString(typeStr); ty != nil {
					doc.Params = append(doc.Params, NamedType{Name: name, Type: ty})
				}
			}
		case strings.HasPrefix(line, "@return"):
			rest := strings.TrimSpace(line[len("@return"):])
			if ty := ParseTypeString(extractTypeFromAnnotation(rest)); ty != nil {
				doc.ReturnType = ty
			}
		case strings.HasPrefix(line, "@var"):
			rest := strings.TrimSpace(line[len("@var"):])
			if ty := ParseTypeString(extractTypeFromAnnotation(rest)); ty != nil {
				doc.VarType = ty
			}
		case strings.HasPrefix(line, "@throws"):
			rest := strings.TrimSpace(line[len("@throws"):])
			if ty := ParseTypeString(extractTypeFromAnnotation(rest)); ty != nil {
				doc.Throws = append(doc.Throws, ty)
			}
		case strings.HasPrefix(line, "@template"):
			rest := strings.TrimSpace(line[len("@template"):])
			fields := strings.Fields(rest)
			if len(fields) > 0 {
				doc.Templates = append(doc.Templates, fields[0])
			}
		case strings.HasPrefix(line, "@property-read"):
			rest := strings.TrimSpace(line[len("@property-read"):])
			if typeStr, name, ok := parseParamLine(rest); ok {
				if ty := ParseTypeString(typeStr); ty != nil {
					doc.Properties = append(doc.Properties, Property{Name: name, Type: ty, Access: ReadOnly})
				}
			}
		case strings.HasPrefix(line, "@property-write"):
			rest := strings.TrimSpace(line[len("@property-write"):])
			if typeStr, name, ok := parseParamLine(rest); ok {
				if ty := ParseTypeString(typeStr); ty != nil {
					doc.Properties = append(doc.Properties, Property{Name: name, Type: ty, Access: WriteOnly})
				}
			}
		case strings.HasPrefix(line, "@property"):
			rest := strings.TrimSpace(line[len("@property"):])
			if typeStr, name, ok := parseParamLine(rest); ok {
				if ty := ParseTypeString(typeStr); ty != nil {
					doc.Properties = append(doc.Properties, Property{Name: name, Type: ty, Access: ReadWrite})
				}
			}
		}
	}
	return doc
}

// parseParamLine parses "Type $name" or the rarer "$name Type" form,
// tolerating generic types with embedded spaces like "array<string, int>".
func parseParamLine(line string) (typeStr, name string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}

	dollar := strings.IndexByte(line, '$')
	if dollar < 0 {
		return "", "", false
	}

	rest := line[dollar:]
	varEnd := len(line)
	for i, r := range rest {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			varEnd = dollar + i
			break
		}
	}
	name = line[dollar+1 : varEnd]

	if dollar > 0 {
		typeStr = extractTypeFromAnnotation(line[:dollar])
	} else {
		afterVar := strings.TrimSpace(line[varEnd:])
		extracted := extractTypeFromAnnotation(afterVar)
		if extracted == "" || isDescriptionText(extracted) {
			return "", "", false
		}
		typeStr = extracted
	}

	if name == "" || typeStr == "" {
		return "", "", false
	}
	return typeStr, name, true
}

var descriptionWords = map[string]bool{
	"a": true, "an": true, "the": true, "this": true, "that": true, "some": true,
	"any": true, "all": true, "of": true, "for": true, "to": true, "from": true,
	"with": true, "by": true, "in": true, "on": true, "at": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"may": true, "might": true, "must": true, "shall": true, "if": true, "when": true,
	"where": true, "why": true, "how": true, "what": true, "which": true, "who": true,
	"associated": true, "optional": true, "required": true, "default": true,
	"used": true, "using": true, "contains": true, "representing": true,
	"description": true, "value": true, "values": true, "data": true, "info": true,
	"information": true,
}

// isDescriptionText reports whether text reads like prose rather than a
// PHP type name.
func isDescriptionText(text string) bool {
	return descriptionWords[strings.ToLower(text)]
}

// extractTypeFromAnnotation returns the leading type token of an
// annotation's remainder, stopping at the first whitespace that occurs
// outside of <>, {} or () so that generics like "array<string, mixed>
// the description" are not truncated early.
func extractTypeFromAnnotation(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	depth := 0
	end := len(line)
	for i, ch := range line {
		switch ch {
		case '<', '{', '(':
			depth++
		case '>', '}', ')':
			if depth > 0 {
				depth--
			}
		case ' ', '\t':
			if depth == 0 {
				end = i
			}
		}
		if end != len(line) {
			break
		}
	}
	return line[:end]
}

// splitTypeAtDelimiter splits s on delimiter at bracket depth 0 only, so
// "array<int, array<string, mixed>>" is never split on its inner comma.
func splitTypeAtDelimiter(s string, delimiter rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, ch := range s {
		switch ch {
		case '<', '{', '(':
			depth++
		case '>', '}', ')':
			if depth > 0 {
				depth--
			}
		case delimiter:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(delimiter))
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// ParseTypeString parses a single PHPDoc type expression (not a full
// annotation line) into a Type. It returns nil when s does not resemble
// any recognized type, mirroring the original engine's fallback of
// treating unknown bare words as "no usable type" rather than guessing.
func ParseTypeString(s string) Type {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if inner, ok := strings.CutPrefix(s, "?"); ok {
		if t := ParseTypeString(inner); t != nil {
			return NullableOf(t)
		}
		return nil
	}

	if strings.ContainsRune(s, '|') {
		if parts := splitTypeAtDelimiter(s, '|'); len(parts) > 1 {
			var parsed []Type
			for _, p := range parts {
				if t := ParseTypeString(strings.TrimSpace(p)); t != nil {
					parsed = append(parsed, t)
				}
			}
			switch len(parsed) {
			case 0:
				return nil
			case 1:
				return parsed[0]
			default:
				result := parsed[0]
				for _, t := range parsed[1:] {
					result = UnionWith(result, t)
				}
				return result
			}
		}
	}

	if strings.ContainsRune(s, '&') {
		if parts := splitTypeAtDelimiter(s, '&'); len(parts) > 1 {
			var parsed []Type
			for _, p := range parts {
				if t := ParseTypeString(strings.TrimSpace(p)); t != nil {
					parsed = append(parsed, t)
				}
			}
			switch len(parsed) {
			case 0:
				return nil
			case 1:
				return parsed[0]
			default:
				return Intersection{Members: parsed}
			}
		}
	}

	if inner, ok := strings.CutSuffix(s, "[]"); ok {
		innerType := ParseTypeString(inner)
		if innerType == nil {
			innerType = Mixed
		}
		return List{Value: innerType}
	}

	if strings.HasPrefix(s, "array{") || strings.HasPrefix(s, "non-empty-array{") {
		return Array{Key: String, Value: Mixed}
	}

	if start := strings.IndexByte(s, '<'); start >= 0 {
		if end := strings.LastIndexByte(s, '>'); end >= 0 && end > start {
			base := s[:start]
			params := s[start+1 : end]

			switch strings.ToLower(base) {
			case "array":
				key, value := parseGenericParams(params)
				return Array{Key: key, Value: value}
			case "list":
				value := ParseTypeString(strings.TrimSpace(params))
				if value == nil {
					value = Mixed
				}
				return List{Value: value}
			case "non-empty-array":
				key, value := parseGenericParams(params)
				return NonEmptyArray{Key: key, Value: value}
			case "iterable":
				key, value := parseGenericParams(params)
				return Iterable{Key: key, Value: value}
			case "class-string":
				class := strings.TrimSpace(params)
				return ClassString{Class: class}
			case "int":
				parts := strings.Split(params, ",")
				if len(parts) == 2 {
					min := strings.TrimSpace(parts[0])
					max := strings.TrimSpace(parts[1])
					r := IntRange{}
					if min != "min" {
						if v, err := strconv.ParseInt(min, 10, 64); err == nil {
							r.Min = &v
						}
					}
					if max != "max" {
						if v, err := strconv.ParseInt(max, 10, 64); err == nil {
							r.Max = &v
						}
					}
					return r
				}
			default:
				return Object{Class: base}
			}
		}
	}

	switch strings.ToLower(s) {
	case "mixed":
		return Mixed
	case "void":
		return Void
	case "never", "never-return", "never-returns", "no-return":
		return Never
	case "null":
		return Null
	case "bool", "boolean":
		return Bool
	case "true":
		return ConstantBool{Value: true}
	case "false":
		return ConstantBool{Value: false}
	case "int", "integer":
		return Int
	case "float", "double":
		return Float
	case "string":
		return String
	case "non-empty-string":
		return NonEmptyString
	case "numeric-string":
		return NumericString
	case "class-string":
		return ClassString{}
	case "array":
		return Array{Key: Mixed, Value: Mixed}
	case "object":
		return Object{}
	case "callable":
		return Callable
	case "closure":
		return Closure
	case "resource":
		return Resource
	case "iterable":
		return Iterable{Key: Mixed, Value: Mixed}
	case "self":
		return SelfType
	case "static":
		return Static
	case "parent":
		return Parent
	case "$this", "this":
		return Static
	case "scalar":
		return Union{Members: []Type{Bool, Int, Float, String}}
	case "numeric":
		return Union{Members: []Type{Int, Float}}
	case "positive-int":
		one := int64(1)
		return IntRange{Min: &one}
	case "negative-int":
		negOne := int64(-1)
		return IntRange{Max: &negOne}
	case "non-negative-int":
		zero := int64(0)
		return IntRange{Min: &zero}
	case "non-positive-int":
		zero := int64(0)
		return IntRange{Max: &zero}
	default:
		r := []rune(s)
		if (len(r) > 0 && isUpper(r[0])) || strings.ContainsRune(s, '\\') {
			return Object{Class: s}
		}
		return nil
	}
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// parseGenericParams parses the comma-separated parameter list of a
// generic like "array<K, V>" or a single-argument "array<V>" (which is
// treated as list-like, keyed by int).
func parseGenericParams(params string) (key, value Type) {
	parts := splitTypeAtDelimiter(params, ',')
	if len(parts) >= 2 {
		key = ParseTypeString(strings.TrimSpace(parts[0]))
		if key == nil {
			key = Mixed
		}
		valueStr := strings.Join(parts[1:], ",")
		value = ParseTypeString(strings.TrimSpace(valueStr))
		if value == nil {
			value = Mixed
		}
		return key, value
	}
	value = ParseTypeString(strings.TrimSpace(params))
	if value == nil {
		value = Mixed
	}
	return Int, value
}
