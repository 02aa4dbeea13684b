// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbols implements the cross-file symbol table: declarations
// gathered during the first analysis pass, looked up by every rule
// during the second pass. Class and function names are matched
// case-insensitively (the language under analysis, like PHP, treats
// declaration names that way); constants are case-sensitive.
package symbols

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/types"
)

// ClassKind is an alias of ast.ClassKind, so built-in classes (which
// have no AST node) and collected classes share the same kind values.
type ClassKind = ast.ClassKind

const (
	KindClass     = ast.KindClass
	KindInterface = ast.KindInterface
	KindTrait     = ast.KindTrait
	KindEnum      = ast.KindEnum
)

// MethodInfo is one method recorded against a ClassInfo.
type MethodInfo struct {
	Name       string
	Visibility string
	Static     bool
	Abstract   bool
	Params     []ast.Param
	ReturnType types.Type // nil if unknown
}

// PropertyInfo is one property recorded against a ClassInfo.
type PropertyInfo struct {
	Name       string
	Visibility string
	Static     bool
	Readonly   bool
	Type       types.Type // nil if unknown
	HasDefault bool
}

// ConstantInfo is one class constant.
type ConstantInfo struct {
	Name  string
	Type  types.Type
}

// ClassInfo is everything the symbol table knows about one class,
// interface, trait or enum declaration.
type ClassInfo struct {
	FullName   string
	Kind       ClassKind
	Parent     string // empty if none
	Interfaces []string
	Traits     []string
	File       string

	methods   map[string]MethodInfo   // keyed by lowercased name
	properties map[string]PropertyInfo // keyed by case-sensitive name
	constants  map[string]ConstantInfo // keyed by case-sensitive name
}

// NewClassInfo returns an empty ClassInfo for the given fully qualified
// name, defaulting to Kind: class.
func NewClassInfo(fullName string) *ClassInfo {
	return &ClassInfo{
		FullName:   fullName,
		Kind:       KindClass,
		methods:    make(map[string]MethodInfo),
		properties: make(map[string]PropertyInfo),
		constants:  make(map[string]ConstantInfo),
	}
}

func (c *ClassInfo) AddMethod(m MethodInfo) {
	if c.methods == nil {
		c.methods = make(map[string]MethodInfo)
	}
	c.methods[strings.ToLower(m.Name)] = m
}

func (c *ClassInfo) AddProperty(p PropertyInfo) {
	if c.properties == nil {
		c.properties = make(map[string]PropertyInfo)
	}
	c.properties[p.Name] = p
}

func (c *ClassInfo) AddConstant(k ConstantInfo) {
	if c.constants == nil {
		c.constants = make(map[string]ConstantInfo)
	}
	c.constants[k.Name] = k
}

// HasMethod reports whether this class (ignoring inheritance) declares
// method, matched case-insensitively.
func (c *ClassInfo) HasMethod(name string) bool {
	_, ok := c.methods[strings.ToLower(name)]
	return ok
}

// Method returns the method declared directly on this class, matched
// case-insensitively.
func (c *ClassInfo) Method(name string) (MethodInfo, bool) {
	m, ok := c.methods[strings.ToLower(name)]
	return m, ok
}

// HasProperty reports whether this class (ignoring inheritance) declares
// property, matched case-sensitively (PHP property names are
// case-sensitive, unlike method and class names).
func (c *ClassInfo) HasProperty(name string) bool {
	_, ok := c.properties[name]
	return ok
}

func (c *ClassInfo) Property(name string) (PropertyInfo, bool) {
	p, ok := c.properties[name]
	return p, ok
}

// HasConstant reports whether this class declares constant, matched
// case-sensitively.
func (c *ClassInfo) HasConstant(name string) bool {
	_, ok := c.constants[name]
	return ok
}

func (c *ClassInfo) Constant(name string) (ConstantInfo, bool) {
	k, ok := c.constants[name]
	return k, ok
}

// Methods returns all methods declared directly on this class.
func (c *ClassInfo) Methods() map[string]MethodInfo { return c.methods }

// Properties returns all properties declared directly on this class.
func (c *ClassInfo) Properties() map[string]PropertyInfo { return c.properties }
