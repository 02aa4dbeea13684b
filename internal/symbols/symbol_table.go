// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/types"
)

// Stats summarizes a SymbolTable's contents, surfaced by the CLI's
// --stats output.
type Stats struct {
	ClassCount    int
	FunctionCount int
	ConstantCount int
}

// Table is the cross-file symbol table: a global, case-insensitive
// registry of classes and functions, a case-sensitive registry of
// constants, and a per-file map of import aliases. It is built during
// the orchestrator's first pass (symbol collection, run in parallel
// across files with per-worker local tables merged in) and consulted
// read-only by every rule during the second pass.
type Table struct {
	classes   map[string]*ClassInfo   // keyed by lowercased full name
	functions map[string]FunctionInfo // keyed by lowercased full name
	constants map[string]types.Type   // keyed by case-sensitive name

	// aliases maps file path -> alias -> FQN; Collect stores the alias
	// keys lowercased.
	aliases map[string]map[string]string
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{
		classes:   make(map[string]*ClassInfo),
		functions: make(map[string]FunctionInfo),
		constants: make(map[string]types.Type),
		aliases:   make(map[string]map[string]string),
	}
}

// NewWithBuiltins returns a symbol table pre-populated with the
// language's built-in classes, functions and constants.
func NewWithBuiltins() *Table {
	t := New()
	t.registerBuiltins()
	return t
}

func (t *Table) RegisterClass(info *ClassInfo) {
	t.classes[strings.ToLower(info.FullName)] = info
}

func (t *Table) RegisterFunction(info FunctionInfo) {
	t.functions[strings.ToLower(info.FullName)] = info
}

func (t *Table) RegisterConstant(name string, ty types.Type) {
	t.constants[name] = ty
}

func (t *Table) Class(name string) (*ClassInfo, bool) {
	c, ok := t.classes[strings.ToLower(name)]
	return c, ok
}

func (t *Table) Function(name string) (FunctionInfo, bool) {
	f, ok := t.functions[strings.ToLower(name)]
	return f, ok
}

func (t *Table) Constant(name string) (types.Type, bool) {
	c, ok := t.constants[name]
	return c, ok
}

func (t *Table) ClassExists(name string) bool {
	_, ok := t.classes[strings.ToLower(name)]
	return ok
}

func (t *Table) FunctionExists(name string) bool {
	_, ok := t.functions[strings.ToLower(name)]
	return ok
}

func (t *Table) ConstantExists(name string) bool {
	_, ok := t.constants[name]
	return ok
}

// ClassHasMethod reports whether class (or, transitively, its ancestors
// — see HasMethodInHierarchy) declares method. This direct variant only
// checks the class itself.
func (t *Table) ClassHasMethod(class, method string) bool {
	c, ok := t.Class(class)
	return ok && c.HasMethod(method)
}

// ClassHasProperty reports whether class directly declares property
// (case-sensitive).
func (t *Table) ClassHasProperty(class, property string) bool {
	c, ok := t.Class(class)
	return ok && c.HasProperty(property)
}

// ClassHasConstant reports whether class directly declares constant.
func (t *Table) ClassHasConstant(class, constant string) bool {
	c, ok := t.Class(class)
	return ok && c.HasConstant(constant)
}

// AllClasses returns every registered class's full name.
func (t *Table) AllClasses() []string {
	out := make([]string, 0, len(t.classes))
	for _, c := range t.classes {
		out = append(out, c.FullName)
	}
	return out
}

// AllFunctions returns every registered function's full name.
func (t *Table) AllFunctions() []string {
	out := make([]string, 0, len(t.functions))
	for _, f := range t.functions {
		out = append(out, f.FullName)
	}
	return out
}

// SetAliases records the import-alias map (short name -> FQN) discovered
// in file's use-declarations.
func (t *Table) SetAliases(file string, aliases map[string]string) {
	t.aliases[file] = aliases
}

// Aliases returns the alias map recorded for file, if any.
func (t *Table) Aliases(file string) (map[string]string, bool) {
	a, ok := t.aliases[file]
	return a, ok
}

// Merge folds other into t: classes/functions/constants/aliases are
// inserted key-by-key, last writer wins on key collision. This is the
// reduction step after parallel per-worker symbol collection.
func (t *Table) Merge(other *Table) {
	for k, v := range other.classes {
		t.classes[k] = v
	}
	for k, v := range other.functions {
		t.functions[k] = v
	}
	for k, v := range other.constants {
		t.constants[k] = v
	}
	for file, a := range other.aliases {
		t.aliases[file] = a
	}
}

// Stats reports the table's current size.
func (t *Table) Stats() Stats {
	return Stats{
		ClassCount:    len(t.classes),
		FunctionCount: len(t.functions),
		ConstantCount: len(t.constants),
	}
}

// ResolveClassName resolves a possibly-short class name referenced in
// file (whose alias map was populated by SetAliases) within the given
// enclosing namespace (empty if none). A leading "\" marks name as
// already fully qualified.
func (t *Table) ResolveClassName(name, file, namespace string) string {
	if strings.HasPrefix(name, `\`) {
		return name[1:]
	}

	if aliases, ok := t.Aliases(file); ok {
		firstPart := name
		if idx := strings.IndexByte(name, '\\'); idx >= 0 {
			firstPart = name[:idx]
		}
		firstPartLower := strings.ToLower(firstPart)
		for aliasKey, fqn := range aliases {
			if strings.ToLower(aliasKey) == firstPartLower {
				if strings.Contains(name, `\`) {
					rest := name[len(firstPart):]
					return fqn + rest
				}
				return fqn
			}
		}
	}

	if namespace != "" {
		return namespace + `\` + name
	}
	return name
}
