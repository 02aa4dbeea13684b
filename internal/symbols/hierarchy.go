// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/borisyanez/rustor-sub001/internal/types"
)

// maxHierarchyDepth bounds inheritance-chain walks so a malformed or
// maliciously cyclic `extends`/`implements` graph cannot spin the
// analyzer forever; ~64 comfortably exceeds any real class hierarchy.
const maxHierarchyDepth = 64

// Ancestors returns the ordered chain of class/interface names class
// transitively extends or implements (parent first, then each
// interface's own ancestors), stopping at maxHierarchyDepth and never
// revisiting a name already seen — this is the cycle guard a malformed
// `class A extends B` / `class B extends A` pair would otherwise trip.
func (t *Table) Ancestors(class string) []string {
	visited := set.New[string](8)
	var order []string
	t.walkAncestors(class, visited, &order, 0)
	return order
}

func (t *Table) walkAncestors(class string, visited *set.Set[string], order *[]string, depth int) {
	if depth >= maxHierarchyDepth {
		return
	}
	key := strings.ToLower(class)
	if visited.Contains(key) {
		return
	}
	visited.Insert(key)

	info, ok := t.Class(class)
	if !ok {
		return
	}
	if info.Parent != "" {
		*order = append(*order, info.Parent)
		t.walkAncestors(info.Parent, visited, order, depth+1)
	}
	for _, iface := range info.Interfaces {
		*order = append(*order, iface)
		t.walkAncestors(iface, visited, order, depth+1)
	}
	for _, tr := range info.Traits {
		*order = append(*order, tr)
		t.walkAncestors(tr, visited, order, depth+1)
	}
}

// IsSubclassOf reports whether sub is sub itself or transitively extends
// or implements super, case-insensitively. It implements
// types.ClassHierarchyResolver so Object-vs-Object subtyping (C2) can
// consult the real class graph instead of falling back to Maybe.
// Returns Maybe when sub is not a known class (we genuinely don't know),
// Yes/No otherwise.
func (t *Table) IsSubclassOf(sub, super string) types.Trinary {
	if strings.EqualFold(sub, super) {
		return types.Yes
	}
	if _, ok := t.Class(sub); !ok {
		return types.Maybe
	}
	superLower := strings.ToLower(super)
	for _, ancestor := range t.Ancestors(sub) {
		if strings.ToLower(ancestor) == superLower {
			return types.Yes
		}
	}
	return types.No
}

// HasMethodInHierarchy reports whether class or any ancestor declares
// method.
func (t *Table) HasMethodInHierarchy(class, method string) bool {
	if t.ClassHasMethod(class, method) {
		return true
	}
	for _, ancestor := range t.Ancestors(class) {
		if t.ClassHasMethod(ancestor, method) {
			return true
		}
	}
	return false
}

// HasPropertyInHierarchy reports whether class or any ancestor declares
// property.
func (t *Table) HasPropertyInHierarchy(class, property string) bool {
	if t.ClassHasProperty(class, property) {
		return true
	}
	for _, ancestor := range t.Ancestors(class) {
		if t.ClassHasProperty(ancestor, property) {
			return true
		}
	}
	return false
}

// HasConstantInHierarchy reports whether class or any ancestor declares
// constant.
func (t *Table) HasConstantInHierarchy(class, constant string) bool {
	if t.ClassHasConstant(class, constant) {
		return true
	}
	for _, ancestor := range t.Ancestors(class) {
		if t.ClassHasConstant(ancestor, constant) {
			return true
		}
	}
	return false
}
