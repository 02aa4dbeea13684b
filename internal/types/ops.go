// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "strings"

// AcceptsNull reports whether a value of type t may be null.
func AcceptsNull(t Type) bool {
	switch v := t.(type) {
	case Nullable:
		return true
	case Union:
		for _, m := range v.Members {
			if AcceptsNull(m) {
				return true
			}
		}
		return false
	default:
		return t.Kind() == KindNull || t.Kind() == KindMixed
	}
}

// IsScalar reports whether t is one of the scalar or scalar-refinement
// types; used by Accepts' non-strict "bool accepts any scalar" coercion.
func IsScalar(t Type) bool {
	switch t.Kind() {
	case KindInt, KindFloat, KindString, KindBool,
		KindConstantInt, KindConstantFloat, KindConstantString, KindConstantBool,
		KindIntRange, KindNonEmptyString, KindNumericString, KindClassString:
		return true
	default:
		return false
	}
}

// ClassHierarchyResolver answers whether one class name is a (reflexive,
// transitive) subclass of another; internal/symbols.Table implements
// it. It lets Object-vs-Object subtyping be hierarchy-aware
// without this package depending on internal/symbols.
type ClassHierarchyResolver interface {
	IsSubclassOf(sub, super string) Trinary
}

// IsSubtypeOf reports whether a is always (Yes), maybe (Maybe), or never
// (No) a subtype of b, without consulting a class hierarchy: two
// distinctly-named object types compare as Maybe. Use
// IsSubtypeOfWithResolver when a symbol table is available to resolve
// Object{C1} vs Object{C2} precisely.
func IsSubtypeOf(a, b Type) Trinary {
	return isSubtypeOf(a, b, nil)
}

// IsSubtypeOfWithResolver is IsSubtypeOf but resolves Object-vs-Object
// comparisons against resolver's class hierarchy instead of falling back
// to Maybe whenever the two class names differ.
func IsSubtypeOfWithResolver(a, b Type, resolver ClassHierarchyResolver) Trinary {
	return isSubtypeOf(a, b, resolver)
}

func isSubtypeOf(a, b Type, resolver ClassHierarchyResolver) Trinary {
	if b.Kind() == KindMixed {
		return Yes
	}
	if a.Kind() == KindNever {
		return Yes
	}
	if a.Kind() == KindMixed {
		return Maybe
	}
	if Equal(a, b) {
		return Yes
	}

	switch av := a.(type) {
	case Union:
		return AndAll(mapSubtype(av.Members, b, resolver))
	case Intersection:
		return OrAll(mapSubtype(av.Members, b, resolver))
	}
	switch bv := b.(type) {
	case Union:
		return OrAll(mapSubtypeRev(a, bv.Members, resolver))
	case Intersection:
		return AndAll(mapSubtypeRev(a, bv.Members, resolver))
	}

	if a.Kind() == KindNull {
		if _, ok := b.(Nullable); ok {
			return Yes
		}
	}
	if an, ok := a.(Nullable); ok {
		if bn, ok := b.(Nullable); ok {
			return isSubtypeOf(an.Inner, bn.Inner, resolver)
		}
	}
	if bn, ok := b.(Nullable); ok {
		if !AcceptsNull(a) {
			return isSubtypeOf(a, bn.Inner, resolver)
		}
	}

	switch a.Kind() {
	case KindConstantBool:
		if b.Kind() == KindBool {
			return Yes
		}
	case KindConstantInt, KindIntRange:
		if b.Kind() == KindInt || b.Kind() == KindFloat {
			return Yes
		}
	case KindConstantFloat:
		if b.Kind() == KindFloat {
			return Yes
		}
	case KindConstantString, KindNonEmptyString, KindNumericString, KindClassString:
		if b.Kind() == KindString {
			return Yes
		}
	case KindInt:
		if b.Kind() == KindFloat {
			return Yes
		}
	}

	switch av := a.(type) {
	case NonEmptyArray:
		if bv, ok := b.(Array); ok {
			return isSubtypeOf(av.Key, bv.Key, resolver).And(isSubtypeOf(av.Value, bv.Value, resolver))
		}
	case Array:
		if bv, ok := b.(Array); ok {
			return isSubtypeOf(av.Key, bv.Key, resolver).And(isSubtypeOf(av.Value, bv.Value, resolver))
		}
	case List:
		if bv, ok := b.(Array); ok {
			return isSubtypeOf(Int, bv.Key, resolver).And(isSubtypeOf(av.Value, bv.Value, resolver))
		}
	}
	switch a.(type) {
	case Array, List, NonEmptyArray:
		if b.Kind() == KindIterable {
			return Yes
		}
	}

	if av, ok := a.(Object); ok {
		if bv, ok := b.(Object); ok {
			if bv.Class == "" {
				return Yes
			}
			if av.Class == "" {
				return Maybe
			}
			if strings.EqualFold(av.Class, bv.Class) {
				return Yes
			}
			if resolver != nil {
				return resolver.IsSubclassOf(av.Class, bv.Class)
			}
			return Maybe
		}
	}

	if a.Kind() == KindClosure && b.Kind() == KindCallable {
		return Yes
	}

	switch a.Kind() {
	case KindSelfType, KindStatic, KindParent:
		return Maybe
	}
	switch b.Kind() {
	case KindSelfType, KindStatic, KindParent:
		return Maybe
	}

	return No
}

func mapSubtype(members []Type, b Type, resolver ClassHierarchyResolver) []Trinary {
	out := make([]Trinary, len(members))
	for i, m := range members {
		out[i] = isSubtypeOf(m, b, resolver)
	}
	return out
}

func mapSubtypeRev(a Type, members []Type, resolver ClassHierarchyResolver) []Trinary {
	out := make([]Trinary, len(members))
	for i, m := range members {
		out[i] = isSubtypeOf(a, m, resolver)
	}
	return out
}

// Accepts reports whether dst (e.g. a parameter's declared type) accepts
// a value of type src. In non-strict mode it permits the scalar
// coercions PHP performs outside strict_types: int<->float widening,
// numeric types into string, and any scalar into bool. In strict mode
// (or once no coercion applies) it delegates to src ≤ dst.
func Accepts(dst, src Type, strict bool) Trinary {
	if dst.Kind() == KindMixed {
		return Yes
	}
	if !strict {
		switch dst.Kind() {
		case KindString:
			switch src.Kind() {
			case KindInt, KindFloat, KindConstantInt, KindConstantFloat:
				return Yes
			}
		case KindInt:
			switch src.Kind() {
			case KindFloat, KindConstantFloat:
				return Yes
			}
		case KindFloat:
			switch src.Kind() {
			case KindInt, KindConstantInt:
				return Yes
			}
		case KindBool:
			if IsScalar(src) {
				return Yes
			}
		}
	}
	return IsSubtypeOf(src, dst)
}

// UnionWith builds a ∪ b, simplifying where the lattice invariants
// require: absorbing into Mixed, Never as the identity, Null promoting a
// non-nullable operand to Nullable, constants widening to their base,
// and flattening nested unions with duplicates removed.
func UnionWith(a, b Type) Type {
	if Equal(a, b) {
		return a
	}
	if a.Kind() == KindMixed || b.Kind() == KindMixed {
		return Mixed
	}
	if a.Kind() == KindNever {
		return b
	}
	if b.Kind() == KindNever {
		return a
	}
	if a.Kind() == KindNull && !AcceptsNull(b) {
		return NullableOf(b)
	}
	if b.Kind() == KindNull && !AcceptsNull(a) {
		return NullableOf(a)
	}

	if widened, ok := widenConstantPair(a, b); ok {
		return widened
	}

	var members []Type
	if u, ok := a.(Union); ok {
		members = append(members, u.Members...)
	} else {
		members = append(members, a)
	}
	if u, ok := b.(Union); ok {
		members = append(members, u.Members...)
	} else {
		members = append(members, b)
	}
	members = dedupTypes(members)

	if len(members) == 1 {
		return members[0]
	}
	return Union{Members: members}
}

func widenConstantPair(a, b Type) (Type, bool) {
	pairs := []struct {
		ak, bk Kind
		base   Type
	}{
		{KindConstantInt, KindConstantInt, Int},
		{KindConstantInt, KindInt, Int},
		{KindInt, KindConstantInt, Int},
		{KindConstantString, KindConstantString, String},
		{KindConstantString, KindString, String},
		{KindString, KindConstantString, String},
		{KindConstantBool, KindConstantBool, Bool},
		{KindConstantBool, KindBool, Bool},
		{KindBool, KindConstantBool, Bool},
		{KindConstantFloat, KindConstantFloat, Float},
		{KindConstantFloat, KindFloat, Float},
		{KindFloat, KindConstantFloat, Float},
	}
	for _, p := range pairs {
		if a.Kind() == p.ak && b.Kind() == p.bk {
			return p.base, true
		}
	}
	return nil, false
}

func dedupTypes(ts []Type) []Type {
	var out []Type
	for _, t := range ts {
		dup := false
		for _, o := range out {
			if Equal(t, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// IntersectWith builds a ∩ b: Mixed is the identity, Never is absorbing,
// a subtype relationship collapses to the narrower operand, otherwise
// the pair (or flattened sets) form an Intersection.
func IntersectWith(a, b Type) Type {
	if Equal(a, b) {
		return a
	}
	if a.Kind() == KindMixed {
		return b
	}
	if b.Kind() == KindMixed {
		return a
	}
	if a.Kind() == KindNever || b.Kind() == KindNever {
		return Never
	}
	if IsSubtypeOf(a, b) == Yes {
		return a
	}
	if IsSubtypeOf(b, a) == Yes {
		return b
	}

	var members []Type
	if x, ok := a.(Intersection); ok {
		members = append(members, x.Members...)
	} else {
		members = append(members, a)
	}
	if x, ok := b.(Intersection); ok {
		members = append(members, x.Members...)
	} else {
		members = append(members, b)
	}
	members = dedupTypes(members)

	if len(members) == 1 {
		return members[0]
	}
	return Intersection{Members: members}
}

// RemoveNull narrows t by eliminating the null case: Null itself becomes
// Never, Nullable(T) unwraps to T, and Null members are stripped from
// unions (each surviving member additionally narrowed). All non-null
// refinements are preserved.
func RemoveNull(t Type) Type {
	switch v := t.(type) {
	case Nullable:
		return v.Inner
	case Union:
		var filtered []Type
		for _, m := range v.Members {
			if m.Kind() == KindNull {
				continue
			}
			filtered = append(filtered, RemoveNull(m))
		}
		if len(filtered) == 0 {
			return Never
		}
		if len(filtered) == 1 {
			return filtered[0]
		}
		return Union{Members: filtered}
	case scalar:
		if v.kind == KindNull {
			return Never
		}
		if v.kind == KindMixed {
			return Mixed
		}
		return t
	default:
		return t
	}
}

// KeepOnlyNull narrows t to just the null case: Null if t ever accepts
// null, Never otherwise.
func KeepOnlyNull(t Type) Type {
	if AcceptsNull(t) {
		return Null
	}
	return Never
}
