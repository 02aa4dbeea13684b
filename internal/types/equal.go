// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "strings"

// Equal reports whether a and b denote the same type. Union and
// Intersection compare their members as multisets, ignoring order, so
// UnionWith(a, b) and UnionWith(b, a) are Equal; every other type
// compares structurally.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case ConstantInt:
		return av.Value == b.(ConstantInt).Value
	case ConstantFloat:
		return av.Value == b.(ConstantFloat).Value
	case ConstantString:
		return av.Value == b.(ConstantString).Value
	case ConstantBool:
		return av.Value == b.(ConstantBool).Value
	case IntRange:
		bv := b.(IntRange)
		return equalPtr(av.Min, bv.Min) && equalPtr(av.Max, bv.Max)
	case ClassString:
		return strings.EqualFold(av.Class, b.(ClassString).Class)
	case Array:
		bv := b.(Array)
		return Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case NonEmptyArray:
		bv := b.(NonEmptyArray)
		return Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case List:
		return Equal(av.Value, b.(List).Value)
	case Iterable:
		bv := b.(Iterable)
		return Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case Object:
		return strings.EqualFold(av.Class, b.(Object).Class)
	case Nullable:
		return Equal(av.Inner, b.(Nullable).Inner)
	case Union:
		return equalMembers(av.Members, b.(Union).Members)
	case Intersection:
		return equalMembers(av.Members, b.(Intersection).Members)
	default:
		// Singletons (scalars, Callable, Closure, Resource, SelfType,
		// Static, Parent, NonEmptyString, NumericString): Kind equality
		// above is already sufficient.
		return true
	}
}

func equalPtr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalMembers reports whether a and b hold the same members, each
// member of b matched at most once, regardless of order.
func equalMembers(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && Equal(x, y) {
				used[j], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
