// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types implements the type lattice: the tagged-union Type
// representation and the subtype/accepts/union/intersect/narrowing
// operations that type-sensitive analyzer rules reason with. The engine
// is flow-insensitive outside of explicit narrowing (remove_null and
// keep_only_null) and conservatively returns Maybe when evidence is
// thin; it never fabricates a Yes or No it cannot support.
package types

import "strconv"

// Kind discriminates the concrete variant of a Type value; it is the
// switch tag every operation in this package dispatches on.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindNull
	KindVoid
	KindNever
	KindMixed

	KindConstantInt
	KindConstantFloat
	KindConstantString
	KindConstantBool
	KindIntRange
	KindNonEmptyString
	KindNumericString
	KindClassString

	KindArray
	KindNonEmptyArray
	KindList
	KindIterable

	KindObject
	KindCallable
	KindClosure
	KindResource

	KindNullable
	KindUnion
	KindIntersection

	KindSelfType
	KindStatic
	KindParent
)

// Type is implemented by every member of the lattice. Values are
// immutable; operations return new Type values rather than mutating
// receivers.
type Type interface {
	Kind() Kind
	String() string
}

// ---- scalars (singletons) ----

type scalar struct {
	kind Kind
	name string
}

func (s scalar) Kind() Kind     { return s.kind }
func (s scalar) String() string { return s.name }

var (
	Int    Type = scalar{KindInt, "int"}
	Float  Type = scalar{KindFloat, "float"}
	String Type = scalar{KindString, "string"}
	Bool   Type = scalar{KindBool, "bool"}
	Null   Type = scalar{KindNull, "null"}
	Void   Type = scalar{KindVoid, "void"}
	Never  Type = scalar{KindNever, "never"}
	Mixed  Type = scalar{KindMixed, "mixed"}

	NonEmptyString Type = scalar{KindNonEmptyString, "non-empty-string"}
	NumericString  Type = scalar{KindNumericString, "numeric-string"}

	Callable Type = scalar{KindCallable, "callable"}
	Closure  Type = scalar{KindClosure, "Closure"}
	Resource Type = scalar{KindResource, "resource"}

	SelfType Type = scalar{KindSelfType, "self"}
	Static   Type = scalar{KindStatic, "static"}
	Parent   Type = scalar{KindParent, "parent"}
)

// ---- literal / refined types ----

type ConstantInt struct{ Value int64 }

func (ConstantInt) Kind() Kind        { return KindConstantInt }
func (c ConstantInt) String() string  { return strconv.FormatInt(c.Value, 10) }

type ConstantFloat struct{ Value float64 }

func (ConstantFloat) Kind() Kind       { return KindConstantFloat }
func (c ConstantFloat) String() string { return strconv.FormatFloat(c.Value, 'g', -1, 64) }

type ConstantString struct{ Value string }

func (ConstantString) Kind() Kind        { return KindConstantString }
func (c ConstantString) String() string  { return strconv.Quote(c.Value) }

type ConstantBool struct{ Value bool }

func (ConstantBool) Kind() Kind       { return KindConstantBool }
func (c ConstantBool) String() string { return strconv.FormatBool(c.Value) }

// IntRange models PHPDoc's int<min,max>; nil bounds mean unbounded.
type IntRange struct {
	Min, Max *int64
}

func (IntRange) Kind() Kind { return KindIntRange }
func (r IntRange) String() string {
	lo, hi := "min", "max"
	if r.Min != nil {
		lo = strconv.FormatInt(*r.Min, 10)
	}
	if r.Max != nil {
		hi = strconv.FormatInt(*r.Max, 10)
	}
	return "int<" + lo + ", " + hi + ">"
}

// ClassString models PHPDoc's class-string<C>; an empty Class means a
// bare class-string with no particular class constrained.
type ClassString struct{ Class string }

func (ClassString) Kind() Kind { return KindClassString }
func (c ClassString) String() string {
	if c.Class == "" {
		return "class-string"
	}
	return "class-string<" + c.Class + ">"
}

// ---- containers ----

type Array struct{ Key, Value Type }

func (Array) Kind() Kind { return KindArray }
func (a Array) String() string {
	return "array<" + a.Key.String() + ", " + a.Value.String() + ">"
}

type NonEmptyArray struct{ Key, Value Type }

func (NonEmptyArray) Kind() Kind { return KindNonEmptyArray }
func (a NonEmptyArray) String() string {
	return "non-empty-array<" + a.Key.String() + ", " + a.Value.String() + ">"
}

type List struct{ Value Type }

func (List) Kind() Kind          { return KindList }
func (l List) String() string    { return "list<" + l.Value.String() + ">" }

type Iterable struct{ Key, Value Type }

func (Iterable) Kind() Kind { return KindIterable }
func (i Iterable) String() string {
	return "iterable<" + i.Key.String() + ", " + i.Value.String() + ">"
}

// ---- composite ----

// Object models an instance type; an empty Class means "any object",
// mirroring the original engine's Option<String> == None.
type Object struct{ Class string }

func (Object) Kind() Kind { return KindObject }
func (o Object) String() string {
	if o.Class == "" {
		return "object"
	}
	return o.Class
}

// ---- set-theoretic ----

type Nullable struct{ Inner Type }

func (Nullable) Kind() Kind       { return KindNullable }
func (n Nullable) String() string { return "?" + n.Inner.String() }

type Union struct{ Members []Type }

func (Union) Kind() Kind { return KindUnion }
func (u Union) String() string {
	s := ""
	for i, m := range u.Members {
		if i > 0 {
			s += "|"
		}
		s += m.String()
	}
	return s
}

type Intersection struct{ Members []Type }

func (Intersection) Kind() Kind { return KindIntersection }
func (x Intersection) String() string {
	s := ""
	for i, m := range x.Members {
		if i > 0 {
			s += "&"
		}
		s += m.String()
	}
	return s
}

// NullableOf builds Nullable(inner), collapsing Nullable(Null) to Null
// and leaving Mixed untouched (Mixed already accepts null).
func NullableOf(inner Type) Type {
	if inner.Kind() == KindNull || inner.Kind() == KindMixed {
		return inner
	}
	if n, ok := inner.(Nullable); ok {
		return n
	}
	return Nullable{Inner: inner}
}
