// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "testing"

func TestParseSimpleTypes(t *testing.T) {
	cases := map[string]Kind{
		"int":    KindInt,
		"string": KindString,
		"bool":   KindBool,
		"null":   KindNull,
		"void":   KindVoid,
		"mixed":  KindMixed,
	}
	for s, want := range cases {
		got := ParseTypeString(s)
		if got == nil || got.Kind() != want {
			t.Errorf("ParseTypeString(%q) = %v, want kind %v", s, got, want)
		}
	}
}

func TestParseNullable(t *testing.T) {
	got := ParseTypeString("?string")
	if got == nil || got.Kind() != KindNullable {
		t.Errorf("ParseTypeString(?string) = %v, want Nullable", got)
	}
}

func TestParseUnion(t *testing.T) {
	got := ParseTypeString("int|string")
	if got == nil || got.Kind() != KindUnion {
		t.Errorf("ParseTypeString(int|string) = %v, want Union", got)
	}
}

func TestParseArrayTypes(t *testing.T) {
	if got := ParseTypeString("string[]"); got == nil || got.Kind() != KindList {
		t.Errorf("ParseTypeString(string[]) = %v, want List", got)
	}
	if got := ParseTypeString("array<string, int>"); got == nil || got.Kind() != KindArray {
		t.Errorf("ParseTypeString(array<string, int>) = %v, want Array", got)
	}
}

func TestParseNestedGenericDoesNotSplitAtInnerComma(t *testing.T) {
	got := ParseTypeString("array<int, array<string, mixed>>")
	arr, ok := got.(Array)
	if !ok {
		t.Fatalf("ParseTypeString nested generic = %v, want Array", got)
	}
	if arr.Key.Kind() != KindInt {
		t.Errorf("outer key = %v, want int", arr.Key)
	}
	inner, ok := arr.Value.(Array)
	if !ok {
		t.Fatalf("outer value = %v, want Array", arr.Value)
	}
	if inner.Key.Kind() != KindString || inner.Value.Kind() != KindMixed {
		t.Errorf("inner array = %v, want array<string, mixed>", inner)
	}
}

func TestParseClassName(t *testing.T) {
	got := ParseTypeString("DateTime")
	obj, ok := got.(Object)
	if !ok || obj.Class != "DateTime" {
		t.Errorf("ParseTypeString(DateTime) = %v, want Object{DateTime}", got)
	}
}

func TestParseArrayShapeCollapsesToArray(t *testing.T) {
	got := ParseTypeString("array{name: string, age: int}")
	if got == nil || got.Kind() != KindArray {
		t.Errorf("array shape = %v, want Array", got)
	}
}

func TestParseDocParam(t *testing.T) {
	doc := ParseDoc("/** @param string $name */")
	if len(doc.Params) != 1 || doc.Params[0].Name != "name" || doc.Params[0].Type.Kind() != KindString {
		t.Errorf("ParseDoc params = %+v, want [{name string}]", doc.Params)
	}
}

func TestParseDocReturn(t *testing.T) {
	doc := ParseDoc("/** @return int */")
	if doc.ReturnType == nil || doc.ReturnType.Kind() != KindInt {
		t.Errorf("ParseDoc return = %v, want int", doc.ReturnType)
	}
}

func TestParseDocVar(t *testing.T) {
	doc := ParseDoc("/** @var DateTime */")
	if doc.VarType == nil || doc.VarType.Kind() != KindObject {
		t.Errorf("ParseDoc var = %v, want Object", doc.VarType)
	}
}

func TestParseDocMultilineWithDescriptions(t *testing.T) {
	comment := `/**
	 * Finds a user by id.
	 *
	 * @param int $id Associated familyId lookup key
	 * @return User|null the matching user, if any
	 */`
	doc := ParseDoc(comment)
	if len(doc.Params) != 1 || doc.Params[0].Type.Kind() != KindInt {
		t.Errorf("ParseDoc params = %+v, want [{id int}]", doc.Params)
	}
	if doc.ReturnType == nil || doc.ReturnType.Kind() != KindNullable {
		t.Errorf("ParseDoc return = %v, want ?User", doc.ReturnType)
	}
}

func TestParseConstantTypes(t *testing.T) {
	if got := ParseTypeString("true"); got == nil || got.(ConstantBool).Value != true {
		t.Errorf("ParseTypeString(true) = %v, want ConstantBool(true)", got)
	}
	if got := ParseTypeString("false"); got == nil || got.(ConstantBool).Value != false {
		t.Errorf("ParseTypeString(false) = %v, want ConstantBool(false)", got)
	}
}

func TestParseSpecialIntTypes(t *testing.T) {
	got := ParseTypeString("positive-int")
	r, ok := got.(IntRange)
	if !ok || r.Min == nil || *r.Min != 1 || r.Max != nil {
		t.Errorf("ParseTypeString(positive-int) = %+v, want IntRange{Min: 1, Max: nil}", got)
	}
}
