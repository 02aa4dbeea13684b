// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
)

func TestMatchFuncCallByNameAndCapturesArg(t *testing.T) {
	source := `in_array($needle, $haystack)`
	files := newFiles(source)

	needle := &ast.Variable{Name: "needle"}
	needle.Sp = sp(9, 16)
	haystack := &ast.Variable{Name: "haystack"}
	haystack.Sp = sp(18, 27)
	call := &ast.FuncCall{Name: "in_array", Args: []ast.Arg{{Value: needle}, {Value: haystack}}}
	call.Sp = sp(0, len(source))

	p := Pattern{
		Node: "FuncCall",
		Name: "in_array",
		Args: []Pattern{
			{Capture: "$n"},
			{Capture: "$h"},
		},
	}
	match := compile(p)
	b, ok := match(call, files)
	if !ok {
		t.Fatalf("expected match")
	}
	if got, _ := b.GetText("n"); got != "$needle" {
		t.Errorf("capture n = %q, want $needle", got)
	}
	if got, _ := b.GetText("h"); got != "$haystack" {
		t.Errorf("capture h = %q, want $haystack", got)
	}
}

func TestMatchFuncCallVariadicCaptureJoinsArgText(t *testing.T) {
	source := `implode(',', $arr)`
	files := newFiles(source)

	sep := &ast.LiteralString{Value: ","}
	sep.Sp = sp(8, 11)
	arr := &ast.Variable{Name: "arr"}
	arr.Sp = sp(13, 17)
	call := &ast.FuncCall{Name: "implode", Args: []ast.Arg{{Value: sep}, {Value: arr}}}
	call.Sp = sp(0, len(source))

	p := Pattern{Node: "FuncCall", Name: "implode", Args: []Pattern{{Capture: "$args..."}}}
	match := compile(p)
	b, ok := match(call, files)
	if !ok {
		t.Fatalf("expected match")
	}
	got, _ := b.GetText("args")
	want := "',', $arr"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMatchFuncCallNoMoreRejectsExtraArgs(t *testing.T) {
	call := &ast.FuncCall{Name: "strlen", Args: []ast.Arg{
		{Value: &ast.Variable{Name: "a"}},
		{Value: &ast.Variable{Name: "b"}},
	}}
	p := Pattern{Node: "FuncCall", Name: "strlen", Args: []Pattern{
		{Capture: "$arg"},
		{NoMore: true},
	}}
	match := compile(p)
	if _, ok := match(call, nil); ok {
		t.Errorf("expected no match: extra argument present despite no_more")
	}

	callOneArg := &ast.FuncCall{Name: "strlen", Args: []ast.Arg{{Value: &ast.Variable{Name: "a"}}}}
	if _, ok := match(callOneArg, nil); !ok {
		t.Errorf("expected match: exactly one argument satisfies no_more")
	}
}

func TestMatchBinaryOpOperatorAndOperands(t *testing.T) {
	source := `strpos($h, $n) !== false`
	files := newFiles(source)

	h := &ast.Variable{Name: "h"}
	h.Sp = sp(7, 9)
	n := &ast.Variable{Name: "n"}
	n.Sp = sp(11, 13)
	call := &ast.FuncCall{Name: "strpos", Args: []ast.Arg{{Value: h}, {Value: n}}}
	call.Sp = sp(0, 14)
	falseLit := &ast.LiteralBool{Value: false}
	bin := &ast.BinaryOp{Op: "!==", Left: call, Right: falseLit}

	p := Pattern{
		Node:     "BinaryOp",
		Operator: "!==",
		Left: &Pattern{
			Node: "FuncCall",
			Name: "strpos",
			Args: []Pattern{{Capture: "$haystack"}, {Capture: "$needle"}},
		},
		Right: &Pattern{Node: "LiteralFalse"},
	}
	match := compile(p)
	b, ok := match(bin, files)
	if !ok {
		t.Fatalf("expected match")
	}
	if got, _ := b.GetText("haystack"); got != "$h" {
		t.Errorf("haystack capture = %q", got)
	}
	if got, _ := b.GetText("needle"); got != "$n" {
		t.Errorf("needle capture = %q", got)
	}
}

func TestMatchBinaryOpRejectsWrongOperator(t *testing.T) {
	bin := &ast.BinaryOp{Op: "==", Left: &ast.Variable{Name: "a"}, Right: &ast.Variable{Name: "b"}}
	p := Pattern{Node: "BinaryOp", Operator: "==="}
	match := compile(p)
	if _, ok := match(bin, nil); ok {
		t.Errorf("expected no match for mismatched operator")
	}
}

func TestMatchAnyTriesAlternatives(t *testing.T) {
	call := &ast.FuncCall{Name: "is_null", Args: []ast.Arg{{Value: &ast.Variable{Name: "x"}}}}
	p := Pattern{Any: []Pattern{
		{Node: "FuncCall", Name: "is_int"},
		{Node: "FuncCall", Name: "is_null"},
	}}
	match := compile(p)
	if _, ok := match(call, nil); !ok {
		t.Errorf("expected the second alternative to match")
	}
}

func TestMatchSameAsRequiresEqualText(t *testing.T) {
	source := `$x === $x`
	files := newFiles(source)
	left := &ast.Variable{Name: "x"}
	left.Sp = sp(0, 2)
	right := &ast.Variable{Name: "x"}
	right.Sp = sp(7, 9)
	bin := &ast.BinaryOp{Op: "===", Left: left, Right: right}

	p := Pattern{
		Node:     "BinaryOp",
		Operator: "===",
		Left:     &Pattern{Capture: "$v"},
		Right:    &Pattern{SameAs: "$v"},
	}
	match := compile(p)
	if _, ok := match(bin, files); !ok {
		t.Errorf("expected match: both sides are $x")
	}

	right2 := &ast.Variable{Name: "y"}
	right2.Sp = sp(7, 9)
	bin2 := &ast.BinaryOp{Op: "===", Left: left, Right: right2}
	files2 := newFiles(`$x === $y`)
	if _, ok := match(bin2, files2); ok {
		t.Errorf("expected no match: $x != $y")
	}
}
