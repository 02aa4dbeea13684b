// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suppress

import "testing"

func TestCompiledRegexMessageMatching(t *testing.T) {
	c := compile(Entry{Message: `#^Call to undefined function foo\(\)\.$#`, Count: 1})
	if !c.isRegex {
		t.Fatal("expected isRegex")
	}
	if !c.matchesMessage("Call to undefined function foo().") {
		t.Error("expected a match")
	}
	if c.matchesMessage("Call to undefined function bar().") {
		t.Error("expected no match")
	}
}

func TestCompiledPlainMessageMatchesSubstring(t *testing.T) {
	c := compile(Entry{Message: "undefined variable", Count: 1})
	if !c.matchesMessage("Possibly undefined variable $foo") {
		t.Error("expected substring match")
	}
	if c.matchesMessage("unrelated") {
		t.Error("expected no match")
	}
}

func TestCompiledIdentifierMatching(t *testing.T) {
	c := compile(Entry{Message: "x", Identifier: "argument.type"})
	if !c.matchesIdentifier("argument.type") {
		t.Error("expected exact identifier match")
	}
	if c.matchesIdentifier("other.type") {
		t.Error("expected no match for a different identifier")
	}

	any := compile(Entry{Message: "x"})
	if !any.matchesIdentifier("anything") {
		t.Error("expected an entry with no identifier to match any issue identifier")
	}
}

func TestCompiledPathMatching(t *testing.T) {
	c := compile(Entry{Message: "x", Path: "src/Controller/FooController.php"})
	if !c.matchesPath("src/Controller/FooController.php") {
		t.Error("expected an exact match")
	}
	if !c.matchesPath("/project/src/Controller/FooController.php") {
		t.Error("expected a suffix match")
	}
	if c.matchesPath("src/Controller/BarController.php") {
		t.Error("expected no match")
	}
}

func TestCompiledPathMatchingNormalizesBackslashes(t *testing.T) {
	c := compile(Entry{Message: "x", Path: `src\Foo.php`})
	if !c.matchesPath("project/src/Foo.php") {
		t.Error("expected backslash-normalized path to match")
	}
}

func TestEscapeRegex(t *testing.T) {
	got := escapeRegex("foo().bar[]")
	want := `foo\(\)\.bar\[\]`
	if got != want {
		t.Errorf("escapeRegex() = %q, want %q", got, want)
	}
}

func TestFormatRegexMessage(t *testing.T) {
	got := formatRegexMessage("Test error")
	want := "#^Test error$#"
	if got != want {
		t.Errorf("formatRegexMessage() = %q, want %q", got, want)
	}
}
