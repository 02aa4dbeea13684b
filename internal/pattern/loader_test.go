// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"os"
	"path/filepath"
	"testing"
)

const ruleYAML = `
name: strpos-to-str-contains
description: Replace strpos(...) !== false with str_contains(...)
category: Modernization
minimum_version: "8.0"
match:
  node: BinaryOp
  operator: "!=="
  left:
    node: FuncCall
    name: strpos
    args:
      - capture: $haystack
      - capture: $needle
  right:
    node: LiteralFalse
replace: str_contains($haystack, $needle)
tests:
  - input: "strpos($a, $b) !== false"
    output: "str_contains($a, $b)"
`

func writeTempRule(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rule.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesValidRule(t *testing.T) {
	path := writeTempRule(t, ruleYAML)
	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Name != "strpos-to-str-contains" {
		t.Errorf("Name = %q", spec.Name)
	}
	if spec.Match.Node != "BinaryOp" || spec.Match.Operator != "!==" {
		t.Errorf("unexpected match tree: %+v", spec.Match)
	}
	if spec.Replace.kind != replaceTemplate || spec.Replace.template != "str_contains($haystack, $needle)" {
		t.Errorf("unexpected replace: %+v", spec.Replace)
	}
	if len(spec.Tests) != 1 || spec.Tests[0].Input != "strpos($a, $b) !== false" {
		t.Errorf("unexpected tests: %+v", spec.Tests)
	}
}

func TestLoadRejectsUnknownNodeKind(t *testing.T) {
	bad := `
name: bogus
match:
  node: NotARealKind
replace: "x"
`
	path := writeTempRule(t, bad)
	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for an unknown node kind")
	}
}

func TestLoadRejectsDanglingSameAs(t *testing.T) {
	bad := `
name: bogus
match:
  node: BinaryOp
  operator: "==="
  left:
    capture: $v
  right:
    same_as: $nonexistent
replace: "x"
`
	path := writeTempRule(t, bad)
	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for a dangling same_as reference")
	}
}

func TestLoadRemoveReplacement(t *testing.T) {
	removal := `
name: drop-debug-call
match:
  node: FuncCall
  name: debug_print
replace: remove
`
	path := writeTempRule(t, removal)
	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Replace.kind != replaceRemove {
		t.Errorf("expected a remove replacement, got %+v", spec.Replace)
	}
}

func TestLoadDirReadsEveryYAMLFileSorted(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	write("b.yaml", `
name: rule-b
match: {node: LiteralNull}
replace: "null"
`)
	write("a.yml", `
name: rule-a
match: {node: LiteralNull}
replace: "null"
`)
	write("notes.txt", "ignore me")

	specs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(specs))
	}
	if specs[0].Name != "rule-a" || specs[1].Name != "rule-b" {
		t.Errorf("unexpected order: %s, %s", specs[0].Name, specs[1].Name)
	}
}
