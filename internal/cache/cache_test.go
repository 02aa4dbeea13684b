// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"path/filepath"
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/span"
)

func TestGetPutRoundTrip(t *testing.T) {
	c, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key := Key{ContentHash: ContentHash("<?php echo 1;"), RuleSetHash: RuleSetHash([]string{"b", "a"})}
	entry := Entry{
		Issues: []issue.Issue{{Identifier: "some.rule", Message: "oops"}},
	}
	if _, ok := c.Get(key); ok {
		t.Fatal("expected miss before Put")
	}
	c.Put(key, entry)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if len(got.Issues) != 1 || got.Issues[0].Identifier != "some.rule" {
		t.Errorf("Get = %+v", got)
	}
}

func TestRuleSetHashIsOrderIndependent(t *testing.T) {
	a := RuleSetHash([]string{"foo", "bar", "baz"})
	b := RuleSetHash([]string{"baz", "foo", "bar"})
	if a != b {
		t.Errorf("RuleSetHash order dependent: %q != %q", a, b)
	}
	c := RuleSetHash([]string{"foo", "bar"})
	if a == c {
		t.Error("different rule sets hashed equal")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key := Key{ContentHash: "abc", RuleSetHash: "def"}
	entry := Entry{
		Issues: []issue.Issue{{Identifier: "x.y", Message: "bad", File: "f.php", Line: 3, Column: 1}},
		Edits:  []edit.Edit{{Span: span.Span{File: 0, Start: 1, End: 5}, Replacement: "good"}},
	}
	c.Put(key, entry)

	path := filepath.Join(t.TempDir(), "cache.msgpack")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := loaded.Get(key)
	if !ok {
		t.Fatal("expected hit after Load")
	}
	if len(got.Edits) != 1 || got.Edits[0].Replacement != "good" {
		t.Errorf("Edits = %+v", got.Edits)
	}
}

func TestNilCacheIsSafeNoop(t *testing.T) {
	var c *Cache
	if _, ok := c.Get(Key{}); ok {
		t.Error("nil cache should always miss")
	}
	c.Put(Key{}, Entry{})
	if c.Len() != 0 {
		t.Error("nil cache Len should be 0")
	}
	if err := c.Save(filepath.Join(t.TempDir(), "x")); err != nil {
		t.Errorf("nil cache Save should no-op: %v", err)
	}
}
