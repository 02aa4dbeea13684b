// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suppress implements the three layered filters spec.md §4.9
// applies to a finished issue collection: inline "@suppress" comments,
// config-file ignore entries, and a persistent baseline for gradual
// adoption. Ignore entries and baseline entries share one shape and
// one matching engine; a baseline is an ignore list with a loader and
// a generator bolted on.
package suppress

import (
	"regexp"
	"strings"
)

// Entry is one ignore or baseline rule: an error message (plain
// substring or a #^...$# delimited regex), the number of times it may
// still match, an optional file path pattern, and an optional
// identifier. An empty Identifier matches any issue identifier.
type Entry struct {
	Message    string `yaml:"message"`
	Count      int    `yaml:"count,omitempty"`
	Path       string `yaml:"path,omitempty"`
	Identifier string `yaml:"identifier,omitempty"`
}

// compiled pairs an Entry with its pre-parsed regex, if the message is
// a #^...$# pattern, so matching doesn't recompile it per issue.
type compiled struct {
	Entry
	isRegex bool
	regex   *regexp.Regexp
}

func compile(e Entry) compiled {
	c := compiled{Entry: e}
	if c.Count == 0 {
		c.Count = 1
	}
	trimmed := strings.Trim(e.Message, `'"`)
	if strings.HasPrefix(trimmed, "#^") && strings.HasSuffix(trimmed, "$#") {
		c.isRegex = true
		inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "#"), "#")
		c.regex = regexp.MustCompile(inner)
	}
	return c
}

// matchesMessage reports whether message satisfies the entry: a full
// regex match for a #^...$# pattern, otherwise an exact or substring
// match against the plain text.
func (c compiled) matchesMessage(message string) bool {
	if c.isRegex {
		return c.regex.MatchString(message)
	}
	return c.Message == message || strings.Contains(message, c.Message)
}

// matchesIdentifier reports whether identifier satisfies the entry. An
// entry with no identifier matches any issue identifier; otherwise the
// two must be equal.
func (c compiled) matchesIdentifier(identifier string) bool {
	if c.Identifier == "" {
		return true
	}
	return c.Identifier == identifier
}

// matchesPath reports whether path satisfies the entry's path pattern
// after normalizing both to forward slashes: the entry matches a
// path it is a suffix of, a substring of, or equal to. An entry with
// no path pattern matches every path.
func (c compiled) matchesPath(path string) bool {
	if c.Path == "" {
		return true
	}
	normalizedPattern := strings.ReplaceAll(c.Path, `\`, "/")
	normalizedPath := strings.ReplaceAll(path, `\`, "/")
	return strings.HasSuffix(normalizedPath, normalizedPattern) ||
		strings.Contains(normalizedPath, normalizedPattern) ||
		normalizedPattern == normalizedPath
}

// escapeRegex escapes regex metacharacters so a literal message can be
// embedded in a #^...$# pattern when generating a baseline entry.
func escapeRegex(s string) string {
	const special = `\.+*?()[]{}^$|`
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatRegexMessage wraps an escaped literal message as a #^...$#
// pattern, the baseline's on-disk form for a generated entry.
func formatRegexMessage(message string) string {
	return "#^" + escapeRegex(message) + "$#"
}
