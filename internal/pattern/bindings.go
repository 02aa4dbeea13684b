// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "github.com/borisyanez/rustor-sub001/internal/span"

// binding is one captured subtree: its rendered source text and the span
// it came from (span is zero for synthesized variadic captures, which
// join several subtrees' text and have no single backing range).
type binding struct {
	text string
	span span.Span
	ok   bool // false means "present but positionally absent", e.g. Else of a two-branch ternary
}

// Bindings holds every capture a successful match produced, keyed by
// name without the leading '$'. It is the Go equivalent of
// original_source's yaml_rules::matcher::CapturedBindings.
type Bindings struct {
	values map[string]binding
}

func newBindings() *Bindings {
	return &Bindings{values: map[string]binding{}}
}

func (b *Bindings) insert(name, text string, sp span.Span) {
	b.values[name] = binding{text: text, span: sp, ok: true}
}

// GetText returns the captured text for name, if any capture by that
// name exists.
func (b *Bindings) GetText(name string) (string, bool) {
	v, ok := b.values[name]
	if !ok || !v.ok {
		return "", false
	}
	return v.text, true
}

// Contains reports whether name was captured.
func (b *Bindings) Contains(name string) bool {
	v, ok := b.values[name]
	return ok && v.ok
}

// Span returns the span a named capture came from.
func (b *Bindings) Span(name string) (span.Span, bool) {
	v, ok := b.values[name]
	if !ok || !v.ok {
		return span.Span{}, false
	}
	return v.span, true
}
