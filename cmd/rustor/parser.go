// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/borisyanez/rustor-sub001/internal/ast"
)

// unimplementedParser satisfies orchestrator.Parser as the seam where a
// real lexer/parser for the target language plugs in. The parser
// itself is out of scope for this repository (spec.md §1 Non-goals):
// it is assumed to hand the engine an arena-allocated AST with
// byte-accurate spans, not reimplemented here.
type unimplementedParser struct{}

func (unimplementedParser) Parse(path, source string) (*ast.Program, error) {
	return nil, fmt.Errorf("%s: no language parser is linked into this build; provide one satisfying orchestrator.Parser", path)
}
