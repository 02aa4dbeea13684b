// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/types"
)

// FunctionInfo is everything the symbol table knows about one top-level
// function declaration (built-ins are registered with only FullName set;
// their signatures are intentionally left unknown — see registerBuiltins).
type FunctionInfo struct {
	FullName   string
	Params     []ast.Param
	ReturnType types.Type // nil if unknown
	File       string
}

// NewFunctionInfo returns a FunctionInfo with only the name populated,
// the shape built-ins are registered with.
func NewFunctionInfo(fullName string) FunctionInfo {
	return FunctionInfo{FullName: fullName}
}
