// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/kylelemons/godebug/diff"

	"github.com/borisyanez/rustor-sub001/internal/edit"
)

// printDryRun writes a unified-ish diff of applying edits to source,
// headed by path, without touching the file on disk. Used by fix
// --dry-run in place of internal/fix/diff.go's "shell out to /usr/bin/
// diff" approach, since that assumes a POSIX diff binary is on PATH;
// godebug/diff is already a dependency for rewriter golden tests (§11)
// and needs no external process.
func printDryRun(w io.Writer, path, source string, edits []edit.Edit) {
	if len(edits) == 0 {
		return
	}
	rewritten := edit.Apply(source, edits)
	d := diff.Diff(source, rewritten)
	if d == "" {
		return
	}
	fmt.Fprintf(w, "--- %s\n+++ %s\n%s\n", path, path, d)
}
