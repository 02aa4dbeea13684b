// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/span"
)

func TestPrintDryRunShowsHeaderAndDiff(t *testing.T) {
	var buf bytes.Buffer
	source := "<?php array_push($a, 1);"
	edits := []edit.Edit{{Span: span.Span{Start: 6, End: 24}, Replacement: "$a[] = 1"}}
	printDryRun(&buf, "a.php", source, edits)

	out := buf.String()
	require.Contains(t, out, "--- a.php")
	require.Contains(t, out, "+++ a.php")
	require.Contains(t, out, "array_push")
	require.Contains(t, out, "$a[] = 1")
}

func TestPrintDryRunNoEditsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	printDryRun(&buf, "a.php", "<?php echo 1;", nil)
	require.Empty(t, buf.String())
}
