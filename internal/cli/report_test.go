// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

func TestPrintIssuesHumanFormat(t *testing.T) {
	col := issue.New()
	col.Add(issue.Issue{Identifier: "constant.notFound", Level: 0, Message: "undefined constant FOO", File: "a.php", Line: 3, Column: 6})

	var buf bytes.Buffer
	require.NoError(t, printIssues(&buf, col, false))
	require.Equal(t, "a.php:3:6: [0] constant.notFound — undefined constant FOO\n", buf.String())
}

func TestPrintIssuesJSONFormat(t *testing.T) {
	col := issue.New()
	col.Add(issue.Issue{Identifier: "constant.notFound", Level: 0, Message: "undefined constant FOO", File: "a.php", Line: 3, Column: 6})

	var buf bytes.Buffer
	require.NoError(t, printIssues(&buf, col, true))
	require.True(t, strings.Contains(buf.String(), `"identifier": "constant.notFound"`))
	require.True(t, strings.Contains(buf.String(), `"path": "a.php"`))
}

func TestPrintIssuesEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printIssues(&buf, issue.New(), false))
	require.Empty(t, buf.String())
}
