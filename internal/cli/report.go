// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/borisyanez/rustor-sub001/internal/issue"
)

// jsonIssue is the structured shape one issue is printed as under
// --json; encoding/json is used unmodified here, justified in
// DESIGN.md since no pack library improves on stdlib for a fixed,
// already-tagged struct.
type jsonIssue struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Level      int    `json:"level"`
	Identifier string `json:"identifier"`
	Message    string `json:"message"`
}

// printIssues writes every issue in col to w, one per line in the
// human format spec.md §6 specifies, or as a JSON array when json is
// true.
func printIssues(w io.Writer, col *issue.Collection, jsonOutput bool) error {
	issues := col.Sorted()
	if !jsonOutput {
		for _, i := range issues {
			fmt.Fprintf(w, "%s:%d:%d: [%d] %s — %s\n", i.File, i.Line, i.Column, i.Level, i.Identifier, i.Message)
		}
		return nil
	}

	out := make([]jsonIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, jsonIssue{
			Path: i.File, Line: i.Line, Column: i.Column,
			Level: i.Level, Identifier: i.Identifier, Message: i.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
