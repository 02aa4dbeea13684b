// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/config"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/rewriter"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/suppress"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
	"github.com/hashicorp/go-version"
)

// conflictingRule is a fake rewriter.Rule that always proposes the
// same edit, used to force two rules to claim overlapping spans in one
// file so the orchestrator's greedy-fallback path is exercised.
type conflictingRule struct {
	name string
	e    edit.Edit
}

func (r conflictingRule) Name() string                            { return r.name }
func (r conflictingRule) Category() rewriter.Category             { return rewriter.Simplification }
func (r conflictingRule) MinimumLanguageVersion() *version.Version { return nil }
func (r conflictingRule) ConfigOptions() []rewriter.ConfigOption   { return nil }
func (r conflictingRule) Check(program *ast.Program, ctx *visitor.CheckContext) []edit.Edit {
	return []edit.Edit{r.e}
}

var errParse = errors.New("syntax error near line 1")

// arrayPushSource is "<?php array_push($a, 1);", with the statement's
// span equal to the array_push(...) call's span, which stops before the
// trailing semicolon.
const arrayPushSource = `<?php array_push($a, 1);`

// parseArrayPush hand-builds the AST a real parser would produce for
// arrayPushSource, byte-exact so edit.Apply output is checkable.
func parseArrayPush(path, source string) (*ast.Program, error) {
	// Byte offsets in "<?php array_push($a, 1);":
	//   6..23   the call "array_push($a, 1)"
	//   17..19  "$a"
	//   21..22  "1"
	//   23      the trailing ";", outside every span
	variable := &ast.Variable{Name: "a"}
	variable.Sp = span.Span{File: 0, Start: 17, End: 19}
	lit := &ast.LiteralInt{Value: 1}
	lit.Sp = span.Span{File: 0, Start: 21, End: 22}

	call := &ast.FuncCall{
		Name: "array_push",
		Args: []ast.Arg{
			{Value: variable},
			{Value: lit},
		},
	}
	call.Sp = span.Span{File: 0, Start: 6, End: 23}
	stmt := &ast.ExprStmt{X: call}
	stmt.Sp = call.Sp
	return &ast.Program{File: 0, Statements: []ast.Stmt{stmt}}, nil
}

func TestRunFixModeAppliesArrayPushRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	if err := os.WriteFile(path, []byte(arrayPushSource), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result, err := Run(context.Background(), Options{
		Paths:  []string{dir},
		Config: &config.Config{Level: 9},
		Parser: ParserFunc(parseArrayPush),
		Mode:   Fix,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("got %d file results, want 1", len(result.Files))
	}
	fr := result.Files[0]
	if !fr.Written {
		t.Fatal("expected the file to be written")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "<?php $a[] = 1;"
	if string(got) != want {
		t.Errorf("rewritten file = %q, want %q", string(got), want)
	}
}

func TestRunAnalyzeModeNeverWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	if err := os.WriteFile(path, []byte(arrayPushSource), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result, err := Run(context.Background(), Options{
		Paths:  []string{dir},
		Config: &config.Config{Level: 9},
		Parser: ParserFunc(parseArrayPush),
		Mode:   Analyze,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Files[0].Written {
		t.Error("analyze mode must never write")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != arrayPushSource {
		t.Error("analyze mode modified the source file")
	}
}

func TestRunReportsParseErrorsWithoutAbortingRun(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.php")
	if err := os.WriteFile(bad, []byte("broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	failingParser := ParserFunc(func(path, source string) (*ast.Program, error) {
		return nil, errParse
	})

	result, err := Run(context.Background(), Options{
		Paths:  []string{dir},
		Config: &config.Config{Level: 9},
		Parser: failingParser,
		Mode:   Analyze,
	})
	if err != nil {
		t.Fatalf("Run should not abort on a per-file parse error: %v", err)
	}
	found := false
	for _, iss := range result.Issues.All() {
		if iss.Identifier == "parse.error" {
			found = true
		}
	}
	if !found {
		t.Error("expected a parse.error issue for the unparseable file")
	}
}

func TestRunRejectsNilParser(t *testing.T) {
	if _, err := Run(context.Background(), Options{Paths: []string{t.TempDir()}}); err == nil {
		t.Error("expected an error when no Parser is configured")
	}
}

// TestRunFallsBackToGreedyConflictResolutionOnOverlappingEdits covers
// spec.md's requirement that overlapping edits in one file downgrade
// to the largest conflict-free subset (edit.ResolveConflicts) rather
// than silently keeping Merge's truncated partial-merge prefix.
func TestRunFallsBackToGreedyConflictResolutionOnOverlappingEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	if err := os.WriteFile(path, []byte(arrayPushSource), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	long := conflictingRule{name: "long", e: edit.Edit{Span: span.Span{File: 0, Start: 6, End: 23}, Replacement: "$a[] = 1", Message: "long"}}
	short := conflictingRule{name: "short", e: edit.Edit{Span: span.Span{File: 0, Start: 6, End: 16}, Replacement: "xxx", Message: "short"}}

	result, err := Run(context.Background(), Options{
		Paths:             []string{dir},
		Config:            &config.Config{Level: 9},
		Parser:            ParserFunc(parseArrayPush),
		Mode:              Fix,
		ExtraRewriteRules: []rewriter.Rule{long, short},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The longer span wins; the shorter, overlapping edit is dropped.
	want := "<?php $a[] = 1;"
	if string(got) != want {
		t.Errorf("rewritten file = %q, want %q (greedy longest-span fallback)", string(got), want)
	}

	foundConflict := false
	for _, iss := range result.Issues.All() {
		if iss.Identifier == "rewrite.conflict" {
			foundConflict = true
		}
	}
	if !foundConflict {
		t.Error("expected a rewrite.conflict issue for the dropped edit")
	}
}

func TestRunReportsBaselineUnmatchedWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	if err := os.WriteFile(path, []byte(arrayPushSource), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	baseline := suppress.NewBaseline([]suppress.Entry{
		{Message: "this never matches", Count: 1},
	})

	result, err := Run(context.Background(), Options{
		Paths:    []string{dir},
		Config:   &config.Config{Level: 9, ReportUnmatchedIgnoredErrors: true},
		Parser:   ParserFunc(parseArrayPush),
		Mode:     Analyze,
		Baseline: baseline,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	found := false
	for _, iss := range result.Issues.All() {
		if iss.Identifier == "baseline.unmatched" {
			found = true
		}
	}
	if !found {
		t.Error("expected a baseline.unmatched issue for the entry that never matched")
	}
}

func TestRunOmitsBaselineUnmatchedWhenNotConfigured(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	if err := os.WriteFile(path, []byte(arrayPushSource), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	baseline := suppress.NewBaseline([]suppress.Entry{
		{Message: "this never matches", Count: 1},
	})

	result, err := Run(context.Background(), Options{
		Paths:    []string{dir},
		Config:   &config.Config{Level: 9},
		Parser:   ParserFunc(parseArrayPush),
		Mode:     Analyze,
		Baseline: baseline,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, iss := range result.Issues.All() {
		if iss.Identifier == "baseline.unmatched" {
			t.Error("did not expect a baseline.unmatched issue when ReportUnmatchedIgnoredErrors is false")
		}
	}
}
