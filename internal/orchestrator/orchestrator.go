// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrator implements the six-step pipeline spec.md §4.10
// describes: discover files, parse them, collect declarations into a
// shared symbol table, run analyzer and rewriter rules per file,
// filter the resulting issues through suppression, then either report
// or apply the merged edits. It plays the role
// internal/o2o/rewrite.rewrite plays for the teacher's "load packages,
// fix them in a worker pool, write results back" shape, generalized
// from Go packages to this engine's own source files.
package orchestrator

import (
	"context"
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-version"
	"golang.org/x/sync/errgroup"

	"github.com/borisyanez/rustor-sub001/internal/analyzer"
	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/config"
	"github.com/borisyanez/rustor-sub001/internal/discover"
	"github.com/borisyanez/rustor-sub001/internal/edit"
	"github.com/borisyanez/rustor-sub001/internal/errutil"
	"github.com/borisyanez/rustor-sub001/internal/issue"
	"github.com/borisyanez/rustor-sub001/internal/profile"
	"github.com/borisyanez/rustor-sub001/internal/rewriter"
	"github.com/borisyanez/rustor-sub001/internal/span"
	"github.com/borisyanez/rustor-sub001/internal/suppress"
	"github.com/borisyanez/rustor-sub001/internal/symbols"
	"github.com/borisyanez/rustor-sub001/internal/visitor"
)

// Parser turns one file's source text into a Program. Parsing itself
// is assumed external (spec.md §1 Non-goals); the orchestrator only
// needs something satisfying this interface to drive its pipeline.
type Parser interface {
	Parse(path, source string) (*ast.Program, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(path, source string) (*ast.Program, error)

// Parse implements Parser.
func (f ParserFunc) Parse(path, source string) (*ast.Program, error) {
	return f(path, source)
}

// Mode selects whether Run reports issues or writes rewrites back to
// disk.
type Mode int

const (
	// Analyze reports issues without touching any file.
	Analyze Mode = iota
	// Fix applies the merged edit set per file, atomically.
	Fix
)

// Options configures one run of the pipeline.
type Options struct {
	Paths         []string
	Excludes      []string
	Config        *config.Config
	Baseline      *suppress.Baseline // nil if no baseline is configured
	Parser        Parser
	Mode          Mode
	DryRun        bool // fix mode: compute edits but never write
	TargetVersion *version.Version
	Parallelism   int // worker pool size; <=0 defaults to 8

	// ExtraRewriteRules augments the built-in rewriter registry with
	// rules compiled from a project's --rules-dir (internal/pattern),
	// so a Pattern DSL rule runs in the same pass as the bundled ones.
	ExtraRewriteRules []rewriter.Rule
}

// FileResult is one file's outcome: its filtered issues, the edits
// that would be (or were) applied, and whether it was written in fix
// mode.
type FileResult struct {
	Path    string
	Issues  []issue.Issue
	Edits   []edit.Edit
	Written bool
}

// Result is the outcome of a full run.
type Result struct {
	Files    []FileResult
	Issues   *issue.Collection // every file's filtered issues, sorted
	Baseline *suppress.Baseline
}

type parsed struct {
	path    string
	source  string
	program *ast.Program
}

// Run executes the six-phase pipeline described in spec.md §4.10.
// Fatal errors (bad root paths, a nil Parser) abort before any file is
// processed; per-file failures never abort the run, surfacing instead
// as synthetic issues per spec.md §7.
func Run(ctx context.Context, opts Options) (_ *Result, err error) {
	defer errutil.Annotatef(&err, "orchestrator.Run failed")

	if opts.Parser == nil {
		return nil, fmt.Errorf("orchestrator: no Parser configured")
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = 8
	}

	ctx = profile.NewContext(ctx)

	// Phase 1: discover.
	paths, err := discover.Find(opts.Paths, opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	log.Infof("orchestrator: discovered %d files", len(paths))
	profile.Add(ctx, "discover")

	// Phase 2: read + parse. Syntax errors are per-file fatal: the file
	// is skipped and reported as a parse.error issue, the run
	// continues.
	results := make(chan discover.Result)
	go discover.Read(ctx, paths, results)

	issues := issue.New()
	sources := make(map[string]string)
	var files []parsed
	for r := range results {
		if r.Err != nil {
			issues.Add(issue.Issue{Identifier: "parse.error", Level: 0, Message: r.Err.Error(), File: r.Path, Line: 1, Column: 1})
			continue
		}
		program, perr := opts.Parser.Parse(r.Path, r.Source)
		if perr != nil {
			issues.Add(issue.Issue{Identifier: "parse.error", Level: 0, Message: perr.Error(), File: r.Path, Line: 1, Column: 1})
			continue
		}
		sources[r.Path] = r.Source
		files = append(files, parsed{path: r.Path, source: r.Source, program: program})
	}
	profile.Add(ctx, "parse")

	// Phase 3: first pass, symbol collection. Parallel across files;
	// each worker writes to its own local table, merged at the barrier
	// so the shared table is write-only during this phase and
	// read-only afterward (spec.md §5).
	table, err := collectSymbols(ctx, files, parallelism)
	if err != nil {
		return nil, fmt.Errorf("symbol collection: %w", err)
	}
	profile.Add(ctx, "symbols")

	// Phase 4: second pass, rule execution. Serial per file (rules
	// within one file run in order, to keep error attribution simple
	// per spec.md §5), but files run across the worker pool.
	fileResults, err := runRules(ctx, files, sources, table, opts, parallelism)
	if err != nil {
		return nil, fmt.Errorf("rule execution: %w", err)
	}
	for _, fr := range fileResults {
		issues.AddAll(fr.Issues)
	}
	profile.Add(ctx, "rules")

	// Phase 5: suppression + baseline.
	filters := suppress.Filters{Baseline: opts.Baseline}
	if opts.Config != nil {
		filters.Ignores = suppress.NewIgnoreList(opts.Config.IgnoreErrors)
	}
	filtered := filters.Apply(issues, sources)
	// Regenerated unconditionally so a caller driving --generate-baseline
	// can persist it; an unused value costs nothing.
	baseline := suppress.Generate(filtered)

	if opts.Config != nil && opts.Config.ReportUnmatchedIgnoredErrors {
		for _, e := range filters.UnmatchedEntries() {
			count := e.Count
			if count == 0 {
				count = 1
			}
			filtered.Add(issue.Issue{
				Identifier: "baseline.unmatched",
				Level:      0,
				Message:    fmt.Sprintf("ignored error pattern %q was not matched (or matched fewer than %d time(s))", e.Message, count),
				File:       e.Path,
				Line:       1,
				Column:     1,
			})
		}
	}

	// Phase 6: report or apply.
	out := make([]FileResult, 0, len(fileResults))
	for _, fr := range fileResults {
		fr.Issues = issuesForFile(filtered, fr.Path)
		if opts.Mode == Fix && !opts.DryRun && len(fr.Edits) > 0 {
			if err := applyEdits(fr.Path, sources[fr.Path], fr.Edits); err != nil {
				fr.Issues = append(fr.Issues, issue.Issue{
					Identifier: "rewrite.conflict",
					Level:      0,
					Message:    err.Error(),
					File:       fr.Path,
					Line:       1,
					Column:     1,
				})
			} else {
				fr.Written = true
			}
		}
		out = append(out, fr)
	}
	profile.Add(ctx, "apply")
	log.Infof("orchestrator: %s", profile.Dump(ctx))

	return &Result{Files: out, Issues: filtered, Baseline: baseline}, nil
}

func issuesForFile(col *issue.Collection, path string) []issue.Issue {
	var out []issue.Issue
	for _, i := range col.All() {
		if i.File == path {
			out = append(out, i)
		}
	}
	return out
}

// collectSymbols runs phase 3: symbols.Collect over every file,
// parallelized across a bounded worker pool, with per-worker local
// tables merged into one shared table at the barrier.
func collectSymbols(ctx context.Context, files []parsed, parallelism int) (*symbols.Table, error) {
	shared := symbols.NewWithBuiltins()
	if len(files) == 0 {
		return shared, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallelism)
	tables := make([]*symbols.Table, len(files))
	for idx, f := range files {
		idx, f := idx, f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			local := symbols.New()
			symbols.Collect(f.program, f.path, local)
			tables[idx] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for _, t := range tables {
		shared.Merge(t)
	}
	return shared, nil
}

// runRules runs phase 4: for each file, every enabled analyzer rule
// then every enabled rewriter rule, serially within the file but
// spread across the worker pool between files. A rule that panics is
// recovered and reported as rule.internalError, discarding only that
// rule's output for that file (spec.md §7).
func runRules(ctx context.Context, files []parsed, sources map[string]string, table *symbols.Table, opts Options, parallelism int) ([]FileResult, error) {
	level := 9
	if opts.Config != nil {
		level = opts.Config.Level
	}
	analyzerRules := analyzer.ByLevel(level)
	rewriterRules := append(rewriter.Applicable(opts.TargetVersion), opts.ExtraRewriteRules...)

	results := make([]FileResult, len(files))
	var merr *multierror.Error

	eg, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallelism)
	for idx, f := range files {
		idx, f := idx, f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			results[idx] = runFile(f, sources[f.path], table, analyzerRules, rewriterRules, opts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		merr = multierror.Append(merr, err)
		return nil, merr.ErrorOrNil()
	}
	return results, nil
}

func runFile(f parsed, source string, table *symbols.Table, analyzerRules []analyzer.Rule, rewriterRules []rewriter.Rule, opts Options) FileResult {
	files := span.NewSet()
	files.Add(f.path, source)

	var ruleOptions func(name string) map[string]any
	if opts.Config != nil {
		ruleOptions = opts.Config.RuleOptions
	}

	fr := FileResult{Path: f.path}
	for _, r := range analyzerRules {
		cfg := map[string]any{}
		if ruleOptions != nil {
			for k, v := range ruleOptions(r.ID()) {
				cfg[k] = v
			}
		}
		ctx := &visitor.CheckContext{FilePath: f.path, Source: source, Files: files, Symbols: table, Config: cfg}
		issues := safeCheckAnalyzer(r, f.program, ctx)
		fr.Issues = append(fr.Issues, issues...)
	}
	for _, r := range rewriterRules {
		cfg := map[string]any{}
		if ruleOptions != nil {
			for k, v := range ruleOptions(r.Name()) {
				cfg[k] = v
			}
		}
		ctx := &visitor.CheckContext{FilePath: f.path, Source: source, Files: files, Symbols: table, Config: cfg}
		edits, failure := safeCheckRewriter(r, f.program, ctx)
		fr.Edits = append(fr.Edits, edits...)
		fr.Issues = append(fr.Issues, failure...)
	}

	merged, err := edit.Merge(fr.Edits)
	if err != nil {
		kept, dropped := edit.ResolveConflicts(fr.Edits)
		fr.Edits = kept
		for _, d := range dropped {
			fr.Issues = append(fr.Issues, issue.Issue{
				Identifier: "rewrite.conflict",
				Level:      0,
				Message:    fmt.Sprintf("%v: dropped conflicting edit %q", err, d.Message),
				File:       f.path,
				Line:       1,
				Column:     1,
			})
		}
	} else {
		fr.Edits = merged
	}
	return fr
}

func safeCheckAnalyzer(r analyzer.Rule, program *ast.Program, ctx *visitor.CheckContext) (issues []issue.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			issues = []issue.Issue{{
				Identifier: "rule.internalError",
				Level:      0,
				Message:    fmt.Sprintf("rule %s panicked: %v", r.ID(), rec),
				File:       ctx.FilePath,
				Line:       1,
				Column:     1,
			}}
		}
	}()
	return r.Check(program, ctx)
}

func safeCheckRewriter(r rewriter.Rule, program *ast.Program, ctx *visitor.CheckContext) (edits []edit.Edit, failure []issue.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Warningf("rewriter rule %s panicked on %s: %v", r.Name(), ctx.FilePath, rec)
			edits = nil
			failure = []issue.Issue{{
				Identifier: "rule.internalError",
				Level:      0,
				Message:    fmt.Sprintf("rule %s panicked: %v", r.Name(), rec),
				File:       ctx.FilePath,
				Line:       1,
				Column:     1,
			}}
		}
	}()
	return r.Check(program, ctx), nil
}

func applyEdits(path, source string, edits []edit.Edit) error {
	rewritten := edit.Apply(source, edits)
	return os.WriteFile(path, []byte(rewritten), 0o644)
}
