// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesScalarsAndLists(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "rustor.yaml", `
level: 5
paths: [src, lib]
excludes: ["vendor/*"]
reportUnmatchedIgnoredErrors: true
ignoreErrors:
  - message: "deprecated"
    count: 2
    path: legacy.php
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level != 5 {
		t.Errorf("Level = %d, want 5", cfg.Level)
	}
	if len(cfg.Paths) != 2 || cfg.Paths[0] != "src" {
		t.Errorf("Paths = %v", cfg.Paths)
	}
	if !cfg.ReportUnmatchedIgnoredErrors {
		t.Error("ReportUnmatchedIgnoredErrors = false, want true")
	}
	if len(cfg.IgnoreErrors) != 1 || cfg.IgnoreErrors[0].Count != 2 {
		t.Errorf("IgnoreErrors = %+v", cfg.IgnoreErrors)
	}
}

func TestLoadMergesIncludesWithOverrideWinning(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", `
level: 3
paths: [base-src]
rules:
  rename-constant:
    from: OLD
    to: NEW
`)
	path := writeYAML(t, dir, "project.yaml", `
includes: [base.yaml]
level: 7
paths: [project-src]
rules:
  rename-constant:
    to: NEWEST
  strpos-to-str-contains:
    enabled: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level != 7 {
		t.Errorf("Level = %d, want override's 7", cfg.Level)
	}
	if len(cfg.Paths) != 2 || cfg.Paths[0] != "base-src" || cfg.Paths[1] != "project-src" {
		t.Errorf("Paths = %v, want base then override appended", cfg.Paths)
	}
	renameOpts := cfg.RuleOptions("rename-constant")
	if renameOpts["from"] != "OLD" {
		t.Errorf("rename-constant.from = %v, want OLD carried from base", renameOpts["from"])
	}
	if renameOpts["to"] != "NEWEST" {
		t.Errorf("rename-constant.to = %v, want override's NEWEST", renameOpts["to"])
	}
	if cfg.RuleOptions("strpos-to-str-contains")["enabled"] != true {
		t.Error("expected strpos-to-str-contains.enabled from override")
	}
}

func TestLoadDetectsIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yaml", `includes: [b.yaml]`)
	writeYAML(t, dir, "b.yaml", `includes: [a.yaml]`)
	if _, err := Load(filepath.Join(dir, "a.yaml")); err == nil {
		t.Error("expected an error for a cyclic includes chain")
	}
}

func TestRuleOptionsOnNilConfig(t *testing.T) {
	var cfg *Config
	if got := cfg.RuleOptions("anything"); got != nil {
		t.Errorf("RuleOptions on nil config = %v, want nil", got)
	}
}
