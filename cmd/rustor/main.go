// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The program rustor analyzes and rewrites source files against a
// configurable set of analyzer and rewriter rules.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"flag"
	log "github.com/golang/glog"
	"github.com/google/subcommands"

	"github.com/borisyanez/rustor-sub001/internal/cli"
	"github.com/borisyanez/rustor-sub001/internal/version"
)

const groupOther = "working with this tool"

func main() {
	ctx := context.Background()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	defaultExplain := commander.Explain
	commander.Explain = func(w io.Writer) {
		fmt.Fprintf(w, "rustor analyzes and rewrites source files against a configurable rule set.\n\n")
		defaultExplain(w)
	}

	commander.Register(commander.HelpCommand(), groupOther)
	commander.Register(commander.FlagsCommand(), groupOther)
	commander.Register(version.Command(), groupOther)

	const groupAnalyze = "analyzing and rewriting source files"
	parser := unimplementedParser{}
	commander.Register(cli.NewAnalyzeCmd(parser), groupAnalyze)
	commander.Register(cli.NewFixCmd(parser), groupAnalyze)

	flag.Usage = func() {
		commander.HelpCommand().Execute(ctx, flag.CommandLine)
	}

	flag.Parse()

	code := int(commander.Execute(ctx))
	log.Flush()
	os.Exit(code)
}
