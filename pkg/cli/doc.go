// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli parses a flat list of command-line flags against a declared
// schema and renders the matching help text.
//
// A schema maps long names to flag descriptors. Each flag is static (a
// presence switch), a string, or an integer, and may have a shortcut and be
// required:
//
//	s := cli.NewSchema()
//	s.Add("help", cli.Flag{Kind: cli.KindStatic, Shortcut: "h", Description: "Show this help"})
//	s.Add("out", cli.Flag{Kind: cli.KindString, Shortcut: "o", Description: "Output file", Required: true})
//	s.Add("jobs", cli.Flag{Kind: cli.KindInteger, Shortcut: "j", Description: "Parallel jobs"})
//
//	r, err := cli.Resolve(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := cli.Parse(os.Args, r)
//	if !res.Success || res.Bool("help") {
//	    cli.PrintHelp(cli.HelpConfig{Name: "fluent", Description: "The Fluent compiler"}, s)
//	    os.Exit(2)
//	}
//
// # Grammar
//
// Every argument is either "-x" (a shortcut), "--name" (a long name) or the
// value of the string or integer flag right before it. There are no
// positional arguments, no "--name=value" form and no "--" separator. A
// failed parse reports Success false; Result.Err says why.
//
// # Help
//
// GenerateHelp lists one line per flag in declaration order:
//
//	fluent - The Fluent compiler
//
//	AVAILABLE FLAGS:
//	--help, -h     Show this help
//	--out, -o      Output file (STRING) (REQUIRED)
//	--jobs, -j     Parallel jobs
package cli
