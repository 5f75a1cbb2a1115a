// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argv checks argument vectors against a flag schema file and prints
// the schema's help text.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/yeetrun/argv/pkg/cli"
	"github.com/yeetrun/argv/pkg/report"
	"github.com/yeetrun/argv/pkg/schemafile"
	"github.com/yeetrun/argv/pkg/tui"
	"tailscale.com/util/must"
)

var version = "0.1.0"

const (
	exitOK    = 0
	exitErr   = 1
	exitUsage = 2
)

// schemaEnv names a schema file used when --schema is not given.
const schemaEnv = "ARGV_SCHEMA"

type flags struct {
	Help    bool   `flag:"help" short:"h" help:"Show this help"`
	Schema  string `flag:"schema" short:"s" help:"Schema file (.toml, .yaml or .yml, optionally .zst)" required:"true"`
	Args    string `flag:"args" short:"a" help:"Arguments to check, shell quoted, without the program name"`
	Format  string `flag:"format" short:"f" help:"Output format: text, json or yaml" default:"text"`
	Padding int    `flag:"padding" short:"p" help:"Flag column width for --usage"`
	Usage   bool   `flag:"usage" short:"u" help:"Print the schema's help instead of parsing"`
	NoColor bool   `flag:"no-color" short:"n" help:"Disable colored output"`
}

var (
	toolSchema   = must.Get(cli.SchemaFromStruct(flags{}))
	toolResolved = must.Get(cli.Resolve(toolSchema))
)

var newColorizer = tui.NewColorizer

// noColorRequested reports whether --no-color appears among args as a flag,
// for invocations that fail to parse.
func noColorRequested(args []string) bool {
	for i := 1; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], "-")
		if !ok {
			continue
		}
		f, ok := toolResolved.Lookup(strings.TrimPrefix(name, "-"))
		switch {
		case !ok:
		case f.Kind != cli.KindStatic:
			i++ // value
		case f.Name == "no-color":
			return true
		}
	}
	return false
}

func toolHelp(color tui.Colorizer) cli.HelpConfig {
	return cli.HelpConfig{
		Name:        "argv",
		Description: fmt.Sprintf("check arguments against a flag schema (version %s)", version),
		Color:       color,
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "argv: ", 0)

	if path := os.Getenv(schemaEnv); path != "" && len(args) > 0 {
		// An explicit --schema comes later and wins.
		args = append([]string{args[0], "--schema", path}, args[1:]...)
	}
	res := cli.Parse(args, toolResolved)

	var f flags
	if res.Success {
		if err := cli.Bind(res, &f); err != nil {
			logger.Print(err)
			return exitErr
		}
	}
	noColor := f.NoColor
	if !res.Success {
		noColor = noColorRequested(args)
	}
	color := newColorizer(!noColor)

	if !res.Success {
		if !errors.Is(res.Err, cli.ErrNoArgs) {
			fmt.Fprintf(stderr, "%s %v\n\n", color.Error("error:"), res.Err)
		}
		fmt.Fprint(stderr, cli.GenerateHelp(toolHelp(color), toolSchema))
		return exitUsage
	}
	if f.Help {
		fmt.Fprint(stdout, cli.GenerateHelp(toolHelp(color), toolSchema))
		return exitOK
	}

	format, err := report.ParseFormat(f.Format)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	file, err := schemafile.Load(f.Schema)
	if err != nil {
		logger.Print(err)
		return exitErr
	}
	if err := file.CheckVersion(version); err != nil {
		logger.Printf("%s: %v", f.Schema, err)
		return exitErr
	}
	schema, err := file.Schema()
	if err != nil {
		logger.Printf("%s: %v", f.Schema, err)
		return exitErr
	}

	helpCfg := file.HelpConfig()
	helpCfg.Color = color
	if f.Padding > 0 {
		helpCfg.Padding = f.Padding
	}
	if f.Usage {
		fmt.Fprint(stdout, cli.GenerateHelp(helpCfg, schema))
		return exitOK
	}

	words, err := shlex.Split(f.Args)
	if err != nil {
		logger.Printf("bad --args: %v", err)
		return exitUsage
	}
	target := cli.ParseSchema(append([]string{file.Name}, words...), schema)
	if err := report.Write(stdout, target, format); err != nil {
		logger.Print(err)
		return exitErr
	}
	if format == report.FormatText {
		switch {
		case !target.Success:
			fmt.Fprintln(stderr)
			fmt.Fprint(stderr, cli.GenerateHelp(helpCfg, schema))
		case target.Bool(cli.HelpFlag):
			fmt.Fprintln(stdout)
			fmt.Fprint(stdout, cli.GenerateHelp(helpCfg, schema))
		}
	}
	if !target.Success {
		return exitErr
	}
	return exitOK
}
