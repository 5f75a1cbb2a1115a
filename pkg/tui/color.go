// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	styleHeader = color.New(color.Bold)
	styleFlag   = color.New(color.FgCyan)
	styleError  = color.New(color.FgRed, color.Bold)
	styleDim    = color.New(color.FgHiBlack)
)

func init() {
	// Colorizer decides on its own whether to style; keep the package-level
	// styles from second-guessing it.
	for _, c := range []*color.Color{styleHeader, styleFlag, styleError, styleDim} {
		c.EnableColor()
	}
}

var isTerminalFn = term.IsTerminal

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer only when enabled is set, stdout
// is a terminal, and neither NO_COLOR nor a dumb TERM asks otherwise.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	if !isTerminalFn(int(os.Stdout.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) wrap(style *color.Color, text string) string {
	if !c.Enabled || text == "" {
		return text
	}
	return style.Sprint(text)
}

func (c Colorizer) Header(text string) string { return c.wrap(styleHeader, text) }
func (c Colorizer) Flag(text string) string   { return c.wrap(styleFlag, text) }
func (c Colorizer) Error(text string) string  { return c.wrap(styleError, text) }
func (c Colorizer) Dim(text string) string    { return c.wrap(styleDim, text) }
