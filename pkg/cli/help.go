// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/yeetrun/argv/pkg/textutil"
	"github.com/yeetrun/argv/pkg/tui"
)

// DefaultPadding is the width of the flag column in help output.
const DefaultPadding = 15

// HelpConfig holds the header and layout of the help text.
type HelpConfig struct {
	Name        string
	Description string
	// Padding is the flag column width. Zero means DefaultPadding.
	Padding int
	Color   tui.Colorizer
}

// GenerateHelp renders the help text for flags. Shortcut alias entries are
// skipped so each flag is listed once, in table order.
func GenerateHelp(config HelpConfig, flags Entries) string {
	var b strings.Builder

	b.WriteString(config.Name)
	b.WriteString(" - ")
	b.WriteString(config.Description)
	b.WriteString("\n\n")
	b.WriteString(config.Color.Header("AVAILABLE FLAGS:"))
	b.WriteString("\n")

	padding := config.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	if flags == nil {
		return b.String()
	}
	for key, f := range canonical(flags) {
		label := "--" + key
		if f.Shortcut != "" && f.Shortcut != key {
			label += ", -" + f.Shortcut
		}
		b.WriteString(config.Color.Flag(textutil.Pad(label, padding)))
		b.WriteString(f.Description)
		if f.Kind == KindString {
			b.WriteString(" (STRING)")
		}
		if f.Required {
			b.WriteString(" (REQUIRED)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PrintHelp writes the help text for flags to standard output.
func PrintHelp(config HelpConfig, flags Entries) {
	fmt.Fprint(os.Stdout, GenerateHelp(config, flags))
}
