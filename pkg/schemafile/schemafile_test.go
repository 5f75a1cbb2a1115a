// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/yeetrun/argv/pkg/cli"
)

const tomlSchema = `
name = "fluent"
description = "The Fluent compiler"
requires = ">= 0.1.0"
padding = 18

[[flags]]
name = "help"
shortcut = "h"
type = "static"
description = "Show this help"

[[flags]]
name = "out"
shortcut = "o"
type = "string"
description = "Output file"
required = true

[[flags]]
name = "jobs"
type = "integer"
description = "Parallel jobs"
`

const yamlSchema = `
name: fluent
description: The Fluent compiler
requires: ">= 0.1.0"
padding: 18
flags:
  - name: help
    shortcut: h
    type: static
    description: Show this help
  - name: out
    shortcut: o
    type: string
    description: Output file
    required: true
  - name: jobs
    type: integer
    description: Parallel jobs
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func flagsOf(t *testing.T, f *File) []cli.Flag {
	t.Helper()
	s, err := f.Schema()
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	var out []cli.Flag
	for _, fl := range s.All() {
		out = append(out, *fl)
	}
	return out
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path           string
		wantFormat     Format
		wantCompressed bool
		wantErr        bool
	}{
		{path: "flags.toml", wantFormat: FormatTOML},
		{path: "dir/flags.YAML", wantFormat: FormatYAML},
		{path: "flags.yml", wantFormat: FormatYAML},
		{path: "flags.toml.zst", wantFormat: FormatTOML, wantCompressed: true},
		{path: "flags.yaml.zst", wantFormat: FormatYAML, wantCompressed: true},
		{path: "flags.json", wantErr: true},
		{path: "flags.zst", wantErr: true},
	}
	for _, tt := range tests {
		format, compressed, err := FormatForPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if format != tt.wantFormat || compressed != tt.wantCompressed {
			t.Errorf("FormatForPath(%q) = %q, %v; want %q, %v", tt.path, format, compressed, tt.wantFormat, tt.wantCompressed)
		}
	}
}

func TestLoadTOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := Load(writeFile(t, "flags.toml", tomlSchema))
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	fromYAML, err := Load(writeFile(t, "flags.yaml", yamlSchema))
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("toml and yaml files differ (-toml +yaml):\n%s", diff)
	}

	want := []cli.Flag{
		{Name: "help", Kind: cli.KindStatic, Shortcut: "h", Description: "Show this help"},
		{Name: "out", Kind: cli.KindString, Shortcut: "o", Description: "Output file", Required: true},
		{Name: "jobs", Kind: cli.KindInteger, Description: "Parallel jobs"},
	}
	if diff := cmp.Diff(want, flagsOf(t, fromTOML)); diff != "" {
		t.Errorf("schema mismatch (-want +got):\n%s", diff)
	}

	cfg := fromTOML.HelpConfig()
	if cfg.Name != "fluent" || cfg.Description != "The Fluent compiler" || cfg.Padding != 18 {
		t.Errorf("HelpConfig = %+v", cfg)
	}
}

func TestLoadCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.toml.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := enc.Write([]byte(tomlSchema)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "fluent" || len(got.Flags) != 3 {
		t.Errorf("Load = %+v, want the fluent schema", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
	if _, err := Load(writeFile(t, "flags.json", "{}")); err == nil {
		t.Error("Load(.json) succeeded")
	}
	if _, err := Load(writeFile(t, "flags.toml", "name = \"x\"\ncolour = true\n")); err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("Load(unknown toml key) error = %v, want it to name the key", err)
	}
	if _, err := Load(writeFile(t, "flags.yaml", "name: x\ncolour: true\n")); err == nil {
		t.Error("Load(unknown yaml key) succeeded")
	}
	if _, err := Load(writeFile(t, "flags.yaml", "")); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("Load(empty yaml) error = %v, want empty schema error", err)
	}
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags []FlagEntry
		want  string
	}{
		{name: "no name", flags: []FlagEntry{{Type: "static"}}, want: "no name"},
		{name: "dashed name", flags: []FlagEntry{{Name: "--out"}}, want: "without dashes"},
		{name: "dashed shortcut", flags: []FlagEntry{{Name: "out", Shortcut: "-o"}}, want: "without dashes"},
		{name: "bad type", flags: []FlagEntry{{Name: "out", Type: "float"}}, want: "unknown flag type"},
		{name: "duplicate", flags: []FlagEntry{{Name: "out"}, {Name: "out"}}, want: "declared twice"},
		{name: "shortcut conflict", flags: []FlagEntry{{Name: "out", Shortcut: "o"}, {Name: "open", Shortcut: "o"}}, want: "conflicts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Name: "x", Flags: tt.flags}
			_, err := f.Schema()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Schema error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		requires string
		tool     string
		wantErr  bool
	}{
		{requires: "", tool: "anything"},
		{requires: ">= 0.1.0", tool: "0.2.0"},
		{requires: "^1.2", tool: "1.4.0"},
		{requires: "^1.2", tool: "2.0.0", wantErr: true},
		{requires: ">= 0.3.0", tool: "0.2.9", wantErr: true},
		{requires: "not a constraint", tool: "1.0.0", wantErr: true},
		{requires: ">= 0.1.0", tool: "dev", wantErr: true},
	}
	for _, tt := range tests {
		err := (&File{Requires: tt.requires}).CheckVersion(tt.tool)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckVersion(%q, %q) error = %v, wantErr %v", tt.requires, tt.tool, err, tt.wantErr)
		}
	}
}
