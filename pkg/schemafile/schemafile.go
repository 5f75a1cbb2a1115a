// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads flag schemas declared in TOML or YAML files.
package schemafile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/klauspost/compress/zstd"
	"github.com/yeetrun/argv/pkg/cli"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const compressedExt = ".zst"

// File is the on-disk form of a schema plus the header used for its help.
type File struct {
	Name        string      `toml:"name" yaml:"name"`
	Description string      `toml:"description" yaml:"description"`
	Requires    string      `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Padding     int         `toml:"padding,omitempty" yaml:"padding,omitempty"`
	Flags       []FlagEntry `toml:"flags" yaml:"flags"`
}

type FlagEntry struct {
	Name        string `toml:"name" yaml:"name"`
	Shortcut    string `toml:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Type        string `toml:"type,omitempty" yaml:"type,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `toml:"required,omitempty" yaml:"required,omitempty"`
}

// FormatForPath picks the format from the file extension. A trailing .zst
// marks a zstd compressed file.
func FormatForPath(path string) (format Format, compressed bool, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == compressedExt {
		compressed = true
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	switch ext {
	case ".toml":
		return FormatTOML, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	}
	return "", false, fmt.Errorf("unsupported schema file extension %q (want .toml, .yaml or .yml)", ext)
}

// Load reads and decodes the schema file at path.
func Load(path string) (*File, error) {
	format, compressed, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	file, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}

// Decode reads a schema file in the given format. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty schema file")
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported schema format %q", format)
	}
	return &file, nil
}

// Schema builds the flag schema in file order and checks that it resolves.
func (f *File) Schema() (*cli.Schema, error) {
	s := cli.NewSchema()
	for i, e := range f.Flags {
		if e.Name == "" {
			return nil, fmt.Errorf("flag #%d has no name", i+1)
		}
		if strings.HasPrefix(e.Name, "-") || strings.HasPrefix(e.Shortcut, "-") {
			return nil, fmt.Errorf("flag %q: names are written without dashes", e.Name)
		}
		if _, dup := s.Get(e.Name); dup {
			return nil, fmt.Errorf("flag %q declared twice", e.Name)
		}
		kind, err := cli.ParseKind(e.Type)
		if err != nil {
			return nil, fmt.Errorf("flag %q: %w", e.Name, err)
		}
		s.Add(e.Name, cli.Flag{
			Kind:        kind,
			Description: e.Description,
			Shortcut:    e.Shortcut,
			Required:    e.Required,
		})
	}
	if _, err := cli.Resolve(s); err != nil {
		return nil, err
	}
	return s, nil
}

// HelpConfig returns the help header declared by the file.
func (f *File) HelpConfig() cli.HelpConfig {
	return cli.HelpConfig{
		Name:        f.Name,
		Description: f.Description,
		Padding:     f.Padding,
	}
}

// CheckVersion reports an error when the file's requires constraint does not
// accept the tool version.
func (f *File) CheckVersion(tool string) error {
	if f.Requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(f.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", f.Requires, err)
	}
	v, err := semver.NewVersion(tool)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", tool, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("schema requires argv %s, this is %s", f.Requires, v)
	}
	return nil
}
