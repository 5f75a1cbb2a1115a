// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report prints a parse result for people or for scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/argv/pkg/cli"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// Report is the serialized form of a cli.Result.
type Report struct {
	Success  bool              `json:"success" yaml:"success"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
	Booleans []string          `json:"booleans" yaml:"booleans"`
	Strings  map[string]string `json:"strings" yaml:"strings"`
	Integers map[string]int64  `json:"integers" yaml:"integers"`
}

func FromResult(res cli.Result) Report {
	r := Report{
		Success:  res.Success,
		Booleans: res.Booleans.Slice(),
		Strings:  make(map[string]string, len(res.Strings)),
		Integers: make(map[string]int64, len(res.Integers)),
	}
	if r.Booleans == nil {
		r.Booleans = []string{}
	}
	slices.Sort(r.Booleans)
	for k, v := range res.Strings {
		r.Strings[k] = v
	}
	for k, v := range res.Integers {
		r.Integers[k] = v
	}
	if res.Err != nil {
		r.Error = res.Err.Error()
	}
	return r
}

type row struct {
	name, kind, value string
}

func (r Report) rows() []row {
	var rows []row
	for _, name := range r.Booleans {
		rows = append(rows, row{name, cli.KindStatic.String(), "true"})
	}
	for name, v := range r.Strings {
		rows = append(rows, row{name, cli.KindString.String(), strconv.Quote(v)})
	}
	for name, v := range r.Integers {
		rows = append(rows, row{name, cli.KindInteger.String(), strconv.FormatInt(v, 10)})
	}
	slices.SortFunc(rows, func(a, b row) int {
		return strings.Compare(a.name, b.name)
	})
	return rows
}

// Write prints res to w in the given format.
func Write(w io.Writer, res cli.Result, format Format) error {
	r := FromResult(res)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, r)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SUCCESS\t%v\n", r.Success)
	if r.Error != "" {
		fmt.Fprintf(tw, "ERROR\t%s\n", r.Error)
	}
	if rows := r.rows(); len(rows) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FLAG\tTYPE\tVALUE")
		for _, row := range rows {
			fmt.Fprintf(tw, "--%s\t%s\t%s\n", row.name, row.kind, row.value)
		}
	}
	return tw.Flush()
}
