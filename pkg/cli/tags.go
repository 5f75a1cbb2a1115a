// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/yeetrun/argv/pkg/textutil"
)

type fieldFlag struct {
	index      int
	name       string
	kind       Kind
	shortcut   string
	help       string
	required   bool
	defaultVal string
}

func structType(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cli: %T is not a struct", v)
	}
	return t, nil
}

func kindOf(t reflect.Type) (Kind, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return KindStatic, true
	case reflect.String:
		return KindString, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInteger, true
	}
	return 0, false
}

// extractFieldFlags reads the flag, short, help, required and default tags
// of every exported field. Fields without a flag tag use their lowercased
// name.
func extractFieldFlags(t reflect.Type) ([]fieldFlag, error) {
	var out []fieldFlag
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		kind, ok := kindOf(field.Type)
		if !ok {
			return nil, fmt.Errorf("cli: field %s: unsupported flag type %s", field.Name, field.Type)
		}
		ff := fieldFlag{
			index:      i,
			name:       name,
			kind:       kind,
			shortcut:   field.Tag.Get("short"),
			help:       field.Tag.Get("help"),
			defaultVal: field.Tag.Get("default"),
		}
		if req := field.Tag.Get("required"); req != "" {
			b, err := strconv.ParseBool(req)
			if err != nil {
				return nil, fmt.Errorf("cli: field %s: invalid required tag %q", field.Name, req)
			}
			ff.required = b
		}
		out = append(out, ff)
	}
	return out, nil
}

// SchemaFromStruct declares one flag per exported field of v, which must be
// a struct or a pointer to one:
//
//	type Flags struct {
//	    Help   bool   `flag:"help" short:"h" help:"Show this help"`
//	    Out    string `flag:"out" short:"o" help:"Output file" required:"true"`
//	    Jobs   int    `flag:"jobs" short:"j" help:"Parallel jobs" default:"4"`
//	}
//
// bool fields are static flags, string fields string flags and signed
// integer fields integer flags.
func SchemaFromStruct(v any) (*Schema, error) {
	t, err := structType(v)
	if err != nil {
		return nil, err
	}
	fields, err := extractFieldFlags(t)
	if err != nil {
		return nil, err
	}
	s := NewSchema()
	for _, ff := range fields {
		if _, dup := s.Get(ff.name); dup {
			return nil, fmt.Errorf("cli: flag %q declared twice", ff.name)
		}
		s.Add(ff.name, Flag{
			Kind:        ff.kind,
			Description: ff.help,
			Shortcut:    ff.shortcut,
			Required:    ff.required,
		})
	}
	return s, nil
}

// Bind copies a successful Result into dst, a pointer to the struct the
// schema was built from. Flags that were not given take the field's default
// tag when it has one and are otherwise left alone.
func Bind(res Result, dst any) error {
	if !res.Success {
		if res.Err != nil {
			return fmt.Errorf("cli: cannot bind failed parse: %w", res.Err)
		}
		return errors.New("cli: cannot bind failed parse")
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cli: Bind needs a non-nil struct pointer, got %T", dst)
	}
	sv := rv.Elem()
	fields, err := extractFieldFlags(sv.Type())
	if err != nil {
		return err
	}
	for _, ff := range fields {
		field := sv.Field(ff.index)
		switch ff.kind {
		case KindStatic:
			if res.Bool(ff.name) {
				field.SetBool(true)
			} else if ff.defaultVal != "" {
				b, err := strconv.ParseBool(ff.defaultVal)
				if err != nil {
					return fmt.Errorf("cli: flag %q: invalid default %q", ff.name, ff.defaultVal)
				}
				field.SetBool(b)
			}
		case KindString:
			if v, ok := res.Lookup(ff.name); ok {
				field.SetString(v)
			} else if ff.defaultVal != "" {
				field.SetString(ff.defaultVal)
			}
		case KindInteger:
			v, ok := res.Int(ff.name)
			if !ok {
				if ff.defaultVal == "" {
					continue
				}
				if v, err = textutil.ParseInt(ff.defaultVal); err != nil {
					return fmt.Errorf("cli: flag %q: invalid default: %w", ff.name, err)
				}
			}
			if field.OverflowInt(v) {
				return fmt.Errorf("cli: flag --%s: value %d overflows %s", ff.name, v, field.Type())
			}
			field.SetInt(v)
		}
	}
	return nil
}
