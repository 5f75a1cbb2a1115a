// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/argv/pkg/textutil"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// HelpFlag is the reserved static flag that switches off required-flag
// checks.
const HelpFlag = "help"

// Sentinel errors carried in Result.Err. Match them with errors.Is.
var (
	ErrNoArgs           = errors.New("no arguments")
	ErrSyntax           = errors.New("malformed flag")
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrMissingValue     = errors.New("flag needs a value")
	ErrBadInteger       = errors.New("invalid integer value")
	ErrNoFlags          = errors.New("no flags given")
	ErrRequiredFlag     = errors.New("missing required flag")
	ErrShortcutConflict = errors.New("shortcut conflict")
)

// SyntaxError is returned for an argument that is not "-x" or "--name" where
// a flag was expected.
type SyntaxError struct {
	Arg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed flag: %q", e.Arg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// UnknownFlagError is returned when a flag is not declared in the schema.
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Flag)
}

func (e *UnknownFlagError) Unwrap() error { return ErrUnknownFlag }

// ValueError is returned when an integer flag's value does not decode.
type ValueError struct {
	Flag  string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for flag --%s", e.Value, e.Flag)
}

func (e *ValueError) Unwrap() []error { return []error{ErrBadInteger, e.Err} }

// MissingValueError is returned when the arguments end right after a flag
// that takes a value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("flag needs a value: --%s", e.Flag)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// RequiredFlagError names the first required flag that was not given.
type RequiredFlagError struct {
	Flag string
}

func (e *RequiredFlagError) Error() string {
	return fmt.Sprintf("missing required flag: --%s", e.Flag)
}

func (e *RequiredFlagError) Unwrap() error { return ErrRequiredFlag }

// Result is the outcome of one Parse call. All keys are canonical long
// names. When Success is false the containers are empty and Err says why.
type Result struct {
	Booleans set.Set[string]
	Strings  map[string]string
	Integers map[string]int64
	Success  bool
	Err      error
}

// Bool reports whether the static flag name was given.
func (r Result) Bool(name string) bool {
	return r.Booleans.Contains(name)
}

// Lookup returns the value of the string flag name.
func (r Result) Lookup(name string) (string, bool) {
	v, ok := r.Strings[name]
	return v, ok
}

// Int returns the value of the integer flag name.
func (r Result) Int(name string) (int64, bool) {
	v, ok := r.Integers[name]
	return v, ok
}

func (r Result) has(f *Flag) bool {
	switch f.Kind {
	case KindStatic:
		return r.Booleans.Contains(f.Name)
	case KindString:
		_, ok := r.Strings[f.Name]
		return ok
	case KindInteger:
		_, ok := r.Integers[f.Name]
		return ok
	}
	return false
}

func failed(err error) Result {
	return Result{Err: err}
}

// flagName returns the name referenced by a "-x" or "--name" argument.
func flagName(arg string) (string, error) {
	switch {
	case strings.HasPrefix(arg, "--"):
		if len(arg) == 2 {
			return "", &SyntaxError{Arg: arg}
		}
		return arg[2:], nil
	case strings.HasPrefix(arg, "-"):
		if utf8.RuneCountInString(arg[1:]) != 1 {
			return "", &SyntaxError{Arg: arg}
		}
		return arg[1:], nil
	}
	return "", &SyntaxError{Arg: arg}
}

// Parse reads argv against r in a single pass. argv[0] is the program name
// and is skipped. Static flags take no value; string and integer flags take
// the next argument whatever it looks like.
//
// Required flags are enforced unless the static "help" flag was given.
func Parse(argv []string, r *Resolved) Result {
	if len(argv) <= 1 {
		return failed(ErrNoArgs)
	}

	var (
		res     Result
		pending *Flag // flag waiting for its value
	)
	for _, arg := range argv[1:] {
		if pending != nil {
			if pending.Kind == KindInteger {
				v, err := textutil.ParseInt(arg)
				if err != nil {
					return failed(&ValueError{Flag: pending.Name, Value: arg, Err: err})
				}
				mak.Set(&res.Integers, pending.Name, v)
			} else {
				mak.Set(&res.Strings, pending.Name, arg)
			}
			pending = nil
			continue
		}

		name, err := flagName(arg)
		if err != nil {
			return failed(err)
		}
		f, ok := r.Lookup(name)
		if !ok {
			return failed(&UnknownFlagError{Flag: arg})
		}
		if f.Kind != KindStatic {
			pending = f
			continue
		}
		if res.Booleans == nil {
			res.Booleans = make(set.Set[string])
		}
		res.Booleans.Add(f.Name)
	}

	if pending != nil {
		return failed(&MissingValueError{Flag: pending.Name})
	}
	if len(res.Booleans) == 0 && len(res.Strings) == 0 && len(res.Integers) == 0 {
		return failed(ErrNoFlags)
	}
	if !res.Booleans.Contains(HelpFlag) {
		for _, f := range r.Flags() {
			if f.Required && !res.has(f) {
				return failed(&RequiredFlagError{Flag: f.Name})
			}
		}
	}
	res.Success = true
	return res
}

// ParseSchema resolves s and parses argv against it. Callers parsing more
// than once should Resolve once and call Parse instead.
func ParseSchema(argv []string, s *Schema) Result {
	r, err := Resolve(s)
	if err != nil {
		return failed(err)
	}
	return Parse(argv, r)
}
