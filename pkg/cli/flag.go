// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

//go:generate go run tailscale.com/cmd/cloner -type=Flag

// Kind is the value type of a flag.
type Kind int

const (
	// KindStatic is a presence switch that takes no value.
	KindStatic Kind = iota
	// KindString consumes the next argument verbatim.
	KindString
	// KindInteger consumes the next argument as a base-10 integer.
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps the names used in schema files to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static", "bool", "boolean", "":
		return KindStatic, nil
	case "string", "str":
		return KindString, nil
	case "integer", "int":
		return KindInteger, nil
	}
	return 0, fmt.Errorf("unknown flag type %q (want static, string or integer)", s)
}

// Flag describes one declared flag.
type Flag struct {
	// Name is the canonical long name. Schema.Add and Resolve fill it in.
	Name        string
	Kind        Kind
	Description string
	// Shortcut is the alternate, usually single character, name. Empty
	// means the flag has none.
	Shortcut string
	Required bool
}

// isAlias reports whether the table entry key is a shortcut entry for f
// rather than its canonical entry.
func isAlias(key string, f *Flag) bool {
	return f.Shortcut != "" && key == f.Shortcut && key != f.Name
}

// canonical yields the entries of t that are not shortcut aliases. An entry
// keyed by its own shortcut is only an alias when the same descriptor is also
// stored under another key; otherwise it is the flag's only entry.
func canonical(t Entries) iter.Seq2[string, *Flag] {
	return func(yield func(string, *Flag) bool) {
		refs := make(map[*Flag]int)
		for _, f := range t.All() {
			refs[f]++
		}
		for key, f := range t.All() {
			if f == nil || (isAlias(key, f) && refs[f] > 1) {
				continue
			}
			if !yield(key, f) {
				return
			}
		}
	}
}

// Entries is an ordered flag table that can be rendered as help.
type Entries interface {
	All() iter.Seq2[string, *Flag]
}

// Schema is the caller-owned set of declared flags, kept in declaration
// order. The zero value is ready to use.
type Schema struct {
	m *orderedmap.OrderedMap[string, *Flag]
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{m: orderedmap.New[string, *Flag]()}
}

func (s *Schema) entries() *orderedmap.OrderedMap[string, *Flag] {
	if s.m == nil {
		s.m = orderedmap.New[string, *Flag]()
	}
	return s.m
}

// Add declares a flag under its long name and returns the stored
// descriptor. It panics on an empty, dashed or duplicate name, since those
// are programming errors in the schema itself.
func (s *Schema) Add(name string, f Flag) *Flag {
	if name == "" || strings.HasPrefix(name, "-") {
		panic(fmt.Sprintf("cli: invalid flag name %q", name))
	}
	if _, ok := s.entries().Get(name); ok {
		panic(fmt.Sprintf("cli: flag %q declared twice", name))
	}
	f.Name = name
	if f.Shortcut == name {
		f.Shortcut = ""
	}
	p := &f
	s.entries().Set(name, p)
	return p
}

// Set stores f under key as is. It is how callers add extra entries, such as
// a shortcut key pointing at an already declared descriptor.
func (s *Schema) Set(key string, f *Flag) {
	s.entries().Set(key, f)
}

// Get returns the entry stored under key.
func (s *Schema) Get(key string) (*Flag, bool) {
	if s == nil || s.m == nil {
		return nil, false
	}
	return s.m.Get(key)
}

// Len reports the number of entries, aliases included.
func (s *Schema) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// All yields every entry, aliases included, in insertion order.
func (s *Schema) All() iter.Seq2[string, *Flag] {
	return func(yield func(string, *Flag) bool) {
		if s == nil || s.m == nil {
			return
		}
		for p := s.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ShortcutConflictError reports a shortcut that is already taken by another
// flag's name or shortcut.
type ShortcutConflictError struct {
	Shortcut string
	Flag     string
	Other    string
}

func (e *ShortcutConflictError) Error() string {
	return fmt.Sprintf("shortcut -%s of --%s conflicts with --%s", e.Shortcut, e.Flag, e.Other)
}

func (e *ShortcutConflictError) Unwrap() error {
	return ErrShortcutConflict
}

// Resolved is a lookup table built from a Schema by Resolve. Each flag is
// reachable under its long name and its shortcut, and both keys hold the same
// descriptor. A Resolved is never modified after Resolve returns.
type Resolved struct {
	m     *orderedmap.OrderedMap[string, *Flag]
	flags []*Flag
}

// Resolve widens s into a new table that also answers shortcut lookups. The
// descriptors are copied, so s and the flags it points to are left untouched.
// Entries of s that are shortcut aliases are folded into their flag. A flag
// stored only under its shortcut is taken as a long name with no shortcut.
func Resolve(s *Schema) (*Resolved, error) {
	r := &Resolved{m: orderedmap.New[string, *Flag]()}
	for key, f := range canonical(s) {
		c := f.Clone()
		c.Name = key
		if c.Shortcut == key {
			c.Shortcut = ""
		}
		r.m.Set(key, c)
		r.flags = append(r.flags, c)
	}
	for _, c := range r.flags {
		if c.Shortcut == "" {
			continue
		}
		if other, ok := r.m.Get(c.Shortcut); ok && other != c {
			return nil, &ShortcutConflictError{Shortcut: c.Shortcut, Flag: c.Name, Other: other.Name}
		}
		r.m.Set(c.Shortcut, c)
	}
	return r, nil
}

// Lookup finds a flag by long name or shortcut.
func (r *Resolved) Lookup(name string) (*Flag, bool) {
	if r == nil {
		return nil, false
	}
	return r.m.Get(name)
}

// Flags returns the canonical descriptors in declaration order.
func (r *Resolved) Flags() []*Flag {
	if r == nil {
		return nil
	}
	return slices.Clone(r.flags)
}

// All yields long-name entries in declaration order followed by the shortcut
// entries.
func (r *Resolved) All() iter.Seq2[string, *Flag] {
	return func(yield func(string, *Flag) bool) {
		if r == nil {
			return
		}
		for p := r.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
