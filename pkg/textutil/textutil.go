// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textutil holds the small text primitives shared by the flag parser
// and the help renderer.
package textutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrInvalidInteger = errors.New("invalid integer")

// ParseInt decodes a base-10 integer literal with an optional sign. Unlike
// strconv.ParseInt with base 0 it rejects prefixes and underscores, so "0x10"
// and "1_000" are errors.
func ParseInt(text string) (int64, error) {
	digits := strings.TrimLeft(text, "+-")
	if digits == "" || len(text)-len(digits) > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, text)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, text)
		}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidInteger, text, errors.Unwrap(err))
	}
	return v, nil
}

// Pad left-aligns text in a column of the given width, counted in runes. Text that already
// fills the column is followed by a single space so it never runs into the
// next column.
func Pad(text string, width int) string {
	if utf8.RuneCountInString(text) >= width {
		return text + " "
	}
	return fmt.Sprintf("%-*s", width, text)
}
