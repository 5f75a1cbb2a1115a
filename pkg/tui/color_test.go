// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"strings"
	"testing"
)

func withTerminal(t *testing.T, isTerm bool) {
	t.Helper()
	old := isTerminalFn
	isTerminalFn = func(int) bool { return isTerm }
	t.Cleanup(func() { isTerminalFn = old })
}

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		isTerm  bool
		want    bool
	}{
		{name: "disabled by caller", enabled: false, term: "xterm", isTerm: true, want: false},
		{name: "enabled on terminal", enabled: true, term: "xterm-256color", isTerm: true, want: true},
		{name: "NO_COLOR set", enabled: true, noColor: "1", term: "xterm", isTerm: true, want: false},
		{name: "dumb terminal", enabled: true, term: "dumb", isTerm: true, want: false},
		{name: "no TERM", enabled: true, term: "", isTerm: true, want: false},
		{name: "not a terminal", enabled: true, term: "xterm", isTerm: false, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			withTerminal(t, tt.isTerm)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Errorf("NewColorizer(%v).Enabled = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}

func TestColorizerWrap(t *testing.T) {
	plain := Colorizer{}
	if got := plain.Header("AVAILABLE FLAGS:"); got != "AVAILABLE FLAGS:" {
		t.Errorf("disabled Header = %q, want unchanged text", got)
	}

	on := Colorizer{Enabled: true}
	got := on.Error("boom")
	if got == "boom" || !strings.Contains(got, "boom") {
		t.Errorf("enabled Error = %q, want styled text containing %q", got, "boom")
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("enabled Error = %q, want trailing reset sequence", got)
	}
	if got := on.Flag(""); got != "" {
		t.Errorf("enabled Flag(\"\") = %q, want empty", got)
	}
}
