// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools keeps the generators this module runs out of band in go.mod:
// addlicense for source headers and cloner for cli.Flag.Clone.
package tools

import (
	_ "github.com/google/addlicense"
	_ "tailscale.com/cmd/cloner"
)
