// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/stacklok/httpexc/httperr"
)

// StatusCmd implements the 'status' command.
type StatusCmd struct {
	Codes []int `arg:"" optional:"" help:"Status codes to look up (default: all)"`
}

// Run prints "code<TAB>reason" lines.
func (s *StatusCmd) Run(g *Globals) error {
	codes := s.Codes
	if len(codes) == 0 {
		codes = slices.Sorted(maps.Keys(httperr.StatusReasons()))
	}
	for _, code := range codes {
		fmt.Fprintf(g.Out, "%d\t%s\n", code, httperr.StatusText(code))
	}
	return nil
}
