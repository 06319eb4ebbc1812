// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/stacklok/httpexc/upgrade"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Names  []string `arg:"" help:"Exception names to resolve"`
	Strict bool     `help:"Fail when a name does not resolve"`
}

// Run prints one line per name.
func (r *ResolveCmd) Run(g *Globals) error {
	var missing int
	for _, name := range r.Names {
		t, ok := upgrade.ResolveExceptionType(name)
		if !ok {
			missing++
			fmt.Fprintf(g.Out, "%s\t(absent)\n", name)
			continue
		}
		fmt.Fprintf(g.Out, "%s\t%s\n", name, t)
	}

	if r.Strict && missing > 0 {
		return fmt.Errorf("%d of %d names did not resolve", missing, len(r.Names))
	}
	return nil
}
