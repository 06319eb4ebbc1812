// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/stacklok/httpexc/upgrade"
)

// UpgradeCmd implements the 'upgrade' command.
type UpgradeCmd struct {
	Name  string `arg:"" help:"Legacy exception name"`
	Value string `arg:"" optional:"" help:"Exception value"`
}

// Run prints the upgraded type and value.
func (u *UpgradeCmd) Run(g *Globals) error {
	t, v := g.Upgrader(nil).Upgrade(upgrade.Named(u.Name), u.Value)
	fmt.Fprintf(g.Out, "%s\t%v\n", t, v)
	return nil
}
