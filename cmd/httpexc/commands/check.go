// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CheckCmd implements the 'check' command. Loading already validated the
// configuration; Run prints the effective settings.
type CheckCmd struct{}

// Run prints the effective configuration as YAML.
func (*CheckCmd) Run(g *Globals) error {
	if err := g.Config.Validate(); err != nil {
		return err
	}
	out, err := yaml.Marshal(g.Config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = g.Out.Write(out)
	return err
}
