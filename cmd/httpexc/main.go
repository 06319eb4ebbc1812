// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command httpexc inspects exception resolution and rendering, and serves
// demo endpoints behind the recovery middleware.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/stacklok/httpexc/cmd/httpexc/commands"
	"github.com/stacklok/httpexc/env"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("httpexc"),
		kong.Description("Resolve, upgrade and render HTTP exceptions."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	g := &commands.Globals{
		Out: os.Stdout,
		Err: os.Stderr,
		Env: &env.OSReader{},
	}
	ctx.FatalIfErrorf(cli.Setup(g))
	ctx.FatalIfErrorf(ctx.Run(g))
}
