// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package commands implements the httpexc command line.
package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/stacklok/httpexc/config"
	"github.com/stacklok/httpexc/env"
	"github.com/stacklok/httpexc/logging"
	"github.com/stacklok/httpexc/metrics"
	"github.com/stacklok/httpexc/upgrade"
)

// Globals is the state shared by every command.
type Globals struct {
	Out io.Writer
	Err io.Writer
	Env env.Reader

	Config *config.Config
	Logger *slog.Logger
}

// Upgrader returns an upgrader built from the loaded configuration.
func (g *Globals) Upgrader(m *metrics.Collector) *upgrade.Upgrader {
	return g.Config.Upgrader(g.Logger, m)
}

// CLI is the command line definition.
type CLI struct {
	Config  string           `short:"c" type:"path" help:"Configuration file path (default: XDG config file)"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Resolve ResolveCmd `cmd:"" help:"Resolve legacy exception names to types"`
	Upgrade UpgradeCmd `cmd:"" help:"Upgrade a legacy exception name and value"`
	Render  RenderCmd  `cmd:"" help:"Render an exception as an HTTP response"`
	Status  StatusCmd  `cmd:"" help:"List the status reason table"`
	Check   CheckCmd   `cmd:"" help:"Validate and print the effective configuration"`
	Serve   ServeCmd   `cmd:"" help:"Serve demo endpoints behind the recovery middleware"`
}

// Setup loads the configuration and builds the logger into g.
func (c *CLI) Setup(g *Globals) error {
	var (
		cfg *config.Config
		err error
	)
	if c.Config != "" {
		cfg, err = config.Load(c.Config)
		if err == nil {
			err = cfg.ApplyEnv(g.Env)
		}
	} else {
		cfg, err = config.LoadDefault(g.Env)
	}
	if err != nil {
		return err
	}

	if c.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := cfg.Logger(logging.WithOutput(g.Err))
	if err != nil {
		return err
	}

	g.Config = cfg
	g.Logger = logger
	return nil
}
