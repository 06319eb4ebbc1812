// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/stacklok/httpexc/httperr"
	"github.com/stacklok/httpexc/upgrade"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Name      string            `arg:"" help:"Exception name, e.g. NotFound"`
	Message   string            `arg:"" optional:"" help:"Exception message"`
	Status    int               `short:"s" help:"Override the status code"`
	Title     string            `help:"Error page title"`
	Detail    string            `help:"Error page detail HTML"`
	Body      string            `help:"Explicit response body"`
	EmptyBody bool              `name:"empty-body" help:"Render without a body"`
	Headers   map[string]string `short:"H" name:"header" help:"Response header as NAME=VALUE"`
}

// Run renders the exception to g.Out as status line, headers and body.
func (r *RenderCmd) Run(g *Globals) error {
	err := g.Upgrader(nil).RaiseUpgraded(upgrade.Named(r.Name), r.Message)
	exc, ok := httperr.AsException(err)
	if !ok {
		return fmt.Errorf("%s does not name an HTTP exception", r.Name)
	}

	e := exc.HTTP()
	if r.Status != 0 {
		e.SetStatus(r.Status)
	}
	if r.Title != "" {
		e.SetTitle(r.Title)
	}
	if r.Detail != "" {
		e.SetDetail(r.Detail)
	}
	if r.Body != "" {
		e.SetBody(r.Body)
	}
	e.SetEmptyBody(r.EmptyBody)
	for _, name := range slices.Sorted(maps.Keys(r.Headers)) {
		if err := e.SetHeader(name, r.Headers[name]); err != nil {
			return err
		}
	}

	chunks := exc.Render(nil, func(status string, headers []httperr.Header) {
		fmt.Fprintln(g.Out, status)
		for _, h := range headers {
			fmt.Fprintf(g.Out, "%s: %s\n", h.Name, h.Value)
		}
		fmt.Fprintln(g.Out)
	})
	for _, chunk := range chunks {
		fmt.Fprint(g.Out, chunk)
	}
	return nil
}
