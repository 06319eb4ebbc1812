// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/stacklok/httpexc/httperr"
	"github.com/stacklok/httpexc/metrics"
	"github.com/stacklok/httpexc/upgrade"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr string `short:"a" default:"127.0.0.1:8080" help:"Listen address"`
}

// Run serves until interrupted.
func (s *ServeCmd) Run(g *Globals) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	mux, err := NewServeMux(g, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	g.Logger.Info("serving", "addr", s.Addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	g.Logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// NewServeMux builds the demo routes. Metrics are registered on reg.
//
//	GET /metrics              Prometheus metrics
//	GET /raise/{name}         panics with the legacy name and ?message=
//	GET /status/{code}        panics with an exception of that status
func NewServeMux(g *Globals, reg *prom.Registry) (*http.ServeMux, error) {
	collector := metrics.NewCollector(reg)
	mw, err := g.Config.Middleware(g.Logger, collector)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler(reg))
	mux.Handle("GET /raise/{name}", mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		panic(upgrade.Legacy{Name: r.PathValue("name"), Value: r.URL.Query().Get("message")})
	})))
	mux.Handle("GET /status/{code}", mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(r.PathValue("code"))
		if err != nil {
			panic(httperr.NewBadRequest(fmt.Sprintf("invalid status code %q", r.PathValue("code"))))
		}
		panic(httperr.New(r.URL.Query().Get("message"), code))
	})))
	return mux, nil
}
