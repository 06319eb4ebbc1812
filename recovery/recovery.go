// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/stacklok/httpexc/httperr"
	"github.com/stacklok/httpexc/metrics"
	"github.com/stacklok/httpexc/policy"
	"github.com/stacklok/httpexc/upgrade"
)

type options struct {
	logger   *slog.Logger
	upgrader *upgrade.Upgrader
	expose   *policy.Predicate
	metrics  *metrics.Collector
}

// Option configures the middleware.
type Option func(*options)

// WithLogger sets the logger receiving recovered panics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUpgrader sets the upgrader used for upgrade.Legacy panic values.
func WithUpgrader(u *upgrade.Upgrader) Option {
	return func(o *options) {
		o.upgrader = u
	}
}

// WithExposePolicy sets the rule deciding whether an exception's message
// reaches the client. Exceptions it rejects are served redacted.
func WithExposePolicy(p *policy.Predicate) Option {
	return func(o *options) {
		o.expose = p
	}
}

// WithMetrics records recovered panics on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// New returns middleware configured with opts.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.upgrader == nil {
		o.upgrader = upgrade.NewUpgrader(upgrade.WithLogger(o.logger), upgrade.WithMetrics(o.metrics))
	}
	if o.expose == nil {
		o.expose = policy.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel is panicked as-is
					panic(v)
				}
				o.serve(w, r, v)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Middleware recovers from panics with the default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func (o *options) serve(w http.ResponseWriter, r *http.Request, v any) {
	exc := o.exception(v)
	status := exc.GetStatus()

	o.logger.Error("recovered from panic",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", exc.Error(),
		"stack", string(debug.Stack()))
	o.metrics.IncRecoveredPanic(status)

	allowed, err := o.expose.Allows(exc)
	if err != nil {
		o.logger.Warn("expose policy failed, redacting response", "error", err)
	}
	if err != nil || !allowed {
		exc.HTTP().Redacted().ServeHTTP(w, r)
		return
	}
	exc.ServeHTTP(w, r)
}

// exception converts a panic value into a taxonomy exception.
func (o *options) exception(v any) httperr.Exception {
	var err error
	switch val := v.(type) {
	case upgrade.Legacy:
		err = o.upgrader.RaiseUpgraded(upgrade.Named(val.Name), val.Value)
	case *upgrade.Legacy:
		err = o.upgrader.RaiseUpgraded(upgrade.Named(val.Name), val.Value)
	case error:
		err = val
	default:
		e := httperr.NewInternalError("")
		e.SetValue(v)
		return e
	}

	if exc, ok := httperr.AsException(err); ok {
		return exc
	}
	exc, _ := httperr.AsException(httperr.WithCode(err, http.StatusInternalServerError))
	return exc
}
