// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/stacklok/httpexc/metrics"
)

// Ident identifies an exception at the boundary where legacy code hands one
// over: either a type, or a legacy string name. Only types flow past Upgrade.
//
// The zero value is the legacy name "".
type Ident struct {
	name string
	typ  reflect.Type
}

// Named returns a legacy string identifier.
func Named(name string) Ident {
	return Ident{name: name}
}

// Type returns an identifier for t. Type(nil) is the legacy name "".
func Type(t reflect.Type) Ident {
	return Ident{typ: t}
}

// TypeOf returns an identifier for the error type T.
func TypeOf[T error]() Ident {
	return Type(reflect.TypeFor[T]())
}

// Of returns an identifier for the dynamic type of err.
func Of(err error) Ident {
	if err == nil {
		return Ident{}
	}
	return Type(reflect.TypeOf(err))
}

// IsLegacy reports whether the identifier is a string name.
func (id Ident) IsLegacy() bool {
	return id.typ == nil
}

// String returns the legacy name or the type name.
func (id Ident) String() string {
	if id.typ != nil {
		return id.typ.String()
	}
	return id.name
}

// Legacy is the value produced when a legacy name cannot be resolved. It
// keeps the original name next to the original value.
type Legacy struct {
	Name  string
	Value any
}

// String implements fmt.Stringer.
func (l Legacy) String() string {
	return fmt.Sprintf("%s: %v", l.Name, l.Value)
}

// Upgrader normalizes (identifier, value) pairs into (type, value) pairs.
// An Upgrader is immutable after construction and safe for concurrent use.
type Upgrader struct {
	resolver *Resolver
	logger   *slog.Logger
	warn     bool
	metrics  *metrics.Collector
}

// Option configures an Upgrader.
type Option func(*Upgrader)

// WithResolver replaces the default resolver.
func WithResolver(r *Resolver) Option {
	return func(u *Upgrader) {
		u.resolver = r
	}
}

// WithLogger sets the logger receiving deprecation notices.
// The default is slog.Default() at the time of the notice.
func WithLogger(l *slog.Logger) Option {
	return func(u *Upgrader) {
		u.logger = l
	}
}

// WithDeprecationWarnings toggles deprecation notices for legacy names.
// Notices are on by default.
func WithDeprecationWarnings(enabled bool) Option {
	return func(u *Upgrader) {
		u.warn = enabled
	}
}

// WithMetrics records upgrade outcomes on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(u *Upgrader) {
		u.metrics = c
	}
}

// NewUpgrader creates an Upgrader.
func NewUpgrader(opts ...Option) *Upgrader {
	u := &Upgrader{
		resolver: defaultResolver,
		warn:     true,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var defaultUpgrader = NewUpgrader()

// Upgrade normalizes id and v.
//
// Types are returned unchanged. A legacy name triggers a deprecation notice
// and is resolved; on a miss the result is InternalErrorType with the value
// Legacy{Name, v}. Upgrade never fails.
func (u *Upgrader) Upgrade(id Ident, v any) (reflect.Type, any) {
	if !id.IsLegacy() {
		u.metrics.IncUpgrade(metrics.OutcomePassthrough)
		return id.typ, v
	}

	if u.warn {
		u.log().Warn("legacy string exception identifiers are deprecated and will be removed in a future release",
			"exception", id.name)
	}

	if t, ok := u.resolver.Resolve(id.name); ok {
		u.metrics.IncUpgrade(metrics.OutcomeResolved)
		return t, v
	}

	u.metrics.IncUpgrade(metrics.OutcomeFallback)
	return InternalErrorType, Legacy{Name: id.name, Value: v}
}

// RaiseUpgraded upgrades id and v and instantiates the result with Raise.
func (u *Upgrader) RaiseUpgraded(id Ident, v any) error {
	return Raise(u.Upgrade(id, v))
}

func (u *Upgrader) log() *slog.Logger {
	if u.logger != nil {
		return u.logger
	}
	return slog.Default()
}

// UpgradeException upgrades id and v with the default upgrader.
func UpgradeException(id Ident, v any) (reflect.Type, any) {
	return defaultUpgrader.Upgrade(id, v)
}
