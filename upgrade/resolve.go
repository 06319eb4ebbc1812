// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package upgrade

import "reflect"

// Resolver looks names up in an ordered list of namespaces. The first
// namespace that binds a name decides the outcome, so earlier namespaces
// shadow later ones even when their entity is not an exception type.
//
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	namespaces []Namespace
}

// NewResolver creates a Resolver searching namespaces in order.
func NewResolver(namespaces ...Namespace) *Resolver {
	return &Resolver{namespaces: append([]Namespace(nil), namespaces...)}
}

var defaultResolver = NewResolver(builtins, taxonomy)

// DefaultResolver returns the resolver searching the standard library error
// types first and the httperr taxonomy second.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Resolve returns the exception type bound to name. The boolean is false
// when the name is unbound or bound to something that is not an exception
// type; that is an expected outcome, not an error.
func (r *Resolver) Resolve(name string) (reflect.Type, bool) {
	for _, ns := range r.namespaces {
		if entity, ok := ns[name]; ok {
			return exceptionType(entity)
		}
	}
	return nil, false
}

// ResolveExceptionType resolves name with the default resolver.
func ResolveExceptionType(name string) (reflect.Type, bool) {
	return defaultResolver.Resolve(name)
}
