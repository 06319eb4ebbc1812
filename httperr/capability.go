// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"strings"
)

// Capability is a set of semantic roles an exception satisfies. Hosting
// frameworks switch on these tags to pick an error page, trigger an
// authorization challenge, and so on. The taxonomy itself never branches on
// them.
type Capability uint16

// Capability tags carried by the taxonomy types.
const (
	// CapHTTPException is carried by every exception in the taxonomy.
	CapHTTPException Capability = 1 << iota
	// CapBadRequest marks malformed client input.
	CapBadRequest
	// CapUnauthorized marks a missing or invalid credential.
	CapUnauthorized
	// CapForbidden marks a permission failure.
	CapForbidden
	// CapNotFound marks a missing resource.
	CapNotFound
	// CapMethodNotAllowed marks an unsupported request method.
	CapMethodNotAllowed
	// CapRedirect marks a redirect to another location.
	CapRedirect
	// CapGenericHTTPError marks a server-side fault.
	CapGenericHTTPError
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapHTTPException, "HTTPException"},
	{CapBadRequest, "BadRequest"},
	{CapUnauthorized, "Unauthorized"},
	{CapForbidden, "Forbidden"},
	{CapNotFound, "NotFound"},
	{CapMethodNotAllowed, "MethodNotAllowed"},
	{CapRedirect, "Redirect"},
	{CapGenericHTTPError, "GenericHTTPError"},
}

// Has reports whether every tag in other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Names returns the tag names in c, in declaration order.
func (c Capability) Names() []string {
	names := make([]string, 0, len(capabilityNames))
	for _, cn := range capabilityNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	return names
}

// String implements fmt.Stringer.
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	return strings.Join(c.Names(), "|")
}

// HasCapability reports whether err, or any error it wraps, is a taxonomy
// exception carrying the capability tag c.
func HasCapability(err error, c Capability) bool {
	var exc Exception
	if !errors.As(err, &exc) {
		return false
	}
	return exc.Capabilities().Has(c)
}
