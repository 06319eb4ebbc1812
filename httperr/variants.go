// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import "net/http"

// BadRequest signals malformed client input (400).
type BadRequest struct{ HTTPException }

// NewBadRequest creates a BadRequest exception.
func NewBadRequest(message string) *BadRequest {
	e := &BadRequest{}
	e.init(message, http.StatusBadRequest)
	return e
}

// Capabilities implements Exception.
func (*BadRequest) Capabilities() Capability {
	return CapHTTPException | CapBadRequest
}

// Unauthorized signals a missing or invalid credential (401).
type Unauthorized struct{ HTTPException }

// NewUnauthorized creates an Unauthorized exception.
func NewUnauthorized(message string) *Unauthorized {
	e := &Unauthorized{}
	e.init(message, http.StatusUnauthorized)
	return e
}

// Capabilities implements Exception.
func (*Unauthorized) Capabilities() Capability {
	return CapHTTPException | CapUnauthorized
}

// Forbidden signals a permission failure (403).
type Forbidden struct{ HTTPException }

// NewForbidden creates a Forbidden exception.
func NewForbidden(message string) *Forbidden {
	e := &Forbidden{}
	e.init(message, http.StatusForbidden)
	return e
}

// Capabilities implements Exception.
func (*Forbidden) Capabilities() Capability {
	return CapHTTPException | CapForbidden
}

// NotFound signals a missing resource (404).
type NotFound struct{ HTTPException }

// NewNotFound creates a NotFound exception.
func NewNotFound(message string) *NotFound {
	e := &NotFound{}
	e.init(message, http.StatusNotFound)
	return e
}

// Capabilities implements Exception.
func (*NotFound) Capabilities() Capability {
	return CapHTTPException | CapNotFound
}

// MethodNotAllowed signals an unsupported request method (405).
type MethodNotAllowed struct{ HTTPException }

// NewMethodNotAllowed creates a MethodNotAllowed exception.
func NewMethodNotAllowed(message string) *MethodNotAllowed {
	e := &MethodNotAllowed{}
	e.init(message, http.StatusMethodNotAllowed)
	return e
}

// Capabilities implements Exception.
func (*MethodNotAllowed) Capabilities() Capability {
	return CapHTTPException | CapMethodNotAllowed
}

// Redirect sends the client to another location (302).
type Redirect struct{ HTTPException }

// NewRedirect creates a Redirect to location and sets the Location header.
// An empty location, or one that is not a valid header value, is kept as
// the message but no header is set.
func NewRedirect(location string) *Redirect {
	e := &Redirect{}
	e.init(location, http.StatusFound)
	if location != "" {
		_ = e.SetHeader("Location", location)
	}
	return e
}

// Location returns the redirect target.
func (e *Redirect) Location() string {
	return e.message
}

// Capabilities implements Exception.
func (*Redirect) Capabilities() Capability {
	return CapHTTPException | CapRedirect
}

// InternalError is the catch-all for server-side faults (500). It is also
// the fallback type for legacy identifiers that cannot be resolved.
type InternalError struct{ HTTPException }

// NewInternalError creates an InternalError exception.
func NewInternalError(message string) *InternalError {
	e := &InternalError{}
	e.init(message, http.StatusInternalServerError)
	return e
}

// Capabilities implements Exception.
func (*InternalError) Capabilities() Capability {
	return CapHTTPException | CapGenericHTTPError
}

var (
	_ Exception = (*BadRequest)(nil)
	_ Exception = (*Unauthorized)(nil)
	_ Exception = (*Forbidden)(nil)
	_ Exception = (*NotFound)(nil)
	_ Exception = (*MethodNotAllowed)(nil)
	_ Exception = (*Redirect)(nil)
	_ Exception = (*InternalError)(nil)
)
