// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides a small taxonomy of exceptions that carry an HTTP
status code, a reason phrase and a response body, and can render themselves
as a minimal HTTP response.

# Taxonomy

HTTPException is the base type. Each variant presets its status and declares
capability tags that hosting frameworks use for dispatch:

	BadRequest        400  CapBadRequest
	Unauthorized      401  CapUnauthorized
	Forbidden         403  CapForbidden
	NotFound          404  CapNotFound
	MethodNotAllowed  405  CapMethodNotAllowed
	Redirect          302  CapRedirect
	InternalError     500  CapGenericHTTPError

All of them implement the Exception interface and carry CapHTTPException.

# Basic Usage

	err := httperr.NewNotFound("no such document")

	// Adjust the response
	err.SetStatus(http.StatusGone)
	err.SetBody("<html>gone</html>")

# Rendering

Render follows a minimal responder contract: it calls the start callback once
with a status line and ordered headers, then returns the body chunks.

	chunks := err.Render(environ, func(status string, headers []httperr.Header) {
		// status is e.g. "404 Not Found"
	})

The status line phrase always comes from the status table, even when
SetStatus was given a custom reason. Every exception is also an http.Handler.

# Dispatch

Match with errors.As on the Exception interface, then switch on tags:

	if exc, ok := httperr.AsException(err); ok {
		switch {
		case exc.Capabilities().Has(httperr.CapNotFound):
			// not-found page
		case exc.Capabilities().Has(httperr.CapForbidden):
			// challenge
		}
		exc.ServeHTTP(w, r)
	}

# Status Codes

Code extracts the status from an error chain:

	code := httperr.Code(err)
	// Returns the status if err contains an Exception
	// Returns http.StatusInternalServerError (500) if none is found
	// Returns http.StatusOK (200) if err is nil

WithCode wraps an arbitrary error, keeping it reachable through errors.Is and
errors.As.
*/
package httperr
