// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides security-focused validation for the headers an
exception adds to its rendered response.

Exceptions accept headers from application code (a redirect target, a
challenge, a cache directive). Those values end up verbatim in the response,
so they are validated against RFC 7230 before they are stored:

	if err := http.ValidateHeader("Location", target); err != nil {
		// reject
	}

The validators check for:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - RFC 7230 token compliance for header names
  - Length limits (MaxHeaderNameLength, MaxHeaderValueLength)

Failures wrap ErrInvalidHeaderName or ErrInvalidHeaderValue.
*/
package http
