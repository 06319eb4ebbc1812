// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for response headers.
package http

import (
	"errors"
	"fmt"

	"golang.org/x/net/http/httpguts"
)

const (
	// MaxHeaderNameLength is the longest accepted header name in bytes.
	MaxHeaderNameLength = 256

	// MaxHeaderValueLength is the longest accepted header value in bytes.
	MaxHeaderValueLength = 8192
)

var (
	// ErrInvalidHeaderName is returned for header names that are empty, too
	// long or not RFC 7230 tokens.
	ErrInvalidHeaderName = errors.New("invalid header name")

	// ErrInvalidHeaderValue is returned for header values that are too long
	// or contain control characters.
	ErrInvalidHeaderValue = errors.New("invalid header value")
)

// ValidateHeaderName validates that a string is a valid HTTP header name per RFC 7230.
// It checks for CRLF injection, control characters, and ensures RFC token compliance.
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidHeaderName)
	}

	if len(name) > MaxHeaderNameLength {
		return fmt.Errorf("%w: exceeds maximum length of %d bytes", ErrInvalidHeaderName, MaxHeaderNameLength)
	}

	// Same check Go's HTTP/2 implementation uses
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: contains invalid characters", ErrInvalidHeaderName)
	}

	return nil
}

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters. Empty values are valid.
func ValidateHeaderValue(value string) error {
	if len(value) > MaxHeaderValueLength {
		return fmt.Errorf("%w: exceeds maximum length of %d bytes", ErrInvalidHeaderValue, MaxHeaderValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: contains control characters", ErrInvalidHeaderValue)
	}

	return nil
}

// ValidateHeader validates a name/value pair.
func ValidateHeader(name, value string) error {
	if err := ValidateHeaderName(name); err != nil {
		return err
	}
	return ValidateHeaderValue(value)
}
