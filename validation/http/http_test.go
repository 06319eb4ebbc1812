// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHeaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		// Valid cases
		{"valid simple", "X-API-Key", false},
		{"valid authorization", "Authorization", false},
		{"valid with numbers", "X-API-Key-123", false},
		{"valid with dots", "X.Custom.Header", false},

		// CRLF injection attacks
		{"crlf injection", "X-API-Key\r\nX-Injected: malicious", true},
		{"newline injection", "X-API-Key\nInjected", true},
		{"carriage return", "X-API-Key\r", true},

		// Other invalid characters
		{"null byte", "X-API-Key\x00", true},
		{"contains space", "X API Key", true},
		{"empty string", "", true},

		// Length limits
		{"too long", strings.Repeat("A", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderName(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidHeaderName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		// Valid cases
		{"valid simple", "my-api-key-12345", false},
		{"valid with spaces", "Bearer token123", false},
		{"valid special chars", "key!@#$%^&*()", false},

		// CRLF injection attacks
		{"crlf injection", "key\r\nX-Injected: malicious", true},
		{"newline injection", "key\ninjected", true},
		{"carriage return", "key\r", true},

		// Control characters
		{"null byte", "key\x00value", true},
		{"control char", "key\x01value", true},
		{"delete char", "key\x7Fvalue", true},
		{"tab allowed", "key\tvalue", false}, // Tab is allowed in values

		// Length limits
		{"too long", strings.Repeat("A", 10000), true},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidHeaderValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeader(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHeader("Location", "http://example.com/"))
	assert.ErrorIs(t, ValidateHeader("Bad Name", "v"), ErrInvalidHeaderName)
	assert.ErrorIs(t, ValidateHeader("Location", "a\r\nb"), ErrInvalidHeaderValue)
	assert.ErrorIs(t, ValidateHeader("", ""), ErrInvalidHeaderName)
	assert.NoError(t, ValidateHeader("X-Empty", ""))
}
