// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidIdentifier is returned for names that are not identifiers.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ValidateIdentifier checks that name is a bare identifier: a letter or
// underscore followed by letters, digits and underscores.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidIdentifier)
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("%w: name cannot contain null bytes", ErrInvalidIdentifier)
	}

	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		case i == 0 && unicode.IsDigit(r):
			return fmt.Errorf("%w: name cannot start with a digit: %q", ErrInvalidIdentifier, name)
		default:
			return fmt.Errorf("%w: name can only contain letters, digits and underscores: %q", ErrInvalidIdentifier, name)
		}
	}

	return nil
}
