// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package name provides validation functions for the names bound in exception
namespaces.

# Identifier Validation

	if err := name.ValidateIdentifier("NotFound"); err != nil {
		// Handle invalid name
	}

Valid identifiers must:
  - Be non-empty
  - Not contain null bytes
  - Start with a letter or underscore
  - Contain only letters, digits and underscores

# Examples

Valid names:

	"NotFound"
	"_private"
	"Error2"

Invalid names:

	""            // empty
	"2Error"      // leading digit
	"Not Found"   // space
	"pkg.Error"   // qualified
*/
package name
