// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package upgrade resolves exception names and normalizes legacy exception
identifiers into canonical types.

Older hosting code identified exceptions by bare string names. This package
converts such identifiers into exception types so that only typed exceptions
flow past the boundary.

# Resolution

ResolveExceptionType looks a name up in the standard library error types
first and in the httperr taxonomy second:

	t, ok := upgrade.ResolveExceptionType("Redirect")
	// t == upgrade.RedirectType, ok == true

	_, ok = upgrade.ResolveExceptionType("Errorf")
	// ok == false: bound, but not an exception type

A name bound in the standard library namespace shadows the taxonomy even
when its entity is not an exception type.

# Upgrade

	t, v := upgrade.UpgradeException(upgrade.Named("NotFound"), "/missing")
	// t == upgrade.NotFoundType, v == "/missing"

	t, v = upgrade.UpgradeException(upgrade.Named("Nonesuch"), "TEST")
	// t == upgrade.InternalErrorType, v == upgrade.Legacy{Name: "Nonesuch", Value: "TEST"}

	err := upgrade.Raise(t, v)

Legacy names log a deprecation notice through log/slog. Use NewUpgrader to
choose the logger, silence notices or record metrics.
*/
package upgrade
