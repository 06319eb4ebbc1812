// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package policy evaluates CEL rules against taxonomy exceptions.

The recovery middleware uses a rule to decide whether an exception's message
and detail may be shown to the client. The default rule, DefaultExposeDetail,
shows them for client-facing conditions and hides them for server faults.

	engine := policy.NewEngine()
	expose, err := engine.Compile(`status < 500 || "Redirect" in capabilities`)
	if err != nil {
		// *policy.ParseError or *policy.CheckError
	}

	ok, err := expose.Allows(httperr.NewNotFound("no such page"))

Rules see four variables: status, reason, name and capabilities. Rules must
evaluate to bool. Expression length and evaluation cost are limited; see
WithMaxExpressionLength and WithCostLimit.

Engine and Predicate are safe for concurrent use.
*/
package policy
