// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// A recovered panic value is turned into an httperr.Exception and rendered
// as the response. Exceptions pass through as they are, upgrade.Legacy values
// are upgraded and raised, other errors are wrapped with status 500, and any
// other value becomes an InternalError.
//
// Whether the exception's message reaches the client is decided by a
// policy.Predicate; rejected exceptions are served redacted, keeping their
// status and headers. The default rule exposes client errors only.
//
// # Basic Usage
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	wrappedMux := recovery.Middleware(mux)
//	http.ListenAndServe(":8080", wrappedMux)
//
// # Configured Usage
//
//	mw := recovery.New(
//		recovery.WithLogger(logger),
//		recovery.WithMetrics(metrics.NewCollector(prometheus.DefaultRegisterer)),
//	)
//	http.ListenAndServe(":8080", mw(mux))
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package recovery
