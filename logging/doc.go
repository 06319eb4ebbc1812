// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the [log/slog.Logger] that receives deprecation notices
for legacy exception names and records of recovered panics.

Loggers write JSON at INFO to [os.Stderr] unless told otherwise, with
[time.RFC3339] timestamps in both formats:

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

Configuration files carry the format and level as strings; [ParseFormat] and
[ParseLevel] turn them into options. Tests pass a buffer through [WithOutput].
*/
package logging
