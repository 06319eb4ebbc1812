// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so configuration overrides can be tested without touching the real
process environment.

# Basic Usage

	reader := &env.OSReader{}
	value, ok := reader.LookupEnv("HTTPEXC_LOG_LEVEL")

MapReader serves values from a plain map.

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("HTTPEXC_LOG_LEVEL").Return("debug", true)
*/
package env
