// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package preparation initializes an application in one call.
//
// [Prepare] resolves, in order:
//  1. the platform directories and the distribution, concurrently;
//  2. the configuration, through a TOML acquirer by default;
//  3. optionally, the .env overlay of the environment snapshot;
//  4. the logger, honoring <APP>_INSCRIPTION_LEVEL and <APP>_LOG_LEVEL.
//
// Every input with a default is an [models.Optional] or a nil-able value,
// so callers can bypass detection (for example with a fixed distribution
// in tests) without disturbing the rest.
package preparation
