// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config acquires application configuration from TOML documents.
//
// An acquisition assembles configuration from the following sources, later
// sources overriding earlier ones key by key:
//  1. The main document: an explicit source, or general.toml in the user
//     configuration directory, published from the distribution's bundled
//     template when missing.
//  2. Every include named by includes.specs, in declared order. Directory
//     includes contribute their *.toml files in lexicographic order.
//  3. Caller-supplied edits, applied in order.
//
// Placeholders such as {application_name} or {user_configuration} are
// substituted in every string value before merging. The result is frozen
// into an immutable [models.Configuration].
//
// The main entry point is [TomlAcquirer.Acquire]; [LookupAcquirer] returns
// the acquirer registered for a document format.
package config
