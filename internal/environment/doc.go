// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment holds environment variable snapshots and loads
// .env files into them.
//
// Files are loaded with the following precedence, lowest first:
//  1. Locations named by the configuration (locations.environment).
//  2. The .env of the working directory.
//  3. The .env of the project root, only for editable distributions.
//
// A location may be a single file or a directory of *.env files, which are
// loaded in lexicographic order. Variables present in the snapshot before
// loading are never overwritten.
package environment
