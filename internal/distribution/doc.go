// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package distribution determines where the running code comes from.
//
// A [Locator] reports one of three situations:
//   - bundled: resources embedded into the executable were extracted to a
//     temporary directory, which becomes the location;
//   - production: the package belongs to a released module known to the
//     metadata index, and the location is that module's resource root;
//   - development: the code runs from a source checkout, and the location
//     is the nearest ancestor directory holding the project marker file
//     (go.mod by default).
//
// In development the search starts from an explicit anchor when one is
// configured. Otherwise the locator inspects the call stack for the first
// frame outside appcore and starts from that frame's source file; this is
// a best-effort convenience for unbuilt trees and is not reliable for
// trimmed or relocated binaries.
package distribution
