// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path/filepath"

// Distribution holds information about the distribution which carries the
// running code.
//
// Location is the project root when Editable is true (source checkout) and
// the resource root of the installed distribution otherwise. Bundled marks
// a location extracted from resources embedded into the executable.
type Distribution struct {
	Name     string `json:"name" toml:"name"`
	Location string `json:"location" toml:"location"`
	Editable bool   `json:"editable" toml:"editable"`
	Bundled  bool   `json:"bundled" toml:"bundled"`
}

// DataLocation returns a path under the distribution's data directory.
func (d Distribution) DataLocation(appendages ...string) string {
	parts := make([]string, 0, len(appendages)+2)
	parts = append(parts, d.Location, "data")
	parts = append(parts, appendages...)
	return filepath.Join(parts...)
}
