// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Merge combines overlay into base and returns base.
//
// Tables present in both are merged key by key, recursively. Any other
// value from overlay, arrays included, replaces the value at the same key
// in base. Keys only present in base survive. A nil base is allocated.
func Merge(base, overlay map[string]any) map[string]any {
	if base == nil {
		base = make(map[string]any, len(overlay))
	}
	for key, value := range overlay {
		incoming, isTable := value.(map[string]any)
		existing, wasTable := base[key].(map[string]any)
		if isTable && wasTable {
			base[key] = Merge(existing, incoming)
			continue
		}
		base[key] = value
	}
	return base
}
