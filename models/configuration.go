// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
)

// Configuration is an immutable nested mapping of string keys to scalars,
// tables and arrays.
//
// A Configuration is produced by [Freeze] from a builder map. Freeze copies
// the builder deeply, so later changes to the builder are not observed, and
// no accessor exposes the internal storage: nested tables are returned as
// Configuration and arrays as [Array]. The zero Configuration is empty.
//
// Configuration values are safe for concurrent use.
type Configuration struct {
	data map[string]any
}

// Freeze returns an immutable copy of m.
func Freeze(m map[string]any) Configuration {
	return Configuration{data: copyTable(m)}
}

// Len returns the number of top-level keys.
func (c Configuration) Len() int {
	return len(c.data)
}

// Keys returns the top-level keys in lexicographic order.
func (c Configuration) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key.
func (c Configuration) Get(key string) (any, bool) {
	v, ok := c.data[key]
	if !ok {
		return nil, false
	}
	return view(v), true
}

// Lookup follows path through nested tables and returns the value found at
// its end. An empty path returns c itself.
func (c Configuration) Lookup(path ...string) (any, bool) {
	var current any = c.data
	for _, part := range path {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return view(current), true
}

// String returns the string found at path.
func (c Configuration) String(path ...string) (string, bool) {
	v, ok := c.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the boolean found at path.
func (c Configuration) Bool(path ...string) (bool, bool) {
	v, ok := c.Lookup(path...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Table returns the table found at path.
func (c Configuration) Table(path ...string) (Configuration, bool) {
	v, ok := c.Lookup(path...)
	if !ok {
		return Configuration{}, false
	}
	t, ok := v.(Configuration)
	return t, ok
}

// AsMap returns a mutable deep copy of the configuration.
func (c Configuration) AsMap() map[string]any {
	if c.data == nil {
		return map[string]any{}
	}
	return copyTable(c.data)
}

// MarshalJSON implements json.Marshaler.
func (c Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.AsMap())
}

// Array is an immutable sequence of configuration values.
type Array struct {
	items []any
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a.items)
}

// At returns the element at index i. It panics when i is out of range.
func (a Array) At(i int) any {
	return view(a.items[i])
}

// Values returns a mutable deep copy of the elements.
func (a Array) Values() []any {
	out := make([]any, len(a.items))
	for i, item := range a.items {
		out[i] = copyValue(item)
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Values())
}

func view(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Configuration{data: t}
	case []map[string]any:
		items := make([]any, len(t))
		for i, m := range t {
			items[i] = m
		}
		return Array{items: items}
	case []any:
		return Array{items: t}
	}
	return v
}

func copyTable(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyTable(t)
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, m := range t {
			out[i] = copyTable(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	}
	return v
}
