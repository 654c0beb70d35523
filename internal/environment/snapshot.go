// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Snapshot is an explicit set of environment variables. It decouples
// readers from the process environment so they can be tested in isolation.
type Snapshot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSnapshot returns a snapshot holding a copy of values.
func NewSnapshot(values map[string]string) *Snapshot {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Snapshot{values: copied}
}

// CaptureProcess returns a snapshot of the current process environment.
func CaptureProcess() *Snapshot {
	return FromEnviron(os.Environ())
}

// FromEnviron returns a snapshot of KEY=VALUE entries.
func FromEnviron(environ []string) *Snapshot {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return &Snapshot{values: values}
}

// Lookup returns the value of key.
func (s *Snapshot) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Get returns the value of key, or an empty string.
func (s *Snapshot) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Set assigns value to key.
func (s *Snapshot) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Map returns a copy of the variables.
func (s *Snapshot) Map() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Environ returns the variables as sorted KEY=VALUE entries.
func (s *Snapshot) Environ() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.values))
	for k, v := range s.values {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
