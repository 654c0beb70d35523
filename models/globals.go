// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"path/filepath"
	"sync"
)

// Globals is the state produced by preparing an application: who it is,
// where it lives, and how it is configured.
type Globals struct {
	Application   Application
	Configuration Configuration
	Directories   Directories
	Distribution  Distribution
	RunID         string

	mu       sync.Mutex
	releases []func() error
}

// ProvideLocation returns the location of the given species, joined with
// appendages.
//
// A string under the configuration's "locations" table keyed by the species
// name takes precedence over the platform directory. Such strings have
// already had their templates resolved during acquisition.
func (g *Globals) ProvideLocation(species DirectorySpecies, appendages ...string) string {
	base, ok := g.Configuration.String("locations", string(species))
	if !ok || base == "" {
		if g.Directories != nil {
			base, _ = species.Directory(g.Directories)
		}
	}
	return filepath.Join(append([]string{base}, appendages...)...)
}

// ProvideCacheLocation returns a cache location.
func (g *Globals) ProvideCacheLocation(appendages ...string) string {
	return g.ProvideLocation(SpeciesCache, appendages...)
}

// ProvideDataLocation returns a data location.
func (g *Globals) ProvideDataLocation(appendages ...string) string {
	return g.ProvideLocation(SpeciesData, appendages...)
}

// ProvideStateLocation returns a state location.
func (g *Globals) ProvideStateLocation(appendages ...string) string {
	return g.ProvideLocation(SpeciesState, appendages...)
}

// OnClose registers release to be called by Close. Releases run in reverse
// registration order.
func (g *Globals) OnClose(release func() error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.releases = append(g.releases, release)
}

// Close runs every registered release and returns their joined errors.
// Calling Close more than once is safe.
func (g *Globals) Close() error {
	g.mu.Lock()
	releases := g.releases
	g.releases = nil
	g.mu.Unlock()

	var err error
	for i := len(releases) - 1; i >= 0; i-- {
		err = errors.Join(err, releases[i]())
	}
	return err
}
