// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Directories exposes the OS-conventional per-user locations of an
// application.
//
//go:generate mockgen -source=directories.go -destination=../internal/mock/directories_mock.go -package=mock
type Directories interface {
	UserCacheDir() string
	UserConfigDir() string
	UserDataDir() string
	UserStateDir() string
	UserHomeDir() string
}

// DirectorySpecies names a kind of per-user location.
type DirectorySpecies string

const (
	SpeciesCache DirectorySpecies = "cache"
	SpeciesData  DirectorySpecies = "data"
	SpeciesState DirectorySpecies = "state"
)

// Directory returns the location of the given species from d.
func (s DirectorySpecies) Directory(d Directories) (string, bool) {
	switch s {
	case SpeciesCache:
		return d.UserCacheDir(), true
	case SpeciesData:
		return d.UserDataDir(), true
	case SpeciesState:
		return d.UserStateDir(), true
	}
	return "", false
}
