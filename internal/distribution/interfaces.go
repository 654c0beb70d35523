// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

//go:generate mockgen -source=interfaces.go -destination=../mock/metadata_index_mock.go -package=mock

import "context"

// Metadata describes an installed module.
type Metadata struct {
	Name     string
	Version  string
	Location string
}

// MetadataIndex maps packages to the installed modules which carry them.
type MetadataIndex interface {
	// Lookup returns the installed module carrying packageName. found is
	// false when the package belongs to no released module.
	Lookup(ctx context.Context, packageName string) (meta Metadata, found bool, err error)
	// Modules returns the paths of every module known to the index.
	Modules() []string
}
