// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Application describes the application being initialized.
//
// Name drives the {application_name} template variable and, together with
// Publisher and Version, the naming of platform directories. Empty Publisher
// and Version mean "not provided".
type Application struct {
	Name      string `json:"name" toml:"name"`
	Publisher string `json:"publisher,omitempty" toml:"publisher,omitempty"`
	Version   string `json:"version,omitempty" toml:"version,omitempty"`
}
