// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags and shown in CLI version output.
// Empty values are reported as "N/A".
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string {
	return b.version
}

// Date returns the build timestamp string.
func (b BuildInfo) Date() string {
	return b.date
}

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string {
	return b.commit
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
