// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=interfaces.go -destination=../mock/acquirer_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/emcd/appcore/models"
)

// Acquirer produces an immutable configuration for an application.
type Acquirer interface {
	Acquire(ctx context.Context, request Request) (models.Configuration, error)
}

// Request carries the inputs of one acquisition.
type Request struct {
	ApplicationName string
	Directories     models.Directories
	Distribution    models.Distribution
	// Edits run in order against the merged configuration before it is
	// frozen. The first failing edit aborts the acquisition.
	Edits []Edit
	// Main overrides discovery of the main document when present.
	Main models.Optional[Source]
}

// Source is a main configuration document: either a file path or an open
// stream. Name labels a stream in errors and logs.
type Source struct {
	Path   string
	Reader io.Reader
	Name   string
}

// FileSource returns a Source reading the file at path.
func FileSource(path string) Source {
	return Source{Path: path, Name: path}
}

// ReaderSource returns a Source reading from r.
func ReaderSource(name string, r io.Reader) Source {
	return Source{Reader: r, Name: name}
}

func (s Source) String() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Path != "" {
		return s.Path
	}
	return "<stream>"
}

// Edit mutates the merged, still mutable configuration.
type Edit interface {
	Apply(configuration map[string]any) error
}

// EditFunc adapts an ordinary function to the Edit interface.
type EditFunc func(configuration map[string]any) error

// Apply calls f(configuration).
func (f EditFunc) Apply(configuration map[string]any) error {
	return f(configuration)
}
