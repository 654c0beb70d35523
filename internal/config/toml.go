// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/emcd/appcore/internal/logger"
	"github.com/emcd/appcore/models"
	"github.com/spf13/afero"
)

// TomlOptions tunes a [TomlAcquirer]. Empty fields take defaults.
type TomlOptions struct {
	// MainFilename names the main document in the user configuration
	// directory and the bundled template. Defaults to general.toml.
	MainFilename string
	// IncludesName names the table holding the specs array. Defaults to
	// includes.
	IncludesName string
}

var defaultTomlOptions = TomlOptions{
	MainFilename: "general.toml",
	IncludesName: "includes",
}

// TomlAcquirer is the default [Acquirer]. It reads TOML documents from a
// filesystem, which is the OS filesystem unless another is supplied.
type TomlAcquirer struct {
	options TomlOptions
	fs      afero.Fs
	logger  *logger.Logger
	getwd   func() (string, error)
}

// NewTomlAcquirer builds a TomlAcquirer. A nil fsys means the OS
// filesystem; a nil log means the logger carried by the context of each
// Acquire call, if any.
func NewTomlAcquirer(options TomlOptions, fsys afero.Fs, log *logger.Logger) (*TomlAcquirer, error) {
	if err := mergo.Merge(&options, defaultTomlOptions); err != nil {
		return nil, fmt.Errorf("error applying default acquirer options: %w", err)
	}
	if filepath.Base(options.MainFilename) != options.MainFilename {
		return nil, fmt.Errorf("%w: main filename %q must not contain directories",
			ErrInvalidOptions, options.MainFilename)
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if log != nil {
		log = log.WithComponent(logComponent)
	}

	return &TomlAcquirer{
		options: options,
		fs:      fsys,
		logger:  log,
		getwd:   os.Getwd,
	}, nil
}

const logComponent = "configuration"

func (a *TomlAcquirer) loggerFor(ctx context.Context) *logger.Logger {
	if a.logger != nil {
		return a.logger
	}
	return logger.FromContext(ctx).WithComponent(logComponent)
}

// Options returns the effective options.
func (a *TomlAcquirer) Options() TomlOptions {
	return a.options
}

// Acquire implements [Acquirer].
func (a *TomlAcquirer) Acquire(ctx context.Context, request Request) (models.Configuration, error) {
	return a.newAcquisition(ctx, request).
		withMainDocument().
		withTemplates().
		withIncludes().
		withEdits().
		build()
}

func (a *TomlAcquirer) readFile(path string) (map[string]any, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration file: %w", err)
	}
	defer f.Close()

	return parseDocument(path, f)
}

func parseDocument(name string, r io.Reader) (map[string]any, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration from %s: %w", name, err)
	}

	document := make(map[string]any)
	if _, err := toml.Decode(string(content), &document); err != nil {
		return nil, &ParseError{Source: name, Err: err}
	}
	return document, nil
}
