// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"dario.cat/mergo"
	"github.com/emcd/appcore/internal/logger"
	"github.com/emcd/appcore/models"
	"github.com/spf13/afero"
)

// Options tunes a [Locator]. Empty fields take defaults.
type Options struct {
	// Marker names the file identifying a project root. Defaults to go.mod.
	Marker string
	// Anchor is a path inside the project tree used as the start of the
	// marker search in development. It takes precedence over call stack
	// inspection.
	Anchor string
	// Bundle holds resources embedded into the executable. When set, it
	// is extracted and used as the distribution location.
	Bundle fs.FS
}

var defaultOptions = Options{Marker: "go.mod"}

// Locator determines the [models.Distribution] of a package.
type Locator struct {
	options Options
	index   MetadataIndex
	fs      afero.Fs
	environ map[string]string
	logger  *logger.Logger

	frames func() []Frame
	getwd  func() (string, error)

	mu       sync.Mutex
	releases []string
}

// NewLocator builds a Locator.
//
// A nil index means [NewBuildInfoIndex]; a nil fsys the OS filesystem; a
// nil environ the process environment; a nil log discards logging.
func NewLocator(options Options, index MetadataIndex, fsys afero.Fs, environ map[string]string, log *logger.Logger) (*Locator, error) {
	if err := mergo.Merge(&options, defaultOptions); err != nil {
		return nil, fmt.Errorf("error applying default locator options: %w", err)
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if index == nil {
		index = NewBuildInfoIndex(fsys)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Locator{
		options: options,
		index:   index,
		fs:      fsys,
		environ: environ,
		logger:  log.WithComponent("distribution"),
		frames:  CallerFrames,
		getwd:   os.Getwd,
	}, nil
}

// Prepare returns the distribution information for packageName.
//
// Invoker discovery inspects the current call stack, so Prepare must be
// called on the invoker's goroutine. Use [Locator.PrepareFrom] otherwise.
func (l *Locator) Prepare(ctx context.Context, packageName string) (models.Distribution, error) {
	return l.PrepareFrom(ctx, packageName, l.frames())
}

// PrepareFrom is [Locator.Prepare] with a call stack captured earlier by
// [CallerFrames].
func (l *Locator) PrepareFrom(ctx context.Context, packageName string, frames []Frame) (models.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return models.Distribution{}, err
	}

	if l.options.Bundle != nil {
		return l.prepareBundled(packageName)
	}

	meta, found, err := l.index.Lookup(ctx, packageName)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Distribution{}, ctxErr
		}
		l.logger.Warn().Err(err).Str("package", packageName).Msg("metadata lookup failed; assuming development")
		found = false
	}
	if found {
		l.logger.Debug().
			Str("name", meta.Name).
			Str("version", meta.Version).
			Str("location", meta.Location).
			Msg("installed distribution detected")
		return models.Distribution{Name: meta.Name, Location: meta.Location}, nil
	}

	return l.prepareDevelopment(packageName, frames)
}

func (l *Locator) prepareBundled(packageName string) (models.Distribution, error) {
	dir, err := extractBundle(l.fs, l.options.Bundle)
	if err != nil {
		return models.Distribution{}, errors.Join(ErrLocateFailure, err)
	}

	l.mu.Lock()
	l.releases = append(l.releases, dir)
	l.mu.Unlock()

	l.logger.Debug().Str("location", dir).Msg("bundled distribution extracted")
	return models.Distribution{Name: packageName, Location: dir, Bundled: true}, nil
}

func (l *Locator) prepareDevelopment(packageName string, frames []Frame) (models.Distribution, error) {
	start, name := l.searchStart(packageName, frames)

	ceilings, err := ceilingDirectories(l.environ)
	if err != nil {
		return models.Distribution{}, errors.Join(ErrLocateFailure, err)
	}

	root, err := findMarker(l.fs, start, l.options.Marker, ceilings)
	if err != nil {
		return models.Distribution{}, err
	}

	l.logger.Debug().Str("name", name).Str("location", root).Msg("development distribution detected")
	return models.Distribution{Name: name, Location: root, Editable: true}, nil
}

// searchStart returns where the marker search begins and the name of the
// distribution being searched for.
func (l *Locator) searchStart(packageName string, frames []Frame) (start, name string) {
	if l.options.Anchor != "" {
		return l.options.Anchor, packageName
	}

	modules := l.index.Modules()
	if invoker, ok := findInvoker(frames, modules); ok {
		name = packageName
		if module, ok := owningModule(invoker.Package(), modules); ok {
			name = module
		}
		l.logger.Debug().Str("function", invoker.Function).Str("file", invoker.File).Msg("invoker discovered")
		return filepath.Dir(invoker.File), name
	}

	dir, err := l.getwd()
	if err != nil {
		dir = "."
	}
	return dir, packageName
}

// Close removes directories extracted by Prepare.
func (l *Locator) Close() error {
	l.mu.Lock()
	releases := l.releases
	l.releases = nil
	l.mu.Unlock()

	var err error
	for _, dir := range releases {
		err = errors.Join(err, l.fs.RemoveAll(dir))
	}
	return err
}
