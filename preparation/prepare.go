// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preparation

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/emcd/appcore/internal/config"
	"github.com/emcd/appcore/internal/distribution"
	"github.com/emcd/appcore/internal/environment"
	"github.com/emcd/appcore/internal/logger"
	"github.com/emcd/appcore/internal/platform"
	"github.com/emcd/appcore/internal/utils"
	"github.com/emcd/appcore/models"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// ErrApplicationUnnamed indicates that neither an application name nor a
// package name was supplied.
var ErrApplicationUnnamed = errors.New("application name is required")

// Options are the inputs of [Prepare].
type Options struct {
	Application models.Application
	// Package is the import path used for distribution detection.
	// Defaults to Application.Name.
	Package string

	Directories  models.Optional[models.Directories]
	Distribution models.Optional[models.Distribution]
	// EnsureDirectories creates produced platform directories.
	EnsureDirectories bool
	Locator           LocatorOptions
	MetadataIndex     MetadataIndex

	// Acquirer defaults to the TOML acquirer.
	Acquirer           Acquirer
	ConfigurationFile  models.Optional[Source]
	ConfigurationEdits []Edit

	// Environment enables the .env overlay.
	Environment bool
	// PublishEnvironment also exports overlaid variables to the process.
	PublishEnvironment bool
	// Snapshot defaults to a capture of the process environment.
	Snapshot *Snapshot

	Inscription InscriptionControl

	// Fs defaults to the OS filesystem.
	Fs afero.Fs
}

// Globals is the outcome of [Prepare].
type Globals struct {
	*models.Globals
	Environment *Snapshot
	Logger      *Logger
}

// Prepare initializes the application described by options.
//
// Resources acquired along the way, such as an extracted bundle, are
// released by Globals.Close; on error they are released before returning.
func Prepare(ctx context.Context, options Options) (*Globals, error) {
	// Detection runs on another goroutine; the invoker is only on this stack.
	frames := distribution.CallerFrames()

	p, err := newPreparer(options)
	if err != nil {
		return nil, err
	}
	p.frames = frames

	globals, err := p.run(ctx)
	if err != nil {
		return nil, errors.Join(err, p.globals.Close())
	}
	return globals, nil
}

type preparer struct {
	options  Options
	snapshot *environment.Snapshot
	fs       afero.Fs
	log      *logger.Logger
	globals  *models.Globals
	frames   []distribution.Frame
}

func newPreparer(options Options) (*preparer, error) {
	if err := mergo.Merge(&options.Application, models.Application{Name: options.Package}); err != nil {
		return nil, fmt.Errorf("error applying default application info: %w", err)
	}
	if options.Package == "" {
		options.Package = options.Application.Name
	}
	if options.Application.Name == "" {
		return nil, ErrApplicationUnnamed
	}

	snapshot := options.Snapshot
	if snapshot == nil {
		snapshot = environment.CaptureProcess()
	}
	fsys := options.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	log, err := logger.Prepare(options.Inscription, options.Application.Name, snapshot.Map())
	if err != nil {
		return nil, fmt.Errorf("error preparing inscription: %w", err)
	}

	return &preparer{
		options:  options,
		snapshot: snapshot,
		fs:       fsys,
		log:      log,
		globals:  &models.Globals{Application: options.Application},
	}, nil
}

func (p *preparer) run(ctx context.Context) (*Globals, error) {
	ctx = p.log.WithContext(ctx)
	if err := p.detect(ctx); err != nil {
		return nil, err
	}

	configuration, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	p.globals.Configuration = configuration

	if p.options.Environment {
		if err := p.overlay(ctx); err != nil {
			return nil, err
		}
	}

	log, err := logger.Prepare(p.options.Inscription, p.options.Application.Name, p.snapshot.Map())
	if err != nil {
		return nil, fmt.Errorf("error preparing inscription: %w", err)
	}

	p.globals.RunID = utils.NewRunIDGenerator().Generate()
	log.Logger = log.With().Str("run", p.globals.RunID).Logger()
	log.Debug().
		Str("application", p.globals.Application.Name).
		Str("distribution", p.globals.Distribution.Name).
		Str("location", p.globals.Distribution.Location).
		Bool("editable", p.globals.Distribution.Editable).
		Msg("application prepared")

	return &Globals{Globals: p.globals, Environment: p.snapshot, Logger: log}, nil
}

// detect produces the directories and the distribution concurrently.
func (p *preparer) detect(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if dirs, ok := p.options.Directories.Get(); ok {
			p.globals.Directories = dirs
			return nil
		}
		dirs, err := platform.Produce(p.options.Application, platform.Options{Environment: p.snapshot.Map()})
		if err != nil {
			return fmt.Errorf("error producing directories: %w", err)
		}
		if p.options.EnsureDirectories {
			if err := dirs.Ensure(p.fs); err != nil {
				return err
			}
		}
		p.globals.Directories = dirs
		return nil
	})

	g.Go(func() error {
		if dist, ok := p.options.Distribution.Get(); ok {
			p.globals.Distribution = dist
			return nil
		}
		locator, err := distribution.NewLocator(p.options.Locator, p.options.MetadataIndex, p.fs, p.snapshot.Map(), p.log)
		if err != nil {
			return err
		}
		p.globals.OnClose(locator.Close)
		dist, err := locator.PrepareFrom(gctx, p.options.Package, p.frames)
		if err != nil {
			return fmt.Errorf("error detecting distribution: %w", err)
		}
		p.globals.Distribution = dist
		return nil
	})

	return g.Wait()
}

func (p *preparer) acquire(ctx context.Context) (models.Configuration, error) {
	acquirer := p.options.Acquirer
	if acquirer == nil {
		var err error
		acquirer, err = config.LookupAcquirer("toml", p.fs, nil)
		if err != nil {
			return models.Configuration{}, err
		}
	}

	return acquirer.Acquire(ctx, config.Request{
		ApplicationName: p.options.Application.Name,
		Directories:     p.globals.Directories,
		Distribution:    p.globals.Distribution,
		Edits:           p.options.ConfigurationEdits,
		Main:            p.options.ConfigurationFile,
	})
}

func (p *preparer) overlay(ctx context.Context) error {
	overlay := environment.NewOverlay(p.snapshot, p.fs, environment.Options{Publish: p.options.PublishEnvironment}, nil)
	_, err := overlay.Apply(ctx, environment.Request{
		Editable:    p.globals.Distribution.Editable,
		ProjectRoot: p.globals.Distribution.Location,
		Configured:  environmentLocations(p.globals.Configuration),
	})
	if err != nil {
		return fmt.Errorf("error applying environment overlay: %w", err)
	}
	return nil
}

// environmentLocations reads locations.environment, a string or an array
// of strings.
func environmentLocations(configuration models.Configuration) []string {
	value, ok := configuration.Lookup("locations", "environment")
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case string:
		return []string{v}
	case models.Array:
		locations := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s, ok := v.At(i).(string); ok {
				locations = append(locations, s)
			}
		}
		return locations
	}
	return nil
}
