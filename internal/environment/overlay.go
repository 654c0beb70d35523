// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emcd/appcore/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const dotenvName = ".env"

// Request names the candidate locations of one overlay.
type Request struct {
	// Editable enables the project root layer.
	Editable bool
	// ProjectRoot is the distribution location.
	ProjectRoot string
	// Configured lists locations taken from the configuration, lowest
	// precedence first.
	Configured []string
}

// Options tunes an [Overlay].
type Options struct {
	// Publish also exports newly set variables to the process environment.
	Publish bool
}

// Overlay loads .env files into a [Snapshot].
type Overlay struct {
	snapshot *Snapshot
	fs       afero.Fs
	options  Options
	logger   *logger.Logger
	getwd    func() (string, error)
}

// NewOverlay returns an overlay writing into snapshot. A nil fsys means
// the OS filesystem; a nil log means the logger carried by the context of
// each Apply call, if any.
func NewOverlay(snapshot *Snapshot, fsys afero.Fs, options Options, log *logger.Logger) *Overlay {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if log != nil {
		log = log.WithComponent(logComponent)
	}
	return &Overlay{
		snapshot: snapshot,
		fs:       fsys,
		options:  options,
		logger:   log,
		getwd:    os.Getwd,
	}
}

const logComponent = "environment"

func (o *Overlay) loggerFor(ctx context.Context) *logger.Logger {
	if o.logger != nil {
		return o.logger
	}
	return logger.FromContext(ctx).WithComponent(logComponent)
}

// Apply loads every candidate location of request and returns the sorted
// names of the variables it set.
//
// Missing locations are skipped. Unreadable or malformed files abort the
// overlay before any variable is set.
func (o *Overlay) Apply(ctx context.Context, request Request) ([]string, error) {
	log := o.loggerFor(ctx)
	loaded := make(map[string]string)
	for _, location := range o.candidates(request) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := o.loadLocation(log, location, loaded); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(loaded))
	for key := range loaded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	set := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, exists := o.snapshot.Lookup(key); exists {
			continue
		}
		o.snapshot.Set(key, loaded[key])
		if o.options.Publish {
			if err := os.Setenv(key, loaded[key]); err != nil {
				return set, fmt.Errorf("error exporting %s: %w", key, err)
			}
		}
		set = append(set, key)
	}

	log.Debug().Strs("variables", set).Msg("environment overlay applied")
	return set, nil
}

// candidates returns locations lowest precedence first.
func (o *Overlay) candidates(request Request) []string {
	locations := make([]string, 0, len(request.Configured)+2)
	locations = append(locations, request.Configured...)
	cwd, err := o.getwd()
	if err == nil {
		cwd = filepath.Clean(cwd)
		locations = append(locations, filepath.Join(cwd, dotenvName))
	}
	// A project root equal to the working directory is loaded once.
	if request.Editable && request.ProjectRoot != "" && filepath.Clean(request.ProjectRoot) != cwd {
		locations = append(locations, filepath.Join(request.ProjectRoot, dotenvName))
	}
	return locations
}

// loadLocation merges the variables of location into loaded, overriding
// earlier values.
func (o *Overlay) loadLocation(log *logger.Logger, location string, loaded map[string]string) error {
	info, err := o.fs.Stat(location)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("location", location).Msg("environment location absent")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error inspecting environment location %s: %w", location, err)
	}

	files := []string{location}
	if info.IsDir() {
		files, err = o.directoryFiles(location)
		if err != nil {
			return err
		}
	}

	for _, file := range files {
		values, err := o.parseFile(log, file)
		if err != nil {
			return err
		}
		for key, value := range values {
			loaded[key] = value
		}
	}
	return nil
}

func (o *Overlay) directoryFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(o.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error listing environment directory %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), dotenvName) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func (o *Overlay) parseFile(log *logger.Logger, path string) (map[string]string, error) {
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening environment file: %w", err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing environment file %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("variables", len(values)).Msg("environment file loaded")
	return values, nil
}
