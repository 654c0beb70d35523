// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
)

type ceilingConfig struct {
	Directories []string `env:"GIT_CEILING_DIRECTORIES" envSeparator:":"`
}

// ceilingDirectories reads the colon-separated ceiling directories from
// environ; a nil environ means the process environment.
func ceilingDirectories(environ map[string]string) (map[string]struct{}, error) {
	cfg := ceilingConfig{}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error reading ceiling directories: %w", err)
	}

	ceilings := make(map[string]struct{}, len(cfg.Directories))
	for _, dir := range cfg.Directories {
		if dir == "" {
			continue
		}
		ceilings[filepath.Clean(dir)] = struct{}{}
	}
	return ceilings, nil
}

// findMarker searches start and its ancestors for a directory containing
// marker. A ceiling directory is searched, but none of its ancestors are.
func findMarker(fsys afero.Fs, start, marker string, ceilings map[string]struct{}) (string, error) {
	dir := filepath.Clean(start)
	if isDir, err := afero.IsDir(fsys, dir); err == nil && !isDir {
		dir = filepath.Dir(dir)
	}
	origin := dir

	for {
		exists, err := afero.Exists(fsys, filepath.Join(dir, marker))
		if err != nil {
			return "", fmt.Errorf("error checking %s: %w", filepath.Join(dir, marker), err)
		}
		if exists {
			return dir, nil
		}
		if _, ok := ceilings[dir]; ok {
			return "", &LocateError{Marker: marker, Start: origin, Stop: dir}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &LocateError{Marker: marker, Start: origin, Stop: dir}
		}
		dir = parent
	}
}
