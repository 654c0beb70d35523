// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

const includeExtension = ".toml"

// includeSpecs returns the specs array of the includes table, if any.
func includeSpecs(document map[string]any, tableName string) ([]string, error) {
	raw, ok := document[tableName]
	if !ok {
		return nil, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a table", ErrInvalidIncludes, tableName)
	}
	rawSpecs, ok := table["specs"]
	if !ok {
		return nil, nil
	}
	items, ok := rawSpecs.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s.specs must be an array of strings", ErrInvalidIncludes, tableName)
	}

	specs := make([]string, 0, len(items))
	for _, item := range items {
		spec, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s.specs must be an array of strings", ErrInvalidIncludes, tableName)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// expandInclude returns the files an include spec refers to, in merge
// order.
//
// A spec ending with a separator, or naming an existing directory, refers
// to the immediate *.toml files of that directory. A spec holding glob
// meta characters refers to every matching file; no match is not an error.
// Otherwise the spec names a single file which must exist. Relative specs
// are resolved against the working directory.
func (b *acquisition) expandInclude(spec string) ([]string, error) {
	path := spec
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.workingDirectory(), path)
	}
	path = filepath.Clean(path)

	if isGlob(spec) {
		return b.globIncludes(path)
	}

	directoryMarked := strings.HasSuffix(spec, "/") || strings.HasSuffix(spec, string(filepath.Separator))
	info, err := b.acquirer.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &IncludeError{Spec: spec, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("error inspecting include %q: %w", spec, err)
	}
	if info.IsDir() {
		return b.directoryIncludes(path)
	}
	if directoryMarked {
		return nil, &IncludeError{Spec: spec, Path: path}
	}
	return []string{path}, nil
}

func (b *acquisition) directoryIncludes(dir string) ([]string, error) {
	// afero.ReadDir sorts entries by filename.
	entries, err := afero.ReadDir(b.acquirer.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error listing include directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != includeExtension {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func (b *acquisition) globIncludes(pattern string) ([]string, error) {
	base, relative := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)
	if !doublestar.ValidatePattern(relative) {
		return nil, fmt.Errorf("%w: bad include pattern %q", ErrInvalidIncludes, pattern)
	}

	var matches []string
	walkErr := afero.Walk(b.acquirer.fs, base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(relative, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error expanding include pattern %q: %w", pattern, walkErr)
	}

	sort.Strings(matches)
	return matches, nil
}

func isGlob(spec string) bool {
	return strings.ContainsAny(spec, "*?[{")
}
