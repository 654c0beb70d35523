// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/emcd/appcore/internal/logger"
	"github.com/emcd/appcore/internal/utils"
	"github.com/emcd/appcore/models"
	"github.com/spf13/afero"
)

// acquisition runs the stages of one Acquire call. Every stage is a no-op
// once an earlier stage has failed.
type acquisition struct {
	ctx      context.Context
	acquirer *TomlAcquirer
	request  Request
	log      *logger.Logger

	document map[string]any
	resolver *TemplateResolver
	err      error
}

func (a *TomlAcquirer) newAcquisition(ctx context.Context, request Request) *acquisition {
	return &acquisition{
		ctx:      ctx,
		acquirer: a,
		request:  request,
		log:      a.loggerFor(ctx),
	}
}

func (b *acquisition) failed() bool {
	if b.err != nil {
		return true
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
		return true
	}
	return false
}

func (b *acquisition) build() (models.Configuration, error) {
	if b.err != nil {
		return models.Configuration{}, fmt.Errorf("error acquiring configuration: %w", b.err)
	}

	return models.Freeze(b.document), nil
}

func (b *acquisition) withMainDocument() *acquisition {
	if b.failed() {
		return b
	}

	if source, ok := b.request.Main.Get(); ok {
		b.document, b.err = b.readSource(source)
		return b
	}

	path, found, err := b.discoverMainFile()
	if err != nil {
		b.err = err
		return b
	}
	if !found {
		b.log.Debug().Msg("no configuration template available; starting from empty configuration")
		b.document = make(map[string]any)
		return b
	}

	b.log.Debug().Str("path", path).Msg("reading main configuration file")
	b.document, b.err = b.acquirer.readFile(path)
	return b
}

func (b *acquisition) readSource(source Source) (map[string]any, error) {
	if source.Reader != nil {
		b.log.Debug().Str("source", source.String()).Msg("reading configuration stream")
		return parseDocument(source.String(), source.Reader)
	}

	path := source.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.workingDirectory(), path)
	}
	b.log.Debug().Str("path", path).Msg("reading explicit configuration file")
	return b.acquirer.readFile(path)
}

// discoverMainFile returns the main document in the user configuration
// directory, publishing the distribution's template there when the
// document is missing. found is false when neither exists.
func (b *acquisition) discoverMainFile() (path string, found bool, err error) {
	directories := b.request.Directories
	if directories == nil {
		return "", false, fmt.Errorf("%w: directories are required to locate %s",
			ErrInvalidRequest, b.acquirer.options.MainFilename)
	}

	filename := b.acquirer.options.MainFilename
	path = filepath.Join(directories.UserConfigDir(), filename)
	exists, err := afero.Exists(b.acquirer.fs, path)
	if err != nil {
		return "", false, fmt.Errorf("error checking configuration file: %w", err)
	}
	if exists {
		return path, true, nil
	}

	if b.request.Distribution.Location == "" {
		return "", false, nil
	}
	template := b.request.Distribution.DataLocation("configuration", filename)
	content, err := afero.ReadFile(b.acquirer.fs, template)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading configuration template: %w", err)
	}

	if err := utils.AtomicWriteFile(b.acquirer.fs, path, content, 0o644); err != nil {
		return "", false, fmt.Errorf("error publishing configuration template: %w", err)
	}
	b.log.Info().
		Str("template", template).
		Str("path", path).
		Msg("published default configuration")
	return path, true, nil
}

func (b *acquisition) withTemplates() *acquisition {
	if b.failed() {
		return b
	}

	b.resolver = NewTemplateResolver(TemplateVariables(b.request.ApplicationName, b.request.Directories))
	b.resolver.Resolve(b.document)
	return b
}

func (b *acquisition) withIncludes() *acquisition {
	if b.failed() {
		return b
	}

	specs, err := includeSpecs(b.document, b.acquirer.options.IncludesName)
	if err != nil {
		b.err = err
		return b
	}

	for _, spec := range specs {
		if b.failed() {
			return b
		}
		paths, err := b.expandInclude(spec)
		if err != nil {
			b.err = err
			return b
		}
		for _, path := range paths {
			b.log.Debug().Str("spec", spec).Str("path", path).Msg("merging configuration include")
			document, err := b.acquirer.readFile(path)
			if err != nil {
				b.err = err
				return b
			}
			b.resolver.Resolve(document)
			b.document = Merge(b.document, document)
		}
	}
	return b
}

func (b *acquisition) withEdits() *acquisition {
	for i, edit := range b.request.Edits {
		if b.failed() {
			return b
		}
		if err := edit.Apply(b.document); err != nil {
			b.err = fmt.Errorf("edit %d failed: %w", i, err)
			return b
		}
	}
	return b
}

func (b *acquisition) workingDirectory() string {
	dir, err := b.acquirer.getwd()
	if err != nil {
		return "."
	}
	return dir
}
