// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emcd/appcore/internal/logger"
	"github.com/spf13/afero"
)

type acquirerFactory func(fsys afero.Fs, log *logger.Logger) (Acquirer, error)

var acquirers = map[string]acquirerFactory{
	"toml": func(fsys afero.Fs, log *logger.Logger) (Acquirer, error) {
		acquirer, err := NewTomlAcquirer(TomlOptions{}, fsys, log)
		if err != nil {
			return nil, err
		}
		return acquirer, nil
	},
}

// LookupAcquirer returns a default acquirer for documents of format, such
// as "toml". Formats without a backing implementation fail with
// [ErrDependencyAbsence].
func LookupAcquirer(format string, fsys afero.Fs, log *logger.Logger) (Acquirer, error) {
	factory, ok := acquirers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: no acquirer for %q documents", ErrDependencyAbsence, format)
	}
	return factory(fsys, log)
}

// Formats returns the document formats with a registered acquirer.
func Formats() []string {
	formats := make([]string, 0, len(acquirers))
	for format := range acquirers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
