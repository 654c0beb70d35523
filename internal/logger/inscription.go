// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Mode selects how log entries are written.
type Mode string

const (
	// ModeNull discards every entry.
	ModeNull Mode = "null"
	// ModePlain writes JSON lines.
	ModePlain Mode = "plain"
	// ModeRich writes colored, human-oriented lines.
	ModeRich Mode = "rich"
)

// Control describes the inscription (logging) setup of an application.
// Empty fields take defaults: plain mode, info level, os.Stderr.
type Control struct {
	Mode   Mode
	Level  string
	Target io.Writer
}

type levelOverrides struct {
	InscriptionLevel string `env:"INSCRIPTION_LEVEL"`
	LogLevel         string `env:"LOG_LEVEL"`
}

// Prepare builds the logger for application name according to control.
//
// The level may be overridden by <NAME>_INSCRIPTION_LEVEL or, failing that,
// <NAME>_LOG_LEVEL, read from environ (a nil environ means the process
// environment). NAME is the application name upper-cased with dashes and
// dots replaced by underscores.
func Prepare(control Control, name string, environ map[string]string) (*Logger, error) {
	level, err := resolveLevel(control.Level, name, environ)
	if err != nil {
		return nil, err
	}

	target := control.Target
	if target == nil {
		target = os.Stderr
	}

	switch control.Mode {
	case ModeNull:
		return Nop(), nil
	case ModeRich:
		target = zerolog.ConsoleWriter{Out: target, TimeFormat: "15:04:05"}
	case "", ModePlain:
	default:
		return nil, fmt.Errorf("unknown inscription mode %q", control.Mode)
	}

	return newLogger(target, name, level), nil
}

func resolveLevel(configured, name string, environ map[string]string) (zerolog.Level, error) {
	overrides := levelOverrides{}
	opts := env.Options{Prefix: EnvironmentPrefix(name), Environment: environ}
	if err := env.ParseWithOptions(&overrides, opts); err != nil {
		return zerolog.NoLevel, fmt.Errorf("error reading inscription level: %w", err)
	}

	raw := configured
	switch {
	case overrides.InscriptionLevel != "":
		raw = overrides.InscriptionLevel
	case overrides.LogLevel != "":
		raw = overrides.LogLevel
	}
	if raw == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid inscription level %q: %w", raw, err)
	}
	return level, nil
}

// EnvironmentPrefix returns the environment variable prefix, including the
// trailing underscore, derived from an application name.
func EnvironmentPrefix(name string) string {
	replacer := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToUpper(replacer.Replace(name)) + "_"
}
