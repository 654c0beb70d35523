// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform computes the OS-conventional per-user directories of an
// application.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/emcd/appcore/models"
	"github.com/spf13/afero"
)

// ErrHomeUnknown indicates that the user's home directory is unknown.
var ErrHomeUnknown = errors.New("user home directory unknown")

type homes struct {
	Home         string `env:"HOME"`
	UserProfile  string `env:"USERPROFILE"`
	ConfigHome   string `env:"XDG_CONFIG_HOME"`
	CacheHome    string `env:"XDG_CACHE_HOME"`
	DataHome     string `env:"XDG_DATA_HOME"`
	StateHome    string `env:"XDG_STATE_HOME"`
	AppData      string `env:"APPDATA"`
	LocalAppData string `env:"LOCALAPPDATA"`
}

// Options tunes [Produce].
type Options struct {
	// GOOS selects the conventions. Defaults to runtime.GOOS.
	GOOS string
	// Environment supplies the variables to read. Nil means the process
	// environment.
	Environment map[string]string
}

// Directories implements [models.Directories].
type Directories struct {
	Cache  string `json:"cache" toml:"cache"`
	Config string `json:"configuration" toml:"configuration"`
	Data   string `json:"data" toml:"data"`
	State  string `json:"state" toml:"state"`
	Home   string `json:"home" toml:"home"`
}

var _ models.Directories = (*Directories)(nil)

func (d *Directories) UserCacheDir() string  { return d.Cache }
func (d *Directories) UserConfigDir() string { return d.Config }
func (d *Directories) UserDataDir() string   { return d.Data }
func (d *Directories) UserStateDir() string  { return d.State }
func (d *Directories) UserHomeDir() string   { return d.Home }

// Produce returns the directories of app.
//
// On Linux and other Unix systems the XDG base directory variables are
// honored, falling back to ~/.cache, ~/.config, ~/.local/share and
// ~/.local/state; the application suffix is name[/version]. On Windows the
// suffix is [publisher/]name[/version] under %APPDATA% (configuration) and
// %LOCALAPPDATA% (everything else). On macOS ~/Library is used.
func Produce(app models.Application, options Options) (*Directories, error) {
	if app.Name == "" {
		return nil, errors.New("application name is required to produce directories")
	}
	goos := options.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	h := homes{}
	if err := env.ParseWithOptions(&h, env.Options{Environment: options.Environment}); err != nil {
		return nil, fmt.Errorf("error reading directory variables: %w", err)
	}

	home := h.Home
	if goos == "windows" && h.UserProfile != "" {
		home = h.UserProfile
	}
	if home == "" && options.Environment == nil {
		home, _ = os.UserHomeDir()
	}
	if home == "" {
		return nil, ErrHomeUnknown
	}

	switch goos {
	case "windows":
		return windowsDirectories(app, home, h), nil
	case "darwin", "ios":
		return darwinDirectories(app, home), nil
	}
	return xdgDirectories(app, home, h), nil
}

func xdgDirectories(app models.Application, home string, h homes) *Directories {
	suffix := suffix(app, false)
	return &Directories{
		Cache:  filepath.Join(orDefault(h.CacheHome, filepath.Join(home, ".cache")), suffix),
		Config: filepath.Join(orDefault(h.ConfigHome, filepath.Join(home, ".config")), suffix),
		Data:   filepath.Join(orDefault(h.DataHome, filepath.Join(home, ".local", "share")), suffix),
		State:  filepath.Join(orDefault(h.StateHome, filepath.Join(home, ".local", "state")), suffix),
		Home:   home,
	}
}

func darwinDirectories(app models.Application, home string) *Directories {
	suffix := suffix(app, false)
	support := filepath.Join(home, "Library", "Application Support")
	return &Directories{
		Cache:  filepath.Join(home, "Library", "Caches", suffix),
		Config: filepath.Join(support, suffix),
		Data:   filepath.Join(support, suffix),
		State:  filepath.Join(support, suffix),
		Home:   home,
	}
}

func windowsDirectories(app models.Application, home string, h homes) *Directories {
	suffix := suffix(app, true)
	roaming := orDefault(h.AppData, filepath.Join(home, "AppData", "Roaming"))
	local := orDefault(h.LocalAppData, filepath.Join(home, "AppData", "Local"))
	return &Directories{
		Cache:  filepath.Join(local, suffix, "Cache"),
		Config: filepath.Join(roaming, suffix),
		Data:   filepath.Join(local, suffix),
		State:  filepath.Join(local, suffix),
		Home:   home,
	}
}

func suffix(app models.Application, withPublisher bool) string {
	parts := make([]string, 0, 3)
	if withPublisher && app.Publisher != "" {
		parts = append(parts, app.Publisher)
	}
	parts = append(parts, app.Name)
	if app.Version != "" {
		parts = append(parts, app.Version)
	}
	return filepath.Join(parts...)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// Ensure creates the cache, configuration, data and state directories.
func (d *Directories) Ensure(fsys afero.Fs) error {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	for _, dir := range []string{d.Cache, d.Config, d.Data, d.State} {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	return nil
}
