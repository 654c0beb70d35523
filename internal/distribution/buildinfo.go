// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/afero"
)

const develVersion = "(devel)"

// BuildInfoIndex is a [MetadataIndex] backed by the build information
// embedded into the running binary.
//
// A module counts as installed when it carries a released version. Its
// resource root is <exe dir>/../share/<module base name> when that
// directory exists, else the directory of the executable.
type BuildInfoIndex struct {
	fs         afero.Fs
	readInfo   func() (*debug.BuildInfo, bool)
	executable func() (string, error)
}

// NewBuildInfoIndex returns an index over the running binary. A nil fsys
// means the OS filesystem.
func NewBuildInfoIndex(fsys afero.Fs) *BuildInfoIndex {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &BuildInfoIndex{
		fs:         fsys,
		readInfo:   debug.ReadBuildInfo,
		executable: os.Executable,
	}
}

// Lookup implements [MetadataIndex].
func (i *BuildInfoIndex) Lookup(ctx context.Context, packageName string) (Metadata, bool, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, false, err
	}

	info, ok := i.readInfo()
	if !ok {
		return Metadata{}, false, nil
	}

	module, ok := carrier(info, packageName)
	if !ok || module.Version == "" || module.Version == develVersion {
		return Metadata{}, false, nil
	}

	location, err := i.resourceRoot(module.Path)
	if err != nil {
		return Metadata{}, false, err
	}
	return Metadata{Name: module.Path, Version: module.Version, Location: location}, true, nil
}

// Modules implements [MetadataIndex].
func (i *BuildInfoIndex) Modules() []string {
	info, ok := i.readInfo()
	if !ok {
		return nil
	}
	modules := make([]string, 0, len(info.Deps)+1)
	if info.Main.Path != "" {
		modules = append(modules, info.Main.Path)
	}
	for _, dep := range info.Deps {
		modules = append(modules, dep.Path)
	}
	return modules
}

func (i *BuildInfoIndex) resourceRoot(modulePath string) (string, error) {
	exe, err := i.executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeDir := filepath.Dir(exe)

	share := filepath.Join(exeDir, "..", "share", path.Base(modulePath))
	if exists, _ := afero.DirExists(i.fs, share); exists {
		return filepath.Clean(share), nil
	}
	return exeDir, nil
}

// carrier returns the module of info whose path owns packageName.
func carrier(info *debug.BuildInfo, packageName string) (debug.Module, bool) {
	candidates := make([]debug.Module, 0, len(info.Deps)+1)
	candidates = append(candidates, info.Main)
	for _, dep := range info.Deps {
		if dep.Replace != nil {
			candidates = append(candidates, debug.Module{Path: dep.Path, Version: dep.Replace.Version})
			continue
		}
		candidates = append(candidates, *dep)
	}

	var best debug.Module
	found := false
	for _, module := range candidates {
		if !ownsPackage(module.Path, packageName) {
			continue
		}
		if !found || len(module.Path) > len(best.Path) {
			best, found = module, true
		}
	}
	return best, found
}

func ownsPackage(modulePath, packageName string) bool {
	if modulePath == "" {
		return false
	}
	return packageName == modulePath || strings.HasPrefix(packageName, modulePath+"/")
}
