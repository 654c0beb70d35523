// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// extractBundle copies every regular file of bundle into a fresh temporary
// directory of fsys and returns that directory. The directory is removed
// again when extraction fails.
func extractBundle(fsys afero.Fs, bundle fs.FS) (dir string, err error) {
	dir, err = afero.TempDir(fsys, "", "appcore-bundle-")
	if err != nil {
		return "", fmt.Errorf("error creating bundle directory: %w", err)
	}
	defer func() {
		if err != nil {
			_ = fsys.RemoveAll(dir)
		}
	}()

	err = fs.WalkDir(bundle, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if entry.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return copyBundleFile(fsys, bundle, name, target)
	})
	if err != nil {
		return "", fmt.Errorf("error extracting bundle: %w", err)
	}
	return dir, nil
}

func copyBundleFile(fsys afero.Fs, bundle fs.FS, name, target string) error {
	src, err := bundle.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := fsys.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
