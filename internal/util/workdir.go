// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ParseWorkDir returns the absolute form of dir, which destination paths are
// resolved against. A relative dir is taken from the current directory. When
// create is set a missing directory is made in fsys, otherwise it is an
// error, as is an entry that is not a directory.
func ParseWorkDir(fsys afero.Fs, dir string, create bool) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	info, err := fsys.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist) && create:
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		return dir, nil
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("%s: %w", dir, os.ErrInvalid)
	}

	return dir, nil
}
