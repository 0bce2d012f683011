// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package catalog locates named configs in a config directory laid out as
// <dir>/<language>/<name>.brix.<ext>.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/loader"
	"github.com/brixgo/brix/internal/log"
)

// ErrNotFound is returned when no config matches a language and name.
var ErrNotFound = errors.New("config not found")

const suffix = ".brix"

// Entry is one config in the catalog.
type Entry struct {
	Language string `json:"language" yaml:"language"`
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
}

// DefaultDir is BRIX_CONFIG_DIR, else brix under the user config directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv("BRIX_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "brix"), nil
}

// Find returns the path of the config for language and name. When several
// formats exist the first in sorted order wins.
func Find(fsys afero.Fs, dir, language, name string) (string, error) {
	for _, part := range []string{language, name} {
		if part == "" || strings.ContainsAny(part, `*?[]{}\/`) {
			return "", fmt.Errorf("invalid catalog name %q", part)
		}
	}

	pattern := fmt.Sprintf("%s/%s%s.{%s}", language, name, suffix, strings.Join(loader.Extensions, ","))
	matches, err := glob(fsys, dir, pattern)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s/%s in %s", ErrNotFound, language, name, dir)
	case 1:
	default:
		log.Warnf("multiple configs for %s/%s, using %s", language, name, matches[0])
	}
	return filepath.Join(dir, filepath.FromSlash(matches[0])), nil
}

// List returns every config in dir ordered by language and name.
func List(fsys afero.Fs, dir string) ([]Entry, error) {
	matches, err := glob(fsys, dir, "*/*"+suffix+".*")
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		ext := path.Ext(base)
		if !known(ext) {
			log.Debugf("catalog: skipping %s", m)
			continue
		}
		entries = append(entries, Entry{
			Language: path.Dir(m),
			Name:     strings.TrimSuffix(strings.TrimSuffix(base, ext), suffix),
			Path:     filepath.Join(dir, filepath.FromSlash(m)),
		})
	}
	return entries, nil
}

func known(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, e := range loader.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func glob(fsys afero.Fs, dir, pattern string) ([]string, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config directory %s is not a directory", dir)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(afero.NewBasePathFs(fsys, dir)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", dir, err)
	}
	sort.Strings(matches)
	log.Debugf("catalog: %s matched %d files in %s", pattern, len(matches), dir)
	return matches, nil
}
