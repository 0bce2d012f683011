// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/log"
)

// CopyParams are the validated parameters of a copy entry.
type CopyParams struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Overwrite   *bool  `json:"overwrite,omitempty"`
}

// Kind implements Params.
func (CopyParams) Kind() string { return KindCopy }

// Copy copies a file or a directory tree.
type Copy struct{}

// NewCopy returns the copy command.
func NewCopy() Command { return Copy{} }

// Name implements Command.
func (Copy) Name() string { return KindCopy }

// Usage implements Command.
func (Copy) Usage() Usage {
	return Usage{
		Summary:  "copy a file or directory",
		Required: []string{"source", "destination"},
		Optional: []string{"overwrite"},
	}
}

// Validate implements Command.
func (Copy) Validate(p ProcessedParams) (Params, error) {
	var c checker
	params := CopyParams{
		Source:      c.required("source", p.Source),
		Destination: c.required("destination", p.Destination),
		Overwrite:   p.Overwrite,
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return params, nil
}

// Execute implements Command.
func (Copy) Execute(ctx context.Context, p Params, env *Env) error {
	cp, ok := p.(CopyParams)
	if !ok {
		return unexpected(KindCopy, p)
	}

	fs := env.fs()
	src := env.resolve(cp.Source)
	dst := env.resolve(cp.Destination)

	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !info.IsDir() {
		return copyFile(ctx, env, src, dst, info.Mode(), cp.Overwrite)
	}

	log.Debugf("copying tree %s to %s", src, dst)
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			if err := fs.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		return copyFile(ctx, env, path, target, info.Mode(), cp.Overwrite)
	})
}

func copyFile(ctx context.Context, env *Env, src, dst string, mode os.FileMode, overwrite *bool) error {
	data, err := afero.ReadFile(env.fs(), src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	_, err = writeFile(ctx, env, dst, data, mode.Perm(), overwrite)
	return err
}
