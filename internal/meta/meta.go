// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded settings, context, the starting working directory and the streams
// and filesystem the commands use.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string

	Fs     afero.Fs
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Meta bound to the process streams and the OS filesystem.
func New(ctx context.Context, args []string, cfg config.Type, startingDir string) Meta {
	return Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: startingDir,
		Fs:          afero.NewOsFs(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}
