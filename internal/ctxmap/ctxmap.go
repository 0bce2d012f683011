// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package ctxmap merges the three layers of substitution context that feed
// the render package: values from the command line, the config document's
// global context and a command's own context.
package ctxmap

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/log"
)

// ContextMap holds the three named layers. Any layer may be nil.
type ContextMap struct {
	CLIPositional map[string]string
	ConfigGlobal  map[string]string
	CommandLocal  map[string]string
}

// Merge flattens the layers into a new map. Precedence, highest first, is
// CommandLocal, ConfigGlobal, CLIPositional. The layers are never modified.
func (c ContextMap) Merge() map[string]string {
	merged := make(map[string]string, len(c.CLIPositional)+len(c.ConfigGlobal)+len(c.CommandLocal))
	for _, layer := range []map[string]string{c.CLIPositional, c.ConfigGlobal, c.CommandLocal} {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Merge is shorthand for ContextMap{cli, global, local}.Merge().
func Merge(cli, global, local map[string]string) map[string]string {
	return ContextMap{CLIPositional: cli, ConfigGlobal: global, CommandLocal: local}.Merge()
}

// ParseArgs turns key=value arguments into a map. The value is everything
// after the first '=' and may be empty. Later duplicates win.
func ParseArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid context argument %q: expected key=value", arg)
		}
		if prev, dup := out[k]; dup {
			log.Debugf("context argument %s=%q overrides %q", k, v, prev)
		}
		out[k] = v
	}
	return out, nil
}

// LoadEnvFile reads a dotenv file from fsys into a map.
func LoadEnvFile(fsys afero.Fs, path string) (map[string]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	defer f.Close()

	vals, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	log.Debugf("loaded %d context values from %s", len(vals), path)
	return vals, nil
}

// Overlay returns a new map with the entries of each map applied in order, so
// later maps win. Used to stack the env file beneath explicit arguments.
func Overlay(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
