// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import "path/filepath"

// RawConfig is a parsed configuration document. It is not modified after
// parsing.
type RawConfig struct {
	// Path is the absolute path of the document, or empty when parsed from
	// memory without one.
	Path     string
	Commands []CommandEntry
	Context  map[string]string
}

// Dir is the directory that config-relative paths are resolved against.
func (c *RawConfig) Dir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// CommandEntry is one element of the commands list. Line and Column locate
// the entry in the document and are zero when the format cannot tell.
type CommandEntry struct {
	Kind   string
	Params RawCommandParams
	Line   int
	Column int
}

// RawCommandParams are the parameters exactly as authored. Nil means absent.
type RawCommandParams struct {
	Source      *string           `json:"source,omitempty" yaml:"source" toml:"source"`
	Destination *string           `json:"destination,omitempty" yaml:"destination" toml:"destination"`
	Overwrite   *bool             `json:"overwrite,omitempty" yaml:"overwrite" toml:"overwrite"`
	Search      *string           `json:"search,omitempty" yaml:"search" toml:"search"`
	Replace     *string           `json:"replace,omitempty" yaml:"replace" toml:"replace"`
	Context     map[string]string `json:"context,omitempty" yaml:"context" toml:"context"`
}

// paramKeys are the keys accepted inside a command entry.
var paramKeys = map[string]bool{
	"source":      true,
	"destination": true,
	"overwrite":   true,
	"search":      true,
	"replace":     true,
	"context":     true,
}
