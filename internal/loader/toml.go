// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

type tomlDocument struct {
	Commands []map[string]toml.Primitive `toml:"commands"`
	Context  map[string]string           `toml:"context"`
}

// parseTOML reads [[commands]] tables, each holding exactly one sub-table
// named after the command kind. TOML keeps no per-entry positions, so only
// syntax errors carry a line.
func parseTOML(data []byte, path string) (*RawConfig, error) {
	var doc tomlDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		perr := &ParseError{Path: path, Msg: err.Error(), Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Msg = tomlErr.Message
		}
		return nil, perr
	}

	cfg := &RawConfig{Path: path, Context: doc.Context}
	for i, table := range doc.Commands {
		if len(table) != 1 {
			return nil, &ParseError{Path: path, Msg: fmt.Sprintf("command #%d must have exactly one key, found %d", i+1, len(table))}
		}

		for kind, prim := range table {
			entry := CommandEntry{Kind: kind}
			if err := md.PrimitiveDecode(prim, &entry.Params); err != nil {
				return nil, &ParseError{Path: path, Msg: fmt.Sprintf("parameters of %q: %v", kind, err), Err: err}
			}
			cfg.Commands = append(cfg.Commands, entry)
		}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &ParseError{Path: path, Msg: fmt.Sprintf("unknown key %q", undecoded[0].String())}
	}

	return cfg, nil
}
