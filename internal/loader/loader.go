// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// Format names a document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// Extensions lists the file extensions Load understands, without the dot.
var Extensions = []string{"yaml", "yml", "json", "jsonc", "toml", "hcl"}

// FormatFor picks the format from the file extension. Anything unrecognized
// is treated as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	default:
		return FormatYAML
	}
}

// Load reads the document at path from fsys and parses it.
func Load(fsys afero.Fs, path string) (*RawConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	data, err := afero.ReadFile(fsys, abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data, FormatFor(abs), abs)
}

// Parse decodes data in the given format. path is recorded in the result and
// in errors; a relative path is made absolute.
func Parse(data []byte, format Format, path string) (*RawConfig, error) {
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	var (
		cfg *RawConfig
		err error
	)
	switch format {
	case FormatJSON:
		// Comments and trailing commas go first. JSON forbids raw tabs inside
		// strings, so the remaining tabs are whitespace YAML may reject.
		data = bytes.ReplaceAll(jsonc.ToJSON(data), []byte("\t"), []byte(" "))
		cfg, err = parseYAML(data, path)
	case FormatTOML:
		cfg, err = parseTOML(data, path)
	case FormatHCL:
		cfg, err = parseHCL(data, path)
	default:
		cfg, err = parseYAML(data, path)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("parsed %d commands from %s (%s)", len(cfg.Commands), path, format)
	return cfg, nil
}
