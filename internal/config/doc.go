// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for brix's user
// settings. The settings are an optional YAML document located in the user's
// configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/brix.yaml or $HOME/.config/brix.yaml
//   - macOS: $HOME/Library/Application Support/brix.yaml
//   - Windows: %APPDATA%/brix.yaml
//
// BRIX_CFG_FILE overrides the location. These settings only supply defaults
// for CLI flags; they are unrelated to the brix configuration documents that
// describe commands (see package loader).
package config
