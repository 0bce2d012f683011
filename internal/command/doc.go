// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for brix. It wires flags,
// validators, actions, and shell completion for subcommands.
//
// Subcommands:
//
//   - run CONFIG [key=value...] : resolve and execute a config document
//   - new LANGUAGE CONFIG_NAME PROJECT MODULE [key=value...] : run a config
//     from the catalog with language, config_name, project and module in
//     the context
//   - plan CONFIG [key=value...] : print the resolved commands
//   - list : print the catalog
//   - kinds : print the supported command kinds
//   - completion bash|zsh : print a shell completion script
//
// Flag values may also come from the settings file, first under the
// subcommand's key and then at the top level, so run.workdir wins over
// workdir for brix run.
package command
