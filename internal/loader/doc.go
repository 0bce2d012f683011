// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader parses brix configuration documents into a RawConfig: the
// ordered command entries plus the optional global context. YAML is the
// native format and JSON (with comments) is read through the same decoder.
// TOML and HCL documents describe the same model:
//
//	# YAML
//	context:
//	  author: Jane
//	commands:
//	  - template:
//	      source: main.go.tpl
//	      destination: "{{project}}/main.go"
//
//	# TOML
//	[context]
//	author = "Jane"
//	[[commands]]
//	[commands.template]
//	source = "main.go.tpl"
//	destination = "{{project}}/main.go"
//
//	# HCL
//	context = { author = env.USER }
//	command "template" {
//	  source      = "main.go.tpl"
//	  destination = "{{project}}/main.go"
//	}
//
// Parameters are kept untyped and optional; absence is preserved so that the
// commands can report every missing field themselves.
package loader
