// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package ops holds the command kinds a brix config can name.
//
// Every kind implements Command. Validate turns the rendered, still optional
// parameters of one config entry into the kind's typed parameters, reporting
// every missing or invalid field at once. Execute performs the filesystem work
// against the Env it is given.
//
// Kinds:
//
//   - copy : copy a file or a directory tree (source, destination, overwrite)
//   - search_replace : regex replace inside a file (destination, search, replace)
//   - template : render a file through the placeholder interpreter
//     (source, destination, overwrite, context)
//
// Overwrite:
//
// A destination that does not exist is always written. When it exists,
// overwrite=true writes, overwrite=false skips, and an unset overwrite asks the
// Env's Prompter, passing a short line diff of what would change.
package ops
