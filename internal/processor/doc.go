// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package processor turns a parsed config into an ordered list of ready to
// run steps.
//
// For each entry, in document order, the processor resolves the kind through
// the registry, merges the cli, global and command-local context layers,
// renders every string value of the entry's parameters with that context, and
// hands the result to the kind's Validate. Source paths are anchored to the
// config file's directory. Destination paths are left as written and later
// resolve against the working directory.
//
// Processing stops at the first failing entry and returns no list. The error
// is an *EntryError naming the entry's position and kind.
package processor
