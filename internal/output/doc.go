// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders brix results (resolved plans, command kinds and the
// config catalog) as text tables, JSON or YAML.
//
// Every result is first flattened into a dataset of rows keyed by column
// name, narrowed by the filters package when --filter is given, then
// optionally sorted with a spec such as "-kind,!destination"
// ("-" descending, "!" case sensitive). JSON and YAML output may be narrowed
// further with a gjson path query.
package output
