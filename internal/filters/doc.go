// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows the rows printed by plan, list and kinds.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, override with BRIX_FILTER_DELIM). Operators may be negated with a
// leading '!':
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than (numeric when both sides are numbers)
//   - @ : substring, or membership for lists and maps
//   - / : regex match
//
// A key with no operator keeps rows where the key is present and non-empty.
// Keys are dot paths into the row, so "context.name=demo" reaches into a
// template's local context and "required[0]=source" into a list.
//
// Examples:
//
//   - "kind=template"
//   - "destination^src/"
//   - "required@search"
//   - "index>2"
//   - "kind!=copy,overwrite"
package filters
