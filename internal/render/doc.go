// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render is the placeholder interpreter used for brix parameters and
// template files. A template is literal text with {{ key }} tags (or the
// equivalent {{{ key }}}) whose key is looked up in a flat string map. A tag
// may name a helper before the key, as in {{ pascal module }}, to change the
// case of the value. A backslash before the braces, \{{, emits literal braces.
//
// There is no logic: block helpers such as {{#if x}}...{{/if}}, {{#each}}
// and {{else}} are rejected with a Syntax error.
//
// Lookups are strict: a key missing from the map fails the whole render with
// an UndefinedVariable error and no partial output. Values are inserted
// verbatim; nothing is HTML escaped.
package render
