// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	wordSplitRe     = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// helpers maps helper names usable in tags to their transforms. Casers are
// built per call because a cases.Caser carries state.
var helpers = map[string]func(string) string{
	"upper": func(s string) string { return cases.Upper(language.Und).String(s) },
	"lower": func(s string) string { return cases.Lower(language.Und).String(s) },
	"title": func(s string) string { return cases.Title(language.Und).String(s) },
	"snake": func(s string) string { return strings.Join(words(s), "_") },
	"kebab": func(s string) string { return strings.Join(words(s), "-") },
	"camel": func(s string) string {
		ws := words(s)
		for i := 1; i < len(ws); i++ {
			ws[i] = cases.Title(language.Und).String(ws[i])
		}
		return strings.Join(ws, "")
	},
	"pascal": func(s string) string {
		ws := words(s)
		for i := range ws {
			ws[i] = cases.Title(language.Und).String(ws[i])
		}
		return strings.Join(ws, "")
	},
}

// Helpers returns the sorted helper names.
func Helpers() []string {
	names := make([]string, 0, len(helpers))
	for name := range helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// words splits s on separators and camelCase boundaries and lower-cases the
// parts, so "myHTTP-server_v2" gives [my http server v2].
func words(s string) []string {
	s = camelBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	var out []string
	for _, w := range wordSplitRe.Split(s, -1) {
		if w != "" {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}
