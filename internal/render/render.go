// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"regexp"
	"strings"
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// Template is a parsed template ready to execute against any context.
type Template struct {
	nodes []node
}

// node is either literal text or a tag.
type node struct {
	text string
	tag  *tag
}

type tag struct {
	helper string
	key    string
	line   int
	col    int
}

// Render parses src and executes it against vars in one step.
func Render(src string, vars map[string]string) (string, error) {
	// Nothing to do without an opening tag.
	if !strings.Contains(src, "{{") {
		return src, nil
	}

	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return t.Execute(vars)
}

// Parse scans src into literal and tag nodes.
func Parse(src string) (*Template, error) {
	t := &Template{}
	var lit strings.Builder
	line, col := 1, 1

	flush := func() {
		if lit.Len() > 0 {
			t.nodes = append(t.nodes, node{text: lit.String()})
			lit.Reset()
		}
	}

	// advance moves i forward over s, tracking line and column.
	advance := func(s string) {
		for _, r := range s {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	for i := 0; i < len(src); {
		rest := src[i:]
		switch {
		case strings.HasPrefix(rest, `\{{`):
			lit.WriteString("{{")
			advance(rest[:3])
			i += 3

		case strings.HasPrefix(rest, "{{"):
			open, closing := "{{", "}}"
			if strings.HasPrefix(rest, "{{{") {
				open, closing = "{{{", "}}}"
			}

			end := strings.Index(rest[len(open):], closing)
			if end < 0 {
				return nil, syntaxError(line, col, "unclosed %q", open)
			}

			body := rest[len(open) : len(open)+end]
			tg, err := parseTag(body, line, col)
			if err != nil {
				return nil, err
			}

			flush()
			t.nodes = append(t.nodes, node{tag: tg})

			width := len(open) + end + len(closing)
			advance(rest[:width])
			i += width

		default:
			// Copy up to the next brace or backslash in one go.
			next := strings.IndexAny(rest[1:], `{\`)
			if next < 0 {
				next = len(rest) - 1
			}
			chunk := rest[:next+1]
			lit.WriteString(chunk)
			advance(chunk)
			i += len(chunk)
		}
	}

	flush()
	return t, nil
}

func parseTag(body string, line, col int) (*tag, error) {
	fields := strings.Fields(body)

	// {{#if x}}, {{/if}} and {{else}} belong to block helpers.
	if trimmed := strings.TrimSpace(body); strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "/") || trimmed == "else" {
		return nil, syntaxError(line, col, "block helpers are not supported: {{%s}}", trimmed)
	}

	var helper, key string
	switch len(fields) {
	case 0:
		return nil, syntaxError(line, col, "empty tag")
	case 1:
		key = fields[0]
	case 2:
		helper, key = fields[0], fields[1]
		if _, ok := helpers[helper]; !ok {
			return nil, syntaxError(line, col, "unknown helper %q", helper)
		}
	default:
		return nil, syntaxError(line, col, "too many arguments in %q", strings.TrimSpace(body))
	}

	if !keyRe.MatchString(key) {
		return nil, syntaxError(line, col, "invalid key %q", key)
	}

	return &tag{helper: helper, key: key, line: line, col: col}, nil
}

// Execute renders the template. Any undefined key fails the whole render.
func (t *Template) Execute(vars map[string]string) (string, error) {
	var out strings.Builder
	for _, n := range t.nodes {
		if n.tag == nil {
			out.WriteString(n.text)
			continue
		}

		val, ok := vars[n.tag.key]
		if !ok {
			return "", &Error{Kind: UndefinedVariable, Name: n.tag.key, Line: n.tag.line, Column: n.tag.col}
		}
		if n.tag.helper != "" {
			val = helpers[n.tag.helper](val)
		}
		out.WriteString(val)
	}
	return out.String(), nil
}

// Keys returns the distinct keys referenced by the template in order of
// first appearance.
func (t *Template) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, n := range t.nodes {
		if n.tag != nil && !seen[n.tag.key] {
			seen[n.tag.key] = true
			keys = append(keys, n.tag.key)
		}
	}
	return keys
}
