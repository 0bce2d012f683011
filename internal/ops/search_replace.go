// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"context"
	"fmt"
	"regexp"

	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/log"
)

// SearchReplaceParams are the validated parameters of a search_replace entry.
type SearchReplaceParams struct {
	Destination string         `json:"destination"`
	Search      *regexp.Regexp `json:"-"`
	Pattern     string         `json:"search"`
	Replace     string         `json:"replace"`
}

// Kind implements Params.
func (SearchReplaceParams) Kind() string { return KindSearchReplace }

// SearchReplace rewrites every match of a regular expression in a file.
type SearchReplace struct{}

// NewSearchReplace returns the search_replace command.
func NewSearchReplace() Command { return SearchReplace{} }

// Name implements Command.
func (SearchReplace) Name() string { return KindSearchReplace }

// Usage implements Command.
func (SearchReplace) Usage() Usage {
	return Usage{
		Summary:  "replace regex matches in a file in place",
		Required: []string{"destination", "search", "replace"},
	}
}

// Validate implements Command. An empty replace is allowed, an empty search
// is not.
func (SearchReplace) Validate(p ProcessedParams) (Params, error) {
	var c checker
	params := SearchReplaceParams{
		Destination: c.required("destination", p.Destination),
		Pattern:     c.required("search", p.Search),
		Replace:     c.required("replace", p.Replace),
	}

	if p.Search != nil {
		if params.Pattern == "" {
			c.fail("search", "must not be empty")
		} else if re, err := regexp.Compile(params.Pattern); err != nil {
			c.fail("search", "invalid pattern: %v", err)
		} else {
			params.Search = re
		}
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return params, nil
}

// Execute implements Command. The file must already exist.
func (SearchReplace) Execute(_ context.Context, p Params, env *Env) error {
	sr, ok := p.(SearchReplaceParams)
	if !ok {
		return unexpected(KindSearchReplace, p)
	}

	fs := env.fs()
	path := env.resolve(sr.Destination)

	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	matches := len(sr.Search.FindAllIndex(data, -1))
	if matches == 0 {
		log.Warnf("no match for %q in %s", sr.Pattern, path)
		return nil
	}

	out := sr.Search.ReplaceAll(data, []byte(sr.Replace))
	if err := afero.WriteFile(fs, path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Infof("replaced %d %s in %s", matches, plural(matches, "occurrence"), path)
	return nil
}
