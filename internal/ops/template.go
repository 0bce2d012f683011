// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/render"
)

// TemplateParams are the validated parameters of a template entry.
type TemplateParams struct {
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	Overwrite   *bool             `json:"overwrite,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	// Vars is what the source file is rendered with.
	Vars map[string]string `json:"-"`
}

// Kind implements Params.
func (TemplateParams) Kind() string { return KindTemplate }

// Template renders a file through the placeholder interpreter.
type Template struct{}

// NewTemplate returns the template command.
func NewTemplate() Command { return Template{} }

// Name implements Command.
func (Template) Name() string { return KindTemplate }

// Usage implements Command.
func (Template) Usage() Usage {
	return Usage{
		Summary:  "render a file with the merged context",
		Required: []string{"source", "destination"},
		Optional: []string{"overwrite", "context"},
	}
}

// Validate implements Command. Without Vars the local context is used.
func (Template) Validate(p ProcessedParams) (Params, error) {
	var c checker
	params := TemplateParams{
		Source:      c.required("source", p.Source),
		Destination: c.required("destination", p.Destination),
		Overwrite:   p.Overwrite,
		Context:     p.Context,
		Vars:        p.Vars,
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	if params.Vars == nil {
		params.Vars = p.Context
	}
	return params, nil
}

// Execute implements Command.
func (Template) Execute(ctx context.Context, p Params, env *Env) error {
	tp, ok := p.(TemplateParams)
	if !ok {
		return unexpected(KindTemplate, p)
	}

	fs := env.fs()
	src := env.resolve(tp.Source)
	dst := env.resolve(tp.Destination)

	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat template: %w", err)
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", src, err)
	}

	out, err := render.Render(string(data), tp.Vars)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", src, err)
	}

	_, err = writeFile(ctx, env, dst, []byte(out), info.Mode().Perm(), tp.Overwrite)
	return err
}
