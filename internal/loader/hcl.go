// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

type hclDocument struct {
	Context  map[string]string `hcl:"context,optional"`
	Commands []hclCommand      `hcl:"command,block"`
}

type hclCommand struct {
	Kind        string            `hcl:"kind,label"`
	Source      *string           `hcl:"source,optional"`
	Destination *string           `hcl:"destination,optional"`
	Overwrite   *bool             `hcl:"overwrite,optional"`
	Search      *string           `hcl:"search,optional"`
	Replace     *string           `hcl:"replace,optional"`
	Context     map[string]string `hcl:"context,optional"`
}

// parseHCL decodes command blocks in source order. Expressions are evaluated
// with an env object holding the process environment.
func parseHCL(data []byte, path string) (*RawConfig, error) {
	filename := path
	if filename == "" {
		filename = "<input>"
	}

	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &doc); diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	// gohcl drops positions; the syntax body keeps blocks in the same order.
	var ranges []hcl.Range
	if body, ok := file.Body.(*hclsyntax.Body); ok {
		for _, b := range body.Blocks {
			if b.Type == "command" {
				ranges = append(ranges, b.DefRange())
			}
		}
	}

	cfg := &RawConfig{Path: path, Context: doc.Context}
	for i, c := range doc.Commands {
		entry := CommandEntry{
			Kind: c.Kind,
			Params: RawCommandParams{
				Source:      c.Source,
				Destination: c.Destination,
				Overwrite:   c.Overwrite,
				Search:      c.Search,
				Replace:     c.Replace,
				Context:     c.Context,
			},
		}
		if i < len(ranges) {
			entry.Line = ranges[i].Start.Line
			entry.Column = ranges[i].Start.Column
		}
		cfg.Commands = append(cfg.Commands, entry)
	}

	return cfg, nil
}

func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

// diagError converts the first error diagnostic into a ParseError.
func diagError(path string, diags hcl.Diagnostics) *ParseError {
	perr := &ParseError{Path: path, Msg: diags.Error(), Err: diags}
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		perr.Msg = d.Summary
		if d.Detail != "" {
			perr.Msg += ": " + d.Detail
		}
		if d.Subject != nil {
			perr.Line = d.Subject.Start.Line
			perr.Column = d.Subject.Start.Column
		}
		break
	}
	return perr
}
