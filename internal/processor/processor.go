// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/brixgo/brix/internal/ctxmap"
	"github.com/brixgo/brix/internal/loader"
	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/registry"
	"github.com/brixgo/brix/internal/render"
)

// ErrInvalidUTF8 is returned for a parameter or rendered value that is not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Step is one resolved entry.
type Step struct {
	Index   int
	Line    int
	Kind    string
	Command ops.Command
	Params  ops.Params
}

// CommandList is the ordered result of Process.
type CommandList []Step

// EntryError locates a failure at one config entry.
type EntryError struct {
	Index int
	Line  int
	Kind  string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("command #%d (%s) at line %d: %v", e.Index+1, e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("command #%d (%s): %v", e.Index+1, e.Kind, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Options configure a Processor.
type Options struct {
	// CLIContext is the lowest precedence context layer.
	CLIContext map[string]string
	// Registry defaults to registry.Default.
	Registry *registry.Registry
}

// Processor resolves config entries. It holds no state between calls.
type Processor struct {
	cli      map[string]string
	registry *registry.Registry
}

// New returns a Processor.
func New(opts Options) *Processor {
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default
	}
	return &Processor{cli: opts.CLIContext, registry: reg}
}

// Process resolves every entry of raw in order. It returns nil and the first
// error when any entry fails.
func (p *Processor) Process(raw *loader.RawConfig) (CommandList, error) {
	list := make(CommandList, 0, len(raw.Commands))
	for i, entry := range raw.Commands {
		step, err := p.processEntry(raw, i, entry)
		if err != nil {
			return nil, err
		}
		list = append(list, step)
	}

	log.Debugf("processed %d commands from %s", len(list), raw.Path)
	return list, nil
}

func (p *Processor) processEntry(raw *loader.RawConfig, index int, entry loader.CommandEntry) (Step, error) {
	fail := func(kind string, err error) (Step, error) {
		return Step{}, &EntryError{Index: index, Line: entry.Line, Kind: kind, Err: err}
	}

	cmd, err := p.registry.Resolve(entry.Kind)
	if err != nil {
		return fail(entry.Kind, err)
	}
	kind := cmd.Name()

	vars := ctxmap.ContextMap{
		CLIPositional: p.cli,
		ConfigGlobal:  raw.Context,
		CommandLocal:  entry.Params.Context,
	}.Merge()

	rendered, err := renderParams(entry.Params, vars)
	if err != nil {
		return fail(kind, err)
	}

	processed := ops.ProcessedParams{
		Source:      rendered.Source,
		Destination: rendered.Destination,
		Overwrite:   rendered.Overwrite,
		Search:      rendered.Search,
		Replace:     rendered.Replace,
		Context:     rendered.Context,
		Vars:        ctxmap.Overlay(vars, rendered.Context),
	}
	if processed.Source != nil && !filepath.IsAbs(*processed.Source) {
		src := filepath.Join(raw.Dir(), *processed.Source)
		processed.Source = &src
	}

	params, err := cmd.Validate(processed)
	if err != nil {
		return fail(kind, err)
	}

	log.Tracef("entry %d: %s %+v", index, kind, params)
	return Step{Index: index, Line: entry.Line, Kind: kind, Command: cmd, Params: params}, nil
}

// renderParams renders every string value in params. Keys are left alone and
// absent fields stay absent.
func renderParams(params loader.RawCommandParams, vars map[string]string) (loader.RawCommandParams, error) {
	var out loader.RawCommandParams

	// encoding/json would replace invalid bytes with U+FFFD.
	if err := checkUTF8(params); err != nil {
		return out, err
	}

	data, err := json.Marshal(params)
	if err != nil {
		return out, fmt.Errorf("failed to encode params: %w", err)
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return out, fmt.Errorf("failed to decode params: %w", err)
	}

	tree, err = renderTree(tree, "", vars)
	if err != nil {
		return out, err
	}

	if data, err = json.Marshal(tree); err != nil {
		return out, fmt.Errorf("failed to encode params: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode rendered params: %w", err)
	}
	return out, nil
}

func renderTree(node any, path string, vars map[string]string) (any, error) {
	switch v := node.(type) {
	case string:
		s, err := render.Render(v, vars)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%s: %w in %q", path, ErrInvalidUTF8, s)
		}
		return s, nil

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := k
			if path != "" {
				child = path + "." + k
			}
			r, err := renderTree(v[k], child, vars)
			if err != nil {
				return nil, err
			}
			v[k] = r
		}
		return v, nil

	case []any:
		for i := range v {
			r, err := renderTree(v[i], fmt.Sprintf("%s[%d]", path, i), vars)
			if err != nil {
				return nil, err
			}
			v[i] = r
		}
		return v, nil
	}
	return node, nil
}

// checkUTF8 rejects parameter strings that are not valid UTF-8.
func checkUTF8(params loader.RawCommandParams) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"source", params.Source},
		{"destination", params.Destination},
		{"search", params.Search},
		{"replace", params.Replace},
	}
	for _, f := range fields {
		if f.value != nil && !utf8.ValidString(*f.value) {
			return fmt.Errorf("%s: %w in %q", f.name, ErrInvalidUTF8, *f.value)
		}
	}

	keys := make([]string, 0, len(params.Context))
	for k := range params.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !utf8.ValidString(k) || !utf8.ValidString(params.Context[k]) {
			return fmt.Errorf("context.%s: %w", k, ErrInvalidUTF8)
		}
	}
	return nil
}
