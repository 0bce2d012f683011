// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixgo/brix/internal/loader"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/registry"
	"github.com/brixgo/brix/internal/render"
)

func ptr[T any](v T) *T { return &v }

func entry(kind string, p loader.RawCommandParams) loader.CommandEntry {
	return loader.CommandEntry{Kind: kind, Params: p}
}

func TestProcess_OrderAndPaths(t *testing.T) {
	raw := &loader.RawConfig{
		Path:    "/cfg/brix.yaml",
		Context: map[string]string{"project": "demo"},
		Commands: []loader.CommandEntry{
			entry("copy", loader.RawCommandParams{Source: ptr("skel/{{project}}"), Destination: ptr("{{project}}/src")}),
			entry("Search_Replace", loader.RawCommandParams{Destination: ptr("{{project}}/go.mod"), Search: ptr("MODULE"), Replace: ptr("example.com/{{project}}")}),
			entry("template", loader.RawCommandParams{Source: ptr("/abs/t.txt"), Destination: ptr("/out/{{project}}.txt"), Overwrite: ptr(true)}),
		},
	}

	list, err := New(Options{}).Process(raw)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, []string{"copy", "search_replace", "template"}, []string{list[0].Kind, list[1].Kind, list[2].Kind})
	for i, s := range list {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, s.Kind, s.Command.Name())
		assert.Equal(t, s.Kind, s.Params.Kind())
	}

	assert.Equal(t, ops.CopyParams{Source: "/cfg/skel/demo", Destination: "demo/src"}, list[0].Params)

	sr := list[1].Params.(ops.SearchReplaceParams)
	assert.Equal(t, "demo/go.mod", sr.Destination)
	assert.Equal(t, "example.com/demo", sr.Replace)

	tp := list[2].Params.(ops.TemplateParams)
	assert.Equal(t, "/abs/t.txt", tp.Source)
	assert.Equal(t, "/out/demo.txt", tp.Destination)
	require.NotNil(t, tp.Overwrite)
	assert.True(t, *tp.Overwrite)
}

func TestProcess_RelativeConfigDir(t *testing.T) {
	raw := &loader.RawConfig{Commands: []loader.CommandEntry{
		entry("copy", loader.RawCommandParams{Source: ptr("a.txt"), Destination: ptr("b.txt")}),
	}}

	list, err := New(Options{}).Process(raw)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", list[0].Params.(ops.CopyParams).Source)
}

func TestProcess_Precedence(t *testing.T) {
	raw := &loader.RawConfig{
		Path:    "/cfg/brix.yaml",
		Context: map[string]string{"name": "global", "g": "global"},
		Commands: []loader.CommandEntry{
			entry("copy", loader.RawCommandParams{
				Source:      ptr("s"),
				Destination: ptr("{{name}}-{{g}}-{{c}}"),
				Context:     map[string]string{"name": "local"},
			}),
			entry("copy", loader.RawCommandParams{Source: ptr("s"), Destination: ptr("{{name}}-{{g}}-{{c}}")}),
		},
	}

	list, err := New(Options{CLIContext: map[string]string{"name": "cli", "g": "cli", "c": "cli"}}).Process(raw)
	require.NoError(t, err)
	assert.Equal(t, "local-global-cli", list[0].Params.(ops.CopyParams).Destination)
	assert.Equal(t, "global-global-cli", list[1].Params.(ops.CopyParams).Destination)
}

func TestProcess_TemplateVars(t *testing.T) {
	raw := &loader.RawConfig{
		Path:    "/cfg/brix.yaml",
		Context: map[string]string{"name": "Brix"},
		Commands: []loader.CommandEntry{
			entry("template", loader.RawCommandParams{
				Source:      ptr("t.txt"),
				Destination: ptr("out.txt"),
				Context:     map[string]string{"greeting": "Hello {{name}}", "{{key}}": "kept"},
			}),
		},
	}

	list, err := New(Options{CLIContext: map[string]string{"user": "jane"}}).Process(raw)
	require.NoError(t, err)

	tp := list[0].Params.(ops.TemplateParams)
	assert.Equal(t, map[string]string{"greeting": "Hello Brix", "{{key}}": "kept"}, tp.Context)
	assert.Equal(t, "Hello Brix", tp.Vars["greeting"])
	assert.Equal(t, "Brix", tp.Vars["name"])
	assert.Equal(t, "jane", tp.Vars["user"])
	assert.Nil(t, tp.Overwrite)
}

func TestProcess_Errors(t *testing.T) {
	good := entry("copy", loader.RawCommandParams{Source: ptr("a"), Destination: ptr("b")})

	tests := []struct {
		name    string
		entries []loader.CommandEntry
		index   int
		kind    string
		msg     string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown kind",
			entries: []loader.CommandEntry{entry("coyp", loader.RawCommandParams{})},
			kind:    "coyp",
			msg:     "command #1 (coyp): command 'coyp' not found... did you mean 'copy'?",
			check: func(t *testing.T, err error) {
				var nf *registry.NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "copy", nf.Suggestion)
			},
		},
		{
			name:    "undefined variable",
			entries: []loader.CommandEntry{good, entry("template", loader.RawCommandParams{Source: ptr("t"), Destination: ptr("{{missing}}")})},
			index:   1,
			kind:    "template",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, render.ErrUndefinedVariable)
				assert.Contains(t, err.Error(), "command #2 (template): destination:")
			},
		},
		{
			name:    "bad syntax",
			entries: []loader.CommandEntry{entry("copy", loader.RawCommandParams{Source: ptr("{{ name"), Destination: ptr("b")})},
			kind:    "copy",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, render.ErrSyntax)
			},
		},
		{
			name:    "validation",
			entries: []loader.CommandEntry{good, good, entry("COPY", loader.RawCommandParams{Overwrite: ptr(true)})},
			index:   2,
			kind:    "copy",
			check: func(t *testing.T, err error) {
				var verrs ops.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, []string{"source", "destination"}, verrs.Fields())
			},
		},
		{
			name:    "invalid utf-8 search",
			entries: []loader.CommandEntry{entry("search_replace", loader.RawCommandParams{Destination: ptr("f"), Search: ptr("a\xffb"), Replace: ptr("c")})},
			kind:    "search_replace",
			msg:     `command #1 (search_replace): search: invalid UTF-8 in "a\xffb"`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidUTF8)
			},
		},
		{
			name:    "invalid utf-8 context",
			entries: []loader.CommandEntry{entry("template", loader.RawCommandParams{Source: ptr("t"), Destination: ptr("d"), Context: map[string]string{"k": "\xfe"}})},
			kind:    "template",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidUTF8)
				assert.Contains(t, err.Error(), "context.k")
			},
		},
		{
			name: "fail fast",
			entries: []loader.CommandEntry{
				entry("nope", loader.RawCommandParams{}),
				entry("copy", loader.RawCommandParams{}),
			},
			kind: "nope",
			msg:  "command #1 (nope): command 'nope' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &loader.RawConfig{Path: "/cfg/brix.yaml", Commands: tt.entries}

			list, err := New(Options{}).Process(raw)
			require.Error(t, err)
			assert.Nil(t, list)

			var ee *EntryError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, tt.index, ee.Index)
			assert.Equal(t, tt.kind, ee.Kind)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestProcess_InvalidUTF8FromCLI(t *testing.T) {
	raw := &loader.RawConfig{Path: "/cfg/brix.yaml", Commands: []loader.CommandEntry{
		entry("copy", loader.RawCommandParams{Source: ptr("a"), Destination: ptr("{{name}}")}),
	}}

	list, err := New(Options{CLIContext: map[string]string{"name": "x\xff"}}).Process(raw)
	require.Error(t, err)
	assert.Nil(t, list)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "destination:")
}

func TestProcess_LineInError(t *testing.T) {
	doc := `commands:
  - copy:
      source: a
      destination: b
  - template:
      source: t
`
	raw, err := loader.Parse([]byte(doc), loader.FormatYAML, "/cfg/brix.yaml")
	require.NoError(t, err)

	_, err = New(Options{}).Process(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command #2 (template) at line 5:")
	assert.Contains(t, err.Error(), "destination")
}

func TestProcess_Empty(t *testing.T) {
	list, err := New(Options{}).Process(&loader.RawConfig{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProcess_DoesNotMutateRaw(t *testing.T) {
	params := loader.RawCommandParams{Source: ptr("{{x}}"), Destination: ptr("d"), Context: map[string]string{"x": "1"}}
	raw := &loader.RawConfig{Commands: []loader.CommandEntry{entry("copy", params)}}

	_, err := New(Options{}).Process(raw)
	require.NoError(t, err)
	assert.Equal(t, "{{x}}", *raw.Commands[0].Params.Source)
}
