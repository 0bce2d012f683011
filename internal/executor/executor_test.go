// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package executor

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixgo/brix/internal/loader"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/processor"
	"github.com/brixgo/brix/internal/prompt"
)

type recorder struct {
	name  string
	calls *[]string
	err   error
}

type recParams struct{}

func (recParams) Kind() string { return "rec" }

func (r recorder) Name() string { return r.name }

func (r recorder) Usage() ops.Usage { return ops.Usage{} }

func (r recorder) Validate(ops.ProcessedParams) (ops.Params, error) { return recParams{}, nil }

func (r recorder) Execute(context.Context, ops.Params, *ops.Env) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestRun_Sequential(t *testing.T) {
	var calls []string
	list := processor.CommandList{
		{Index: 0, Kind: "a", Command: recorder{name: "a", calls: &calls}, Params: recParams{}},
		{Index: 1, Kind: "b", Command: recorder{name: "b", calls: &calls}, Params: recParams{}},
		{Index: 2, Kind: "c", Command: recorder{name: "c", calls: &calls}, Params: recParams{}},
	}

	require.NoError(t, Run(context.Background(), list, &ops.Env{}))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	list := processor.CommandList{
		{Index: 0, Kind: "a", Command: recorder{name: "a", calls: &calls}, Params: recParams{}},
		{Index: 1, Line: 7, Kind: "b", Command: recorder{name: "b", calls: &calls, err: boom}, Params: recParams{}},
		{Index: 2, Kind: "c", Command: recorder{name: "c", calls: &calls}, Params: recParams{}},
	}

	err := Run(context.Background(), list, &ops.Env{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "command #2 (b) at line 7: boom", err.Error())
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestRun_Cancelled(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list := processor.CommandList{{Index: 0, Kind: "a", Command: recorder{name: "a", calls: &calls}, Params: recParams{}}}
	err := Run(ctx, list, &ops.Env{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestRun_EndToEnd(t *testing.T) {
	doc := `commands:
  - template:
      source: t.txt
      destination: out.txt
      context:
        name: Brix
context: {}
`
	tests := []struct {
		name     string
		existing bool
		answer   bool
		want     string
		asked    bool
	}{
		{name: "fresh destination", want: "Hello Brix"},
		{name: "existing, declined", existing: true, answer: false, want: "old", asked: true},
		{name: "existing, accepted", existing: true, answer: true, want: "Hello Brix", asked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/cfg/t.txt", []byte("Hello {{name}}"), 0o644))
			if tt.existing {
				require.NoError(t, afero.WriteFile(fs, "/work/out.txt", []byte("old"), 0o644))
			}

			raw, err := loader.Parse([]byte(doc), loader.FormatYAML, "/cfg/brix.yaml")
			require.NoError(t, err)
			list, err := processor.New(processor.Options{}).Process(raw)
			require.NoError(t, err)

			p := &countingPrompter{answer: tt.answer}
			require.NoError(t, Run(context.Background(), list, &ops.Env{Fs: fs, Prompter: p, WorkDir: "/work"}))

			data, err := afero.ReadFile(fs, "/work/out.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
			assert.Equal(t, tt.asked, p.count > 0)
		})
	}
}

func TestRun_IOErrorWrapped(t *testing.T) {
	raw := &loader.RawConfig{Path: "/cfg/brix.yaml", Commands: []loader.CommandEntry{{
		Kind:   "copy",
		Params: loader.RawCommandParams{Source: strPtr("missing.txt"), Destination: strPtr("out.txt")},
	}}}
	list, err := processor.New(processor.Options{}).Process(raw)
	require.NoError(t, err)

	err = Run(context.Background(), list, &ops.Env{Fs: afero.NewMemMapFs(), Prompter: prompt.Fixed(false)})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var ee *processor.EntryError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "copy", ee.Kind)
}

type countingPrompter struct {
	answer bool
	count  int
}

func (c *countingPrompter) Confirm(context.Context, string, string) (bool, error) {
	c.count++
	return c.answer, nil
}

func strPtr(s string) *string { return &s }
