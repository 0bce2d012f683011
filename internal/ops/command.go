// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/prompt"
)

// Command is one kind of config entry.
type Command interface {
	Name() string
	Usage() Usage
	Validate(p ProcessedParams) (Params, error)
	Execute(ctx context.Context, p Params, env *Env) error
}

// Usage describes the fields a kind accepts.
type Usage struct {
	Summary  string
	Required []string
	Optional []string
}

// Params are the typed, validated parameters of one kind.
type Params interface {
	Kind() string
}

// ProcessedParams are entry parameters after placeholder rendering and path
// resolution. Nil still means absent.
type ProcessedParams struct {
	Source      *string           `json:"source,omitempty"`
	Destination *string           `json:"destination,omitempty"`
	Overwrite   *bool             `json:"overwrite,omitempty"`
	Search      *string           `json:"search,omitempty"`
	Replace     *string           `json:"replace,omitempty"`
	Context     map[string]string `json:"context,omitempty"`

	// Vars is the merged cli, global and local context the entry was rendered
	// with.
	Vars map[string]string `json:"-"`
}

// Env is what a command executes against.
type Env struct {
	Fs       afero.Fs
	Prompter prompt.Prompter
	// WorkDir anchors relative paths. Empty means the process working
	// directory.
	WorkDir string
}

func (e *Env) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func (e *Env) resolve(path string) string {
	if e.WorkDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.WorkDir, path)
}

// FieldError is one invalid parameter.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors lists every invalid parameter of one entry.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Error()
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// Fields returns the names of the invalid fields in report order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, len(v))
	for i, fe := range v {
		fields[i] = fe.Field
	}
	return fields
}

type checker struct {
	errs ValidationErrors
}

func (c *checker) required(field string, value *string) string {
	if value == nil {
		c.errs = append(c.errs, FieldError{Field: field, Reason: "is required"})
		return ""
	}
	return *value
}

func (c *checker) fail(field, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func unexpected(kind string, p Params) error {
	return fmt.Errorf("%s: unexpected params %T", kind, p)
}

// Kind names.
const (
	KindCopy          = "copy"
	KindSearchReplace = "search_replace"
	KindTemplate      = "template"
)
