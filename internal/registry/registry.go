// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package registry maps command kind names to their implementations and
// suggests the closest known kind for a misspelled one.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/ops"
)

// Cutoff is the lowest similarity ratio that still yields a suggestion.
const Cutoff = 0.6

// NotFoundError reports an unknown kind.
type NotFoundError struct {
	Kind       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("command '%s' not found", e.Kind)
	}
	return fmt.Sprintf("command '%s' not found... did you mean '%s'?", e.Kind, e.Suggestion)
}

// Registry is a fixed set of command kinds.
type Registry struct {
	commands map[string]ops.Command
}

// Default holds every kind brix supports.
var Default = New(ops.NewCopy(), ops.NewSearchReplace(), ops.NewTemplate())

// New builds a registry from commands, keyed by their lower-cased names.
func New(commands ...ops.Command) *Registry {
	r := &Registry{commands: make(map[string]ops.Command, len(commands))}
	for _, c := range commands {
		r.commands[strings.ToLower(c.Name())] = c
	}
	return r
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.commands))
	for k := range r.commands {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolve returns the command for kind, ignoring case.
func (r *Registry) Resolve(kind string) (ops.Command, error) {
	if c, ok := r.commands[strings.ToLower(kind)]; ok {
		return c, nil
	}

	err := &NotFoundError{Kind: kind, Suggestion: r.Suggest(kind)}
	log.Debugf("resolve: %v", err)
	return nil, err
}

// Suggest returns the known kind most similar to kind, or "" when none
// reaches Cutoff. kind is compared lower-cased, as Resolve looks it up. Ties
// go to the alphabetically first kind.
func (r *Registry) Suggest(kind string) string {
	needle := strings.Split(strings.ToLower(kind), "")

	best, bestRatio := "", 0.0
	for _, candidate := range r.Kinds() {
		m := difflib.NewMatcher(needle, strings.Split(candidate, ""))
		ratio := m.Ratio()
		log.Tracef("suggest: %q vs %q = %.3f", kind, candidate, ratio)
		if ratio >= Cutoff && ratio > bestRatio {
			best, bestRatio = candidate, ratio
		}
	}
	return best
}
