// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
)

// ErrorKind classifies render failures.
type ErrorKind int

const (
	// Syntax covers malformed tags: unclosed, empty, bad key, unknown or block
	// helper.
	Syntax ErrorKind = iota
	// UndefinedVariable means a tag referenced a key absent from the context.
	UndefinedVariable
)

var (
	ErrSyntax            = errors.New("template syntax error")
	ErrUndefinedVariable = errors.New("undefined variable")
)

// Error is returned by Parse and Execute. Line and Column are 1-based and
// point at the opening braces of the offending tag.
type Error struct {
	Kind   ErrorKind
	Name   string
	Msg    string
	Line   int
	Column int
}

func (e *Error) Error() string {
	if e.Kind == UndefinedVariable {
		return fmt.Sprintf("undefined variable %q at line %d, column %d", e.Name, e.Line, e.Column)
	}
	return fmt.Sprintf("template syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Is lets errors.Is match the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == Syntax
	case ErrUndefinedVariable:
		return e.Kind == UndefinedVariable
	}
	return false
}

func syntaxError(line, col int, format string, args ...any) *Error {
	return &Error{Kind: Syntax, Msg: fmt.Sprintf(format, args...), Line: line, Column: col}
}
