// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package prompt asks the user to confirm an action, currently only whether
// an existing file may be overwritten.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/brixgo/brix/internal/log"
)

// ErrAborted is returned when the user declines to answer at all (escape,
// ctrl+c, or end of input).
var ErrAborted = errors.New("prompt aborted")

// Prompter asks a yes/no question. detail is optional context shown with it.
type Prompter interface {
	Confirm(ctx context.Context, question, detail string) (bool, error)
}

// New returns an interactive prompter when in is a terminal and a plain line
// reader otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &Tea{In: in, Out: out}
	}
	log.Debugf("stdin is not a terminal, using line prompt")
	return NewLine(in, out)
}

// Fixed answers every question with the same value. It backs --yes and --no.
type Fixed bool

// Confirm implements Prompter.
func (f Fixed) Confirm(_ context.Context, question, _ string) (bool, error) {
	log.Debugf("auto-answering %q with %t", question, bool(f))
	return bool(f), nil
}

// Line reads answers one line at a time. Empty input means no.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine builds a Line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter. Unrecognized answers repeat the question.
func (l *Line) Confirm(ctx context.Context, question, detail string) (bool, error) {
	if detail != "" {
		fmt.Fprintln(l.out, detail)
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(l.out, "%s [y/N] ", question)
		answer, err := l.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || answer == "") {
			fmt.Fprintln(l.out)
			if errors.Is(err, io.EOF) {
				return false, fmt.Errorf("%w: no answer on input", ErrAborted)
			}
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
	}
}
