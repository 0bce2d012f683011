// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	ok, err := Fixed(true).Confirm(context.Background(), "overwrite?", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Fixed(false).Confirm(context.Background(), "overwrite?", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLine_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
	}{
		{name: "y", input: "y\n", want: true},
		{name: "yes mixed case", input: "  YeS \n", want: true},
		{name: "n", input: "n\n", want: false},
		{name: "empty means no", input: "\n", want: false},
		{name: "retry on junk", input: "maybe\nyes\n", want: true},
		{name: "answer without newline", input: "y", want: true},
		{name: "eof", input: "", wantErr: ErrAborted},
		{name: "eof after junk", input: "what\n", wantErr: ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewLine(strings.NewReader(tt.input), &out).Confirm(context.Background(), "out.txt exists. Overwrite?", "1 line added, 0 removed")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "1 line added, 0 removed")
			assert.Contains(t, out.String(), "out.txt exists. Overwrite? [y/N]")
		})
	}
}

func TestLine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLine(strings.NewReader("y\n"), &bytes.Buffer{}).Confirm(ctx, "q", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name        string
		msg         tea.KeyMsg
		wantDone    bool
		wantAnswer  bool
		wantAborted bool
	}{
		{name: "y", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, wantDone: true, wantAnswer: true},
		{name: "n", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, wantDone: true},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, wantDone: true},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, wantDone: true, wantAborted: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, wantDone: true, wantAborted: true},
		{name: "other", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := confirmModel{question: "out.txt exists. Overwrite?", detail: "contents are identical"}

			next, cmd := m.Update(tt.msg)
			got := next.(confirmModel)

			assert.Equal(t, tt.wantDone, got.done)
			assert.Equal(t, tt.wantAnswer, got.answer)
			assert.Equal(t, tt.wantAborted, got.aborted)
			if tt.wantDone {
				assert.NotNil(t, cmd)
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := confirmModel{question: "out.txt exists. Overwrite?", detail: "2 lines added, 0 removed"}
	view := m.View()
	assert.Contains(t, view, "out.txt exists. Overwrite?")
	assert.Contains(t, view, "2 lines added, 0 removed")
	assert.Contains(t, view, "y: yes")

	m.done, m.answer = true, true
	assert.Contains(t, m.View(), "yes")
	assert.NotContains(t, m.View(), "y: yes")
}
