// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6be00"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Yes   key.Binding
	No    key.Binding
	Abort key.Binding
}

var keys = keyMap{
	Yes:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:    key.NewBinding(key.WithKeys("n", "N", "enter"), key.WithHelp("n/enter", "no")),
	Abort: key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "abort")),
}

// Tea asks through a small Bubble Tea program.
type Tea struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Prompter.
func (t *Tea) Confirm(ctx context.Context, question, detail string) (bool, error) {
	p := tea.NewProgram(
		confirmModel{question: question, detail: detail},
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

type confirmModel struct {
	question string
	detail   string
	answer   bool
	aborted  bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Yes):
		m.answer, m.done = true, true
	case key.Matches(keyMsg, keys.No):
		m.answer, m.done = false, true
	case key.Matches(keyMsg, keys.Abort):
		m.aborted, m.done = true, true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		switch {
		case m.aborted:
			answer = "aborted"
		case m.answer:
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", questionStyle.Render(m.question), answer)
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString("\n")
	if m.detail != "" {
		b.WriteString(detailStyle.Render(m.detail))
		b.WriteString("\n")
	}

	var help []string
	for _, k := range []key.Binding{keys.Yes, keys.No, keys.Abort} {
		h := k.Help()
		help = append(help, h.Key+": "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, "  ")))
	b.WriteString("\n")
	return b.String()
}
