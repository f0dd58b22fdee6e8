// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tui runs adventure programs in a full-screen terminal interface.
//
// The program is driven through the stepping boundary of
// [code.hybscloud.com/free]: text effects are appended to a scrolling
// transcript as soon as they are reached, and a choice leaves the program
// suspended until the player presses a digit key.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"code.hybscloud.com/free"
	"code.hybscloud.com/free/adventure"
	"code.hybscloud.com/iox"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeRows is the number of rows around the option list.
	chromeRows = 3
)

// ErrUnknownEffect is reported for an effect outside the adventure alphabet.
var ErrUnknownEffect = errors.New("tui: unknown effect")

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	speechStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))

	sceneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Italic(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	optionKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Model is the bubbletea model running one adventure program.
type Model struct {
	pending  *free.Suspension[struct{}]
	options  []string
	lines    []string
	viewport viewport.Model
	logger   *zap.Logger
	err      error
	done     bool
	quitting bool
}

// NewModel creates a model for p and runs it up to its first choice.
func NewModel(p free.Program[struct{}], logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		viewport: viewport.New(defaultWidth, defaultHeight-chromeRows),
		logger:   logger,
	}
	_, m.pending = free.Step(p)
	m.advance()
	return m
}

// Dispatch implements free.Handler for the text effects.
// A choice cannot be answered from here and reports iox.ErrWouldBlock,
// leaving the program suspended until a key press.
func (m *Model) Dispatch(e free.Effect) (free.Resumed, error) {
	switch e := e.(type) {
	case adventure.Offer:
		return nil, iox.ErrWouldBlock
	case adventure.Speak:
		m.lines = append(m.lines, speechStyle.Render(e.String()))
	case adventure.ShowScene:
		m.lines = append(m.lines, sceneStyle.Render(e.String()))
	case adventure.Narrate:
		m.lines = append(m.lines, e.String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEffect, e)
	}
	m.logger.Debug("effect rendered", zap.Int("lines", len(m.lines)))
	return adventure.Continue(), nil
}

// advance runs text effects until the program reaches a choice or is done.
func (m *Model) advance() {
	m.options = nil
	for m.pending != nil {
		_, next, err := free.Advance(m, m.pending)
		if err != nil {
			if iox.IsWouldBlock(err) {
				if offer, ok := m.pending.Effect().(adventure.Offer); ok {
					m.options = offer.Options
				}
				break
			}
			m.logger.Error("program failed", zap.Error(err))
			m.err = err
			m.pending.Discard()
			m.pending = nil
			break
		}
		m.pending = next
	}
	if m.pending == nil {
		m.done = true
	}
	m.refresh()
}

// choose resumes the pending choice with the 0-based index i.
// Out-of-range indices are ignored.
func (m *Model) choose(i int) {
	if m.pending == nil || i < 0 || i >= len(m.options) {
		return
	}
	m.logger.Debug("selected", zap.Int("index", i))
	m.lines = append(m.lines, choiceStyle.Render("> "+m.options[i]), "")
	_, m.pending = m.pending.Resume(i)
	m.advance()
}

func (m *Model) refresh() {
	w := m.viewport.Width
	wrap := lipgloss.NewStyle().Width(w)
	wrapped := make([]string, len(m.lines))
	for i, l := range m.lines {
		wrapped[i] = wrap.Render(l)
	}
	m.viewport.SetContent(strings.Join(wrapped, "\n"))
	m.viewport.GotoBottom()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeRows-len(m.options))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			if m.pending != nil {
				m.pending.Discard()
				m.pending = nil
			}
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if n, err := strconv.Atoi(string(msg.Runes)); err == nil {
				m.choose(n - 1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sausage roll"))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	case len(m.options) > 0:
		for i, o := range m.options {
			b.WriteString(optionKeyStyle.Render(strconv.Itoa(i + 1)))
			b.WriteString(" ")
			b.WriteString(o)
			b.WriteByte('\n')
		}
	}
	if m.done {
		b.WriteString(footerStyle.Render("The end. q: quit"))
	} else {
		b.WriteString(footerStyle.Render("1-9: choose  ↑/↓: scroll  q: quit"))
	}
	return b.String()
}

// Done reports whether the program has finished.
func (m Model) Done() bool { return m.done }

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Options returns the options of the pending choice.
func (m Model) Options() []string { return m.options }

// Lines returns the rendered transcript lines.
func (m Model) Lines() []string { return m.lines }
