// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"

	"code.hybscloud.com/free"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type settings struct {
	logger    *zap.Logger
	teaOpts   []tea.ProgramOption
	altScreen bool
}

// Option configures Run.
type Option func(*settings)

// WithLogger sets the logger. The default discards all entries.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(s *settings) { s.teaOpts = append(s.teaOpts, tea.WithInput(r)) }
}

// WithOutput renders to w instead of the terminal.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.teaOpts = append(s.teaOpts, tea.WithOutput(w)) }
}

// WithAltScreen runs in the terminal's alternate screen buffer.
func WithAltScreen() Option {
	return func(s *settings) { s.altScreen = true }
}

// Run interprets p in a terminal interface until the player quits.
// Returns the program's own failure, if any, or the terminal's.
func Run(p free.Program[struct{}], opts ...Option) error {
	s := settings{logger: zap.NewNop()}
	for _, o := range opts {
		o(&s)
	}
	if s.altScreen {
		s.teaOpts = append(s.teaOpts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(NewModel(p, s.logger), s.teaOpts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
