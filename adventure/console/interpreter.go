// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package console runs adventure programs as a line-oriented text game.
//
// Dialogue, scenes and narration are written as lines. A choice prints a
// numbered option list and reads a 1-based selection; malformed or
// out-of-range input is answered with a hint and the option list, and the
// line is read again. Failures of the input or output stream are fatal and
// returned to the caller of [Run].
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"code.hybscloud.com/free"
	"code.hybscloud.com/free/adventure"
	"code.hybscloud.com/iox"
	"go.uber.org/zap"
)

const (
	optionsHeader = "Your options are:"
	invalidChoice = "Invalid choice. Please select one of the options given above."
)

var (
	// ErrNoOptions is returned for a choice without options.
	ErrNoOptions = errors.New("console: choice without options")
	// ErrUnknownEffect is returned for an effect outside the adventure alphabet.
	ErrUnknownEffect = errors.New("console: unknown effect")
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger. The default discards all entries.
func WithLogger(l *zap.Logger) Option {
	return func(it *Interpreter) {
		if l != nil {
			it.logger = l
		}
	}
}

// Interpreter performs adventure effects on a line reader and a writer.
// It implements free.Handler.
type Interpreter struct {
	in     LineReader
	out    io.Writer
	logger *zap.Logger
	serial Serial

	// awaiting is set while the options of a choice have been printed
	// and no valid selection has been read yet.
	awaiting bool
}

// New creates an interpreter reading selections from in and writing to out.
func New(in LineReader, out io.Writer, opts ...Option) *Interpreter {
	it := &Interpreter{in: in, out: out, logger: zap.NewNop(), serial: nextSerial()}
	for _, o := range opts {
		o(it)
	}
	it.logger = it.logger.With(zap.Uint32("run", it.serial))
	return it
}

// Serial returns the run serial assigned to this interpreter.
func (it *Interpreter) Serial() Serial {
	return it.serial
}

// Dispatch implements free.Handler.
// Returns iox.ErrWouldBlock when the line reader has no input yet.
func (it *Interpreter) Dispatch(e free.Effect) (free.Resumed, error) {
	switch e := e.(type) {
	case adventure.Offer:
		return it.choose(e)
	case adventure.Speak:
		it.logger.Debug("speak", zap.String("speaker", e.Speaker.Description()))
		return adventure.Continue(), it.println(e.String())
	case adventure.ShowScene:
		it.logger.Debug("scene", zap.Stringer("location", e.Location))
		return adventure.Continue(), it.println(e.String())
	case adventure.Narrate:
		it.logger.Debug("narrate")
		return adventure.Continue(), it.println(e.String())
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownEffect, e)
}

func (it *Interpreter) choose(e adventure.Offer) (free.Resumed, error) {
	if len(e.Options) == 0 {
		return nil, ErrNoOptions
	}
	if !it.awaiting {
		it.logger.Debug("offer", zap.Int("options", len(e.Options)))
		if err := it.printOptions(e.Options); err != nil {
			return nil, err
		}
		it.awaiting = true
	}
	for {
		line, err := it.in.ReadLine()
		if err != nil {
			if iox.IsWouldBlock(err) {
				return nil, err
			}
			it.awaiting = false
			return nil, fmt.Errorf("console: read selection: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || !e.Valid(n-1) {
			it.logger.Warn("invalid selection",
				zap.String("input", line),
				zap.Int("options", len(e.Options)))
			if err := it.println(invalidChoice); err != nil {
				it.awaiting = false
				return nil, err
			}
			if err := it.printOptions(e.Options); err != nil {
				it.awaiting = false
				return nil, err
			}
			continue
		}
		it.awaiting = false
		it.logger.Debug("selected", zap.Int("index", n-1))
		if err := it.println(""); err != nil {
			return nil, err
		}
		return n - 1, nil
	}
}

func (it *Interpreter) printOptions(options []string) error {
	var b strings.Builder
	b.WriteString(optionsHeader)
	b.WriteByte('\n')
	for i, o := range options {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(o)
		b.WriteByte('\n')
	}
	return it.write(b.String())
}

func (it *Interpreter) println(s string) error {
	return it.write(s + "\n")
}

func (it *Interpreter) write(s string) error {
	if _, err := io.WriteString(it.out, s); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}

// Run interprets p, writing output to out and reading selections from in.
// Returns nil once p is done, or the first input or output failure.
// A non-blocking in is polled with adaptive backoff.
func Run(p free.Program[struct{}], in LineReader, out io.Writer, opts ...Option) error {
	it := New(in, out, opts...)
	it.logger.Info("run started")
	if _, err := free.Handle(p, it); err != nil {
		it.logger.Error("run failed", zap.Error(err))
		return err
	}
	it.logger.Info("run finished")
	return nil
}
