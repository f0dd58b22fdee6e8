// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transcript replays adventure programs against a fixed list of
// selections and records what a player would have seen.
//
// Programs are converted with [free.Reify] and evaluated by a kont handler,
// so a replay never touches a terminal. It is the harness used by tests and
// by the replay command.
package transcript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"code.hybscloud.com/free"
	"code.hybscloud.com/free/adventure"
	"code.hybscloud.com/kont"
)

var (
	// ErrScriptExhausted is returned when the program offers a choice
	// after all selections have been used.
	ErrScriptExhausted = errors.New("transcript: no selection left")
	// ErrChoiceOutOfRange is returned for a selection outside the offered options.
	ErrChoiceOutOfRange = errors.New("transcript: selection out of range")
	// ErrUnknownEffect is returned for an effect outside the adventure alphabet.
	ErrUnknownEffect = errors.New("transcript: unknown effect")
)

// Transcript is the record of one replay.
type Transcript[A any] struct {
	// Lines holds every rendered line in order. A choice contributes its
	// numbered options followed by the selected label prefixed with "> ".
	Lines []string
	// Choices holds the 0-based selections actually consumed.
	Choices []int
	// Result is the program's final value. Zero if the replay failed.
	Result A
}

// String joins the lines of t.
func (t Transcript[A]) String() string {
	return strings.Join(t.Lines, "\n")
}

// recorder is the kont handler for adventure effects.
// Returns (Left(err), false) to stop the evaluation on a script error.
type recorder[A any] struct {
	choices []int
	next    int
	lines   []string
}

// Dispatch implements kont.Handler.
func (r *recorder[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	switch e := op.(type) {
	case adventure.Offer:
		return r.choose(e)
	case adventure.Speak, adventure.ShowScene, adventure.Narrate:
		r.lines = append(r.lines, e.(fmt.Stringer).String())
		return adventure.Continue(), true
	}
	return kont.Left[error, A](fmt.Errorf("%w: %T", ErrUnknownEffect, op)), false
}

func (r *recorder[A]) choose(e adventure.Offer) (kont.Resumed, bool) {
	for i, o := range e.Options {
		r.lines = append(r.lines, strconv.Itoa(i+1)+": "+o)
	}
	if r.next >= len(r.choices) {
		return kont.Left[error, A](fmt.Errorf("%w: after %d selections", ErrScriptExhausted, r.next)), false
	}
	c := r.choices[r.next]
	if !e.Valid(c) {
		return kont.Left[error, A](fmt.Errorf("%w: selection %d has index %d of %d options",
			ErrChoiceOutOfRange, r.next+1, c, len(e.Options))), false
	}
	r.next++
	r.lines = append(r.lines, "> "+e.Options[c])
	return c, true
}

// Replay runs p, answering the n-th choice with the 0-based index choices[n].
// On error the returned transcript holds the lines rendered so far.
// Selections left over when p is done are ignored.
func Replay[A any](p free.Program[A], choices []int) (Transcript[A], error) {
	r := &recorder[A]{choices: choices}
	expr := kont.ExprMap(free.Reify(p), func(a A) kont.Either[error, A] {
		return kont.Right[error](a)
	})
	result := kont.HandleExpr(expr, r)
	t := Transcript[A]{Lines: r.lines, Choices: choices[:r.next:r.next]}
	if err, ok := result.GetLeft(); ok {
		return t, err
	}
	t.Result, _ = result.GetRight()
	return t, nil
}

// ParseChoices parses comma-separated 1-based selections such as "1,2,4"
// into 0-based indices.
func ParseChoices(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("transcript: parse selection %q: %w", f, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: %d", ErrChoiceOutOfRange, n)
		}
		out = append(out, n-1)
	}
	return out, nil
}
