// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Stepping boundary for front ends that cannot block.
// Step/Advance yield control at every effect, unlike Handle which loops to
// completion.

// Suspension is a program suspended on an effect.
// It holds the pending effect and a one-shot resumption handle: Resume may
// be called at most once. Use Discard to abandon a suspension explicitly.
type Suspension[A any] struct {
	used   atomix.Uint32
	effect Effect
}

// Effect returns the effect the program is suspended on.
func (s *Suspension[A]) Effect() Effect { return s.effect }

// Resume advances the program with the value produced by performing the
// pending effect. Returns either the result (with nil suspension) or the
// next suspension. Panics if the suspension was already resumed or discarded.
func (s *Suspension[A]) Resume(v Resumed) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic("free: suspension resumed twice")
	}
	return Step(slotProgram[A](s.effect.Resume(v)))
}

// TryResume attempts to advance the program.
// Returns (result, suspension, true) on success, or (zero, nil, false) if
// the suspension was already used.
func (s *Suspension[A]) TryResume(v Resumed) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := Step(slotProgram[A](s.effect.Resume(v)))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming it.
func (s *Suspension[A]) Discard() {
	s.used.Add(1)
}

// Step classifies p.
// Returns (result, nil) if p is done, or (zero, suspension) if p is
// suspended on an effect.
//
// Example:
//
//	result, susp := free.Step(program)
//	for susp != nil {
//	    v := perform(susp.Effect())
//	    result, susp = susp.Resume(v)
//	}
func Step[A any](p Program[A]) (A, *Suspension[A]) {
	if p.effect == nil {
		return p.value, nil
	}
	var zero A
	return zero, &Suspension[A]{effect: p.effect}
}

// Advance dispatches the pending effect of s on h.
//
// On success (nil error) the suspension is consumed and the program advances
// to its next suspension or completion. On iox.ErrWouldBlock the suspension
// is returned unconsumed and may be retried. Any other error is returned
// with the suspension unconsumed.
func Advance[H Handler[H], A any](h H, s *Suspension[A]) (A, *Suspension[A], error) {
	v, err := h.Dispatch(s.effect)
	if err != nil {
		var zero A
		return zero, s, err
	}
	a, next := s.Resume(v)
	return a, next, nil
}
