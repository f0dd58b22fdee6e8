// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Erased represents a type-erased value held in an effect's continuation slot.
// Slots of a suspended Program[A] hold Program[A] values; slots of an effect
// passed to [Lift] hold raw A values. Concrete types are recovered via type
// assertions at the slot boundary.
type Erased = any

// Resumed is the value produced by performing an effect. It is fed back into
// the effect through [Effect.Resume] to select the next continuation.
type Resumed = any

// Effect is a single effect instance of some effect alphabet.
//
// An effect carries its payload plus one or more continuation slots. A slot is
// either a plain value (the effect continues one way) or a function from the
// outcome to a value (the effect chooses among outcomes).
type Effect interface {
	// Map returns an effect of the same kind with the same payload whose
	// continuation slots are composed with f. For a function-valued slot the
	// result is a new function that calls the old one and applies f to its
	// output. Map must not call a function-valued slot.
	Map(f func(Erased) Erased) Effect

	// Resume returns the continuation slot content selected by v, the value
	// produced by performing the effect. Single-continuation effects ignore v.
	Resume(v Resumed) Erased
}

// Program is a suspended computation described as data.
//
// A Program[A] is exactly one of:
//   - done: it carries the final result of type A
//   - suspended: it carries one [Effect] whose continuation slots hold
//     further Program[A] values
//
// Programs are values and are never mutated after construction. Interpreters
// consume a program node by node; a function-valued slot produces a fresh
// subtree on every call.
type Program[A any] struct {
	value  A
	effect Effect
}

// Pure returns a program that performs no effects and yields a.
func Pure[A any](a A) Program[A] {
	return Program[A]{value: a}
}

// Suspend returns a program suspended on e.
// Every continuation slot of e must hold a Program[A]. Panics if e is nil.
func Suspend[A any](e Effect) Program[A] {
	if e == nil {
		panic("free: suspend on nil effect")
	}
	return Program[A]{effect: e}
}

// Lift wraps a single effect into a minimal program.
// Every continuation slot of e holds a raw A; the lifted program yields
// whatever value comes out of the selected slot.
//
// Example:
//
//	free.Lift[int](Choice{N: 2, Next: func(i int) free.Erased { return i }})
func Lift[A any](e Effect) Program[A] {
	return Suspend[A](e.Map(pureSlot[A]))
}

// pureSlot lifts a raw slot value into a done program.
// Named generic function produces a static function value per instantiation.
func pureSlot[A any](x Erased) Erased {
	return Pure(slotValue[A](x))
}

// slotValue recovers an A from a raw slot, treating nil as the zero value.
func slotValue[A any](x Erased) A {
	if x == nil {
		var zero A
		return zero
	}
	return x.(A)
}

// slotProgram recovers the Program[A] held in a continuation slot.
func slotProgram[A any](x Erased) Program[A] {
	p, ok := x.(Program[A])
	if !ok {
		panic("free: continuation slot does not hold the expected program type")
	}
	return p
}

// Done returns the result and true if p has completed.
func (p Program[A]) Done() (A, bool) {
	if p.effect != nil {
		var zero A
		return zero, false
	}
	return p.value, true
}

// IsDone reports whether p is a completed program.
func (p Program[A]) IsDone() bool { return p.effect == nil }

// Effect returns the effect p is suspended on, or nil if p has completed.
func (p Program[A]) Effect() Effect { return p.effect }

// next resumes the effect p is suspended on with v.
func (p Program[A]) next(v Resumed) Program[A] {
	return slotProgram[A](p.effect.Resume(v))
}
