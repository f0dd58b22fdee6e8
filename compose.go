// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Composition operators for programs.
//
// Minimal definition: Pure and Bind. Map is kept as a separate operator
// because it preserves shape without building intermediate done nodes.
// Then and Apply are derived from Bind.

// Map transforms the eventual result of p with f.
// The returned program has the same shape as p: the same effects with the
// same payloads in the same order, with every done value replaced by f of it.
//
// Laws:
//
//	Map(p, identity) ≡ p
//	Map(Map(p, f), g) ≡ Map(p, compose(g, f))
func Map[A, B any](p Program[A], f func(A) B) Program[B] {
	if p.effect == nil {
		return Pure(f(p.value))
	}
	return Suspend[B](p.effect.Map(func(x Erased) Erased {
		return Map(slotProgram[A](x), f)
	}))
}

// Bind sequences p with f (monadic bind).
// If p is done with a, the result is f(a). Otherwise f is pushed through
// every continuation slot of the effect p is suspended on. Value slots are
// rewritten immediately; function slots are rewritten when they are called.
//
// Laws:
//
//	Bind(Pure(a), f) ≡ f(a)
//	Bind(p, Pure) ≡ p
//	Bind(Bind(p, f), g) ≡ Bind(p, func(x) Bind(f(x), g))
//
// Rewriting walks every node already built in p, so a chain of binds nested
// to the left costs time quadratic in its length. Build long chains to the
// right: Bind(first, func(_) rest).
func Bind[A, B any](p Program[A], f func(A) Program[B]) Program[B] {
	if p.effect == nil {
		return f(p.value)
	}
	return Suspend[B](p.effect.Map(func(x Erased) Erased {
		return Bind(slotProgram[A](x), f)
	}))
}

// Then sequences p before next, discarding the result of p.
func Then[A, B any](p Program[A], next Program[B]) Program[B] {
	return Bind(p, func(A) Program[B] { return next })
}

// Cloner is implemented by result types that hold references to mutable
// state. Clone returns an independent copy.
type Cloner[T any] interface {
	Clone() T
}

// Apply combines a program yielding a function with a program yielding its
// argument. It is defined through Bind:
//
//	Apply(pf, pv) ≡ Bind(pf, func(f) Bind(pv, func(x) Pure(f(x))))
//
// Every leaf of pf receives its own copy of pv, so the cost of the result
// grows with the product of both programs' sizes. Apply suits a pf with a
// single function at its root; it must not combine two deep effect-rich
// programs. When A implements [Cloner], each value reaching a leaf of a
// duplicated pv is cloned so branches never share mutable state.
//
// Law:
//
//	Apply(Pure(f), Pure(x)) ≡ Pure(f(x))
func Apply[A, B any](pf Program[func(A) B], pv Program[A]) Program[B] {
	return Bind(pf, func(f func(A) B) Program[B] {
		return Bind(pv, func(x A) Program[B] {
			return Pure(f(duplicate(x)))
		})
	})
}

// duplicate clones x when its type implements Cloner.
func duplicate[A any](x A) A {
	if c, ok := any(x).(Cloner[A]); ok {
		return c.Clone()
	}
	return x
}

// When returns p if cond holds, and a program doing nothing otherwise.
func When(cond bool, p Program[struct{}]) Program[struct{}] {
	if cond {
		return p
	}
	return Pure(struct{}{})
}
