// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package free describes sequences of effectful operations as inert data
// and interprets them separately.
//
// A [Program] is a tree: either a finished result, or one [Effect] whose
// continuation slots hold further programs. Building a program performs no
// effects. An interpreter walks the tree, performs each effect, and feeds the
// outcome back into the tree to obtain the next step. The same program can be
// run by a text console, a test harness, or a graphical front end without the
// program-building code knowing which one.
//
// # Effect Alphabets
//
// An effect alphabet is a family of types implementing [Effect]. Each effect
// carries its payload and continuation slots holding [Erased] values:
//
//   - a value slot for effects that continue one way
//   - a function slot func(outcome) Erased for effects choosing among outcomes
//
// [Effect.Map] composes the slots with a transformation; [Effect.Resume]
// selects the slot for the outcome of performing the effect.
//
// # Operators
//
//   - [Pure]: A program that yields a value without effects
//   - [Lift]: A program performing a single effect
//   - [Suspend]: A program suspended on an effect whose slots hold programs
//   - [Map]: Transform the eventual result, preserving shape
//   - [Bind]: Sequence a program with a continuation building the next program
//   - [Then]: Sequence, discarding the first result
//   - [Apply]: Combine a program of functions with a program of values
//   - [When]: Run a program only if a condition holds
//   - [Loop]: Iterate a step program over a state until it yields a result
//
// [Apply] is derived from [Bind] and duplicates its second argument under
// every leaf of its first; use it for shallow programs only. Result types holding
// mutable references implement [Cloner] so every copy is independent.
//
// # Interpretation
//
//   - [Handler]: F-bounded effect interpreter interface
//   - [HandleFunc]: Create a handler from a dispatch function
//   - [Handle]: Run a program to completion with a handler (trampoline)
//
// [Handle] is an explicit loop, so program length is bounded by memory, not
// stack depth. Handlers report iox.ErrWouldBlock when an effect cannot make
// progress yet; Handle waits with iox.Backoff and dispatches the same effect
// again. Every other error is fatal and returned to the caller.
//
// # Stepping Boundary
//
//   - [Step]: Classify a program as done or suspended
//   - [Suspension]: Pending effect with a one-shot resumption handle
//   - [Advance]: Dispatch a pending effect on a handler, non-blocking
//
// # Bridge
//
//   - [Reify]: Program[A] → kont.Expr[A], so any kont.Handler can interpret a
//     program with kont.HandleExpr
//
// # Example
//
//	type Say struct {
//		Text string
//		Next free.Erased
//	}
//
//	func (e Say) Map(f func(free.Erased) free.Erased) free.Effect {
//		e.Next = f(e.Next)
//		return e
//	}
//
//	func (e Say) Resume(free.Resumed) free.Erased { return e.Next }
//
//	hello := free.Then(
//		free.Lift[struct{}](Say{Text: "hello", Next: struct{}{}}),
//		free.Pure(42),
//	)
//
//	result, err := free.Handle(hello, free.HandleFunc(func(e free.Effect) (free.Resumed, error) {
//		fmt.Println(e.(Say).Text)
//		return nil, nil
//	}))
//	// prints "hello"; result == 42
package free
