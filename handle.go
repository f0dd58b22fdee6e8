// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"code.hybscloud.com/iox"
)

// Handler is the F-bounded interface for effect interpreters.
// The self-referencing constraint H Handler[H] gives the compiler knowledge
// of the concrete handler type at compile time.
//
// Dispatch performs the real-world action named by e and returns the value
// the effect is resumed with. A non-nil error is one of:
//   - iox.ErrWouldBlock: no progress yet; Dispatch will be called again with
//     the same effect, so a would-block dispatch must not repeat output
//   - any other error: the underlying channel failed; interpretation stops
type Handler[H Handler[H]] interface {
	Dispatch(e Effect) (Resumed, error)
}

// handlerFunc wraps a dispatch function as a concrete Handler.
type handlerFunc struct {
	f func(e Effect) (Resumed, error)
}

func (h *handlerFunc) Dispatch(e Effect) (Resumed, error) {
	return h.f(e)
}

// HandleFunc creates a handler from a dispatch function.
//
// Example:
//
//	h := free.HandleFunc(func(e free.Effect) (free.Resumed, error) {
//	    switch e := e.(type) {
//	    case Say:
//	        fmt.Println(e.Text)
//	        return nil, nil
//	    default:
//	        return nil, fmt.Errorf("unhandled effect %T", e)
//	    }
//	})
func HandleFunc(f func(e Effect) (Resumed, error)) *handlerFunc {
	return &handlerFunc{f: f}
}

// Handle interprets p with h and returns its result.
//
// Handle is a trampoline: it loops over the program one effect at a time and
// never recurses, so arbitrarily long programs run in constant stack space.
// Dispatches reporting iox.ErrWouldBlock are retried with adaptive backoff
// (iox.Backoff). Any other dispatch error is returned unchanged.
func Handle[H Handler[H], A any](p Program[A], h H) (A, error) {
	var bo iox.Backoff
	for p.effect != nil {
		v, err := h.Dispatch(p.effect)
		if err != nil {
			if iox.IsWouldBlock(err) {
				bo.Wait()
				continue
			}
			var zero A
			return zero, err
		}
		bo.Reset()
		p = p.next(v)
	}
	return p.value, nil
}
