// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free_test

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"code.hybscloud.com/free"
	"code.hybscloud.com/kont"
)

// propertyN is the number of random cases per property.
const propertyN = 200

var (
	errUnknownEffect = errors.New("unknown effect")
	errBroken        = errors.New("broken output")
)

// say is a single-continuation test effect.
type say struct {
	text string
	next free.Erased
}

func (e say) Map(f func(free.Erased) free.Erased) free.Effect {
	e.next = f(e.next)
	return e
}

func (e say) Resume(free.Resumed) free.Erased { return e.next }

// pick is a choice test effect with n options.
type pick struct {
	n    int
	next func(int) free.Erased
}

func (e pick) Map(f func(free.Erased) free.Erased) free.Effect {
	next := e.next
	e.next = func(i int) free.Erased { return f(next(i)) }
	return e
}

func (e pick) Resume(v free.Resumed) free.Erased { return e.next(v.(int)) }

func identityPick(i int) free.Erased { return i }

func liftSay(text string) free.Program[struct{}] {
	return free.Lift[struct{}](say{text: text, next: struct{}{}})
}

func liftPick(n int) free.Program[int] {
	return free.Lift[int](pick{n: n, next: identityPick})
}

func sayThen[A any](text string, next free.Program[A]) free.Program[A] {
	return free.Suspend[A](say{text: text, next: next})
}

// scripted answers picks from a list and records every say.
// Picks are reduced into the option range; an exhausted list answers 0.
type scripted struct {
	picks []int
	out   []string
	calls int
}

func (h *scripted) Dispatch(e free.Effect) (free.Resumed, error) {
	h.calls++
	switch e := e.(type) {
	case say:
		h.out = append(h.out, e.text)
		return struct{}{}, nil
	case pick:
		v := 0
		if len(h.picks) > 0 {
			v, h.picks = h.picks[0], h.picks[1:]
		}
		v = (v%e.n + e.n) % e.n
		h.out = append(h.out, fmt.Sprintf("pick %d/%d", v, e.n))
		return v, nil
	}
	return nil, errUnknownEffect
}

// kontScripted adapts scripted to kont.Handler.
type kontScripted struct {
	s *scripted
}

func (h kontScripted) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	v, err := h.s.Dispatch(op.(free.Effect))
	if err != nil {
		panic(err)
	}
	return v, true
}

// trace is what a program does under a given script.
type trace[A any] struct {
	Out    []string
	Result A
}

// observe runs p with free.Handle under picks.
func observe[A any](p free.Program[A], picks []int) trace[A] {
	h := &scripted{picks: picks}
	a, err := free.Handle(p, h)
	if err != nil {
		panic(err)
	}
	return trace[A]{Out: h.out, Result: a}
}

// randomPicks returns a script long enough for programs from genProgram.
func randomPicks(r *rand.Rand) []int {
	picks := make([]int, 16)
	for i := range picks {
		picks[i] = r.IntN(1 << 10)
	}
	return picks
}

// genProgram builds a random program of at most depth effects per path.
func genProgram(r *rand.Rand, depth int) free.Program[int] {
	if depth == 0 || r.IntN(4) == 0 {
		return free.Pure(r.IntN(100))
	}
	if r.IntN(2) == 0 {
		return sayThen(fmt.Sprintf("s%d", r.IntN(10)), genProgram(r, depth-1))
	}
	n := 1 + r.IntN(3)
	branches := make([]free.Program[int], n)
	for i := range branches {
		branches[i] = genProgram(r, depth-1)
	}
	return free.Suspend[int](pick{n: n, next: func(i int) free.Erased { return branches[i] }})
}

// Continuations used by the law properties.

func lawF(a int) free.Program[int] {
	if a%2 == 0 {
		return sayThen(fmt.Sprintf("even %d", a), free.Pure(a+1))
	}
	return free.Map(liftPick(2), func(i int) int { return a*10 + i })
}

func lawG(b int) free.Program[int] {
	if b%3 == 0 {
		return free.Pure(b)
	}
	return sayThen(fmt.Sprintf("g %d", b), free.Pure(b-1))
}

func newRand(seq uint64) *rand.Rand {
	return rand.New(rand.NewPCG(42, seq))
}
