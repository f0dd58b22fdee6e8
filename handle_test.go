// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/free"
	"code.hybscloud.com/iox"
)

func TestHandlePure(t *testing.T) {
	h := &scripted{}
	got, err := free.Handle(free.Pure("x"), h)
	if err != nil || got != "x" {
		t.Fatalf("got (%q, %v)", got, err)
	}
	if h.calls != 0 {
		t.Fatalf("handler called %d times for a pure program", h.calls)
	}
}

func TestHandleRetriesWouldBlock(t *testing.T) {
	blocked := 3
	var seen []string
	h := free.HandleFunc(func(e free.Effect) (free.Resumed, error) {
		if blocked > 0 {
			blocked--
			return nil, iox.ErrWouldBlock
		}
		seen = append(seen, e.(say).text)
		return struct{}{}, nil
	})
	p := free.Then(liftSay("a"), free.Then(liftSay("b"), free.Pure(1)))
	got, err := free.Handle(p, h)
	if err != nil || got != 1 {
		t.Fatalf("got (%d, %v)", got, err)
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Fatalf("seen: got %v", seen)
	}
}

func TestHandlePropagatesError(t *testing.T) {
	calls := 0
	h := free.HandleFunc(func(e free.Effect) (free.Resumed, error) {
		calls++
		if e.(say).text == "bad" {
			return nil, errBroken
		}
		return struct{}{}, nil
	})
	p := free.Then(liftSay("ok"), free.Then(liftSay("bad"), free.Then(liftSay("never"), free.Pure(1))))
	got, err := free.Handle(p, h)
	if !errors.Is(err, errBroken) {
		t.Fatalf("err: got %v, want %v", err, errBroken)
	}
	if got != 0 {
		t.Fatalf("result on error: got %d, want 0", got)
	}
	if calls != 2 {
		t.Fatalf("calls: got %d, want 2", calls)
	}
}

func TestHandleUnknownEffect(t *testing.T) {
	p := free.Lift[int](pick{n: 1, next: identityPick})
	_, err := free.Handle(p, free.HandleFunc(func(free.Effect) (free.Resumed, error) {
		return nil, errUnknownEffect
	}))
	if !errors.Is(err, errUnknownEffect) {
		t.Fatalf("err: got %v", err)
	}
}
