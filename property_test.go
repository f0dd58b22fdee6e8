// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free_test

import (
	"math/rand/v2"
	"testing"
	"testing/quick"

	"code.hybscloud.com/free"
	"github.com/google/go-cmp/cmp"
)

// TestPropertyMapIdentity checks Map(p, id) behaves like p.
func TestPropertyMapIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := genProgram(r, 5)
		picks := randomPicks(r)
		want := observe(p, picks)
		got := observe(free.Map(p, func(a int) int { return a }), picks)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Map identity mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestPropertyMapComposition checks Map(Map(p, f), g) behaves like Map(p, g∘f).
func TestPropertyMapComposition(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	f := func(a int) int { return a*3 + 1 }
	g := func(b int) string { return string(rune('a' + b%26)) }
	for range propertyN {
		p := genProgram(r, 5)
		picks := randomPicks(r)
		want := observe(free.Map(p, func(a int) string { return g(f(a)) }), picks)
		got := observe(free.Map(free.Map(p, f), g), picks)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Map composition mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestPropertyBindLeftIdentity checks Bind(Pure(a), f) behaves like f(a).
func TestPropertyBindLeftIdentity(t *testing.T) {
	property := func(a int, picks []int) bool {
		want := observe(lawF(a), picks)
		got := observe(free.Bind(free.Pure(a), lawF), picks)
		return cmp.Equal(want, got)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyBindRightIdentity checks Bind(p, Pure) behaves like p.
func TestPropertyBindRightIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 2))
	for range propertyN {
		p := genProgram(r, 5)
		picks := randomPicks(r)
		want := observe(p, picks)
		got := observe(free.Bind(p, free.Pure[int]), picks)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Bind right identity mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestPropertyBindAssociativity checks both groupings of two binds agree.
func TestPropertyBindAssociativity(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 3))
	for range propertyN {
		p := genProgram(r, 4)
		picks := randomPicks(r)
		want := observe(free.Bind(free.Bind(p, lawF), lawG), picks)
		got := observe(free.Bind(p, func(a int) free.Program[int] {
			return free.Bind(lawF(a), lawG)
		}), picks)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Bind associativity mismatch (-want +got):\n%s", diff)
		}
	}
}

// TestPropertyMapPreservesShape checks Map changes results only.
func TestPropertyMapPreservesShape(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 4))
	for range propertyN {
		p := genProgram(r, 5)
		picks := randomPicks(r)
		plain := observe(p, picks)
		mapped := observe(free.Map(p, func(a int) int { return -a }), picks)
		if diff := cmp.Diff(plain.Out, mapped.Out); diff != "" {
			t.Fatalf("Map changed effects (-want +got):\n%s", diff)
		}
		if mapped.Result != -plain.Result {
			t.Fatalf("Map result: got %d, want %d", mapped.Result, -plain.Result)
		}
	}
}

// TestPropertyApplyPure checks Apply(Pure(f), Pure(x)) is Pure(f(x)).
func TestPropertyApplyPure(t *testing.T) {
	property := func(x int) bool {
		p := free.Apply(free.Pure(func(a int) int { return a + 7 }), free.Pure(x))
		v, ok := p.Done()
		return ok && v == x+7
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatal(err)
	}
}
