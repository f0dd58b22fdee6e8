// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"code.hybscloud.com/kont"
)

// identityResume passes the handler's response value through unchanged.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// Reify converts a program into a kont defunctionalized computation.
//
// Each suspended node becomes a kont.EffectFrame whose Operation is the
// node's [Effect], followed by a bind frame that resumes the effect with
// the handler's response and reifies the next node. Conversion is lazy:
// a node is reified only when evaluation reaches it.
//
// The result can be evaluated by any kont.Handler through kont.HandleExpr,
// or stepped with kont.StepExpr.
func Reify[A any](p Program[A]) kont.Expr[A] {
	if p.effect == nil {
		return kont.ExprReturn(p.value)
	}
	return kont.ExprSuspend[A](&kont.EffectFrame[kont.Erased]{
		Operation: p.effect,
		Resume:    identityResume,
		Next: &kont.BindFrame[kont.Erased, kont.Erased]{
			F:    reifyNext(p),
			Next: kont.ReturnFrame{},
		},
	})
}

// reifyNext returns the bind function that continues p after its effect.
func reifyNext[A any](p Program[A]) func(kont.Erased) kont.Expr[kont.Erased] {
	return func(v kont.Erased) kont.Expr[kont.Erased] {
		next := Reify(p.next(v))
		return kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	}
}
