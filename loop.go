// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"code.hybscloud.com/kont"
)

// Loop builds a recursive program from a step function.
// step returns Left(nextState) to run another iteration or Right(result) to
// finish.
//
// The next iteration is built when Bind reaches the Either of the current
// one. Behind a value slot that happens during construction; behind a
// function slot (a choice) it happens only when the choice is made. Loops
// of unbounded length, such as a game's room-to-room navigation, must
// therefore pass through a choice in every iteration.
func Loop[S, A any](initial S, step func(S) Program[kont.Either[S, A]]) Program[A] {
	return Bind(step(initial), func(e kont.Either[S, A]) Program[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := e.GetRight()
		return Pure(result)
	})
}
