// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adventure

import (
	"slices"

	"code.hybscloud.com/free"
)

// Program is a program over the adventure effect alphabet.
type Program[A any] = free.Program[A]

// chosen is the identity continuation for Offer.
// Named function produces a static function value.
func chosen(i int) free.Erased { return i }

// Say lifts a Speak effect: speaker says text with mood.
func Say(speaker Speaker, text string, mood Mood) Program[struct{}] {
	return free.Lift[struct{}](Speak{Speaker: speaker, Text: text, Mood: mood, Next: struct{}{}})
}

// Ask lifts an Offer effect and yields the 0-based index of the selection.
func Ask(options ...string) Program[int] {
	return free.Lift[int](Offer{Options: slices.Clone(options), Next: chosen})
}

// Show lifts a ShowScene effect presenting location.
func Show(location Location) Program[struct{}] {
	return free.Lift[struct{}](ShowScene{Location: location, Next: struct{}{}})
}

// Tell lifts a Narrate effect presenting text.
func Tell(text string) Program[struct{}] {
	return free.Lift[struct{}](Narrate{Text: text, Next: struct{}{}})
}

// SayThen says a line and then continues with next.
// Fuses Say + Then without an intermediate done node.
func SayThen[B any](speaker Speaker, text string, mood Mood, next Program[B]) Program[B] {
	return free.Suspend[B](Speak{Speaker: speaker, Text: text, Mood: mood, Next: next})
}

// TellThen narrates text and then continues with next.
// Fuses Tell + Then without an intermediate done node.
func TellThen[B any](text string, next Program[B]) Program[B] {
	return free.Suspend[B](Narrate{Text: text, Next: next})
}

// ShowThen presents location and then continues with next.
// Fuses Show + Then without an intermediate done node.
func ShowThen[B any](location Location, next Program[B]) Program[B] {
	return free.Suspend[B](ShowScene{Location: location, Next: next})
}

// AskBind offers options and passes the selected 0-based index to f.
// Fuses Ask + Bind: f is called only for the option actually selected.
func AskBind[B any](f func(int) Program[B], options ...string) Program[B] {
	return free.Suspend[B](Offer{
		Options: slices.Clone(options),
		Next:    func(i int) free.Erased { return f(i) },
	})
}

// Narration presents each text in order.
func Narration(texts ...string) Program[struct{}] {
	p := free.Pure(struct{}{})
	for i := len(texts) - 1; i >= 0; i-- {
		p = TellThen(texts[i], p)
	}
	return p
}
