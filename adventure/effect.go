// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adventure

import (
	"fmt"

	"code.hybscloud.com/free"
)

// Speak is the effect of a character saying a dialogue line.
// The program continues with Next once the line has been presented.
type Speak struct {
	Speaker Speaker
	Text    string
	Mood    Mood
	Next    free.Erased
}

// Map implements free.Effect.
func (e Speak) Map(f func(free.Erased) free.Erased) free.Effect {
	e.Next = f(e.Next)
	return e
}

// Resume implements free.Effect. The resume value is ignored.
func (e Speak) Resume(free.Resumed) free.Erased { return e.Next }

// String renders the dialogue line as one line of text.
func (e Speak) String() string {
	return fmt.Sprintf("%s says: \"%s\" with %s on their face.",
		e.Speaker.Description(), e.Text, e.Mood.Description())
}

// Offer is the effect of presenting the player with options.
// Performing it yields the 0-based index of the selected option, which
// Next turns into the continuation. Index validation is the interpreter's job.
type Offer struct {
	Options []string
	Next    func(int) free.Erased
}

// Map implements free.Effect.
// The returned Offer calls the previous Next lazily.
func (e Offer) Map(f func(free.Erased) free.Erased) free.Effect {
	next := e.Next
	e.Next = func(i int) free.Erased { return f(next(i)) }
	return e
}

// Resume implements free.Effect. v must be an int in [0, len(Options)).
func (e Offer) Resume(v free.Resumed) free.Erased {
	i, ok := v.(int)
	if !ok {
		panic(fmt.Sprintf("adventure: offer resumed with %T, want int", v))
	}
	return e.Next(i)
}

// Valid reports whether i is a selectable 0-based index.
func (e Offer) Valid(i int) bool {
	return i >= 0 && i < len(e.Options)
}

// ShowScene is the effect of presenting a location.
type ShowScene struct {
	Location Location
	Next     free.Erased
}

// Map implements free.Effect.
func (e ShowScene) Map(f func(free.Erased) free.Erased) free.Effect {
	e.Next = f(e.Next)
	return e
}

// Resume implements free.Effect. The resume value is ignored.
func (e ShowScene) Resume(free.Resumed) free.Erased { return e.Next }

// String renders the location description.
func (e ShowScene) String() string { return e.Location.Description() }

// Narrate is the effect of presenting narration text.
type Narrate struct {
	Text string
	Next free.Erased
}

// Map implements free.Effect.
func (e Narrate) Map(f func(free.Erased) free.Erased) free.Effect {
	e.Next = f(e.Next)
	return e
}

// Resume implements free.Effect. The resume value is ignored.
func (e Narrate) Resume(free.Resumed) free.Erased { return e.Next }

// String returns the narration text.
func (e Narrate) String() string { return e.Text }

// continued is the resume value for effects that continue one way.
var continued free.Resumed = struct{}{}

// Continue returns the resume value for Speak, ShowScene and Narrate.
func Continue() free.Resumed { return continued }
