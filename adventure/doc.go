// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adventure defines the effect alphabet of a small text adventure on
// [code.hybscloud.com/free].
//
// Effects: [Speak] and [Narrate] present text, [ShowScene] presents a
// location, [Offer] presents options and resumes with the selected index.
// Constructors lift one effect each ([Say], [Tell], [Show], [Ask]); fused
// variants ([SayThen], [TellThen], [ShowThen], [AskBind]) skip the
// intermediate done node.
//
// The data vocabulary ([Speaker], [Mood], [Location], [Item], [Inventory])
// is plain values. Soft failures such as full hands are reported as
// kont.Either values and turned into ordinary program branches by the
// game logic.
package adventure
