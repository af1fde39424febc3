// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "cogentcore.org/armas/math32"

// Scope pushes an id scope and returns the function that pops it,
// which is safe to call more than once. The intended usage is:
//
//	defer surface.Scope(s, "row", i)()
func Scope(s Identity, parts ...any) func() {
	s.PushID(parts...)
	done := false
	return func() {
		if !done {
			done = true
			s.PopID()
		}
	}
}

// Clip pushes a clip rect and returns the function that pops it,
// which is safe to call more than once.
func Clip(p Painter, r math32.Box2) func() {
	p.PushClip(r)
	done := false
	return func() {
		if !done {
			done = true
			p.PopClip()
		}
	}
}
