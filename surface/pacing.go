// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

// repaintKey is the [Values] key holding the frame number in which
// [Continue] last requested a repaint.
const repaintKey = "armas_repaint_frame"

// pacer is the subset of [Surface] used for frame pacing.
type pacer interface {
	Clock
	Scheduler
	Values
}

// Continue requests another frame, at most once per frame however
// many widgets call it. Widgets must call it on every frame in which
// any of their animations is unsettled, and must not call it otherwise.
func Continue(s pacer) {
	if requested(s) {
		return
	}
	s.SetValue(repaintKey, s.FrameNr()+1)
	s.RequestRepaint()
}

// ContinueAfter requests a frame after the given delay, for widgets that
// are idle until a known time. It does nothing if [Continue] already
// requested a frame this frame.
func ContinueAfter(s pacer, seconds float32) {
	if requested(s) {
		return
	}
	if !(seconds > 0) {
		Continue(s)
		return
	}
	s.RequestRepaintAfter(seconds)
}

// ContinueIf calls [Continue] if active is true, and returns active.
func ContinueIf(s pacer, active bool) bool {
	if active {
		Continue(s)
	}
	return active
}

// requested returns whether Continue has already run this frame.
// The value stored is the frame number plus one so that the zero
// value never matches.
func requested(s pacer) bool {
	v, ok := s.Value(repaintKey)
	if !ok {
		return false
	}
	f, ok := v.(uint64)
	return ok && f == s.FrameNr()+1
}
