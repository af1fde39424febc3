// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the [Surface] that a host immediate-mode GUI
// toolkit provides to widgets each frame, together with the widget
// identity, typed state cache, and frame pacing rules built on top of it.
//
// Each animated widget follows the same contract on every frame:
// compute its [ID] from a caller key and its type tag, fetch its state
// from the cache (constructing the default on a miss), advance it by
// [Clock.StableDt], write it back, draw from it, and call [Continue]
// when anything in it is still moving.
package surface

import (
	"image/color"
	"reflect"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/mesh"
)

// Surface is everything the widgets require from the host.
type Surface interface {
	Painter
	Layouter
	Input
	Identity
	Clock
	Cache
	Scheduler
	Values
}

// Painter appends draw commands. Later commands paint on top of
// earlier ones, and everything is clipped to the current clip rect.
type Painter interface {

	// FillRect fills r with rounded corners of the given radius.
	FillRect(r math32.Box2, radius float32, c color.RGBA)

	// StrokeRect outlines r with rounded corners of the given radius.
	StrokeRect(r math32.Box2, radius float32, st Stroke)

	// FillCircle fills a circle.
	FillCircle(center math32.Vector2, radius float32, c color.RGBA)

	// Line strokes a line segment.
	Line(a, b math32.Vector2, st Stroke)

	// FillPolygon fills a convex polygon.
	FillPolygon(pts []math32.Vector2, c color.RGBA)

	// Mesh draws a triangle mesh with per-vertex colors.
	Mesh(m *mesh.Mesh)

	// Text draws text anchored at pos according to align,
	// returning the rect that it covers.
	Text(pos math32.Vector2, align Align, text string, font Font, c color.RGBA) math32.Box2

	// MeasureText returns the size that text would have.
	MeasureText(text string, font Font) math32.Vector2

	// PushClip intersects the clip rect with r until the matching PopClip.
	PushClip(r math32.Box2)

	// PopClip restores the clip rect from before the last PushClip.
	PopClip()

	// ClipRect returns the current clip rect.
	ClipRect() math32.Box2
}

// Layouter allocates space in the host's current layout.
type Layouter interface {

	// AllocateExactSize allocates a rect of exactly the given size
	// and senses interaction on it with a fresh auto id.
	AllocateExactSize(size math32.Vector2, sense Sense) Response

	// AllocatePainter is like AllocateExactSize, for widgets
	// that paint the allocated area themselves.
	AllocatePainter(size math32.Vector2, sense Sense) Response

	// AvailableSize returns the size left in the current layout.
	AvailableSize() math32.Vector2

	// ChildUI runs fn with a layout restricted to r.
	ChildUI(r math32.Box2, fn func(s Surface))

	// Interact senses interaction on an existing rect under the given id.
	Interact(r math32.Box2, id ID, sense Sense) Response
}

// Input reports pointer and keyboard state for the current frame.
type Input interface {

	// PointerPos returns the pointer position,
	// and false if the pointer is not over the window.
	PointerPos() (math32.Vector2, bool)

	// PointerOver returns whether the pointer is within r,
	// regardless of what is drawn on top of it.
	PointerOver(r math32.Box2) bool

	// PointerDownOn returns whether the primary button was
	// pressed on the widget and is still down.
	PointerDownOn(id ID) bool

	// Clicked returns whether the widget was clicked this frame.
	Clicked(id ID) bool

	// Hovered returns whether the widget is hovered and not covered.
	Hovered(id ID) bool

	// HasFocus returns whether the widget has keyboard focus.
	HasFocus(id ID) bool

	// KeyPressed returns whether the key was pressed this frame.
	KeyPressed(k Key) bool
}

// Identity allocates widget ids relative to the current id scope.
type Identity interface {

	// ID returns the id for the given key parts within the current scope.
	ID(parts ...any) ID

	// PushID opens a nested id scope; see [Scope].
	PushID(parts ...any)

	// PopID closes the scope opened by the last PushID.
	PopID()
}

// Clock reports frame timing. Widgets must use StableDt for all
// animation and never measure wall clock differences themselves.
type Clock interface {

	// StableDt returns the smoothed frame delta time in seconds.
	StableDt() float32

	// Now returns monotonic time in seconds, for blink phases.
	Now() float64

	// FrameNr returns the number of the current frame.
	FrameNr() uint64
}

// Cache is the host's temporary widget memory. Entries are keyed by id
// and blob type, and the host may evict entries not read for a number of
// frames. Widgets use it through [Get], [Insert] and [Update].
type Cache interface {
	Temp(id ID, typ reflect.Type) (any, bool)
	SetTemp(id ID, typ reflect.Type, v any)
}

// Scheduler requests future frames from a lazily repainting host.
type Scheduler interface {
	RequestRepaint()
	RequestRepaintAfter(seconds float32)
}

// Values is the host's global value slot, used for the theme.
type Values interface {
	Value(key string) (any, bool)
	SetValue(key string, v any)
}
