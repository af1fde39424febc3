// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image/color"

	"cogentcore.org/armas/math32"
)

// Sense is a bit set of the interactions a widget listens for.
type Sense uint8

const (
	// Hover senses the pointer being over the widget.
	Hover Sense = 1 << iota

	// Click senses clicks, which implies Hover.
	Click

	// Drag senses presses that stay down.
	Drag

	// Focus senses keyboard focus.
	Focus
)

// Has returns whether s includes all of o.
func (s Sense) Has(o Sense) bool {
	return s&o == o
}

// Key is a keyboard key that widgets respond to.
type Key int32

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = [...]string{"None", "Enter", "Escape", "Left", "Right", "Up", "Down", "Home", "End", "PageUp", "PageDown"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "Key(?)"
	}
	return keyNames[k]
}

// Aligns are alignments along one axis.
type Aligns int32

const (
	Start Aligns = iota
	Center
	End
)

// Align positions text relative to its anchor point.
type Align struct {
	X, Y Aligns
}

var (
	AlignCenter      = Align{Center, Center}
	AlignLeftTop     = Align{Start, Start}
	AlignLeftCenter  = Align{Start, Center}
	AlignRightCenter = Align{End, Center}
)

// Place returns the top-left corner of a box of the given size
// anchored at pos.
func (a Align) Place(pos, size math32.Vector2) math32.Vector2 {
	off := func(al Aligns, sz float32) float32 {
		switch al {
		case Center:
			return -sz / 2
		case End:
			return -sz
		}
		return 0
	}
	return math32.Vec2(pos.X+off(a.X, size.X), pos.Y+off(a.Y, size.Y))
}

// Families are font families.
type Families int32

const (
	Proportional Families = iota
	Monospace
)

// Font identifies a host font.
type Font struct {
	Size   float32
	Family Families
	Bold   bool
}

// DefaultFontSize is the text size used when a [Font] has none.
const DefaultFontSize = 14

// Body returns a regular proportional font of the given size.
func Body(size float32) Font {
	return Font{Size: size}
}

// Mono returns a monospace font of the given size.
func Mono(size float32) Font {
	return Font{Size: size, Family: Monospace}
}

// WithBold returns a bold copy of the font.
func (f Font) WithBold() Font {
	f.Bold = true
	return f
}

// Stroke is a line style.
type Stroke struct {
	Width float32
	Color color.RGBA
}

// Response is the result of showing a widget.
type Response struct {

	// Rect is the area that the widget occupies.
	Rect math32.Box2

	// ID is the id interaction was sensed under.
	ID ID

	// Hovered is whether the pointer is over the widget and not covered.
	Hovered bool

	// Clicked is whether the widget was clicked this frame.
	Clicked bool

	// Changed is whether the widget changed its value this frame.
	Changed bool

	// PointerDown is whether the pointer was pressed on the widget and is down.
	PointerDown bool

	// Focused is whether the widget has keyboard focus.
	Focused bool
}

// Union combines two responses, as for a widget made of two parts.
func (r Response) Union(o Response) Response {
	rect := r.Rect
	if rect.IsEmpty() {
		rect = o.Rect
	} else if !o.Rect.IsEmpty() {
		rect.ExpandByPoint(o.Rect.Min)
		rect.ExpandByPoint(o.Rect.Max)
	}
	return Response{
		Rect:        rect,
		ID:          r.ID,
		Hovered:     r.Hovered || o.Hovered,
		Clicked:     r.Clicked || o.Clicked,
		Changed:     r.Changed || o.Changed,
		PointerDown: r.PointerDown || o.PointerDown,
		Focused:     r.Focused || o.Focused,
	}
}
