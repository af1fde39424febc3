// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Button is a clickable text button. It is clicked by the pointer, or
// by Enter while it has focus.
type Button struct {
	Text string

	// Size is the size of the button; a zero X fits the text.
	Size math32.Vector2

	// Disabled fades the button and ignores input.
	Disabled bool

	Font surface.Font

	// Color is the fill color; zero uses the primary color.
	Color color.RGBA
}

// NewButton returns a new button with the given text.
func NewButton(text string) *Button {
	return &Button{Text: text, Size: math32.Vec2(0, 36), Font: surface.Body(surface.DefaultFontSize)}
}

// SetDisabled sets whether the button is disabled.
func (b *Button) SetDisabled(disabled bool) *Button {
	b.Disabled = disabled
	return b
}

// SetColor sets the fill color.
func (b *Button) SetColor(c color.RGBA) *Button {
	b.Color = c
	return b
}

// Show shows the button. The response is clicked when the button was
// activated this frame.
func (b *Button) Show(s surface.Surface, key any) surface.Response {
	th := theme.Get(s)
	size := b.Size
	if size.X <= 0 {
		size.X = s.MeasureText(b.Text, b.Font).X + 2*th.Spacing.LG
	}
	r := s.AllocateExactSize(size, 0).Rect
	id := s.ID("button", key)
	sense := surface.Hover | surface.Click | surface.Focus
	if b.Disabled {
		sense = 0
	}
	resp := s.Interact(r, id, sense)
	if b.Disabled {
		resp.Clicked, resp.Hovered, resp.PointerDown = false, false, false
	} else if resp.Focused && s.KeyPressed(surface.KeyEnter) {
		resp.Clicked = true
	}

	fill := b.Color
	if fill == (color.RGBA{}) {
		fill = th.Palette.Primary
	}
	fill = stateColor(fill, resp.Hovered, resp.PointerDown, b.Disabled)
	fg := stateColor(th.Palette.OnPrimary, false, false, b.Disabled)
	s.FillRect(r, th.Spacing.CornerRadius, fill)
	if resp.Focused {
		s.StrokeRect(r.Shrink(-2), th.Spacing.CornerRadius+2, surface.Stroke{Width: 2, Color: th.Palette.Outline})
	}
	s.Text(r.Center(), surface.AlignCenter, b.Text, b.Font, fg)
	return resp
}
