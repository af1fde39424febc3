// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"image/color"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/ease"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Spotlight is a card that lights up around the pointer while it
// hovers the card. Hover is tested against the card rect, so content
// drawn on top does not block it.
type Spotlight struct {
	Size math32.Vector2

	// Radius is the radius of the light.
	Radius float32

	// Rings is the number of concentric circles making up the light.
	Rings int

	// Intensity is the alpha of the innermost ring.
	Intensity float32

	// Grain is the relative random alpha jitter of each ring.
	Grain float32

	// Color is the light color; zero uses the primary color.
	Color color.RGBA
}

// NewSpotlight returns a new spotlight card of the given size.
func NewSpotlight(size math32.Vector2) *Spotlight {
	return &Spotlight{Size: size, Radius: 200, Rings: 50, Intensity: 0.12, Grain: 0.15}
}

// SetRadius sets the light radius.
func (sp *Spotlight) SetRadius(r float32) *Spotlight {
	sp.Radius = max(r, 0)
	return sp
}

// SetColor sets the light color.
func (sp *Spotlight) SetColor(c color.RGBA) *Spotlight {
	sp.Color = c
	return sp
}

// RingAlpha returns the alpha of ring i of n, counted from the outside:
// it grows quadratically toward the center.
func RingAlpha(i, n int, intensity float32) float32 {
	if n <= 0 {
		return 0
	}
	t := float32(i+1) / float32(n)
	return intensity * t * t
}

// Show shows the card with content drawn over the light.
func (sp *Spotlight) Show(s surface.Surface, content func(s surface.Surface)) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(sp.Size, surface.Hover)
	r := resp.Rect
	radius := th.Spacing.CornerRadius
	s.FillRect(r, radius, th.Palette.Card)

	p, ok := s.PointerPos()
	inside := ok && s.PointerOver(r)
	if inside {
		c := sp.Color
		if c == (color.RGBA{}) {
			c = th.Palette.Primary
		}
		pop := surface.Clip(s, r)
		now := s.Now()
		for i := range sp.Rings {
			rad := sp.Radius * (1 - float32(i)/float32(sp.Rings))
			a := RingAlpha(i, sp.Rings, sp.Intensity)
			a *= 1 + sp.Grain*(2*noise("grain", i, now)-1)
			s.FillCircle(p, rad, colors.WithAF32(c, math32.Clamp01(a)))
		}
		pop()
	}
	s.StrokeRect(r, radius, surface.Stroke{Width: 1, Color: th.Palette.Border})
	if content != nil {
		s.ChildUI(r, content)
	}
	surface.ContinueIf(s, inside)
	resp.Hovered = inside
	return resp
}

// RevealCard shows a text and reveals a second text over it from the
// left edge up to the pointer. When the pointer leaves, the revealed
// part slides back with a cubic ease-out.
type RevealCard struct {
	Size math32.Vector2

	// Text is the static text.
	Text string

	// Revealed is the text revealed under the pointer.
	Revealed string

	Font surface.Font

	// ExitDuration is the time in seconds the reveal takes to close.
	ExitDuration float32
}

// NewRevealCard returns a new reveal card.
func NewRevealCard(size math32.Vector2, text, revealed string) *RevealCard {
	return &RevealCard{Size: size, Text: text, Revealed: revealed, Font: surface.Body(24).WithBold(), ExitDuration: 0.4}
}

// RevealState is the cached state of a [RevealCard].
type RevealState struct {
	// Width is the width of the revealed part.
	Width float32

	// Exiting is whether the reveal is closing.
	Exiting bool

	// From is the width when the exit started.
	From float32

	// Elapsed is the time since the exit started.
	Elapsed float32
}

// Step advances the reveal. While inside, the width follows x, the
// pointer position relative to the left edge; otherwise it closes over
// the exit duration.
func (st *RevealState) Step(dt, x float32, inside bool, exit float32) {
	if inside {
		st.Width = max(x, 0)
		st.Exiting = false
		return
	}
	if st.Width <= 0 {
		st.Width, st.Exiting = 0, false
		return
	}
	if !st.Exiting {
		st.Exiting, st.From, st.Elapsed = true, st.Width, 0
	}
	st.Elapsed += dt
	t := float32(1)
	if exit > 0 {
		t = math32.Clamp01(st.Elapsed / exit)
	}
	st.Width = st.From * (1 - ease.CubicOut(t))
	if t >= 1 {
		st.Width, st.Exiting = 0, false
	}
}

// Show shows the card.
func (rc *RevealCard) Show(s surface.Surface, key any) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(rc.Size, surface.Hover)
	r := resp.Rect
	p, ok := s.PointerPos()
	inside := ok && s.PointerOver(r)
	st := surface.Update(s, s.ID("reveal-card", key), func(st *RevealState) {
		st.Step(dt(s), p.X-r.Min.X, inside, rc.ExitDuration)
	})

	s.FillRect(r, th.Spacing.CornerRadius, th.Palette.Card)
	center := r.Center()
	s.Text(center, surface.AlignCenter, rc.Text, rc.Font, th.Palette.MutedForeground)
	if st.Width > 0 {
		pop := surface.Clip(s, math32.B2(r.Min.X, r.Min.Y, r.Min.X+min(st.Width, r.Width()), r.Max.Y))
		s.FillRect(r, th.Spacing.CornerRadius, th.Palette.Card)
		s.Text(center, surface.AlignCenter, rc.Revealed, rc.Font, th.Palette.Primary)
		pop()
	}
	surface.ContinueIf(s, st.Exiting)
	resp.Hovered = inside
	return resp
}
