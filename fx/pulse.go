// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"image/color"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/colors/gradient"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// phase returns the fractional cycle of a hz oscillation at the host time.
func phase(s surface.Clock, hz float32) float32 {
	return math32.Wrap(float32(s.Now())*hz, 1)
}

// Pulse returns a value oscillating smoothly in [0, 1] at hz, and keeps
// repainting while hz is positive. A hz that is not positive gives 1.
func Pulse(s surface.Surface, hz float32) float32 {
	if !surface.ContinueIf(s, hz > 0 && math32.IsFinite(hz)) {
		return 1
	}
	return (1 - math32.Cos(math32.Tau*phase(s, hz))) / 2
}

// Blink returns whether something blinking at hz is on, and keeps
// repainting while hz is positive. A hz that is not positive is always on.
func Blink(s surface.Surface, hz float32) bool {
	if !surface.ContinueIf(s, hz > 0 && math32.IsFinite(hz)) {
		return true
	}
	return phase(s, hz) < 0.5
}

// Shimmer is a highlight band sweeping across a rect, as for loading
// placeholders.
type Shimmer struct {
	// Period is the time in seconds of one sweep.
	Period float32

	// Band is the band width relative to the rect width.
	Band float32

	// Color is the highlight color; zero uses a translucent foreground.
	Color color.RGBA

	// Enabled turns the sweep on.
	Enabled bool
}

// NewShimmer returns a new enabled shimmer.
func NewShimmer() *Shimmer {
	return &Shimmer{Period: 1.5, Band: 0.35, Enabled: true}
}

// SetEnabled sets whether the shimmer sweeps.
func (sh *Shimmer) SetEnabled(on bool) *Shimmer {
	sh.Enabled = on
	return sh
}

// Show draws the band over r and keeps repainting while enabled.
func (sh *Shimmer) Show(s surface.Surface, r math32.Box2) {
	if !sh.Enabled || !(sh.Period > 0) || r.IsEmpty() {
		return
	}
	c := sh.Color
	if c == (color.RGBA{}) {
		c = colors.WithAF32(theme.Get(s).Palette.Foreground, 0.12)
	}
	band := sh.Band * r.Width()
	x := r.Min.X - band + (r.Width()+2*band)*phase(s, 1/sh.Period)
	cy := r.Center().Y
	g := gradient.New(colors.WithAF32(c, 0), c, colors.WithAF32(c, 0))
	pop := surface.Clip(s, r)
	s.Mesh(g.LinearMesh(math32.Vec2(x-band/2, cy), math32.Vec2(x+band/2, cy), r.Height(), 8))
	pop()
	surface.Continue(s)
}
