// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"image/color"

	"cogentcore.org/armas/anim"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

const (
	// DefaultPeakHold is the default time in seconds a meter peak is held.
	DefaultPeakHold = 1.5

	// DefaultPeakDecay is the default rate in level units per second at
	// which a meter peak falls after its hold time.
	DefaultPeakDecay = 0.5
)

// Meter is a vertical audio level meter with spring ballistics
// and a peak-hold marker.
type Meter struct {
	// Size is the size of the meter.
	Size math32.Vector2

	// Segments divides the meter into that many bands when positive,
	// lighting the lowest round(level*Segments) bands.
	Segments int

	// SegmentGap is the gap between bands in segmented mode.
	SegmentGap float32

	// PeakHold is how long the peak marker holds, in seconds.
	PeakHold float32

	// PeakDecay is how fast the peak marker falls after holding,
	// in level units per second.
	PeakDecay float32

	// Stiffness and Damping configure the level spring.
	Stiffness float32
	Damping   float32

	// Radius is the corner radius of the background.
	Radius float32
}

// NewMeter returns a new meter with default settings.
func NewMeter() *Meter {
	return &Meter{
		Size:      math32.Vec2(16, 120),
		PeakHold:  DefaultPeakHold,
		PeakDecay: DefaultPeakDecay,
		Stiffness: 300,
		Damping:   anim.CriticalDamping(300),
		Radius:    2,
	}
}

// SetSize sets the size of the meter.
func (m *Meter) SetSize(size math32.Vector2) *Meter {
	m.Size = size
	return m
}

// SetSegments sets the number of bands; 0 draws a continuous bar.
func (m *Meter) SetSegments(n int) *Meter {
	m.Segments = max(n, 0)
	return m
}

// SetPeakHold sets the peak hold time, which is not negative.
func (m *Meter) SetPeakHold(seconds float32) *Meter {
	m.PeakHold = max(seconds, 0)
	return m
}

// SetPeakDecay sets the peak decay rate, which is not negative.
func (m *Meter) SetPeakDecay(rate float32) *Meter {
	m.PeakDecay = max(rate, 0)
	return m
}

// MeterState is the cached state of a [Meter].
type MeterState struct {
	// Level is the displayed level in [0, 1].
	Level float32

	// Peak is the peak marker level.
	Peak float32

	// Hold is the remaining peak hold time in seconds.
	Hold float32

	// Spring drives Level toward the input.
	Spring anim.Spring
}

func (MeterState) Default() MeterState {
	return MeterState{Spring: anim.NewSpring(0)}
}

// Step advances the meter by dt seconds for the given input level.
func (st *MeterState) Step(input, dt, hold, decay float32) {
	input = level(input)
	st.Spring.SetTarget(input)
	st.Spring.Update(dt)
	st.Level = math32.Clamp01(st.Spring.Value)
	if input > st.Peak {
		st.Peak = input
		st.Hold = hold
		return
	}
	st.Hold = max(0, st.Hold-dt)
	if st.Hold == 0 {
		st.Peak = max(input, st.Peak-decay*dt)
	}
}

// Active returns whether the meter is still moving for the given input.
func (st *MeterState) Active(input float32) bool {
	return !st.Spring.IsSettled(anim.SettleEpsilon, anim.SettleEpsilon) || st.Peak > level(input)
}

// level sanitizes an input level into [0, 1].
func level(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return math32.Clamp01(x)
}

// MeterColor returns the color of the meter at the given level:
// success up to 0.7, blending to warning at 0.9 and to destructive at 1.
func MeterColor(p *theme.Palette, level float32) color.RGBA {
	switch {
	case level <= 0.7:
		return p.Success
	case level <= 0.9:
		return colors.Interpolate(p.Success, p.Warning, (level-0.7)/0.2)
	default:
		return colors.Interpolate(p.Warning, p.Destructive, (level-0.9)/0.1)
	}
}

// Show shows the meter for the given input level in [0, 1].
func (m *Meter) Show(s surface.Surface, key any, input float32) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(m.Size, surface.Hover)
	id := s.ID("meter", key)
	st := surface.Update(s, id, func(st *MeterState) {
		st.Spring.Stiffness, st.Spring.Damping = m.Stiffness, m.Damping
		st.Step(input, dt(s), m.PeakHold, m.PeakDecay)
	})

	r := resp.Rect
	h := r.Height()
	s.FillRect(r, m.Radius, th.Palette.SurfaceVariant)
	if m.Segments > 0 {
		n := m.Segments
		lit := int(math32.Round(st.Level * float32(n)))
		bh := (h - m.SegmentGap*float32(n-1)) / float32(n)
		for i := range n {
			y1 := r.Max.Y - float32(i)*(bh+m.SegmentGap)
			band := math32.B2(r.Min.X, y1-bh, r.Max.X, y1)
			c := colors.WithAF32(th.Palette.Muted, 0.5)
			if i < lit {
				c = MeterColor(&th.Palette, (float32(i)+0.5)/float32(n))
			}
			s.FillRect(band, 0, c)
		}
	} else if st.Level > 0 {
		fill := math32.B2(r.Min.X, r.Max.Y-st.Level*h, r.Max.X, r.Max.Y)
		s.FillRect(fill, 0, MeterColor(&th.Palette, st.Level))
	}
	if st.Peak > 0 {
		y := r.Max.Y - st.Peak*h
		s.Line(math32.Vec2(r.Min.X, y), math32.Vec2(r.Max.X, y), surface.Stroke{Width: 1, Color: MeterColor(&th.Palette, st.Peak)})
	}
	surface.ContinueIf(s, st.Active(input))
	return resp
}
