// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"image/color"
	"slices"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/mesh"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

////////  Meteors

// TrailSegments is the number of fading segments of a meteor trail.
const TrailSegments = 8

// Meteors is a shower of meteors crossing a rect at an angle.
type Meteors struct {
	Size math32.Vector2

	// Interval is the time in seconds between spawns.
	Interval float32

	// Angle is the direction of travel in degrees, clockwise from +X.
	Angle float32

	// SpeedMin and SpeedMax bound the random speed in pixels per second.
	SpeedMin float32
	SpeedMax float32

	// Tail is the length of the trail.
	Tail float32

	// Width is the width of the head and trail.
	Width float32

	// Max is the maximum number of live meteors.
	Max int

	// Color is the meteor color; zero uses the foreground color.
	Color color.RGBA
}

// NewMeteors returns a new meteor shower of the given size.
func NewMeteors(size math32.Vector2) *Meteors {
	return &Meteors{Size: size, Interval: 0.6, Angle: 135, SpeedMin: 250, SpeedMax: 500, Tail: 80, Width: 1.5, Max: 20}
}

// SetInterval sets the spawn interval; 0 stops spawning.
func (m *Meteors) SetInterval(seconds float32) *Meteors {
	m.Interval = max(seconds, 0)
	return m
}

// SetSpeed sets the speed range.
func (m *Meteors) SetSpeed(lo, hi float32) *Meteors {
	m.SpeedMin, m.SpeedMax = min(lo, hi), max(lo, hi)
	return m
}

// Meteor is one live meteor.
type Meteor struct {
	Start, End math32.Vector2

	// Rate is the progress per second.
	Rate float32

	// Progress runs from 0 at Start to 1 at End.
	Progress float32
}

// Head returns the position of the head.
func (mt *Meteor) Head() math32.Vector2 {
	return mt.Start.Lerp(mt.End, mt.Progress)
}

// MeteorState is the cached state of [Meteors].
type MeteorState struct {
	Meteors []Meteor

	// Timer is the time since the last spawn.
	Timer float32

	// Spawned counts spawns, seeding the next one.
	Spawned uint64
}

// Step advances the shower in r by dt, spawning with seed.
func (st *MeteorState) Step(m *Meteors, dt float32, r math32.Box2, seed surface.ID) {
	for i := range st.Meteors {
		st.Meteors[i].Progress += dt * st.Meteors[i].Rate
	}
	st.Meteors = slices.DeleteFunc(st.Meteors, func(mt Meteor) bool {
		return mt.Progress > 1
	})
	if !(m.Interval > 0) {
		st.Timer = 0
		return
	}
	st.Timer += dt
	for st.Timer >= m.Interval {
		st.Timer -= m.Interval
		if len(st.Meteors) < m.Max {
			st.Meteors = append(st.Meteors, m.spawn(r, seed, st.Spawned))
		}
		st.Spawned++
	}
}

// spawn returns a new meteor entering r from the edge it travels away from.
func (m *Meteors) spawn(r math32.Box2, seed surface.ID, n uint64) Meteor {
	dir := math32.Vector2Polar(math32.DegToRad(m.Angle), 1)
	u := noise(seed, "pos", n)
	var start math32.Vector2
	if math32.Abs(dir.Y) >= math32.Abs(dir.X) {
		start.X = r.Min.X + u*r.Width()
		start.Y = r.Min.Y
		if dir.Y < 0 {
			start.Y = r.Max.Y
		}
	} else {
		start.Y = r.Min.Y + u*r.Height()
		start.X = r.Min.X
		if dir.X < 0 {
			start.X = r.Max.X
		}
	}
	dist := r.Size().Length() + m.Tail
	speed := between(m.SpeedMin, m.SpeedMax, seed, "speed", n)
	rate := float32(1)
	if dist > 0 {
		rate = speed / dist
	}
	return Meteor{Start: start, End: start.Add(dir.MulScalar(dist)), Rate: rate}
}

// Show shows the shower behind content.
func (m *Meteors) Show(s surface.Surface, key any) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(m.Size, 0)
	r := resp.Rect
	id := s.ID("meteors", key)
	st := surface.Update(s, id, func(st *MeteorState) {
		st.Step(m, dt(s), r, id)
	})

	c := m.Color
	if c == (color.RGBA{}) {
		c = th.Palette.Foreground
	}
	pop := surface.Clip(s, r)
	for i := range st.Meteors {
		mt := &st.Meteors[i]
		head := mt.Head()
		back := mt.Start.Sub(mt.End).Normal().MulScalar(m.Tail / TrailSegments)
		for k := range TrailSegments {
			a := head.Add(back.MulScalar(float32(k)))
			b := a.Add(back)
			alpha := 1 - float32(k)/TrailSegments
			s.Line(a, b, surface.Stroke{Width: m.Width, Color: colors.ScaleAlpha(c, alpha)})
		}
		s.FillCircle(head, m.Width, c)
	}
	pop()
	if len(st.Meteors) > 0 {
		surface.Continue(s)
	} else if m.Interval > 0 {
		surface.ContinueAfter(s, m.Interval-st.Timer)
	}
	return resp
}

////////  Sparkles

// Sparkle is one twinkling particle.
type Sparkle struct {
	// Pos is the position relative to the rect, in [0, 1].
	Pos math32.Vector2

	Size  float32
	Delay float32

	// MaxLife is the twinkle period in seconds.
	MaxLife float32

	// Phase offsets the twinkle, in [0, 1).
	Phase float32

	Color color.RGBA
}

// Opacity returns the opacity of the sparkle at the given time:
// 0 before its delay, then 0.2 + 0.8*(sin(2π·life/MaxLife)+1)/2 with
// life wrapping at MaxLife.
func (sp *Sparkle) Opacity(time float32) float32 {
	if time < sp.Delay || !(sp.MaxLife > 0) {
		return 0
	}
	life := math32.Wrap(time-sp.Delay+sp.Phase*sp.MaxLife, sp.MaxLife)
	return 0.2 + 0.8*(math32.Sin(math32.Tau*life/sp.MaxLife)+1)/2
}

// Sparkles is a fixed set of twinkling stars over an area.
type Sparkles struct {
	Size math32.Vector2

	// Count is the number of sparkles.
	Count int

	// MinSize and MaxSize bound the star radius.
	MinSize float32
	MaxSize float32

	// MaxLife is the mean twinkle period; each sparkle varies it
	// by up to 30%.
	MaxLife float32

	// MaxDelay bounds the random start delay.
	MaxDelay float32

	// Colors are picked from at random; nil uses the chart colors.
	Colors []color.RGBA
}

// NewSparkles returns a new sparkle field of the given size.
func NewSparkles(size math32.Vector2) *Sparkles {
	return &Sparkles{Size: size, Count: 30, MinSize: 2, MaxSize: 6, MaxLife: 2, MaxDelay: 1.5}
}

// SetCount sets the number of sparkles.
func (sp *Sparkles) SetCount(n int) *Sparkles {
	sp.Count = max(n, 0)
	return sp
}

// SparklesState is the cached state of [Sparkles].
type SparklesState struct {
	Particles []Sparkle
	Time      float32
}

// init creates the particles deterministically from seed.
func (sp *Sparkles) init(st *SparklesState, p *theme.Palette, seed surface.ID) {
	cs := sp.Colors
	if len(cs) == 0 {
		cs = p.Chart[:]
	}
	st.Particles = make([]Sparkle, sp.Count)
	for i := range st.Particles {
		st.Particles[i] = Sparkle{
			Pos:     math32.Vec2(noise(seed, "x", i), noise(seed, "y", i)),
			Size:    between(sp.MinSize, sp.MaxSize, seed, "size", i),
			Delay:   between(0, sp.MaxDelay, seed, "delay", i),
			MaxLife: sp.MaxLife * between(0.7, 1.3, seed, "life", i),
			Phase:   noise(seed, "phase", i),
			Color:   cs[int(noise(seed, "color", i)*float32(len(cs)))%len(cs)],
		}
	}
}

// star returns a 4-point star as a fan of 8 triangles around its
// center, which is vertex 0. The outline is concave, so it cannot go
// through FillPolygon.
func star(c math32.Vector2, r float32, col color.RGBA) *mesh.Mesh {
	m := &mesh.Mesh{}
	center := m.AddVertex(c, col)
	for i := range 8 {
		rad := r
		if i%2 == 1 {
			rad = r * 0.3
		}
		m.AddVertex(c.Add(math32.Vector2Polar(float32(i)*math32.Pi/4-math32.Pi/2, rad)), col)
	}
	for i := range uint32(8) {
		m.AddTriangle(center, 1+i, 1+(i+1)%8)
	}
	return m
}

// Show shows the sparkles over content.
func (sp *Sparkles) Show(s surface.Surface, key any, content func(s surface.Surface)) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(sp.Size, 0)
	r := resp.Rect
	id := s.ID("sparkles", key)
	st := surface.Update(s, id, func(st *SparklesState) {
		if len(st.Particles) != sp.Count {
			sp.init(st, &th.Palette, id)
		}
		st.Time += dt(s)
	})

	if content != nil {
		s.ChildUI(r, content)
	}
	pop := surface.Clip(s, r)
	for i := range st.Particles {
		p := &st.Particles[i]
		a := p.Opacity(st.Time)
		if a <= 0 {
			continue
		}
		pos := r.Min.Add(p.Pos.Mul(r.Size()))
		s.FillCircle(pos, p.Size*1.5, colors.ScaleAlpha(p.Color, a*0.25))
		s.Mesh(star(pos, p.Size, colors.ScaleAlpha(p.Color, a)))
	}
	pop()
	surface.ContinueIf(s, len(st.Particles) > 0)
	return resp
}
