// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"image/color"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/colors/gradient"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Blob is one moving glow of an [Aurora].
type Blob struct {
	// Center is the center of motion relative to the rect, in [0, 1].
	Center math32.Vector2

	// Radius is the radius relative to the smaller side of the rect.
	Radius float32

	// Colors are the gradient colors from the center outward. A single
	// color fades to transparent.
	Colors []color.RGBA

	// Speed scales the motion.
	Speed float32

	// Phase is the initial phase in radians along each axis.
	Phase math32.Vector2

	// Freq is the angular frequency along each axis.
	Freq math32.Vector2
}

// DefaultBlobs returns four blobs in the chart colors of the palette.
func DefaultBlobs(p *theme.Palette) []Blob {
	bs := make([]Blob, 4)
	for i := range bs {
		c := p.ChartColor(i)
		bs[i] = Blob{
			Center: math32.Vec2(0.2+0.2*float32(i), 0.3+0.15*float32(i%2)),
			Radius: 0.6,
			Colors: []color.RGBA{colors.WithAF32(c, 0.45), colors.WithAF32(c, 0)},
			Speed:  0.3 + 0.1*float32(i),
			Phase:  math32.Vec2(float32(i)*1.3, float32(i)*2.1),
			Freq:   math32.Vec2(0.7+0.13*float32(i), 0.5+0.17*float32(i)),
		}
	}
	return bs
}

// Aurora is an animated background of soft moving color blobs.
type Aurora struct {
	Size math32.Vector2

	// Blobs are the blobs; nil uses [DefaultBlobs].
	Blobs []Blob

	// Segments is the number of segments of each blob mesh.
	Segments int
}

// NewAurora returns a new aurora of the given size.
func NewAurora(size math32.Vector2) *Aurora {
	return &Aurora{Size: size, Segments: 48}
}

// SetBlobs sets the blobs.
func (a *Aurora) SetBlobs(bs ...Blob) *Aurora {
	a.Blobs = bs
	return a
}

// BlobState is the moving state of one blob.
type BlobState struct {
	Phase math32.Vector2
	Pos   math32.Vector2
}

// AuroraState is the cached state of an [Aurora].
type AuroraState struct {
	Blobs []BlobState
}

// Step advances the blob phases by dt and moves each blob around its
// center by 0.4 of the rect size, clamped to r.
func (st *AuroraState) Step(blobs []Blob, dt float32, r math32.Box2) {
	if len(st.Blobs) != len(blobs) {
		st.Blobs = make([]BlobState, len(blobs))
		for i, b := range blobs {
			st.Blobs[i].Phase = b.Phase
		}
	}
	size := r.Size()
	for i, b := range blobs {
		bs := &st.Blobs[i]
		bs.Phase = bs.Phase.Add(b.Freq.MulScalar(dt * b.Speed))
		center := r.Min.Add(b.Center.Mul(size))
		off := math32.Vec2(math32.Sin(bs.Phase.X)*0.4*size.X, math32.Sin(bs.Phase.Y)*0.4*size.Y)
		p := center.Add(off)
		bs.Pos = math32.Vec2(math32.Clamp(p.X, r.Min.X, r.Max.X), math32.Clamp(p.Y, r.Min.Y, r.Max.Y))
	}
}

// Show shows the aurora behind content.
func (a *Aurora) Show(s surface.Surface, key any, content func(s surface.Surface)) surface.Response {
	th := theme.Get(s)
	resp := s.AllocateExactSize(a.Size, 0)
	r := resp.Rect
	blobs := a.Blobs
	if blobs == nil {
		blobs = DefaultBlobs(&th.Palette)
	}
	st := surface.Update(s, s.ID("aurora", key), func(st *AuroraState) {
		st.Step(blobs, dt(s), r)
	})

	pop := surface.Clip(s, r)
	s.FillRect(r, 0, th.Palette.Background)
	side := min(r.Width(), r.Height())
	for i, b := range blobs {
		g := gradient.New(b.Colors...)
		if len(b.Colors) == 1 {
			g.AddStop(colors.WithAF32(b.Colors[0], 0), 1)
		}
		if err := g.Validate(); err != nil {
			errors.Debug(err, "aurora blob", i)
			continue
		}
		s.Mesh(g.RadialMesh(st.Blobs[i].Pos, b.Radius*side, a.Segments))
	}
	pop()
	if content != nil {
		s.ChildUI(r, content)
	}
	surface.Continue(s)
	return resp
}
