// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/mesh"
)

// LinearMesh returns a mesh of segments quad strips laid along the
// start→end axis, each strip width wide (centered on the axis) and
// perpendicular to it. The strip edge at i/segments is colored
// by Sample(i/segments).
func (g *Gradient) LinearMesh(start, end math32.Vector2, width float32, segments int) *mesh.Mesh {
	segments = clampSegments(segments, 1)
	axis := end.Sub(start)
	dir := axis.Normal()
	if dir == (math32.Vector2{}) {
		dir = math32.Vec2(1, 0)
	}
	half := dir.Rot90CCW().MulScalar(math32.Abs(width) / 2)
	m := &mesh.Mesh{}
	var prevA, prevB uint32
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		p := start.Add(axis.MulScalar(t))
		c := g.Sample(t)
		a := m.AddVertex(p.Add(half), c)
		b := m.AddVertex(p.Sub(half), c)
		if i > 0 {
			m.AddQuad(prevA, a, b, prevB)
		}
		prevA, prevB = a, b
	}
	return m
}

// RadialMesh returns a triangle fan of segments wedges around center.
// The center vertex has Sample(0) and the outer rim Sample(1). Interior
// stops get their own ring so that multi-stop gradients keep their shape.
func (g *Gradient) RadialMesh(center math32.Vector2, radius float32, segments int) *mesh.Mesh {
	segments = clampSegments(segments, 3)
	radius = math32.Abs(radius)
	m := &mesh.Mesh{}
	ci := m.AddVertex(center, g.Sample(0))

	rings := []float32{}
	if g.Validate() == nil {
		for _, st := range g.Stops {
			if st.Pos > 0 && st.Pos < 1 && (len(rings) == 0 || st.Pos > rings[len(rings)-1]) {
				rings = append(rings, st.Pos)
			}
		}
	}
	rings = append(rings, 1)

	var prev []uint32
	for _, r := range rings {
		c := g.Sample(r)
		ring := make([]uint32, segments)
		for i := range segments {
			angle := math32.Tau * float32(i) / float32(segments)
			ring[i] = m.AddVertex(center.Add(math32.Vector2Polar(angle, radius*r)), c)
		}
		for i := range segments {
			j := (i + 1) % segments
			if prev == nil {
				m.AddTriangle(ci, ring[i], ring[j])
			} else {
				m.AddQuad(prev[i], ring[i], ring[j], prev[j])
			}
		}
		prev = ring
	}
	return m
}
