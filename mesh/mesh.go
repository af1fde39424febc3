// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides colored triangle meshes, the common currency
// between gradients, icons and the host painter.
package mesh

import (
	"image/color"

	"cogentcore.org/armas/math32"
)

// Vertex is a single mesh vertex with a straight-alpha color.
type Vertex struct {
	Pos   math32.Vector2
	Color color.RGBA
}

// Mesh is an indexed triangle list. Every three consecutive
// entries of Indices form one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// IsEmpty returns whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Indices) < 3
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos math32.Vector2, c color.RGBA) uint32 {
	m.Vertices = append(m.Vertices, Vertex{pos, c})
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends a triangle over three existing vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddQuad appends two triangles covering the quad a, b, c, d,
// given in winding order.
func (m *Mesh) AddQuad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// Append appends all of the geometry of o to m, offsetting its indices.
func (m *Mesh) Append(o *Mesh) {
	if o == nil {
		return
	}
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, o.Vertices...)
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Translate moves every vertex by the given offset.
func (m *Mesh) Translate(off math32.Vector2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(off)
	}
}

// SetColor sets every vertex to the given color.
func (m *Mesh) SetColor(c color.RGBA) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, v := range m.Vertices {
		b.ExpandByPoint(v.Pos)
	}
	return b
}
