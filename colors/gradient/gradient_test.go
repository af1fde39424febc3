// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"
	"testing"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestSample(t *testing.T) {
	g := New(red, blue)
	assert.Equal(t, red, g.Sample(0))
	assert.Equal(t, blue, g.Sample(1))
	assert.Equal(t, color.RGBA{128, 0, 128, 255}, g.Sample(0.5))
	assert.Equal(t, red, g.Sample(-1))
	assert.Equal(t, blue, g.Sample(2))

	g = &Gradient{}
	g.AddStop(blue, 1).AddStop(red, 0).AddStop(colors.White, 0.5)
	assert.Equal(t, []float32{0, 0.5, 1}, []float32{g.Stops[0].Pos, g.Stops[1].Pos, g.Stops[2].Pos})
	assert.Equal(t, colors.White, g.Sample(0.5))
	assert.Equal(t, colors.Interpolate(colors.White, blue, 0.5), g.Sample(0.75))
}

func TestDegenerate(t *testing.T) {
	g := &Gradient{}
	assert.ErrorIs(t, g.Validate(), ErrDegenerate)
	assert.Equal(t, colors.White, g.Sample(0.3))
	m := g.RadialMesh(math32.Vec2(0, 0), 10, 8)
	assert.Equal(t, colors.White, m.Vertices[0].Color)
}

func TestLinearMesh(t *testing.T) {
	g := New(red, blue)
	m := g.LinearMesh(math32.Vec2(0, 0), math32.Vec2(100, 0), 10, 4)
	assert.Len(t, m.Vertices, 10)
	assert.Equal(t, 8, m.NumTriangles())
	assert.Equal(t, math32.B2(0, -5, 100, 5), m.Bounds())
	assert.Equal(t, red, m.Vertices[0].Color)
	assert.Equal(t, blue, m.Vertices[9].Color)
	assert.Equal(t, g.Sample(0.25), m.Vertices[2].Color)

	m = g.LinearMesh(math32.Vec2(0, 0), math32.Vec2(0, 0), 10, 0)
	assert.Equal(t, DefaultSegments*2, m.NumTriangles())
}

func TestRadialMesh(t *testing.T) {
	g := New(red, blue)
	m := g.RadialMesh(math32.Vec2(50, 50), 20, 16)
	assert.Len(t, m.Vertices, 17)
	assert.Equal(t, 16, m.NumTriangles())
	assert.Equal(t, red, m.Vertices[0].Color)
	for _, v := range m.Vertices[1:] {
		assert.Equal(t, blue, v.Color)
		assert.InDelta(t, 20, v.Pos.DistanceTo(math32.Vec2(50, 50)), 1e-3)
	}

	g.AddStop(colors.White, 0.5)
	m = g.RadialMesh(math32.Vec2(0, 0), 20, 8)
	assert.Len(t, m.Vertices, 17)
	assert.Equal(t, 8+16, m.NumTriangles())
	assert.Equal(t, colors.White, m.Vertices[1].Color)
}

func TestFromString(t *testing.T) {
	g, err := FromString("linear-gradient(to right, red, blue 40%, rgba(0, 0, 0, 0))")
	require.NoError(t, err)
	assert.Equal(t, Linear, g.Kind)
	assert.Equal(t, math32.Vec2(0, 0), g.Start)
	assert.Equal(t, math32.Vec2(1, 0), g.End)
	require.Len(t, g.Stops, 3)
	assert.Equal(t, float32(0), g.Stops[0].Pos)
	assert.InDelta(t, 0.4, g.Stops[1].Pos, 1e-6)
	assert.Equal(t, float32(1), g.Stops[2].Pos)
	assert.Equal(t, colors.Transparent, g.Stops[2].Color)

	g, err = FromString("radial-gradient(circle at center, red, white, blue)")
	require.NoError(t, err)
	assert.Equal(t, Radial, g.Kind)
	assert.Equal(t, float32(0.5), g.Stops[1].Pos)

	g, err = FromString("#00f")
	require.NoError(t, err)
	assert.Equal(t, blue, g.Sample(0.7))

	_, err = FromString("linear-gradient(to left)")
	assert.ErrorIs(t, err, ErrDegenerate)
	_, err = FromString("linear-gradient(red, nocolor)")
	assert.Error(t, err)
}
