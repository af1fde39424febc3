// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides multi-stop color gradients and their
// triangle mesh approximations for linear and radial fills.
package gradient

import (
	"image/color"
	"sort"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
)

// ErrDegenerate is returned by [Gradient.Validate] for a gradient
// without any stops. Sampling such a gradient yields opaque white.
var ErrDegenerate = errors.New("gradient: degenerate gradient has no stops")

// DefaultSegments is the segment count used by mesh generation when
// a non-positive count is given.
const DefaultSegments = 32

// MaxSegments bounds the segment count of generated meshes.
const MaxSegments = 256

// Stop represents a single stop in a gradient
type Stop struct {

	// Pos is the position of the stop between 0 and 1
	Pos float32

	// Color is the color of the stop
	Color color.RGBA
}

// Kinds are the geometric kinds of gradient, as parsed from CSS strings.
type Kinds int32

const (
	// Linear gradients vary along an axis.
	Linear Kinds = iota

	// Radial gradients vary with distance from a center.
	Radial
)

// Gradient is an ordered sequence of color stops with non-decreasing
// positions. The zero value is a valid but degenerate gradient.
type Gradient struct {

	// Stops are the stops of the gradient; use [Gradient.AddStop]
	// to keep them ordered.
	Stops []Stop

	// Blend is the colorspace used to blend between stops.
	Blend colors.BlendTypes

	// Kind is the geometric kind of the gradient. It only matters for
	// gradients parsed from strings; mesh generation is explicit.
	Kind Kinds

	// Start and End are the normalized (0-1 box) axis of a linear gradient.
	Start, End math32.Vector2
}

// New returns a new gradient with stops evenly distributed over the
// given colors.
func New(cs ...color.RGBA) *Gradient {
	g := &Gradient{End: math32.Vec2(1, 0)}
	n := len(cs)
	for i, c := range cs {
		pos := float32(0)
		if n > 1 {
			pos = float32(i) / float32(n-1)
		}
		g.Stops = append(g.Stops, Stop{pos, c})
	}
	return g
}

// AddStop adds a new stop with the given color and position, keeping the
// stops ordered by position. Stops at equal positions keep insertion order.
// The position is clamped to [0, 1].
func (g *Gradient) AddStop(c color.RGBA, pos float32) *Gradient {
	pos = math32.Clamp01(pos)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Pos > pos })
	g.Stops = append(g.Stops, Stop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = Stop{pos, c}
	return g
}

// SetBlend sets the colorspace used to blend between stops.
func (g *Gradient) SetBlend(bt colors.BlendTypes) *Gradient {
	g.Blend = bt
	return g
}

// Validate returns [ErrDegenerate] if the gradient has no stops.
func (g *Gradient) Validate() error {
	if g == nil || len(g.Stops) == 0 {
		return ErrDegenerate
	}
	return nil
}

// Sample returns the color at the given position. It binary-searches the
// two stops enclosing t and blends their colors. t is clamped to [0, 1].
// A gradient without stops samples as opaque white.
func (g *Gradient) Sample(t float32) color.RGBA {
	if g.Validate() != nil {
		return colors.White
	}
	t = math32.Clamp01(t)
	n := len(g.Stops)
	i := sort.Search(n, func(i int) bool { return g.Stops[i].Pos >= t })
	switch i {
	case 0:
		return g.Stops[0].Color
	case n:
		return g.Stops[n-1].Color
	}
	s0, s1 := g.Stops[i-1], g.Stops[i]
	span := s1.Pos - s0.Pos
	if span <= 0 {
		return s1.Color
	}
	return colors.Blend(g.Blend, (t-s0.Pos)/span, s0.Color, s1.Color)
}

// First returns the color of the first stop (white when degenerate).
func (g *Gradient) First() color.RGBA {
	return g.Sample(0)
}

// Last returns the color of the last stop (white when degenerate).
func (g *Gradient) Last() color.RGBA {
	return g.Sample(1)
}

func clampSegments(n, min int) int {
	if n <= 0 {
		n = DefaultSegments
	}
	return math32.Clamp(n, min, MaxSegments)
}
