// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"image/color"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
)

// Lerp interpolates between a and b at t. Implementations must return
// exactly a at t = 0 and exactly b at t = 1.
type Lerp[T any] func(a, b T, t float32) T

// LerpFloat32 interpolates scalars.
func LerpFloat32(a, b, t float32) float32 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}

// LerpVector2 interpolates positions and vectors component-wise.
func LerpVector2(a, b math32.Vector2, t float32) math32.Vector2 {
	return math32.Vec2(LerpFloat32(a.X, b.X, t), LerpFloat32(a.Y, b.Y, t))
}

// LerpColor interpolates colors component-wise; see [colors.Interpolate].
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	return colors.Interpolate(a, b, t)
}

// Pair is a tuple of two interpolable values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// LerpPair returns a [Lerp] for a [Pair] built from the lerps of its fields.
func LerpPair[A, B any](la Lerp[A], lb Lerp[B]) Lerp[Pair[A, B]] {
	return func(a, b Pair[A, B], t float32) Pair[A, B] {
		return Pair[A, B]{la(a.First, b.First, t), lb(a.Second, b.Second, t)}
	}
}

// LerpSlice returns a [Lerp] over equal-length slices, interpolating
// element-wise. When lengths differ, the shorter prefix is interpolated
// and the result takes its tail from the endpoint nearest to t.
func LerpSlice[T any](l Lerp[T]) Lerp[[]T] {
	return func(a, b []T, t float32) []T {
		n := min(len(a), len(b))
		src := a
		if t >= 0.5 {
			src = b
		}
		res := make([]T, len(src))
		copy(res, src)
		for i := range n {
			res[i] = l(a[i], b[i], t)
		}
		return res
	}
}
