// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ease

import "cogentcore.org/armas/math32"

// CubicBezier is a CSS-style timing function defined by the two control
// points (X1, Y1) and (X2, Y2) of a cubic Bézier from (0, 0) to (1, 1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float32
}

// CSS timing function presets.
var (
	Ease      = CubicBezier{0.25, 0.1, 0.25, 1}
	EaseIn    = CubicBezier{0.42, 0, 1, 1}
	EaseOut   = CubicBezier{0, 0, 0.58, 1}
	EaseInOut = CubicBezier{0.42, 0, 0.58, 1}
)

const (
	bezierIterations = 8
	bezierEpsilon    = 1e-3
	bezierMinSlope   = 1e-6
)

// bezier evaluates one coordinate of the curve at parameter s,
// given the two control values of that coordinate.
func bezier(s, p1, p2 float32) float32 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

// bezierSlope is the derivative of [bezier] with respect to s.
func bezierSlope(s, p1, p2 float32) float32 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// Apply returns the eased value at t. It solves for the curve parameter
// whose x coordinate equals t with Newton-Raphson (starting at t, at most
// 8 iterations, stopping when the error is below 1e-3 or the slope
// vanishes, clamping the parameter to [0, 1]), then returns the y
// coordinate at that parameter.
func (cb CubicBezier) Apply(t float32) float32 {
	t = clamp(t)
	s := t
	for range bezierIterations {
		err := bezier(s, cb.X1, cb.X2) - t
		if math32.Abs(err) < bezierEpsilon {
			break
		}
		slope := bezierSlope(s, cb.X1, cb.X2)
		if math32.Abs(slope) < bezierMinSlope {
			break
		}
		s = math32.Clamp01(s - err/slope)
	}
	return bezier(s, cb.Y1, cb.Y2)
}

// Func returns the curve as a [Func].
func (cb CubicBezier) Func() Func {
	return cb.Apply
}
