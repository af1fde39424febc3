// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/armas/math32"
)

// Epsilon is the smallest number below which we assume the value
// to be zero.
var Epsilon = float32(1e-7)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if a and b are equal within Epsilon.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleEqual returns true if both angles are equal.
func AngleEqual(a, b float32) bool {
	return IsAngleBetween(a, b, b)
}

// AngleNorm returns the angle theta in the range [0, 2π).
func AngleNorm(theta float32) float32 {
	theta = math32.Mod(theta, 2*math32.Pi)
	if theta < 0 {
		theta += 2 * math32.Pi
	}
	return theta
}

// IsAngleBetween is true when theta is in the range [lower, upper]
// including the end points. Angles can be outside [0, 2π).
func IsAngleBetween(theta, lower, upper float32) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	theta = AngleNorm(theta - lower + Epsilon)
	upper = AngleNorm(upper - lower + 2*Epsilon)
	return theta <= upper
}

// Angle returns the angle in radians [0, 2π) between the x-axis and OP.
func Angle(p math32.Vector2) float32 {
	return AngleNorm(math32.Atan2(p.Y, p.X))
}

// AngleBetween returns the angle between OP and OQ.
func AngleBetween(p, q math32.Vector2) float32 {
	return math32.Atan2(p.Cross(q), p.Dot(q))
}

// EllipsePos returns the position on the ellipse centered at (cx, cy)
// with radii rx and ry, rotated by phi, at angle theta.
func EllipsePos(rx, ry, phi, cx, cy, theta float32) math32.Vector2 {
	sinphi, cosphi := math32.Sincos(phi)
	sintheta, costheta := math32.Sincos(theta)
	return math32.Vec2(
		cx+rx*costheta*cosphi-ry*sintheta*sinphi,
		cy+rx*costheta*sinphi+ry*sintheta*cosphi,
	)
}

// EllipseRadiiCorrection returns the factor by which the radii must
// grow for the ellipse to span from start to end, which is at most 1
// when they are large enough.
func EllipseRadiiCorrection(start math32.Vector2, rx, ry, phi float32, end math32.Vector2) float32 {
	sinphi, cosphi := math32.Sincos(phi)
	dx, dy := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1 := cosphi*dx + sinphi*dy
	y1 := -sinphi*dx + cosphi*dy
	return math32.Sqrt(x1*x1/(rx*rx) + y1*y1/(ry*ry))
}

// EllipseToCenter converts an arc from endpoint parameterization, as
// in SVG, to its center (cx, cy) and start and end angles. The end
// angle is below the start angle when sweep is false.
func EllipseToCenter(x1, y1, rx, ry, phi float32, large, sweep bool, x2, y2 float32) (cx, cy, theta0, theta1 float32) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, 0, 0
	}
	sinphi, cosphi := math32.Sincos(phi)
	dx, dy := (x1-x2)/2, (y1-y2)/2
	x1p := cosphi*dx + sinphi*dy
	y1p := -sinphi*dx + cosphi*dy

	if l := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); l > 1 {
		s := math32.Sqrt(l)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := math32.Sqrt(max(0, num/den))
	if large == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx
	cx = cosphi*cxp - sinphi*cyp + (x1+x2)/2
	cy = sinphi*cxp + cosphi*cyp + (y1+y2)/2

	u := math32.Vec2((x1p-cxp)/rx, (y1p-cyp)/ry)
	v := math32.Vec2((-x1p-cxp)/rx, (-y1p-cyp)/ry)
	theta0 = AngleBetween(math32.Vec2(1, 0), u)
	dtheta := AngleBetween(u, v)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math32.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math32.Pi
	}
	theta1 = theta0 + dtheta
	return
}
