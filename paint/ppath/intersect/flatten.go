// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect has the geometry operations on paths that
// work on their segments, such as flattening curves into lines.
package intersect

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/paint/ppath"
)

// MaxCurveSegments bounds the number of lines of one flattened curve.
const MaxCurveSegments = 256

// Flatten flattens all Bézier and arc curves into lines and returns
// a new path. It uses tolerance as the maximum deviation.
func Flatten(p ppath.Path, tolerance float32) ppath.Path {
	tolerance = max(tolerance, ppath.Epsilon)
	q := make(ppath.Path, 0, len(p))
	sc := p.Scanner()
	for sc.Scan() {
		start, end := sc.Start(), sc.End()
		switch sc.Cmd() {
		case ppath.MoveTo:
			q.MoveTo(end.X, end.Y)
		case ppath.LineTo:
			q.LineTo(end.X, end.Y)
		case ppath.Close:
			q.Close()
		case ppath.QuadTo:
			FlattenQuadraticBezier(&q, start, sc.CP1(), end, tolerance)
		case ppath.CubeTo:
			FlattenCubicBezier(&q, start, sc.CP1(), sc.CP2(), end, tolerance)
		case ppath.ArcTo:
			rx, ry, phi, large, sweep := sc.Arc()
			FlattenEllipticArc(&q, start, rx, ry, phi, large, sweep, end, tolerance)
		}
	}
	return q
}

// segments returns the number of lines for a curve whose second
// derivative is bounded by dd, keeping the chord error within tolerance.
func segments(dd, tolerance float32) int {
	n := int(math32.Ceil(math32.Sqrt(dd / (8 * tolerance))))
	return math32.Clamp(n, 1, MaxCurveSegments)
}

// FlattenQuadraticBezier adds lines approximating the quadratic Bézier
// from p0 with control point p1 to p2.
func FlattenQuadraticBezier(p *ppath.Path, p0, p1, p2 math32.Vector2, tolerance float32) {
	dd := 2 * p0.Sub(p1.MulScalar(2)).Add(p2).Length()
	n := segments(dd, tolerance)
	for i := 1; i < n; i++ {
		t := float32(i) / float32(n)
		u := 1 - t
		pt := p0.MulScalar(u * u).Add(p1.MulScalar(2 * u * t)).Add(p2.MulScalar(t * t))
		p.LineTo(pt.X, pt.Y)
	}
	p.LineTo(p2.X, p2.Y)
}

// FlattenCubicBezier adds lines approximating the cubic Bézier
// from p0 with control points p1 and p2 to p3.
func FlattenCubicBezier(p *ppath.Path, p0, p1, p2, p3 math32.Vector2, tolerance float32) {
	d1 := p0.Sub(p1.MulScalar(2)).Add(p2).Length()
	d2 := p1.Sub(p2.MulScalar(2)).Add(p3).Length()
	n := segments(6*max(d1, d2), tolerance)
	for i := 1; i < n; i++ {
		t := float32(i) / float32(n)
		u := 1 - t
		pt := p0.MulScalar(u * u * u).
			Add(p1.MulScalar(3 * u * u * t)).
			Add(p2.MulScalar(3 * u * t * t)).
			Add(p3.MulScalar(t * t * t))
		p.LineTo(pt.X, pt.Y)
	}
	p.LineTo(p3.X, p3.Y)
}

// FlattenEllipticArc adds lines approximating the arc from start to end,
// with its points on the ellipse at evenly spaced angles.
func FlattenEllipticArc(p *ppath.Path, start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2, tolerance float32) {
	cx, cy, theta0, theta1 := ppath.EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
	if lambda := ppath.EllipseRadiiCorrection(start, rx, ry, phi, end); lambda > 1 {
		rx *= lambda
		ry *= lambda
	}
	dtheta := theta1 - theta0
	r := max(rx, ry)
	n := 4
	if tolerance < r {
		step := 2 * math32.Acos(1-tolerance/r)
		n = int(math32.Ceil(math32.Abs(dtheta) / step))
	}
	n = math32.Clamp(n, 1, MaxCurveSegments)
	for i := 1; i < n; i++ {
		pt := ppath.EllipsePos(rx, ry, phi, cx, cy, theta0+dtheta*float32(i)/float32(n))
		p.LineTo(pt.X, pt.Y)
	}
	p.LineTo(end.X, end.Y)
}
