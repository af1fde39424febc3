// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/armas/math32"
)

// Transform transforms the path in place by the matrix and returns it.
// Arcs stay arcs: their radii and rotation are recomputed from the
// transformed ellipse.
func (p Path) Transform(m math32.Matrix2) Path {
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo, LineTo, Close:
			p.transformPoint(m, i+1)
		case QuadTo:
			p.transformPoint(m, i+1)
			p.transformPoint(m, i+3)
		case CubeTo:
			p.transformPoint(m, i+1)
			p.transformPoint(m, i+3)
			p.transformPoint(m, i+5)
		case ArcTo:
			rx, ry, phi, large, sweep, _ := p.ArcToPoints(i)

			// The ellipse is x^T E x = 1 with E = diag(1/rx², 1/ry²) in its
			// own frame T. Under m it becomes x'^T Q x' = 1 with
			// Q = T^-T E T^-1, whose eigenvectors are the new axes.
			t := m.Rotate(phi)
			inv := t.Inverse()
			q := inv.Transpose().Mul(math32.Scale2D(1/(rx*rx), 1/(ry*ry))).Mul(inv)
			lambda1, lambda2, v1, v2 := q.Eigen()
			rx = 1 / math32.Sqrt(lambda1)
			ry = 1 / math32.Sqrt(lambda2)
			phi = Angle(v1)
			if rx < ry {
				rx, ry = ry, rx
				phi = Angle(v2)
			}
			phi = AngleNorm(phi)
			if Equal(rx, ry) {
				phi = 0
			} else if math32.Pi <= phi {
				phi -= math32.Pi
			}
			if m.Det() < 0 {
				sweep = !sweep
			}
			p[i+1] = rx
			p[i+2] = ry
			p[i+3] = phi
			p[i+4] = fromArcFlags(large, sweep)
			p.transformPoint(m, i+5)
		}
		i += CmdLen(cmd)
	}
	return p
}

func (p Path) transformPoint(m math32.Matrix2, i int) {
	v := m.MulVector2AsPoint(math32.Vec2(p[i], p[i+1]))
	p[i] = v.X
	p[i+1] = v.Y
}

// Translate translates the path by (x, y) in place and returns it.
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale scales the path by (x, y) in place and returns it.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}
