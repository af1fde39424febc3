// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine transformation matrix, mapping (x, y) to
// (XX*x + XY*y + X0, YX*x + YY*y + Y0). The field order matches the
// SVG matrix(a, b, c, d, e, f) transform.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// Translate2D returns a translation by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a scaling by (x, y).
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a rotation by the angle in radians,
// counter-clockwise in y-up coordinates.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// Skew2D returns a skew by the angles in radians along x and y.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{1, Tan(y), Tan(x), 1, 0, 0}
}

// Mul returns a * b, which applies b first.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// Translate returns a with a translation applied first.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a with a scaling applied first.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a with a rotation applied first.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// MulVector2AsPoint transforms v as a point, including translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{a.XX*v.X + a.XY*v.Y + a.X0, a.YX*v.X + a.YY*v.Y + a.Y0}
}

// MulVector2AsVector transforms v as a direction, without translation.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{a.XX*v.X + a.XY*v.Y, a.YX*v.X + a.YY*v.Y}
}

// Det returns the determinant of the linear part.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// ScaleFactor returns the factor by which a scales areas,
// as a length: the square root of the absolute determinant.
func (a Matrix2) ScaleFactor() float32 {
	return Sqrt(Abs(a.Det()))
}

// Inverse returns the inverse transform. A singular matrix
// gives the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	b := Matrix2{
		XX: a.YY * id,
		YX: -a.YX * id,
		XY: -a.XY * id,
		YY: a.XX * id,
	}
	b.X0 = -(b.XX*a.X0 + b.XY*a.Y0)
	b.Y0 = -(b.YX*a.X0 + b.YY*a.Y0)
	return b
}

// Transpose returns the transpose of the linear part,
// dropping the translation.
func (a Matrix2) Transpose() Matrix2 {
	return Matrix2{XX: a.XX, YX: a.XY, XY: a.YX, YY: a.YY}
}

// Eigen returns the eigenvalues lambda1 >= lambda2 of the linear part,
// which must be symmetric, and their unit eigenvectors.
func (a Matrix2) Eigen() (lambda1, lambda2 float32, v1, v2 Vector2) {
	mean := (a.XX + a.YY) / 2
	d := Hypot((a.XX-a.YY)/2, a.YX)
	lambda1, lambda2 = mean+d, mean-d
	if Abs(a.YX) < 1e-7 {
		if a.XX >= a.YY {
			return lambda1, lambda2, Vec2(1, 0), Vec2(0, 1)
		}
		return lambda1, lambda2, Vec2(0, 1), Vec2(1, 0)
	}
	v1 = Vec2(lambda1-a.YY, a.YX).Normal()
	v2 = Vec2(lambda2-a.YY, a.YX).Normal()
	return
}

// ExtractRot returns the rotation angle in radians of the transform.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}
