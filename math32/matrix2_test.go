// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/armas/base/tolassert"
	"cogentcore.org/armas/math32"
)

const standardTol = float32(1.0e-6)

func TestMatrix2(t *testing.T) {
	v0 := math32.Vec2(0, 0)
	vx := math32.Vec2(1, 0)
	vy := math32.Vec2(0, 1)
	vxy := math32.Vec2(1, 1)

	assert.Equal(t, vx, math32.Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, math32.Identity2().MulVector2AsPoint(vxy))
	assert.Equal(t, vxy, math32.Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, v0, math32.Translate2D(1, 1).MulVector2AsVector(v0))
	assert.Equal(t, vxy.MulScalar(2), math32.Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolassert.EqualVector2(t, vy, math32.Rotate2D(math32.DegToRad(90)).MulVector2AsPoint(vx), standardTol)
	tolassert.EqualVector2(t, vx, math32.Rotate2D(math32.DegToRad(-90)).MulVector2AsPoint(vy), standardTol)
	tolassert.EqualVector2(t, vxy.Normal(), math32.Rotate2D(math32.DegToRad(45)).MulVector2AsPoint(vx), standardTol)
	tolassert.EqualVector2(t, vy, math32.Rotate2D(math32.DegToRad(-90)).Inverse().MulVector2AsPoint(vx), standardTol)
	tolassert.EqualVector2(t, vxy, math32.Rotate2D(math32.DegToRad(-45)).Mul(math32.Rotate2D(math32.DegToRad(45))).MulVector2AsPoint(vxy), standardTol)

	tolassert.EqualTol(t, math32.DegToRad(-45), math32.Rotate2D(math32.DegToRad(-45)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, math32.DegToRad(90), math32.Rotate2D(math32.DegToRad(90)).ExtractRot(), standardTol)

	// multiplication order is the reverse of the logical order:
	// scale, then rotate, then translate
	m := math32.Translate2D(1, 1).Mul(math32.Rotate2D(math32.DegToRad(90))).Mul(math32.Scale2D(2, 2))
	tolassert.EqualVector2(t, math32.Vec2(1, 3), m.MulVector2AsPoint(vx), standardTol)
	tolassert.EqualVector2(t, vx, m.Inverse().MulVector2AsPoint(math32.Vec2(1, 3)), 1e-5)
	assert.Equal(t, m, math32.Identity2().Translate(1, 1).Rotate(math32.DegToRad(90)).Scale(2, 2))

	tolassert.EqualTol(t, 2, math32.Skew2D(math32.Atan2(2, 1), 0).XY, 1e-5)
	assert.Equal(t, float32(-6), math32.Scale2D(2, -3).Det())
	assert.Equal(t, float32(2), math32.Scale2D(1, 4).ScaleFactor())
	assert.Equal(t, math32.Identity2(), math32.Scale2D(0, 1).Inverse())
}

func TestMatrix2Eigen(t *testing.T) {
	l1, l2, v1, v2 := math32.Scale2D(1, 4).Eigen()
	assert.Equal(t, float32(4), l1)
	assert.Equal(t, float32(1), l2)
	assert.Equal(t, math32.Vec2(0, 1), v1)
	assert.Equal(t, math32.Vec2(1, 0), v2)

	// [2 1; 1 2] has eigenvalues 3 and 1 along the diagonals
	l1, l2, v1, v2 = math32.Matrix2{XX: 2, YX: 1, XY: 1, YY: 2}.Eigen()
	tolassert.EqualTol(t, 3, l1, standardTol)
	tolassert.EqualTol(t, 1, l2, standardTol)
	tolassert.EqualVector2(t, math32.Vec2(1, 1).Normal(), v1, standardTol)
	tolassert.EqualTol(t, 0, v1.Dot(v2), standardTol)
}
