// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, float32(10), Wrap(530, 520))
	assert.Equal(t, float32(510), Wrap(-10, 520))
	assert.Equal(t, float32(0), Wrap(520, 520))
	assert.Equal(t, float32(0), Wrap(5, 0))
	assert.Equal(t, float32(0), Wrap(5, -3))
	w := Wrap(-1e-9, 520)
	assert.GreaterOrEqual(t, w, float32(0))
	assert.Less(t, w, float32(520))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, float32(0), Clamp01(-1))
	assert.Equal(t, float32(0), Clamp01(NaN()))
	assert.Equal(t, float32(0.5), Clamp01(0.5))
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vec2(4, 6), Vec2(1, 2).Add(Vec2(3, 4)))
	assert.Equal(t, Vec2(-2, -2), Vec2(1, 2).Sub(Vec2(3, 4)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, Vec2(2, 3), Vec2(0, 0).Lerp(Vec2(4, 6), 0.5))
	assert.Equal(t, Vec2(-2, 1), Vec2(1, 2).Rot90CCW())
	assert.Equal(t, Vector2{}, Vec2(1, 1).DivScalar(0))
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 20)
	assert.Equal(t, Vec2(10, 20), b.Size())
	assert.Equal(t, Vec2(5, 10), b.Center())
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.False(t, b.ContainsPoint(Vec2(10.1, 20)))
	assert.Equal(t, B2(5, 5, 10, 20), b.Intersect(B2(5, 5, 30, 30)))
	assert.True(t, B2Empty().IsEmpty())
	e := B2Empty()
	e.ExpandByPoint(Vec2(1, 2))
	e.ExpandByPoint(Vec2(-1, 4))
	assert.Equal(t, B2(-1, 2, 1, 4), e)
	assert.Equal(t, B2(1, 1, 9, 19), b.Shrink(1))
}
