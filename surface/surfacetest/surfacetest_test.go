// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfacetest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
)

func TestRecording(t *testing.T) {
	s := New(200, 100)
	s.Pointer = math32.Vec2(5, 5)
	s.PointerIn = true
	s.Click = true
	var resp surface.Response
	s.Frame(func(su surface.Surface) {
		resp = su.AllocateExactSize(math32.Vec2(50, 20), surface.Click)
		su.FillRect(resp.Rect, 4, colors.White)
		defer surface.Clip(su, math32.B2(0, 0, 10, 10))()
		su.Text(math32.Vec2(0, 0), surface.AlignLeftTop, "hi", surface.Body(10), colors.Black)
	})
	assert.True(t, resp.Hovered)
	assert.True(t, resp.Clicked)
	assert.Equal(t, math32.B2(0, 0, 50, 20), resp.Rect)
	assert.Equal(t, 1, s.Count(FillRect))
	assert.Equal(t, []string{"hi"}, s.Texts())
	assert.Equal(t, math32.B2(0, 0, 10, 10), s.Filter(Text)[0].Clip)
	assert.Equal(t, math32.B2(0, 0, 10, 10), s.Filter(Text)[0].Rect)
	assert.False(t, s.Click, "clicks last one frame")
	assert.Equal(t, 1, s.Frames)
}

func TestLayout(t *testing.T) {
	s := New(200, 100)
	s.Spacing = 5
	s.Frame(func(su surface.Surface) {
		a := su.AllocateExactSize(math32.Vec2(10, 10), 0)
		b := su.AllocateExactSize(math32.Vec2(10, 10), 0)
		assert.Equal(t, float32(15), b.Rect.Min.Y)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, math32.Vec2(200, 70), su.AvailableSize())
		su.ChildUI(math32.B2(100, 50, 150, 90), func(cs surface.Surface) {
			c := cs.AllocateExactSize(math32.Vec2(10, 10), 0)
			assert.Equal(t, math32.Vec2(100, 50), c.Rect.Min)
		})
	})
}

func TestUnbalancedScope(t *testing.T) {
	s := New(10, 10)
	assert.Panics(t, func() {
		s.Frame(func(su surface.Surface) { su.PushID("x") })
	})
}

func TestRun(t *testing.T) {
	s := New(10, 10)
	total, frames := s.Run(10, func(su surface.Surface) {
		if su.FrameNr()%2 == 0 {
			surface.Continue(su)
		}
	})
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, frames)
	assert.InDelta(t, 10.0/60, s.Time, 1e-6)
}
