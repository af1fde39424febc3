// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/armas/base/tolassert"
	"cogentcore.org/armas/math32"
	"github.com/stretchr/testify/assert"
)

func tolEqualPath(t *testing.T, expected, actual Path) {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual), "%v != %v", expected, actual) {
		return
	}
	for i := range expected {
		tolassert.EqualTol(t, expected[i], actual[i], 1e-4, "value %d of %v", i, actual)
	}
}

func TestPathEmpty(t *testing.T) {
	p := Path{}
	assert.True(t, p.Empty())

	p.MoveTo(5, 2)
	assert.True(t, p.Empty())

	p.LineTo(6, 2)
	assert.False(t, p.Empty())
}

func TestPathBuilder(t *testing.T) {
	p := Path{}
	p.MoveTo(1, 1)
	p.MoveTo(5, 0)
	p.LineTo(5, 5)
	p.LineTo(5, 10)
	assert.Equal(t, Path{MoveTo, 5, 0, MoveTo, LineTo, 5, 10, LineTo}, p)

	p.LineTo(5, 10)
	p.QuadTo(5, 12, 5, 14)
	assert.Equal(t, Path{MoveTo, 5, 0, MoveTo, LineTo, 5, 14, LineTo}, p)

	p.LineTo(0, 14)
	p.LineTo(5, 0)
	p.Close()
	assert.Equal(t, Path{MoveTo, 5, 0, MoveTo, LineTo, 5, 14, LineTo, LineTo, 0, 14, LineTo, Close, 5, 0, Close}, p)
	assert.True(t, p.Closed())
	assert.Equal(t, math32.Vec2(5, 0), p.Pos())

	p.LineTo(10, 0)
	assert.Equal(t, 6, p.Len())
	assert.False(t, p.Closed())
	assert.Equal(t, math32.Vec2(5, 0), p.StartPos())

	q := Path{}
	q.MoveTo(3, 3)
	q.Close()
	assert.True(t, q.Empty())

	q.MoveTo(0, 0)
	q.ArcTo(0, 5, 0, false, false, 10, 0)
	assert.Equal(t, Path{MoveTo, 0, 0, MoveTo, LineTo, 10, 0, LineTo}, q)
}

func TestPathSane(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	assert.True(t, p.Sane())

	p.LineTo(math32.NaN(), 3)
	assert.False(t, p.Sane())
}

func TestPathCoords(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(5, 10)
	p.CubeTo(2.5, 10, 0, 5, 0, 0)
	p.Close()
	assert.Equal(t, []math32.Vector2{{0, 0}, {5, 10}, {0, 0}}, p.Coords())

	p = Path{}
	p.MoveTo(0, 0)
	p.LineTo(5, 0)
	p.LineTo(5, 5)
	p.Close()
	assert.Equal(t, []math32.Vector2{{0, 0}, {5, 0}, {5, 5}, {0, 0}}, p.Coords())
}

func TestPathSplit(t *testing.T) {
	p := Path{}
	p.MoveTo(5, 5)
	p.LineTo(6, 6)
	p.Close()
	p.LineTo(10, 10)
	ps := p.Split()
	if assert.Len(t, ps, 2) {
		assert.Equal(t, Path{MoveTo, 5, 5, MoveTo, LineTo, 6, 6, LineTo, Close, 5, 5, Close}, ps[0])
		assert.Equal(t, Path{MoveTo, 5, 5, MoveTo, LineTo, 10, 10, LineTo}, ps[1])
	}

	ps = (Path{MoveTo, 5, 5, MoveTo, MoveTo, 10, 10, MoveTo, LineTo, 20, 10, LineTo}).Split()
	if assert.Len(t, ps, 1) {
		assert.Equal(t, Path{MoveTo, 10, 10, MoveTo, LineTo, 20, 10, LineTo}, ps[0])
	}
	assert.Empty(t, (Path{MoveTo, 5, 5, MoveTo}).Split())
}

func TestPathJoin(t *testing.T) {
	p := Path{}
	p.MoveTo(5, 0)
	p.LineTo(10, 5)
	q := Path{}
	q.MoveTo(10, 5)
	q.LineTo(15, 10)
	assert.Equal(t, Path{MoveTo, 5, 0, MoveTo, LineTo, 15, 10, LineTo}, p.Clone().Join(q))

	r := Path{}
	r.MoveTo(20, 0)
	r.LineTo(30, 0)
	assert.Equal(t, 4, p.Clone().Join(r).Len())
	assert.Equal(t, p, p.Clone().Join(nil))
	assert.Equal(t, r, Path{}.Join(r))
}

func TestPathReverse(t *testing.T) {
	p := Path{}
	p.MoveTo(5, 5)
	p.LineTo(5, 10)
	p.LineTo(10, 5)
	assert.Equal(t, Path{MoveTo, 10, 5, MoveTo, LineTo, 5, 10, LineTo, LineTo, 5, 5, LineTo}, p.Reverse())

	p.Close()
	assert.Equal(t, Path{MoveTo, 5, 5, MoveTo, LineTo, 10, 5, LineTo, LineTo, 5, 10, LineTo, Close, 5, 5, Close}, p.Reverse())

	// the bottom half of an ellipse along y
	a := Path{}
	a.MoveTo(5, 5)
	a.ArcTo(2.5, 5, 0, false, false, 10, 5)
	tolEqualPath(t, Path{MoveTo, 10, 5, MoveTo, ArcTo, 5, 2.5, math32.Pi / 2, 2, 5, 5, ArcTo}, a.Reverse())

	m := p.Clone().Append(a)
	rm := m.Reverse()
	assert.Equal(t, 2, len(rm.Split()))
	assert.True(t, rm.Closed())
	assert.Empty(t, Path{}.Reverse())
}

func TestPathTransform(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	assert.Equal(t, Path{MoveTo, 5, 5, MoveTo, LineTo, 15, 5, LineTo}, p.Translate(5, 5))

	a := Path{}
	a.MoveTo(0, 0)
	a.ArcTo(5, 5, 0, false, true, 10, 0)
	tolEqualPath(t, Path{MoveTo, 0, 0, MoveTo, ArcTo, 10, 5, 0, 2, 20, 0, ArcTo}, a.Clone().Scale(2, 1))

	// mirroring flips the sweep
	tolEqualPath(t, Path{MoveTo, 0, 0, MoveTo, ArcTo, 5, 5, 0, 0, 10, 0, ArcTo}, a.Clone().Scale(1, -1))

	// a rotated ellipse keeps its radii
	e := Path{}
	e.MoveTo(0, 0)
	e.ArcTo(4, 2, 0, false, true, 8, 0)
	r := e.Clone().Transform(math32.Rotate2D(math32.Pi / 2))
	rx, ry, phi, large, sweep, end := r.ArcToPoints(CmdLen(MoveTo))
	tolassert.EqualTol(t, 4, rx, 1e-4)
	tolassert.EqualTol(t, 2, ry, 1e-4)
	tolassert.EqualTol(t, math32.Pi/2, phi, 1e-4)
	assert.False(t, large)
	assert.True(t, sweep)
	tolassert.EqualVector2(t, math32.Vec2(0, 8), end, 1e-4)
}

func TestScanner(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.QuadTo(5, 10, 10, 0)
	p.CubeTo(12, 5, 14, 5, 16, 0)
	p.ArcTo(2, 2, 0, false, true, 20, 0)
	p.Close()

	var cmds []float32
	sc := p.Scanner()
	for sc.Scan() {
		cmds = append(cmds, sc.Cmd())
		switch sc.Cmd() {
		case QuadTo:
			assert.Equal(t, math32.Vec2(0, 0), sc.Start())
			assert.Equal(t, math32.Vec2(5, 10), sc.CP1())
			assert.Equal(t, math32.Vec2(10, 0), sc.End())
		case CubeTo:
			assert.Equal(t, math32.Vec2(10, 0), sc.Start())
			assert.Equal(t, math32.Vec2(14, 5), sc.CP2())
		case ArcTo:
			rx, ry, _, large, sweep := sc.Arc()
			assert.Equal(t, float32(2), rx)
			assert.Equal(t, float32(2), ry)
			assert.False(t, large)
			assert.True(t, sweep)
			assert.Equal(t, p[sc.Index()], ArcTo)
		}
	}
	assert.Equal(t, []float32{MoveTo, QuadTo, CubeTo, ArcTo, Close}, cmds)
}

func TestEllipseToCenter(t *testing.T) {
	cx, cy, theta0, theta1 := EllipseToCenter(10, 0, 10, 10, 0, false, true, -10, 0)
	tolassert.EqualTol(t, 0, cx, 1e-4)
	tolassert.EqualTol(t, 0, cy, 1e-4)
	tolassert.EqualTol(t, 0, theta0, 1e-4)
	tolassert.EqualTol(t, math32.Pi, theta1, 1e-4)

	cx, cy, theta0, theta1 = EllipseToCenter(0, 0, 5, 5, 0, false, false, 10, 0)
	tolassert.EqualTol(t, 5, cx, 1e-4)
	tolassert.EqualTol(t, 0, cy, 1e-4)
	tolassert.EqualTol(t, -math32.Pi, theta1-theta0, 1e-4)

	tolassert.EqualVector2(t, math32.Vec2(5, 5), EllipsePos(5, 5, 0, 5, 0, math32.Pi/2), 1e-4)
}

func TestFillRules(t *testing.T) {
	assert.Equal(t, "nonzero", NonZero.String())
	assert.Equal(t, "evenodd", EvenOdd.String())
	assert.True(t, NonZero.Fills(2))
	assert.True(t, NonZero.Fills(-1))
	assert.False(t, NonZero.Fills(0))
	assert.False(t, EvenOdd.Fills(2))
	assert.True(t, EvenOdd.Fills(-1))
}
