// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/surface/surfacetest"
	"cogentcore.org/armas/theme"
)

func sum(ws []float32) float32 {
	var s float32
	for _, w := range ws {
		s += w
	}
	return s
}

func TestWidths(t *testing.T) {
	ws := Widths(500, 10, []FlexItem{Fixed(100), Flex(1), Flex(3)})
	assert.Equal(t, []float32{100, 95, 285}, ws)

	ws = Widths(100, 10, []FlexItem{Fixed(80), Fixed(60), Flex(1)})
	assert.Equal(t, []float32{80, 60, 0}, ws, "overflow is returned unchanged")

	ws = Widths(300, 0, []FlexItem{Flex(0), Fixed(50), Flex(0)})
	assert.Equal(t, []float32{0, 50, 0}, ws)

	assert.Nil(t, Widths(100, 5, nil))
	assert.Equal(t, []float32{0, 100}, Widths(100, 0, []FlexItem{Fixed(-5), Flex(-1), Flex(2)})[1:])
}

func TestWidthsConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		n := 1 + rng.Intn(8)
		g := float32(rng.Intn(20))
		items := make([]FlexItem, n)
		var fixed float32
		hasFlex := false
		for i := range items {
			if rng.Intn(2) == 0 {
				items[i] = Fixed(float32(rng.Intn(100)))
				fixed += items[i].Size
			} else {
				items[i] = Flex(float32(1 + rng.Intn(5)))
				hasFlex = true
			}
		}
		w := fixed + g*float32(n-1) + float32(rng.Intn(1000))
		ws := Widths(w, g, items)
		if !hasFlex {
			continue
		}
		assert.InDelta(t, w, sum(ws)+g*float32(n-1), 1e-2, "items %v w %v g %v", items, w, g)
		for _, x := range ws {
			assert.GreaterOrEqual(t, x, float32(0))
		}
	}
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, []float32{0, 15, 45}, Offsets([]float32{10, 25, 5}, 5))
}

func TestGridCellSize(t *testing.T) {
	g := NewGrid(3).SetCellSize(2)
	assert.Equal(t, float32(MinCellSize), g.CellSize)
	g.SetCellSize(40)
	assert.Equal(t, float32(40), g.CellSize)
	g.SetColumns(0)
	assert.Equal(t, 4, g.ColumnsFor(200, 10))
	assert.Equal(t, 1, g.ColumnsFor(5, 10))
}

func TestGridShow(t *testing.T) {
	s := surfacetest.New(320, 400)
	g := NewGrid(3).SetGap(10).SetCellSize(50)
	var rects []math32.Box2
	var ids []surface.ID
	s.Frame(func(su surface.Surface) {
		resp := g.Show(su, 7, func(c surface.Surface, i int) {
			resp := c.AllocateExactSize(math32.Vec2(20, 20), 0)
			rects = append(rects, resp.Rect)
			ids = append(ids, c.ID("button"))
		})
		assert.Equal(t, math32.B2(0, 0, 320, 170), resp.Rect)
	})
	assert.Len(t, rects, 7)
	assert.Equal(t, math32.Vec2(0, 0), rects[0].Min)
	assert.Equal(t, math32.Vec2(110, 0), rects[1].Min)
	assert.Equal(t, math32.Vec2(0, 60), rects[3].Min)
	assert.Equal(t, math32.Vec2(0, 120), rects[6].Min)
	seen := map[surface.ID]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "cells get distinct id scopes")
		seen[id] = true
	}
}

func TestTableShow(t *testing.T) {
	s := surfacetest.New(400, 400)
	tb := NewTable(
		Column{Header: "Name", Width: Flex(1)},
		Column{Header: "Size", Width: Fixed(60), Align: surface.End},
	).SetStriped(true).SetRowHeight(20)
	cells := map[string]math32.Box2{}
	s.Frame(func(su surface.Surface) {
		theme.Set(su, theme.Light())
		tb.Show(su, 3, func(c surface.Surface, row, col int) {
			r := c.AllocateExactSize(math32.Vec2(1, 1), 0).Rect
			cells[fmt.Sprint(row, col)] = r
		})
	})
	headers := s.Filter(surfacetest.Text)
	assert.Len(t, headers, 2)
	assert.Equal(t, "Name", headers[0].Text)
	assert.True(t, headers[0].Font.Bold)
	assert.Equal(t, theme.Light().Palette.Foreground, headers[0].Color)
	assert.Equal(t, float32(400), headers[1].Rect.Max.X, "end aligned header")

	lines := s.Filter(surfacetest.Line)
	assert.Len(t, lines, 1)
	assert.Equal(t, float32(20), lines[0].Points[0].Y)

	assert.Equal(t, 1, s.Count(surfacetest.FillRect), "one striped row of three")
	assert.Len(t, cells, 6)
	assert.Equal(t, math32.Vec2(0, 20), cells["0 0"].Min)
	assert.Equal(t, math32.Vec2(340, 60), cells["2 1"].Min)
}

func TestHStack(t *testing.T) {
	s := surfacetest.New(300, 100)
	h := &HStack{Items: []FlexItem{Fixed(100), Flex(1)}, Gap: 20, Height: 30}
	var rs []math32.Box2
	s.Frame(func(su surface.Surface) {
		h.Show(su, func(c surface.Surface, i int) {
			rs = append(rs, c.AllocateExactSize(math32.Vec2(5, 5), 0).Rect)
		})
	})
	assert.Equal(t, math32.Vec2(120, 0), rs[1].Min)
}
