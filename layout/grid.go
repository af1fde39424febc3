// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// MinCellSize is the smallest allowed grid cell size.
const MinCellSize = 10

// Grid lays cells out in rows of equal-width columns.
type Grid struct {

	// Columns is the number of columns. If 0, as many columns
	// of at least CellSize width as fit are used.
	Columns int

	// Gap is the gap between cells. If negative, the
	// theme's SM spacing is used.
	Gap float32

	// CellSize is the height of each cell and the minimum width
	// of automatic columns. It is at least [MinCellSize].
	CellSize float32
}

// NewGrid returns a new grid with the given number of columns.
func NewGrid(columns int) *Grid {
	g := &Grid{Gap: -1, CellSize: 48}
	return g.SetColumns(columns)
}

// SetColumns sets the number of columns; 0 means automatic.
func (g *Grid) SetColumns(n int) *Grid {
	g.Columns = max(n, 0)
	return g
}

// SetGap sets the gap between cells.
func (g *Grid) SetGap(gap float32) *Grid {
	g.Gap = gap
	return g
}

// SetCellSize sets the cell size, which is at least [MinCellSize].
func (g *Grid) SetCellSize(sz float32) *Grid {
	g.CellSize = max(sz, MinCellSize)
	return g
}

// ColumnsFor returns the number of columns used at the given width.
func (g *Grid) ColumnsFor(width, gap float32) int {
	if g.Columns > 0 {
		return g.Columns
	}
	cs := max(g.CellSize, MinCellSize)
	return max(1, int(math32.Floor((width+gap)/(cs+gap))))
}

// Show shows n cells, calling cell for each with a child surface
// restricted to the cell rect. Each cell runs in an id scope keyed by
// its row and column, so widgets inside cells need no index in their keys.
func (g *Grid) Show(s surface.Surface, n int, cell func(s surface.Surface, i int)) surface.Response {
	gap := g.Gap
	if gap < 0 {
		gap = theme.Get(s).Spacing.SM
	}
	width := s.AvailableSize().X
	cols := g.ColumnsFor(width, gap)
	rows := (n + cols - 1) / cols
	cs := max(g.CellSize, MinCellSize)
	height := float32(rows)*cs + float32(max(rows-1, 0))*gap
	resp := s.AllocateExactSize(math32.Vec2(width, height), 0)

	items := make([]FlexItem, cols)
	for i := range items {
		items[i] = Flex(1)
	}
	widths := Widths(width, gap, items)
	xs := Offsets(widths, gap)
	for i := range n {
		row, col := i/cols, i%cols
		pos := resp.Rect.Min.Add(math32.Vec2(xs[col], float32(row)*(cs+gap)))
		r := math32.B2FromPosSize(pos, math32.Vec2(widths[col], cs))
		pop := surface.Scope(s, "grid-cell", row, col)
		s.ChildUI(r, func(c surface.Surface) { cell(c, i) })
		pop()
	}
	return resp
}
