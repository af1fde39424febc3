// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Column is a table column.
type Column struct {
	Header string
	Width  FlexItem
	Align  surface.Aligns
}

// Table shows a header row with bold text and a separator rule,
// followed by rows of cells in flex-width columns.
type Table struct {
	Columns []Column

	// RowHeight is the height of each row, including the header.
	RowHeight float32

	// Gap is the horizontal gap between columns.
	Gap float32

	// FontSize is the header text size.
	FontSize float32

	// Striped shades every other row.
	Striped bool
}

// NewTable returns a new table with the given columns.
func NewTable(cols ...Column) *Table {
	return &Table{Columns: cols, RowHeight: 32, Gap: 12, FontSize: 14}
}

// SetStriped sets whether rows are shaded alternately.
func (t *Table) SetStriped(b bool) *Table {
	t.Striped = b
	return t
}

// SetRowHeight sets the row height, which is at least [MinCellSize].
func (t *Table) SetRowHeight(h float32) *Table {
	t.RowHeight = max(h, MinCellSize)
	return t
}

// Show shows the header and rows table rows, calling cell for every cell
// with a child surface restricted to the cell rect. Each row runs in an
// id scope keyed by its index.
func (t *Table) Show(s surface.Surface, rows int, cell func(s surface.Surface, row, col int)) surface.Response {
	th := theme.Get(s)
	width := s.AvailableSize().X
	rh := max(t.RowHeight, MinCellSize)
	resp := s.AllocateExactSize(math32.Vec2(width, rh*float32(rows+1)), 0)

	items := make([]FlexItem, len(t.Columns))
	for i, c := range t.Columns {
		items[i] = c.Width
	}
	widths := Widths(width, t.Gap, items)
	xs := Offsets(widths, t.Gap)
	cellRect := func(row, col int) math32.Box2 {
		pos := resp.Rect.Min.Add(math32.Vec2(xs[col], float32(row)*rh))
		return math32.B2FromPosSize(pos, math32.Vec2(widths[col], rh))
	}

	font := surface.Body(t.FontSize).WithBold()
	for col, c := range t.Columns {
		r := cellRect(0, col)
		anchor := math32.Vec2(r.Min.X, r.Center().Y)
		switch c.Align {
		case surface.Center:
			anchor.X = r.Center().X
		case surface.End:
			anchor.X = r.Max.X
		}
		s.Text(anchor, surface.Align{X: c.Align, Y: surface.Center}, c.Header, font, th.Palette.Foreground)
	}
	y := resp.Rect.Min.Y + rh
	s.Line(math32.Vec2(resp.Rect.Min.X, y), math32.Vec2(resp.Rect.Max.X, y), surface.Stroke{Width: 1, Color: th.Palette.Border})

	for row := range rows {
		if t.Striped && row%2 == 1 {
			r := math32.B2(resp.Rect.Min.X, y+float32(row)*rh, resp.Rect.Max.X, y+float32(row+1)*rh)
			s.FillRect(r, 0, colors.WithAF32(th.Palette.Muted, 0.5))
		}
		pop := surface.Scope(s, "table-row", row)
		for col := range t.Columns {
			s.ChildUI(cellRect(row+1, col), func(cs surface.Surface) { cell(cs, row, col) })
		}
		pop()
	}
	return resp
}
