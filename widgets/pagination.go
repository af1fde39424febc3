// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"strconv"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Ellipsis marks a gap in the result of [PageItems].
const Ellipsis = -1

// PageItems returns the page numbers to show for current out of total
// pages, all 0-based: the first and last pages, siblings pages on each
// side of current, and [Ellipsis] for each gap of more than one page.
func PageItems(current, total, siblings int) []int {
	if total <= 0 {
		return nil
	}
	current = math32.Clamp(current, 0, total-1)
	siblings = max(siblings, 0)
	// first, last, current, its siblings and two ellipses
	if total <= 2*siblings+5 {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}
		return items
	}
	lo := max(current-siblings, 1)
	hi := min(current+siblings, total-2)
	// keep the number of items constant near the ends
	if lo <= 2 {
		lo, hi = 1, 2*siblings+2
	}
	if hi >= total-3 {
		lo, hi = total-3-2*siblings, total-2
	}
	items := []int{0}
	if lo > 1 {
		items = append(items, Ellipsis)
	}
	for i := lo; i <= hi; i++ {
		items = append(items, i)
	}
	if hi < total-2 {
		items = append(items, Ellipsis)
	}
	return append(items, total-1)
}

// Pagination is a row of page buttons with previous and next buttons.
// With focus, PageUp and PageDown go to the previous and next pages
// and Home and End go to the first and last pages.
type Pagination struct {

	// Pages is the total number of pages.
	Pages int

	// Siblings is the number of pages shown on each side of the current one.
	Siblings int

	// ButtonSize is the size of each square button.
	ButtonSize float32

	Font surface.Font
}

// NewPagination returns a new pagination over the given number of pages.
func NewPagination(pages int) *Pagination {
	return &Pagination{Pages: pages, Siblings: 1, ButtonSize: 32, Font: surface.Body(surface.DefaultFontSize)}
}

// SetSiblings sets the number of sibling pages.
func (pg *Pagination) SetSiblings(n int) *Pagination {
	pg.Siblings = n
	return pg
}

// Show shows the pagination for the 0-based *page, which it clamps to
// the valid range. The response is changed when the page changed.
func (pg *Pagination) Show(s surface.Surface, key any, page *int) surface.Response {
	id := s.ID("pagination", key)
	if pg.Pages <= 0 {
		return surface.Response{ID: id}
	}
	*page = math32.Clamp(*page, 0, pg.Pages-1)
	items := PageItems(*page, pg.Pages, pg.Siblings)
	th := theme.Get(s)
	bs := pg.ButtonSize
	gap := th.Spacing.XS
	n := len(items) + 2
	size := math32.Vec2(float32(n)*bs+float32(n-1)*gap, bs)
	r := s.AllocateExactSize(size, 0).Rect
	resp := s.Interact(r, id, surface.Focus)

	target := *page
	if resp.Focused {
		switch {
		case s.KeyPressed(surface.KeyPageUp):
			target--
		case s.KeyPressed(surface.KeyPageDown):
			target++
		case s.KeyPressed(surface.KeyHome):
			target = 0
		case s.KeyPressed(surface.KeyEnd):
			target = pg.Pages - 1
		}
	}

	x := r.Min.X
	button := func(label string, bid surface.ID, active, selected bool) bool {
		br := math32.B2(x, r.Min.Y, x+bs, r.Max.Y)
		x += bs + gap
		sense := surface.Hover | surface.Click
		if !active {
			sense = 0
		}
		b := s.Interact(br, bid, sense)
		fill := th.Palette.Card
		fg := th.Palette.Foreground
		if selected {
			fill, fg = th.Palette.Primary, th.Palette.OnPrimary
		}
		fill = stateColor(fill, b.Hovered, b.PointerDown, !active && !selected)
		fg = stateColor(fg, false, false, !active && !selected)
		s.FillRect(br, th.Spacing.CornerRadius, fill)
		if !selected {
			s.StrokeRect(br, th.Spacing.CornerRadius, surface.Stroke{Width: 1, Color: th.Palette.Border})
		}
		s.Text(br.Center(), surface.AlignCenter, label, pg.Font, fg)
		return active && b.Clicked
	}

	if button("‹", id.With("prev"), *page > 0, false) {
		target = *page - 1
	}
	for _, it := range items {
		if it == Ellipsis {
			br := math32.B2(x, r.Min.Y, x+bs, r.Max.Y)
			x += bs + gap
			s.Text(br.Center(), surface.AlignCenter, "…", pg.Font, th.Palette.MutedForeground)
			continue
		}
		if button(strconv.Itoa(it+1), id.With("page", it), it != *page, it == *page) {
			target = it
		}
	}
	if button("›", id.With("next"), *page < pg.Pages-1, false) {
		target = *page + 1
	}
	if resp.Focused {
		s.StrokeRect(r.Shrink(-2), th.Spacing.CornerRadius+2, surface.Stroke{Width: 2, Color: th.Palette.Outline})
	}

	target = math32.Clamp(target, 0, pg.Pages-1)
	if target != *page {
		*page = target
		resp.Changed = true
	}
	return resp
}
