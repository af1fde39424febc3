// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// SelectList is a trigger showing the selected item that opens a list
// of items below it. While open, Up and Down move the highlight, Enter
// commits it and Escape closes the list without changing the selection.
type SelectList struct {
	Items []string

	// Placeholder is shown when nothing is selected.
	Placeholder string

	Width      float32
	ItemHeight float32

	// MaxVisible is the maximum number of items listed.
	MaxVisible int

	Font surface.Font
}

// NewSelectList returns a new select list of the given items.
func NewSelectList(items ...string) *SelectList {
	return &SelectList{Items: items, Placeholder: "Select…", Width: 200, ItemHeight: 28, MaxVisible: 8, Font: surface.Body(surface.DefaultFontSize)}
}

// SetPlaceholder sets the placeholder text.
func (sl *SelectList) SetPlaceholder(p string) *SelectList {
	sl.Placeholder = p
	return sl
}

// SelectState is the cached state of a [SelectList].
type SelectState struct {
	Open bool

	// Highlight is the index of the highlighted item.
	Highlight int

	// Scroll is the index of the first listed item.
	Scroll int
}

// Move moves the highlight by delta within n items, keeping it
// within the scroll window of visible items.
func (st *SelectState) Move(delta, n, visible int) {
	if n <= 0 {
		return
	}
	st.Highlight = math32.Clamp(st.Highlight+delta, 0, n-1)
	visible = max(visible, 1)
	if st.Highlight < st.Scroll {
		st.Scroll = st.Highlight
	} else if st.Highlight >= st.Scroll+visible {
		st.Scroll = st.Highlight - visible + 1
	}
	st.Scroll = math32.Clamp(st.Scroll, 0, max(n-visible, 0))
}

// Show shows the select list for *selected, an index into Items or
// -1 for none. The response is changed when an item was committed.
func (sl *SelectList) Show(s surface.Surface, key any, selected *int) surface.Response {
	th := theme.Get(s)
	id := s.ID("select", key)
	st := surface.Get[SelectState](s, id)
	n := len(sl.Items)
	if *selected >= n || *selected < -1 {
		*selected = -1
	}

	r := s.AllocateExactSize(math32.Vec2(sl.Width, sl.ItemHeight+8), 0).Rect
	resp := s.Interact(r, id, surface.Hover|surface.Click|surface.Focus)
	visible := min(n, max(sl.MaxVisible, 1))

	open := func() {
		st.Open = true
		st.Highlight = max(*selected, 0)
		st.Scroll = 0
		st.Move(0, n, visible)
	}
	commit := func(i int) {
		st.Open = false
		if i != *selected {
			*selected = i
			resp.Changed = true
		}
	}

	switch {
	case resp.Clicked:
		if st.Open {
			st.Open = false
		} else {
			open()
		}
	case resp.Focused && !st.Open && (s.KeyPressed(surface.KeyEnter) || s.KeyPressed(surface.KeyDown)):
		open()
	case st.Open && s.KeyPressed(surface.KeyEscape):
		st.Open = false
	case st.Open && s.KeyPressed(surface.KeyUp):
		st.Move(-1, n, visible)
	case st.Open && s.KeyPressed(surface.KeyDown):
		st.Move(1, n, visible)
	case st.Open && s.KeyPressed(surface.KeyEnter) && n > 0:
		commit(st.Highlight)
	}

	fill := stateColor(th.Palette.Card, resp.Hovered, resp.PointerDown, false)
	s.FillRect(r, th.Spacing.CornerRadius, fill)
	border := th.Palette.Border
	if resp.Focused || st.Open {
		border = th.Palette.Outline
	}
	s.StrokeRect(r, th.Spacing.CornerRadius, surface.Stroke{Width: 1, Color: border})
	pad := th.Spacing.SM
	label, fg := sl.Placeholder, th.Palette.MutedForeground
	if *selected >= 0 {
		label, fg = sl.Items[*selected], th.Palette.Foreground
	}
	s.Text(math32.Vec2(r.Min.X+pad, r.Center().Y), surface.AlignLeftCenter, label, sl.Font, fg)
	arrow := "▾"
	if st.Open {
		arrow = "▴"
	}
	s.Text(math32.Vec2(r.Max.X-pad, r.Center().Y), surface.AlignRightCenter, arrow, sl.Font, th.Palette.MutedForeground)

	if st.Open && n > 0 {
		lr := math32.B2FromPosSize(math32.Vec2(r.Min.X, r.Max.Y+th.Spacing.XS), math32.Vec2(sl.Width, float32(visible)*sl.ItemHeight))
		s.FillRect(lr, th.Spacing.CornerRadius, th.Palette.Card)
		s.StrokeRect(lr, th.Spacing.CornerRadius, surface.Stroke{Width: 1, Color: th.Palette.Border})
		for row := range visible {
			i := st.Scroll + row
			ir := math32.B2FromPosSize(math32.Vec2(lr.Min.X, lr.Min.Y+float32(row)*sl.ItemHeight), math32.Vec2(sl.Width, sl.ItemHeight))
			item := s.Interact(ir, id.With("item", i), surface.Hover|surface.Click)
			if item.Hovered {
				st.Highlight = i
			}
			if i == st.Highlight {
				s.FillRect(ir.Shrink(2), th.Spacing.CornerRadius, th.Palette.SurfaceVariant)
			}
			c := th.Palette.Foreground
			if i == *selected {
				c = th.Palette.Primary
			}
			s.Text(math32.Vec2(ir.Min.X+pad, ir.Center().Y), surface.AlignLeftCenter, sl.Items[i], sl.Font, c)
			if item.Clicked {
				commit(i)
			}
		}
	}
	surface.Insert(s, id, st)
	return resp
}
