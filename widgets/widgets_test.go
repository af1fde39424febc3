// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/surface/surfacetest"
	"cogentcore.org/armas/theme"
)

// textRect returns the rect of the first text command with the given text.
func textRect(t *testing.T, s *surfacetest.Surface, text string) math32.Box2 {
	t.Helper()
	for _, c := range s.Filter(surfacetest.Text) {
		if c.Text == text {
			return c.Rect
		}
	}
	require.Failf(t, "text not drawn", "%q", text)
	return math32.Box2{}
}

// clickAt sets up a click at p for the next frame.
func clickAt(s *surfacetest.Surface, p math32.Vector2) {
	s.Pointer, s.PointerIn, s.Click = p, true, true
}

////////  Button

func TestButton(t *testing.T) {
	s := surfacetest.New(400, 300)
	b := NewButton("Save")
	var resp surface.Response
	show := func(s surface.Surface) { resp = b.Show(s, "save") }

	s.Frame(show)
	r := resp.Rect
	assert.Equal(t, float32(36), r.Height())
	assert.Equal(t, float32(4*7+32), r.Width())
	assert.False(t, resp.Clicked)
	assert.Equal(t, theme.Get(s).Palette.Primary, s.Filter(surfacetest.FillRect)[0].Color)

	s.Pointer, s.PointerIn = r.Center(), true
	s.Frame(show)
	assert.True(t, resp.Hovered)
	hover := s.Filter(surfacetest.FillRect)[0].Color
	assert.Greater(t, colors.Luminance(hover), colors.Luminance(theme.Get(s).Palette.Primary))

	s.Click = true
	s.Frame(show)
	assert.True(t, resp.Clicked)

	s.PointerIn = false
	s.Focus = surface.Hash("button", "save")
	s.Keys = []surface.Key{surface.KeyEnter}
	s.Frame(show)
	assert.True(t, resp.Clicked)
	assert.Equal(t, 1, s.Count(surfacetest.StrokeRect))

	b.SetDisabled(true)
	clickAt(s, r.Center())
	s.Frame(show)
	assert.False(t, resp.Clicked)
	assert.False(t, resp.Hovered)
	assert.Equal(t, uint8(128), s.Filter(surfacetest.FillRect)[0].Color.A)
}

////////  Modal

func TestModalState(t *testing.T) {
	st := ModalState{}.Default()
	assert.Equal(t, Closed, st.State)
	st.Close()
	assert.Equal(t, Closed, st.State)

	st.Open()
	assert.Equal(t, Opening, st.State)
	for range 120 {
		st.Step(1.0 / 60)
	}
	assert.Equal(t, Open, st.State)
	assert.Equal(t, float32(1), st.Progress())

	st.Close()
	assert.Equal(t, Closing, st.State)
	st.Step(1.0 / 60)
	assert.Equal(t, Closing, st.State)
	assert.Less(t, st.Progress(), float32(1))

	// reopening midway reverses the transition
	st.Open()
	assert.Equal(t, Opening, st.State)
	st.Close()
	for range 120 {
		st.Step(1.0 / 60)
	}
	assert.Equal(t, Closed, st.State)
	assert.Equal(t, float32(0), st.Progress())
	assert.Equal(t, "Closing", Closing.String())
	assert.Equal(t, "Sheet", Sheet.String())
}

func TestModalPanel(t *testing.T) {
	screen := math32.B2(0, 0, 800, 600)

	d := NewModal(Dialog, "Dialog")
	assert.Equal(t, math32.B2(190, 170, 610, 430), d.panel(screen, 1))
	half := d.panel(screen, 0.5)
	assert.Equal(t, screen.Center(), half.Center())
	assert.Less(t, half.Width(), float32(420))

	dr := NewModal(Drawer, "Drawer")
	assert.Equal(t, math32.B2(800, 0, 1120, 600), dr.panel(screen, 0))
	assert.Equal(t, math32.B2(480, 0, 800, 600), dr.panel(screen, 1))

	sh := NewModal(Sheet, "Sheet")
	assert.Equal(t, math32.B2(0, 460, 800, 740), sh.panel(screen, 0.5))
	assert.Equal(t, math32.B2(0, 320, 800, 600), sh.panel(screen, 1))
}

func TestModalShow(t *testing.T) {
	s := surfacetest.New(800, 600)
	m := NewModal(Dialog, "Confirm")
	open := true
	var resp surface.Response
	contentCalls := 0
	show := func(s surface.Surface) {
		resp = m.Show(s, "confirm", &open, func(s surface.Surface) {
			contentCalls++
			s.Text(math32.Vec2(0, 0), surface.AlignLeftTop, "Are you sure?", surface.Body(14), colors.Black)
		})
	}

	_, frames := s.Run(120, show)
	assert.Greater(t, frames, 10)
	total, _ := s.Run(10, show)
	assert.Zero(t, total, "an open modal is idle")
	assert.Equal(t, 130, contentCalls)
	assert.Contains(t, s.Texts(), "Confirm")
	assert.Contains(t, s.Texts(), "Are you sure?")
	assert.Equal(t, math32.B2(190, 170, 610, 430), resp.Rect)

	// a click in the panel keeps it open
	clickAt(s, resp.Rect.Center())
	s.Frame(show)
	assert.True(t, open)
	assert.False(t, resp.Changed)

	// the close button closes it
	clickAt(s, textRect(t, s, "×").Center())
	s.Frame(show)
	assert.False(t, open)
	assert.True(t, resp.Changed)
	assert.Equal(t, 1, s.Repaints)

	s.PointerIn = false
	s.Run(120, show)
	assert.Zero(t, len(s.Commands))
	assert.Zero(t, s.Repaints)
	st, ok := surface.Lookup[ModalState](s, surface.Hash("modal", "confirm"))
	require.True(t, ok)
	assert.Equal(t, Closed, st.State)
}

func TestModalClose(t *testing.T) {
	tests := []struct {
		name  string
		input func(s *surfacetest.Surface)
	}{
		{"escape", func(s *surfacetest.Surface) { s.Keys = []surface.Key{surface.KeyEscape} }},
		{"backdrop", func(s *surfacetest.Surface) { clickAt(s, math32.Vec2(10, 10)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, nonClosable := range []bool{false, true} {
				s := surfacetest.New(800, 600)
				m := NewModal(Sheet, "Sheet").SetNonClosable(nonClosable)
				open := true
				show := func(s surface.Surface) { m.Show(s, "sheet", &open, nil) }
				s.Run(120, show)
				tt.input(s)
				s.Frame(show)
				assert.Equal(t, nonClosable, open)
				if nonClosable {
					assert.NotContains(t, s.Texts(), "×")
				}
			}
		})
	}
}

func TestModalEscapeTopmost(t *testing.T) {
	s := surfacetest.New(800, 600)
	drawer := NewModal(Drawer, "Settings")
	dialog := NewModal(Dialog, "Confirm")
	settings, confirm := true, true
	show := func(s surface.Surface) {
		drawer.Show(s, "settings", &settings, nil)
		dialog.Show(s, "confirm", &confirm, nil)
	}
	s.Run(120, show)

	s.Keys = []surface.Key{surface.KeyEscape}
	s.Frame(show)
	assert.True(t, settings)
	assert.False(t, confirm)

	// the closing dialog gives up Escape to the drawer under it
	s.Frame(show)
	s.Keys = []surface.Key{surface.KeyEscape}
	s.Frame(show)
	assert.False(t, settings)

	// a modal that has just appeared ignores Escape for its first frame
	s.Run(120, show)
	settings = true
	s.Keys = []surface.Key{surface.KeyEscape}
	s.Frame(show)
	assert.True(t, settings)
	s.Keys = []surface.Key{surface.KeyEscape}
	s.Frame(show)
	assert.False(t, settings)
}

////////  Pagination

func TestPageItems(t *testing.T) {
	const e = Ellipsis
	tests := []struct {
		current, total, siblings int
		want                     []int
	}{
		{0, 0, 1, nil},
		{0, 1, 1, []int{0}},
		{3, 7, 1, []int{0, 1, 2, 3, 4, 5, 6}},
		{0, 10, 1, []int{0, 1, 2, 3, 4, e, 9}},
		{3, 10, 1, []int{0, 1, 2, 3, 4, e, 9}},
		{4, 10, 1, []int{0, e, 3, 4, 5, e, 9}},
		{5, 10, 1, []int{0, e, 4, 5, 6, e, 9}},
		{6, 10, 1, []int{0, e, 5, 6, 7, 8, 9}},
		{9, 10, 1, []int{0, e, 5, 6, 7, 8, 9}},
		{50, 100, 2, []int{0, e, 48, 49, 50, 51, 52, e, 99}},
		{200, 100, 0, []int{0, e, 97, 98, 99}},
		{-5, 100, 0, []int{0, 1, 2, e, 99}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageItems(tt.current, tt.total, tt.siblings), "current %d total %d siblings %d", tt.current, tt.total, tt.siblings)
	}
}

func TestPaginationKeys(t *testing.T) {
	s := surfacetest.New(800, 600)
	pg := NewPagination(10)
	page := 0
	var resp surface.Response
	show := func(s surface.Surface) { resp = pg.Show(s, "pages", &page) }
	press := func(k surface.Key) {
		s.Keys = []surface.Key{k}
		s.Frame(show)
	}

	// keys need focus
	press(surface.KeyPageDown)
	assert.Equal(t, 0, page)

	s.Focus = surface.Hash("pagination", "pages")
	press(surface.KeyPageDown)
	assert.Equal(t, 1, page)
	assert.True(t, resp.Changed)
	press(surface.KeyEnd)
	assert.Equal(t, 9, page)
	press(surface.KeyPageDown)
	assert.Equal(t, 9, page)
	assert.False(t, resp.Changed)
	press(surface.KeyPageUp)
	assert.Equal(t, 8, page)
	press(surface.KeyHome)
	assert.Equal(t, 0, page)
	press(surface.KeyPageUp)
	assert.Equal(t, 0, page)
	assert.False(t, resp.Changed)
}

func TestPaginationClicks(t *testing.T) {
	s := surfacetest.New(800, 600)
	pg := NewPagination(10)
	page := 0
	var resp surface.Response
	show := func(s surface.Surface) { resp = pg.Show(s, "pages", &page) }

	s.Frame(show)
	assert.Equal(t, []string{"‹", "1", "2", "3", "4", "5", "…", "10", "›"}, s.Texts())
	assert.Equal(t, float32(9*32+8*4), resp.Rect.Width())

	// previous is disabled on the first page
	clickAt(s, textRect(t, s, "‹").Center())
	s.Frame(show)
	assert.Equal(t, 0, page)

	clickAt(s, textRect(t, s, "›").Center())
	s.Frame(show)
	assert.Equal(t, 1, page)
	assert.True(t, resp.Changed)

	clickAt(s, textRect(t, s, "10").Center())
	s.Frame(show)
	assert.Equal(t, 9, page)

	s.Click = false
	s.Frame(show)
	assert.Equal(t, []string{"‹", "1", "…", "6", "7", "8", "9", "10", "›"}, s.Texts())

	// clicking the current page does nothing
	clickAt(s, textRect(t, s, "10").Center())
	s.Frame(show)
	assert.False(t, resp.Changed)

	page = 42
	s.Frame(show)
	assert.Equal(t, 9, page)
}

////////  SelectList

func TestSelectStateMove(t *testing.T) {
	st := SelectState{}
	st.Move(-1, 10, 3)
	assert.Equal(t, SelectState{}, st)
	for range 4 {
		st.Move(1, 10, 3)
	}
	assert.Equal(t, SelectState{Highlight: 4, Scroll: 2}, st)
	st.Move(100, 10, 3)
	assert.Equal(t, SelectState{Highlight: 9, Scroll: 7}, st)
	st.Move(-8, 10, 3)
	assert.Equal(t, SelectState{Highlight: 1, Scroll: 1}, st)
	st.Move(1, 0, 3)
	assert.Equal(t, SelectState{Highlight: 1, Scroll: 1}, st)
}

func TestSelectListKeys(t *testing.T) {
	s := surfacetest.New(800, 600)
	sl := NewSelectList("Alpha", "Beta", "Gamma", "Delta")
	sel := -1
	var resp surface.Response
	show := func(s surface.Surface) { resp = sl.Show(s, "letters", &sel) }
	press := func(k surface.Key) {
		s.Keys = []surface.Key{k}
		s.Frame(show)
	}
	state := func() SelectState {
		return surface.Get[SelectState](s, surface.Hash("select", "letters"))
	}

	s.Frame(show)
	assert.Equal(t, []string{"Select…", "▾"}, s.Texts())

	s.Focus = surface.Hash("select", "letters")
	press(surface.KeyEnter)
	assert.True(t, state().Open)
	assert.Contains(t, s.Texts(), "Delta")
	press(surface.KeyDown)
	press(surface.KeyDown)
	press(surface.KeyUp)
	press(surface.KeyDown)
	assert.Equal(t, 2, state().Highlight)
	press(surface.KeyEnter)
	assert.Equal(t, 2, sel)
	assert.True(t, resp.Changed)
	assert.False(t, state().Open)

	press(surface.KeyEnter)
	assert.Equal(t, 2, state().Highlight)
	press(surface.KeyDown)
	press(surface.KeyDown)
	press(surface.KeyDown)
	assert.Equal(t, 3, state().Highlight)
	press(surface.KeyEscape)
	assert.Equal(t, 2, sel)
	assert.False(t, resp.Changed)
	assert.False(t, state().Open)
	assert.Equal(t, []string{"Gamma", "▾"}, s.Texts())
}

func TestSelectListClicks(t *testing.T) {
	s := surfacetest.New(800, 600)
	sl := NewSelectList("Alpha", "Beta", "Gamma")
	sel := 0
	var resp surface.Response
	show := func(s surface.Surface) { resp = sl.Show(s, "letters", &sel) }

	s.Frame(show)
	trigger := resp.Rect
	clickAt(s, trigger.Center())
	s.Frame(show)
	assert.Equal(t, []string{"Alpha", "▴", "Alpha", "Beta", "Gamma"}, s.Texts())

	beta := s.Filter(surfacetest.Text)[3].Rect
	clickAt(s, beta.Center())
	s.Frame(show)
	assert.Equal(t, 1, sel)
	assert.True(t, resp.Changed)

	s.Click = false
	s.Frame(show)
	assert.Equal(t, []string{"Beta", "▾"}, s.Texts())

	// the trigger toggles the list
	clickAt(s, trigger.Center())
	s.Frame(show)
	clickAt(s, trigger.Center())
	s.Frame(show)
	assert.False(t, surface.Get[SelectState](s, surface.Hash("select", "letters")).Open)
	assert.Equal(t, 1, sel)

	sel = 7
	s.Frame(show)
	assert.Equal(t, -1, sel)
}

func TestWidgetsIdle(t *testing.T) {
	s := surfacetest.New(800, 600)
	m := NewModal(Drawer, "Settings")
	open := true
	pg := NewPagination(20)
	page := 3
	sl := NewSelectList("One", "Two")
	sel := 0
	b := NewButton("OK")
	show := func(s surface.Surface) {
		b.Show(s, "ok")
		pg.Show(s, "pages", &page)
		sl.Show(s, "choice", &sel)
		m.Show(s, "settings", &open, func(s surface.Surface) {
			NewButton("Apply").Show(s, "apply")
		})
	}
	s.Run(120, show)
	total, _ := s.Run(10000, show)
	assert.Zero(t, total)
}
