// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"

	"cogentcore.org/armas/anim"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// Placements are the ways a [Modal] is placed on the surface.
type Placements int32

const (
	// Dialog is centered, fading and growing in.
	Dialog Placements = iota

	// Drawer slides in from the right edge.
	Drawer

	// Sheet slides up from the bottom edge.
	Sheet
)

var placementNames = [...]string{"Dialog", "Drawer", "Sheet"}

func (p Placements) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("Placements(%d)", int(p))
	}
	return placementNames[p]
}

// ModalStates are the states of a [Modal].
type ModalStates int32

const (
	Closed ModalStates = iota
	Opening
	Open
	Closing
)

var modalStateNames = [...]string{"Closed", "Opening", "Open", "Closing"}

func (ms ModalStates) String() string {
	if ms < 0 || int(ms) >= len(modalStateNames) {
		return fmt.Sprintf("ModalStates(%d)", int(ms))
	}
	return modalStateNames[ms]
}

// ModalFrequency is the default angular frequency of the open and
// close transition.
const ModalFrequency = 14

// ModalState is the cached state of a [Modal].
type ModalState struct {
	State ModalStates

	// Anim runs from 0 when closed to 1 when open.
	Anim anim.Harmonic
}

func (ModalState) Default() ModalState {
	return ModalState{Anim: anim.NewHarmonic(0, ModalFrequency)}
}

// Open starts opening a closed or closing modal.
func (st *ModalState) Open() {
	if st.State == Closed || st.State == Closing {
		st.State = Opening
		st.Anim.SetTarget(1)
	}
}

// Close starts closing an open or opening modal.
func (st *ModalState) Close() {
	if st.State == Open || st.State == Opening {
		st.State = Closing
		st.Anim.SetTarget(0)
	}
}

// Step advances the transition by dt, finishing it once settled.
func (st *ModalState) Step(dt float32) {
	if st.State != Opening && st.State != Closing {
		return
	}
	st.Anim.Update(dt)
	if !st.Anim.Settled() {
		return
	}
	if st.State == Opening {
		st.State = Open
	} else {
		st.State = Closed
	}
}

// Progress returns the transition value clamped to [0, 1].
func (st *ModalState) Progress() float32 {
	return math32.Clamp01(st.Anim.Value)
}

// modalsKey is the [surface.Values] key holding the [modalStack].
const modalsKey = "armas_modals"

// modalStack records the modals shown in each frame, in paint order.
// Only the topmost modal of the previous frame takes Escape.
type modalStack struct {
	frame uint64
	shown []surface.ID
	top   surface.ID
	onTop bool
}

func modals(s surface.Surface) *modalStack {
	if v, ok := s.Value(modalsKey); ok {
		if ms, ok := v.(*modalStack); ok {
			return ms
		}
	}
	ms := &modalStack{}
	s.SetValue(modalsKey, ms)
	return ms
}

// push records id as shown in the frame, and returns whether it was
// the topmost modal shown in the frame before.
func (ms *modalStack) push(frame uint64, id surface.ID) bool {
	if ms.frame != frame {
		ms.onTop = ms.frame+1 == frame && len(ms.shown) > 0
		if ms.onTop {
			ms.top = ms.shown[len(ms.shown)-1]
		}
		ms.frame = frame
		ms.shown = ms.shown[:0]
	}
	ms.shown = append(ms.shown, id)
	return ms.onTop && ms.top == id
}

// Modal is a dialog, drawer or sheet shown over the surface with a
// dimmed backdrop. Escape, a click on the backdrop and the close button
// each close it, unless it is NonClosable. When modals are stacked,
// Escape closes only the one shown last.
type Modal struct {
	Placement Placements

	Title string

	// Size is the panel size. Drawers use only its X and sheets
	// only its Y; the other side spans the surface.
	Size math32.Vector2

	// NonClosable disables all the ways of closing it from the UI;
	// only the caller can close it.
	NonClosable bool

	// Frequency is the angular frequency of the transition.
	Frequency float32
}

// NewModal returns a new modal with the given placement and title.
func NewModal(placement Placements, title string) *Modal {
	m := &Modal{Placement: placement, Title: title, Frequency: ModalFrequency}
	switch placement {
	case Drawer:
		m.Size = math32.Vec2(320, 0)
	case Sheet:
		m.Size = math32.Vec2(0, 280)
	default:
		m.Size = math32.Vec2(420, 260)
	}
	return m
}

// SetNonClosable sets whether the UI can close the modal.
func (m *Modal) SetNonClosable(b bool) *Modal {
	m.NonClosable = b
	return m
}

// SetSize sets the panel size.
func (m *Modal) SetSize(size math32.Vector2) *Modal {
	m.Size = size
	return m
}

// panel returns the panel rect in screen at transition value v.
func (m *Modal) panel(screen math32.Box2, v float32) math32.Box2 {
	switch m.Placement {
	case Drawer:
		w := min(m.Size.X, screen.Width())
		x := screen.Max.X - w*v
		return math32.B2(x, screen.Min.Y, x+w, screen.Max.Y)
	case Sheet:
		h := min(m.Size.Y, screen.Height())
		y := screen.Max.Y - h*v
		return math32.B2(screen.Min.X, y, screen.Max.X, y+h)
	}
	size := m.Size.Min(screen.Size()).MulScalar(1 - 0.05*(1-v))
	return math32.B2FromPosSize(screen.Center().Sub(size.MulScalar(0.5)), size)
}

// Show shows the modal while *open is set or while it is closing, with
// content in the panel body. Closing it from the UI clears *open and
// marks the response changed.
func (m *Modal) Show(s surface.Surface, key any, open *bool, content func(s surface.Surface)) surface.Response {
	id := s.ID("modal", key)
	st := surface.Get[ModalState](s, id)
	st.Anim.Frequency = m.Frequency
	if !(st.Anim.Frequency > 0) {
		st.Anim.Frequency = ModalFrequency
	}
	if *open {
		st.Open()
	} else {
		st.Close()
	}
	st.Step(dtOf(s))
	resp := surface.Response{ID: id}
	if st.State == Closed {
		surface.Insert(s, id, st)
		return resp
	}

	topmost := false
	if st.State != Closing {
		topmost = modals(s).push(s.FrameNr(), id)
	}

	th := theme.Get(s)
	screen := s.ClipRect()
	v := st.Progress()
	s.FillRect(screen, 0, colors.WithAF32(colors.Black, 0.5*v))
	back := s.Interact(screen, id.With("backdrop"), surface.Click)

	pr := m.panel(screen, v)
	resp.Rect = pr
	panelColor := th.Palette.Card
	if m.Placement == Dialog {
		panelColor = colors.ScaleAlpha(panelColor, v)
	}
	radius := th.Spacing.CornerRadius
	s.FillRect(pr, radius, panelColor)
	s.StrokeRect(pr, radius, surface.Stroke{Width: 1, Color: th.Palette.Border})

	pad := th.Spacing.LG
	header := math32.B2(pr.Min.X+pad, pr.Min.Y+pad, pr.Max.X-pad, pr.Min.Y+pad+24)
	title := surface.Body(18).WithBold()
	s.Text(math32.Vec2(header.Min.X, header.Center().Y), surface.AlignLeftCenter, m.Title, title, th.Palette.CardForeground)

	closing := false
	if !m.NonClosable {
		cb := math32.B2(header.Max.X-24, header.Min.Y, header.Max.X, header.Max.Y)
		btn := s.Interact(cb, id.With("close"), surface.Hover|surface.Click)
		c := th.Palette.MutedForeground
		if btn.Hovered {
			c = th.Palette.Foreground
		}
		s.Text(cb.Center(), surface.AlignCenter, "×", surface.Body(18), c)
		closing = btn.Clicked ||
			(back.Clicked && !pr.ContainsPoint(pointer(s))) ||
			(topmost && s.KeyPressed(surface.KeyEscape))
	}

	body := math32.B2(pr.Min.X+pad, header.Max.Y+th.Spacing.MD, pr.Max.X-pad, pr.Max.Y-pad)
	if content != nil && !body.IsEmpty() {
		pop := surface.Scope(s, id, "body")
		s.ChildUI(body, content)
		pop()
	}

	if closing {
		*open = false
		st.Close()
		resp.Changed = true
	}
	surface.Insert(s, id, st)
	surface.ContinueIf(s, st.State == Opening || st.State == Closing)
	return resp
}

func pointer(s surface.Input) math32.Vector2 {
	p, ok := s.PointerPos()
	if !ok {
		return math32.Vec2(math32.NaN(), math32.NaN())
	}
	return p
}

// dtOf returns the stable frame delta time of s, or 0 if it is invalid.
func dtOf(s surface.Clock) float32 {
	d := s.StableDt()
	if !math32.IsFinite(d) || d < 0 {
		return 0
	}
	return d
}
