// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surfacetest provides a fake [surface.Surface] host that
// records draw commands and repaint requests, with a controllable clock,
// pointer and keyboard, for testing widgets frame by frame.
package surfacetest

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/mesh"
	"cogentcore.org/armas/surface"
)

// Kinds are the kinds of recorded draw commands.
type Kinds int32

const (
	FillRect Kinds = iota
	StrokeRect
	FillCircle
	Line
	Polygon
	Mesh
	Text
)

var kindNames = [...]string{"FillRect", "StrokeRect", "FillCircle", "Line", "Polygon", "Mesh", "Text"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one recorded draw command.
type Command struct {
	Kind   Kinds
	Rect   math32.Box2
	Radius float32
	Color  color.RGBA
	Stroke surface.Stroke
	Points []math32.Vector2
	Mesh   *mesh.Mesh
	Text   string
	Font   surface.Font
	Align  surface.Align

	// Clip is the clip rect in effect when the command was issued.
	Clip math32.Box2
}

// Surface is the fake host. The exported fields are the input for the
// next frame and may be set freely between frames.
type Surface struct {
	*surface.Memory

	// Size is the size of the window.
	Size math32.Vector2

	// Dt is the stable delta time reported every frame.
	Dt float32

	// Time is the current time in seconds.
	Time float64

	// Pointer is the pointer position, valid when PointerIn is set.
	Pointer   math32.Vector2
	PointerIn bool

	// Down is whether the primary button is down.
	Down bool

	// Click is whether a click happens this frame at Pointer.
	Click bool

	// Keys are the keys pressed this frame.
	Keys []surface.Key

	// Focus is the id with keyboard focus.
	Focus surface.ID

	// Spacing is the vertical gap between allocations.
	Spacing float32

	// Commands are the draw commands of the current frame.
	Commands []Command

	// Repaints is the number of repaint requests this frame.
	Repaints int

	// RepaintAfter are the delayed repaint requests this frame.
	RepaintAfter []float32

	// Frames is the number of frames run.
	Frames int

	clips   []math32.Box2
	ids     []surface.ID
	regions []region
	hovered map[surface.ID]bool
	clicked map[surface.ID]bool
	down    map[surface.ID]bool
	autoID  int
}

// region is a layout region in which allocations stack vertically.
type region struct {
	rect   math32.Box2
	cursor float32
}

// New returns a new fake host with a window of the given size
// running at 60 frames per second.
func New(w, h float32) *Surface {
	s := &Surface{Memory: surface.NewMemory(), Size: math32.Vec2(w, h), Dt: 1.0 / 60}
	s.reset()
	return s
}

func (s *Surface) window() math32.Box2 {
	return math32.B2(0, 0, s.Size.X, s.Size.Y)
}

func (s *Surface) reset() {
	s.Commands = nil
	s.Repaints = 0
	s.RepaintAfter = nil
	s.clips = []math32.Box2{s.window()}
	s.ids = nil
	s.regions = []region{{rect: s.window()}}
	s.hovered = map[surface.ID]bool{}
	s.clicked = map[surface.ID]bool{}
	s.down = map[surface.ID]bool{}
	s.autoID = 0
}

// Frame runs one frame: it clears the recording, calls fn, checks that
// id scopes and clips are balanced, advances the clock and evicts stale
// state. Clicks and keys apply to this frame only.
func (s *Surface) Frame(fn func(s surface.Surface)) {
	s.reset()
	fn(s)
	if len(s.ids) != 0 {
		panic(fmt.Sprintf("surfacetest: %d unbalanced PushID calls", len(s.ids)))
	}
	if len(s.clips) != 1 {
		panic(fmt.Sprintf("surfacetest: %d unbalanced PushClip calls", len(s.clips)-1))
	}
	s.Frames++
	s.Time += float64(s.Dt)
	s.Click = false
	s.Keys = nil
	s.Memory.EndFrame()
}

// Run runs n frames of fn, returning the total number of repaint
// requests and the number of frames with a repaint request.
func (s *Surface) Run(n int, fn func(s surface.Surface)) (total, frames int) {
	for range n {
		s.Frame(fn)
		total += s.Repaints
		if s.Repaints > 0 {
			frames++
		}
	}
	return
}

// Count returns the number of recorded commands of the given kind.
func (s *Surface) Count(k Kinds) int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands of the given kind.
func (s *Surface) Filter(k Kinds) []Command {
	var res []Command
	for _, c := range s.Commands {
		if c.Kind == k {
			res = append(res, c)
		}
	}
	return res
}

// Texts returns the strings of all recorded text commands.
func (s *Surface) Texts() []string {
	var res []string
	for _, c := range s.Filter(Text) {
		res = append(res, c.Text)
	}
	return res
}

////////  Painter

func (s *Surface) record(c Command) {
	c.Clip = s.ClipRect()
	s.Commands = append(s.Commands, c)
}

func (s *Surface) FillRect(r math32.Box2, radius float32, c color.RGBA) {
	s.record(Command{Kind: FillRect, Rect: r, Radius: radius, Color: c})
}

func (s *Surface) StrokeRect(r math32.Box2, radius float32, st surface.Stroke) {
	s.record(Command{Kind: StrokeRect, Rect: r, Radius: radius, Stroke: st, Color: st.Color})
}

func (s *Surface) FillCircle(center math32.Vector2, radius float32, c color.RGBA) {
	r := math32.B2(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	s.record(Command{Kind: FillCircle, Rect: r, Radius: radius, Color: c, Points: []math32.Vector2{center}})
}

func (s *Surface) Line(a, b math32.Vector2, st surface.Stroke) {
	s.record(Command{Kind: Line, Points: []math32.Vector2{a, b}, Stroke: st, Color: st.Color})
}

func (s *Surface) FillPolygon(pts []math32.Vector2, c color.RGBA) {
	s.record(Command{Kind: Polygon, Points: append([]math32.Vector2(nil), pts...), Color: c})
}

func (s *Surface) Mesh(m *mesh.Mesh) {
	s.record(Command{Kind: Mesh, Mesh: m, Rect: m.Bounds()})
}

func (s *Surface) Text(pos math32.Vector2, align surface.Align, text string, font surface.Font, c color.RGBA) math32.Box2 {
	sz := s.MeasureText(text, font)
	r := math32.B2FromPosSize(align.Place(pos, sz), sz)
	s.record(Command{Kind: Text, Rect: r, Text: text, Font: font, Align: align, Color: c})
	return r
}

// MeasureText measures text as if every rune were half the font size wide.
func (s *Surface) MeasureText(text string, font surface.Font) math32.Vector2 {
	size := font.Size
	if size <= 0 {
		size = surface.DefaultFontSize
	}
	return math32.Vec2(float32(len([]rune(text)))*size*0.5, size)
}

func (s *Surface) PushClip(r math32.Box2) {
	s.clips = append(s.clips, s.ClipRect().Intersect(r))
}

func (s *Surface) PopClip() {
	if len(s.clips) <= 1 {
		slog.Error("surfacetest: PopClip without PushClip")
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
}

func (s *Surface) ClipRect() math32.Box2 {
	return s.clips[len(s.clips)-1]
}

////////  Layouter

func (s *Surface) current() *region {
	return &s.regions[len(s.regions)-1]
}

func (s *Surface) AllocateExactSize(size math32.Vector2, sense surface.Sense) surface.Response {
	rg := s.current()
	r := math32.B2FromPosSize(math32.Vec2(rg.rect.Min.X, rg.rect.Min.Y+rg.cursor), size)
	rg.cursor += size.Y + s.Spacing
	s.autoID++
	return s.Interact(r, surface.Hash("surfacetest.auto", s.autoID), sense)
}

func (s *Surface) AllocatePainter(size math32.Vector2, sense surface.Sense) surface.Response {
	return s.AllocateExactSize(size, sense)
}

func (s *Surface) AvailableSize() math32.Vector2 {
	rg := s.current()
	return math32.Vec2(rg.rect.Width(), max(0, rg.rect.Height()-rg.cursor))
}

func (s *Surface) ChildUI(r math32.Box2, fn func(s surface.Surface)) {
	s.regions = append(s.regions, region{rect: r})
	defer func() { s.regions = s.regions[:len(s.regions)-1] }()
	fn(s)
}

func (s *Surface) Interact(r math32.Box2, id surface.ID, sense surface.Sense) surface.Response {
	over := s.PointerOver(r)
	resp := surface.Response{Rect: r, ID: id}
	if sense != 0 && over {
		resp.Hovered = true
		s.hovered[id] = true
	}
	if sense.Has(surface.Click) && over && s.Click {
		resp.Clicked = true
		s.clicked[id] = true
	}
	if (sense.Has(surface.Click) || sense.Has(surface.Drag)) && over && s.Down {
		resp.PointerDown = true
		s.down[id] = true
	}
	resp.Focused = id == s.Focus && s.Focus != 0
	return resp
}

////////  Input

func (s *Surface) PointerPos() (math32.Vector2, bool) {
	return s.Pointer, s.PointerIn
}

func (s *Surface) PointerOver(r math32.Box2) bool {
	return s.PointerIn && r.ContainsPoint(s.Pointer)
}

func (s *Surface) PointerDownOn(id surface.ID) bool {
	return s.down[id]
}

func (s *Surface) Clicked(id surface.ID) bool {
	return s.clicked[id]
}

func (s *Surface) Hovered(id surface.ID) bool {
	return s.hovered[id]
}

func (s *Surface) HasFocus(id surface.ID) bool {
	return s.Focus != 0 && id == s.Focus
}

func (s *Surface) KeyPressed(k surface.Key) bool {
	for _, pk := range s.Keys {
		if pk == k {
			return true
		}
	}
	return false
}

////////  Identity

func (s *Surface) scopeID() surface.ID {
	if len(s.ids) == 0 {
		return 0
	}
	return s.ids[len(s.ids)-1]
}

func (s *Surface) ID(parts ...any) surface.ID {
	return s.scopeID().With(parts...)
}

func (s *Surface) PushID(parts ...any) {
	s.ids = append(s.ids, s.ID(parts...))
}

func (s *Surface) PopID() {
	if len(s.ids) == 0 {
		panic("surfacetest: PopID without PushID")
	}
	s.ids = s.ids[:len(s.ids)-1]
}

// Depth returns the current id scope depth.
func (s *Surface) Depth() int {
	return len(s.ids)
}

////////  Clock

func (s *Surface) StableDt() float32 {
	return s.Dt
}

func (s *Surface) Now() float64 {
	return s.Time
}

func (s *Surface) FrameNr() uint64 {
	return uint64(s.Frames)
}

////////  Scheduler

func (s *Surface) RequestRepaint() {
	s.Repaints++
}

func (s *Surface) RequestRepaintAfter(seconds float32) {
	s.RepaintAfter = append(s.RepaintAfter, seconds)
}
