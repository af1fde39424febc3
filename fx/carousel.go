// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"fmt"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
)

// Directions are the scroll directions of a [Carousel].
type Directions int32

const (
	Left Directions = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"Left", "Right", "Up", "Down"}

func (d Directions) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Directions(%d)", int(d))
	}
	return directionNames[d]
}

// Sign returns +1 for Right and Down, and -1 for Left and Up.
func (d Directions) Sign() float32 {
	if d == Right || d == Down {
		return 1
	}
	return -1
}

// Vertical returns whether d scrolls along the Y axis.
func (d Directions) Vertical() bool {
	return d == Up || d == Down
}

// Carousel scrolls a row or column of items endlessly, as for moving
// cards or a scrolling banner.
type Carousel struct {
	// Speed is the scroll speed in pixels per second.
	Speed float32

	Direction Directions

	// PauseOnHover stops scrolling while the pointer is over it.
	PauseOnHover bool

	// Gap is the gap between items, and between the last item
	// and the first item of the next pass.
	Gap float32

	// ItemSize is the size of each item.
	ItemSize math32.Vector2

	// Length is the size of the viewport along the scroll axis;
	// 0 uses the available size.
	Length float32
}

// NewCarousel returns a new carousel with default settings.
func NewCarousel() *Carousel {
	return &Carousel{Speed: 50, Direction: Left, PauseOnHover: true, Gap: 16, ItemSize: math32.Vec2(160, 96)}
}

// SetSpeed sets the speed in pixels per second, which is not negative.
func (c *Carousel) SetSpeed(speed float32) *Carousel {
	c.Speed = max(speed, 0)
	return c
}

// SetDirection sets the scroll direction.
func (c *Carousel) SetDirection(d Directions) *Carousel {
	c.Direction = d
	return c
}

// SetGap sets the gap between items.
func (c *Carousel) SetGap(gap float32) *Carousel {
	c.Gap = max(gap, 0)
	return c
}

// SetItemSize sets the size of each item.
func (c *Carousel) SetItemSize(size math32.Vector2) *Carousel {
	c.ItemSize = size
	return c
}

// Span returns the length of one pass of n items plus the trailing gap.
func (c *Carousel) Span(n int) float32 {
	l := c.ItemSize.X
	if c.Direction.Vertical() {
		l = c.ItemSize.Y
	}
	if n <= 0 {
		return 0
	}
	return float32(n)*l + float32(n-1)*c.Gap + c.Gap
}

// CarouselState is the cached state of a [Carousel].
type CarouselState struct {
	// Offset is the scroll offset in [0, span).
	Offset float32

	// Paused is whether scrolling is paused by hover.
	Paused bool
}

// Step advances the offset by dt seconds and wraps it into [0, span).
func (st *CarouselState) Step(dt, speed float32, dir Directions, span float32, paused bool) {
	st.Paused = paused
	if !paused {
		if d := dir.Sign() * speed * dt; math32.IsFinite(d) {
			st.Offset += d
		}
	}
	st.Offset = math32.Wrap(st.Offset, span)
}

// Show shows n items, calling item for each with a child surface
// restricted to the item rect. Each item is shown twice end to end
// so the loop is seamless.
func (c *Carousel) Show(s surface.Surface, key any, n int, item func(s surface.Surface, i int)) surface.Response {
	vertical := c.Direction.Vertical()
	size := c.ItemSize
	avail := s.AvailableSize()
	if vertical {
		size.Y = c.Length
		if size.Y <= 0 {
			size.Y = avail.Y
		}
	} else {
		size.X = c.Length
		if size.X <= 0 {
			size.X = avail.X
		}
	}
	resp := s.AllocateExactSize(size, surface.Hover)
	id := s.ID("carousel", key)
	span := c.Span(n)
	paused := c.PauseOnHover && s.PointerOver(resp.Rect)
	st := surface.Update(s, id, func(st *CarouselState) {
		st.Step(dt(s), c.Speed, c.Direction, span, paused)
	})

	pop := surface.Clip(s, resp.Rect)
	defer pop()
	step := c.ItemSize.X + c.Gap
	if vertical {
		step = c.ItemSize.Y + c.Gap
	}
	for pass := range 2 {
		start := st.Offset - span + float32(pass)*span
		for i := range n {
			at := start + float32(i)*step
			pos := math32.Vec2(resp.Rect.Min.X+at, resp.Rect.Min.Y)
			if vertical {
				pos = math32.Vec2(resp.Rect.Min.X, resp.Rect.Min.Y+at)
			}
			popID := surface.Scope(s, "carousel-item", pass, i)
			s.ChildUI(math32.B2FromPosSize(pos, c.ItemSize), func(cs surface.Surface) { item(cs, i) })
			popID()
		}
	}
	surface.ContinueIf(s, !paused && c.Speed > 0 && span > 0)
	return resp
}
