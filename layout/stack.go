// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
)

// HStack lays items out side by side with flex widths.
type HStack struct {
	Items  []FlexItem
	Gap    float32
	Height float32
}

// Show allocates the stack and calls item for each item with a child
// surface restricted to its rect, in an id scope keyed by its index.
func (h *HStack) Show(s surface.Surface, item func(s surface.Surface, i int)) surface.Response {
	width := s.AvailableSize().X
	resp := s.AllocateExactSize(math32.Vec2(width, h.Height), 0)
	widths := Widths(width, h.Gap, h.Items)
	xs := Offsets(widths, h.Gap)
	for i := range h.Items {
		r := math32.B2FromPosSize(resp.Rect.Min.Add(math32.Vec2(xs[i], 0)), math32.Vec2(widths[i], h.Height))
		pop := surface.Scope(s, "hstack-item", i)
		s.ChildUI(r, func(cs surface.Surface) { item(cs, i) })
		pop()
	}
	return resp
}
