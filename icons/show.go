// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"image/color"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
)

// Show draws the icon fitted into r in color c. A nil or empty icon
// draws as a gray rounded rectangle of the same size instead.
func Show(p surface.Painter, d *Data, r math32.Box2, c color.RGBA) {
	if m := d.Mesh(r, c); m != nil {
		p.Mesh(m)
		return
	}
	p.FillRect(r, min(r.Width(), r.Height())/4, colors.Gray)
}

// Icon allocates a square of the given size and draws the icon in it.
func Icon(s surface.Surface, d *Data, size float32, c color.RGBA) surface.Response {
	resp := s.AllocateExactSize(math32.Vec2(size, size), surface.Hover)
	Show(s, d, resp.Rect, c)
	return resp
}
