// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"cmp"
	"slices"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/paint/ppath"
)

// geometry accumulates triangles, sharing equal vertices.
type geometry struct {
	verts []math32.Vector2
	idx   []uint32
	index map[math32.Vector2]uint32
}

func (g *geometry) add(p math32.Vector2) uint32 {
	if i, ok := g.index[p]; ok {
		return i
	}
	if g.index == nil {
		g.index = make(map[math32.Vector2]uint32)
	}
	i := uint32(len(g.verts))
	g.verts = append(g.verts, p)
	g.index[p] = i
	return i
}

func (g *geometry) tri(a, b, c uint32) {
	g.idx = append(g.idx, a, b, c)
}

// trapezoid adds the area between the left and right x at y0 and y1,
// either of which may have shrunk to a point.
func (g *geometry) trapezoid(l0, r0, y0, l1, r1, y1 float32) {
	top, bot := r0 > l0, r1 > l1
	switch {
	case top && bot:
		a := g.add(math32.Vec2(l0, y0))
		b := g.add(math32.Vec2(r0, y0))
		c := g.add(math32.Vec2(r1, y1))
		d := g.add(math32.Vec2(l1, y1))
		g.tri(a, b, c)
		g.tri(a, c, d)
	case top:
		a := g.add(math32.Vec2(l0, y0))
		b := g.add(math32.Vec2(r0, y0))
		c := g.add(math32.Vec2(l1, y1))
		g.tri(a, b, c)
	case bot:
		a := g.add(math32.Vec2(l0, y0))
		c := g.add(math32.Vec2(r1, y1))
		d := g.add(math32.Vec2(l1, y1))
		g.tri(a, c, d)
	}
}

// shape is a set of closed rings filled together under one fill rule,
// such as the fill or the stroke outline of one element.
type shape struct {
	rings [][]math32.Vector2
	rule  ppath.FillRules
}

// rings returns the closed rings of the subpaths of a flattened path.
func rings(p ppath.Path) [][]math32.Vector2 {
	var rs [][]math32.Vector2
	for _, sp := range p.Split() {
		pts := sp.Coords()
		if n := len(pts); n > 1 && ppath.EqualPoint(pts[0], pts[n-1]) {
			pts = pts[:n-1]
		}
		if len(pts) > 2 {
			rs = append(rs, pts)
		}
	}
	return rs
}

// edge is a ring edge that is not horizontal, from its top to its
// bottom end.
type edge struct {
	top, bot math32.Vector2

	// dir is the winding of the edge: +1 if the ring runs down
	// along it, -1 if up.
	dir int

	// shape is the index of the shape of the ring.
	shape int
}

// xAt returns the x of the edge at y, exactly at its end points.
func (e *edge) xAt(y float32) float32 {
	switch y {
	case e.top.Y:
		return e.top.X
	case e.bot.Y:
		return e.bot.X
	}
	t := float64(y-e.top.Y) / float64(e.bot.Y-e.top.Y)
	return float32(float64(e.top.X) + t*float64(e.bot.X-e.top.X))
}

// crossing is where an active edge spans a slab.
type crossing struct {
	x0, x1 float32
	e      *edge
}

// tessellate triangulates the union of the shapes into g, each shape
// filled under its own rule. It cuts the plane into horizontal slabs
// at every vertex and every point where two edges cross, so that
// within a slab edges are ordered left to right, and emits one
// trapezoid for every run covered by any shape.
func tessellate(g *geometry, shapes []shape) error {
	var edges []edge
	var ys []float32
	for si, sh := range shapes {
		for _, r := range sh.rings {
			for i, a := range r {
				if !a.IsFinite() {
					return tessErr("non-finite coordinate %v", a)
				}
				ys = append(ys, a.Y)
				b := r[(i+1)%len(r)]
				if a.Y == b.Y {
					continue
				}
				e := edge{top: a, bot: b, dir: 1, shape: si}
				if b.Y < a.Y {
					e.top, e.bot, e.dir = b, a, -1
				}
				edges = append(edges, e)
			}
		}
	}
	if len(edges) == 0 {
		return nil
	}
	slices.SortStableFunc(edges, func(a, b edge) int {
		return cmp.Compare(a.top.Y, b.top.Y)
	})
	ys = append(ys, crossings(edges)...)
	slices.Sort(ys)
	ys = slices.Compact(ys)

	winding := make([]int, len(shapes))
	var active []*edge
	var xs []crossing
	next := 0
	for k := 0; k+1 < len(ys); k++ {
		y0, y1 := ys[k], ys[k+1]
		active = slices.DeleteFunc(active, func(e *edge) bool {
			return e.bot.Y <= y0
		})
		for next < len(edges) && edges[next].top.Y <= y0 {
			active = append(active, &edges[next])
			next++
		}

		xs = xs[:0]
		for _, e := range active {
			xs = append(xs, crossing{x0: e.xAt(y0), x1: e.xAt(y1), e: e})
		}
		slices.SortStableFunc(xs, func(a, b crossing) int {
			return cmp.Compare(a.x0+a.x1, b.x0+b.x1)
		})

		clear(winding)
		covered := 0
		var left crossing
		for _, c := range xs {
			rule := shapes[c.e.shape].rule
			was := rule.Fills(winding[c.e.shape])
			winding[c.e.shape] += c.e.dir
			now := rule.Fills(winding[c.e.shape])
			switch {
			case !was && now:
				if covered == 0 {
					left = c
				}
				covered++
			case was && !now:
				covered--
				if covered == 0 {
					g.trapezoid(left.x0, c.x0, y0, left.x1, c.x1, y1)
				}
			}
		}
	}
	return nil
}

// crossings returns the ys where two edges cross inside both of them.
// The edges must be sorted by their top.
func crossings(edges []edge) []float32 {
	var ys []float32
	for i := range edges {
		a := &edges[i]
		for j := i + 1; j < len(edges); j++ {
			b := &edges[j]
			if b.top.Y >= a.bot.Y {
				break
			}
			if b.bot.Y <= a.top.Y ||
				max(a.top.X, a.bot.X) < min(b.top.X, b.bot.X) ||
				max(b.top.X, b.bot.X) < min(a.top.X, a.bot.X) {
				continue
			}
			if a.top == b.top || a.top == b.bot || a.bot == b.top || a.bot == b.bot {
				continue
			}
			if y, ok := crossY(a, b); ok && y > max(a.top.Y, b.top.Y) && y < min(a.bot.Y, b.bot.Y) {
				ys = append(ys, y)
			}
		}
	}
	return ys
}

// crossY returns the y where the edges cross strictly inside both.
func crossY(a, b *edge) (float32, bool) {
	px, py := float64(a.top.X), float64(a.top.Y)
	rx, ry := float64(a.bot.X)-px, float64(a.bot.Y)-py
	qx, qy := float64(b.top.X), float64(b.top.Y)
	sx, sy := float64(b.bot.X)-qx, float64(b.bot.Y)-qy
	den := rx*sy - ry*sx
	if den == 0 {
		return 0, false
	}
	dx, dy := qx-px, qy-py
	t := (dx*sy - dy*sx) / den
	u := (dx*ry - dy*rx) / den
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, false
	}
	return float32(py + t*ry), true
}
