// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stroke converts paths into the outlines of their strokes.
package stroke

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/paint/ppath"
	"cogentcore.org/armas/paint/ppath/intersect"
)

// Stroke converts a path into the outline of a stroke of width w and
// returns it. It uses cr to cap the ends of open subpaths and jr to
// join their segments; closed subpaths are joined where they start.
// Curves are flattened with the given tolerance first, and subpaths
// without length have no outline.
//
// The outline is not settled: it may overlap itself at inner bends and
// where the path crosses itself, with every part winding the same way,
// so it must be filled with the [ppath.NonZero] rule.
func Stroke(p ppath.Path, w float32, cr Capper, jr Joiner, tolerance float32) ppath.Path {
	if cr == nil {
		cr = RoundCap
	}
	if jr == nil {
		jr = RoundJoin
	}
	q := ppath.Path{}
	halfWidth := math32.Abs(w) / 2
	if ppath.Equal(halfWidth, 0) {
		return q
	}
	for _, sp := range intersect.Flatten(p, tolerance).Split() {
		rhs, lhs := offset(sp, halfWidth, cr, jr)
		if rhs == nil {
			continue
		}
		q = q.Append(rhs)
		if lhs != nil {
			// the inner ring of a closed subpath runs the other way
			// to cut out its inside
			q = q.Append(lhs.Reverse())
		}
	}
	return q
}

// Capper caps the end of a stroke: it adds to p the cap around the
// pivot point at the end, from pivot+n0 to pivot-n0, where n0 is the
// normal at the end, of length halfWidth.
type Capper interface {
	Cap(p *ppath.Path, halfWidth float32, pivot, n0 math32.Vector2)
}

// RoundCap caps the start or end of a path by a half circle.
var RoundCap Capper = RoundCapper{}

// RoundCapper is a round capper.
type RoundCapper struct{}

func (RoundCapper) Cap(p *ppath.Path, halfWidth float32, pivot, n0 math32.Vector2) {
	end := pivot.Sub(n0)
	p.ArcTo(halfWidth, halfWidth, 0, false, true, end.X, end.Y)
}

func (RoundCapper) String() string {
	return "Round"
}

// ButtCap ends a path flat at its end point.
var ButtCap Capper = ButtCapper{}

// ButtCapper is a butt capper.
type ButtCapper struct{}

func (ButtCapper) Cap(p *ppath.Path, halfWidth float32, pivot, n0 math32.Vector2) {
	end := pivot.Sub(n0)
	p.LineTo(end.X, end.Y)
}

func (ButtCapper) String() string {
	return "Butt"
}

// Joiner joins two segments of a stroke at the pivot point: it adds
// to the right hand side path rhs and the left hand side path lhs the
// join from the normal n0 at the end of the first segment to the
// normal n1 at the start of the next one, both of length halfWidth.
type Joiner interface {
	Join(rhs, lhs *ppath.Path, halfWidth float32, pivot, n0, n1 math32.Vector2)
}

// RoundJoin connects two segments by a circular arc.
var RoundJoin Joiner = RoundJoiner{}

// RoundJoiner is a round joiner.
type RoundJoiner struct{}

func (RoundJoiner) Join(rhs, lhs *ppath.Path, halfWidth float32, pivot, n0, n1 math32.Vector2) {
	rEnd := pivot.Add(n1)
	lEnd := pivot.Sub(n1)
	if cw := 0 <= n0.Rot90CW().Dot(n1); cw { // bend to the right, or a 180 degree turn
		rhs.LineTo(rEnd.X, rEnd.Y)
		lhs.ArcTo(halfWidth, halfWidth, 0, false, false, lEnd.X, lEnd.Y)
	} else {
		rhs.ArcTo(halfWidth, halfWidth, 0, false, true, rEnd.X, rEnd.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)
	}
}

func (RoundJoiner) String() string {
	return "Round"
}

// BevelJoin connects two segments by a straight line.
var BevelJoin Joiner = BevelJoiner{}

// BevelJoiner is a bevel joiner.
type BevelJoiner struct{}

func (BevelJoiner) Join(rhs, lhs *ppath.Path, halfWidth float32, pivot, n0, n1 math32.Vector2) {
	rEnd := pivot.Add(n1)
	lEnd := pivot.Sub(n1)
	rhs.LineTo(rEnd.X, rEnd.Y)
	lhs.LineTo(lEnd.X, lEnd.Y)
}

func (BevelJoiner) String() string {
	return "Bevel"
}

// segment is a line of the path being stroked.
type segment struct {
	p0, p1 math32.Vector2

	// n is the normal pointing right when walking the segment,
	// of length halfWidth.
	n math32.Vector2
}

// offset returns the right and left hand side outlines of a flattened
// subpath. For an open subpath they are capped and connected into one
// closed outline returned as rhs, with a nil lhs. For a closed subpath
// both are closed rings running in the direction of the path.
func offset(p ppath.Path, halfWidth float32, cr Capper, jr Joiner) (rhs, lhs ppath.Path) {
	var segs []segment
	var start math32.Vector2
	sc := p.Scanner()
	for sc.Scan() {
		end := sc.End()
		if cmd := sc.Cmd(); (cmd == ppath.LineTo || cmd == ppath.Close) && !ppath.EqualPoint(start, end) {
			n := end.Sub(start).Rot90CW().Normal().MulScalar(halfWidth)
			segs = append(segs, segment{p0: start, p1: end, n: n})
		}
		start = end
	}
	if len(segs) == 0 {
		return nil, nil
	}
	closed := p.Closed()

	rStart := segs[0].p0.Add(segs[0].n)
	lStart := segs[0].p0.Sub(segs[0].n)
	rhs.MoveTo(rStart.X, rStart.Y)
	lhs.MoveTo(lStart.X, lStart.Y)
	for i, cur := range segs {
		rEnd := cur.p1.Add(cur.n)
		lEnd := cur.p1.Sub(cur.n)
		rhs.LineTo(rEnd.X, rEnd.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)
		if i+1 < len(segs) || closed {
			next := segs[(i+1)%len(segs)]
			if !ppath.EqualPoint(cur.n, next.n) {
				jr.Join(&rhs, &lhs, halfWidth, cur.p1, cur.n, next.n)
			}
		}
	}

	if closed {
		rhs.Close()
		lhs.Close()
		return rhs, lhs
	}
	first, last := segs[0], segs[len(segs)-1]
	cr.Cap(&rhs, halfWidth, last.p1, last.n)
	rhs = rhs.Join(lhs.Reverse())
	cr.Cap(&rhs, halfWidth, first.p0, first.n.Negate())
	rhs.Close()
	return rhs, nil
}
