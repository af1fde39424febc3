// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath is a compact path representation for vector shapes:
// building paths from SVG-style commands, transforming them, and
// reading them back with a [Scanner]. Subpackages flatten curves
// (intersect) and convert paths into stroke outlines (stroke).
package ppath

import (
	"slices"

	"cogentcore.org/armas/math32"
)

// Path is a sequence of MoveTo, LineTo, QuadTo, CubeTo, ArcTo and Close
// commands, each followed by its float32 values and then the command
// again, so that the path can be walked in both directions.
// The last two values of every command are its end point.
// QuadTo has one control point before it and CubeTo two.
// ArcTo has (rx, ry, phi, flags): the radii, the rotation phi in
// radians and the large and sweep flags encoded in one value.
// The builder methods only append valid commands: lines have a
// nonzero length and curves that are straight become lines.
type Path []float32

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	CubeTo float32 = 3
	ArcTo  float32 = 4
	Close  float32 = 5
)

var cmdLens = [6]int{4, 4, 6, 8, 8, 4}

// CmdLen returns the overall length of the command,
// including the command itself at both ends.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// ToArcFlags returns the large and sweep flags of an ArcTo flags value.
func ToArcFlags(f float32) (large, sweep bool) {
	return f == 1 || f == 3, f == 2 || f == 3
}

func fromArcFlags(large, sweep bool) float32 {
	f := float32(0)
	if large {
		f += 1
	}
	if sweep {
		f += 2
	}
	return f
}

// Empty returns true if p has no drawing commands.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Sane returns true if the path has no NaN or infinite values.
func (p Path) Sane() bool {
	for _, v := range p {
		if !math32.IsFinite(v) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is closed.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	n := 0
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		n++
	}
	return n
}

// Append appends the non-empty paths qs to p and returns the result.
func (p Path) Append(qs ...Path) Path {
	if p.Empty() {
		p = Path{}
	}
	for _, q := range qs {
		if !q.Empty() {
			p = append(p, q...)
		}
	}
	return p
}

// Join continues p with the commands of q when q starts where p ends,
// and otherwise appends q as a new subpath.
func (p Path) Join(q Path) Path {
	switch {
	case q.Empty():
		return p
	case p.Empty():
		return q
	case p.Closed() || !EqualPoint(p.Pos(), math32.Vec2(q[1], q[2])):
		return append(p, q...)
	}
	sc := q.Scanner()
	sc.Scan()
	for sc.Scan() {
		p.add(sc)
	}
	return p
}

// add appends the current command of the scanner through the builder
// methods.
func (p *Path) add(sc *Scanner) {
	end := sc.End()
	switch sc.Cmd() {
	case MoveTo:
		p.MoveTo(end.X, end.Y)
	case LineTo:
		p.LineTo(end.X, end.Y)
	case QuadTo:
		cp := sc.CP1()
		p.QuadTo(cp.X, cp.Y, end.X, end.Y)
	case CubeTo:
		cp1, cp2 := sc.CP1(), sc.CP2()
		p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
	case ArcTo:
		rx, ry, phi, large, sweep := sc.Arc()
		p.ArcTo(rx, ry, phi, large, sweep, end.X, end.Y)
	case Close:
		p.Close()
	}
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// which is the position of its MoveTo.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Coords returns the end points of all commands, leaving out
// zero-length Closes.
func (p Path) Coords() []math32.Vector2 {
	var coords []math32.Vector2
	for i := 0; i < len(p); {
		cmd := p[i]
		i += CmdLen(cmd)
		end := math32.Vec2(p[i-3], p[i-2])
		if cmd != Close || len(coords) == 0 || !EqualPoint(coords[len(coords)-1], end) {
			coords = append(coords, end)
		}
	}
	return coords
}

// Split splits the path into its subpaths, each starting with a MoveTo.
// Subpaths without drawing commands are dropped.
func (p Path) Split() []Path {
	var ps []Path
	i := 0
	for j := 0; j <= len(p); {
		if j == len(p) || (i < j && p[j] == MoveTo) {
			if i+CmdLen(MoveTo) < j {
				ps = append(ps, p[i:j:j])
			}
			i = j
			if j == len(p) {
				break
			}
		}
		j += CmdLen(p[j])
	}
	return ps
}

// Reverse returns a new path with the subpaths of p in reverse order,
// each running in the reverse direction.
func (p Path) Reverse() Path {
	if len(p) == 0 {
		return p
	}
	q := make(Path, 0, len(p))
	subs := p.Split()
	for k := len(subs) - 1; k >= 0; k-- {
		sp := subs[k]
		closed := sp.Closed()
		start := math32.Vec2(sp[1], sp[2])
		end := sp.Pos()
		q = append(q, MoveTo, end.X, end.Y, MoveTo)
		for i := len(sp); CmdLen(MoveTo) < i; {
			cmd := sp[i-1]
			i -= CmdLen(cmd)
			prev := math32.Vec2(sp[i-3], sp[i-2])
			switch cmd {
			case LineTo, Close:
				if cmd == Close && EqualPoint(prev, end) {
					continue
				}
				if closed && i == CmdLen(MoveTo) {
					q = append(q, Close, start.X, start.Y, Close)
					closed = false
					continue
				}
				q = append(q, LineTo, prev.X, prev.Y, LineTo)
			case QuadTo:
				q = append(q, QuadTo, sp[i+1], sp[i+2], prev.X, prev.Y, QuadTo)
			case CubeTo:
				q = append(q, CubeTo, sp[i+3], sp[i+4], sp[i+1], sp[i+2], prev.X, prev.Y, CubeTo)
			case ArcTo:
				rx, ry, phi, large, sweep, _ := sp.ArcToPoints(i)
				q = append(q, ArcTo, rx, ry, phi, fromArcFlags(large, !sweep), prev.X, prev.Y, ArcTo)
			}
		}
		if closed {
			q = append(q, Close, start.X, start.Y, Close)
		}
	}
	return q
}

// ArcToPoints returns the values of the ArcTo command at index i.
func (p Path) ArcToPoints(i int) (rx, ry, phi float32, large, sweep bool, end math32.Vector2) {
	rx, ry, phi = p[i+1], p[i+2], p[i+3]
	large, sweep = ToArcFlags(p[i+4])
	end = math32.Vec2(p[i+5], p[i+6])
	return
}

// MoveTo starts a new subpath at (x, y). A MoveTo directly after
// another one replaces it.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// begin starts a subpath at the current position when the path
// is empty or its last subpath is closed.
func (p *Path) begin() {
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
}

// LineTo adds a line to (x, y). A line that continues the previous
// line in the same direction extends it instead.
func (p *Path) LineTo(x, y float32) {
	start := p.Pos()
	end := math32.Vec2(x, y)
	if len(*p) > 0 && EqualPoint(start, end) {
		return
	}
	if n := len(*p); n > CmdLen(LineTo) && (*p)[n-1] == LineTo {
		prev := math32.Vec2((*p)[n-CmdLen(LineTo)-3], (*p)[n-CmdLen(LineTo)-2])
		da, db := start.Sub(prev), end.Sub(start)
		if Equal(da.Cross(db)/(da.Length()*db.Length()), 0) && da.Dot(db) > 0 {
			(*p)[n-3] = x
			(*p)[n-2] = y
			return
		}
	}
	p.begin()
	*p = append(*p, LineTo, x, y, LineTo)
}

// QuadTo adds a quadratic Bézier curve with control point (cpx, cpy)
// to (x, y).
func (p *Path) QuadTo(cpx, cpy, x, y float32) {
	start := p.Pos()
	cp := math32.Vec2(cpx, cpy)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp) {
		return
	}
	if straight(start, end, cp) {
		p.LineTo(x, y)
		return
	}
	p.begin()
	*p = append(*p, QuadTo, cpx, cpy, x, y, QuadTo)
}

// CubeTo adds a cubic Bézier curve with control points (cpx1, cpy1)
// and (cpx2, cpy2) to (x, y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	start := p.Pos()
	cp1 := math32.Vec2(cpx1, cpy1)
	cp2 := math32.Vec2(cpx2, cpy2)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp1) && EqualPoint(start, cp2) {
		return
	}
	if straight(start, end, cp1) && straight(start, end, cp2) {
		p.LineTo(x, y)
		return
	}
	p.begin()
	*p = append(*p, CubeTo, cpx1, cpy1, cpx2, cpy2, x, y, CubeTo)
}

// straight reports whether the control point cp lies on the
// segment from start to end.
func straight(start, end, cp math32.Vector2) bool {
	if EqualPoint(start, end) {
		return false
	}
	if EqualPoint(start, cp) || EqualPoint(end, cp) {
		return true
	}
	return AngleEqual(AngleBetween(end.Sub(start), cp.Sub(start)), 0) &&
		AngleEqual(AngleBetween(end.Sub(start), end.Sub(cp)), 0)
}

// ArcTo adds an elliptical arc with radii rx and ry, rotated
// counter-clockwise by phi in radians, with the large and sweep flags
// of SVG, to (x, y). Zero radii give a line, and radii too small to
// reach the end point are scaled up.
func (p *Path) ArcTo(rx, ry, phi float32, large, sweep bool, x, y float32) {
	start := p.Pos()
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) {
		return
	}
	if Equal(rx, 0) || math32.IsInf(rx, 0) || Equal(ry, 0) || math32.IsInf(ry, 0) {
		p.LineTo(x, y)
		return
	}
	rx, ry = math32.Abs(rx), math32.Abs(ry)
	if Equal(rx, ry) {
		phi = 0
	} else if rx < ry {
		rx, ry = ry, rx
		phi += math32.Pi / 2
	}
	phi = AngleNorm(phi)
	if math32.Pi <= phi { // canonical within 0 <= phi < 180
		phi -= math32.Pi
	}
	if lambda := EllipseRadiiCorrection(start, rx, ry, phi, end); lambda > 1 {
		rx *= lambda
		ry *= lambda
	}
	p.begin()
	*p = append(*p, ArcTo, rx, ry, phi, fromArcFlags(large, sweep), x, y, ArcTo)
}

// ArcToDeg is [Path.ArcTo] with the rotation in degrees.
func (p *Path) ArcToDeg(rx, ry, rot float32, large, sweep bool, x, y float32) {
	p.ArcTo(rx, ry, math32.DegToRad(rot), large, sweep, x, y)
}

// Close closes the current subpath with a line back to its start.
// A final line that ends at the start becomes the Close.
func (p *Path) Close() {
	n := len(*p)
	if n == 0 || (*p)[n-1] == Close {
		return
	}
	if (*p)[n-1] == MoveTo {
		*p = (*p)[:n-CmdLen(MoveTo)]
		return
	}
	start := p.StartPos()
	if (*p)[n-1] == LineTo && EqualPoint(p.Pos(), start) {
		(*p)[n-CmdLen(LineTo)] = Close
		(*p)[n-1] = Close
		return
	}
	*p = append(*p, Close, start.X, start.Y, Close)
}
