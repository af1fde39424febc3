// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"github.com/tdewolff/parse/v2/strconv"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/paint/ppath"
)

// Tolerance is the maximum distance in viewbox units between a curve
// and its flattened polyline.
var Tolerance float32 = 0.05

// scanner reads numbers and flags from SVG attribute values.
type scanner struct {
	s []byte
	i int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (sc *scanner) skip() {
	for sc.i < len(sc.s) && (isSpace(sc.s[sc.i]) || sc.s[sc.i] == ',') {
		sc.i++
	}
}

func (sc *scanner) done() bool {
	sc.skip()
	return sc.i >= len(sc.s)
}

// atNumber returns whether a number starts at the next non-separator.
func (sc *scanner) atNumber() bool {
	sc.skip()
	if sc.i >= len(sc.s) {
		return false
	}
	c := sc.s[sc.i]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

func (sc *scanner) number() (float32, error) {
	sc.skip()
	f, n := strconv.ParseFloat(sc.s[sc.i:])
	if n == 0 {
		return 0, parseErr("expected number at offset %d in %q", sc.i, sc.s)
	}
	sc.i += n
	return float32(f), nil
}

func (sc *scanner) point() (math32.Vector2, error) {
	x, err := sc.number()
	if err != nil {
		return math32.Vector2{}, err
	}
	y, err := sc.number()
	return math32.Vec2(x, y), err
}

// flag reads an arc flag, which may be written without separators.
func (sc *scanner) flag() (bool, error) {
	sc.skip()
	if sc.i < len(sc.s) {
		switch sc.s[sc.i] {
		case '0':
			sc.i++
			return false, nil
		case '1':
			sc.i++
			return true, nil
		}
	}
	return false, parseErr("expected arc flag at offset %d in %q", sc.i, sc.s)
}

// numbers reads all numbers in s.
func numbers(s string) ([]float32, error) {
	sc := &scanner{s: []byte(s)}
	var res []float32
	for !sc.done() {
		f, err := sc.number()
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

// parsePath reads SVG path data into p.
func parsePath(d string, p *ppath.Path) error {
	sc := &scanner{s: []byte(d)}
	var cmd, prev byte
	var ctrl math32.Vector2 // last control point, for smooth curves
	for !sc.done() {
		c := sc.s[sc.i]
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			cmd = c
			sc.i++
		case cmd == 0:
			return parseErr("path data must start with a command: %q", d)
		}
		rel := cmd >= 'a'
		pos := p.Pos()
		off := func(v math32.Vector2) math32.Vector2 {
			if rel {
				return v.Add(pos)
			}
			return v
		}
		var err error
		switch cmd | 0x20 {
		case 'm':
			var v math32.Vector2
			if v, err = sc.point(); err == nil {
				v = off(v)
				p.MoveTo(v.X, v.Y)
				cmd = 'L' | (cmd & 0x20)
			}
		case 'l':
			var v math32.Vector2
			if v, err = sc.point(); err == nil {
				v = off(v)
				p.LineTo(v.X, v.Y)
			}
		case 'h':
			var x float32
			if x, err = sc.number(); err == nil {
				if rel {
					x += pos.X
				}
				p.LineTo(x, pos.Y)
			}
		case 'v':
			var y float32
			if y, err = sc.number(); err == nil {
				if rel {
					y += pos.Y
				}
				p.LineTo(pos.X, y)
			}
		case 'q':
			var c1, v math32.Vector2
			if c1, err = sc.point(); err != nil {
				break
			}
			if v, err = sc.point(); err == nil {
				c1, v = off(c1), off(v)
				p.QuadTo(c1.X, c1.Y, v.X, v.Y)
				ctrl = c1
			}
		case 't':
			var v math32.Vector2
			if v, err = sc.point(); err == nil {
				c1 := pos
				if pc := prev | 0x20; pc == 'q' || pc == 't' {
					c1 = pos.MulScalar(2).Sub(ctrl)
				}
				v = off(v)
				p.QuadTo(c1.X, c1.Y, v.X, v.Y)
				ctrl = c1
			}
		case 'c':
			var c1, c2, v math32.Vector2
			if c1, err = sc.point(); err != nil {
				break
			}
			if c2, err = sc.point(); err != nil {
				break
			}
			if v, err = sc.point(); err == nil {
				c1, c2, v = off(c1), off(c2), off(v)
				p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
				ctrl = c2
			}
		case 's':
			var c2, v math32.Vector2
			if c2, err = sc.point(); err != nil {
				break
			}
			if v, err = sc.point(); err == nil {
				c1 := pos
				if pc := prev | 0x20; pc == 'c' || pc == 's' {
					c1 = pos.MulScalar(2).Sub(ctrl)
				}
				c2, v = off(c2), off(v)
				p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
				ctrl = c2
			}
		case 'a':
			var rx, ry, rot float32
			var large, sweep bool
			var v math32.Vector2
			if rx, err = sc.number(); err != nil {
				break
			}
			if ry, err = sc.number(); err != nil {
				break
			}
			if rot, err = sc.number(); err != nil {
				break
			}
			if large, err = sc.flag(); err != nil {
				break
			}
			if sweep, err = sc.flag(); err != nil {
				break
			}
			if v, err = sc.point(); err == nil {
				v = off(v)
				p.ArcToDeg(rx, ry, rot, large, sweep, v.X, v.Y)
			}
		case 'z':
			p.Close()
			prev = cmd
			cmd = 0
			if sc.atNumber() {
				return parseErr("unexpected number after close in %q", d)
			}
			continue
		default:
			return parseErr("unknown path command %q in %q", cmd, d)
		}
		if err != nil {
			return err
		}
		prev = cmd
	}
	return nil
}
