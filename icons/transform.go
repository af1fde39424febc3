// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"strings"

	"cogentcore.org/armas/math32"
)

// parseTransform parses an SVG transform list such as
// "translate(4 4) rotate(45)".
func parseTransform(s string) (math32.Matrix2, error) {
	m := math32.Identity2()
	s = strings.TrimSpace(s)
	for s != "" {
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open < 0 || end < open {
			return math32.Identity2(), parseErr("invalid transform %q", s)
		}
		name := strings.TrimSpace(s[:open])
		args, err := numbers(s[open+1 : end])
		if err != nil {
			return math32.Identity2(), err
		}
		arg := func(i int, def float32) float32 {
			if i < len(args) {
				return args[i]
			}
			return def
		}
		var t math32.Matrix2
		switch name {
		case "matrix":
			if len(args) != 6 {
				return math32.Identity2(), parseErr("matrix needs 6 values, got %d", len(args))
			}
			t = math32.Matrix2{XX: args[0], YX: args[1], XY: args[2], YY: args[3], X0: args[4], Y0: args[5]}
		case "translate":
			t = math32.Translate2D(arg(0, 0), arg(1, 0))
		case "scale":
			sx := arg(0, 1)
			t = math32.Scale2D(sx, arg(1, sx))
		case "rotate":
			cx, cy := arg(1, 0), arg(2, 0)
			t = math32.Translate2D(cx, cy).Rotate(math32.DegToRad(arg(0, 0))).Translate(-cx, -cy)
		case "skewX":
			t = math32.Skew2D(math32.DegToRad(arg(0, 0)), 0)
		case "skewY":
			t = math32.Skew2D(0, math32.DegToRad(arg(0, 0)))
		default:
			return math32.Identity2(), parseErr("unknown transform %q", name)
		}
		m = m.Mul(t)
		s = strings.TrimLeft(s[end+1:], " \t\r\n,")
	}
	return m, nil
}
