// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/math32"
)

// FromString parses the given CSS linear-gradient or radial-gradient string,
// for example "linear-gradient(to right, red, #00f 40%, transparent)".
// Stops without positions are distributed following the CSS rules.
func FromString(str string) (*Gradient, error) {
	str = strings.TrimSpace(str)
	g := &Gradient{Start: math32.Vec2(0, 0), End: math32.Vec2(0, 1)}
	var body string
	switch {
	case strings.HasPrefix(str, "linear-gradient("):
		body = str[len("linear-gradient("):]
	case strings.HasPrefix(str, "radial-gradient("):
		g.Kind = Radial
		body = str[len("radial-gradient("):]
	default:
		c, err := colors.FromString(str)
		if err != nil {
			return nil, fmt.Errorf("gradient.FromString: %w", err)
		}
		g.Stops = []Stop{{0, c}, {1, c}}
		return g, nil
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), ")")
	for _, par := range splitParams(body) {
		switch {
		case par == "":
			continue
		case g.Kind == Linear && strings.HasPrefix(par, "to "):
			g.Start, g.End = sidesAxis(strings.Fields(par[3:]))
		case g.Kind == Linear && strings.HasSuffix(par, "deg"):
			deg, err := strconv.ParseFloat(strings.TrimSuffix(par, "deg"), 32)
			if err != nil {
				return nil, fmt.Errorf("gradient.FromString: invalid angle %q: %w", par, err)
			}
			g.Start, g.End = angleAxis(float32(deg))
		case g.Kind == Radial && (strings.HasPrefix(par, "circle") || strings.HasPrefix(par, "ellipse") || strings.HasPrefix(par, "at ")):
			continue
		default:
			st, hasPos, err := parseColorStop(par)
			if err != nil {
				return nil, fmt.Errorf("gradient.FromString: %w", err)
			}
			if !hasPos {
				st.Pos = -1
			}
			g.Stops = append(g.Stops, st)
		}
	}
	if len(g.Stops) == 0 {
		return nil, ErrDegenerate
	}
	fixStops(g.Stops)
	return g, nil
}

// splitParams splits on commas that are not nested inside parentheses.
func splitParams(s string) []string {
	var res []string
	depth, last := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	return append(res, strings.TrimSpace(s[last:]))
}

func sidesAxis(sides []string) (start, end math32.Vector2) {
	for _, side := range sides {
		switch side {
		case "bottom":
			start.Y, end.Y = 0, 1
		case "top":
			start.Y, end.Y = 1, 0
		case "right":
			start.X, end.X = 0, 1
		case "left":
			start.X, end.X = 1, 0
		}
	}
	return
}

// angleAxis returns the unit-box axis for a CSS angle, where 0deg
// points up and angles increase clockwise.
func angleAxis(deg float32) (start, end math32.Vector2) {
	dir := math32.Vector2Polar(math32.DegToRad(deg-90), 0.5)
	c := math32.Vec2(0.5, 0.5)
	return c.Sub(dir), c.Add(dir)
}

// parseColorStop parses "color [pos]".
func parseColorStop(par string) (Stop, bool, error) {
	cnm := par
	var st Stop
	hasPos := false
	if i := strings.LastIndexByte(par, ' '); i > 0 && !strings.HasSuffix(par, ")") {
		cnm = strings.TrimSpace(par[:i])
		off, err := readFraction(par[i+1:])
		if err != nil {
			return st, false, fmt.Errorf("invalid offset %q: %w", par[i+1:], err)
		}
		st.Pos = math32.Clamp01(off)
		hasPos = true
	}
	c, err := colors.FromString(cnm)
	if err != nil {
		return st, false, fmt.Errorf("invalid color %q: %w", cnm, err)
	}
	st.Color = c
	return st, hasPos, nil
}

// readFraction reads a decimal or percentage value from the given string.
func readFraction(v string) (float32, error) {
	v = strings.TrimSpace(v)
	d := float32(1)
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, err
	}
	return float32(f) / d, nil
}

// fixStops fills in missing (negative) positions following
// https://www.w3.org/TR/css3-images/#color-stop-syntax: the first stop
// defaults to 0, the last to 1, runs without positions are spaced evenly,
// and positions are made non-decreasing.
func fixStops(stops []Stop) {
	n := len(stops)
	if stops[0].Pos < 0 {
		stops[0].Pos = 0
	}
	if n > 1 && stops[n-1].Pos < 0 {
		stops[n-1].Pos = 1
	}
	for i := 1; i < n; i++ {
		if stops[i].Pos >= 0 {
			stops[i].Pos = math32.Max(stops[i].Pos, stops[i-1].Pos)
			continue
		}
		j := i
		for stops[j].Pos < 0 {
			j++
		}
		start, end := stops[i-1].Pos, math32.Max(stops[j].Pos, stops[i-1].Pos)
		step := (end - start) / float32(j-i+1)
		for k := i; k < j; k++ {
			stops[k].Pos = start + step*float32(k-i+1)
		}
	}
}
