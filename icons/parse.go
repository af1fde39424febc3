// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icons

import (
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/net/html/charset"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/paint/ppath"
	"cogentcore.org/armas/paint/ppath/intersect"
	"cogentcore.org/armas/paint/ppath/stroke"
)

// skipped elements have no geometry of their own, or describe
// geometry that is only drawn by reference.
var skipped = map[string]bool{
	"clipPath":       true,
	"mask":           true,
	"symbol":         true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"text":           true,
	"script":         true,
	"image":          true,
	"use":            true,
	"foreignObject":  true,
}

// style is the inherited presentation state of an element.
type style struct {
	fill    bool
	stroke  bool
	width   float32
	evenOdd bool
	hidden  bool
	xf      math32.Matrix2
}

// rule is one selector of a CSS rule from a <style> element.
type rule struct {
	selector string
	decls    []*css.Declaration
}

type svgParser struct {
	dec    *xml.Decoder
	rules  []rule
	shapes []shape
}

// Parse parses an SVG document into icon geometry in viewbox space.
// Fill and stroke colors are ignored: an icon has a single color
// given at draw time. On error no partial geometry is returned, and
// the error is an [*Error] of kind [ErrSVGParse] or [ErrTessellation].
func Parse(name string, svg []byte) (*Data, error) {
	dec := xml.NewDecoder(bytes.NewReader(svg))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	p := &svgParser{dec: dec}
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil, parseErr("%s: no svg element", name)
		}
		if err != nil {
			return nil, parseErr("%s: %v", name, err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "svg" {
			return nil, parseErr("%s: root element is <%s>, not <svg>", name, se.Name.Local)
		}
		vb, err := viewBox(se)
		if err != nil {
			return nil, parseErr("%s: %v", name, err)
		}
		root := style{fill: true, width: 1, xf: math32.Translate2D(-vb.Min.X, -vb.Min.Y)}
		st, err := p.styleOf(se, root)
		if err != nil {
			return nil, err
		}
		if err := p.children(st, false); err != nil {
			return nil, err
		}
		var g geometry
		if err := tessellate(&g, p.shapes); err != nil {
			return nil, err
		}
		return &Data{
			Name:     name,
			Vertices: g.verts,
			Indices:  g.idx,
			ViewBox:  vb.Size(),
		}, nil
	}
}

// FromSVG is like [Parse] but returns nil on error, which draws as
// the fallback placeholder.
func FromSVG(name string, svg []byte) *Data {
	d, err := Parse(name, svg)
	if err != nil {
		errors.Debug(err, "icon", name)
		return nil
	}
	return d
}

// viewBox returns the view box of the root element, taken from the
// viewBox attribute or else from width and height.
func viewBox(se xml.StartElement) (math32.Box2, error) {
	if v := attr(se, "viewBox"); v != "" {
		n, err := numbers(v)
		if err != nil {
			return math32.Box2{}, err
		}
		if len(n) != 4 || !(n[2] > 0) || !(n[3] > 0) {
			return math32.Box2{}, parseErr("invalid viewBox %q", v)
		}
		return math32.B2(n[0], n[1], n[0]+n[2], n[1]+n[3]), nil
	}
	w, errw := length(attr(se, "width"), 0)
	h, errh := length(attr(se, "height"), 0)
	if errw != nil || errh != nil || !(w > 0) || !(h > 0) {
		return math32.Box2{}, parseErr("missing viewBox and size")
	}
	return math32.B2(0, 0, w, h), nil
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// length parses a plain or px length; empty gives def.
func length(s string, def float32) (float32, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return def, nil
	}
	f, n := strconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0, parseErr("invalid length %q", s)
	}
	return float32(f), nil
}

// children walks the content of the current element until its end.
// Inside defs only <style> is read.
func (p *svgParser) children(st style, defs bool) error {
	for {
		t, err := p.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return parseErr("%v", err)
		}
		switch t := t.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			if err := p.element(t, st, defs); err != nil {
				return err
			}
		}
	}
}

func (p *svgParser) element(se xml.StartElement, parent style, defs bool) error {
	nm := se.Name.Local
	switch {
	case nm == "style":
		return p.readStyle()
	case nm == "defs":
		return p.children(parent, true)
	case defs || skipped[nm]:
		return p.dec.Skip()
	}
	st, err := p.styleOf(se, parent)
	if err != nil {
		return err
	}
	var path ppath.Path
	switch nm {
	case "path":
		err = parsePath(attr(se, "d"), &path)
	case "rect":
		err = p.rect(se, &path)
	case "circle":
		err = p.ellipse(se, &path, true)
	case "ellipse":
		err = p.ellipse(se, &path, false)
	case "line":
		err = p.points(&path, false, attr(se, "x1"), attr(se, "y1"), attr(se, "x2"), attr(se, "y2"))
	case "polyline", "polygon":
		var n []float32
		if n, err = numbers(attr(se, "points")); err == nil {
			polyline(&path, n, nm == "polygon")
		}
	default:
		// g, nested svg, a, switch and unknown containers
		return p.children(st, false)
	}
	if err != nil {
		return err
	}
	if err := p.dec.Skip(); err != nil {
		return parseErr("%v", err)
	}
	if st.hidden {
		return nil
	}
	return p.emit(path, st)
}

// emit transforms the path into viewbox space and adds its fill and
// stroke outline to the shapes of the icon, flattened.
func (p *svgParser) emit(path ppath.Path, st style) error {
	path = path.Transform(st.xf)
	if !path.Sane() {
		return tessErr("non-finite coordinate")
	}
	if st.fill {
		rule := ppath.NonZero
		if st.evenOdd {
			rule = ppath.EvenOdd
		}
		p.shapes = append(p.shapes, shape{rings: rings(intersect.Flatten(path, Tolerance)), rule: rule})
	}
	if !st.stroke || st.width <= 0 {
		return nil
	}
	w := st.width * st.xf.ScaleFactor()
	if !math32.IsFinite(w) {
		return tessErr("non-finite stroke width %v", w)
	}
	outline := stroke.Stroke(path, w, stroke.RoundCap, stroke.RoundJoin, Tolerance)
	p.shapes = append(p.shapes, shape{rings: rings(intersect.Flatten(outline, Tolerance)), rule: ppath.NonZero})
	return nil
}

// polyline adds the points given as x, y pairs as one subpath.
func polyline(p *ppath.Path, n []float32, closed bool) {
	for i := 0; i+1 < len(n); i += 2 {
		if i == 0 {
			p.MoveTo(n[i], n[i+1])
		} else {
			p.LineTo(n[i], n[i+1])
		}
	}
	if closed {
		p.Close()
	}
}

func (p *svgParser) points(path *ppath.Path, closed bool, vals ...string) error {
	n := make([]float32, len(vals))
	for i, v := range vals {
		f, err := length(v, 0)
		if err != nil {
			return err
		}
		n[i] = f
	}
	polyline(path, n, closed)
	return nil
}

func (p *svgParser) rect(se xml.StartElement, path *ppath.Path) error {
	var v [6]float32
	for i, nm := range []string{"x", "y", "width", "height", "rx", "ry"} {
		def := float32(-1)
		if i < 2 {
			def = 0
		}
		f, err := length(attr(se, nm), def)
		if err != nil {
			return err
		}
		v[i] = f
	}
	x, y, w, h, rx, ry := v[0], v[1], v[2], v[3], v[4], v[5]
	if !(w > 0) || !(h > 0) {
		return nil
	}
	switch {
	case rx < 0 && ry < 0:
		rx, ry = 0, 0
	case rx < 0:
		rx = ry
	case ry < 0:
		ry = rx
	}
	rx, ry = min(rx, w/2), min(ry, h/2)
	if rx == 0 || ry == 0 {
		path.MoveTo(x, y)
		path.LineTo(x+w, y)
		path.LineTo(x+w, y+h)
		path.LineTo(x, y+h)
		path.Close()
		return nil
	}
	path.MoveTo(x+rx, y)
	path.LineTo(x+w-rx, y)
	path.ArcTo(rx, ry, 0, false, true, x+w, y+ry)
	path.LineTo(x+w, y+h-ry)
	path.ArcTo(rx, ry, 0, false, true, x+w-rx, y+h)
	path.LineTo(x+rx, y+h)
	path.ArcTo(rx, ry, 0, false, true, x, y+h-ry)
	path.LineTo(x, y+ry)
	path.ArcTo(rx, ry, 0, false, true, x+rx, y)
	path.Close()
	return nil
}

func (p *svgParser) ellipse(se xml.StartElement, path *ppath.Path, circle bool) error {
	names := []string{"cx", "cy", "rx", "ry"}
	if circle {
		names = []string{"cx", "cy", "r", "r"}
	}
	var v [4]float32
	for i, nm := range names {
		f, err := length(attr(se, nm), 0)
		if err != nil {
			return err
		}
		v[i] = f
	}
	cx, cy, rx, ry := v[0], v[1], v[2], v[3]
	if !(rx > 0) || !(ry > 0) {
		return nil
	}
	path.MoveTo(cx+rx, cy)
	path.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	path.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	path.Close()
	return nil
}

// readStyle reads the text of a <style> element as CSS rules.
func (p *svgParser) readStyle() error {
	var text strings.Builder
	for {
		t, err := p.dec.Token()
		if err != nil {
			return parseErr("style: %v", err)
		}
		switch t := t.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			sheet, err := parser.Parse(text.String())
			if err != nil {
				return parseErr("style: %v", err)
			}
			for _, r := range sheet.Rules {
				if r.Kind == css.AtRule {
					continue
				}
				for _, sel := range r.Selectors {
					p.rules = append(p.rules, rule{selector: strings.TrimSpace(sel), decls: r.Declarations})
				}
			}
			return nil
		}
	}
}

// styleOf computes the style of an element from its parent: presentation
// attributes first, then matching <style> rules in document order, then
// the style attribute.
func (p *svgParser) styleOf(se xml.StartElement, parent style) (style, error) {
	st := parent
	for _, a := range se.Attr {
		if a.Name.Local == "transform" {
			xf, err := parseTransform(a.Value)
			if err != nil {
				return st, err
			}
			st.xf = st.xf.Mul(xf)
			continue
		}
		st.set(a.Name.Local, a.Value)
	}
	id, classes := attr(se, "id"), strings.Fields(attr(se, "class"))
	for _, r := range p.rules {
		if matches(r.selector, se.Name.Local, id, classes) {
			for _, d := range r.decls {
				st.set(d.Property, d.Value)
			}
		}
	}
	if s := attr(se, "style"); s != "" {
		decls, err := parser.ParseDeclarations(s)
		if err != nil {
			return st, parseErr("invalid style %q: %v", s, err)
		}
		for _, d := range decls {
			st.set(d.Property, d.Value)
		}
	}
	return st, nil
}

func (st *style) set(prop, value string) {
	value = strings.TrimSpace(value)
	paint := func() bool {
		return value != "none" && value != "transparent"
	}
	zero := func() bool {
		f, err := length(value, 1)
		return err == nil && f == 0
	}
	switch prop {
	case "fill":
		st.fill = paint()
	case "stroke":
		st.stroke = paint()
	case "stroke-width":
		if f, err := length(value, 1); err == nil && f >= 0 {
			st.width = f
		}
	case "fill-rule":
		st.evenOdd = value == "evenodd"
	case "fill-opacity":
		if zero() {
			st.fill = false
		}
	case "stroke-opacity":
		if zero() {
			st.stroke = false
		}
	case "opacity":
		if zero() {
			st.hidden = true
		}
	case "display":
		if value == "none" {
			st.hidden = true
		}
	case "visibility":
		st.hidden = value == "hidden" || value == "collapse"
	}
}

// matches reports whether a selector matches an element. Only the last
// compound of a selector is considered, made of an optional type or *,
// an optional #id and any number of .class parts.
func matches(sel, name, id string, classes []string) bool {
	if f := strings.Fields(sel); len(f) > 0 {
		sel = f[len(f)-1]
	}
	if sel == "" {
		return false
	}
	end := strings.IndexAny(sel, ".#")
	if end < 0 {
		end = len(sel)
	}
	if tag := sel[:end]; tag != "" && tag != "*" && tag != name {
		return false
	}
	sel = sel[end:]
	for sel != "" {
		kind := sel[0]
		sel = sel[1:]
		end := strings.IndexAny(sel, ".#")
		if end < 0 {
			end = len(sel)
		}
		part := sel[:end]
		sel = sel[end:]
		switch kind {
		case '#':
			if part != id {
				return false
			}
		case '.':
			if !slices.Contains(classes, part) {
				return false
			}
		}
	}
	return true
}
