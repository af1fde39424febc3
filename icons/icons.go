// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icons provides single-color vector icons as pre-tessellated
// triangle geometry, either baked at build time by cmd/iconbake or
// parsed from SVG at runtime with [Parse].
package icons

//go:generate go run cogentcore.org/armas/cmd/iconbake --pkg icons --out builtin.go svg/play.svg svg/pause.svg svg/stop.svg

import (
	"fmt"
	"image/color"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/mesh"
)

var (
	// ErrSVGParse is the kind of errors for malformed SVG.
	ErrSVGParse = errors.New("svg parse")

	// ErrTessellation is the kind of errors for paths that
	// could not be tessellated.
	ErrTessellation = errors.New("tessellation")
)

// Error is an icon error of a given kind,
// either [ErrSVGParse] or [ErrTessellation].
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("icons: %v: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func parseErr(format string, args ...any) error {
	return &Error{Kind: ErrSVGParse, Msg: fmt.Sprintf(format, args...)}
}

func tessErr(format string, args ...any) error {
	return &Error{Kind: ErrTessellation, Msg: fmt.Sprintf(format, args...)}
}

// Data is the geometry of an icon: a triangle list in viewbox
// coordinates, where the viewbox spans (0, 0) to ViewBox.
type Data struct {
	Name     string
	Vertices []math32.Vector2
	Indices  []uint32
	ViewBox  math32.Vector2
}

// IsEmpty returns whether there is nothing to draw,
// which is the case for a nil Data.
func (d *Data) IsEmpty() bool {
	return d == nil || len(d.Indices) == 0 || d.ViewBox.X <= 0 || d.ViewBox.Y <= 0
}

// Clone returns a deep copy, which owns its buffers even
// if d refers to static data.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	return &Data{
		Name:     d.Name,
		Vertices: append([]math32.Vector2(nil), d.Vertices...),
		Indices:  append([]uint32(nil), d.Indices...),
		ViewBox:  d.ViewBox,
	}
}

// Placement returns the uniform scale and the offset that fit the
// viewbox into r, centered.
func (d *Data) Placement(r math32.Box2) (scale float32, offset math32.Vector2) {
	scale = min(r.Width()/d.ViewBox.X, r.Height()/d.ViewBox.Y)
	size := d.ViewBox.MulScalar(scale)
	offset = r.Min.Add(r.Size().Sub(size).MulScalar(0.5))
	return
}

// Mesh returns the icon fitted into r as a mesh with every vertex in
// color c, whose alpha acts as the icon opacity. It returns nil for
// an empty icon.
func (d *Data) Mesh(r math32.Box2, c color.RGBA) *mesh.Mesh {
	if d.IsEmpty() {
		return nil
	}
	scale, off := d.Placement(r)
	m := &mesh.Mesh{
		Vertices: make([]mesh.Vertex, len(d.Vertices)),
		Indices:  append([]uint32(nil), d.Indices...),
	}
	for i, v := range d.Vertices {
		m.Vertices[i] = mesh.Vertex{Pos: v.MulScalar(scale).Add(off), Color: c}
	}
	return m
}
