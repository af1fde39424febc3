// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the semantic color palette and spacing scale
// that all widgets draw with, stored in the host's global value slot.
//
// Themes are plain values: constructing or deriving a theme returns a new
// value, and nothing ever mutates a palette in place.
package theme

import (
	"image/color"

	"cogentcore.org/armas/surface"
)

// Key is the host value key under which the current theme is stored.
const Key = "armas_theme"

// Theme is a named palette and spacing scale.
type Theme struct {
	Name    string
	Palette Palette
	Spacing Spacing
}

// Palette contains the semantic color roles.
type Palette struct {
	Primary          color.RGBA
	OnPrimary        color.RGBA
	Secondary        color.RGBA
	OnSecondary      color.RGBA
	Surface          color.RGBA
	SurfaceVariant   color.RGBA
	OnSurface        color.RGBA
	OnSurfaceVariant color.RGBA
	Background       color.RGBA
	Outline          color.RGBA
	OutlineVariant   color.RGBA
	Muted            color.RGBA
	MutedForeground  color.RGBA
	Card             color.RGBA
	CardForeground   color.RGBA
	Border           color.RGBA
	Foreground       color.RGBA
	Destructive      color.RGBA
	Success          color.RGBA
	Warning          color.RGBA
	Info             color.RGBA
	Error            color.RGBA

	// Chart are the accent colors for data series.
	Chart [6]color.RGBA
}

// ChartColor returns the chart accent color for series i, cycling.
func (p *Palette) ChartColor(i int) color.RGBA {
	n := len(p.Chart)
	return p.Chart[((i%n)+n)%n]
}

// Spacing is the spacing scale in logical pixels.
type Spacing struct {
	XS  float32
	SM  float32
	MD  float32
	LG  float32
	XL  float32
	XXL float32

	// CornerRadius is the default corner radius of rounded rects.
	CornerRadius float32
}

// DefaultSpacing returns the standard spacing scale.
func DefaultSpacing() Spacing {
	return Spacing{XS: 4, SM: 8, MD: 12, LG: 16, XL: 24, XXL: 32, CornerRadius: 8}
}

// Small is a synonym for SM.
func (s Spacing) Small() float32 { return s.SM }

// Medium is a synonym for MD.
func (s Spacing) Medium() float32 { return s.MD }

// Large is a synonym for LG.
func (s Spacing) Large() float32 { return s.LG }

// WithName returns a copy of the theme with the given name.
func (th Theme) WithName(name string) Theme {
	th.Name = name
	return th
}

// WithPalette returns a copy of the theme with the given palette.
func (th Theme) WithPalette(p Palette) Theme {
	th.Palette = p
	return th
}

// WithSpacing returns a copy of the theme with the given spacing.
func (th Theme) WithSpacing(s Spacing) Theme {
	th.Spacing = s
	return th
}

// IsDark returns whether the theme has a dark background.
func (th Theme) IsDark() bool {
	return th.Palette.Background.R < 128 && th.Palette.Background.G < 128 && th.Palette.Background.B < 128
}

// Get returns the theme stored on the host, or [Dark] if there is none.
func Get(v surface.Values) Theme {
	if x, ok := v.Value(Key); ok {
		switch th := x.(type) {
		case Theme:
			return th
		case *Theme:
			if th != nil {
				return *th
			}
		}
	}
	return Dark()
}

// Set stores the theme on the host. It is typically called once at
// startup or when the user switches themes.
func Set(v surface.Values, th Theme) {
	v.SetValue(Key, th)
}
