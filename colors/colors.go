// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the straight-alpha 8-bit RGBA color
// operations used by every animated widget: interpolation,
// brightness scaling, luminance, and parsing.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/math32"
	"golang.org/x/image/colornames"
)

// Standard colors.
var (
	Transparent = color.RGBA{}
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
)

// Interpolate returns the component-wise linear interpolation between
// a and b at t, rounding each of R, G, B, and A to the nearest integer.
// t is clamped to [0, 1], so Interpolate(a, b, 0) == a and
// Interpolate(a, b, 1) == b.
func Interpolate(a, b color.RGBA, t float32) color.RGBA {
	t = math32.Clamp01(t)
	return color.RGBA{
		lerpChannel(a.R, b.R, t),
		lerpChannel(a.G, b.G, t),
		lerpChannel(a.B, b.B, t),
		lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	fa := float32(a)
	return toChannel(fa + t*(float32(b)-fa))
}

// toChannel rounds and saturates v to [0, 255].
func toChannel(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	return uint8(math32.Clamp(math32.Round(v), 0, 255))
}

// GammaMultiply multiplies the R, G, and B channels of c by k,
// saturating to [0, 255], and leaves A unchanged. Despite the
// name, this is a straight linear scale and not a gamma correction;
// it is used for hover brightening (k > 1) and disabled fading (k < 1).
func GammaMultiply(c color.RGBA, k float32) color.RGBA {
	return color.RGBA{
		toChannel(float32(c.R) * k),
		toChannel(float32(c.G) * k),
		toChannel(float32(c.B) * k),
		c.A,
	}
}

// Luminance returns the perceived brightness of c,
// 0.299 R + 0.587 G + 0.114 B, in the range [0, 255].
func Luminance(c color.RGBA) float32 {
	return 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
}

// IsDark returns whether the luminance of c is below the midpoint,
// which is used to pick legible foreground colors.
func IsDark(c color.RGBA) bool {
	return Luminance(c) < 128
}

// AsRGBA returns the given color as a straight-alpha RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	if rc, ok := c.(color.RGBA); ok {
		return rc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, n.A}
}

// WithAF32 returns the color with the alpha set to the given 0-1 value.
func WithAF32(c color.RGBA, a float32) color.RGBA {
	c.A = toChannel(math32.Clamp01(a) * 255)
	return c
}

// Clearer returns the color with the alpha multiplied by 1 - amount,
// where amount is a 0-1 proportion.
func Clearer(c color.RGBA, amount float32) color.RGBA {
	c.A = toChannel(float32(c.A) * (1 - math32.Clamp01(amount)))
	return c
}

// ScaleAlpha returns the color with its alpha multiplied by the 0-1 factor f.
func ScaleAlpha(c color.RGBA, f float32) color.RGBA {
	c.A = toChannel(float32(c.A) * math32.Clamp01(f))
	return c
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string (#rgb, #rgba, #rrggbb or
// #rrggbbaa) and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 4:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil || n < 3 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, including alpha only when it is not fully opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// FromString returns a color value from the given string.
// It accepts hex values, standard color names, "none"/"transparent",
// and rgb(r, g, b) / rgba(r, g, b, a) with a 0-1 alpha.
func FromString(str string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	switch {
	case s == "":
		return color.RGBA{}, errors.New("colors.FromString: empty string")
	case s == "none" || s == "transparent":
		return Transparent, nil
	case s[0] == '#':
		return FromHex(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		args := s[strings.IndexByte(s, '(')+1:]
		args = strings.TrimSuffix(args, ")")
		args = strings.ReplaceAll(args, ",", " ")
		var r, g, b int
		a := float32(1)
		n, _ := fmt.Sscan(args, &r, &g, &b, &a)
		if n < 3 {
			return color.RGBA{}, errors.New("colors.FromString: invalid rgb value: " + str)
		}
		return color.RGBA{uint8(math32.Clamp(r, 0, 255)), uint8(math32.Clamp(g, 0, 255)), uint8(math32.Clamp(b, 0, 255)), toChannel(math32.Clamp01(a) * 255)}, nil
	}
	return FromName(s)
}
