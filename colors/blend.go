// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/armas/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendTypes are the different colorspaces in which color blending can
// be done. [RGB] matches [Interpolate] exactly; the others produce
// perceptually smoother ramps for gradients.
type BlendTypes int32

const (
	// RGB uses straight component-wise interpolation.
	RGB BlendTypes = iota

	// Lab blends in the CIE L*a*b* space.
	Lab

	// HCL blends in the polar form of L*a*b*, which keeps
	// intermediate colors saturated.
	HCL

	// Luv blends in the CIE L*u*v* space.
	Luv
)

var blendNames = [...]string{"rgb", "lab", "hcl", "luv"}

func (bt BlendTypes) String() string {
	if bt < 0 || int(bt) >= len(blendNames) {
		return "rgb"
	}
	return blendNames[bt]
}

// Blend returns the blend between x and y at proportion t (0 = x, 1 = y)
// in the given colorspace. Alpha is always blended linearly.
func Blend(bt BlendTypes, t float32, x, y color.RGBA) color.RGBA {
	t = math32.Clamp01(t)
	if bt == RGB {
		return Interpolate(x, y, t)
	}
	cx, cy := toColorful(x), toColorful(y)
	var res colorful.Color
	switch bt {
	case Lab:
		res = cx.BlendLab(cy, float64(t))
	case HCL:
		res = cx.BlendHcl(cy, float64(t))
	case Luv:
		res = cx.BlendLuv(cy, float64(t))
	}
	r, g, b := res.Clamped().RGB255()
	return color.RGBA{r, g, b, lerpChannel(x.A, y.A, t)}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
