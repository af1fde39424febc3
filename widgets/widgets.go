// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides interactive widgets built on the animation
// and surface packages: modal dialogs, drawers and sheets, pagination,
// select lists and buttons.
package widgets

import (
	"image/color"

	"cogentcore.org/armas/colors"
)

// stateColor returns c adjusted for the interaction state of a widget:
// faded when disabled, darker while pressed and brighter when hovered.
func stateColor(c color.RGBA, hovered, pressed, disabled bool) color.RGBA {
	switch {
	case disabled:
		return colors.ScaleAlpha(c, 0.5)
	case pressed:
		return colors.GammaMultiply(c, 0.85)
	case hovered:
		return colors.GammaMultiply(c, 1.15)
	}
	return c
}
