// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fx provides animated effects for immediate-mode surfaces:
// an audio meter, carousels, spotlight and reveal cards, aurora
// backgrounds, meteors, sparkles and animated text.
//
// Every effect is a configuration struct with a Show method that keeps
// its state in the surface cache, and a Step method on that state that
// advances it deterministically for a given delta time. Show requests
// a repaint only while the effect is still moving.
package fx

import (
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
)

// noise returns a deterministic pseudo-random value in [0, 1)
// derived from the given parts.
func noise(parts ...any) float32 {
	return float32(surface.Hash(parts...)>>40) / (1 << 24)
}

// between returns a deterministic pseudo-random value in [lo, hi).
func between(lo, hi float32, parts ...any) float32 {
	return lo + (hi-lo)*noise(parts...)
}

// dt returns the stable frame delta time of s, or 0 if it is invalid.
func dt(s surface.Clock) float32 {
	d := s.StableDt()
	if !math32.IsFinite(d) || d < 0 {
		return 0
	}
	return d
}
