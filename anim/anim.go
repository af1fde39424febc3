// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the animation primitives used by animated widgets:
// typed interpolation, eased tweens, springs, and their composition.
//
// Everything here is advanced by an explicit frame delta time and never
// reads a clock, so that widgets can drive animations from the host's
// stable per-frame delta.
package anim
