// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"github.com/charmbracelet/harmonica"

	"cogentcore.org/armas/math32"
)

// Harmonic is an analytically integrated damped spring, parameterized by
// angular frequency and damping ratio rather than stiffness and damping.
// With a damping ratio of at least 1 it never overshoots, which suits
// open/close transitions whose value must stay within [0, 1].
type Harmonic struct {
	Value    float32
	Velocity float32
	Target   float32

	// Frequency is the angular frequency in radians per second.
	Frequency float32

	// Ratio is the damping ratio: 1 is critically damped,
	// below 1 oscillates and above 1 is over-damped.
	Ratio float32

	spring harmonica.Spring
	params [3]float32
}

// NewHarmonic returns a critically damped [Harmonic] at rest at value.
func NewHarmonic(value, frequency float32) Harmonic {
	return Harmonic{Value: value, Target: value, Frequency: frequency, Ratio: 1}
}

// SetTarget changes the target.
func (h *Harmonic) SetTarget(target float32) *Harmonic {
	h.Target = target
	return h
}

func (h *Harmonic) Update(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return
	}
	if p := [3]float32{dt, h.Frequency, h.Ratio}; p != h.params {
		h.spring = harmonica.NewSpring(float64(dt), float64(h.Frequency), float64(h.Ratio))
		h.params = p
	}
	pos, vel := h.spring.Update(float64(h.Value), float64(h.Velocity), float64(h.Target))
	h.Value, h.Velocity = float32(pos), float32(vel)
	if h.Settled() {
		h.Value = h.Target
		h.Velocity = 0
	}
}

// Settled returns whether the value is within [SettleEpsilon] of the
// target and nearly at rest.
func (h *Harmonic) Settled() bool {
	return math32.Abs(h.Target-h.Value) < SettleEpsilon && math32.Abs(h.Velocity) < SettleEpsilon
}
