// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/armas/math32"

const (
	// DefaultStiffness is the default [Spring] stiffness.
	DefaultStiffness = 200

	// DefaultDamping is the default [Spring] damping.
	DefaultDamping = 20

	// SettleEpsilon is the position and velocity tolerance used by
	// [Spring.Settled].
	SettleEpsilon = 1e-3

	// maxStep is the largest integration step; longer frames are
	// divided into equal sub-steps no longer than this.
	maxStep = 1.0 / 60
)

// Spring is a damped harmonic oscillator chasing Target, integrated with
// semi-implicit Euler:
//
//	a = Stiffness*(Target-Value) - Damping*Velocity
//	Velocity += a*dt
//	Value += Velocity*dt
//
// Critical damping occurs near Damping ≈ 2*sqrt(Stiffness) (see
// [CriticalDamping]); below that the spring overshoots and oscillates,
// above it the spring approaches the target more slowly.
type Spring struct {
	Value     float32
	Velocity  float32
	Target    float32
	Stiffness float32
	Damping   float32
}

// NewSpring returns a spring at rest at value with the default
// stiffness and damping.
func NewSpring(value float32) Spring {
	return Spring{Value: value, Target: value, Stiffness: DefaultStiffness, Damping: DefaultDamping}
}

// CriticalDamping returns the damping at which a spring with the given
// stiffness returns to its target fastest without overshooting.
func CriticalDamping(stiffness float32) float32 {
	return 2 * math32.Sqrt(max(stiffness, 0))
}

// SetTarget changes only the target; value and velocity
// continue smoothly from where they are.
func (sp *Spring) SetTarget(target float32) *Spring {
	sp.Target = target
	return sp
}

// SetStiffness sets the stiffness.
func (sp *Spring) SetStiffness(k float32) *Spring {
	sp.Stiffness = k
	return sp
}

// SetDamping sets the damping.
func (sp *Spring) SetDamping(d float32) *Spring {
	sp.Damping = d
	return sp
}

// Update advances the spring by dt seconds. Steps longer than 1/60 s are
// divided into ceil(dt*60) equal sub-steps. Non-positive and non-finite
// dt values are ignored. If the state ever becomes non-finite (which
// can only happen with unstable parameters) the spring snaps to its
// target at rest.
func (sp *Spring) Update(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return
	}
	n := 1
	if dt > maxStep {
		n = int(math32.Ceil(dt * 60))
	}
	h := dt / float32(n)
	for range n {
		a := sp.Stiffness*(sp.Target-sp.Value) - sp.Damping*sp.Velocity
		sp.Velocity += a * h
		sp.Value += sp.Velocity * h
	}
	if !math32.IsFinite(sp.Value) || !math32.IsFinite(sp.Velocity) {
		sp.Value = sp.Target
		sp.Velocity = 0
	}
}

// IsSettled returns whether the spring is within epsPos of its target
// and moving slower than epsVel.
func (sp *Spring) IsSettled(epsPos, epsVel float32) bool {
	return math32.Abs(sp.Target-sp.Value) < epsPos && math32.Abs(sp.Velocity) < epsVel
}

// Settled is [Spring.IsSettled] with the default tolerances.
func (sp *Spring) Settled() bool {
	return sp.IsSettled(SettleEpsilon, SettleEpsilon)
}

// Snap moves the spring to its target at rest.
func (sp *Spring) Snap() {
	sp.Value = sp.Target
	sp.Velocity = 0
}
