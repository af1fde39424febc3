// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"image/color"

	"cogentcore.org/armas/ease"
	"cogentcore.org/armas/math32"
)

// States are the lifecycle states of a [Tween].
type States int32

const (
	// Pending tweens have not been started yet.
	Pending States = iota

	// Running tweens advance on every update.
	Running

	// Paused tweens keep their elapsed time until resumed.
	Paused

	// Complete tweens have reached their duration.
	Complete
)

var stateNames = [...]string{"Pending", "Running", "Paused", "Complete"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "States(?)"
	}
	return stateNames[s]
}

// Animator is the common interface of everything that advances with
// frame time. Settled reports that no further updates would change the
// value, which is what decides whether another frame must be requested.
type Animator interface {
	Update(dt float32)
	Settled() bool
}

// Tween is a time-driven interpolation from From to To over Duration
// seconds, shaped by an easing function. The zero elapsed time maps to
// From and the full duration maps to To; a tween is Complete exactly
// when its elapsed time equals its duration.
type Tween[T any] struct {

	// From is the value at the beginning of the tween.
	From T

	// To is the value at the end of the tween.
	To T

	// Duration is the length of the tween in seconds. Negative and NaN
	// durations are treated as zero, which completes on the first update.
	Duration float32

	// Ease is the easing function; nil is [ease.Linear].
	Ease ease.Func

	// Lerp interpolates between From and To.
	Lerp Lerp[T]

	elapsed float32
	state   States
}

// NewTween returns a new pending tween.
func NewTween[T any](start, end T, duration float32, ef ease.Func, lerp Lerp[T]) *Tween[T] {
	tw := &Tween[T]{From: start, To: end, Ease: ef, Lerp: lerp}
	tw.SetDuration(duration)
	return tw
}

// NewFloat returns a new pending scalar tween.
func NewFloat(start, end, duration float32, ef ease.Func) *Tween[float32] {
	return NewTween(start, end, duration, ef, LerpFloat32)
}

// NewVector2 returns a new pending position tween.
func NewVector2(start, end math32.Vector2, duration float32, ef ease.Func) *Tween[math32.Vector2] {
	return NewTween(start, end, duration, ef, LerpVector2)
}

// NewColor returns a new pending color tween.
func NewColor(start, end color.RGBA, duration float32, ef ease.Func) *Tween[color.RGBA] {
	return NewTween(start, end, duration, ef, LerpColor)
}

// SetDuration sets the duration, clamping invalid values to zero.
func (tw *Tween[T]) SetDuration(d float32) *Tween[T] {
	if !(d > 0) || math32.IsInf(d, 0) {
		d = 0
	}
	tw.Duration = d
	tw.elapsed = min(tw.elapsed, d)
	return tw
}

// Start starts the tween from the beginning.
func (tw *Tween[T]) Start() {
	tw.state = Running
	tw.elapsed = 0
}

// Pause pauses a running tween; other states are unaffected.
func (tw *Tween[T]) Pause() {
	if tw.state == Running {
		tw.state = Paused
	}
}

// Resume resumes a paused tween; other states are unaffected.
func (tw *Tween[T]) Resume() {
	if tw.state == Paused {
		tw.state = Running
	}
}

// Reset returns the tween to the pending state at the beginning.
func (tw *Tween[T]) Reset() {
	tw.state = Pending
	tw.elapsed = 0
}

// Update advances a running tween by dt seconds,
// completing it when the duration is reached.
func (tw *Tween[T]) Update(dt float32) {
	if tw.state != Running {
		return
	}
	if dt > 0 && !math32.IsInf(dt, 0) {
		tw.elapsed = min(tw.elapsed+dt, tw.Duration)
	} else if math32.IsInf(dt, 1) {
		tw.elapsed = tw.Duration
	}
	if tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		tw.state = Complete
	}
}

// Progress returns the elapsed proportion of the duration in [0, 1].
func (tw *Tween[T]) Progress() float32 {
	if tw.Duration == 0 {
		if tw.state == Complete {
			return 1
		}
		return 0
	}
	return tw.elapsed / tw.Duration
}

// Value returns the interpolated value at the current time.
func (tw *Tween[T]) Value() T {
	p := tw.Progress()
	switch p {
	case 0:
		return tw.From
	case 1:
		return tw.To
	}
	return tw.Lerp(tw.From, tw.To, tw.Ease.Apply(p))
}

// Elapsed returns the elapsed time in seconds.
func (tw *Tween[T]) Elapsed() float32 {
	return tw.elapsed
}

// State returns the lifecycle state.
func (tw *Tween[T]) State() States {
	return tw.state
}

// IsRunning returns whether the tween is running (not paused or complete).
func (tw *Tween[T]) IsRunning() bool {
	return tw.state == Running
}

// IsComplete returns whether the tween has reached its duration.
func (tw *Tween[T]) IsComplete() bool {
	return tw.state == Complete
}

// Settled returns whether the tween needs no more frames,
// which is any state other than Running.
func (tw *Tween[T]) Settled() bool {
	return tw.state != Running
}
