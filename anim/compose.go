// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/armas/math32"

// Starter is an animation that begins in a pending state and
// must be explicitly started.
type Starter interface {
	Animator
	Start()
}

// Delayed wraps a pending animation, starting it after Delay seconds
// of updates. Time left over from the frame in which the delay expires
// is passed on to the wrapped animation.
type Delayed struct {

	// Anim is the wrapped animation.
	Anim Starter

	// Delay is the wait in seconds before Anim is started.
	Delay float32

	waited  float32
	started bool
}

// NewDelayed returns a new [Delayed] wrapper.
func NewDelayed(a Starter, delay float32) *Delayed {
	if !(delay > 0) {
		delay = 0
	}
	return &Delayed{Anim: a, Delay: delay}
}

// Started returns whether the delay has elapsed and the wrapped
// animation has been started.
func (d *Delayed) Started() bool {
	return d.started
}

// Reset restarts the delay timer. The wrapped animation is not reset.
func (d *Delayed) Reset() {
	d.waited = 0
	d.started = false
}

func (d *Delayed) Update(dt float32) {
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return
	}
	if d.started {
		d.Anim.Update(dt)
		return
	}
	d.waited += dt
	if d.waited < d.Delay {
		return
	}
	d.started = true
	d.Anim.Start()
	if rest := d.waited - d.Delay; rest > 0 {
		d.Anim.Update(rest)
	}
}

// Settled returns false while waiting, since the wrapped animation
// is still to come.
func (d *Delayed) Settled() bool {
	return d.started && d.Anim.Settled()
}

// Sequence runs animators one after another: each is updated until it
// settles, then the next one receives updates. Animators that are
// [Starter]s are started when their turn comes.
type Sequence struct {
	Steps   []Animator
	current int
	begun   bool
}

// NewSequence returns a new sequence of the given steps.
func NewSequence(steps ...Animator) *Sequence {
	return &Sequence{Steps: steps}
}

// Current returns the index of the step currently running,
// or len(Steps) when done.
func (sq *Sequence) Current() int {
	return sq.current
}

func (sq *Sequence) Update(dt float32) {
	for sq.current < len(sq.Steps) {
		step := sq.Steps[sq.current]
		if !sq.begun {
			if st, ok := step.(Starter); ok {
				st.Start()
			}
			sq.begun = true
		}
		step.Update(dt)
		if !step.Settled() {
			return
		}
		sq.current++
		sq.begun = false
		dt = 0
	}
}

func (sq *Sequence) Settled() bool {
	return sq.current >= len(sq.Steps)
}
