// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ease provides easing functions that map normalized
// animation time t in [0, 1] to eased progress. Every function clamps
// its input to [0, 1] and satisfies f(0) ≈ 0 and f(1) ≈ 1; the elastic
// and bounce families may leave [0, 1] in between.
package ease

import (
	"strings"

	"cogentcore.org/armas/math32"
)

// Func is an easing function.
type Func func(t float32) float32

// Apply evaluates the easing function, treating a nil Func as [Linear].
func (f Func) Apply(t float32) float32 {
	if f == nil {
		return Linear(t)
	}
	return f(t)
}

func clamp(t float32) float32 {
	return math32.Clamp01(t)
}

// Linear is the identity easing.
func Linear(t float32) float32 {
	return clamp(t)
}

// QuadIn accelerates from zero velocity.
func QuadIn(t float32) float32 {
	t = clamp(t)
	return t * t
}

// QuadOut decelerates to zero velocity.
func QuadOut(t float32) float32 {
	t = clamp(t)
	return t * (2 - t)
}

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(t float32) float32 {
	t = clamp(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicIn accelerates from zero velocity.
func CubicIn(t float32) float32 {
	t = clamp(t)
	return t * t * t
}

// CubicOut decelerates to zero velocity.
func CubicOut(t float32) float32 {
	t = clamp(t) - 1
	return t*t*t + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(t float32) float32 {
	t = clamp(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// ExpoIn is an exponential acceleration. It is exactly 0 at t = 0.
func ExpoIn(t float32) float32 {
	t = clamp(t)
	if t == 0 {
		return 0
	}
	return math32.Exp2(10 * (t - 1))
}

// ExpoOut is an exponential deceleration. It is exactly 1 at t = 1.
func ExpoOut(t float32) float32 {
	t = clamp(t)
	if t == 1 {
		return 1
	}
	return 1 - math32.Exp2(-10*t)
}

// ExpoInOut is an exponential acceleration then deceleration.
func ExpoInOut(t float32) float32 {
	t = clamp(t)
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math32.Exp2(20*t-10) / 2
	}
	return (2 - math32.Exp2(-20*t+10)) / 2
}

const elasticPeriod = 2 * math32.Pi / 3

// ElasticIn winds up with a decaying oscillation before reaching 1.
func ElasticIn(t float32) float32 {
	t = clamp(t)
	if t == 0 || t == 1 {
		return t
	}
	return -math32.Exp2(10*t-10) * math32.Sin((10*t-10.75)*elasticPeriod)
}

// ElasticOut overshoots 1 and settles with a decaying oscillation.
func ElasticOut(t float32) float32 {
	t = clamp(t)
	if t == 0 || t == 1 {
		return t
	}
	return math32.Exp2(-10*t)*math32.Sin((10*t-0.75)*elasticPeriod) + 1
}

// BounceOut bounces against 1 like a dropped ball.
func BounceOut(t float32) float32 {
	t = clamp(t)
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}

// SineInOut follows half a cosine wave.
func SineInOut(t float32) float32 {
	t = clamp(t)
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}

// BackOut overshoots slightly past 1 before settling.
func BackOut(t float32) float32 {
	t = clamp(t)
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Named maps lower-case easing names to functions, for use in
// configuration files.
var Named = map[string]Func{
	"linear":       Linear,
	"quad-in":      QuadIn,
	"quad-out":     QuadOut,
	"quad-in-out":  QuadInOut,
	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,
	"expo-in":      ExpoIn,
	"expo-out":     ExpoOut,
	"expo-in-out":  ExpoInOut,
	"elastic-in":   ElasticIn,
	"elastic-out":  ElasticOut,
	"bounce-out":   BounceOut,
	"sine-in-out":  SineInOut,
	"back-out":     BackOut,
	"ease":         Ease.Apply,
	"ease-in":      EaseIn.Apply,
	"ease-out":     EaseOut.Apply,
	"ease-in-out":  EaseInOut.Apply,
}

// ByName returns the easing function with the given name (see [Named]),
// ignoring case and treating underscores as dashes.
func ByName(name string) (Func, bool) {
	f, ok := Named[strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")]
	return f, ok
}
