// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, it checks whether numbers are
// about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"

	"cogentcore.org/armas/math32"
)

// DefaultTolerance is the default tolerance used by [Equal]
// and [EqualVector2].
const DefaultTolerance = 1e-4

// Equal asserts that the given two numbers are about equal to each
// other, using a default tolerance of [DefaultTolerance].
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTolerance, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each
// other, using the given tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// EqualVector2 asserts that the given two vectors are about equal to each
// other component-wise, using the given tolerance value.
func EqualVector2(t assert.TestingT, expected, actual math32.Vector2, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	okX := EqualTol(t, expected.X, actual.X, tolerance, msgAndArgs...)
	okY := EqualTol(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	return okX && okY
}
