// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "fmt"

// FillRules specifies which area is filled when subpaths overlap.
// NonZero fills any point enclosed by an unequal number of subpaths
// winding clockwise and counter-clockwise. EvenOdd fills any point
// enclosed by an odd number of subpaths, whichever their direction.
type FillRules int32

const (
	NonZero FillRules = iota
	EvenOdd
)

var fillRuleNames = [...]string{"nonzero", "evenodd"}

func (fr FillRules) String() string {
	if fr < 0 || int(fr) >= len(fillRuleNames) {
		return fmt.Sprintf("FillRules(%d)", int(fr))
	}
	return fillRuleNames[fr]
}

// Fills returns whether a point with the given winding number is filled.
func (fr FillRules) Fills(windings int) bool {
	switch fr {
	case NonZero:
		return windings != 0
	case EvenOdd:
		return windings%2 != 0
	}
	return false
}
