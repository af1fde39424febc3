// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides flex width distribution and the grid, table,
// and horizontal stack builders that use it.
package layout

// FlexItem is either a fixed width in pixels or a weighted share of
// the space left after fixed items and gaps.
type FlexItem struct {

	// Size is the width of a fixed item or the weight of a flex item.
	Size float32

	// IsFlex is whether Size is a weight.
	IsFlex bool
}

// Fixed returns a fixed width item.
func Fixed(px float32) FlexItem {
	return FlexItem{Size: px}
}

// Flex returns a weighted item.
func Flex(weight float32) FlexItem {
	return FlexItem{Size: weight, IsFlex: true}
}

// Widths distributes the available width w among items separated by
// gap g. Fixed items get their size; flex items share the remaining
// space max(0, w - fixed - g*(n-1)) in proportion to their weights, or
// get 0 if all weights are 0. When fixed items do not fit, the widths are
// returned as is and exceed w. Negative sizes are treated as 0.
//
// Whenever the fixed items and gaps fit and there is at least one
// positive weight, the widths plus gaps sum to w up to float rounding.
func Widths(w, g float32, items []FlexItem) []float32 {
	n := len(items)
	if n == 0 {
		return nil
	}
	g = max(g, 0)
	var fixed, weights float32
	last := -1
	for i, it := range items {
		sz := max(it.Size, 0)
		if it.IsFlex {
			weights += sz
			if sz > 0 {
				last = i
			}
		} else {
			fixed += sz
		}
	}
	rem := max(0, w-fixed-g*float32(n-1))
	res := make([]float32, n)
	var used float32
	for i, it := range items {
		sz := max(it.Size, 0)
		switch {
		case !it.IsFlex:
			res[i] = sz
		case weights == 0:
			res[i] = 0
		case i == last:
			res[i] = max(0, rem-used)
		default:
			res[i] = rem * (sz / weights)
			used += res[i]
		}
	}
	return res
}

// Offsets returns the start offset of each width when laid out
// from 0 with the given gap.
func Offsets(widths []float32, g float32) []float32 {
	res := make([]float32, len(widths))
	var x float32
	for i, w := range widths {
		res[i] = x
		x += w + g
	}
	return res
}
