// math/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"golang.org/x/exp/constraints"
)

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp linearly interpolates between a and b using x in [0,1].
func Lerp[T constraints.Float](x, a, b T) T {
	return (1-x)*a + x*b
}

// Fit clamps value to the range spanned by oldMin and oldMax and then
// linearly maps it to the range [newMin, newMax]. The old range may be
// reversed (oldMin > oldMax), in which case the mapping is reversed as
// well. A degenerate old range returns newMin.
func Fit[T constraints.Float](value, oldMin, oldMax, newMin, newMax T) T {
	if oldMin == oldMax {
		return newMin
	}
	if oldMin < oldMax {
		v := Clamp(value, oldMin, oldMax)
		return (v-oldMin)/(oldMax-oldMin)*(newMax-newMin) + newMin
	}
	v := Clamp(value, oldMax, oldMin)
	return (v-oldMax)/(oldMin-oldMax)*(newMin-newMax) + newMax
}
