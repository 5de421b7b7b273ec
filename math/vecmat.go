// math/vecmat.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Sub2i returns the difference of two integer 2-vectors.
func Sub2i(a [2]int, b [2]int) [2]int {
	return [2]int{a[0] - b[0], a[1] - b[1]}
}

func Sub2d(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// Fit2d applies Fit independently to each axis of p, mapping [0,extent]
// to [newMin,newMax].
func Fit2d(p [2]float64, extent [2]float64, newMin, newMax float64) [2]float64 {
	return [2]float64{
		Fit(p[0], 0, extent[0], newMin, newMax),
		Fit(p[1], 0, extent[1], newMin, newMax),
	}
}
