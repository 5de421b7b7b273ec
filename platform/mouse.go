// platform/mouse.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/mmp/ezwin/math"
	"github.com/mmp/ezwin/util"
)

// MouseOffset holds a cursor position (or the difference between two
// of them) in three representations: window pixels, [-1,1] relative to
// the window's extent, and [0,1] relative to it.
type MouseOffset struct {
	Pixel     [2]int
	Symmetric [2]float64
	Unit      [2]float64
}

func (m MouseOffset) Sub(o MouseOffset) MouseOffset {
	return MouseOffset{
		Pixel:     math.Sub2i(m.Pixel, o.Pixel),
		Symmetric: math.Sub2d(m.Symmetric, o.Symmetric),
		Unit:      math.Sub2d(m.Unit, o.Unit),
	}
}

func (m MouseOffset) IsZero() bool {
	return m == MouseOffset{}
}

// flipY converts a native y coordinate, which has its origin at the top
// of the window, to the given origin.
func flipY(origin OriginCorner, y, height float64) float64 {
	return util.Select(origin == OriginBottomLeft, height-y, y)
}

func (w *Window) pixelFromNative(x, y float64) [2]int {
	return [2]int{int(x), int(flipY(w.origin, y, float64(w.config.Size[1])))}
}

// MousePosition returns the cursor position in pixels, relative to the
// window's origin corner. The position may be outside of the window.
func (w *Window) MousePosition() [2]int {
	if w.native == nil {
		return [2]int{}
	}
	return w.pixelFromNative(w.native.CursorPos())
}

func (w *Window) sampleMouse() MouseOffset {
	p := w.MousePosition()
	return MouseOffset{Pixel: p, Symmetric: w.Relative(p), Unit: w.Relative01(p)}
}

// MouseOffset returns how far the cursor has moved since the baseline
// was last refreshed, which DefaultSink does at every tick.
func (w *Window) MouseOffset() MouseOffset {
	return w.sampleMouse().Sub(w.mouseBaseline)
}

// RefreshMouseBaseline records the current cursor position as the
// reference for subsequent MouseOffset calls.
func (w *Window) RefreshMouseBaseline() {
	w.mouseBaseline = w.sampleMouse()
}

// Relative maps a pixel position to [-1,1] along each axis of the
// window.
func (w *Window) Relative(p [2]int) [2]float64 {
	return math.Fit2d([2]float64{float64(p[0]), float64(p[1])}, w.extent(), -1, 1)
}

// Relative01 maps a pixel position to [0,1] along each axis of the
// window.
func (w *Window) Relative01(p [2]int) [2]float64 {
	return math.Fit2d([2]float64{float64(p[0]), float64(p[1])}, w.extent(), 0, 1)
}

func (w *Window) extent() [2]float64 {
	return [2]float64{float64(w.config.Size[0]), float64(w.config.Size[1])}
}
