// platform/icon.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"image"

	"golang.org/x/image/draw"
)

var DefaultIconSizes = []int{16, 32, 48}

// IconSet returns square RGBA versions of img at each of the given sizes,
// or at DefaultIconSizes if none are given. Non-positive sizes are
// skipped, and a nil image gives no icons.
func IconSet(img image.Image, sizes ...int) []image.Image {
	if img == nil {
		return nil
	}
	if len(sizes) == 0 {
		sizes = DefaultIconSizes
	}

	var icons []image.Image
	for _, sz := range sizes {
		if sz <= 0 {
			continue
		}
		dst := image.NewRGBA(image.Rect(0, 0, sz, sz))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		icons = append(icons, dst)
	}
	return icons
}
