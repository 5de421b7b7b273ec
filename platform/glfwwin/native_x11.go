// platform/glfwwin/native_x11.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build linux && !wayland

package glfwwin

import (
	"unsafe"

	"github.com/mmp/ezwin/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *window) Handles() (platform.NativeHandles, error) {
	return platform.NativeHandles{
		Window:  uintptr(w.window.GetX11Window()),
		Display: uintptr(unsafe.Pointer(glfw.GetX11Display())),
	}, nil
}
