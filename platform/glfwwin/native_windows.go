// platform/glfwwin/native_windows.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package glfwwin

import (
	"unsafe"

	"github.com/mmp/ezwin/platform"
)

func (w *window) Handles() (platform.NativeHandles, error) {
	return platform.NativeHandles{Window: uintptr(unsafe.Pointer(w.window.GetWin32Window()))}, nil
}
