// platform/glfwwin/native_other.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !(linux && !wayland) && !windows && !darwin

package glfwwin

import "github.com/mmp/ezwin/platform"

func (w *window) Handles() (platform.NativeHandles, error) {
	return platform.NativeHandles{}, platform.ErrUnsupported
}
