// platform/glfwwin/glfw_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package glfwwin

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestVulkanInstance(t *testing.T) {
	var vk uint64
	inst := vulkanInstance(unsafe.Pointer(&vk))

	v := reflect.ValueOf(inst)
	if v.Kind() != reflect.Ptr {
		t.Fatalf("instance has kind %s; glfw requires a pointer", v.Kind())
	}
	if v.Pointer() != uintptr(unsafe.Pointer(&vk)) {
		t.Errorf("instance address changed")
	}
}
