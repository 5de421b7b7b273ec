// platform/backend.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"image"
	"sync"
	"unsafe"
)

var (
	ErrNoWindow       = errors.New("no native window")
	ErrAlreadyRunning = errors.New("window event loop is already running")
	ErrUnsupported    = errors.ErrUnsupported
)

// Backend is a native windowing library. Init and Terminate are called
// by the Window code as the first window using the library is created and
// the last one is destroyed, respectively; backends should not call them
// on their own.
type Backend interface {
	Name() string
	Init() error
	Terminate()
	// ApplyHints sets the hints used for subsequently created windows.
	ApplyHints(config Config)
	CreateWindow(config Config, cb Callbacks) (NativeWindow, error)
	// PollEvents processes pending events, invoking the Callbacks of the
	// windows they were delivered to.
	PollEvents()
	// Time returns the library's monotonic clock in seconds.
	Time() float64
}

// NativeWindow is a window created by a Backend. Cursor positions are
// in pixels with the origin at the upper left.
type NativeWindow interface {
	SetSize(width, height int)
	SetTitle(title string)
	SetVisible(visible bool)
	CursorPos() (x, y float64)
	Hovered() bool
	ShouldClose() bool
	SetShouldClose(close bool)
	SwapBuffers()
	Key(key Key) State
	MouseButton(button Button) State
	Clipboard() string
	SetClipboard(s string)
	SetIcon(images []image.Image) error
	Handles() (NativeHandles, error)
	Destroy()
}

// VulkanSurfacer is implemented by native windows that can create
// Vulkan surfaces.
type VulkanSurfacer interface {
	VulkanSurface(instance, allocator unsafe.Pointer) (uintptr, error)
	VulkanExtensions() []string
}

// NativeHandles are the OS-level handles of a window: the HWND on
// Windows, the NSWindow on macOS, and the X11 Window and Display on
// Linux. Display is zero where it has no meaning.
type NativeHandles struct {
	Window  uintptr
	Display uintptr
}

// Callbacks are the functions a Backend calls when events arrive for a
// window. Any of them may be nil.
type Callbacks struct {
	Resize      func(width, height int)
	Key         func(key Key, state State, mods Modifier)
	CursorEnter func(entered bool)
	CursorPos   func(x, y float64)
	MouseButton func(button Button, state State, mods Modifier)
	Scroll      func(dx, dy float64)
}

///////////////////////////////////////////////////////////////////////////
// Library reference counting

var libraries = struct {
	mu   sync.Mutex
	refs map[string]int
}{refs: make(map[string]int)}

func acquireLibrary(b Backend) error {
	libraries.mu.Lock()
	defer libraries.mu.Unlock()

	name := b.Name()
	if libraries.refs[name] == 0 {
		if err := b.Init(); err != nil {
			return err
		}
	}
	libraries.refs[name]++
	return nil
}

func releaseLibrary(b Backend) {
	libraries.mu.Lock()
	defer libraries.mu.Unlock()

	name := b.Name()
	if libraries.refs[name] == 0 {
		return
	}
	libraries.refs[name]--
	if libraries.refs[name] == 0 {
		delete(libraries.refs, name)
		b.Terminate()
	}
}

// LibraryRefs returns the number of live windows holding a reference to
// the named backend's library.
func LibraryRefs(name string) int {
	libraries.mu.Lock()
	defer libraries.mu.Unlock()
	return libraries.refs[name]
}
