// platform/glfwwin/glfw.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package glfwwin implements platform.Backend using GLFW.
package glfwwin

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Backend struct {
	lg *log.Logger
}

var _ platform.Backend = (*Backend)(nil)

func New(lg *log.Logger) *Backend {
	return &Backend{lg: lg}
}

func (b *Backend) Name() string { return "glfw" }

func (b *Backend) Init() error {
	b.lg.Info("Starting GLFW initialization")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	b.lg.Infof("GLFW: %s", glfw.GetVersionString())
	return nil
}

func (b *Backend) Terminate() {
	glfw.Terminate()
	b.lg.Info("Terminated GLFW")
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (b *Backend) ApplyHints(config platform.Config) {
	if config.ClientAPI == platform.ClientAPINone {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
	}

	glfw.WindowHint(glfw.Visible, glfwBool(config.Visible))
	glfw.WindowHint(glfw.Resizable, glfwBool(config.Resizable))
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(config.DoubleBuffered))
	glfw.WindowHint(glfw.Samples, config.Samples)

	ch := config.Channels
	glfw.WindowHint(glfw.RedBits, int(ch.R))
	glfw.WindowHint(glfw.GreenBits, int(ch.G))
	glfw.WindowHint(glfw.BlueBits, int(ch.B))
	glfw.WindowHint(glfw.AlphaBits, int(ch.A))
	glfw.WindowHint(glfw.DepthBits, int(ch.Depth))
	glfw.WindowHint(glfw.StencilBits, int(ch.Stencil))

	for h, v := range config.Hints {
		glfw.WindowHint(glfw.Hint(h), v)
	}
}

func (b *Backend) CreateWindow(config platform.Config, cb platform.Callbacks) (platform.NativeWindow, error) {
	if config.Size[0] <= 0 || config.Size[1] <= 0 {
		return nil, fmt.Errorf("%dx%d: invalid window size", config.Size[0], config.Size[1])
	}

	win, err := glfw.CreateWindow(config.Size[0], config.Size[1], config.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if config.ClientAPI == platform.ClientAPIOpenGL {
		win.MakeContextCurrent()
		glfw.SwapInterval(1)
	}

	w := &window{window: win, lg: b.lg}
	w.installCallbacks(cb)

	return w, nil
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) Time() float64 {
	return glfw.GetTime()
}

///////////////////////////////////////////////////////////////////////////

type window struct {
	window *glfw.Window
	lg     *log.Logger
}

var _ platform.VulkanSurfacer = (*window)(nil)

func (w *window) installCallbacks(cb platform.Callbacks) {
	// Only the window's size is updated on resize; calling back into
	// SetSize here would feed back into GLFW.
	w.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if cb.Resize != nil {
			cb.Resize(width, height)
		}
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		state, ok := stateFromAction(action)
		if !ok {
			w.lg.Warnf("%d: unexpected GLFW key action", action)
			return
		}
		if cb.Key != nil {
			cb.Key(keyFromGLFW(translateUntranslatedKey(key, scancode)), state, modsFromGLFW(mods))
		}
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if cb.CursorEnter != nil {
			cb.CursorEnter(entered)
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if cb.CursorPos != nil {
			cb.CursorPos(x, y)
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, known := glfwButtons[rawButton]
		if !known {
			return
		}
		state, ok := stateFromAction(action)
		if !ok {
			w.lg.Warnf("%d: unexpected GLFW mouse button action", action)
			return
		}
		if cb.MouseButton != nil {
			cb.MouseButton(button, state, modsFromGLFW(mods))
		}
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		if cb.Scroll != nil {
			cb.Scroll(x, y)
		}
	})
}

func (w *window) SetSize(width, height int) {
	if width > 0 && height > 0 {
		w.window.SetSize(width, height)
	} else {
		w.lg.Warnf("%dx%d: GLFW can't set a window to an empty size", width, height)
	}
}

func (w *window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *window) SetVisible(visible bool) {
	if visible {
		w.window.Show()
	} else {
		w.window.Hide()
	}
}

func (w *window) CursorPos() (float64, float64) {
	return w.window.GetCursorPos()
}

func (w *window) Hovered() bool {
	return w.window.GetAttrib(glfw.Hovered) == glfw.True
}

func (w *window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *window) SetShouldClose(close bool) {
	w.window.SetShouldClose(close)
}

func (w *window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *window) Key(key platform.Key) platform.State {
	gk, ok := nativeKeys[key]
	if !ok {
		return platform.StateRelease
	}
	s, _ := stateFromAction(w.window.GetKey(gk))
	return s
}

func (w *window) MouseButton(button platform.Button) platform.State {
	gb, ok := nativeButtons[button]
	if !ok {
		return platform.StateRelease
	}
	s, _ := stateFromAction(w.window.GetMouseButton(gb))
	return s
}

func (w *window) Clipboard() string {
	return w.window.GetClipboardString()
}

func (w *window) SetClipboard(s string) {
	w.window.SetClipboardString(s)
}

func (w *window) SetIcon(images []image.Image) error {
	if len(images) == 0 {
		return errors.New("no icon images provided")
	}
	w.window.SetIcon(images)
	return nil
}

func (w *window) VulkanSurface(instance, allocator unsafe.Pointer) (uintptr, error) {
	if !glfw.VulkanSupported() {
		return 0, platform.ErrUnsupported
	}
	return w.window.CreateWindowSurface(vulkanInstance(instance), allocator)
}

// vulkanInstance wraps instance for glfw, which only accepts a typed
// pointer.
func vulkanInstance(instance unsafe.Pointer) any {
	return (*byte)(instance)
}

func (w *window) VulkanExtensions() []string {
	if !glfw.VulkanSupported() {
		return nil
	}
	return w.window.GetRequiredInstanceExtensions()
}

func (w *window) Destroy() {
	w.window.Destroy()
}
