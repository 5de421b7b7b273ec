// platform/sdlwin/sdl.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sdlwin implements platform.Backend using SDL2.
package sdlwin

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/platform"
	"github.com/mmp/ezwin/util"

	"github.com/veandco/go-sdl2/sdl"
)

type Backend struct {
	lg      *log.Logger
	windows map[uint32]*window
	start   uint64
}

var _ platform.Backend = (*Backend)(nil)

func New(lg *log.Logger) *Backend {
	return &Backend{lg: lg, windows: make(map[uint32]*window)}
}

func (b *Backend) Name() string { return "sdl" }

func (b *Backend) Init() error {
	b.lg.Info("Starting SDL initialization")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	v := sdl.Version{}
	sdl.GetVersion(&v)
	b.lg.Infof("SDL: %d.%d.%d", v.Major, v.Minor, v.Patch)
	b.start = sdl.GetPerformanceCounter()
	return nil
}

func (b *Backend) Terminate() {
	sdl.Quit()
	b.lg.Info("Terminated SDL")
}

func (b *Backend) ApplyHints(config platform.Config) {
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, boolInt(config.DoubleBuffered))

	ch := config.Channels
	_ = sdl.GLSetAttribute(sdl.GL_RED_SIZE, int(ch.R))
	_ = sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, int(ch.G))
	_ = sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, int(ch.B))
	_ = sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, int(ch.A))
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, int(ch.Depth))
	_ = sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, int(ch.Stencil))

	_ = sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, boolInt(config.Samples > 0))
	_ = sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, config.Samples)

	for attr, v := range config.Hints {
		if err := sdl.GLSetAttribute(sdl.GLattr(attr), v); err != nil {
			b.lg.Warnf("SDL attribute %d: %v", attr, err)
		}
	}
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (b *Backend) CreateWindow(config platform.Config, cb platform.Callbacks) (platform.NativeWindow, error) {
	flags := sdl.WindowFlags(sdl.WINDOW_ALLOW_HIGHDPI)
	if config.ClientAPI == platform.ClientAPIOpenGL {
		flags |= sdl.WINDOW_OPENGL
	} else {
		flags |= sdl.WINDOW_VULKAN
	}
	if config.Visible {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}
	if config.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	win, err := sdl.CreateWindow(config.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(config.Size[0]), int32(config.Size[1]), flags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w := &window{backend: b, window: win, cb: cb, lg: b.lg}
	if config.ClientAPI == platform.ClientAPIOpenGL {
		if w.glContext, err = win.GLCreateContext(); err != nil {
			_ = win.Destroy()
			return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
		}
		if err := win.GLMakeCurrent(w.glContext); err != nil {
			sdl.GLDeleteContext(w.glContext)
			_ = win.Destroy()
			return nil, fmt.Errorf("failed to set OpenGL context: %w", err)
		}
		_ = sdl.GLSetSwapInterval(1)
	}

	if w.id, err = win.GetID(); err != nil {
		w.Destroy()
		return nil, err
	}
	b.windows[w.id] = w

	return w, nil
}

func (b *Backend) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		b.processEvent(event)
	}
}

func (b *Backend) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-b.start) / float64(sdl.GetPerformanceFrequency())
}

func (b *Backend) processEvent(event sdl.Event) {
	switch event.GetType() {
	case sdl.QUIT:
		for _, w := range b.windows {
			w.shouldClose = true
		}

	case sdl.WINDOWEVENT:
		we := event.(*sdl.WindowEvent)
		if w, ok := b.windows[we.WindowID]; ok {
			w.windowEvent(we)
		}

	case sdl.KEYDOWN, sdl.KEYUP:
		ke := event.(*sdl.KeyboardEvent)
		w, ok := b.windows[ke.WindowID]
		if !ok || w.cb.Key == nil {
			return
		}
		state := platform.StateRelease
		if event.GetType() == sdl.KEYDOWN {
			state = util.Select(ke.Repeat != 0, platform.StateRepeat, platform.StatePress)
		}
		w.cb.Key(keyFromScancode(ke.Keysym.Scancode), state, modsFromSDL(sdl.GetModState()))

	case sdl.MOUSEMOTION:
		me := event.(*sdl.MouseMotionEvent)
		if w, ok := b.windows[me.WindowID]; ok {
			w.cursor = [2]float64{float64(me.X), float64(me.Y)}
			if w.cb.CursorPos != nil {
				w.cb.CursorPos(w.cursor[0], w.cursor[1])
			}
		}

	case sdl.MOUSEBUTTONDOWN, sdl.MOUSEBUTTONUP:
		be := event.(*sdl.MouseButtonEvent)
		w, ok := b.windows[be.WindowID]
		if !ok {
			return
		}
		button, ok := buttonFromSDL(be.Button)
		if !ok {
			return
		}
		state := util.Select(event.GetType() == sdl.MOUSEBUTTONDOWN, platform.StatePress, platform.StateRelease)
		w.buttons.SetButton(button, state)
		if w.cb.MouseButton != nil {
			w.cb.MouseButton(button, state, modsFromSDL(sdl.GetModState()))
		}

	case sdl.MOUSEWHEEL:
		we := event.(*sdl.MouseWheelEvent)
		if w, ok := b.windows[we.WindowID]; ok && w.cb.Scroll != nil {
			w.cb.Scroll(float64(we.X), float64(we.Y))
		}
	}
}

///////////////////////////////////////////////////////////////////////////

type window struct {
	backend   *Backend
	window    *sdl.Window
	glContext sdl.GLContext
	id        uint32
	cb        platform.Callbacks
	lg        *log.Logger

	cursor      [2]float64
	hovered     bool
	shouldClose bool
	// SDL's mouse state is global rather than per-window, so button
	// state is tracked from the window's own events.
	buttons platform.InputState
}

var _ platform.VulkanSurfacer = (*window)(nil)

func (w *window) windowEvent(we *sdl.WindowEvent) {
	switch we.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		if w.cb.Resize != nil {
			w.cb.Resize(int(we.Data1), int(we.Data2))
		}
	case sdl.WINDOWEVENT_ENTER:
		w.hovered = true
		if w.cb.CursorEnter != nil {
			w.cb.CursorEnter(true)
		}
	case sdl.WINDOWEVENT_LEAVE:
		w.hovered = false
		if w.cb.CursorEnter != nil {
			w.cb.CursorEnter(false)
		}
	case sdl.WINDOWEVENT_CLOSE:
		w.shouldClose = true
	}
}

func (w *window) SetSize(width, height int) {
	w.window.SetSize(int32(width), int32(height))
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

func (w *window) CursorPos() (float64, float64) { return w.cursor[0], w.cursor[1] }
func (w *window) Hovered() bool                 { return w.hovered }
func (w *window) ShouldClose() bool             { return w.shouldClose }
func (w *window) SetShouldClose(close bool)     { w.shouldClose = close }

func (w *window) SwapBuffers() {
	if w.glContext != nil {
		w.window.GLSwap()
	}
}

func (w *window) Key(key platform.Key) platform.State {
	sc, ok := nativeScancodes[key]
	if !ok {
		return platform.StateRelease
	}
	if state := sdl.GetKeyboardState(); int(sc) < len(state) && state[sc] != 0 {
		return platform.StatePress
	}
	return platform.StateRelease
}

func (w *window) MouseButton(button platform.Button) platform.State {
	return w.buttons.Button(button)
}

func (w *window) Clipboard() string {
	s, err := sdl.GetClipboardText()
	if err != nil {
		w.lg.Warnf("SDL clipboard: %v", err)
	}
	return s
}

func (w *window) SetClipboard(s string) {
	if err := sdl.SetClipboardText(s); err != nil {
		w.lg.Warnf("SDL clipboard: %v", err)
	}
}

func (w *window) SetIcon([]image.Image) error {
	return platform.ErrUnsupported
}

func (w *window) Handles() (platform.NativeHandles, error) {
	return platform.NativeHandles{}, platform.ErrUnsupported
}

func (w *window) VulkanSurface(instance, allocator unsafe.Pointer) (uintptr, error) {
	if allocator != nil {
		w.lg.Warn("SDL ignores Vulkan allocation callbacks")
	}
	surface, err := w.window.VulkanCreateSurface((*byte)(instance))
	return uintptr(surface), err
}

func (w *window) VulkanExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *window) Destroy() {
	delete(w.backend.windows, w.id)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if err := w.window.Destroy(); err != nil {
		w.lg.Warnf("SDL window destroy: %v", err)
	}
}
