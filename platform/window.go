// platform/window.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform provides a small windowing layer over native
// libraries: a Window with an event loop that dispatches to an
// EventSink, cursor tracking in several coordinate systems, and a
// per-tick clock.
package platform

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/mmp/ezwin/log"

	"github.com/brunoga/deep"
)

type RunState int

const (
	StateIdle RunState = iota
	StateLooping
	StateClosed
)

func (r RunState) String() string {
	switch r {
	case StateIdle:
		return "Idle"
	case StateLooping:
		return "Looping"
	case StateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("RunState(%d)", int(r))
	}
}

// Window is a native window along with its event loop. A Window must
// only be used from the goroutine that created it, which must also be
// the one the native library requires (the main thread, for most).
type Window struct {
	backend  Backend
	native   NativeWindow
	acquired bool
	origin   OriginCorner
	config   Config
	sink     EventSink
	lg       *log.Logger

	runState      RunState
	clock         TickClock
	mouseBaseline MouseOffset
}

// NewWindow initializes the backend's library if needed and creates a
// window with the given configuration. Destroy must be called when the
// window is no longer needed.
func NewWindow(backend Backend, origin OriginCorner, config Config, lg *log.Logger) (*Window, error) {
	config.sanitize()
	w := &Window{
		backend: backend,
		origin:  origin,
		config:  deep.MustCopy(config),
		sink:    DefaultSink{},
		lg:      lg.With("backend", backend.Name()),
	}

	if err := acquireLibrary(backend); err != nil {
		return nil, fmt.Errorf("%s: unable to initialize: %w", backend.Name(), err)
	}
	w.acquired = true

	backend.ApplyHints(w.config)
	native, err := backend.CreateWindow(w.config, w.callbacks())
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("%s: unable to create window: %w", backend.Name(), err)
	}
	w.native = native

	w.lg.Info("Created window", "size", w.config.Size,
		"title", w.config.Title, "origin", origin.String())

	return w, nil
}

// callbacks returns the closures through which the backend delivers
// events to w.
func (w *Window) callbacks() Callbacks {
	return Callbacks{
		Resize: func(width, height int) {
			w.config.Size = sanitizeSize([2]int{width, height})
			w.sink.Resize(w)
		},
		Key: func(key Key, state State, mods Modifier) {
			w.sink.Key(w, key, state, mods)
		},
		CursorEnter: func(entered bool) {
			w.sink.MouseArea(w, entered)
		},
		CursorPos: func(x, y float64) {
			w.sink.MouseMove(w, w.pixelFromNative(x, y))
		},
		MouseButton: func(button Button, state State, mods Modifier) {
			w.sink.Button(w, button, state, mods)
		},
		Scroll: func(dx, dy float64) {
			w.sink.Scroll(w, [2]float64{dx, dy})
		},
	}
}

// SetSink sets the EventSink that receives w's events; nil restores
// DefaultSink.
func (w *Window) SetSink(s EventSink) {
	if s == nil {
		s = DefaultSink{}
	}
	w.sink = s
}

func (w *Window) Sink() EventSink {
	return w.sink
}

///////////////////////////////////////////////////////////////////////////
// Event loop

// Run runs the event loop until the window is asked to close, either by
// the user or by a call to Close. Each iteration polls for events,
// advances the tick clock, and then calls the sink's Tick, Clear, and
// Render methods, in that order.
func (w *Window) Run() error {
	if w.native == nil {
		return ErrNoWindow
	}
	if w.runState == StateLooping {
		return ErrAlreadyRunning
	}

	w.runState = StateLooping
	w.lg.Debug("Starting event loop")

	w.sink.BeforeLoop(w)
	w.clock.Start(w.backend.Time())

	ticks := 0
	for w.native != nil && !w.native.ShouldClose() {
		w.backend.PollEvents()
		w.clock.Advance(w.backend.Time())

		w.sink.Tick(w)
		w.sink.Clear(w)
		w.sink.Render(w)
		ticks++
	}

	w.runState = StateClosed
	w.sink.AfterLoop(w)

	w.lg.Debugf("Event loop finished after %d ticks, %.2fs", ticks, w.clock.Time())

	return nil
}

// Close asks the event loop to exit after the current iteration
// finishes.
func (w *Window) Close() {
	if w.native != nil {
		w.native.SetShouldClose(true)
	}
}

// CancelClose clears a pending close request, e.g. one issued by the
// user closing the window, so that the loop keeps running or may be run
// again.
func (w *Window) CancelClose() {
	if w.native != nil {
		w.native.SetShouldClose(false)
	}
}

func (w *Window) ShouldClose() bool {
	return w.native == nil || w.native.ShouldClose()
}

// Destroy releases the native window and, if this is the last window
// using it, shuts down the native library. It may safely be called more
// than once.
func (w *Window) Destroy() {
	if w.native != nil {
		w.native.Destroy()
		w.native = nil
		w.lg.Debug("Destroyed window")
	}
	if w.acquired {
		releaseLibrary(w.backend)
		w.acquired = false
	}
}

func (w *Window) RunState() RunState { return w.runState }

// Time returns the time of the current tick, in seconds since the event
// loop started.
func (w *Window) Time() float64 { return w.clock.Time() }

// TickDelta returns the time between the previous tick and the current
// one.
func (w *Window) TickDelta() float64 { return w.clock.Delta() }

func (w *Window) SwapBuffers() {
	if w.native != nil {
		w.native.SwapBuffers()
	}
}

///////////////////////////////////////////////////////////////////////////
// Configuration

func (w *Window) Origin() OriginCorner { return w.origin }

// Config returns a copy of the window's current configuration.
func (w *Window) Config() Config {
	return deep.MustCopy(w.config)
}

func (w *Window) Size() [2]int { return w.config.Size }

// Aspect returns the window's width divided by its height, or zero if
// the window has no height.
func (w *Window) Aspect() float32 {
	if w.config.Size[1] == 0 {
		return 0
	}
	return float32(w.config.Size[0]) / float32(w.config.Size[1])
}

func (w *Window) SetSize(size [2]int) {
	w.config.Size = sanitizeSize(size)
	if w.native != nil {
		w.native.SetSize(w.config.Size[0], w.config.Size[1])
	}
}

func (w *Window) Title() string { return w.config.Title }

func (w *Window) SetTitle(title string) {
	w.config.Title = title
	if w.native != nil {
		w.native.SetTitle(title)
	}
}

func (w *Window) Visible() bool { return w.config.Visible }

func (w *Window) SetVisible(visible bool) {
	w.config.Visible = visible
	w.applyHints()
	if w.native != nil {
		w.native.SetVisible(visible)
	}
}

func (w *Window) Samples() int { return w.config.Samples }

// SetSamples sets the number of multisampling samples. Like the other
// framebuffer settings, it only affects windows created afterward.
func (w *Window) SetSamples(n int) {
	w.config.Samples = max(n, 0)
	w.applyHints()
}

func (w *Window) DoubleBuffered() bool { return w.config.DoubleBuffered }

func (w *Window) SetDoubleBuffered(db bool) {
	w.config.DoubleBuffered = db
	w.applyHints()
}

func (w *Window) Channels() ChannelBits { return w.config.Channels }

func (w *Window) SetChannels(c ChannelBits) {
	w.config.Channels = c
	w.applyHints()
}

func (w *Window) applyHints() {
	// The native library can only be given hints while it's initialized.
	if w.acquired {
		w.backend.ApplyHints(w.config)
	}
}

///////////////////////////////////////////////////////////////////////////
// Input

// IsMouseInWindow reports whether the cursor is over the window.
func (w *Window) IsMouseInWindow() bool {
	return w.native != nil && w.native.Hovered()
}

func (w *Window) KeyState(key Key) State {
	if w.native == nil {
		return StateRelease
	}
	return w.native.Key(key)
}

func (w *Window) ButtonState(button Button) State {
	if w.native == nil {
		return StateRelease
	}
	return w.native.MouseButton(button)
}

func (w *Window) Clipboard() string {
	if w.native == nil {
		return ""
	}
	return w.native.Clipboard()
}

func (w *Window) SetClipboard(s string) {
	if w.native != nil {
		w.native.SetClipboard(s)
	}
}

///////////////////////////////////////////////////////////////////////////
// Native interop

// Native returns the backend's window, or nil after Destroy.
func (w *Window) Native() NativeWindow { return w.native }

// SetIcon sets the window's icon to img, scaled to the usual icon sizes.
func (w *Window) SetIcon(img image.Image) error {
	if w.native == nil {
		return ErrNoWindow
	}
	if img == nil {
		return errors.New("no icon image provided")
	}
	if err := w.native.SetIcon(IconSet(img)); err != nil {
		w.lg.Warnf("%s: unable to set window icon: %v", w.backend.Name(), err)
		return err
	}
	return nil
}

func (w *Window) NativeHandles() (NativeHandles, error) {
	if w.native == nil {
		return NativeHandles{}, ErrNoWindow
	}
	return w.native.Handles()
}

// VulkanSurface creates a Vulkan surface for the window; instance is a
// VkInstance and allocator an optional VkAllocationCallbacks pointer. The
// window should have been created with ClientAPINone. The returned value
// is the address of the VkSurfaceKHR, not the handle itself.
func (w *Window) VulkanSurface(instance, allocator unsafe.Pointer) (uintptr, error) {
	if w.native == nil {
		return 0, ErrNoWindow
	}
	vs, ok := w.native.(VulkanSurfacer)
	if !ok {
		return 0, ErrUnsupported
	}
	return vs.VulkanSurface(instance, allocator)
}

// VulkanExtensions returns the Vulkan instance extensions the backend
// needs to create surfaces.
func (w *Window) VulkanExtensions() ([]string, error) {
	if w.native == nil {
		return nil, ErrNoWindow
	}
	vs, ok := w.native.(VulkanSurfacer)
	if !ok {
		return nil, ErrUnsupported
	}
	return vs.VulkanExtensions(), nil
}
