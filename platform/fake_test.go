// platform/fake_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// fakeBackend is a scripted Backend: each call to PollEvents advances
// time by the next entry of steps and then runs the next entry of
// script, if any, with the window's callbacks.
type fakeBackend struct {
	name         string
	inits, terms int
	initErr      error
	createErr    error

	now    float64
	steps  []float64
	script []func(w *fakeWindow)
	polls  int

	windows []*fakeWindow
}

func newFakeBackend(name string) *fakeBackend {
	return &fakeBackend{name: name, now: 100}
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inits++
	return nil
}

func (f *fakeBackend) Terminate() { f.terms++ }

func (f *fakeBackend) ApplyHints(Config) {}

func (f *fakeBackend) CreateWindow(config Config, cb Callbacks) (NativeWindow, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	w := &fakeWindow{cb: cb, size: config.Size, title: config.Title, visible: config.Visible}
	f.windows = append(f.windows, w)
	return w, nil
}

func (f *fakeBackend) PollEvents() {
	if f.polls > 1000 {
		// Keep a broken test from looping forever.
		for _, w := range f.windows {
			w.shouldClose = true
		}
	}
	if f.polls < len(f.steps) {
		f.now += f.steps[f.polls]
	}
	if f.polls < len(f.script) && f.script[f.polls] != nil && len(f.windows) > 0 {
		f.script[f.polls](f.windows[len(f.windows)-1])
	}
	f.polls++
}

func (f *fakeBackend) Time() float64 { return f.now }

type fakeWindow struct {
	cb          Callbacks
	size        [2]int
	title       string
	visible     bool
	cursor      [2]float64
	hovered     bool
	shouldClose bool
	clipboard   string
	input       InputState
	icons       []image.Image
	swaps       int
	destroys    int
}

// The following deliver events the way a native library would.

func (w *fakeWindow) key(k Key, s State, m Modifier) {
	w.input.SetKey(k, s)
	w.cb.Key(k, s, m)
}

func (w *fakeWindow) button(b Button, s State, m Modifier) {
	w.input.SetButton(b, s)
	w.cb.MouseButton(b, s, m)
}

func (w *fakeWindow) move(x, y float64) {
	w.cursor = [2]float64{x, y}
	w.cb.CursorPos(x, y)
}

func (w *fakeWindow) resize(width, height int) {
	w.size = [2]int{width, height}
	w.cb.Resize(width, height)
}

func (w *fakeWindow) SetSize(width, height int)       { w.size = [2]int{width, height} }
func (w *fakeWindow) SetTitle(title string)           { w.title = title }
func (w *fakeWindow) SetVisible(visible bool)         { w.visible = visible }
func (w *fakeWindow) CursorPos() (float64, float64)   { return w.cursor[0], w.cursor[1] }
func (w *fakeWindow) Hovered() bool                   { return w.hovered }
func (w *fakeWindow) ShouldClose() bool               { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(close bool)       { w.shouldClose = close }
func (w *fakeWindow) SwapBuffers()                    { w.swaps++ }
func (w *fakeWindow) Key(key Key) State               { return w.input.Key(key) }
func (w *fakeWindow) MouseButton(button Button) State { return w.input.Button(button) }
func (w *fakeWindow) Clipboard() string               { return w.clipboard }
func (w *fakeWindow) SetClipboard(s string)           { w.clipboard = s }
func (w *fakeWindow) Destroy()                        { w.destroys++ }

func (w *fakeWindow) SetIcon(images []image.Image) error {
	w.icons = images
	return nil
}

func (w *fakeWindow) Handles() (NativeHandles, error) {
	return NativeHandles{}, errors.New("fake windows have no handles")
}

// traceSink records every call it receives, along with the clock and
// mouse offset at each tick.
type traceSink struct {
	DefaultSink
	trace  []string
	onTick func(w *Window, n int)
	ticks  int
}

func (s *traceSink) log(f string, args ...any) {
	s.trace = append(s.trace, fmt.Sprintf(f, args...))
}

func (s *traceSink) String() string { return strings.Join(s.trace, "\n") }

func (s *traceSink) BeforeLoop(w *Window) { s.log("BeforeLoop") }

func (s *traceSink) Tick(w *Window) {
	s.log("Tick t=%g dt=%g offset=%+v a=%s left=%s in=%v", w.Time(), w.TickDelta(), w.MouseOffset(),
		w.KeyState(KeyA), w.ButtonState(ButtonLeft), w.IsMouseInWindow())
	if s.onTick != nil {
		s.onTick(w, s.ticks)
	}
	s.ticks++
	s.DefaultSink.Tick(w)
}

func (s *traceSink) Clear(w *Window)     { s.log("Clear") }
func (s *traceSink) Render(w *Window)    { s.log("Render") }
func (s *traceSink) AfterLoop(w *Window) { s.log("AfterLoop") }
func (s *traceSink) Resize(w *Window)    { s.log("Resize %v", w.Size()) }

func (s *traceSink) Key(w *Window, key Key, state State, mods Modifier) {
	s.log("Key %s %s %s", key, state, mods)
	s.DefaultSink.Key(w, key, state, mods)
}

func (s *traceSink) MouseArea(w *Window, entered bool) { s.log("MouseArea %v", entered) }
func (s *traceSink) MouseMove(w *Window, pos [2]int)   { s.log("MouseMove %v", pos) }

func (s *traceSink) Button(w *Window, b Button, state State, mods Modifier) {
	s.log("Button %s %s %s at %v in=%v", b, state, mods, w.MousePosition(), w.IsMouseInWindow())
}

func (s *traceSink) Scroll(w *Window, offset [2]float64) { s.log("Scroll %v", offset) }
