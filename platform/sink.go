// platform/sink.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

// EventSink receives the event loop's phases and the window's input
// events. All methods are called on the goroutine running Window.Run;
// input events are delivered from within the backend's PollEvents.
type EventSink interface {
	BeforeLoop(w *Window)
	Tick(w *Window)
	Clear(w *Window)
	Render(w *Window)
	AfterLoop(w *Window)

	// Resize is called after the window's size has been updated.
	Resize(w *Window)
	Key(w *Window, key Key, state State, mods Modifier)
	MouseArea(w *Window, entered bool)
	// MouseMove receives the cursor position relative to the window's
	// origin corner.
	MouseMove(w *Window, pos [2]int)
	Button(w *Window, button Button, state State, mods Modifier)
	Scroll(w *Window, offset [2]float64)
}

// DefaultSink provides the default behavior for all EventSink methods;
// sinks can embed it and override just the methods they care about.
type DefaultSink struct{}

var _ EventSink = DefaultSink{}

func (DefaultSink) BeforeLoop(*Window) {}

// Tick refreshes the mouse offset baseline, so that Window.MouseOffset
// reports the motion since the previous tick.
func (DefaultSink) Tick(w *Window) {
	w.RefreshMouseBaseline()
}

func (DefaultSink) Clear(*Window)     {}
func (DefaultSink) Render(*Window)    {}
func (DefaultSink) AfterLoop(*Window) {}
func (DefaultSink) Resize(*Window)    {}

// Key closes the window when CancelKey is released.
func (DefaultSink) Key(w *Window, key Key, state State, mods Modifier) {
	if key == CancelKey && state == StateRelease {
		w.Close()
	}
}

func (DefaultSink) MouseArea(*Window, bool)                 {}
func (DefaultSink) MouseMove(*Window, [2]int)               {}
func (DefaultSink) Button(*Window, Button, State, Modifier) {}
func (DefaultSink) Scroll(*Window, [2]float64)              {}
