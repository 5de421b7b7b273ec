// platform/record.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"fmt"
	"image"

	"github.com/mmp/ezwin/util"

	"github.com/brunoga/deep"
)

// RecordingVersion is bumped whenever the Recording format changes
// incompatibly.
const RecordingVersion = 1

type EventKind int

const (
	EventResize EventKind = iota
	EventKey
	EventCursorEnter
	EventCursorPos
	EventMouseButton
	EventScroll
)

// RecordedEvent is a single native event. Only the fields relevant to
// Kind are set.
type RecordedEvent struct {
	Kind    EventKind
	Key     Key        `msgpack:",omitempty"`
	Button  Button     `msgpack:",omitempty"`
	State   State      `msgpack:",omitempty"`
	Mods    Modifier   `msgpack:",omitempty"`
	Size    [2]int     `msgpack:",omitempty"`
	Entered bool       `msgpack:",omitempty"`
	Pos     [2]float64 `msgpack:",omitempty"` // cursor position or scroll offset
}

// RecordedTick holds everything observed during one call to PollEvents.
type RecordedTick struct {
	// Restart is set for the first tick of a second or later run of the
	// event loop; Start then holds the time read when that run began.
	Restart bool    `msgpack:",omitempty"`
	Start   float64 `msgpack:",omitempty"`
	// Time is the backend time read after the poll.
	Time float64
	// Cursor and Hovered are sampled after all of the tick's events.
	Cursor  [2]float64
	Hovered bool
	Events  []RecordedEvent
}

type Recording struct {
	Version int
	Backend string
	Origin  OriginCorner
	Config  Config
	// Start is the backend time read when the event loop started.
	Start float64
	// Prelude holds events delivered before the first poll.
	Prelude []RecordedEvent
	Ticks   []RecordedTick
}

func (r *Recording) Save(path string) error {
	return util.WriteArchive(path, r)
}

func LoadRecording(path string) (*Recording, error) {
	var r Recording
	if err := util.ReadArchive(path, &r); err != nil {
		return nil, err
	}
	if r.Version != RecordingVersion {
		return nil, fmt.Errorf("%s: recording version %d; expected %d", path, r.Version, RecordingVersion)
	}
	return &r, nil
}

///////////////////////////////////////////////////////////////////////////
// Recorder

// Recorder is a Backend that forwards to another Backend while recording
// the events, times, and cursor state it delivers, so that the session
// can later be reproduced with a ReplayBackend. It shares the wrapped
// backend's name and thus its library reference count.
type Recorder struct {
	Backend
	rec    Recording
	native NativeWindow

	// polled is set between a poll and the time read that follows it.
	polled  bool
	restart *float64
}

func NewRecorder(b Backend) *Recorder {
	return &Recorder{
		Backend: b,
		rec:     Recording{Version: RecordingVersion, Backend: b.Name()},
	}
}

// Recording returns the session recorded so far.
func (r *Recorder) Recording() *Recording {
	return &r.rec
}

func (r *Recorder) CreateWindow(config Config, cb Callbacks) (NativeWindow, error) {
	if r.native != nil {
		return nil, errors.New("only a single window can be recorded")
	}
	r.rec.Config = deep.MustCopy(config)

	nw, err := r.Backend.CreateWindow(config, r.wrap(cb))
	if err != nil {
		return nil, err
	}
	r.native = nw
	return nw, nil
}

func (r *Recorder) PollEvents() {
	tick := RecordedTick{}
	if r.restart != nil {
		tick.Restart, tick.Start = true, *r.restart
		r.restart = nil
	}
	r.rec.Ticks = append(r.rec.Ticks, tick)
	r.polled = true
	r.Backend.PollEvents()

	if r.native != nil {
		t := &r.rec.Ticks[len(r.rec.Ticks)-1]
		x, y := r.native.CursorPos()
		t.Cursor = [2]float64{x, y}
		t.Hovered = r.native.Hovered()
	}
}

// Time reads the wrapped backend's time. A read that follows a poll is
// that tick's time; any other read starts a run of the event loop.
func (r *Recorder) Time() float64 {
	now := r.Backend.Time()
	switch n := len(r.rec.Ticks); {
	case r.polled:
		r.rec.Ticks[n-1].Time = now
		r.polled = false
	case n == 0:
		r.rec.Start = now
	default:
		r.restart = &now
	}
	return now
}

func (r *Recorder) add(ev RecordedEvent) {
	if n := len(r.rec.Ticks); n > 0 {
		r.rec.Ticks[n-1].Events = append(r.rec.Ticks[n-1].Events, ev)
	} else {
		r.rec.Prelude = append(r.rec.Prelude, ev)
	}
}

func (r *Recorder) wrap(cb Callbacks) Callbacks {
	return Callbacks{
		Resize: func(width, height int) {
			r.add(RecordedEvent{Kind: EventResize, Size: [2]int{width, height}})
			if cb.Resize != nil {
				cb.Resize(width, height)
			}
		},
		Key: func(key Key, state State, mods Modifier) {
			r.add(RecordedEvent{Kind: EventKey, Key: key, State: state, Mods: mods})
			if cb.Key != nil {
				cb.Key(key, state, mods)
			}
		},
		CursorEnter: func(entered bool) {
			r.add(RecordedEvent{Kind: EventCursorEnter, Entered: entered})
			if cb.CursorEnter != nil {
				cb.CursorEnter(entered)
			}
		},
		CursorPos: func(x, y float64) {
			r.add(RecordedEvent{Kind: EventCursorPos, Pos: [2]float64{x, y}})
			if cb.CursorPos != nil {
				cb.CursorPos(x, y)
			}
		},
		MouseButton: func(button Button, state State, mods Modifier) {
			r.add(RecordedEvent{Kind: EventMouseButton, Button: button, State: state, Mods: mods})
			if cb.MouseButton != nil {
				cb.MouseButton(button, state, mods)
			}
		},
		Scroll: func(dx, dy float64) {
			r.add(RecordedEvent{Kind: EventScroll, Pos: [2]float64{dx, dy}})
			if cb.Scroll != nil {
				cb.Scroll(dx, dy)
			}
		},
	}
}

///////////////////////////////////////////////////////////////////////////
// ReplayBackend

// ReplayBackend is a headless Backend that plays back a Recording: each
// PollEvents call delivers the events of the next recorded tick, and the
// time and cursor state are those that were recorded. Its window asks to
// close once all of the ticks have been delivered.
type ReplayBackend struct {
	rec    *Recording
	next   int
	time   float64
	polled bool
	window *replayWindow
}

func NewReplayBackend(rec *Recording) *ReplayBackend {
	return &ReplayBackend{rec: rec, time: rec.Start}
}

func (r *ReplayBackend) Name() string      { return "replay" }
func (r *ReplayBackend) Init() error       { return nil }
func (r *ReplayBackend) Terminate()        {}
func (r *ReplayBackend) ApplyHints(Config) {}

func (r *ReplayBackend) Time() float64 {
	if r.polled {
		r.polled = false
		return r.time
	}
	if r.next > 0 && r.next < len(r.rec.Ticks) && r.rec.Ticks[r.next].Restart {
		return r.rec.Ticks[r.next].Start
	}
	return r.time
}

func (r *ReplayBackend) CreateWindow(config Config, cb Callbacks) (NativeWindow, error) {
	if r.window != nil {
		return nil, errors.New("only a single window can be replayed")
	}
	r.window = &replayWindow{
		cb:          cb,
		size:        config.Size,
		title:       config.Title,
		visible:     config.Visible,
		shouldClose: len(r.rec.Ticks) == 0,
	}
	return r.window, nil
}

func (r *ReplayBackend) PollEvents() {
	w := r.window
	if w == nil {
		return
	}
	if r.next >= len(r.rec.Ticks) {
		w.shouldClose = true
		return
	}

	if r.next == 0 {
		for _, ev := range r.rec.Prelude {
			w.dispatch(ev)
		}
	}

	t := r.rec.Ticks[r.next]
	r.next++

	for _, ev := range t.Events {
		w.dispatch(ev)
	}
	w.cursor = t.Cursor
	w.hovered = t.Hovered
	r.time = t.Time
	r.polled = true

	if r.next == len(r.rec.Ticks) {
		w.shouldClose = true
	}
}

type replayWindow struct {
	cb          Callbacks
	size        [2]int
	title       string
	visible     bool
	cursor      [2]float64
	hovered     bool
	shouldClose bool
	clipboard   string
	input       InputState
}

func (w *replayWindow) dispatch(ev RecordedEvent) {
	switch ev.Kind {
	case EventResize:
		w.size = ev.Size
		if w.cb.Resize != nil {
			w.cb.Resize(ev.Size[0], ev.Size[1])
		}
	case EventKey:
		w.input.SetKey(ev.Key, ev.State)
		if w.cb.Key != nil {
			w.cb.Key(ev.Key, ev.State, ev.Mods)
		}
	case EventCursorEnter:
		w.hovered = ev.Entered
		if w.cb.CursorEnter != nil {
			w.cb.CursorEnter(ev.Entered)
		}
	case EventCursorPos:
		w.cursor = ev.Pos
		if w.cb.CursorPos != nil {
			w.cb.CursorPos(ev.Pos[0], ev.Pos[1])
		}
	case EventMouseButton:
		w.input.SetButton(ev.Button, ev.State)
		if w.cb.MouseButton != nil {
			w.cb.MouseButton(ev.Button, ev.State, ev.Mods)
		}
	case EventScroll:
		if w.cb.Scroll != nil {
			w.cb.Scroll(ev.Pos[0], ev.Pos[1])
		}
	}
}

func (w *replayWindow) SetSize(width, height int)       { w.size = [2]int{width, height} }
func (w *replayWindow) SetTitle(title string)           { w.title = title }
func (w *replayWindow) SetVisible(visible bool)         { w.visible = visible }
func (w *replayWindow) CursorPos() (float64, float64)   { return w.cursor[0], w.cursor[1] }
func (w *replayWindow) Hovered() bool                   { return w.hovered }
func (w *replayWindow) ShouldClose() bool               { return w.shouldClose }
func (w *replayWindow) SetShouldClose(close bool)       { w.shouldClose = close }
func (w *replayWindow) SwapBuffers()                    {}
func (w *replayWindow) Key(key Key) State               { return w.input.Key(key) }
func (w *replayWindow) MouseButton(button Button) State { return w.input.Button(button) }
func (w *replayWindow) Clipboard() string               { return w.clipboard }
func (w *replayWindow) SetClipboard(s string)           { w.clipboard = s }
func (w *replayWindow) SetIcon([]image.Image) error     { return nil }
func (w *replayWindow) Handles() (NativeHandles, error) { return NativeHandles{}, ErrUnsupported }
func (w *replayWindow) Destroy()                        {}
