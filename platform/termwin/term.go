// platform/termwin/term.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package termwin implements platform.Backend on a text terminal using
// tcell. The terminal is the single window; sizes and cursor positions
// are measured in character cells.
package termwin

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/platform"
	"github.com/mmp/ezwin/util"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the longest PollEvents waits for input; it paces the
// event loop since terminals have no vsync.
const FrameInterval = time.Second / 60

type Backend struct {
	lg        *log.Logger
	newScreen func() (tcell.Screen, error)

	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	start  time.Time
	window *Window
}

var _ platform.Backend = (*Backend)(nil)

func New(lg *log.Logger) *Backend {
	return &Backend{lg: lg, newScreen: tcell.NewScreen}
}

// NewWithScreen returns a Backend that uses the given screen, which must
// not have been initialized yet, rather than the process's terminal.
func NewWithScreen(s tcell.Screen, lg *log.Logger) *Backend {
	return &Backend{lg: lg, newScreen: func() (tcell.Screen, error) { return s, nil }}
}

func (b *Backend) Name() string { return "term" }

func (b *Backend) Init() error {
	screen, err := b.newScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))
	screen.EnableMouse()

	b.screen = screen
	b.events = make(chan tcell.Event, 256)
	b.quit = make(chan struct{})
	b.start = time.Now()

	go b.readEvents(screen, b.events, b.quit)

	return nil
}

// readEvents forwards the screen's events until the screen is finalized;
// hooks are only ever run from PollEvents.
func (b *Backend) readEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (b *Backend) Terminate() {
	close(b.quit)
	b.screen.Fini()
	b.screen = nil
}

// ApplyHints does nothing: terminals have no pixel format to configure.
func (b *Backend) ApplyHints(platform.Config) {}

func (b *Backend) CreateWindow(config platform.Config, cb platform.Callbacks) (platform.NativeWindow, error) {
	if b.window != nil {
		return nil, errors.New("the terminal only supports a single window")
	}

	w, h := b.screen.Size()
	b.window = &Window{
		backend: b,
		screen:  b.screen,
		cb:      cb,
		title:   config.Title,
		size:    [2]int{w, h},
		visible: config.Visible,
	}
	// The requested size can't be honored; report the terminal's.
	if b.window.size != config.Size && cb.Resize != nil {
		cb.Resize(w, h)
	}
	return b.window, nil
}

func (b *Backend) PollEvents() {
	timer := time.NewTimer(FrameInterval)
	defer timer.Stop()

	select {
	case ev, ok := <-b.events:
		if !ok {
			return
		}
		b.dispatch(ev)
	case <-timer.C:
		return
	}

	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return
			}
			b.dispatch(ev)
		default:
			return
		}
	}
}

func (b *Backend) Time() float64 {
	return time.Since(b.start).Seconds()
}

func (b *Backend) dispatch(ev tcell.Event) {
	w := b.window
	if w == nil {
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		if [2]int{width, height} != w.size {
			w.size = [2]int{width, height}
			w.screen.Sync()
			if w.cb.Resize != nil {
				w.cb.Resize(width, height)
			}
		}

	case *tcell.EventKey:
		key, mods := keyFromTcell(ev)
		if key == platform.KeyUnknown {
			return
		}
		if key == platform.KeyC && mods == platform.ModCtrl {
			// The terminal would otherwise have sent SIGINT.
			w.shouldClose = true
		}
		// Terminals only report key presses, so each is followed by an
		// immediate release.
		if w.cb.Key != nil {
			w.cb.Key(key, platform.StatePress, mods)
			w.cb.Key(key, platform.StateRelease, mods)
		}

	case *tcell.EventMouse:
		w.mouseEvent(ev)
	}
}

///////////////////////////////////////////////////////////////////////////

// Window is the terminal screen, presented as a platform.NativeWindow.
type Window struct {
	backend *Backend
	screen  tcell.Screen
	cb      platform.Callbacks

	title       string
	size        [2]int
	visible     bool
	cursor      [2]float64
	hovered     bool
	shouldClose bool
	buttons     tcell.ButtonMask
}

// Screen returns the tcell screen so that the caller can draw to it;
// SwapBuffers makes the drawing visible.
func (w *Window) Screen() tcell.Screen { return w.screen }

var tcellButtons = []struct {
	mask   tcell.ButtonMask
	button platform.Button
}{
	{tcell.Button1, platform.ButtonLeft},
	{tcell.Button2, platform.ButtonRight},
	{tcell.Button3, platform.ButtonMiddle},
}

func (w *Window) mouseEvent(ev *tcell.EventMouse) {
	if !w.hovered {
		// Terminals don't report the cursor leaving, so the first mouse
		// event is taken to mean it has entered.
		w.hovered = true
		if w.cb.CursorEnter != nil {
			w.cb.CursorEnter(true)
		}
	}

	x, y := ev.Position()
	if pos := [2]float64{float64(x), float64(y)}; pos != w.cursor {
		w.cursor = pos
		if w.cb.CursorPos != nil {
			w.cb.CursorPos(pos[0], pos[1])
		}
	}

	mods := modsFromTcell(ev.Modifiers())
	buttons := ev.Buttons()
	for _, b := range tcellButtons {
		was, is := w.buttons&b.mask != 0, buttons&b.mask != 0
		if was != is && w.cb.MouseButton != nil {
			w.cb.MouseButton(b.button, util.Select(is, platform.StatePress, platform.StateRelease), mods)
		}
	}
	w.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	if w.cb.Scroll != nil {
		var dx, dy float64
		if buttons&tcell.WheelUp != 0 {
			dy++
		}
		if buttons&tcell.WheelDown != 0 {
			dy--
		}
		if buttons&tcell.WheelLeft != 0 {
			dx--
		}
		if buttons&tcell.WheelRight != 0 {
			dx++
		}
		if dx != 0 || dy != 0 {
			w.cb.Scroll(dx, dy)
		}
	}
}

// SetSize is ignored; the terminal's size is up to the user.
func (w *Window) SetSize(width, height int) {}

func (w *Window) SetTitle(title string) { w.title = title }

func (w *Window) SetVisible(visible bool) { w.visible = visible }

func (w *Window) CursorPos() (float64, float64) { return w.cursor[0], w.cursor[1] }
func (w *Window) Hovered() bool                 { return w.hovered }
func (w *Window) ShouldClose() bool             { return w.shouldClose }
func (w *Window) SetShouldClose(close bool)     { w.shouldClose = close }

func (w *Window) SwapBuffers() {
	w.screen.Show()
}

// Key always reports StateRelease since terminals report presses but not
// whether keys are held.
func (w *Window) Key(platform.Key) platform.State {
	return platform.StateRelease
}

func (w *Window) MouseButton(button platform.Button) platform.State {
	for _, b := range tcellButtons {
		if b.button == button && w.buttons&b.mask != 0 {
			return platform.StatePress
		}
	}
	return platform.StateRelease
}

func (w *Window) Clipboard() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		w.backend.lg.Warnf("clipboard: %v", err)
	}
	return s
}

func (w *Window) SetClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		w.backend.lg.Warnf("clipboard: %v", err)
	}
}

func (w *Window) SetIcon([]image.Image) error {
	return platform.ErrUnsupported
}

func (w *Window) Handles() (platform.NativeHandles, error) {
	return platform.NativeHandles{}, platform.ErrUnsupported
}

func (w *Window) Destroy() {
	w.screen.Clear()
	w.screen.Show()
	if w.backend.window == w {
		w.backend.window = nil
	}
}
