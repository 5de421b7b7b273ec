// cmd/ezdemo/render.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	gomath "math"

	"github.com/mmp/ezwin/log"
	"github.com/mmp/ezwin/math"
	"github.com/mmp/ezwin/platform"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/gl/v2.1/gl"
)

// screener is implemented by windows that draw to a terminal rather
// than through OpenGL.
type screener interface {
	Screen() tcell.Screen
}

const copyKey = platform.KeyF2

type demoSink struct {
	platform.DefaultSink
	lg       *log.Logger
	headless bool

	gl     bool
	screen tcell.Screen

	color   [3]float32
	clicks  int
	scroll  [2]float64
	frames  int
	fpsTime float64
}

func newDemoSink(lg *log.Logger, headless bool) *demoSink {
	return &demoSink{lg: lg, headless: headless}
}

func (s *demoSink) BeforeLoop(w *platform.Window) {
	if sc, ok := w.Native().(screener); ok {
		s.screen = sc.Screen()
		return
	}
	// Replays are headless, so there's no context to draw into.
	if s.headless || w.Config().ClientAPI != platform.ClientAPIOpenGL {
		return
	}

	s.lg.Info("Starting OpenGL initialization")
	if err := gl.Init(); err != nil {
		s.lg.Errorf("failed to initialize OpenGL: %v", err)
		return
	}
	s.gl = true
	s.lg.Infof("OpenGL vendor %s renderer %s", gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)))
}

func (s *demoSink) Tick(w *platform.Window) {
	p := w.Relative01(w.MousePosition())
	pulse := math.Lerp(0.5+0.5*gomath.Sin(w.Time()), 0.25, 1)
	s.color = [3]float32{
		math.Clamp(float32(p[0]), 0, 1),
		math.Clamp(float32(p[1]), 0, 1),
		float32(pulse),
	}

	s.frames++
	if w.Time()-s.fpsTime >= 5 {
		s.lg.Debugf("%.1f fps", float64(s.frames)/(w.Time()-s.fpsTime))
		s.frames, s.fpsTime = 0, w.Time()
	}

	s.DefaultSink.Tick(w)
}

func (s *demoSink) Clear(w *platform.Window) {
	switch {
	case s.gl:
		sz := w.Size()
		gl.Viewport(0, 0, int32(sz[0]), int32(sz[1]))
		gl.ClearColor(s.color[0], s.color[1], s.color[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	case s.screen != nil:
		s.screen.Clear()
	}
}

func (s *demoSink) status(w *platform.Window) string {
	return fmt.Sprintf("%s mouse %v clicks %d scroll %.1f,%.1f", w.Title(), w.MousePosition(),
		s.clicks, s.scroll[0], s.scroll[1])
}

func (s *demoSink) Render(w *platform.Window) {
	if s.screen != nil {
		width, height := s.screen.Size()
		bg := tcell.NewRGBColor(int32(255*s.color[0]), int32(255*s.color[1]), int32(255*s.color[2]))
		style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
		for y := 0; y < height; y++ {
			drawText(s.screen, 0, y, width, style, "")
		}
		drawText(s.screen, 0, 0, width, style, s.status(w))
		drawText(s.screen, 0, height-1, width, style, "esc: quit  f2: copy status")
	}
	w.SwapBuffers()
}

func (s *demoSink) AfterLoop(w *platform.Window) {
	s.lg.Infof("Exiting after %.1f seconds", w.Time())
}

func (s *demoSink) Resize(w *platform.Window) {
	s.lg.Infof("Window resized to %v", w.Size())
}

func (s *demoSink) Key(w *platform.Window, key platform.Key, state platform.State, mods platform.Modifier) {
	// Ctrl-C is left alone since it quits the terminal backend.
	if key == copyKey && state == platform.StatePress {
		w.SetClipboard(s.status(w))
		return
	}
	s.DefaultSink.Key(w, key, state, mods)
}

func (s *demoSink) Button(w *platform.Window, b platform.Button, state platform.State, mods platform.Modifier) {
	if state == platform.StatePress {
		s.clicks++
		s.lg.Debugf("%s button pressed at %v", b, w.MousePosition())
	}
}

func (s *demoSink) Scroll(w *platform.Window, offset [2]float64) {
	s.scroll[0] += offset[0]
	s.scroll[1] += offset[1]
}

func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for col < maxWidth {
		screen.SetContent(x+col, y, ' ', nil, style)
		col++
	}
}
