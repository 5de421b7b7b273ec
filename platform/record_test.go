// platform/record_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	gomath "math"
	"path/filepath"
	"slices"
	"testing"
)

func TestRecordReplay(t *testing.T) {
	fb := newFakeBackend(t.Name())
	fb.steps = []float64{0.1, 0.2, 0.05, 0.5, 0.125, 0.3}
	fb.script = []func(*fakeWindow){
		func(fw *fakeWindow) {
			// The button hook must see the cursor as of the press, not
			// as of the end of the tick.
			fw.move(10, 10)
			fw.button(ButtonLeft, StatePress, 0)
			fw.move(50, 50)
			fw.hovered = true
			fw.cb.CursorEnter(true)
			fw.move(100, 200)
		},
		func(fw *fakeWindow) { fw.key(KeyA, StatePress, ModShift) },
		func(fw *fakeWindow) {
			fw.move(300, 250)
			fw.button(ButtonLeft, StatePress, 0)
		},
		func(fw *fakeWindow) {
			fw.button(ButtonLeft, StateRelease, 0)
			fw.cb.Scroll(1, 2)
		},
		func(fw *fakeWindow) {
			fw.resize(1000, 500)
			fw.key(KeyA, StateRelease, 0)
		},
		func(fw *fakeWindow) {
			fw.key(KeyEscape, StatePress, 0)
			fw.key(KeyEscape, StateRelease, 0)
		},
	}

	recorder := NewRecorder(fb)
	w, err := NewWindow(recorder, OriginBottomLeft, DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	live := &traceSink{}
	w.SetSink(live)
	if err := w.Run(); err != nil {
		t.Fatal(err)
	}
	w.Destroy()

	rec := recorder.Recording()
	rec.Origin = w.Origin()
	if rec.Backend != fb.Name() || len(rec.Ticks) != 6 {
		t.Fatalf("recording has backend %q and %d ticks", rec.Backend, len(rec.Ticks))
	}
	if fb.inits != 1 || fb.terms != 1 {
		t.Errorf("recorder didn't pass through library init: %d inits %d terminates", fb.inits, fb.terms)
	}

	path := filepath.Join(t.TempDir(), "session.rec")
	if err := rec.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadRecording(path)
	if err != nil {
		t.Fatal(err)
	}

	rw, err := NewWindow(NewReplayBackend(loaded), loaded.Origin, loaded.Config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Destroy()
	replayed := &traceSink{}
	rw.SetSink(replayed)
	if err := rw.Run(); err != nil {
		t.Fatal(err)
	}

	if live.String() != replayed.String() {
		t.Errorf("replayed trace differs.\nlive:\n%s\nreplayed:\n%s", live, replayed)
	}
	if !slices.Contains(live.trace, "Button Left Press None at [10 710] in=false") {
		t.Errorf("button hook saw the wrong cursor:\n%s", live)
	}
	if rw.Size() != [2]int{1000, 500} {
		t.Errorf("replayed window size %v", rw.Size())
	}
}

// runTwice runs w's event loop, then cancels the close request, waits
// gap seconds if the backend is the fake one, and runs it again.
func runTwice(t *testing.T, w *Window, fb *fakeBackend, gap float64) {
	t.Helper()
	if err := w.Run(); err != nil {
		t.Fatal(err)
	}
	w.CancelClose()
	if fb != nil {
		fb.now += gap
	}
	if err := w.Run(); err != nil {
		t.Fatal(err)
	}
}

func TestRecordReplayRerun(t *testing.T) {
	escape := func(fw *fakeWindow) {
		fw.key(KeyEscape, StatePress, 0)
		fw.key(KeyEscape, StateRelease, 0)
	}
	fb := newFakeBackend(t.Name())
	fb.steps = []float64{0.1, 0.2, 0.25, 0.5}
	fb.script = []func(*fakeWindow){nil, escape, nil, escape}

	recorder := NewRecorder(fb)
	w, err := NewWindow(recorder, OriginTopLeft, DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var deltas []float64
	live := &traceSink{onTick: func(w *Window, n int) { deltas = append(deltas, w.TickDelta()) }}
	w.SetSink(live)
	runTwice(t, w, fb, 5)
	w.Destroy()

	rec := recorder.Recording()
	if len(rec.Ticks) != 4 || !rec.Ticks[2].Restart || rec.Ticks[1].Restart {
		t.Fatalf("expected the restart to be marked on the third of 4 ticks: %+v", rec.Ticks)
	}
	if d := rec.Ticks[2].Start - rec.Ticks[1].Time; gomath.Abs(d-5) > 1e-9 {
		t.Errorf("restart recorded %g seconds after the first run, expected 5", d)
	}

	rw, err := NewWindow(NewReplayBackend(rec), OriginTopLeft, rec.Config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Destroy()
	replayed := &traceSink{}
	rw.SetSink(replayed)
	runTwice(t, rw, nil, 0)

	if len(deltas) != 4 {
		t.Fatalf("live session ran %d ticks, expected 4", len(deltas))
	}

	if live.String() != replayed.String() {
		t.Errorf("replayed trace differs.\nlive:\n%s\nreplayed:\n%s", live, replayed)
	}
	if gomath.Abs(deltas[2]-0.25) > 1e-9 || gomath.Abs(deltas[3]-0.5) > 1e-9 {
		t.Errorf("second run tick deltas %v, expected 0.25 and 0.5", deltas[2:])
	}
}

func TestReplayEmptyRecording(t *testing.T) {
	rec := &Recording{Version: RecordingVersion, Config: DefaultConfig()}
	w, err := NewWindow(NewReplayBackend(rec), OriginTopLeft, rec.Config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Destroy()

	sink := &traceSink{}
	w.SetSink(sink)
	if err := w.Run(); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "BeforeLoop\nAfterLoop" {
		t.Errorf("empty replay got trace:\n%s", got)
	}
}

func TestReplaySingleWindow(t *testing.T) {
	b := NewReplayBackend(&Recording{Version: RecordingVersion})
	w, err := NewWindow(b, OriginTopLeft, DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Destroy()

	if _, err := NewWindow(b, OriginTopLeft, DefaultConfig(), nil); err == nil {
		t.Errorf("expected error creating a second replay window")
	}
}

func TestLoadRecordingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.rec")
	rec := &Recording{Version: RecordingVersion + 1}
	if err := rec.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecording(path); err == nil {
		t.Errorf("expected error loading recording with a different version")
	}
	if _, err := LoadRecording(filepath.Join(t.TempDir(), "missing.rec")); err == nil {
		t.Errorf("expected error loading missing recording")
	}
}
