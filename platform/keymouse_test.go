// platform/keymouse_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import "testing"

func TestKeyString(t *testing.T) {
	for k, s := range map[Key]string{
		KeyA: "A", KeyZ: "Z", Key0: "0", Key9: "9", KeyF1: "F1", KeyF12: "F12",
		KeyEscape: "Escape", KeySpace: "Space", KeyRightSuper: "RightSuper",
		KeyUnknown: "Unknown", Key(1000): "Key(1000)",
	} {
		if k.String() != s {
			t.Errorf("key %d: got %q, expected %q", int(k), k.String(), s)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if s := (ModShift | ModAlt).String(); s != "Shift|Alt" {
		t.Errorf("got %q", s)
	}
	if s := Modifier(0).String(); s != "None" {
		t.Errorf("got %q", s)
	}
	if StateRepeat.String() != "Repeat" || State(7).String() != "State(7)" {
		t.Errorf("unexpected State strings")
	}
	if ButtonMiddle.String() != "Middle" || StateLooping.String() != "Looping" {
		t.Errorf("unexpected Button/RunState strings")
	}
	if ClientAPINone.String() != "None" || OriginBottomLeft.String() != "BottomLeft" {
		t.Errorf("unexpected ClientAPI/OriginCorner strings")
	}
}

func TestInputState(t *testing.T) {
	var s InputState
	if s.Key(KeyA) != StateRelease || s.Button(ButtonLeft) != StateRelease {
		t.Errorf("zero InputState reports pressed input")
	}

	s.SetKey(KeyA, StatePress)
	s.SetKey(KeyB, StateRepeat)
	s.SetButton(ButtonMiddle, StatePress)
	s.SetButton(Button(12), StatePress)
	if s.Key(KeyA) != StatePress || s.Key(KeyB) != StatePress || s.Button(ButtonMiddle) != StatePress {
		t.Errorf("pressed input not reported")
	}
	if s.Button(Button(12)) != StateRelease {
		t.Errorf("out of range button reported as pressed")
	}

	s.SetKey(KeyA, StateRelease)
	s.SetButton(ButtonMiddle, StateRelease)
	if s.Key(KeyA) != StateRelease || s.Button(ButtonMiddle) != StateRelease {
		t.Errorf("released input still reported as pressed")
	}
}

func TestTickClock(t *testing.T) {
	var c TickClock
	if c.Running() {
		t.Errorf("zero clock is running")
	}

	c.Start(50)
	for _, step := range []struct{ now, time, delta float64 }{
		{50.5, 0.5, 0.5},
		{50.5, 0.5, 0},
		{52, 2, 1.5},
		{51, 1, 0}, // time going backward never gives a negative delta
	} {
		c.Advance(step.now)
		if c.Time() != step.time || c.Delta() != step.delta {
			t.Errorf("Advance(%g): got time %g delta %g, expected %g %g", step.now, c.Time(), c.Delta(),
				step.time, step.delta)
		}
	}

	var auto TickClock
	auto.Advance(10)
	if !auto.Running() || auto.Time() != 0 || auto.Delta() != 0 {
		t.Errorf("Advance without Start: running %v time %g delta %g", auto.Running(), auto.Time(), auto.Delta())
	}
}
