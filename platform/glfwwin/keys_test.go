// platform/glfwwin/keys_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package glfwwin

import (
	"testing"

	"github.com/mmp/ezwin/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestStateFromAction(t *testing.T) {
	for _, c := range []struct {
		action glfw.Action
		state  platform.State
		ok     bool
	}{
		{glfw.Release, platform.StateRelease, true},
		{glfw.Press, platform.StatePress, true},
		{glfw.Repeat, platform.StateRepeat, true},
		{glfw.Action(17), platform.StateRelease, false},
	} {
		if s, ok := stateFromAction(c.action); s != c.state || ok != c.ok {
			t.Errorf("action %d: got %s/%v, expected %s/%v", c.action, s, ok, c.state, c.ok)
		}
	}
}

func TestKeyTables(t *testing.T) {
	for gk, k := range map[glfw.Key]platform.Key{
		glfw.KeyA:            platform.KeyA,
		glfw.KeyQ:            platform.KeyQ,
		glfw.Key7:            platform.Key7,
		glfw.KeyF12:          platform.KeyF12,
		glfw.KeyEscape:       platform.KeyEscape,
		glfw.KeyKPEnter:      platform.KeyEnter,
		glfw.KeyRightControl: platform.KeyRightCtrl,
		glfw.KeyF25:          platform.KeyUnknown,
		glfw.KeyUnknown:      platform.KeyUnknown,
	} {
		if got := keyFromGLFW(gk); got != k {
			t.Errorf("GLFW key %d: got %s, expected %s", gk, got, k)
		}
	}

	// Every translated key except the keypad enter maps back to itself.
	for gk, k := range glfwKeys {
		if gk == glfw.KeyKPEnter {
			continue
		}
		if nativeKeys[k] != gk {
			t.Errorf("%s: maps back to GLFW key %d, expected %d", k, nativeKeys[k], gk)
		}
	}
}

func TestMods(t *testing.T) {
	if m := modsFromGLFW(glfw.ModShift | glfw.ModSuper); m != platform.ModShift|platform.ModSuper {
		t.Errorf("got modifiers %s", m)
	}
	if m := modsFromGLFW(glfw.ModCapsLock); m != 0 {
		t.Errorf("caps lock gave modifiers %s", m)
	}
}
